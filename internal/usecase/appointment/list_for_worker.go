package appointment

import (
	"context"

	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
	"github.com/VelvetRowStudio/salon-manager/internal/timezone"
)

type ListForWorkerByDate struct {
	repo domain.Repository
}

func NewListForWorkerByDate(repo domain.Repository) *ListForWorkerByDate {
	return &ListForWorkerByDate{repo: repo}
}

func (uc *ListForWorkerByDate) Execute(
	ctx context.Context,
	workerID uint,
	dateStr string,
) ([]models.Appointment, error) {

	salon, err := uc.repo.GetSalon(ctx)
	if err != nil {
		return nil, err
	}

	date, err := timezone.DateIn(salon.Timezone, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListForWorkerByDate(ctx, workerID, date)
}
