package appointment

import (
	"context"

	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

// ListUnclaimed feeds the worker board: pending appointments nobody
// has claimed yet.
type ListUnclaimed struct {
	repo domain.Repository
}

func NewListUnclaimed(repo domain.Repository) *ListUnclaimed {
	return &ListUnclaimed{repo: repo}
}

func (uc *ListUnclaimed) Execute(
	ctx context.Context,
) ([]models.Appointment, error) {
	return uc.repo.ListUnclaimed(ctx)
}
