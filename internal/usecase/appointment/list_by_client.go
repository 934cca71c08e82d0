package appointment

import (
	"context"

	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

type ListByClient struct {
	repo domain.Repository
}

func NewListByClient(repo domain.Repository) *ListByClient {
	return &ListByClient{repo: repo}
}

func (uc *ListByClient) Execute(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListByClient(ctx, clientID)
}
