package datasets

import (
	"context"

	"github.com/dmitrijs2005/datachart/internal/server/models"
)

// Repository persists datasets. GetByID and Delete return
// common.ErrorNotFound for an unknown id. ListByOwner returns datasets
// sorted by upload time descending with the Rows payload omitted.
type Repository interface {
	Create(ctx context.Context, dataset *models.Dataset) (*models.Dataset, error)
	GetByID(ctx context.Context, id string) (*models.Dataset, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*models.Dataset, error)
	Delete(ctx context.Context, id string) error
}
