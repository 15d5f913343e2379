package users

import (
	"context"

	"github.com/dmitrijs2005/datachart/internal/server/models"
)

// Repository persists accounts. Implementations return
// common.ErrorAlreadyExists from Create when the email is taken and
// common.ErrorNotFound from GetByEmail when no account matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
