package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vango/internal/models"
	"vango/internal/utils"
)

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error)
	GetByEmail(ctx context.Context, email string) (*models.Driver, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.DriverStatus) error
	AddDocument(ctx context.Context, id primitive.ObjectID, doc *models.DriverDocument) error

	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Driver, int64, error)
	GetByStatus(ctx context.Context, status models.DriverStatus, params *utils.PaginationParams) ([]*models.Driver, int64, error)

	GetTotalCount(ctx context.Context) (int64, error)
	GetCountByStatus(ctx context.Context, status models.DriverStatus) (int64, error)
}
