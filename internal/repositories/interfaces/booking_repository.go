package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vango/internal/models"
	"vango/internal/utils"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	GetByReference(ctx context.Context, reference string) (*models.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	UpdateStatus(ctx context.Context, reference string, status models.BookingStatus) error

	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	GetByStatus(ctx context.Context, status models.BookingStatus, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	GetByCustomerEmail(ctx context.Context, email string, params *utils.PaginationParams) ([]*models.Booking, int64, error)

	GetTotalCount(ctx context.Context) (int64, error)
	GetCountByStatus(ctx context.Context, status models.BookingStatus) (int64, error)
}
