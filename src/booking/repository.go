package booking

import (
	"context"
	"evorgs/src/models"
	"evorgs/src/types"
	"time"

	"github.com/google/uuid"
)

const defaultListLimit = 100

type Filters struct {
	Status      types.BookingStatus
	ServiceType types.ServiceType
	UserID      uint
	VendorID    uint
	DateFrom    *time.Time
	DateTo      *time.Time
	Limit       int
	Offset      int
}

// Repository is the persistence boundary of the engine. Save performs a
// compare-and-swap on Version: it persists the booking only if the stored
// version still equals booking.Version, then increments it. A lost race
// surfaces as ErrConcurrentModification.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	List(ctx context.Context, f Filters) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Save(ctx context.Context, booking *models.Booking) error
}
