package repository

import (
	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/pkg/database"
)

type Repository struct {
	Booking    BookingRepository
	Inflatable InflatableRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:    NewBookingRepository(db, log),
		Inflatable: NewInflatableRepository(db, log),
	}
}
