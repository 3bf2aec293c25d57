package adaptor

import (
	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/usecase"
)

type Handler struct {
	Booking   *BookingHandler
	Inventory *InventoryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:   NewBookingHandler(service.Booking, log),
		Inventory: NewInventoryHandler(service.Inventory, log),
	}
}
