package usecase

import (
	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/data/repository"
	"github.com/sauls8/nwa-jumpers/pkg/utils"
)

type Service struct {
	Booking   BookingService
	Inventory InventoryService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking:   NewBookingService(repo, config.Company, log),
		Inventory: NewInventoryService(repo, log),
	}
}
