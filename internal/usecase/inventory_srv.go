package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/data/entity"
	"github.com/sauls8/nwa-jumpers/internal/data/repository"
	"github.com/sauls8/nwa-jumpers/internal/dto/request"
	"github.com/sauls8/nwa-jumpers/internal/dto/response"
	"github.com/sauls8/nwa-jumpers/pkg/utils"
)

type InventoryService interface {
	ListInflatables(ctx context.Context, includeInactive bool) ([]response.InflatableResponse, error)
	ListByCategory(ctx context.Context, category string) ([]response.InflatableResponse, error)
	GetInflatable(ctx context.Context, id string) (*response.InflatableResponse, error)
	CreateInflatable(ctx context.Context, req *request.CreateInflatableRequest) (*response.InflatableResponse, error)
	UpdateInflatable(ctx context.Context, id string, req *request.UpdateInflatableRequest) (*response.InflatableResponse, error)

	// DeleteInflatable clears the active flag; the row stays for old
	// bookings that reference it.
	DeleteInflatable(ctx context.Context, id string) error

	BulkCreateInflatables(ctx context.Context, req *request.BulkCreateInflatablesRequest) (*response.BulkCreateResponse, error)
}

type inventoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewInventoryService(repo *repository.Repository, log *zap.Logger) InventoryService {
	return &inventoryService{
		repo: repo,
		log:  log.With(zap.String("service", "inventory")),
	}
}

func (s *inventoryService) ListInflatables(ctx context.Context, includeInactive bool) ([]response.InflatableResponse, error) {
	inflatables, err := s.repo.Inflatable.FindAll(ctx, !includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list inflatables: %w", err)
	}

	return response.InflatablesToResponse(inflatables), nil
}

func (s *inventoryService) ListByCategory(ctx context.Context, category string) ([]response.InflatableResponse, error) {
	inflatables, err := s.repo.Inflatable.FindByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list inflatables in %s: %w", category, err)
	}

	return response.InflatablesToResponse(inflatables), nil
}

func (s *inventoryService) GetInflatable(ctx context.Context, id string) (*response.InflatableResponse, error) {
	inf, err := s.repo.Inflatable.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inflatable %s: %w", id, err)
	}
	if inf == nil {
		return nil, fmt.Errorf("inflatable %s not found", id)
	}

	return response.InflatableToResponse(inf), nil
}

func (s *inventoryService) CreateInflatable(ctx context.Context, req *request.CreateInflatableRequest) (*response.InflatableResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create inflatable validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id := req.ID
	if id == "" {
		id = utils.SlugID(req.Name)
	}
	if id == "" {
		return nil, fmt.Errorf("validation failed: name yields an empty ID")
	}

	existing, err := s.repo.Inflatable.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("check inflatable %s: %w", id, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("inflatable %s already exists", id)
	}

	inf := &entity.Inflatable{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       *req.Price,
		Category:    req.Category,
		Features:    req.Features,
		Dimensions:  req.Dimensions,
		Capacity:    req.Capacity,
		IsActive:    true,
	}
	if req.IsActive != nil {
		inf.IsActive = *req.IsActive
	}

	if err := s.repo.Inflatable.Create(ctx, inf); err != nil {
		return nil, fmt.Errorf("create inflatable %s: %w", id, err)
	}

	s.log.Info("Inflatable created",
		zap.String("inflatable_id", id),
		zap.String("category", req.Category),
		zap.Float64("price", *req.Price),
	)

	return s.GetInflatable(ctx, id)
}

func (s *inventoryService) UpdateInflatable(ctx context.Context, id string, req *request.UpdateInflatableRequest) (*response.InflatableResponse, error) {
	existing, err := s.repo.Inflatable.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inflatable %s: %w", id, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("inflatable %s not found", id)
	}

	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("validation failed: price must not be negative")
		}
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Features != nil {
		fields["features"] = repository.EncodeFeatures(*req.Features)
	}
	if req.Dimensions != nil {
		fields["dimensions"] = *req.Dimensions
	}
	if req.Capacity != nil {
		fields["capacity"] = *req.Capacity
	}
	if req.IsActive != nil {
		isActive := 0
		if *req.IsActive {
			isActive = 1
		}
		fields["is_active"] = isActive
	}

	if len(fields) > 0 {
		if err := s.repo.Inflatable.Update(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update inflatable %s: %w", id, err)
		}
	}

	s.log.Info("Inflatable updated",
		zap.String("inflatable_id", id),
		zap.Int("field_count", len(fields)),
	)

	return s.GetInflatable(ctx, id)
}

func (s *inventoryService) DeleteInflatable(ctx context.Context, id string) error {
	if err := s.repo.Inflatable.SetActive(ctx, id, false); err != nil {
		return err
	}

	s.log.Info("Inflatable deactivated", zap.String("inflatable_id", id))
	return nil
}

func (s *inventoryService) BulkCreateInflatables(ctx context.Context, req *request.BulkCreateInflatablesRequest) (*response.BulkCreateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Bulk create validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	resp := &response.BulkCreateResponse{
		Created: []response.BulkCreateResult{},
		Errors:  []response.BulkCreateError{},
	}

	for i := range req.Inflatables {
		item := req.Inflatables[i]
		created, err := s.CreateInflatable(ctx, &item)
		if err != nil {
			resp.Errors = append(resp.Errors, response.BulkCreateError{
				Name:  item.Name,
				Error: err.Error(),
			})
			continue
		}

		resp.Created = append(resp.Created, response.BulkCreateResult{
			ID:      created.ID,
			Name:    created.Name,
			Success: true,
		})
	}

	resp.Success = len(resp.Errors) == 0
	resp.Message = fmt.Sprintf("Created %d of %d inflatables", len(resp.Created), len(req.Inflatables))

	s.log.Info("Bulk inflatable create finished",
		zap.Int("created", len(resp.Created)),
		zap.Int("failed", len(resp.Errors)),
	)

	return resp, nil
}
