package response

import (
	"time"

	"github.com/sauls8/nwa-jumpers/internal/data/entity"
)

// InflatableResponse keeps the original wire shape, including the numeric
// is_active flag.
type InflatableResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Features    []string  `json:"features"`
	Dimensions  *string   `json:"dimensions"`
	Capacity    *string   `json:"capacity"`
	IsActive    int       `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type InflatableMutationResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Inflatable *InflatableResponse `json:"inflatable,omitempty"`
}

type BulkCreateResult struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Success bool   `json:"success"`
}

type BulkCreateError struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}

type BulkCreateResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Created []BulkCreateResult `json:"created"`
	Errors  []BulkCreateError  `json:"errors,omitempty"`
}

func InflatableToResponse(inf *entity.Inflatable) *InflatableResponse {
	isActive := 0
	if inf.IsActive {
		isActive = 1
	}

	return &InflatableResponse{
		ID:          inf.ID,
		Name:        inf.Name,
		Description: inf.Description,
		Image:       inf.Image,
		Price:       inf.Price,
		Category:    inf.Category,
		Features:    inf.Features,
		Dimensions:  inf.Dimensions,
		Capacity:    inf.Capacity,
		IsActive:    isActive,
		CreatedAt:   inf.CreatedAt,
		UpdatedAt:   inf.UpdatedAt,
	}
}

func InflatablesToResponse(inflatables []*entity.Inflatable) []InflatableResponse {
	out := make([]InflatableResponse, 0, len(inflatables))
	for _, inf := range inflatables {
		out = append(out, *InflatableToResponse(inf))
	}
	return out
}
