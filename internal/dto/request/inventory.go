package request

// CreateInflatableRequest adds a catalog item. ID is optional; when absent
// it is derived from the name.
type CreateInflatableRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" validate:"required"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Features    []string `json:"features"`
	Dimensions  *string  `json:"dimensions"`
	Capacity    *string  `json:"capacity"`
	IsActive    *bool    `json:"is_active"`
}

// UpdateInflatableRequest edits a catalog item. Nil pointers mean the
// field was not sent and keeps its stored value.
type UpdateInflatableRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Features    *[]string `json:"features"`
	Dimensions  *string   `json:"dimensions"`
	Capacity    *string   `json:"capacity"`
	IsActive    *bool     `json:"is_active"`
}

// BulkCreateInflatablesRequest seeds the catalog in one call.
type BulkCreateInflatablesRequest struct {
	Inflatables []CreateInflatableRequest `json:"inflatables" validate:"required,min=1"`
}
