package entity

import (
	"time"
)

// Inflatable is a rentable catalog item. IDs are slugs derived from the
// name. Features round-trips through a JSON-encoded text column. Deleting
// an inflatable only clears IsActive; rows are never removed.
type Inflatable struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Image       *string   `db:"image"`
	Price       float64   `db:"price"`
	Category    string    `db:"category"`
	Features    []string  `db:"features"`
	Dimensions  *string   `db:"dimensions"`
	Capacity    *string   `db:"capacity"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
