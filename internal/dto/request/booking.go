package request

// CreateBookingRequest is the storefront's simple single-unit booking form.
type CreateBookingRequest struct {
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required"`
	EventDate       string `json:"event_date" validate:"required"`
	EventStartTime  string `json:"event_start_time" validate:"required"`
	EventEndTime    string `json:"event_end_time" validate:"required"`
	BounceHouseType string `json:"bounce_house_type" validate:"required"`
}

// QuoteItem is one cart line of a multi-item quote submission.
type QuoteItem struct {
	ProductName     string   `json:"product_name" validate:"required"`
	ProductCategory string   `json:"product_category"`
	Quantity        float64  `json:"quantity"`
	UnitPrice       float64  `json:"unit_price" validate:"gte=0"`
	TotalPrice      *float64 `json:"total_price"`
	Notes           string   `json:"notes"`
}

// CreateQuoteRequest persists a priced cart. One event block covers every
// item; the storefront locks date and time across the whole cart. The
// client also sends its computed amounts, which the server checks against
// its own calculation.
type CreateQuoteRequest struct {
	CustomerName     string      `json:"customer_name" validate:"required"`
	CustomerEmail    string      `json:"customer_email" validate:"required,email"`
	CustomerPhone    string      `json:"customer_phone" validate:"required"`
	EventDate        string      `json:"event_date" validate:"required"`
	EventStartTime   string      `json:"event_start_time"`
	EventEndTime     string      `json:"event_end_time"`
	OrganizationName string      `json:"organization_name"`
	EventAddress     string      `json:"event_address"`
	EventSurface     string      `json:"event_surface"`
	EventIsIndoor    *bool       `json:"event_is_indoor"`
	OvernightPickup  bool        `json:"overnight_pickup"`
	Notes            string      `json:"notes"`
	Items            []QuoteItem `json:"items" validate:"required,min=1,dive"`
	SubtotalAmount   *float64    `json:"subtotal_amount"`
	TaxAmount        *float64    `json:"tax_amount"`
	TotalAmount      *float64    `json:"total_amount"`
}
