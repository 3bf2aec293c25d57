package entity

import (
	"time"
)

// Booking is a rental booking header. Date and time columns are stored as
// text in the storefront's wire format (YYYY-MM-DD, HH:MM); pointer fields
// are nullable admin-managed columns.
type Booking struct {
	ID               int64     `db:"id"`
	CustomerName     string    `db:"customer_name"`
	CustomerEmail    string    `db:"customer_email"`
	CustomerPhone    string    `db:"customer_phone"`
	EventDate        string    `db:"event_date"`
	EventStartTime   *string   `db:"event_start_time"`
	EventEndTime     *string   `db:"event_end_time"`
	BounceHouseType  *string   `db:"bounce_house_type"`
	OrganizationName *string   `db:"organization_name"`
	EventAddress     *string   `db:"event_address"`
	EventSurface     *string   `db:"event_surface"`
	EventIsIndoor    *int      `db:"event_is_indoor"`
	InvoiceNumber    *string   `db:"invoice_number"`
	ContractNumber   *string   `db:"contract_number"`
	SetupDate        *string   `db:"setup_date"`
	DeliveryWindow   *string   `db:"delivery_window"`
	AfterHoursWindow *string   `db:"after_hours_window"`
	DiscountPercent  *float64  `db:"discount_percent"`
	SubtotalAmount   *float64  `db:"subtotal_amount"`
	DeliveryFee      *float64  `db:"delivery_fee"`
	TaxAmount        *float64  `db:"tax_amount"`
	TotalAmount      *float64  `db:"total_amount"`
	DepositAmount    *float64  `db:"deposit_amount"`
	BalanceDue       *float64  `db:"balance_due"`
	PaymentMethod    *string   `db:"payment_method"`
	InternalNotes    *string   `db:"internal_notes"`
	CreatedAt        time.Time `db:"created_at"`

	// Items is attached by the repository; always non-nil after a fetch.
	Items []*BookingItem
}

// BookingItem is one priced line of a booking.
type BookingItem struct {
	ID              int64   `db:"id"`
	BookingID       int64   `db:"booking_id"`
	ProductName     string  `db:"product_name"`
	ProductCategory *string `db:"product_category"`
	Quantity        float64 `db:"quantity"`
	UnitPrice       float64 `db:"unit_price"`
	TotalPrice      float64 `db:"total_price"`
	Notes           *string `db:"notes"`
}
