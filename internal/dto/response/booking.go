package response

import (
	"time"

	"github.com/sauls8/nwa-jumpers/internal/data/entity"
)

// BookingResponse mirrors the original API's row-shaped booking JSON with
// items attached. Nullable columns stay pointers so absent values encode
// as null, not zero.
type BookingResponse struct {
	ID               int64                 `json:"id"`
	CustomerName     string                `json:"customer_name"`
	CustomerEmail    string                `json:"customer_email"`
	CustomerPhone    string                `json:"customer_phone"`
	EventDate        string                `json:"event_date"`
	EventStartTime   *string               `json:"event_start_time"`
	EventEndTime     *string               `json:"event_end_time"`
	BounceHouseType  *string               `json:"bounce_house_type"`
	OrganizationName *string               `json:"organization_name"`
	EventAddress     *string               `json:"event_address"`
	EventSurface     *string               `json:"event_surface"`
	EventIsIndoor    *int                  `json:"event_is_indoor"`
	InvoiceNumber    *string               `json:"invoice_number"`
	ContractNumber   *string               `json:"contract_number"`
	SetupDate        *string               `json:"setup_date"`
	DeliveryWindow   *string               `json:"delivery_window"`
	AfterHoursWindow *string               `json:"after_hours_window"`
	DiscountPercent  *float64              `json:"discount_percent"`
	SubtotalAmount   *float64              `json:"subtotal_amount"`
	DeliveryFee      *float64              `json:"delivery_fee"`
	TaxAmount        *float64              `json:"tax_amount"`
	TotalAmount      *float64              `json:"total_amount"`
	DepositAmount    *float64              `json:"deposit_amount"`
	BalanceDue       *float64              `json:"balance_due"`
	PaymentMethod    *string               `json:"payment_method"`
	InternalNotes    *string               `json:"internal_notes"`
	CreatedAt        time.Time             `json:"created_at"`
	Items            []BookingItemResponse `json:"items"`
}

type BookingItemResponse struct {
	ID              int64   `json:"id"`
	BookingID       int64   `json:"booking_id"`
	ProductName     string  `json:"product_name"`
	ProductCategory *string `json:"product_category"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	TotalPrice      float64 `json:"total_price"`
	Notes           *string `json:"notes"`
}

type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID int64  `json:"booking_id"`
}

type UpdateBookingResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

type BookingsByDateResponse struct {
	Date     string            `json:"date"`
	Bookings []BookingResponse `json:"bookings"`
}

type DatesWithBookingsResponse struct {
	Dates []string `json:"dates"`
}

type AvailabilityResponse struct {
	Date          string `json:"date"`
	IsAvailable   bool   `json:"isAvailable"`
	BookingsCount int    `json:"bookingsCount"`
	Message       string `json:"message"`
}

func BookingToResponse(b *entity.Booking) *BookingResponse {
	items := make([]BookingItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, BookingItemResponse{
			ID:              item.ID,
			BookingID:       item.BookingID,
			ProductName:     item.ProductName,
			ProductCategory: item.ProductCategory,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			TotalPrice:      item.TotalPrice,
			Notes:           item.Notes,
		})
	}

	return &BookingResponse{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		EventDate:        b.EventDate,
		EventStartTime:   b.EventStartTime,
		EventEndTime:     b.EventEndTime,
		BounceHouseType:  b.BounceHouseType,
		OrganizationName: b.OrganizationName,
		EventAddress:     b.EventAddress,
		EventSurface:     b.EventSurface,
		EventIsIndoor:    b.EventIsIndoor,
		InvoiceNumber:    b.InvoiceNumber,
		ContractNumber:   b.ContractNumber,
		SetupDate:        b.SetupDate,
		DeliveryWindow:   b.DeliveryWindow,
		AfterHoursWindow: b.AfterHoursWindow,
		DiscountPercent:  b.DiscountPercent,
		SubtotalAmount:   b.SubtotalAmount,
		DeliveryFee:      b.DeliveryFee,
		TaxAmount:        b.TaxAmount,
		TotalAmount:      b.TotalAmount,
		DepositAmount:    b.DepositAmount,
		BalanceDue:       b.BalanceDue,
		PaymentMethod:    b.PaymentMethod,
		InternalNotes:    b.InternalNotes,
		CreatedAt:        b.CreatedAt,
		Items:            items,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, *BookingToResponse(b))
	}
	return out
}
