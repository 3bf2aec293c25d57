package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/data/entity"
	"github.com/sauls8/nwa-jumpers/internal/data/repository"
	"github.com/sauls8/nwa-jumpers/internal/document"
	"github.com/sauls8/nwa-jumpers/internal/dto/request"
	"github.com/sauls8/nwa-jumpers/internal/dto/response"
	"github.com/sauls8/nwa-jumpers/internal/pricing"
	"github.com/sauls8/nwa-jumpers/pkg/utils"
)

type BookingService interface {
	// Storefront endpoints
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (int64, error)
	CreateQuote(ctx context.Context, req *request.CreateQuoteRequest) (int64, error)
	CheckAvailability(ctx context.Context, date, bounceHouseType string) (*response.AvailabilityResponse, error)
	DatesWithBookings(ctx context.Context) ([]string, error)

	// Admin endpoints
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, id int64) (*response.BookingResponse, error)
	BookingsByDate(ctx context.Context, date string) ([]response.BookingResponse, error)
	UpdateBooking(ctx context.Context, id int64, patch request.BookingPatch) (*response.BookingResponse, error)
	RenderAgreement(ctx context.Context, id int64) (string, []byte, error)
}

type bookingService struct {
	repo    *repository.Repository
	company utils.CompanyConfig
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, company utils.CompanyConfig, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		company: company,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (int64, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return 0, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking := &entity.Booking{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		EventDate:       req.EventDate,
		EventStartTime:  &req.EventStartTime,
		EventEndTime:    &req.EventEndTime,
		BounceHouseType: &req.BounceHouseType,
	}

	id, err := s.repo.Booking.Create(ctx, booking, nil)
	if err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("event_date", req.EventDate),
		)
		return 0, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", id),
		zap.String("customer", req.CustomerName),
		zap.String("event_date", req.EventDate),
		zap.String("bounce_house_type", req.BounceHouseType),
	)

	return id, nil
}

func (s *bookingService) CreateQuote(ctx context.Context, req *request.CreateQuoteRequest) (int64, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create quote validation failed", zap.Any("errors", errs))
		return 0, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Price the cart server-side. The client's amounts are never trusted;
	// a disagreement is logged and the server's numbers win.
	lines := make([]pricing.Line, len(req.Items))
	for i, item := range req.Items {
		lines[i] = pricing.Line{
			ProductName:     item.ProductName,
			ProductCategory: item.ProductCategory,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
		}
	}

	breakdown := pricing.Quote(lines, pricing.NormalizeSurface(req.EventSurface), req.OvernightPickup)

	if req.TotalAmount != nil && math.Abs(*req.TotalAmount-breakdown.Total) > 0.01 {
		s.log.Warn("Client-computed total disagrees with server pricing",
			zap.Float64("client_total", *req.TotalAmount),
			zap.Float64("server_total", breakdown.Total),
			zap.String("customer", req.CustomerName),
		)
	}

	productNames := make([]string, len(req.Items))
	for i, item := range req.Items {
		productNames[i] = item.ProductName
	}
	bounceHouseType := strings.Join(productNames, ", ")

	invoiceNumber := utils.GenerateInvoiceNumber()
	deliveryFee := breakdown.SurfaceFee + breakdown.OvernightFee

	booking := &entity.Booking{
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		EventDate:        req.EventDate,
		EventStartTime:   stringOrNil(req.EventStartTime),
		EventEndTime:     stringOrNil(req.EventEndTime),
		BounceHouseType:  &bounceHouseType,
		OrganizationName: stringOrNil(req.OrganizationName),
		EventAddress:     stringOrNil(req.EventAddress),
		EventSurface:     stringOrNil(req.EventSurface),
		InvoiceNumber:    &invoiceNumber,
		DiscountPercent:  &breakdown.DiscountPercent,
		SubtotalAmount:   &breakdown.BaseSubtotal,
		DeliveryFee:      &deliveryFee,
		TaxAmount:        &breakdown.Tax,
		TotalAmount:      &breakdown.Total,
		InternalNotes:    stringOrNil(req.Notes),
	}

	if req.EventIsIndoor != nil {
		indoor := 0
		if *req.EventIsIndoor {
			indoor = 1
		}
		booking.EventIsIndoor = &indoor
	}

	items := make([]*entity.BookingItem, len(req.Items))
	for i, item := range req.Items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		lineTotal := pricing.Round2(pricing.LineTotal(lines[i]))
		if item.TotalPrice != nil && math.Abs(*item.TotalPrice-lineTotal) > 0.01 {
			s.log.Warn("Client line total disagrees with server pricing",
				zap.String("product_name", item.ProductName),
				zap.Float64("client_line_total", *item.TotalPrice),
				zap.Float64("server_line_total", lineTotal),
			)
		}

		items[i] = &entity.BookingItem{
			ProductName:     item.ProductName,
			ProductCategory: stringOrNil(item.ProductCategory),
			Quantity:        qty,
			UnitPrice:       item.UnitPrice,
			TotalPrice:      lineTotal,
			Notes:           stringOrNil(item.Notes),
		}
	}

	id, err := s.repo.Booking.Create(ctx, booking, items)
	if err != nil {
		s.log.Error("Failed to create quote booking",
			zap.Error(err),
			zap.String("event_date", req.EventDate),
		)
		return 0, fmt.Errorf("create quote: %w", err)
	}

	s.log.Info("Quote booking created",
		zap.Int64("booking_id", id),
		zap.String("invoice_number", invoiceNumber),
		zap.String("customer", req.CustomerName),
		zap.Int("item_count", len(items)),
		zap.Float64("total_amount", breakdown.Total),
	)

	return id, nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, date, bounceHouseType string) (*response.AvailabilityResponse, error) {
	if date == "" {
		return nil, fmt.Errorf("validation failed: date is required")
	}

	count, err := s.repo.Booking.CountByDate(ctx, date, bounceHouseType)
	if err != nil {
		// Clients treat an error as unavailable, so a date we cannot
		// verify is never sold.
		s.log.Error("Failed to check availability",
			zap.Error(err),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("check availability for %s: %w", date, err)
	}

	resp := &response.AvailabilityResponse{
		Date:          date,
		IsAvailable:   count == 0,
		BookingsCount: count,
	}
	if resp.IsAvailable {
		resp.Message = "This date is available"
	} else {
		resp.Message = "This date is already booked"
	}

	return resp, nil
}

func (s *bookingService) DatesWithBookings(ctx context.Context) ([]string, error) {
	dates, err := s.repo.Booking.DatesWithBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get booked dates: %w", err)
	}
	return dates, nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAllOrderedByEventDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	s.log.Info("Bookings listed", zap.Int("count", len(bookings)))
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	return response.BookingToResponse(booking), nil
}

func (s *bookingService) BookingsByDate(ctx context.Context, date string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get bookings for %s: %w", date, err)
	}

	return response.BookingsToResponse(bookings), nil
}

// identityPatchFields never store NULL. A present-null or blank value in
// the payload keeps the stored value instead of clearing it.
var identityPatchFields = []string{"customer_name", "customer_email", "customer_phone", "event_date"}

// nullableTextFields and nullableNumberFields accept all three payload
// states: absent keeps the stored value, null clears it, a value
// overwrites it.
var nullableTextFields = []string{
	"event_start_time", "event_end_time", "bounce_house_type",
	"organization_name", "event_address", "event_surface",
	"invoice_number", "contract_number", "setup_date",
	"delivery_window", "after_hours_window", "payment_method",
	"internal_notes",
}

var nullableNumberFields = []string{
	"discount_percent", "subtotal_amount", "delivery_fee",
	"tax_amount", "total_amount", "deposit_amount", "balance_due",
}

func (s *bookingService) UpdateBooking(ctx context.Context, id int64, patch request.BookingPatch) (*response.BookingResponse, error) {
	existing, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	if patch.Has("customer_email") {
		if email := stringOrNil(patch.Value("customer_email")); email != nil && !utils.IsValidEmail(*email) {
			s.log.Warn("Update booking rejected, bad email format",
				zap.Int64("booking_id", id),
			)
			return nil, fmt.Errorf("validation failed: invalid email format")
		}
	}

	fields := map[string]any{}

	for _, key := range identityPatchFields {
		if !patch.Has(key) {
			continue
		}
		if v := stringOrNil(patch.Value(key)); v != nil {
			fields[key] = *v
		}
	}

	for _, key := range nullableTextFields {
		if patch.Has(key) {
			fields[key] = stringOrNil(patch.Value(key))
		}
	}

	for _, key := range nullableNumberFields {
		if patch.Has(key) {
			fields[key] = numberOrNil(patch.Value(key))
		}
	}

	// Unrecognized or null values keep the stored flag.
	if patch.Has("event_is_indoor") {
		if indoor := boolAsInt(patch.Value("event_is_indoor")); indoor != nil {
			fields["event_is_indoor"] = indoor
		}
	}

	if len(fields) > 0 {
		if err := s.repo.Booking.Update(ctx, id, fields); err != nil {
			s.log.Error("Failed to update booking",
				zap.Error(err),
				zap.Int64("booking_id", id),
			)
			return nil, fmt.Errorf("update booking %d: %w", id, err)
		}
	}

	// An items key, even with an empty array, replaces the whole item
	// list. Lines without a product name are dropped.
	if rawItems, ok := patch.ItemList(); ok {
		items := make([]*entity.BookingItem, 0, len(rawItems))
		for _, raw := range rawItems {
			name := stringOrNil(raw["product_name"])
			if name == nil {
				continue
			}

			item := &entity.BookingItem{
				ProductName:     *name,
				ProductCategory: stringOrNil(raw["product_category"]),
				Quantity:        1,
				Notes:           stringOrNil(raw["notes"]),
			}
			if qty := numberOrNil(raw["quantity"]); qty != nil && *qty >= 1 {
				item.Quantity = *qty
			}
			if price := numberOrNil(raw["unit_price"]); price != nil {
				item.UnitPrice = *price
			}
			if total := numberOrNil(raw["total_price"]); total != nil {
				item.TotalPrice = *total
			} else {
				item.TotalPrice = pricing.Round2(item.Quantity * item.UnitPrice)
			}

			items = append(items, item)
		}

		if err := s.repo.Booking.ReplaceItems(ctx, id, items); err != nil {
			return nil, fmt.Errorf("replace items for booking %d: %w", id, err)
		}
	}

	updated, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload booking %d: %w", id, err)
	}
	if updated == nil {
		return nil, fmt.Errorf("booking %d not found", id)
	}

	s.log.Info("Booking updated",
		zap.Int64("booking_id", id),
		zap.Int("field_count", len(fields)),
	)

	return response.BookingToResponse(updated), nil
}

func (s *bookingService) RenderAgreement(ctx context.Context, id int64) (string, []byte, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("get booking %d: %w", id, err)
	}
	if booking == nil {
		return "", nil, fmt.Errorf("booking %d not found", id)
	}

	pdf, err := document.RenderAgreement(booking, s.company)
	if err != nil {
		s.log.Error("Failed to render rental agreement",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return "", nil, fmt.Errorf("render agreement for booking %d: %w", id, err)
	}

	s.log.Info("Rental agreement rendered",
		zap.Int64("booking_id", id),
		zap.Int("bytes", len(pdf)),
	)

	return document.AgreementFilename(booking), pdf, nil
}
