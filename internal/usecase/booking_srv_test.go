package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sauls8/nwa-jumpers/internal/data/entity"
	"github.com/sauls8/nwa-jumpers/internal/data/repository"
	"github.com/sauls8/nwa-jumpers/internal/dto/request"
	"github.com/sauls8/nwa-jumpers/pkg/utils"
)

// fakeBookingRepo records calls so tests can assert on what the service
// asked the storage layer to do.
type fakeBookingRepo struct {
	bookings map[int64]*entity.Booking
	nextID   int64

	counts   map[string]int
	countErr error

	updateCalls  []map[string]any
	replaceCalls [][]*entity.BookingItem
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[int64]*entity.Booking{},
		nextID:   1,
		counts:   map[string]int{},
	}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking, items []*entity.BookingItem) (int64, error) {
	id := f.nextID
	f.nextID++

	booking.ID = id
	booking.Items = items
	f.bookings[id] = booking
	return id, nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	if b.Items == nil {
		b.Items = []*entity.BookingItem{}
	}
	return b, nil
}

func (f *fakeBookingRepo) FindAllOrderedByEventDate(ctx context.Context) ([]*entity.Booking, error) {
	out := []*entity.Booking{}
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	out := []*entity.Booking{}
	for _, b := range f.bookings {
		if b.EventDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) DatesWithBookings(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	dates := []string{}
	for _, b := range f.bookings {
		if !seen[b.EventDate] {
			seen[b.EventDate] = true
			dates = append(dates, b.EventDate)
		}
	}
	return dates, nil
}

func (f *fakeBookingRepo) CountByDate(ctx context.Context, date, bounceHouseType string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[date], nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, id int64, fields map[string]any) error {
	if _, ok := f.bookings[id]; !ok {
		return errors.New("booking not found")
	}
	f.updateCalls = append(f.updateCalls, fields)
	return nil
}

func (f *fakeBookingRepo) ReplaceItems(ctx context.Context, bookingID int64, items []*entity.BookingItem) error {
	f.replaceCalls = append(f.replaceCalls, items)
	if b, ok := f.bookings[bookingID]; ok {
		b.Items = items
	}
	return nil
}

func newBookingService(t *testing.T, fake *fakeBookingRepo) BookingService {
	t.Helper()
	repo := &repository.Repository{Booking: fake}
	company := utils.CompanyConfig{Name: "NWA Jumpers", Phone: "(479) 696-4040"}
	return NewBookingService(repo, company, zap.NewNop())
}

func TestCreateBookingRequiresValidEmail(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)

	_, err := svc.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "not-an-email",
		CustomerPhone:   "479-555-0100",
		EventDate:       "2026-09-12",
		EventStartTime:  "10:00",
		EventEndTime:    "16:00",
		BounceHouseType: "Castle Combo",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, fake.bookings)
}

func TestCreateQuotePricesCartServerSide(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)

	clientTotal := 999.99 // deliberately wrong; the server must not store it
	id, err := svc.CreateQuote(context.Background(), &request.CreateQuoteRequest{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "479-555-0100",
		EventDate:       "2026-09-12",
		EventSurface:    "Concrete",
		OvernightPickup: true,
		Items: []request.QuoteItem{
			{ProductName: "Castle Combo", Quantity: 1, UnitPrice: 250},
			{ProductName: "Water Slide", Quantity: 1, UnitPrice: 200},
		},
		TotalAmount: &clientTotal,
	})
	require.NoError(t, err)

	stored := fake.bookings[id]
	require.NotNil(t, stored)

	// 450 base, 10% multi-item discount, $30 surface + $75 overnight,
	// 10% tax: 450 - 45 + 105 = 510, tax 51, total 561.
	require.NotNil(t, stored.SubtotalAmount)
	assert.Equal(t, 450.0, *stored.SubtotalAmount)
	require.NotNil(t, stored.DiscountPercent)
	assert.Equal(t, 10.0, *stored.DiscountPercent)
	require.NotNil(t, stored.DeliveryFee)
	assert.Equal(t, 105.0, *stored.DeliveryFee)
	require.NotNil(t, stored.TaxAmount)
	assert.Equal(t, 51.0, *stored.TaxAmount)
	require.NotNil(t, stored.TotalAmount)
	assert.Equal(t, 561.0, *stored.TotalAmount)

	require.NotNil(t, stored.InvoiceNumber)
	assert.Regexp(t, `^INV-\d{8}-\d{4}$`, *stored.InvoiceNumber)
	require.NotNil(t, stored.BounceHouseType)
	assert.Equal(t, "Castle Combo, Water Slide", *stored.BounceHouseType)
	assert.Len(t, stored.Items, 2)
	assert.Equal(t, 250.0, stored.Items[0].TotalPrice)
}

func TestCreateQuoteLogsClientLineTotalDisagreement(t *testing.T) {
	fake := newFakeBookingRepo()
	core, logs := observer.New(zap.WarnLevel)
	repo := &repository.Repository{Booking: fake}
	svc := NewBookingService(repo, utils.CompanyConfig{Name: "NWA Jumpers"}, zap.New(core))

	wrongTotal := 999.0
	id, err := svc.CreateQuote(context.Background(), &request.CreateQuoteRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "479-555-0100",
		EventDate:     "2026-09-12",
		Items: []request.QuoteItem{
			{ProductName: "Castle Combo", Quantity: 1, UnitPrice: 250, TotalPrice: &wrongTotal},
		},
	})
	require.NoError(t, err)

	// The server's line total is stored regardless of the client's claim.
	assert.Equal(t, 250.0, fake.bookings[id].Items[0].TotalPrice)
	assert.Equal(t, 1, logs.FilterMessageSnippet("line total disagrees").Len())
}

func TestCreateQuoteRejectsEmptyCart(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)

	_, err := svc.CreateQuote(context.Background(), &request.CreateQuoteRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "479-555-0100",
		EventDate:     "2026-09-12",
		Items:         []request.QuoteItem{},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCheckAvailability(t *testing.T) {
	fake := newFakeBookingRepo()
	fake.counts["2026-09-12"] = 2
	svc := newBookingService(t, fake)

	open, err := svc.CheckAvailability(context.Background(), "2026-10-01", "")
	require.NoError(t, err)
	assert.True(t, open.IsAvailable)
	assert.Equal(t, 0, open.BookingsCount)

	taken, err := svc.CheckAvailability(context.Background(), "2026-09-12", "")
	require.NoError(t, err)
	assert.False(t, taken.IsAvailable)
	assert.Equal(t, 2, taken.BookingsCount)
}

func TestCheckAvailabilitySurfacesRepositoryErrors(t *testing.T) {
	fake := newFakeBookingRepo()
	fake.countErr = errors.New("connection refused")
	svc := newBookingService(t, fake)

	resp, err := svc.CheckAvailability(context.Background(), "2026-09-12", "")
	require.Error(t, err)
	assert.Nil(t, resp)
}

func seedBooking(fake *fakeBookingRepo) int64 {
	org := "Springdale Parks"
	booking := &entity.Booking{
		CustomerName:     "Jane Doe",
		CustomerEmail:    "jane@example.com",
		CustomerPhone:    "479-555-0100",
		EventDate:        "2026-09-12",
		OrganizationName: &org,
	}
	id, _ := fake.Create(context.Background(), booking, []*entity.BookingItem{
		{ProductName: "Castle Combo", Quantity: 1, UnitPrice: 250, TotalPrice: 250},
	})
	return id
}

func TestUpdateBookingPatchSemantics(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)
	id := seedBooking(fake)

	_, err := svc.UpdateBooking(context.Background(), id, request.BookingPatch{
		"customer_name":     "Janet Doe",
		"customer_email":    nil, // identity fields are never cleared
		"organization_name": nil, // nullable fields are
		"total_amount":      "450.50",
		"event_is_indoor":   true,
	})
	require.NoError(t, err)

	require.Len(t, fake.updateCalls, 1)
	fields := fake.updateCalls[0]

	assert.Equal(t, "Janet Doe", fields["customer_name"])
	assert.NotContains(t, fields, "customer_email")

	org, ok := fields["organization_name"].(*string)
	require.True(t, ok)
	assert.Nil(t, org)

	total, ok := fields["total_amount"].(*float64)
	require.True(t, ok)
	require.NotNil(t, total)
	assert.Equal(t, 450.50, *total)

	indoor, ok := fields["event_is_indoor"].(*int)
	require.True(t, ok)
	require.NotNil(t, indoor)
	assert.Equal(t, 1, *indoor)
}

func TestUpdateBookingKeepsIndoorFlagOnUnrecognizedInput(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)
	id := seedBooking(fake)
	stored := 1
	fake.bookings[id].EventIsIndoor = &stored

	_, err := svc.UpdateBooking(context.Background(), id, request.BookingPatch{
		"event_is_indoor": "maybe",
	})
	require.NoError(t, err)
	assert.Empty(t, fake.updateCalls)

	_, err = svc.UpdateBooking(context.Background(), id, request.BookingPatch{
		"event_is_indoor": nil,
		"customer_name":   "Janet Doe",
	})
	require.NoError(t, err)
	require.Len(t, fake.updateCalls, 1)
	assert.NotContains(t, fake.updateCalls[0], "event_is_indoor")
}

func TestUpdateBookingRejectsBadEmail(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)
	id := seedBooking(fake)

	_, err := svc.UpdateBooking(context.Background(), id, request.BookingPatch{
		"customer_email": "nope",
		"customer_name":  "Janet Doe",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, fake.updateCalls)
	assert.Empty(t, fake.replaceCalls)
}

func TestUpdateBookingReplacesItems(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)
	id := seedBooking(fake)

	_, err := svc.UpdateBooking(context.Background(), id, request.BookingPatch{
		"items": []any{
			map[string]any{"product_name": "Obstacle Course", "quantity": 2.0, "unit_price": 300.0},
			map[string]any{"product_name": "   "}, // nameless lines are dropped
		},
	})
	require.NoError(t, err)

	require.Len(t, fake.replaceCalls, 1)
	items := fake.replaceCalls[0]
	require.Len(t, items, 1)
	assert.Equal(t, "Obstacle Course", items[0].ProductName)
	assert.Equal(t, 2.0, items[0].Quantity)
	assert.Equal(t, 600.0, items[0].TotalPrice)
}

func TestUpdateBookingLeavesItemsWhenKeyAbsent(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)
	id := seedBooking(fake)

	_, err := svc.UpdateBooking(context.Background(), id, request.BookingPatch{
		"internal_notes": "call before delivery",
	})
	require.NoError(t, err)

	assert.Empty(t, fake.replaceCalls)
}

func TestUpdateBookingNotFound(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)

	_, err := svc.UpdateBooking(context.Background(), 999, request.BookingPatch{
		"customer_name": "Ghost",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRenderAgreement(t *testing.T) {
	fake := newFakeBookingRepo()
	svc := newBookingService(t, fake)
	id := seedBooking(fake)

	filename, pdf, err := svc.RenderAgreement(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "booking-1-jane-doe.pdf", filename)
	require.Greater(t, len(pdf), 4)
	assert.Equal(t, "%PDF-", string(pdf[:5]))

	_, _, err = svc.RenderAgreement(context.Background(), 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
