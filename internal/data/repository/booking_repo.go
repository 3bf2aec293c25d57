package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/data/entity"
	"github.com/sauls8/nwa-jumpers/pkg/database"
)

type BookingRepository interface {
	// Create inserts the header, then the items, sequentially. A failure
	// after the header insert leaves the header without items; callers
	// accept that over holding a transaction open per request.
	Create(ctx context.Context, booking *entity.Booking, items []*entity.BookingItem) (int64, error)

	// FindByID returns the booking with items attached, or (nil, nil)
	// when no such row exists.
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)

	FindAllOrderedByEventDate(ctx context.Context) ([]*entity.Booking, error)
	FindByDate(ctx context.Context, date string) ([]*entity.Booking, error)
	DatesWithBookings(ctx context.Context) ([]string, error)
	CountByDate(ctx context.Context, date, bounceHouseType string) (int, error)

	// Update overwrites the given columns. fields must use column names.
	Update(ctx context.Context, id int64, fields map[string]any) error

	// ReplaceItems deletes every item of the booking and inserts the new
	// list in order.
	ReplaceItems(ctx context.Context, bookingID int64, items []*entity.BookingItem) error
}

const bookingColumns = `id, customer_name, customer_email, customer_phone, event_date,
		event_start_time, event_end_time, bounce_house_type, organization_name,
		event_address, event_surface, event_is_indoor, invoice_number, contract_number,
		setup_date, delivery_window, after_hours_window, discount_percent,
		subtotal_amount, delivery_fee, tax_amount, total_amount, deposit_amount,
		balance_due, payment_method, internal_notes, created_at`

type bookingRepository struct {
	db  database.PgxIface
	sb  sq.StatementBuilderType
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		log: log.With(zap.String("repository", "booking")),
	}
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.CustomerName,
		&b.CustomerEmail,
		&b.CustomerPhone,
		&b.EventDate,
		&b.EventStartTime,
		&b.EventEndTime,
		&b.BounceHouseType,
		&b.OrganizationName,
		&b.EventAddress,
		&b.EventSurface,
		&b.EventIsIndoor,
		&b.InvoiceNumber,
		&b.ContractNumber,
		&b.SetupDate,
		&b.DeliveryWindow,
		&b.AfterHoursWindow,
		&b.DiscountPercent,
		&b.SubtotalAmount,
		&b.DeliveryFee,
		&b.TaxAmount,
		&b.TotalAmount,
		&b.DepositAmount,
		&b.BalanceDue,
		&b.PaymentMethod,
		&b.InternalNotes,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Items = []*entity.BookingItem{}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking, items []*entity.BookingItem) (int64, error) {
	query := `
		INSERT INTO bookings (
			customer_name, customer_email, customer_phone, event_date,
			event_start_time, event_end_time, bounce_house_type, organization_name,
			event_address, event_surface, event_is_indoor, invoice_number,
			discount_percent, subtotal_amount, delivery_fee, tax_amount,
			total_amount, internal_notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.EventDate,
		booking.EventStartTime,
		booking.EventEndTime,
		booking.BounceHouseType,
		booking.OrganizationName,
		booking.EventAddress,
		booking.EventSurface,
		booking.EventIsIndoor,
		booking.InvoiceNumber,
		booking.DiscountPercent,
		booking.SubtotalAmount,
		booking.DeliveryFee,
		booking.TaxAmount,
		booking.TotalAmount,
		booking.InternalNotes,
	).Scan(&id)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer", booking.CustomerName),
			zap.String("event_date", booking.EventDate),
		)
		return 0, fmt.Errorf("create booking for %s: %w", booking.EventDate, err)
	}

	for _, item := range items {
		if err := r.insertItem(ctx, id, item); err != nil {
			return 0, err
		}
	}

	return id, nil
}

func (r *bookingRepository) insertItem(ctx context.Context, bookingID int64, item *entity.BookingItem) error {
	query := `
		INSERT INTO booking_items (booking_id, product_name, product_category, quantity, unit_price, total_price, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		bookingID,
		item.ProductName,
		item.ProductCategory,
		item.Quantity,
		item.UnitPrice,
		item.TotalPrice,
		item.Notes,
	)
	if err != nil {
		r.log.Error("Failed to insert booking item",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.String("product_name", item.ProductName),
		)
		return fmt.Errorf("insert item %q for booking %d: %w", item.ProductName, bookingID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	if err := r.attachItems(ctx, []*entity.Booking{booking}); err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *bookingRepository) FindAllOrderedByEventDate(ctx context.Context) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings ORDER BY event_date ASC, created_at DESC`, bookingColumns)
	return r.findMany(ctx, query)
}

func (r *bookingRepository) FindByDate(ctx context.Context, date string) ([]*entity.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE event_date = $1
		ORDER BY event_start_time ASC, created_at DESC
	`, bookingColumns)
	return r.findMany(ctx, query, date)
}

func (r *bookingRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err))
		return nil, fmt.Errorf("query bookings: %w", err)
	}
	defer rows.Close()

	bookings := []*entity.Booking{}
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	if err := r.attachItems(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// attachItems loads the items of every booking in one query and groups them
// by booking, preserving insertion order.
func (r *bookingRepository) attachItems(ctx context.Context, bookings []*entity.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int64, len(bookings))
	byID := make(map[int64]*entity.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
		b.Items = []*entity.BookingItem{}
	}

	query := `
		SELECT id, booking_id, product_name, product_category, quantity, unit_price, total_price, notes
		FROM booking_items
		WHERE booking_id = ANY($1)
		ORDER BY id ASC
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to query booking items", zap.Error(err))
		return fmt.Errorf("query booking items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.BookingItem
		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.ProductName,
			&item.ProductCategory,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
			&item.Notes,
		)
		if err != nil {
			r.log.Error("Failed to scan booking item row", zap.Error(err))
			return fmt.Errorf("scan booking item row: %w", err)
		}

		if booking, ok := byID[item.BookingID]; ok {
			booking.Items = append(booking.Items, &item)
		}
	}

	return rows.Err()
}

func (r *bookingRepository) DatesWithBookings(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT event_date FROM bookings ORDER BY event_date ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query booked dates", zap.Error(err))
		return nil, fmt.Errorf("query booked dates: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan booked date: %w", err)
		}
		dates = append(dates, date)
	}

	return dates, rows.Err()
}

func (r *bookingRepository) CountByDate(ctx context.Context, date, bounceHouseType string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE event_date = $1`
	args := []any{date}

	if bounceHouseType != "" {
		query += ` AND bounce_house_type = $2`
		args = append(args, bounceHouseType)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by date",
			zap.Error(err),
			zap.String("date", date),
		)
		return 0, fmt.Errorf("count bookings on %s: %w", date, err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	query, args, err := r.sb.
		Update("bookings").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build booking update: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("update booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", id)
	}

	return nil
}

func (r *bookingRepository) ReplaceItems(ctx context.Context, bookingID int64, items []*entity.BookingItem) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM booking_items WHERE booking_id = $1`, bookingID); err != nil {
		r.log.Error("Failed to clear booking items",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return fmt.Errorf("clear items for booking %d: %w", bookingID, err)
	}

	for _, item := range items {
		if err := r.insertItem(ctx, bookingID, item); err != nil {
			return err
		}
	}

	return nil
}
