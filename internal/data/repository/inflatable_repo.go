package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sauls8/nwa-jumpers/internal/data/entity"
	"github.com/sauls8/nwa-jumpers/pkg/database"
)

type InflatableRepository interface {
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Inflatable, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.Inflatable, error)

	// FindByID returns (nil, nil) when no such row exists. Inactive rows
	// are still returned; the caller decides what to show.
	FindByID(ctx context.Context, id string) (*entity.Inflatable, error)

	Create(ctx context.Context, inflatable *entity.Inflatable) error

	// Update overwrites the given columns. fields must use column names;
	// features must already be JSON-encoded.
	Update(ctx context.Context, id string, fields map[string]any) error

	// SetActive flips the soft-delete flag. Rows are never hard-deleted.
	SetActive(ctx context.Context, id string, active bool) error
}

const inflatableColumns = `id, name, description, image, price, category, features,
		dimensions, capacity, is_active, created_at, updated_at`

type inflatableRepository struct {
	db  database.PgxIface
	sb  sq.StatementBuilderType
	log *zap.Logger
}

func NewInflatableRepository(db database.PgxIface, log *zap.Logger) InflatableRepository {
	return &inflatableRepository{
		db:  db,
		sb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		log: log.With(zap.String("repository", "inflatable")),
	}
}

// EncodeFeatures stores a feature list as a JSON text column. Empty lists
// store NULL.
func EncodeFeatures(features []string) *string {
	if len(features) == 0 {
		return nil
	}
	raw, err := json.Marshal(features)
	if err != nil {
		return nil
	}
	encoded := string(raw)
	return &encoded
}

// DecodeFeatures accepts either a JSON array or a legacy comma-separated
// list and always yields a non-nil slice.
func DecodeFeatures(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}

	var features []string
	if err := json.Unmarshal([]byte(*raw), &features); err == nil {
		return features
	}

	features = []string{}
	for _, part := range strings.Split(*raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			features = append(features, trimmed)
		}
	}
	return features
}

func scanInflatable(row pgx.Row) (*entity.Inflatable, error) {
	var (
		inf         entity.Inflatable
		rawFeatures *string
		isActive    int
	)

	err := row.Scan(
		&inf.ID,
		&inf.Name,
		&inf.Description,
		&inf.Image,
		&inf.Price,
		&inf.Category,
		&rawFeatures,
		&inf.Dimensions,
		&inf.Capacity,
		&isActive,
		&inf.CreatedAt,
		&inf.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	inf.Features = DecodeFeatures(rawFeatures)
	inf.IsActive = isActive != 0
	return &inf, nil
}

func (r *inflatableRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Inflatable, error) {
	query := fmt.Sprintf(`SELECT %s FROM inflatables ORDER BY category, name ASC`, inflatableColumns)
	if activeOnly {
		query = fmt.Sprintf(`SELECT %s FROM inflatables WHERE is_active = 1 ORDER BY category, name ASC`, inflatableColumns)
	}

	return r.findMany(ctx, query)
}

func (r *inflatableRepository) FindByCategory(ctx context.Context, category string) ([]*entity.Inflatable, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM inflatables
		WHERE category = $1 AND is_active = 1
		ORDER BY name ASC
	`, inflatableColumns)

	return r.findMany(ctx, query, category)
}

func (r *inflatableRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Inflatable, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query inflatables", zap.Error(err))
		return nil, fmt.Errorf("query inflatables: %w", err)
	}
	defer rows.Close()

	inflatables := []*entity.Inflatable{}
	for rows.Next() {
		inf, err := scanInflatable(rows)
		if err != nil {
			r.log.Error("Failed to scan inflatable row", zap.Error(err))
			return nil, fmt.Errorf("scan inflatable row: %w", err)
		}
		inflatables = append(inflatables, inf)
	}

	return inflatables, rows.Err()
}

func (r *inflatableRepository) FindByID(ctx context.Context, id string) (*entity.Inflatable, error) {
	query := fmt.Sprintf(`SELECT %s FROM inflatables WHERE id = $1`, inflatableColumns)

	inf, err := scanInflatable(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find inflatable by ID",
			zap.Error(err),
			zap.String("inflatable_id", id),
		)
		return nil, fmt.Errorf("find inflatable by ID %s: %w", id, err)
	}

	return inf, nil
}

func (r *inflatableRepository) Create(ctx context.Context, inflatable *entity.Inflatable) error {
	query := `
		INSERT INTO inflatables (id, name, description, image, price, category, features, dimensions, capacity, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	isActive := 0
	if inflatable.IsActive {
		isActive = 1
	}

	_, err := r.db.Exec(ctx, query,
		inflatable.ID,
		inflatable.Name,
		inflatable.Description,
		inflatable.Image,
		inflatable.Price,
		inflatable.Category,
		EncodeFeatures(inflatable.Features),
		inflatable.Dimensions,
		inflatable.Capacity,
		isActive,
	)
	if err != nil {
		r.log.Error("Failed to create inflatable",
			zap.Error(err),
			zap.String("inflatable_id", inflatable.ID),
		)
		return fmt.Errorf("create inflatable %s: %w", inflatable.ID, err)
	}

	return nil
}

func (r *inflatableRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	fields["updated_at"] = sq.Expr("now()")

	query, args, err := r.sb.
		Update("inflatables").
		SetMap(fields).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build inflatable update: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update inflatable",
			zap.Error(err),
			zap.String("inflatable_id", id),
		)
		return fmt.Errorf("update inflatable %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("inflatable %s not found", id)
	}

	return nil
}

func (r *inflatableRepository) SetActive(ctx context.Context, id string, active bool) error {
	isActive := 0
	if active {
		isActive = 1
	}

	result, err := r.db.Exec(ctx,
		`UPDATE inflatables SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, isActive,
	)
	if err != nil {
		r.log.Error("Failed to set inflatable active flag",
			zap.Error(err),
			zap.String("inflatable_id", id),
		)
		return fmt.Errorf("set active for inflatable %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("inflatable %s not found", id)
	}

	return nil
}
