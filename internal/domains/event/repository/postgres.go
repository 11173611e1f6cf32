package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"fashionstore-backend/internal/domains/event"
)

const eventColumns = `
	id, name, slug, description, discount_percentage,
	start_date, end_date, is_active, is_featured,
	scope, category_id, min_price, max_price,
	created_at, updated_at`

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) event.Repository {
	return &postgresRepository{db: db}
}

func scanEvent(row pgx.Row) (*event.Event, error) {
	var e event.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.Slug, &e.Description, &e.DiscountPercentage,
		&e.StartDate, &e.EndDate, &e.IsActive, &e.IsFeatured,
		&e.Scope, &e.CategoryID, &e.MinPrice, &e.MaxPrice,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *postgresRepository) Create(ctx context.Context, e *event.Event) error {
	query := `
		INSERT INTO events (
			id, name, slug, description, discount_percentage,
			start_date, end_date, is_active, is_featured,
			scope, category_id, min_price, max_price,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.Exec(ctx, query,
		e.ID, e.Name, e.Slug, e.Description, e.DiscountPercentage,
		e.StartDate, e.EndDate, e.IsActive, e.IsFeatured,
		e.Scope, e.CategoryID, e.MinPrice, e.MaxPrice,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return event.ErrSlugAlreadyExists
		}
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*event.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	e, err := scanEvent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*event.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE slug = $1`, eventColumns)

	e, err := scanEvent(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return e, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]event.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY created_at DESC`, eventColumns)
	return r.queryList(ctx, query)
}

func (r *postgresRepository) GetActive(ctx context.Context) ([]event.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE is_active = true ORDER BY start_date`, eventColumns)
	return r.queryList(ctx, query)
}

func (r *postgresRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]event.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, e *event.Event) error {
	query := `
		UPDATE events
		SET name = $2, slug = $3, description = $4, discount_percentage = $5,
		    start_date = $6, end_date = $7, is_active = $8, is_featured = $9,
		    scope = $10, category_id = $11, min_price = $12, max_price = $13,
		    updated_at = $14
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		e.ID, e.Name, e.Slug, e.Description, e.DiscountPercentage,
		e.StartDate, e.EndDate, e.IsActive, e.IsFeatured,
		e.Scope, e.CategoryID, e.MinPrice, e.MaxPrice, e.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return event.ErrSlugAlreadyExists
		}
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return event.ErrEventNotFound
	}
	return nil
}
