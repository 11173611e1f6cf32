package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"fashionstore-backend/internal/domains/product"
)

// productColumns join categories để lấy slug/name
const productColumns = `
	p.id, p.name, p.slug, p.description, p.price, p.original_price,
	p.images, p.category_id, c.slug, c.name,
	p.is_featured, p.rating, p.sizes,
	p.fabric, p.color, p.care_instructions,
	p.created_at, p.updated_at`

const productFrom = `FROM products p JOIN categories c ON c.id = p.category_id`

type postgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) product.Repository {
	return &postgresRepository{db: db}
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.OriginalPrice,
		pq.Array(&p.Images), &p.CategoryID, &p.CategorySlug, &p.CategoryName,
		&p.IsFeatured, &p.Rating, pq.Array(&p.Sizes),
		&p.Fabric, &p.Color, &p.CareInstructions,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (
			id, name, slug, description, price, original_price, images,
			category_id, is_featured, rating, sizes,
			fabric, color, care_instructions, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.OriginalPrice,
		pq.Array(p.Images), p.CategoryID, p.IsFeatured, p.Rating, pq.Array(p.Sizes),
		p.Fabric, p.Color, p.CareInstructions, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation (slug)
				return product.ErrSlugAlreadyExists
			case "23503": // foreign_key_violation (category_id)
				return product.ErrCategoryNotFound
			}
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.id = $1`, productColumns, productFrom)

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*product.Product, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.slug = $1`, productColumns, productFrom)

	p, err := scanProduct(r.db.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, product.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product by slug: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]product.Product, error) {
	query := fmt.Sprintf(`SELECT %s %s ORDER BY p.created_at DESC`, productColumns, productFrom)
	return r.queryList(ctx, query)
}

func (r *postgresRepository) GetFeatured(ctx context.Context, limit int) ([]product.Product, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE p.is_featured = true ORDER BY p.created_at DESC LIMIT $1`,
		productColumns, productFrom)
	return r.queryList(ctx, query, limit)
}

func (r *postgresRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]product.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT %s %s WHERE p.id = ANY($1)`, productColumns, productFrom)
	return r.queryList(ctx, query, ids)
}

func (r *postgresRepository) queryList(ctx context.Context, query string, args ...interface{}) ([]product.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *postgresRepository) Update(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET name = $2, slug = $3, description = $4, price = $5, original_price = $6,
		    images = $7, category_id = $8, is_featured = $9, sizes = $10,
		    fabric = $11, color = $12, care_instructions = $13, updated_at = $14
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Price, p.OriginalPrice,
		pq.Array(p.Images), p.CategoryID, p.IsFeatured, pq.Array(p.Sizes),
		p.Fabric, p.Color, p.CareInstructions, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return product.ErrSlugAlreadyExists
			case "23503":
				return product.ErrCategoryNotFound
			}
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return product.ErrProductNotFound
	}
	return nil
}
