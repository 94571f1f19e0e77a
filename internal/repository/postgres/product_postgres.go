package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/codedprincesharma/Marketplace-Microservices/internal/domain"
	"github.com/codedprincesharma/Marketplace-Microservices/internal/repository"
)

// productColumns aliases the price columns into the nested Price struct.
const productColumns = `id, title, description,
	price_amount AS "price.amount", price_currency AS "price.currency",
	seller_id, created_at, updated_at`

type productRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new PostgreSQL product repository
func NewProductRepository(db *sqlx.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create inserts the product and its images in one transaction.
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO products (id, title, description, price_amount, price_currency, seller_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.ExecContext(ctx, query,
		product.ID, product.Title, product.Description,
		product.Price.Amount, product.Price.Currency,
		product.SellerID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	imageQuery := `
		INSERT INTO product_images (product_id, position, url, thumbnail_url, file_id)
		VALUES ($1, $2, $3, $4, $5)`

	for i, img := range product.Images {
		if _, err := tx.ExecContext(ctx, imageQuery, product.ID, i, img.URL, img.ThumbnailURL, img.FileID); err != nil {
			return fmt.Errorf("failed to store product image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var product domain.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if err := r.loadImages(ctx, []*domain.Product{&product}); err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*domain.Product, error) {
	var (
		conditions []string
		args       []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Query != "" {
		p := arg("%" + filter.Query + "%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE %s OR description ILIKE %s)", p, p))
	}
	if filter.MinPrice != nil {
		conditions = append(conditions, "price_amount >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		conditions = append(conditions, "price_amount <= "+arg(*filter.MaxPrice))
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	query += " LIMIT " + arg(filter.Limit)
	query += " OFFSET " + arg(filter.Skip)

	products := []*domain.Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if err := r.loadImages(ctx, products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET title = $2, description = $3, price_amount = $4, price_currency = $5, updated_at = $6
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		product.ID, product.Title, product.Description,
		product.Price.Amount, product.Price.Currency, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", product.ID, repository.ErrNotFound)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}

	return nil
}

// loadImages attaches images to the given products with a single query.
func (r *productRepository) loadImages(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Product, len(products))
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		p.Images = []domain.ProductImage{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query := `
		SELECT product_id, url, thumbnail_url, file_id
		FROM product_images
		WHERE product_id = ANY($1)
		ORDER BY product_id, position`

	type imageRow struct {
		ProductID uuid.UUID `db:"product_id"`
		domain.ProductImage
	}

	rows := []imageRow{}
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to load product images: %w", err)
	}

	for _, row := range rows {
		if p, ok := byID[row.ProductID]; ok {
			p.Images = append(p.Images, row.ProductImage)
		}
	}

	return nil
}
