package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

const selectProduct = `
        SELECT p.id, p.product_name, p.price, p.stock, p.category_id, c.category_name
        FROM product p
        LEFT JOIN category c ON c.id = p.category_id`

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO product (product_name, price, stock, category_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	err := r.db.QueryRowContext(ctx, query, product.ProductName, product.Price, product.Stock, nullableID(product.CategoryID)).Scan(&product.ID)
	if err != nil {
		r.log.Errorf("Failed to create product '%s': %v", product.ProductName, err)
		return nil, translateWriteError(err, "create product")
	}
	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.ProductName)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	product, err := scanProduct(r.db.QueryRowContext(ctx, selectProduct+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, domain.NotFound("product", id)
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	tags, err := r.tagsByProduct(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	product.Tags = tagsOrEmpty(tags[id])
	return product, nil
}

func (r *postgresProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, selectProduct+` ORDER BY p.id ASC`)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	ids := []int{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, *product)
		ids = append(ids, product.ID)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	tags, err := r.tagsByProduct(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Tags = tagsOrEmpty(tags[products[i].ID])
	}
	r.log.Debugf("Retrieved %d products", len(products))
	return products, nil
}

func (r *postgresProductRepository) tagsByProduct(ctx context.Context, productIDs []int) (map[int][]domain.TagRef, error) {
	byProduct := make(map[int][]domain.TagRef)
	if len(productIDs) == 0 {
		return byProduct, nil
	}

	query := `
        SELECT pt.product_id, t.id, t.tag_name
        FROM product_tag pt
        JOIN tag t ON t.id = pt.tag_id
        WHERE pt.product_id = ANY($1)
        ORDER BY pt.id ASC`
	rows, err := r.db.QueryContext(ctx, query, int64Array(productIDs))
	if err != nil {
		r.log.Errorf("Failed to load product tags: %v", err)
		return nil, fmt.Errorf("could not load product tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int
		var tag domain.TagRef
		var name sql.NullString
		if err := rows.Scan(&productID, &tag.ID, &name); err != nil {
			return nil, fmt.Errorf("error scanning product tag: %w", err)
		}
		tag.Name = name.String
		byProduct[productID] = append(byProduct[productID], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product tags: %w", err)
	}
	return byProduct, nil
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, id int, update domain.ProductUpdate) error {
	if update.Empty() {
		r.log.Debugf("Repository: No fields provided for product update ID %d", id)
		return nil
	}

	setClauses := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if update.ProductName != nil {
		add("product_name", *update.ProductName)
	}
	if update.Price != nil {
		add("price", *update.Price)
	}
	if update.Stock != nil {
		add("stock", *update.Stock)
	}
	if update.CategoryID.Set {
		add("category_id", nullableID(update.CategoryID.Value))
	}

	args = append(args, id)
	query := "UPDATE product SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", len(args))
	r.log.Debugf("Repository: Executing partial update query for ID %d: %s", id, query)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Errorf("Repository: Failed to execute partial update for product ID %d: %v", id, err)
		return translateWriteError(err, "update product")
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		r.log.Warnf("Repository: Product with ID %d not found for update (0 rows affected)", id)
	}
	return nil
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id int) error {
	query := `DELETE FROM product WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return domain.NotFound("product", id)
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var categoryID sql.NullInt64
	var categoryName sql.NullString
	if err := row.Scan(&product.ID, &product.ProductName, &product.Price, &product.Stock, &categoryID, &categoryName); err != nil {
		return nil, err
	}
	if categoryID.Valid {
		id := int(categoryID.Int64)
		product.CategoryID = &id
		if categoryName.Valid {
			product.Category = &domain.CategoryRef{ID: id, Name: categoryName.String}
		}
	}
	return product, nil
}

func nullableID(id *int) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}

func tagsOrEmpty(tags []domain.TagRef) []domain.TagRef {
	if tags == nil {
		return []domain.TagRef{}
	}
	return tags
}
