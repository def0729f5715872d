package repository

import (
	"context"
	"database/sql"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresProductTagRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductTagRepository(db *sql.DB, logger *logrus.Logger) domain.ProductTagRepository {
	return &postgresProductTagRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductTagRepository) ListProductTags(ctx context.Context, productID int) ([]domain.ProductTag, error) {
	query := `SELECT id, product_id, tag_id FROM product_tag WHERE product_id = $1 ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		r.log.Errorf("Failed to list tags of product %d: %v", productID, err)
		return nil, fmt.Errorf("could not list product tags: %w", err)
	}
	defer rows.Close()
	return scanProductTags(rows)
}

// CreateProductTags inserts one row per tag id in a single statement.
func (r *postgresProductTagRepository) CreateProductTags(ctx context.Context, productID int, tagIDs []int) ([]domain.ProductTag, error) {
	if len(tagIDs) == 0 {
		return []domain.ProductTag{}, nil
	}

	query := `
        INSERT INTO product_tag (product_id, tag_id)
        SELECT $1, unnest($2::int[])
        RETURNING id, product_id, tag_id`
	rows, err := r.db.QueryContext(ctx, query, productID, int64Array(tagIDs))
	if err != nil {
		r.log.Errorf("Failed to tag product %d with %v: %v", productID, tagIDs, err)
		return nil, translateWriteError(err, "create product tags")
	}
	defer rows.Close()

	created, err := scanProductTags(rows)
	if err != nil {
		return nil, translateWriteError(err, "create product tags")
	}
	r.log.Infof("Tagged product %d with %d tags", productID, len(created))
	return created, nil
}

func (r *postgresProductTagRepository) DeleteProductTags(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	query := `DELETE FROM product_tag WHERE id = ANY($1)`
	if _, err := r.db.ExecContext(ctx, query, int64Array(ids)); err != nil {
		r.log.Errorf("Failed to delete product tags %v: %v", ids, err)
		return fmt.Errorf("could not delete product tags: %w", err)
	}
	r.log.Infof("Deleted %d product tags", len(ids))
	return nil
}

func scanProductTags(rows *sql.Rows) ([]domain.ProductTag, error) {
	productTags := []domain.ProductTag{}
	for rows.Next() {
		var pt domain.ProductTag
		if err := rows.Scan(&pt.ID, &pt.ProductID, &pt.TagID); err != nil {
			return nil, fmt.Errorf("error scanning product tag: %w", err)
		}
		productTags = append(productTags, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product tags: %w", err)
	}
	return productTags, nil
}
