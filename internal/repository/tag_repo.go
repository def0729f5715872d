package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresTagRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresTagRepository(db *sql.DB, logger *logrus.Logger) domain.TagRepository {
	return &postgresTagRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresTagRepository) CreateTag(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	query := `INSERT INTO tag (tag_name) VALUES ($1) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, tag.Name).Scan(&tag.ID); err != nil {
		r.log.Errorf("Failed to create tag '%s': %v", tag.Name, err)
		return nil, translateWriteError(err, "create tag")
	}
	r.log.Infof("Tag created successfully with ID: %d, Name: %s", tag.ID, tag.Name)
	return tag, nil
}

func (r *postgresTagRepository) GetTagByID(ctx context.Context, id int) (*domain.Tag, error) {
	query := `SELECT id, tag_name FROM tag WHERE id = $1`
	tag := &domain.Tag{}
	var name sql.NullString
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&tag.ID, &name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Tag with ID %d not found", id)
			return nil, domain.NotFound("tag", id)
		}
		r.log.Errorf("Failed to get tag by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get tag by id: %w", err)
	}
	tag.Name = name.String

	products, err := r.productsByTag(ctx, `WHERE pt.tag_id = $1`, id)
	if err != nil {
		return nil, err
	}
	tag.Products = summariesOrEmpty(products[id])
	return tag, nil
}

func (r *postgresTagRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, tag_name FROM tag ORDER BY id ASC`)
	if err != nil {
		r.log.Errorf("Failed to list tags: %v", err)
		return nil, fmt.Errorf("could not list tags: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var tag domain.Tag
		var name sql.NullString
		if err := rows.Scan(&tag.ID, &name); err != nil {
			r.log.Errorf("Failed to scan tag row: %v", err)
			return nil, fmt.Errorf("error scanning tag data: %w", err)
		}
		tag.Name = name.String
		tags = append(tags, tag)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	products, err := r.productsByTag(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range tags {
		tags[i].Products = summariesOrEmpty(products[tags[i].ID])
	}
	r.log.Debugf("Retrieved %d tags", len(tags))
	return tags, nil
}

func (r *postgresTagRepository) productsByTag(ctx context.Context, where string, args ...interface{}) (map[int][]domain.ProductSummary, error) {
	query := `
        SELECT pt.tag_id, p.id, p.product_name, p.price, p.stock
        FROM product_tag pt
        JOIN product p ON p.id = pt.product_id ` + where + `
        ORDER BY pt.id ASC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Errorf("Failed to load products of tags: %v", err)
		return nil, fmt.Errorf("could not load tag products: %w", err)
	}
	defer rows.Close()

	byTag := make(map[int][]domain.ProductSummary)
	for rows.Next() {
		var tagID int
		var p domain.ProductSummary
		if err := rows.Scan(&tagID, &p.ID, &p.ProductName, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("error scanning tag product: %w", err)
		}
		byTag[tagID] = append(byTag[tagID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag products: %w", err)
	}
	return byTag, nil
}

func (r *postgresTagRepository) UpdateTag(ctx context.Context, id int, update domain.TagUpdate) error {
	if update.Empty() {
		return nil
	}
	query := `UPDATE tag SET tag_name = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, *update.Name, id); err != nil {
		r.log.Errorf("Failed to update tag ID %d: %v", id, err)
		return translateWriteError(err, "update tag")
	}
	return nil
}

func (r *postgresTagRepository) DeleteTag(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tag WHERE id = $1`, id)
	if err != nil {
		r.log.Errorf("Failed to delete tag ID %d: %v", id, err)
		return fmt.Errorf("could not delete tag: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not confirm tag deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent tag ID %d", id)
		return domain.NotFound("tag", id)
	}
	r.log.Infof("Tag deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresTagRepository) ExistingTagIDs(ctx context.Context, ids []int) ([]int, error) {
	existing := []int{}
	if len(ids) == 0 {
		return existing, nil
	}
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM tag WHERE id = ANY($1)`, int64Array(ids))
	if err != nil {
		return nil, fmt.Errorf("could not look up tags: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning tag id: %w", err)
		}
		existing = append(existing, id)
	}
	return existing, rows.Err()
}

func summariesOrEmpty(products []domain.ProductSummary) []domain.ProductSummary {
	if products == nil {
		return []domain.ProductSummary{}
	}
	return products
}
