package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresCategoryRepository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `INSERT INTO category (category_name) VALUES ($1) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return nil, translateWriteError(err, "create category")
	}
	r.log.Infof("Category created successfully with ID: %d, Name: %s", category.ID, category.Name)
	return category, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	query := `SELECT id, category_name FROM category WHERE id = $1`
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, domain.NotFound("category", id)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}

	products, err := r.productsByCategory(ctx, `WHERE category_id = $1`, id)
	if err != nil {
		return nil, err
	}
	category.Products = summariesOrEmpty(products[id])
	return category, nil
}

func (r *postgresCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, category_name FROM category ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	products, err := r.productsByCategory(ctx, `WHERE category_id IS NOT NULL`)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].Products = summariesOrEmpty(products[categories[i].ID])
	}

	r.log.Debugf("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *postgresCategoryRepository) productsByCategory(ctx context.Context, where string, args ...interface{}) (map[int][]domain.ProductSummary, error) {
	query := `SELECT id, product_name, price, stock, category_id FROM product ` + where + ` ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Errorf("Failed to load products of categories: %v", err)
		return nil, fmt.Errorf("could not load category products: %w", err)
	}
	defer rows.Close()

	byCategory := make(map[int][]domain.ProductSummary)
	for rows.Next() {
		var p domain.ProductSummary
		var categoryID int
		if err := rows.Scan(&p.ID, &p.ProductName, &p.Price, &p.Stock, &categoryID); err != nil {
			return nil, fmt.Errorf("error scanning category product: %w", err)
		}
		byCategory[categoryID] = append(byCategory[categoryID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category products: %w", err)
	}
	return byCategory, nil
}

func (r *postgresCategoryRepository) UpdateCategory(ctx context.Context, id int, update domain.CategoryUpdate) error {
	if update.Empty() {
		r.log.Debugf("No fields provided for category update ID %d", id)
		return nil
	}

	query := `UPDATE category SET category_name = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, *update.Name, id)
	if err != nil {
		r.log.Errorf("Failed to update category ID %d: %v", id, err)
		return translateWriteError(err, "update category")
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		r.log.Warnf("Category with ID %d not found for update (0 rows affected)", id)
	}
	return nil
}

func (r *postgresCategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	query := `DELETE FROM category WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Errorf("Failed to delete category ID %d: %v", id, err)
		return fmt.Errorf("could not delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting category ID %d: %v", id, err)
		return fmt.Errorf("could not confirm category deletion: %w", err)
	}

	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent category ID %d", id)
		return domain.NotFound("category", id)
	}

	r.log.Infof("Category deleted successfully with ID: %d", id)
	return nil
}
