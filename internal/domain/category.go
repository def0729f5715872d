package domain

import "context"

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *Category) (*Category, error)
	GetCategoryByID(ctx context.Context, id int) (*Category, error)
	ListCategories(ctx context.Context) ([]Category, error)
	// UpdateCategory applies the update; a missing id is a no-op, not an error.
	UpdateCategory(ctx context.Context, id int, update CategoryUpdate) error
	DeleteCategory(ctx context.Context, id int) error
}
