package domain

import "context"

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)

	// UpdateProduct applies the column changes of update; a missing id is a no-op.
	UpdateProduct(ctx context.Context, id int, update ProductUpdate) error

	DeleteProduct(ctx context.Context, id int) error
}

type ProductTagRepository interface {
	ListProductTags(ctx context.Context, productID int) ([]ProductTag, error)
	CreateProductTags(ctx context.Context, productID int, tagIDs []int) ([]ProductTag, error)
	DeleteProductTags(ctx context.Context, ids []int) error
}
