package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"catalog_service/internal/domain"

	"github.com/shopspring/decimal"
)

// maxPrice is the first value NUMERIC(10,2) cannot hold.
var maxPrice = decimal.New(1, 8)

const (
	// maxNameLength matches the VARCHAR(255) name columns.
	maxNameLength = 255
	maxStock      = math.MaxInt32
)

func checkNameLength(field, name string) error {
	if utf8.RuneCountInString(name) > maxNameLength {
		return domain.Invalid(field, "%s cannot be longer than %d characters", field, maxNameLength)
	}
	return nil
}

func checkStock(stock int) error {
	if stock < 0 {
		return domain.Invalid("stock", "product stock cannot be negative")
	}
	if stock > maxStock {
		return domain.Invalid("stock", "product stock cannot exceed %d", maxStock)
	}
	return nil
}

func validateID(entity string, id int) error {
	if id <= 0 {
		return domain.Invalid("id", "invalid %s ID", entity)
	}
	return nil
}

// newProduct validates a create body and fills in defaults.
func newProduct(in domain.ProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.ProductName)
	if name == "" {
		return nil, domain.Invalid("product_name", "product name cannot be empty")
	}
	if err := checkNameLength("product_name", name); err != nil {
		return nil, err
	}
	if in.Price == nil {
		return nil, domain.Invalid("price", "product price is required")
	}
	price, err := checkPrice(*in.Price)
	if err != nil {
		return nil, err
	}
	stock := domain.DefaultStock
	if in.Stock != nil {
		stock = *in.Stock
	}
	if err := checkStock(stock); err != nil {
		return nil, err
	}
	return &domain.Product{
		ProductName: name,
		Price:       price,
		Stock:       stock,
		CategoryID:  in.CategoryID,
	}, nil
}

func checkPrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return price, domain.Invalid("price", "product price cannot be negative")
	}
	price = price.Round(2)
	if price.GreaterThanOrEqual(maxPrice) {
		return price, domain.Invalid("price", "product price is too large")
	}
	return price, nil
}

func validateProductUpdate(update *domain.ProductUpdate) error {
	if update.ProductName != nil {
		name := strings.TrimSpace(*update.ProductName)
		if name == "" {
			return domain.Invalid("product_name", "product name cannot be empty if provided for update")
		}
		if err := checkNameLength("product_name", name); err != nil {
			return err
		}
		update.ProductName = &name
	}
	if update.Price != nil {
		price, err := checkPrice(*update.Price)
		if err != nil {
			return err
		}
		update.Price = &price
	}
	if update.Stock != nil {
		if err := checkStock(*update.Stock); err != nil {
			return err
		}
	}
	return nil
}

func requireCategory(ctx context.Context, repo domain.CategoryRepository, id *int) error {
	if id == nil {
		return nil
	}
	if _, err := repo.GetCategoryByID(ctx, *id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Invalid("category_id", "category with id %d does not exist", *id)
		}
		return err
	}
	return nil
}

func requireTags(ctx context.Context, repo domain.TagRepository, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	existing, err := repo.ExistingTagIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[int]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}
	missing := []int{}
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return domain.Invalid("tagIds", "tags do not exist: %v", missing)
	}
	return nil
}
