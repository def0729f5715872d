package domain

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DefaultStock is assigned to products created without an explicit stock.
const DefaultStock = 10

type Category struct {
	ID       int              `json:"id"`
	Name     string           `json:"category_name"`
	Products []ProductSummary `json:"products"`
}

type Product struct {
	ID          int             `json:"id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  *int            `json:"category_id"`
	Category    *CategoryRef    `json:"category"`
	Tags        []TagRef        `json:"tags"`
}

type Tag struct {
	ID       int              `json:"id"`
	Name     string           `json:"tag_name"`
	Products []ProductSummary `json:"products"`
}

// ProductTag is one product/tag association row.
type ProductTag struct {
	ID        int `json:"id"`
	ProductID int `json:"product_id"`
	TagID     int `json:"tag_id"`
}

// ProductSummary is the product projection embedded in categories and tags.
type ProductSummary struct {
	ID          int             `json:"id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"category_name"`
}

type TagRef struct {
	ID   int    `json:"id"`
	Name string `json:"tag_name"`
}

// Ref drops the products, as returned by category create.
func (c *Category) Ref() CategoryRef {
	return CategoryRef{ID: c.ID, Name: c.Name}
}

func (p *Product) Summary() ProductSummary {
	return ProductSummary{ID: p.ID, ProductName: p.ProductName, Price: p.Price, Stock: p.Stock}
}

// ProductInput is the body accepted when creating a product, directly or nested
// under a category or tag.
type ProductInput struct {
	ProductName string           `json:"product_name"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  *int             `json:"category_id"`
	TagIDs      []int            `json:"tagIds"`
}

type CategoryInput struct {
	Name     string         `json:"category_name"`
	Products []ProductInput `json:"products"`
}

type TagInput struct {
	Name     string         `json:"tag_name"`
	Products []ProductInput `json:"products"`
}

// CategoryUpdate holds the fields of a partial category update; nil means unchanged.
type CategoryUpdate struct {
	Name *string `json:"category_name"`
}

func (u CategoryUpdate) Empty() bool { return u.Name == nil }

type TagUpdate struct {
	Name *string `json:"tag_name"`
}

func (u TagUpdate) Empty() bool { return u.Name == nil }

type ProductUpdate struct {
	ProductName *string          `json:"product_name"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	CategoryID  OptionalID       `json:"category_id"`
	TagIDs      []int            `json:"tagIds"`
}

// Empty reports whether no column of the product row is touched. TagIDs is
// not a column and is ignored here.
func (u ProductUpdate) Empty() bool {
	return u.ProductName == nil && u.Price == nil && u.Stock == nil && !u.CategoryID.Set
}

// OptionalID tells an absent JSON field apart from an explicit null.
type OptionalID struct {
	Set   bool
	Value *int
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var id int
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
