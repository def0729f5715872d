// Package memory keeps the catalog in process memory. It implements every
// repository interface of the domain package with the same referential
// behaviour as the Postgres schema: deleting a category orphans its products,
// deleting a product or tag drops its join rows, and a product/tag pair is
// stored once.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"catalog_service/internal/domain"
)

type Store struct {
	mu sync.RWMutex

	categories  map[int]domain.Category
	products    map[int]domain.Product
	tags        map[int]domain.Tag
	productTags map[int]domain.ProductTag

	nextCategoryID   int
	nextProductID    int
	nextTagID        int
	nextProductTagID int
}

func NewStore() *Store {
	return &Store{
		categories:  make(map[int]domain.Category),
		products:    make(map[int]domain.Product),
		tags:        make(map[int]domain.Tag),
		productTags: make(map[int]domain.ProductTag),
	}
}

// Ping always succeeds; it lets the store stand in for a database in health checks.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// --- categories ---

func (s *Store) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCategoryID++
	row := domain.Category{ID: s.nextCategoryID, Name: category.Name}
	s.categories[row.ID] = row
	category.ID = row.ID
	return &row, nil
}

func (s *Store) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.categories[id]
	if !ok {
		return nil, domain.NotFound("category", id)
	}
	out := s.categoryWithProducts(row)
	return &out, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]domain.Category, 0, len(s.categories))
	for _, id := range sortedKeys(s.categories) {
		categories = append(categories, s.categoryWithProducts(s.categories[id]))
	}
	return categories, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id int, update domain.CategoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.categories[id]
	if !ok {
		return nil
	}
	if update.Name != nil {
		row.Name = *update.Name
	}
	s.categories[id] = row
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return domain.NotFound("category", id)
	}
	delete(s.categories, id)
	for pid, p := range s.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
			s.products[pid] = p
		}
	}
	return nil
}

func (s *Store) categoryWithProducts(row domain.Category) domain.Category {
	row.Products = []domain.ProductSummary{}
	for _, pid := range sortedKeys(s.products) {
		p := s.products[pid]
		if p.CategoryID != nil && *p.CategoryID == row.ID {
			row.Products = append(row.Products, p.Summary())
		}
	}
	return row
}

// --- products ---

func (s *Store) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.Price.IsNegative() {
		return nil, domain.Invalid("price", "product data constraint violation: price must not be negative")
	}
	if err := s.checkCategory(product.CategoryID); err != nil {
		return nil, err
	}

	s.nextProductID++
	row := domain.Product{
		ID:          s.nextProductID,
		ProductName: product.ProductName,
		Price:       product.Price,
		Stock:       product.Stock,
		CategoryID:  copyID(product.CategoryID),
	}
	s.products[row.ID] = row
	product.ID = row.ID
	return &row, nil
}

func (s *Store) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.products[id]
	if !ok {
		return nil, domain.NotFound("product", id)
	}
	out := s.productWithRelations(row)
	return &out, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.products))
	for _, id := range sortedKeys(s.products) {
		products = append(products, s.productWithRelations(s.products[id]))
	}
	return products, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id int, update domain.ProductUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.products[id]
	if !ok {
		return nil
	}
	if update.ProductName != nil {
		row.ProductName = *update.ProductName
	}
	if update.Price != nil {
		if update.Price.IsNegative() {
			return domain.Invalid("price", "product data constraint violation: price must not be negative")
		}
		row.Price = *update.Price
	}
	if update.Stock != nil {
		row.Stock = *update.Stock
	}
	if update.CategoryID.Set {
		if err := s.checkCategory(update.CategoryID.Value); err != nil {
			return err
		}
		row.CategoryID = copyID(update.CategoryID.Value)
	}
	s.products[id] = row
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domain.NotFound("product", id)
	}
	delete(s.products, id)
	for ptID, pt := range s.productTags {
		if pt.ProductID == id {
			delete(s.productTags, ptID)
		}
	}
	return nil
}

func (s *Store) productWithRelations(row domain.Product) domain.Product {
	row.CategoryID = copyID(row.CategoryID)
	row.Category = nil
	if row.CategoryID != nil {
		if c, ok := s.categories[*row.CategoryID]; ok {
			row.Category = &domain.CategoryRef{ID: c.ID, Name: c.Name}
		}
	}
	row.Tags = []domain.TagRef{}
	for _, ptID := range sortedKeys(s.productTags) {
		pt := s.productTags[ptID]
		if pt.ProductID != row.ID {
			continue
		}
		if tag, ok := s.tags[pt.TagID]; ok {
			row.Tags = append(row.Tags, domain.TagRef{ID: tag.ID, Name: tag.Name})
		}
	}
	return row
}

func (s *Store) checkCategory(id *int) error {
	if id == nil {
		return nil
	}
	if _, ok := s.categories[*id]; !ok {
		return domain.Invalid("category_id", "category with id %d does not exist", *id)
	}
	return nil
}

// --- product tags ---

func (s *Store) ListProductTags(ctx context.Context, productID int) ([]domain.ProductTag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := []domain.ProductTag{}
	for _, id := range sortedKeys(s.productTags) {
		if pt := s.productTags[id]; pt.ProductID == productID {
			rows = append(rows, pt)
		}
	}
	return rows, nil
}

func (s *Store) CreateProductTags(ctx context.Context, productID int, tagIDs []int) ([]domain.ProductTag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; !ok {
		return nil, domain.Invalid("product_id", "product with id %d does not exist", productID)
	}
	seen := make(map[int]bool)
	for _, pt := range s.productTags {
		if pt.ProductID == productID {
			seen[pt.TagID] = true
		}
	}
	for _, tagID := range tagIDs {
		if _, ok := s.tags[tagID]; !ok {
			return nil, domain.Invalid("tag_id", "tag with id %d does not exist", tagID)
		}
		if seen[tagID] {
			return nil, fmt.Errorf("product %d already tagged with %d: %w", productID, tagID, domain.ErrConflict)
		}
		seen[tagID] = true
	}

	created := make([]domain.ProductTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		s.nextProductTagID++
		pt := domain.ProductTag{ID: s.nextProductTagID, ProductID: productID, TagID: tagID}
		s.productTags[pt.ID] = pt
		created = append(created, pt)
	}
	return created, nil
}

func (s *Store) DeleteProductTags(ctx context.Context, ids []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		delete(s.productTags, id)
	}
	return nil
}

// --- tags ---

func (s *Store) CreateTag(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTagID++
	row := domain.Tag{ID: s.nextTagID, Name: tag.Name}
	s.tags[row.ID] = row
	tag.ID = row.ID
	return &row, nil
}

func (s *Store) GetTagByID(ctx context.Context, id int) (*domain.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.tags[id]
	if !ok {
		return nil, domain.NotFound("tag", id)
	}
	out := s.tagWithProducts(row)
	return &out, nil
}

func (s *Store) ListTags(ctx context.Context) ([]domain.Tag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tags := make([]domain.Tag, 0, len(s.tags))
	for _, id := range sortedKeys(s.tags) {
		tags = append(tags, s.tagWithProducts(s.tags[id]))
	}
	return tags, nil
}

func (s *Store) UpdateTag(ctx context.Context, id int, update domain.TagUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.tags[id]
	if !ok {
		return nil
	}
	if update.Name != nil {
		row.Name = *update.Name
	}
	s.tags[id] = row
	return nil
}

func (s *Store) DeleteTag(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tags[id]; !ok {
		return domain.NotFound("tag", id)
	}
	delete(s.tags, id)
	for ptID, pt := range s.productTags {
		if pt.TagID == id {
			delete(s.productTags, ptID)
		}
	}
	return nil
}

func (s *Store) ExistingTagIDs(ctx context.Context, ids []int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	existing := []int{}
	for _, id := range ids {
		if _, ok := s.tags[id]; ok {
			existing = append(existing, id)
		}
	}
	return existing, nil
}

func (s *Store) tagWithProducts(row domain.Tag) domain.Tag {
	row.Products = []domain.ProductSummary{}
	for _, ptID := range sortedKeys(s.productTags) {
		pt := s.productTags[ptID]
		if pt.TagID != row.ID {
			continue
		}
		if p, ok := s.products[pt.ProductID]; ok {
			row.Products = append(row.Products, p.Summary())
		}
	}
	return row
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
