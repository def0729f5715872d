package usecase

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catalog_service/internal/cache"
	"catalog_service/internal/domain"
	"catalog_service/internal/events"
	"catalog_service/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	store      *memory.Store
	cache      *cache.Memory
	publisher  *recordingPublisher
	categories CategoryUseCase
	products   ProductUseCase
	tags       TagUseCase
}

func newFixture(t *testing.T, defaultCategoryID int) *fixture {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := memory.NewStore()
	c := cache.NewMemory(time.Minute, 0)
	t.Cleanup(func() { c.Close() })
	publisher := &recordingPublisher{}
	notifier := NewNotifier(c, publisher, logger)

	return &fixture{
		store:      store,
		cache:      c,
		publisher:  publisher,
		categories: NewCategoryUseCase(store, store, notifier, logger),
		products:   NewProductUseCase(store, store, store, store, notifier, logger),
		tags:       NewTagUseCase(store, store, store, store, notifier, logger, defaultCategoryID),
	}
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func intPtr(i int) *int { return &i }

func (f *fixture) tag(t *testing.T, name string) int {
	t.Helper()
	tag, err := f.tags.CreateTag(context.Background(), domain.TagInput{Name: name})
	require.NoError(t, err)
	return tag.ID
}

func tagIDs(p *domain.Product) []int {
	ids := []int{}
	for _, tag := range p.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func TestCreateCategory_WithNestedProducts(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	category, err := f.categories.CreateCategory(ctx, domain.CategoryInput{
		Name: "Shirts",
		Products: []domain.ProductInput{
			{ProductName: "A", Price: price("5")},
			{ProductName: "B", Price: price("10")},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, category.Products)

	fetched, err := f.categories.GetCategoryByID(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Products, 2)

	products, err := f.products.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		require.NotNil(t, p.CategoryID)
		assert.Equal(t, category.ID, *p.CategoryID)
		assert.Equal(t, domain.DefaultStock, p.Stock)
	}
	assert.ElementsMatch(t, []string{"category.created", "product.created", "product.created"}, f.publisher.types())
}

func TestCreateCategory_InvalidNestedProductCreatesNothing(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.categories.CreateCategory(ctx, domain.CategoryInput{
		Name:     "Shirts",
		Products: []domain.ProductInput{{ProductName: "A", Price: price("-1")}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	categories, err := f.categories.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCreateCategory_EmptyName(t *testing.T) {
	f := newFixture(t, 0)
	_, err := f.categories.CreateCategory(context.Background(), domain.CategoryInput{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateCategory_EmptyUpdateReturnsEntity(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	created, err := f.categories.CreateCategory(ctx, domain.CategoryInput{Name: "Shirts"})
	require.NoError(t, err)

	got, err := f.categories.UpdateCategory(ctx, created.ID, domain.CategoryUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "Shirts", got.Name)

	_, err = f.categories.UpdateCategory(ctx, 404, domain.CategoryUpdate{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCategory_OrphansProducts(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	category, err := f.categories.CreateCategory(ctx, domain.CategoryInput{
		Name:     "Shirts",
		Products: []domain.ProductInput{{ProductName: "A", Price: price("5")}},
	})
	require.NoError(t, err)

	require.NoError(t, f.categories.DeleteCategory(ctx, category.ID))
	assert.ErrorIs(t, f.categories.DeleteCategory(ctx, category.ID), domain.ErrNotFound)

	products, err := f.products.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Nil(t, products[0].CategoryID)
	assert.Nil(t, products[0].Category)
}

func TestCreateProduct_Validation(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	cases := []struct {
		name  string
		input domain.ProductInput
	}{
		{"negative price", domain.ProductInput{ProductName: "A", Price: price("-0.01")}},
		{"missing price", domain.ProductInput{ProductName: "A"}},
		{"empty name", domain.ProductInput{ProductName: " ", Price: price("1")}},
		{"negative stock", domain.ProductInput{ProductName: "A", Price: price("1"), Stock: intPtr(-1)}},
		{"price overflow", domain.ProductInput{ProductName: "A", Price: price("100000000")}},
		{"stock overflow", domain.ProductInput{ProductName: "A", Price: price("1"), Stock: intPtr(3000000000)}},
		{"name too long", domain.ProductInput{ProductName: strings.Repeat("a", 256), Price: price("1")}},
		{"unknown category", domain.ProductInput{ProductName: "A", Price: price("1"), CategoryID: intPtr(9)}},
		{"unknown tag", domain.ProductInput{ProductName: "A", Price: price("1"), TagIDs: []int{9}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := f.products.CreateProduct(ctx, tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	products, err := f.products.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestColumnLimits(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	longest := strings.Repeat("é", 255)
	product, _, err := f.products.CreateProduct(ctx, domain.ProductInput{ProductName: longest, Price: price("1"), Stock: intPtr(math.MaxInt32)})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, product.Stock)

	tooLong := longest + "e"
	_, err = f.products.UpdateProduct(ctx, product.ID, domain.ProductUpdate{ProductName: &tooLong})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.products.UpdateProduct(ctx, product.ID, domain.ProductUpdate{Stock: intPtr(math.MaxInt32 + 1)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.categories.CreateCategory(ctx, domain.CategoryInput{Name: tooLong})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.tags.CreateTag(ctx, domain.TagInput{Name: tooLong})
	assert.ErrorIs(t, err, domain.ErrValidation)

	id := f.tag(t, "short")
	_, err = f.tags.UpdateTag(ctx, id, domain.TagUpdate{Name: &tooLong})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateProduct_WithTags(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	t1, t2 := f.tag(t, "cotton"), f.tag(t, "summer")

	product, productTags, err := f.products.CreateProduct(ctx, domain.ProductInput{
		ProductName: "Tee",
		Price:       price("14.999"),
		Stock:       intPtr(0),
		TagIDs:      []int{t2, t1, t2},
	})
	require.NoError(t, err)
	require.Len(t, productTags, 2)
	assert.Equal(t, t2, productTags[0].TagID)
	assert.Equal(t, product.ID, productTags[1].ProductID)
	assert.Equal(t, "15", product.Price.String())
	assert.Equal(t, 0, product.Stock)
	assert.ElementsMatch(t, []int{t1, t2}, tagIDs(product))
}

func TestCreateProduct_WithoutTags(t *testing.T) {
	f := newFixture(t, 0)
	product, productTags, err := f.products.CreateProduct(context.Background(), domain.ProductInput{ProductName: "Tee", Price: price("1")})
	require.NoError(t, err)
	assert.Empty(t, productTags)
	assert.Equal(t, "Tee", product.ProductName)
	assert.NotNil(t, product.Tags)
}

func TestUpdateProduct_ReconcilesTags(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	t1, t2, t3 := f.tag(t, "one"), f.tag(t, "two"), f.tag(t, "three")

	product, _, err := f.products.CreateProduct(ctx, domain.ProductInput{ProductName: "Tee", Price: price("1"), TagIDs: []int{t1, t2}})
	require.NoError(t, err)
	before, err := f.store.ListProductTags(ctx, product.ID)
	require.NoError(t, err)
	var keptRow domain.ProductTag
	for _, pt := range before {
		if pt.TagID == t2 {
			keptRow = pt
		}
	}

	updated, err := f.products.UpdateProduct(ctx, product.ID, domain.ProductUpdate{TagIDs: []int{t2, t3}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{t2, t3}, tagIDs(updated))

	after, err := f.store.ListProductTags(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Contains(t, after, keptRow)
	assert.Contains(t, f.publisher.types(), "product_tags.reconciled")
}

func TestUpdateProduct_EmptyTagListKeepsTags(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	t1 := f.tag(t, "one")
	product, _, err := f.products.CreateProduct(ctx, domain.ProductInput{ProductName: "Tee", Price: price("1"), TagIDs: []int{t1}})
	require.NoError(t, err)

	updated, err := f.products.UpdateProduct(ctx, product.ID, domain.ProductUpdate{TagIDs: []int{}})
	require.NoError(t, err)
	assert.Equal(t, []int{t1}, tagIDs(updated))
}

func TestUpdateProduct_Fields(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	category, err := f.categories.CreateCategory(ctx, domain.CategoryInput{Name: "Shirts"})
	require.NoError(t, err)
	product, _, err := f.products.CreateProduct(ctx, domain.ProductInput{ProductName: "Tee", Price: price("1"), CategoryID: &category.ID})
	require.NoError(t, err)

	name := "Polo"
	updated, err := f.products.UpdateProduct(ctx, product.ID, domain.ProductUpdate{
		ProductName: &name,
		CategoryID:  domain.OptionalID{Set: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "Polo", updated.ProductName)
	assert.Nil(t, updated.CategoryID)

	_, err = f.products.UpdateProduct(ctx, product.ID, domain.ProductUpdate{Price: price("-3")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.products.UpdateProduct(ctx, 999, domain.ProductUpdate{ProductName: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetProductTags_EmptyClears(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	t1 := f.tag(t, "one")
	product, _, err := f.products.CreateProduct(ctx, domain.ProductInput{ProductName: "Tee", Price: price("1"), TagIDs: []int{t1}})
	require.NoError(t, err)

	updated, err := f.products.SetProductTags(ctx, product.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestCreateTag_DefaultCategory(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	_, err := f.tags.CreateTag(ctx, domain.TagInput{
		Name:     "sale",
		Products: []domain.ProductInput{{ProductName: "A", Price: price("2")}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	category, err := f.categories.CreateCategory(ctx, domain.CategoryInput{Name: "Default"})
	require.NoError(t, err)
	require.Equal(t, 1, category.ID)

	tag, err := f.tags.CreateTag(ctx, domain.TagInput{
		Name: "sale",
		Products: []domain.ProductInput{
			{ProductName: "A", Price: price("2")},
			{ProductName: "B", Price: price("3")},
		},
	})
	require.NoError(t, err)
	require.Len(t, tag.Products, 2)
	assert.Equal(t, "A", tag.Products[0].ProductName)

	product, err := f.products.GetProductByID(ctx, tag.Products[1].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, *product.CategoryID)
	assert.Equal(t, []int{tag.ID}, tagIDs(product))
}

func TestCreateTag_NoDefaultCategory(t *testing.T) {
	f := newFixture(t, 0)
	tag, err := f.tags.CreateTag(context.Background(), domain.TagInput{
		Name:     "sale",
		Products: []domain.ProductInput{{ProductName: "A", Price: price("2")}},
	})
	require.NoError(t, err)

	product, err := f.products.GetProductByID(context.Background(), tag.Products[0].ID)
	require.NoError(t, err)
	assert.Nil(t, product.CategoryID)
}

func TestUpdateAndDeleteTag(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	id := f.tag(t, "old")

	name := "new"
	tag, err := f.tags.UpdateTag(ctx, id, domain.TagUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "new", tag.Name)

	_, err = f.tags.UpdateTag(ctx, 77, domain.TagUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, f.tags.DeleteTag(ctx, id))
	assert.ErrorIs(t, f.tags.DeleteTag(ctx, id), domain.ErrNotFound)
}

func TestReadsAreCachedAndPurgedOnWrite(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	id := f.tag(t, "cotton")

	_, err := f.tags.GetTagByID(ctx, id)
	require.NoError(t, err)
	_, err = f.tags.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, f.cache.Size())

	// A write that bypasses the use case is not seen until the next purge.
	name := "linen"
	require.NoError(t, f.store.UpdateTag(ctx, id, domain.TagUpdate{Name: &name}))
	cached, err := f.tags.GetTagByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "cotton", cached.Name)

	name = "wool"
	_, err = f.tags.UpdateTag(ctx, id, domain.TagUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, 0, f.cache.Size())

	fresh, err := f.tags.GetTagByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "wool", fresh.Name)
}

func TestInvalidIDs(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.categories.GetCategoryByID(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.products.GetProductByID(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, f.tags.DeleteTag(ctx, 0), domain.ErrValidation)
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, events.Event) error { return errors.New("broker down") }

func (failingPublisher) Close() error { return nil }

func TestPublishFailureDoesNotFailWrites(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store := memory.NewStore()
	uc := NewCategoryUseCase(store, store, NewNotifier(nil, failingPublisher{}, logger), logger)

	category, err := uc.CreateCategory(context.Background(), domain.CategoryInput{Name: "Shirts"})
	require.NoError(t, err)
	assert.Equal(t, 1, category.ID)
}

// pausingCategoryRepo holds the first GetCategoryByID call after it has read
// the row, until release is closed.
type pausingCategoryRepo struct {
	domain.CategoryRepository
	paused  atomic.Bool
	loaded  chan struct{}
	release chan struct{}
}

func (r *pausingCategoryRepo) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	category, err := r.CategoryRepository.GetCategoryByID(ctx, id)
	if r.paused.CompareAndSwap(false, true) {
		close(r.loaded)
		<-r.release
	}
	return category, err
}

func TestReadOverlappingWriteIsNotCached(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ctx := context.Background()

	store := memory.NewStore()
	created, err := store.CreateCategory(ctx, &domain.Category{Name: "old"})
	require.NoError(t, err)

	c := cache.NewMemory(time.Minute, 0)
	t.Cleanup(func() { c.Close() })
	repo := &pausingCategoryRepo{CategoryRepository: store, loaded: make(chan struct{}), release: make(chan struct{})}
	uc := NewCategoryUseCase(repo, store, NewNotifier(c, events.NewNop(), logger), logger)

	done := make(chan *domain.Category)
	go func() {
		category, err := uc.GetCategoryByID(ctx, created.ID)
		assert.NoError(t, err)
		done <- category
	}()

	<-repo.loaded
	name := "new"
	updated, err := uc.UpdateCategory(ctx, created.ID, domain.CategoryUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Name)

	close(repo.release)
	stale := <-done
	assert.Equal(t, "old", stale.Name)
	assert.Equal(t, 0, c.Size())

	fresh, err := uc.GetCategoryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", fresh.Name)
}
