package usecase

import (
	"context"

	"catalog_service/internal/domain"
	"catalog_service/internal/events"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type ProductUseCase interface {
	// CreateProduct returns the created join rows when tags were attached.
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, []domain.ProductTag, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, update domain.ProductUpdate) (*domain.Product, error)
	SetProductTags(ctx context.Context, id int, tagIDs []int) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type productUseCase struct {
	productRepo    domain.ProductRepository
	categoryRepo   domain.CategoryRepository
	tagRepo        domain.TagRepository
	productTagRepo domain.ProductTagRepository
	notifier       *Notifier
	log            *logrus.Logger
}

func NewProductUseCase(
	pRepo domain.ProductRepository,
	cRepo domain.CategoryRepository,
	tRepo domain.TagRepository,
	ptRepo domain.ProductTagRepository,
	notifier *Notifier,
	logger *logrus.Logger,
) ProductUseCase {
	return &productUseCase{
		productRepo:    pRepo,
		categoryRepo:   cRepo,
		tagRepo:        tRepo,
		productTagRepo: ptRepo,
		notifier:       notifier,
		log:            logger,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, []domain.ProductTag, error) {
	product, err := newProduct(input)
	if err != nil {
		uc.log.Warnf("Use Case: Rejected product '%s': %v", input.ProductName, err)
		return nil, nil, err
	}
	if err := requireCategory(ctx, uc.categoryRepo, product.CategoryID); err != nil {
		uc.log.Warnf("Use Case: Category check failed during product creation: %v", err)
		return nil, nil, err
	}
	tagIDs := domain.UniqueIDs(input.TagIDs)
	if err := requireTags(ctx, uc.tagRepo, tagIDs); err != nil {
		uc.log.Warnf("Use Case: Tag check failed during product creation: %v", err)
		return nil, nil, err
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", product.ProductName)
	created, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.ProductName, err)
		return nil, nil, err
	}

	var productTags []domain.ProductTag
	if len(tagIDs) > 0 {
		productTags, err = uc.productTagRepo.CreateProductTags(ctx, created.ID, tagIDs)
		if err != nil {
			uc.log.Errorf("Use Case: Failed to tag product ID %d: %v", created.ID, err)
			return nil, nil, err
		}
	}

	fresh, err := uc.productRepo.GetProductByID(ctx, created.ID)
	if err != nil {
		return nil, nil, err
	}
	uc.notifier.Changed(ctx, events.New(events.EntityProduct, events.ActionCreated, fresh.ID, fresh))
	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d and %d tags", fresh.ProductName, fresh.ID, len(productTags))
	return fresh, productTags, nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	if err := validateID("product", id); err != nil {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, err
	}

	product, err := readThrough(ctx, uc.notifier, cacheKey("products", id), func(ctx context.Context) (*domain.Product, error) {
		return uc.productRepo.GetProductByID(ctx, id)
	})
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}

// UpdateProduct applies the provided columns and, when tag ids are given,
// converges the product's tags on them before returning the stored product.
// An empty tag list leaves the tags alone.
func (uc *productUseCase) UpdateProduct(ctx context.Context, id int, update domain.ProductUpdate) (*domain.Product, error) {
	if err := validateID("product", id); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.GetProductByID(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for update: %v", id, err)
		return nil, err
	}
	if err := validateProductUpdate(&update); err != nil {
		uc.log.Warnf("Use Case: Invalid update for product ID %d: %v", id, err)
		return nil, err
	}
	if update.CategoryID.Set {
		if err := requireCategory(ctx, uc.categoryRepo, update.CategoryID.Value); err != nil {
			return nil, err
		}
	}
	tagIDs := domain.UniqueIDs(update.TagIDs)
	if err := requireTags(ctx, uc.tagRepo, tagIDs); err != nil {
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update product ID %d", id)
	if err := uc.productRepo.UpdateProduct(ctx, id, update); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}
	if !update.Empty() {
		uc.notifier.Changed(ctx, events.New(events.EntityProduct, events.ActionUpdated, id, update))
	}

	if len(tagIDs) > 0 {
		if err := uc.reconcileTags(ctx, id, tagIDs); err != nil {
			return nil, err
		}
	}
	return uc.productRepo.GetProductByID(ctx, id)
}

// SetProductTags makes tagIDs the exact tag set of the product; an empty
// list removes every tag.
func (uc *productUseCase) SetProductTags(ctx context.Context, id int, tagIDs []int) (*domain.Product, error) {
	if err := validateID("product", id); err != nil {
		return nil, err
	}
	if _, err := uc.productRepo.GetProductByID(ctx, id); err != nil {
		return nil, err
	}
	tagIDs = domain.UniqueIDs(tagIDs)
	if err := requireTags(ctx, uc.tagRepo, tagIDs); err != nil {
		return nil, err
	}
	if err := uc.reconcileTags(ctx, id, tagIDs); err != nil {
		return nil, err
	}
	return uc.productRepo.GetProductByID(ctx, id)
}

// reconcileTags removes the join rows that are no longer requested and adds
// the missing ones concurrently. Both halves touch disjoint tag ids.
func (uc *productUseCase) reconcileTags(ctx context.Context, productID int, tagIDs []int) error {
	current, err := uc.productTagRepo.ListProductTags(ctx, productID)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to load tags of product ID %d: %v", productID, err)
		return err
	}
	toAdd, toRemove := domain.DiffProductTags(current, tagIDs)
	if len(toAdd) == 0 && len(toRemove) == 0 {
		uc.log.Debugf("Use Case: Tags of product ID %d already match %v", productID, tagIDs)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return uc.productTagRepo.DeleteProductTags(gctx, toRemove)
	})
	g.Go(func() error {
		_, err := uc.productTagRepo.CreateProductTags(gctx, productID, toAdd)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.log.Errorf("Use Case: Failed to reconcile tags of product ID %d: %v", productID, err)
		return err
	}

	uc.log.Infof("Use Case: Product ID %d tags reconciled: +%v -%d rows", productID, toAdd, len(toRemove))
	uc.notifier.Changed(ctx, events.New(events.EntityProductTags, events.ActionReconciled, productID, map[string]interface{}{
		"tag_ids": tagIDs,
		"added":   toAdd,
		"removed": toRemove,
	}))
	return nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) error {
	if err := validateID("product", id); err != nil {
		return err
	}

	uc.log.Infof("Use Case: Attempting to delete product ID %d", id)
	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}
	uc.notifier.Changed(ctx, events.New(events.EntityProduct, events.ActionDeleted, id, nil))
	uc.log.Infof("Use Case: Product ID %d deleted successfully", id)
	return nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := readThrough(ctx, uc.notifier, cacheKey("products"), uc.productRepo.ListProducts)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}
