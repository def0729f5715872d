package usecase

import (
	"context"
	"strings"

	"catalog_service/internal/domain"
	"catalog_service/internal/events"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type CategoryUseCase interface {
	CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, update domain.CategoryUpdate) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	productRepo  domain.ProductRepository
	notifier     *Notifier
	log          *logrus.Logger
}

func NewCategoryUseCase(cRepo domain.CategoryRepository, pRepo domain.ProductRepository, notifier *Notifier, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		notifier:     notifier,
		log:          logger,
	}
}

// CreateCategory stores the category and then its nested products in
// parallel. Products are checked up front; a store failure half way leaves
// what was already written.
func (uc *categoryUseCase) CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		uc.log.Warn("Use Case: Attempted to create category with empty name")
		return nil, domain.Invalid("category_name", "category name cannot be empty")
	}
	if err := checkNameLength("category_name", name); err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(input.Products))
	for i, in := range input.Products {
		product, err := newProduct(in)
		if err != nil {
			uc.log.Warnf("Use Case: Nested product #%d of category '%s' rejected: %v", i, name, err)
			return nil, err
		}
		products = append(products, product)
	}

	uc.log.Infof("Use Case: Attempting to create category with name '%s'", name)
	created, err := uc.categoryRepo.CreateCategory(ctx, &domain.Category{Name: name})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", name, err)
		return nil, err
	}
	uc.notifier.Changed(ctx, events.New(events.EntityCategory, events.ActionCreated, created.ID, created))

	if len(products) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for _, product := range products {
			product := product
			categoryID := created.ID
			product.CategoryID = &categoryID
			g.Go(func() error {
				p, err := uc.productRepo.CreateProduct(gctx, product)
				if err != nil {
					return err
				}
				uc.notifier.Changed(gctx, events.New(events.EntityProduct, events.ActionCreated, p.ID, p))
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			uc.log.Errorf("Use Case: Failed to create products of category ID %d: %v", created.ID, err)
			return nil, err
		}
		uc.log.Infof("Use Case: Created %d products for category ID %d", len(products), created.ID)
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", created.Name, created.ID)
	return created, nil
}

func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	if err := validateID("category", id); err != nil {
		uc.log.Warnf("Use Case: Attempted to get category with invalid ID: %d", id)
		return nil, err
	}

	category, err := readThrough(ctx, uc.notifier, cacheKey("categories", id), func(ctx context.Context) (*domain.Category, error) {
		return uc.categoryRepo.GetCategoryByID(ctx, id)
	})
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}
	return category, nil
}

// UpdateCategory applies the provided fields and returns the stored row.
func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int, update domain.CategoryUpdate) (*domain.Category, error) {
	if err := validateID("category", id); err != nil {
		return nil, err
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			uc.log.Warnf("Use Case: Attempted update for category ID %d with empty name", id)
			return nil, domain.Invalid("category_name", "category name cannot be empty for update")
		}
		if err := checkNameLength("category_name", name); err != nil {
			return nil, err
		}
		update.Name = &name
	}

	uc.log.Infof("Use Case: Attempting to update category ID %d", id)
	if err := uc.categoryRepo.UpdateCategory(ctx, id, update); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return nil, err
	}
	category, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !update.Empty() {
		uc.notifier.Changed(ctx, events.New(events.EntityCategory, events.ActionUpdated, id, category))
	}
	return category, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	if err := validateID("category", id); err != nil {
		return err
	}

	uc.log.Infof("Use Case: Attempting to delete category ID %d", id)
	if err := uc.categoryRepo.DeleteCategory(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return err
	}
	uc.notifier.Changed(ctx, events.New(events.EntityCategory, events.ActionDeleted, id, nil))
	uc.log.Infof("Use Case: Category ID %d deleted successfully", id)
	return nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := readThrough(ctx, uc.notifier, cacheKey("categories"), uc.categoryRepo.ListCategories)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}
