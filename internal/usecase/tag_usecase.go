package usecase

import (
	"context"

	"catalog_service/internal/domain"
	"catalog_service/internal/events"

	"github.com/sirupsen/logrus"
)

type TagUseCase interface {
	CreateTag(ctx context.Context, input domain.TagInput) (*domain.Tag, error)
	GetTagByID(ctx context.Context, id int) (*domain.Tag, error)
	UpdateTag(ctx context.Context, id int, update domain.TagUpdate) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id int) error
	ListTags(ctx context.Context) ([]domain.Tag, error)
}

type tagUseCase struct {
	tagRepo        domain.TagRepository
	productRepo    domain.ProductRepository
	categoryRepo   domain.CategoryRepository
	productTagRepo domain.ProductTagRepository
	notifier       *Notifier
	log            *logrus.Logger

	// defaultCategoryID is used for nested products without category_id; 0 means none.
	defaultCategoryID int
}

func NewTagUseCase(
	tRepo domain.TagRepository,
	pRepo domain.ProductRepository,
	cRepo domain.CategoryRepository,
	ptRepo domain.ProductTagRepository,
	notifier *Notifier,
	logger *logrus.Logger,
	defaultCategoryID int,
) TagUseCase {
	return &tagUseCase{
		tagRepo:           tRepo,
		productRepo:       pRepo,
		categoryRepo:      cRepo,
		productTagRepo:    ptRepo,
		notifier:          notifier,
		log:               logger,
		defaultCategoryID: defaultCategoryID,
	}
}

// CreateTag stores the tag, then creates and tags each nested product one
// after the other. The returned tag lists the products created here.
func (uc *tagUseCase) CreateTag(ctx context.Context, input domain.TagInput) (*domain.Tag, error) {
	if err := checkNameLength("tag_name", input.Name); err != nil {
		return nil, err
	}
	products := make([]*domain.Product, 0, len(input.Products))
	for i, in := range input.Products {
		product, err := newProduct(in)
		if err != nil {
			uc.log.Warnf("Use Case: Nested product #%d of tag '%s' rejected: %v", i, input.Name, err)
			return nil, err
		}
		if product.CategoryID == nil && uc.defaultCategoryID != 0 {
			categoryID := uc.defaultCategoryID
			product.CategoryID = &categoryID
		}
		if err := requireCategory(ctx, uc.categoryRepo, product.CategoryID); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	uc.log.Infof("Use Case: Attempting to create tag '%s'", input.Name)
	tag, err := uc.tagRepo.CreateTag(ctx, &domain.Tag{Name: input.Name})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create tag '%s': %v", input.Name, err)
		return nil, err
	}
	uc.notifier.Changed(ctx, events.New(events.EntityTag, events.ActionCreated, tag.ID, tag))

	tag.Products = make([]domain.ProductSummary, 0, len(products))
	for _, product := range products {
		created, err := uc.productRepo.CreateProduct(ctx, product)
		if err != nil {
			uc.log.Errorf("Use Case: Failed to create product '%s' for tag ID %d: %v", product.ProductName, tag.ID, err)
			return nil, err
		}
		if _, err := uc.productTagRepo.CreateProductTags(ctx, created.ID, []int{tag.ID}); err != nil {
			uc.log.Errorf("Use Case: Failed to tag product ID %d with tag ID %d: %v", created.ID, tag.ID, err)
			return nil, err
		}
		uc.notifier.Changed(ctx, events.New(events.EntityProduct, events.ActionCreated, created.ID, created))
		tag.Products = append(tag.Products, created.Summary())
	}

	uc.log.Infof("Use Case: Tag '%s' created successfully with ID %d and %d products", tag.Name, tag.ID, len(tag.Products))
	return tag, nil
}

func (uc *tagUseCase) GetTagByID(ctx context.Context, id int) (*domain.Tag, error) {
	if err := validateID("tag", id); err != nil {
		return nil, err
	}

	tag, err := readThrough(ctx, uc.notifier, cacheKey("tags", id), func(ctx context.Context) (*domain.Tag, error) {
		return uc.tagRepo.GetTagByID(ctx, id)
	})
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get tag ID %d: %v", id, err)
		return nil, err
	}
	return tag, nil
}

func (uc *tagUseCase) UpdateTag(ctx context.Context, id int, update domain.TagUpdate) (*domain.Tag, error) {
	if err := validateID("tag", id); err != nil {
		return nil, err
	}
	if update.Name != nil {
		if err := checkNameLength("tag_name", *update.Name); err != nil {
			return nil, err
		}
	}

	uc.log.Infof("Use Case: Attempting to update tag ID %d", id)
	if err := uc.tagRepo.UpdateTag(ctx, id, update); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update tag ID %d: %v", id, err)
		return nil, err
	}
	tag, err := uc.tagRepo.GetTagByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !update.Empty() {
		uc.notifier.Changed(ctx, events.New(events.EntityTag, events.ActionUpdated, id, tag))
	}
	return tag, nil
}

func (uc *tagUseCase) DeleteTag(ctx context.Context, id int) error {
	if err := validateID("tag", id); err != nil {
		return err
	}

	uc.log.Infof("Use Case: Attempting to delete tag ID %d", id)
	if err := uc.tagRepo.DeleteTag(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete tag ID %d: %v", id, err)
		return err
	}
	uc.notifier.Changed(ctx, events.New(events.EntityTag, events.ActionDeleted, id, nil))
	uc.log.Infof("Use Case: Tag ID %d deleted successfully", id)
	return nil
}

func (uc *tagUseCase) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := readThrough(ctx, uc.notifier, cacheKey("tags"), uc.tagRepo.ListTags)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list tags: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d tags", len(tags))
	return tags, nil
}
