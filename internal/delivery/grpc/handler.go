package grpc

import (
	"context"
	"errors"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"
	catalogpb "catalog_service/proto"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type CatalogHandler struct {
	catalogpb.UnimplementedCatalogServiceServer
	categoryUseCase usecase.CategoryUseCase
	productUseCase  usecase.ProductUseCase
	tagUseCase      usecase.TagUseCase
	log             *logrus.Logger
}

func NewCatalogHandler(cuc usecase.CategoryUseCase, puc usecase.ProductUseCase, tuc usecase.TagUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		categoryUseCase: cuc,
		productUseCase:  puc,
		tagUseCase:      tuc,
		log:             logger,
	}
}

func mapDomainSummariesToProto(products []domain.ProductSummary) []*catalogpb.ProductSummary {
	out := make([]*catalogpb.ProductSummary, 0, len(products))
	for _, p := range products {
		out = append(out, &catalogpb.ProductSummary{
			Id:          int64(p.ID),
			ProductName: p.ProductName,
			Price:       p.Price.StringFixed(2),
			Stock:       int32(p.Stock),
		})
	}
	return out
}

func mapDomainCategoryToProto(cat *domain.Category) *catalogpb.Category {
	if cat == nil {
		return nil
	}
	return &catalogpb.Category{
		Id:           int64(cat.ID),
		CategoryName: cat.Name,
		Products:     mapDomainSummariesToProto(cat.Products),
	}
}

func mapDomainProductToProto(prod *domain.Product) *catalogpb.Product {
	if prod == nil {
		return nil
	}
	out := &catalogpb.Product{
		Id:          int64(prod.ID),
		ProductName: prod.ProductName,
		Price:       prod.Price.StringFixed(2),
		Stock:       int32(prod.Stock),
		Tags:        make([]*catalogpb.TagRef, 0, len(prod.Tags)),
	}
	if prod.CategoryID != nil {
		out.CategoryId = int64(*prod.CategoryID)
	}
	if prod.Category != nil {
		out.Category = &catalogpb.CategoryRef{Id: int64(prod.Category.ID), CategoryName: prod.Category.Name}
	}
	for _, tag := range prod.Tags {
		out.Tags = append(out.Tags, &catalogpb.TagRef{Id: int64(tag.ID), TagName: tag.Name})
	}
	return out
}

func mapDomainTagToProto(tag *domain.Tag) *catalogpb.Tag {
	if tag == nil {
		return nil
	}
	return &catalogpb.Tag{
		Id:       int64(tag.ID),
		TagName:  tag.Name,
		Products: mapDomainSummariesToProto(tag.Products),
	}
}

func (h *CatalogHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*catalogpb.CategoryList, error) {
	categories, err := h.categoryUseCase.ListCategories(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListCategories use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	res := &catalogpb.CategoryList{Categories: make([]*catalogpb.Category, 0, len(categories))}
	for i := range categories {
		res.Categories = append(res.Categories, mapDomainCategoryToProto(&categories[i]))
	}
	return res, nil
}

func (h *CatalogHandler) GetCategory(ctx context.Context, req *catalogpb.IDRequest) (*catalogpb.Category, error) {
	id := int(req.GetId())
	h.log.Infof("gRPC Handler: Received GetCategory request: ID=%d", id)
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid category ID")
	}

	category, err := h.categoryUseCase.GetCategoryByID(ctx, id)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetCategory use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return mapDomainCategoryToProto(category), nil
}

func (h *CatalogHandler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*catalogpb.ProductList, error) {
	products, err := h.productUseCase.ListProducts(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListProducts use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	res := &catalogpb.ProductList{Products: make([]*catalogpb.Product, 0, len(products))}
	for i := range products {
		res.Products = append(res.Products, mapDomainProductToProto(&products[i]))
	}
	return res, nil
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *catalogpb.IDRequest) (*catalogpb.Product, error) {
	id := int(req.GetId())
	h.log.Infof("gRPC Handler: Received GetProduct request: ID=%d", id)
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}

	product, err := h.productUseCase.GetProductByID(ctx, id)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetProduct use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return mapDomainProductToProto(product), nil
}

// SetProductTags replaces the product's tags with exactly req.TagIds.
func (h *CatalogHandler) SetProductTags(ctx context.Context, req *catalogpb.SetProductTagsRequest) (*catalogpb.Product, error) {
	id := int(req.GetProductId())
	h.log.Infof("gRPC Handler: Received SetProductTags request: ProductID=%d, TagIDs=%v", id, req.GetTagIds())
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}

	tagIDs := make([]int, 0, len(req.GetTagIds()))
	for _, tagID := range req.GetTagIds() {
		tagIDs = append(tagIDs, int(tagID))
	}
	product, err := h.productUseCase.SetProductTags(ctx, id, tagIDs)
	if err != nil {
		h.log.Errorf("gRPC Handler: SetProductTags use case error for product %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return mapDomainProductToProto(product), nil
}

func (h *CatalogHandler) ListTags(ctx context.Context, _ *emptypb.Empty) (*catalogpb.TagList, error) {
	tags, err := h.tagUseCase.ListTags(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListTags use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}

	res := &catalogpb.TagList{Tags: make([]*catalogpb.Tag, 0, len(tags))}
	for i := range tags {
		res.Tags = append(res.Tags, mapDomainTagToProto(&tags[i]))
	}
	return res, nil
}

func (h *CatalogHandler) GetTag(ctx context.Context, req *catalogpb.IDRequest) (*catalogpb.Tag, error) {
	id := int(req.GetId())
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid tag ID")
	}

	tag, err := h.tagUseCase.GetTagByID(ctx, id)
	if err != nil {
		h.log.Warnf("gRPC Handler: GetTag use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return mapDomainTagToProto(tag), nil
}

func (h *CatalogHandler) DeleteTag(ctx context.Context, req *catalogpb.IDRequest) (*emptypb.Empty, error) {
	id := int(req.GetId())
	h.log.Infof("gRPC Handler: Received DeleteTag request: ID=%d", id)
	if id <= 0 {
		return nil, status.Error(codes.InvalidArgument, "Invalid tag ID")
	}

	if err := h.tagUseCase.DeleteTag(ctx, id); err != nil {
		h.log.Warnf("gRPC Handler: DeleteTag use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func mapDomainErrorToGrpcStatus(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, "Internal server error")
	}
}
