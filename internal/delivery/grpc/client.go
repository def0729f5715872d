package grpc

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"
	catalogpb "catalog_service/proto"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

// CatalogClient calls catalog.v1.CatalogService and returns domain types.
type CatalogClient struct {
	client catalogpb.CatalogServiceClient
}

func NewCatalogClient(cc grpc.ClientConnInterface) *CatalogClient {
	return &CatalogClient{client: catalogpb.NewCatalogServiceClient(cc)}
}

// Dial opens a plaintext connection to the catalog service.
func Dial(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog service at %s: %w", target, err)
	}
	return conn, nil
}

func mapProtoSummariesToDomain(products []*catalogpb.ProductSummary) ([]domain.ProductSummary, error) {
	out := make([]domain.ProductSummary, 0, len(products))
	for _, p := range products {
		price, err := decimal.NewFromString(p.GetPrice())
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for product %d: %w", p.GetPrice(), p.GetId(), err)
		}
		out = append(out, domain.ProductSummary{
			ID:          int(p.GetId()),
			ProductName: p.GetProductName(),
			Price:       price,
			Stock:       int(p.GetStock()),
		})
	}
	return out, nil
}

func mapProtoCategoryToDomain(cat *catalogpb.Category) (*domain.Category, error) {
	products, err := mapProtoSummariesToDomain(cat.GetProducts())
	if err != nil {
		return nil, err
	}
	return &domain.Category{ID: int(cat.GetId()), Name: cat.GetCategoryName(), Products: products}, nil
}

func mapProtoProductToDomain(prod *catalogpb.Product) (*domain.Product, error) {
	price, err := decimal.NewFromString(prod.GetPrice())
	if err != nil {
		return nil, fmt.Errorf("invalid price %q for product %d: %w", prod.GetPrice(), prod.GetId(), err)
	}
	out := &domain.Product{
		ID:          int(prod.GetId()),
		ProductName: prod.GetProductName(),
		Price:       price,
		Stock:       int(prod.GetStock()),
		Tags:        make([]domain.TagRef, 0, len(prod.GetTags())),
	}
	if id := int(prod.GetCategoryId()); id != 0 {
		out.CategoryID = &id
	}
	if cat := prod.GetCategory(); cat != nil {
		out.Category = &domain.CategoryRef{ID: int(cat.GetId()), Name: cat.GetCategoryName()}
	}
	for _, tag := range prod.GetTags() {
		out.Tags = append(out.Tags, domain.TagRef{ID: int(tag.GetId()), Name: tag.GetTagName()})
	}
	return out, nil
}

func mapProtoTagToDomain(tag *catalogpb.Tag) (*domain.Tag, error) {
	products, err := mapProtoSummariesToDomain(tag.GetProducts())
	if err != nil {
		return nil, err
	}
	return &domain.Tag{ID: int(tag.GetId()), Name: tag.GetTagName(), Products: products}, nil
}

func (c *CatalogClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	res, err := c.client.ListCategories(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(res.GetCategories()))
	for _, cat := range res.GetCategories() {
		category, err := mapProtoCategoryToDomain(cat)
		if err != nil {
			return nil, err
		}
		out = append(out, *category)
	}
	return out, nil
}

func (c *CatalogClient) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	res, err := c.client.GetCategory(ctx, &catalogpb.IDRequest{Id: int64(id)})
	if err != nil {
		return nil, err
	}
	return mapProtoCategoryToDomain(res)
}

func (c *CatalogClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	res, err := c.client.ListProducts(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(res.GetProducts()))
	for _, prod := range res.GetProducts() {
		product, err := mapProtoProductToDomain(prod)
		if err != nil {
			return nil, err
		}
		out = append(out, *product)
	}
	return out, nil
}

func (c *CatalogClient) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	res, err := c.client.GetProduct(ctx, &catalogpb.IDRequest{Id: int64(id)})
	if err != nil {
		return nil, err
	}
	return mapProtoProductToDomain(res)
}

func (c *CatalogClient) SetProductTags(ctx context.Context, productID int, tagIDs []int) (*domain.Product, error) {
	req := &catalogpb.SetProductTagsRequest{ProductId: int64(productID), TagIds: make([]int64, 0, len(tagIDs))}
	for _, id := range tagIDs {
		req.TagIds = append(req.TagIds, int64(id))
	}
	res, err := c.client.SetProductTags(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapProtoProductToDomain(res)
}

func (c *CatalogClient) ListTags(ctx context.Context) ([]domain.Tag, error) {
	res, err := c.client.ListTags(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Tag, 0, len(res.GetTags()))
	for _, t := range res.GetTags() {
		tag, err := mapProtoTagToDomain(t)
		if err != nil {
			return nil, err
		}
		out = append(out, *tag)
	}
	return out, nil
}

func (c *CatalogClient) GetTag(ctx context.Context, id int) (*domain.Tag, error) {
	res, err := c.client.GetTag(ctx, &catalogpb.IDRequest{Id: int64(id)})
	if err != nil {
		return nil, err
	}
	return mapProtoTagToDomain(res)
}

func (c *CatalogClient) DeleteTag(ctx context.Context, id int) error {
	_, err := c.client.DeleteTag(ctx, &catalogpb.IDRequest{Id: int64(id)})
	return err
}
