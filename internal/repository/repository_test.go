package repository

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"regexp"
	"testing"

	"catalog_service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *logrus.Logger) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return db, mock, logger
}

func q(s string) string { return regexp.QuoteMeta(s) }

func TestCategoryRepository_GetCategoryByID(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresCategoryRepository(db, logger)

	mock.ExpectQuery(q("SELECT id, category_name FROM category WHERE id = $1")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_name"}).AddRow(3, "Shirts"))
	mock.ExpectQuery(q("FROM product WHERE category_id = $1")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price", "stock", "category_id"}).
			AddRow(1, "Tee", "14.99", 10, 3).
			AddRow(2, "Polo", "21.50", 4, 3))

	category, err := repo.GetCategoryByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Shirts", category.Name)
	require.Len(t, category.Products, 2)
	assert.Equal(t, "Polo", category.Products[1].ProductName)
	assert.True(t, decimal.RequireFromString("21.5").Equal(category.Products[1].Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_GetCategoryByID_NotFound(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresCategoryRepository(db, logger)

	mock.ExpectQuery(q("FROM category WHERE id = $1")).
		WithArgs(9).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCategoryByID(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_ListCategories_EmptyProducts(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresCategoryRepository(db, logger)

	mock.ExpectQuery(q("SELECT id, category_name FROM category ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_name"}).AddRow(1, "Shirts").AddRow(2, "Hats"))
	mock.ExpectQuery(q("FROM product WHERE category_id IS NOT NULL")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price", "stock", "category_id"}).
			AddRow(5, "Cap", "8.00", 2, 2))

	categories, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.NotNil(t, categories[0].Products)
	assert.Empty(t, categories[0].Products)
	assert.Equal(t, 5, categories[1].Products[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_UpdateCategory_SkipsEmpty(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresCategoryRepository(db, logger)

	require.NoError(t, repo.UpdateCategory(context.Background(), 1, domain.CategoryUpdate{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_DeleteCategory(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresCategoryRepository(db, logger)

	mock.ExpectExec(q("DELETE FROM category WHERE id = $1")).WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q("DELETE FROM category WHERE id = $1")).WithArgs(2).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteCategory(context.Background(), 1))
	assert.ErrorIs(t, repo.DeleteCategory(context.Background(), 2), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_CreateProduct(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductRepository(db, logger)

	categoryID := 2
	mock.ExpectQuery(q("INSERT INTO product (product_name, price, stock, category_id)")).
		WithArgs("Tee", "14.99", 10, int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	product, err := repo.CreateProduct(context.Background(), &domain.Product{
		ProductName: "Tee",
		Price:       decimal.RequireFromString("14.99"),
		Stock:       10,
		CategoryID:  &categoryID,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_CreateProduct_ForeignKeyViolation(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductRepository(db, logger)

	mock.ExpectQuery(q("INSERT INTO product")).
		WillReturnError(&pq.Error{Code: pqForeignKeyViolation, Constraint: "product_category_id_fkey"})

	categoryID := 99
	_, err := repo.CreateProduct(context.Background(), &domain.Product{ProductName: "Tee", CategoryID: &categoryID})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTranslateWriteError_OutOfRange(t *testing.T) {
	for _, code := range []pq.ErrorCode{pqStringTooLong, pqNumericOutOfRange} {
		err := translateWriteError(&pq.Error{Code: code, Column: "stock", Message: "out of range"}, "update product")
		assert.ErrorIs(t, err, domain.ErrValidation, string(code))
	}
	assert.NotErrorIs(t, translateWriteError(errors.New("connection reset"), "update product"), domain.ErrValidation)
}

func TestProductRepository_UpdateProduct_StringTooLong(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductRepository(db, logger)

	mock.ExpectExec(q("UPDATE product SET product_name = $1")).
		WillReturnError(&pq.Error{Code: pqStringTooLong, Message: "value too long for type character varying(255)"})

	name := "long"
	err := repo.UpdateProduct(context.Background(), 1, domain.ProductUpdate{ProductName: &name})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetProductByID_WithCategoryAndTags(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductRepository(db, logger)

	mock.ExpectQuery(q("LEFT JOIN category c ON c.id = p.category_id WHERE p.id = $1")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price", "stock", "category_id", "category_name"}).
			AddRow(4, "Tee", "14.99", 3, 1, "Shirts"))
	mock.ExpectQuery(q("WHERE pt.product_id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "id", "tag_name"}).
			AddRow(4, 2, "cotton").
			AddRow(4, 5, "summer"))

	product, err := repo.GetProductByID(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, product.CategoryID)
	assert.Equal(t, 1, *product.CategoryID)
	assert.Equal(t, &domain.CategoryRef{ID: 1, Name: "Shirts"}, product.Category)
	assert.Equal(t, []domain.TagRef{{ID: 2, Name: "cotton"}, {ID: 5, Name: "summer"}}, product.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetProductByID_Uncategorized(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductRepository(db, logger)

	mock.ExpectQuery(q("WHERE p.id = $1")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price", "stock", "category_id", "category_name"}).
			AddRow(4, "Tee", "14.99", 3, nil, nil))
	mock.ExpectQuery(q("WHERE pt.product_id = ANY($1)")).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "id", "tag_name"}))

	product, err := repo.GetProductByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Nil(t, product.CategoryID)
	assert.Nil(t, product.Category)
	assert.NotNil(t, product.Tags)
	assert.Empty(t, product.Tags)
}

func TestProductRepository_ListProducts_Empty(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductRepository(db, logger)

	mock.ExpectQuery(q("ORDER BY p.id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_name", "price", "stock", "category_id", "category_name"}))

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_UpdateProduct_PartialColumns(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductRepository(db, logger)

	stock := 0
	mock.ExpectExec(q("UPDATE product SET stock = $1, category_id = $2 WHERE id = $3")).
		WithArgs(0, nil, 6).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateProduct(context.Background(), 6, domain.ProductUpdate{
		Stock:      &stock,
		CategoryID: domain.OptionalID{Set: true},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_UpdateProduct_NoColumns(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductRepository(db, logger)

	require.NoError(t, repo.UpdateProduct(context.Background(), 6, domain.ProductUpdate{TagIDs: []int{1}}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_DeleteProduct_NotFound(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductRepository(db, logger)

	mock.ExpectExec(q("DELETE FROM product WHERE id = $1")).WithArgs(3).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteProduct(context.Background(), 3), domain.ErrNotFound)
}

func TestProductTagRepository_CreateProductTags(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductTagRepository(db, logger)

	mock.ExpectQuery(q("INSERT INTO product_tag (product_id, tag_id)")).
		WithArgs(1, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "tag_id"}).
			AddRow(10, 1, 2).
			AddRow(11, 1, 3))

	created, err := repo.CreateProductTags(context.Background(), 1, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []domain.ProductTag{{ID: 10, ProductID: 1, TagID: 2}, {ID: 11, ProductID: 1, TagID: 3}}, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductTagRepository_CreateProductTags_Duplicate(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductTagRepository(db, logger)

	mock.ExpectQuery(q("INSERT INTO product_tag")).
		WillReturnError(&pq.Error{Code: pqUniqueViolation, Detail: "Key (product_id, tag_id)=(1, 2) already exists."})

	_, err := repo.CreateProductTags(context.Background(), 1, []int{2})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductTagRepository_EmptyInputsSkipQueries(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductTagRepository(db, logger)

	created, err := repo.CreateProductTags(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, created)
	require.NoError(t, repo.DeleteProductTags(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductTagRepository_DeleteProductTags(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresProductTagRepository(db, logger)

	mock.ExpectExec(q("DELETE FROM product_tag WHERE id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteProductTags(context.Background(), []int{4, 5}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_GetTagByID(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresTagRepository(db, logger)

	mock.ExpectQuery(q("SELECT id, tag_name FROM tag WHERE id = $1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tag_name"}).AddRow(2, "cotton"))
	mock.ExpectQuery(q("WHERE pt.tag_id = $1")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"tag_id", "id", "product_name", "price", "stock"}).
			AddRow(2, 4, "Tee", "14.99", 3))

	tag, err := repo.GetTagByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "cotton", tag.Name)
	require.Len(t, tag.Products, 1)
	assert.Equal(t, "Tee", tag.Products[0].ProductName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_ExistingTagIDs(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresTagRepository(db, logger)

	mock.ExpectQuery(q("SELECT id FROM tag WHERE id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(3))

	ids, err := repo.ExistingTagIDs(context.Background(), []int{1, 2, 3})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_DeleteTag_StoreError(t *testing.T) {
	db, mock, logger := newMock(t)
	repo := NewPostgresTagRepository(db, logger)

	mock.ExpectExec(q("DELETE FROM tag WHERE id = $1")).WillReturnError(errors.New("connection reset"))

	err := repo.DeleteTag(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
