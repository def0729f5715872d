package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_EmptyURL(t *testing.T) {
	_, err := Connect(context.Background(), "")
	assert.EqualError(t, err, "database URL cannot be empty")
}

func TestSyncSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS product_tag")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, SyncSchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSyncSchema_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	err = SyncSchema(context.Background(), db)
	assert.ErrorContains(t, err, "permission denied")
}

func TestSchemaDeclaresJoinConstraints(t *testing.T) {
	assert.Contains(t, schema, "UNIQUE (product_id, tag_id)")
	assert.Contains(t, schema, "ON DELETE SET NULL")
	assert.Contains(t, schema, "CHECK (price >= 0)")
}
