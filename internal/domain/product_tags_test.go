package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffProductTags(t *testing.T) {
	current := []ProductTag{
		{ID: 10, ProductID: 1, TagID: 1},
		{ID: 11, ProductID: 1, TagID: 2},
	}

	tests := []struct {
		name       string
		current    []ProductTag
		requested  []int
		wantAdd    []int
		wantRemove []int
	}{
		{"swap one tag", current, []int{2, 3}, []int{3}, []int{10}},
		{"unchanged", current, []int{1, 2}, nil, nil},
		{"replace all", current, []int{4, 5}, []int{4, 5}, []int{10, 11}},
		{"no current rows", nil, []int{7, 7, 8}, []int{7, 8}, nil},
		{"duplicates in request", current, []int{3, 2, 3}, []int{3}, []int{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			add, remove := DiffProductTags(tt.current, tt.requested)
			assert.Equal(t, tt.wantAdd, add)
			assert.Equal(t, tt.wantRemove, remove)
		})
	}
}

func TestUniqueIDs(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, UniqueIDs([]int{3, 1, 3, 2, 1}))
	assert.Empty(t, UniqueIDs(nil))
}

func TestProductUpdateDecoding(t *testing.T) {
	var absent ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.True(t, absent.Empty())
	assert.False(t, absent.CategoryID.Set)

	var cleared ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"category_id": null}`), &cleared))
	assert.False(t, cleared.Empty())
	assert.True(t, cleared.CategoryID.Set)
	assert.Nil(t, cleared.CategoryID.Value)

	var moved ProductUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"category_id": 4, "price": "9.99", "tagIds": [1]}`), &moved))
	require.NotNil(t, moved.CategoryID.Value)
	assert.Equal(t, 4, *moved.CategoryID.Value)
	assert.Equal(t, "9.99", moved.Price.String())
	assert.Equal(t, []int{1}, moved.TagIDs)
}

func TestErrorTaxonomy(t *testing.T) {
	err := NotFound("tag", 9)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, "tag with id 9 not found")

	wrapped := errors.Join(Invalid("price", "price cannot be negative"))
	assert.True(t, errors.Is(wrapped, ErrValidation))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}
