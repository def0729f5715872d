package domain

import "context"

type TagRepository interface {
	CreateTag(ctx context.Context, tag *Tag) (*Tag, error)
	GetTagByID(ctx context.Context, id int) (*Tag, error)
	ListTags(ctx context.Context) ([]Tag, error)
	UpdateTag(ctx context.Context, id int, update TagUpdate) error
	DeleteTag(ctx context.Context, id int) error
	// ExistingTagIDs returns the subset of ids that have a tag row.
	ExistingTagIDs(ctx context.Context, ids []int) ([]int, error)
}
