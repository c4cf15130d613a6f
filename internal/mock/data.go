package mock

import (
	"time"

	"github.com/TagBoard/tagboard_backend/internal/models"
)

// モックタグ
var Tags = []models.Tag{
	{ID: 1, Name: "ruby", CreatedAt: time.Now().Add(-40 * 24 * time.Hour)},
	{ID: 2, Name: "Rails", CreatedAt: time.Now().Add(-38 * 24 * time.Hour)},
	{ID: 3, Name: "go", CreatedAt: time.Now().Add(-35 * 24 * time.Hour)},
	{ID: 4, Name: "database", CreatedAt: time.Now().Add(-32 * 24 * time.Hour)},
	{ID: 5, Name: "tutorial", CreatedAt: time.Now().Add(-30 * 24 * time.Hour)},
}

// モック記事
var Articles = []models.Article{
	{
		ID:        1,
		Author:    "John Doe",
		Content:   "Many-to-many tagging with a join table keeps tag rows shared between articles.",
		CreatedAt: time.Now().Add(-20 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-20 * 24 * time.Hour),
		Tags:      []models.Tag{Tags[0], Tags[1]},
	},
	{
		ID:        2,
		Author:    "Jane Smith",
		Content:   "A tag cloud sizes each tag by how many articles reference it.",
		CreatedAt: time.Now().Add(-10 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-9 * 24 * time.Hour),
		Tags:      []models.Tag{Tags[1], Tags[4]},
	},
	{
		ID:        3,
		Author:    "John Doe",
		Content:   "Comma separated tag input is normalized before tags are resolved.",
		CreatedAt: time.Now().Add(-2 * 24 * time.Hour),
		UpdatedAt: time.Now().Add(-2 * 24 * time.Hour),
		Tags:      []models.Tag{Tags[2], Tags[3], Tags[4]},
	},
}
