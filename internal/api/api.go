// Package api exposes the REST surface of the blog platform: post,
// comment and profile handlers wired onto a gin engine behind the
// bearer-token gate.
package api

import (
	"context"

	"github.com/inkwellhq/inkwell/internal/models"
)

// PostStore is the persistence surface the post handlers depend on
type PostStore interface {
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	ListPublishedByAuthor(ctx context.Context, authorID int64) ([]*models.Post, error)
	ListPublished(ctx context.Context) ([]*models.Post, error)
	ListRecentPublished(ctx context.Context, limit int) ([]*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int64) error
	IncrementViews(ctx context.Context, id int64) error
	CountLikes(ctx context.Context, postID int64) (int64, error)
	LikeCounts(ctx context.Context, postIDs []int64) (map[int64]int64, error)
	HasLiked(ctx context.Context, postID, userID int64) (bool, error)
	ToggleLike(ctx context.Context, postID, userID int64) (bool, int64, error)
}

// CommentStore is the persistence surface the comment handlers depend on
type CommentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	ListTopLevel(ctx context.Context, postID int64) ([]*models.Comment, error)
	ListReplies(ctx context.Context, parentIDs []int64) ([]*models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	DeleteWithDirectReplies(ctx context.Context, id int64) (int64, error)
}

// UserStore is the persistence surface the profile handler depends on
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// PostView decorates a post with the derived read-model fields
type PostView struct {
	models.Post
	Likes       int64   `json:"likes"`
	Liked       bool    `json:"liked"`
	ReadingTime int     `json:"reading_time"`
	Score       float64 `json:"score,omitempty"`
}
