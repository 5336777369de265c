package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/inkwellhq/inkwell/internal/models"
)

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("Tags").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a post by slug
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListPublishedByAuthor retrieves published posts for an author, newest first
func (r *PostRepository) ListPublishedByAuthor(ctx context.Context, authorID int64) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("author_id = ? AND status = ?", authorID, models.StatusPublished).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPublished retrieves every published post
func (r *PostRepository) ListPublished(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusPublished).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListRecentPublished retrieves the most recent published posts
func (r *PostRepository) ListRecentPublished(ctx context.Context, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("status = ?", models.StatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create creates a new post together with its tag rows
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Delete removes a post. Comments are left in place; the tag and like
// rows go with the post.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
}

// IncrementViews bumps the view counter atomically in the database, so
// concurrent reads never lose an increment.
func (r *PostRepository) IncrementViews(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// CountLikes returns the number of likes on a post
func (r *PostRepository) CountLikes(ctx context.Context, postID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// LikeCounts returns like counts keyed by post ID for a batch of posts
func (r *PostRepository) LikeCounts(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(postIDs))
	if len(postIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		PostID int64 `gorm:"column:post_id"`
		Count  int64 `gorm:"column:count"`
	}
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Select("post_id, COUNT(*) AS count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.PostID] = row.Count
	}
	return counts, nil
}

// HasLiked reports whether the user is in the post's likes set
func (r *PostRepository) HasLiked(ctx context.Context, postID, userID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ToggleLike flips the user's membership in the post's likes set and
// returns the resulting state together with the new like count.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID int64) (bool, int64, error) {
	liked, err := r.HasLiked(ctx, postID, userID)
	if err != nil {
		return false, 0, err
	}

	if liked {
		err = r.db.WithContext(ctx).
			Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.PostLike{}).Error
	} else {
		err = r.db.WithContext(ctx).Create(&models.PostLike{PostID: postID, UserID: userID}).Error
	}
	if err != nil {
		return false, 0, err
	}

	count, err := r.CountLikes(ctx, postID)
	if err != nil {
		return false, 0, err
	}
	return !liked, count, nil
}
