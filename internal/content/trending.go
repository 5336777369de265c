package content

import (
	"sort"
	"time"

	"github.com/inkwellhq/inkwell/internal/models"
)

// Trending formula constants
const (
	likeWeight      = 3.0
	agePenaltyPerHr = 0.1
	ageGraceHours   = 24.0
)

// TrendingScore computes the ranking score for a post:
// views + 3×likes − agePenalty, where the penalty accrues at 0.1 per
// hour past the first 24.
func TrendingScore(views, likes int64, createdAt, now time.Time) float64 {
	age := now.Sub(createdAt).Hours()
	penalty := (age - ageGraceHours) * agePenaltyPerHr
	if penalty < 0 {
		penalty = 0
	}
	return float64(views) + likeWeight*float64(likes) - penalty
}

// TrendingCandidate pairs a post with its like count for ranking
type TrendingCandidate struct {
	Post  *models.Post
	Likes int64
}

// RankTrending orders candidates by descending trending score, breaking
// ties in favor of the newer post, and returns the top limit entries.
func RankTrending(candidates []TrendingCandidate, now time.Time, limit int) []TrendingCandidate {
	ranked := make([]TrendingCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		si := TrendingScore(ranked[i].Post.Views, ranked[i].Likes, ranked[i].Post.CreatedAt, now)
		sj := TrendingScore(ranked[j].Post.Views, ranked[j].Likes, ranked[j].Post.CreatedAt, now)
		if si != sj {
			return si > sj
		}
		return ranked[i].Post.CreatedAt.After(ranked[j].Post.CreatedAt)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
