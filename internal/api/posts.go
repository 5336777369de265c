package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/cache"
	"github.com/inkwellhq/inkwell/internal/content"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/config"
	"github.com/inkwellhq/inkwell/pkg/logging"
	"github.com/inkwellhq/inkwell/pkg/telemetry"
)

// Read-model cache TTLs
const (
	trendingCacheTTL = 300 * time.Second
	featuredCacheTTL = 60 * time.Second
)

// PostHandler serves the post endpoints
type PostHandler struct {
	posts  PostStore
	users  UserStore
	cache  *cache.Cache
	cfg    *config.ContentConfig
	logger *zap.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(posts PostStore, users UserStore, redisCache *cache.Cache, cfg *config.ContentConfig) *PostHandler {
	return &PostHandler{
		posts:  posts,
		users:  users,
		cache:  redisCache,
		cfg:    cfg,
		logger: logging.WithComponent("posts-api"),
	}
}

// pathID parses an int64 path parameter, responding 400 on garbage
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		models.RespondWithError(c, http.StatusBadRequest,
			models.NewValidationError("invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// limitQuery parses the optional ?limit= query parameter
func limitQuery(c *gin.Context, defaultLimit int) int {
	raw := c.Query("limit")
	if raw == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return limit
}

// view decorates a post with the derived read-model fields
func (h *PostHandler) view(post *models.Post, likes int64, liked bool) PostView {
	v := PostView{
		Post:        *post,
		Likes:       likes,
		Liked:       liked,
		ReadingTime: content.ReadingTime(post.Content, h.cfg.ReadingWPM),
	}
	if v.CoverImage == "" {
		v.CoverImage = content.PlaceholderCover(post.ID)
	}
	return v
}

// views decorates a batch of posts with their like counts
func (h *PostHandler) views(c *gin.Context, posts []*models.Post) ([]PostView, error) {
	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	counts, err := h.posts.LikeCounts(c.Request.Context(), ids)
	if err != nil {
		return nil, err
	}

	out := make([]PostView, len(posts))
	for i, p := range posts {
		out[i] = h.view(p, counts[p.ID], false)
	}
	return out, nil
}

// ListByAuthor handles GET /api/posts/user/:userId
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if user == nil {
		models.RespondWithError(c, http.StatusNotFound, models.NewNotFoundError("user", userID))
		return
	}

	posts, err := h.posts.ListPublishedByAuthor(c.Request.Context(), userID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	out, err := h.views(c, posts)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Featured handles GET /api/posts/featured
func (h *PostHandler) Featured(c *gin.Context) {
	limit := limitQuery(c, h.cfg.FeaturedLimit)

	cacheKey := cache.HashKey("featured", strconv.Itoa(limit))
	if h.cache != nil {
		var cached []PostView
		if err := h.cache.GetJSON(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	posts, err := h.posts.ListRecentPublished(c.Request.Context(), limit)
	if err != nil {
		h.serverError(c, err)
		return
	}

	out, err := h.views(c, posts)
	if err != nil {
		h.serverError(c, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(cacheKey, out, featuredCacheTTL); err != nil {
			h.logger.Warn("Failed to cache featured posts", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, out)
}

// Trending handles GET /api/posts/trending
func (h *PostHandler) Trending(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "posts.trending")
	defer span.End()

	limit := limitQuery(c, h.cfg.TrendingLimit)

	cacheKey := cache.HashKey("trending", strconv.Itoa(limit))
	if h.cache != nil {
		var cached []PostView
		if err := h.cache.GetJSON(cacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	posts, err := h.posts.ListPublished(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}

	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	counts, err := h.posts.LikeCounts(ctx, ids)
	if err != nil {
		h.serverError(c, err)
		return
	}

	candidates := make([]content.TrendingCandidate, len(posts))
	for i, p := range posts {
		candidates[i] = content.TrendingCandidate{Post: p, Likes: counts[p.ID]}
	}

	now := time.Now().UTC()
	ranked := content.RankTrending(candidates, now, limit)

	out := make([]PostView, len(ranked))
	for i, cand := range ranked {
		v := h.view(cand.Post, cand.Likes, false)
		v.Score = content.TrendingScore(cand.Post.Views, cand.Likes, cand.Post.CreatedAt, now)
		out[i] = v
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(cacheKey, out, trendingCacheTTL); err != nil {
			h.logger.Warn("Failed to cache trending posts", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, out)
}

// createPostRequest is the POST /api/posts body
type createPostRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"cover_image"`
	Category   string   `json:"category"`
	Status     string   `json:"status"`
	Tags       []string `json:"tags"`
}

// Create handles POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		models.RespondWithError(c, http.StatusUnauthorized, models.NewUnauthorizedError("authentication required"))
		return
	}

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.RespondWithError(c, http.StatusBadRequest, models.NewValidationError("invalid request body"))
		return
	}

	if req.Status == "" {
		req.Status = models.StatusPublished
	}

	slug := content.Slugify(req.Title)
	if slug == "" {
		models.RespondWithError(c, http.StatusBadRequest,
			models.NewValidationError("title must contain at least one alphanumeric character"))
		return
	}

	post := &models.Post{
		Title:      req.Title,
		Slug:       slug,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		AuthorID:   userID,
		Category:   req.Category,
		Status:     req.Status,
	}
	for _, tag := range req.Tags {
		post.Tags = append(post.Tags, models.PostTag{Tag: tag})
	}

	if err := post.Validate(); err != nil {
		models.RespondWithError(c, http.StatusBadRequest, models.NewValidationError(err.Error()))
		return
	}

	existing, err := h.posts.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if existing != nil {
		models.RespondWithError(c, http.StatusConflict,
			models.NewConflictError("a post with slug "+strconv.Quote(slug)+" already exists"))
		return
	}

	if err := h.posts.Create(c.Request.Context(), post); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// Get handles GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if post == nil {
		models.RespondWithError(c, http.StatusNotFound, models.NewNotFoundError("post", id))
		return
	}

	// Every read counts as a view; the increment happens in the
	// database so concurrent reads all land.
	if err := h.posts.IncrementViews(c.Request.Context(), id); err != nil {
		h.serverError(c, err)
		return
	}
	post.Views++

	liked := false
	if userID, ok := auth.CurrentUserID(c); ok {
		liked, err = h.posts.HasLiked(c.Request.Context(), id, userID)
		if err != nil {
			h.serverError(c, err)
			return
		}
	}

	likes, err := h.posts.CountLikes(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.view(post, likes, liked))
}

// Delete handles DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		models.RespondWithError(c, http.StatusUnauthorized, models.NewUnauthorizedError("authentication required"))
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if post == nil {
		models.RespondWithError(c, http.StatusNotFound, models.NewNotFoundError("post", id))
		return
	}

	if post.AuthorID != userID {
		models.RespondWithError(c, http.StatusForbidden,
			models.NewForbiddenError("only the author may delete this post"))
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// Like handles PUT /api/posts/:id/like
func (h *PostHandler) Like(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		models.RespondWithError(c, http.StatusUnauthorized, models.NewUnauthorizedError("authentication required"))
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if post == nil {
		models.RespondWithError(c, http.StatusNotFound, models.NewNotFoundError("post", id))
		return
	}

	liked, likes, err := h.posts.ToggleLike(c.Request.Context(), id, userID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked, "likes": likes})
}

// serverError logs and surfaces an unclassified failure
func (h *PostHandler) serverError(c *gin.Context, err error) {
	h.logger.Error("Unexpected failure", zap.Error(err))
	models.RespondWithError(c, http.StatusInternalServerError, models.NewInternalError(err))
}
