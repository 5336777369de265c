package api

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

// CommentHandler serves the comment endpoints
type CommentHandler struct {
	comments CommentStore
	posts    PostStore
	logger   *zap.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(comments CommentStore, posts PostStore) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		posts:    posts,
		logger:   logging.WithComponent("comments-api"),
	}
}

// ListForPost handles GET /api/comments/post/:postId. Threads come
// back two levels deep: top-level comments in creation order, each
// carrying its direct replies in creation order.
func (h *CommentHandler) ListForPost(c *gin.Context) {
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	topLevel, err := h.comments.ListTopLevel(c.Request.Context(), postID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	parentIDs := make([]int64, len(topLevel))
	for i, comment := range topLevel {
		parentIDs[i] = comment.ID
	}

	replies, err := h.comments.ListReplies(c.Request.Context(), parentIDs)
	if err != nil {
		h.serverError(c, err)
		return
	}

	byParent := make(map[int64][]models.Comment)
	for _, reply := range replies {
		byParent[reply.ParentID.Int64] = append(byParent[reply.ParentID.Int64], *reply)
	}

	out := make([]models.Comment, len(topLevel))
	for i, comment := range topLevel {
		comment.Replies = byParent[comment.ID]
		out[i] = *comment
	}
	c.JSON(http.StatusOK, out)
}

// createCommentRequest is the POST /api/comments/post/:postId body
type createCommentRequest struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id"`
}

// Create handles POST /api/comments/post/:postId
func (h *CommentHandler) Create(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		models.RespondWithError(c, http.StatusUnauthorized, models.NewUnauthorizedError("authentication required"))
		return
	}

	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.RespondWithError(c, http.StatusBadRequest, models.NewValidationError("invalid request body"))
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		models.RespondWithError(c, http.StatusBadRequest,
			models.NewValidationError("comment content cannot be empty"))
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), postID)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if post == nil {
		models.RespondWithError(c, http.StatusNotFound, models.NewNotFoundError("post", postID))
		return
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}

	if req.ParentID != nil {
		parent, err := h.comments.GetByID(c.Request.Context(), *req.ParentID)
		if err != nil {
			h.serverError(c, err)
			return
		}
		if parent == nil {
			models.RespondWithError(c, http.StatusNotFound, models.NewNotFoundError("comment", *req.ParentID))
			return
		}
		if parent.PostID != postID {
			models.RespondWithError(c, http.StatusBadRequest,
				models.NewValidationError("parent comment belongs to a different post"))
			return
		}
		comment.ParentID = sql.NullInt64{Int64: *req.ParentID, Valid: true}
	}

	if err := h.comments.Create(c.Request.Context(), comment); err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// Delete handles DELETE /api/comments/:id. Direct replies go with the
// comment; replies further down the thread are left orphaned.
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		models.RespondWithError(c, http.StatusUnauthorized, models.NewUnauthorizedError("authentication required"))
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comment, err := h.comments.GetByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if comment == nil {
		models.RespondWithError(c, http.StatusNotFound, models.NewNotFoundError("comment", id))
		return
	}

	if comment.UserID != userID {
		models.RespondWithError(c, http.StatusForbidden,
			models.NewForbiddenError("only the author may delete this comment"))
		return
	}

	deleted, err := h.comments.DeleteWithDirectReplies(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "comment deleted", "deleted": deleted})
}

// serverError logs and surfaces an unclassified failure
func (h *CommentHandler) serverError(c *gin.Context, err error) {
	h.logger.Error("Unexpected failure", zap.Error(err))
	models.RespondWithError(c, http.StatusInternalServerError, models.NewInternalError(err))
}
