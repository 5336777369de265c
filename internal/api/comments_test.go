package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/inkwellhq/inkwell/internal/models"
)

func testComment(id, postID, userID int64, content string, parentID int64) *models.Comment {
	c := &models.Comment{
		ID:        id,
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if parentID != 0 {
		c.ParentID = sql.NullInt64{Int64: parentID, Valid: true}
	}
	return c
}

func TestListCommentsThreaded(t *testing.T) {
	comments := new(MockCommentStore)
	posts := new(MockPostStore)
	handler := NewCommentHandler(comments, posts)

	topLevel := []*models.Comment{
		testComment(1, 7, 1, "first", 0),
		testComment(2, 7, 2, "second", 0),
	}
	replies := []*models.Comment{
		testComment(3, 7, 2, "reply to first", 1),
		testComment(4, 7, 1, "another reply to first", 1),
	}
	comments.On("ListTopLevel", mock.Anything, int64(7)).Return(topLevel, nil)
	comments.On("ListReplies", mock.Anything, []int64{1, 2}).Return(replies, nil)

	router := newTestEngine()
	router.GET("/api/comments/post/:postId", handler.ListForPost)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/comments/post/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Comment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Len(t, got[0].Replies, 2)
	assert.Equal(t, "reply to first", got[0].Replies[0].Content)
	assert.Empty(t, got[1].Replies)
	comments.AssertExpectations(t)
}

func TestListCommentsEmptyPost(t *testing.T) {
	comments := new(MockCommentStore)
	posts := new(MockPostStore)
	handler := NewCommentHandler(comments, posts)

	comments.On("ListTopLevel", mock.Anything, int64(7)).Return([]*models.Comment{}, nil)
	comments.On("ListReplies", mock.Anything, []int64{}).Return([]*models.Comment{}, nil)

	router := newTestEngine()
	router.GET("/api/comments/post/:postId", handler.ListForPost)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/comments/post/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestCreateComment(t *testing.T) {
	comments := new(MockCommentStore)
	posts := new(MockPostStore)
	handler := NewCommentHandler(comments, posts)

	post := publishedPost(7, 1, "Hello World", "hello-world", 0, time.Hour)
	posts.On("GetByID", mock.Anything, int64(7)).Return(post, nil)
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.PostID == 7 && c.UserID == 3 && !c.ParentID.Valid
	})).Return(nil)

	router := newTestEngine()
	router.POST("/api/comments/post/:postId", asUser(3), handler.Create)

	body, _ := json.Marshal(map[string]interface{}{"content": "nice post"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/comments/post/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	comments.AssertExpectations(t)
}

func TestCreateCommentEmptyContent(t *testing.T) {
	comments := new(MockCommentStore)
	posts := new(MockPostStore)
	handler := NewCommentHandler(comments, posts)

	router := newTestEngine()
	router.POST("/api/comments/post/:postId", asUser(3), handler.Create)

	body, _ := json.Marshal(map[string]interface{}{"content": "   \n\t  "})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/comments/post/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateCommentMissingPost(t *testing.T) {
	comments := new(MockCommentStore)
	posts := new(MockPostStore)
	handler := NewCommentHandler(comments, posts)

	posts.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	router := newTestEngine()
	router.POST("/api/comments/post/:postId", asUser(3), handler.Create)

	body, _ := json.Marshal(map[string]interface{}{"content": "hello?"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/comments/post/99", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReply(t *testing.T) {
	comments := new(MockCommentStore)
	posts := new(MockPostStore)
	handler := NewCommentHandler(comments, posts)

	post := publishedPost(7, 1, "Hello World", "hello-world", 0, time.Hour)
	posts.On("GetByID", mock.Anything, int64(7)).Return(post, nil)
	comments.On("GetByID", mock.Anything, int64(1)).Return(testComment(1, 7, 1, "first", 0), nil)
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.ParentID.Valid && c.ParentID.Int64 == 1
	})).Return(nil)

	router := newTestEngine()
	router.POST("/api/comments/post/:postId", asUser(3), handler.Create)

	body, _ := json.Marshal(map[string]interface{}{"content": "agreed", "parent_id": 1})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/comments/post/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	comments.AssertExpectations(t)
}

func TestCreateReplyParentOnDifferentPost(t *testing.T) {
	comments := new(MockCommentStore)
	posts := new(MockPostStore)
	handler := NewCommentHandler(comments, posts)

	post := publishedPost(7, 1, "Hello World", "hello-world", 0, time.Hour)
	posts.On("GetByID", mock.Anything, int64(7)).Return(post, nil)
	comments.On("GetByID", mock.Anything, int64(5)).Return(testComment(5, 8, 1, "elsewhere", 0), nil)

	router := newTestEngine()
	router.POST("/api/comments/post/:postId", asUser(3), handler.Create)

	body, _ := json.Marshal(map[string]interface{}{"content": "agreed", "parent_id": 5})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/comments/post/7", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteCommentNonOwner(t *testing.T) {
	comments := new(MockCommentStore)
	posts := new(MockPostStore)
	handler := NewCommentHandler(comments, posts)

	comments.On("GetByID", mock.Anything, int64(1)).Return(testComment(1, 7, 1, "first", 0), nil)

	router := newTestEngine()
	router.DELETE("/api/comments/:id", asUser(2), handler.Delete)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/comments/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	comments.AssertNotCalled(t, "DeleteWithDirectReplies", mock.Anything, mock.Anything)
}

func TestDeleteCommentWithReplies(t *testing.T) {
	comments := new(MockCommentStore)
	posts := new(MockPostStore)
	handler := NewCommentHandler(comments, posts)

	comments.On("GetByID", mock.Anything, int64(1)).Return(testComment(1, 7, 1, "first", 0), nil)
	comments.On("DeleteWithDirectReplies", mock.Anything, int64(1)).Return(int64(3), nil)

	router := newTestEngine()
	router.DELETE("/api/comments/:id", asUser(1), handler.Delete)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/comments/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Deleted int64 `json:"deleted"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.Deleted)
	comments.AssertExpectations(t)
}
