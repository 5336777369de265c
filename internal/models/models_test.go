package models

import (
	"database/sql"
	"testing"
	"time"
)

func TestPostValidate(t *testing.T) {
	tests := []struct {
		name    string
		post    Post
		wantErr bool
	}{
		{
			name: "valid published post",
			post: Post{Title: "Hello", Slug: "hello", Content: "words", Status: StatusPublished},
		},
		{
			name: "valid draft",
			post: Post{Title: "Hello", Slug: "hello", Content: "words", Status: StatusDraft},
		},
		{
			name:    "missing title",
			post:    Post{Slug: "hello", Content: "words", Status: StatusPublished},
			wantErr: true,
		},
		{
			name:    "missing content",
			post:    Post{Title: "Hello", Slug: "hello", Status: StatusPublished},
			wantErr: true,
		},
		{
			name:    "unknown status",
			post:    Post{Title: "Hello", Slug: "hello", Content: "words", Status: "archived"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.post.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{
			name: "valid user",
			user: User{Name: "Ada", Email: "ada@example.com"},
		},
		{
			name:    "missing name",
			user:    User{Email: "ada@example.com"},
			wantErr: true,
		},
		{
			name:    "bad email",
			user:    User{Name: "Ada", Email: "not-an-email"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPostBeforeSave(t *testing.T) {
	post := &Post{Title: "Hello", Slug: "hello", Content: "words"}
	if err := post.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave() error = %v", err)
	}
	if post.CreatedAt.IsZero() {
		t.Error("BeforeSave() should stamp CreatedAt on a new post")
	}
	if post.UpdatedAt.IsZero() {
		t.Error("BeforeSave() should stamp UpdatedAt")
	}

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	post.CreatedAt = created
	if err := post.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave() error = %v", err)
	}
	if !post.CreatedAt.Equal(created) {
		t.Errorf("BeforeSave() overwrote CreatedAt: got %v, want %v", post.CreatedAt, created)
	}
	if !post.UpdatedAt.After(created) {
		t.Errorf("BeforeSave() should advance UpdatedAt past %v, got %v", created, post.UpdatedAt)
	}
}

func TestPostTagNames(t *testing.T) {
	post := &Post{Tags: []PostTag{{Tag: "go"}, {Tag: "blogging"}}}
	names := post.TagNames()
	if len(names) != 2 || names[0] != "go" || names[1] != "blogging" {
		t.Errorf("TagNames() = %v, want [go blogging]", names)
	}

	empty := &Post{}
	if got := empty.TagNames(); len(got) != 0 {
		t.Errorf("TagNames() on untagged post = %v, want empty", got)
	}
}

func TestCommentIsTopLevel(t *testing.T) {
	top := &Comment{Content: "first"}
	if !top.IsTopLevel() {
		t.Error("comment without a parent should be top level")
	}

	reply := &Comment{Content: "reply", ParentID: sql.NullInt64{Int64: 1, Valid: true}}
	if reply.IsTopLevel() {
		t.Error("comment with a parent should not be top level")
	}
}
