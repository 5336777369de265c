// Package seed loads sample content for local development.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/inkwellhq/inkwell/internal/content"
	"github.com/inkwellhq/inkwell/internal/db"
	"github.com/inkwellhq/inkwell/internal/models"
)

var sampleUsers = []models.User{
	{Name: "Ada Quill", Email: "ada@example.com", Bio: "Writes about systems and coffee.", Role: "user"},
	{Name: "Ben Harrow", Email: "ben@example.com", Bio: "Occasional essayist.", Role: "user"},
	{Name: "Cleo Finch", Email: "cleo@example.com", Bio: "Photography and long walks.", Role: "user"},
}

var samplePosts = []struct {
	title    string
	body     string
	category string
	tags     []string
	status   string
	ageHours int
	views    int64
}{
	{
		title:    "Why Slow Software Wins",
		body:     "<p>There is a case to be made for software that takes its time. Not slow to respond, but slow to change.</p>",
		category: "engineering",
		tags:     []string{"software", "opinion"},
		status:   models.StatusPublished,
		ageHours: 6,
		views:    42,
	},
	{
		title:    "A Field Guide to Morning Light",
		body:     "<p>The hour after sunrise rewards patience more than equipment.</p>",
		category: "photography",
		tags:     []string{"photography"},
		status:   models.StatusPublished,
		ageHours: 30,
		views:    120,
	},
	{
		title:    "Notes Toward a Better Reading List",
		body:     "<p>Most reading lists fail because they are aspirational rather than honest.</p>",
		category: "books",
		tags:     []string{"books", "habits"},
		status:   models.StatusPublished,
		ageHours: 72,
		views:    310,
	},
	{
		title:    "Draft: On Unfinished Things",
		body:     "<p>Unpublished thoughts.</p>",
		category: "essays",
		tags:     nil,
		status:   models.StatusDraft,
		ageHours: 2,
		views:    0,
	},
}

// Run populates the database with sample users, posts and comment
// threads. It is idempotent enough for development: existing rows with
// the same unique keys make it bail out early.
func Run(ctx context.Context, database *db.DB) error {
	repo := db.NewRepository(database.DB)
	users := db.NewUserRepository(repo)
	posts := db.NewPostRepository(repo)
	comments := db.NewCommentRepository(repo)

	existing, err := users.GetByEmail(ctx, sampleUsers[0].Email)
	if err != nil {
		return fmt.Errorf("checking for existing seed data: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("seed data already present (found %s)", existing.Email)
	}

	created := make([]*models.User, 0, len(sampleUsers))
	for i := range sampleUsers {
		user := sampleUsers[i]
		if err := users.Create(ctx, &user); err != nil {
			return fmt.Errorf("seeding user %s: %w", user.Email, err)
		}
		created = append(created, &user)
	}

	now := time.Now().UTC()
	var firstPost *models.Post
	for i, sp := range samplePosts {
		post := &models.Post{
			Title:     sp.title,
			Slug:      content.Slugify(sp.title),
			Content:   sp.body,
			Category:  sp.category,
			Status:    sp.status,
			Views:     sp.views,
			AuthorID:  created[i%len(created)].ID,
			CreatedAt: now.Add(-time.Duration(sp.ageHours) * time.Hour),
		}
		for _, tag := range sp.tags {
			post.Tags = append(post.Tags, models.PostTag{Tag: tag})
		}
		if err := posts.Create(ctx, post); err != nil {
			return fmt.Errorf("seeding post %q: %w", sp.title, err)
		}
		if firstPost == nil {
			firstPost = post
		}
	}

	// A small thread on the first post: two top-level comments, one
	// with a direct reply.
	top := &models.Comment{PostID: firstPost.ID, UserID: created[1].ID, Content: "This matches my experience maintaining a decade-old codebase."}
	if err := comments.Create(ctx, top); err != nil {
		return fmt.Errorf("seeding comment: %w", err)
	}
	reply := &models.Comment{
		PostID:   firstPost.ID,
		UserID:   created[0].ID,
		Content:  "Ten years is longer than most of the tools we built it with.",
		ParentID: sql.NullInt64{Int64: top.ID, Valid: true},
	}
	if err := comments.Create(ctx, reply); err != nil {
		return fmt.Errorf("seeding reply: %w", err)
	}
	second := &models.Comment{PostID: firstPost.ID, UserID: created[2].ID, Content: "Slow to change, quick to trust."}
	if err := comments.Create(ctx, second); err != nil {
		return fmt.Errorf("seeding comment: %w", err)
	}

	// Some likes so trending has something to rank
	for _, u := range created[1:] {
		if _, _, err := posts.ToggleLike(ctx, firstPost.ID, u.ID); err != nil {
			return fmt.Errorf("seeding like: %w", err)
		}
	}

	return nil
}
