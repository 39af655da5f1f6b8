package models

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation stripped", "Go, Postgres & Chi!", "go-postgres-chi"},
		{"whitespace runs collapsed", "a   lot\tof   space", "a-lot-of-space"},
		{"leading trailing space", "  trimmed  ", "trimmed"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"uppercase lowered", "SHOUTING Title", "shouting-title"},
		{"unicode stripped", "café au lait", "caf-au-lait"},
		{"empty", "", ""},
		{"only punctuation", "!!!", ""},
	}

	slugCharset := regexp.MustCompile(`^[a-z0-9-]*$`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.title)
			if got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.expected)
			}
			// Idempotent: slugifying a slug is a no-op.
			if again := Slugify(got); again != got {
				t.Errorf("Slugify not idempotent: %q -> %q", got, again)
			}
			if !slugCharset.MatchString(got) {
				t.Errorf("slug %q contains invalid characters", got)
			}
			if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
				t.Errorf("slug %q has leading or trailing hyphen", got)
			}
		})
	}
}

func TestReadTimeMinutes(t *testing.T) {
	tests := []struct {
		name     string
		words    int
		expected int
	}{
		{"empty content", 0, 0},
		{"one word", 1, 1},
		{"under one minute", 199, 1},
		{"exactly one minute", 200, 1},
		{"just over one minute", 201, 2},
		{"five minutes", 1000, 5},
		{"five minutes and change", 1001, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			got := ReadTimeMinutes(content)
			if got != tt.expected {
				t.Errorf("ReadTimeMinutes(%d words) = %d, want %d", tt.words, got, tt.expected)
			}
		})
	}

	t.Run("non-empty content reads as at least one minute", func(t *testing.T) {
		if got := ReadTimeMinutes("hi"); got < 1 {
			t.Errorf("expected at least 1 minute, got %d", got)
		}
	})
}

func TestApplyDerivedFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("slug derived when empty", func(t *testing.T) {
		blog := Blog{Title: "My First Post"}
		blog.ApplyDerivedFields(now)
		if blog.Slug != "my-first-post" {
			t.Errorf("expected derived slug, got %q", blog.Slug)
		}
	})

	t.Run("existing slug kept", func(t *testing.T) {
		blog := Blog{Title: "My First Post", Slug: "custom-slug"}
		blog.ApplyDerivedFields(now)
		if blog.Slug != "custom-slug" {
			t.Errorf("slug must not be overwritten, got %q", blog.Slug)
		}
	})

	t.Run("read time recomputed from content", func(t *testing.T) {
		blog := Blog{Title: "t", Content: strings.Repeat("word ", 450)}
		blog.ApplyDerivedFields(now)
		if blog.ReadTime != 3 {
			t.Errorf("expected read time 3, got %d", blog.ReadTime)
		}
	})

	t.Run("tags lowercased", func(t *testing.T) {
		blog := Blog{Title: "t", Tags: []string{"Go", "WebDev"}}
		blog.ApplyDerivedFields(now)
		if blog.Tags[0] != "go" || blog.Tags[1] != "webdev" {
			t.Errorf("tags not lowercased: %v", blog.Tags)
		}
	})

	t.Run("status defaults to draft", func(t *testing.T) {
		blog := Blog{Title: "t"}
		blog.ApplyDerivedFields(now)
		if blog.Status != BlogStatusDraft {
			t.Errorf("expected draft status, got %q", blog.Status)
		}
	})
}

func TestPublishOnce(t *testing.T) {
	firstPublish := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	later := firstPublish.Add(48 * time.Hour)

	blog := Blog{Title: "Post", Status: BlogStatusDraft}
	blog.ApplyDerivedFields(firstPublish)
	if blog.PublishedAt != nil {
		t.Fatal("draft must not be stamped")
	}

	// draft -> published stamps once
	blog.Status = BlogStatusPublished
	blog.ApplyDerivedFields(firstPublish)
	if blog.PublishedAt == nil || !blog.PublishedAt.Equal(firstPublish) {
		t.Fatalf("expected publishedAt %v, got %v", firstPublish, blog.PublishedAt)
	}

	// published -> archived -> published keeps the original stamp
	blog.Status = BlogStatusArchived
	blog.ApplyDerivedFields(later)
	blog.Status = BlogStatusPublished
	blog.ApplyDerivedFields(later)
	if !blog.PublishedAt.Equal(firstPublish) {
		t.Errorf("publishedAt re-stamped to %v, want original %v", blog.PublishedAt, firstPublish)
	}
}
