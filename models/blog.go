package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

// BlogCategories are the categories accepted for a post.
var BlogCategories = []string{"technology", "tutorial", "career", "personal", "review", "other"}

// wordsPerMinute is the reading speed assumed when deriving ReadTime.
const wordsPerMinute = 200

// BlogImage is the featured image of a post.
type BlogImage struct {
	URL     string `json:"url" validate:"omitempty,url"`
	Caption string `json:"caption"`
	Alt     string `json:"alt"`
}

// BlogLike records one like; User is nil for anonymous likes.
type BlogLike struct {
	User *uuid.UUID `json:"user"`
	Date time.Time  `json:"date"`
}

// BlogComment is a reader comment held until approved.
type BlogComment struct {
	Name       string    `json:"name" validate:"required,max=50"`
	Email      string    `json:"email" validate:"required,email"`
	Comment    string    `json:"comment" validate:"required,max=1000"`
	IsApproved bool      `json:"isApproved"`
	Date       time.Time `json:"date"`
}

// BlogSEO carries the post's search metadata.
type BlogSEO struct {
	MetaTitle       string   `json:"metaTitle" validate:"omitempty,max=60"`
	MetaDescription string   `json:"metaDescription" validate:"omitempty,max=160"`
	Keywords        []string `json:"keywords"`
}

// Blog represents a blog post. Slug is unique and immutable once set;
// PublishedAt records the first transition into "published" and is never
// overwritten afterwards.
type Blog struct {
	ID            uuid.UUID                        `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title         string                           `json:"title" gorm:"type:varchar(150);not null" validate:"required,max=150"`
	Slug          string                           `json:"slug" gorm:"type:varchar(200);not null;uniqueIndex" validate:"required,lowercase"`
	Excerpt       string                           `json:"excerpt" gorm:"type:varchar(300);not null" validate:"required,max=300"`
	Content       string                           `json:"content" gorm:"type:text;not null" validate:"required"`
	AuthorID      *uuid.UUID                       `json:"author" gorm:"type:uuid;index"`
	FeaturedImage BlogImage                        `json:"featuredImage" gorm:"serializer:json" validate:"omitempty"`
	Category      string                           `json:"category" gorm:"type:varchar(20);not null" validate:"required,oneof=technology tutorial career personal review other"`
	Tags          datatypes.JSONSlice[string]      `json:"tags"`
	Status        string                           `json:"status" gorm:"type:varchar(20);not null;default:draft;index:idx_blogs_status_published,priority:1" validate:"omitempty,oneof=draft published archived"`
	PublishedAt   *time.Time                       `json:"publishedAt" gorm:"index:idx_blogs_status_published,priority:2,sort:desc"`
	Views         int64                            `json:"views" gorm:"not null;default:0"`
	Likes         datatypes.JSONSlice[BlogLike]    `json:"likes"`
	Comments      datatypes.JSONSlice[BlogComment] `json:"comments" validate:"omitempty,dive"`
	ReadTime      int                              `json:"readTime" gorm:"not null;default:0" validate:"omitempty,gte=0"`
	SEO           BlogSEO                          `json:"seo" gorm:"serializer:json" validate:"omitempty"`
	Featured      bool                             `json:"featured" gorm:"not null;default:false"`
	CreatedAt     time.Time                        `json:"createdAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time                        `json:"updatedAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

var (
	slugStripRE    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugCollapseRE = regexp.MustCompile(`[\s-]+`)
)

// Slugify derives a URL slug from a title: lowercase, non-alphanumerics
// stripped, whitespace runs collapsed to single hyphens, no leading or
// trailing hyphens. Deterministic and idempotent.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripRE.ReplaceAllString(slug, "")
	slug = slugCollapseRE.ReplaceAllString(strings.TrimSpace(slug), "-")
	return strings.Trim(slug, "-")
}

// ReadTimeMinutes estimates reading time in minutes at 200 words per minute,
// rounding up. Any non-empty content reads as at least one minute.
func ReadTimeMinutes(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// ApplyDerivedFields runs the pre-save derivations: slug from title when the
// slug is still empty, read time from content, tags lowercased, and the
// one-time publish stamp. Safe to call on every save.
func (b *Blog) ApplyDerivedFields(now time.Time) {
	if b.Slug == "" {
		b.Slug = Slugify(b.Title)
	}
	b.ReadTime = ReadTimeMinutes(b.Content)
	for i, tag := range b.Tags {
		b.Tags[i] = strings.ToLower(tag)
	}
	if b.Status == "" {
		b.Status = BlogStatusDraft
	}
	// First publish time only: never re-stamped when the post is archived
	// and published again.
	if b.Status == BlogStatusPublished && b.PublishedAt == nil {
		t := now
		b.PublishedAt = &t
	}
}

func (b *Blog) BeforeSave(tx *gorm.DB) error {
	b.ApplyDerivedFields(time.Now().UTC())
	return validateDocument("blog", b)
}
