package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// BlogFilter narrows FindAll results. Zero values mean "no filter".
type BlogFilter struct {
	Status        string
	Category      string
	Tag           string
	PublishedOnly bool
	Limit         int
	Offset        int
}

// FindAll returns posts matching the filter, newest published first.
func (r *BlogRepo) FindAll(filter BlogFilter) ([]*models.Blog, int64, error) {
	query := r.db.Model(&models.Blog{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Tag != "" {
		query = query.Where("tags @> ?", `["`+filter.Tag+`"]`)
	}
	if filter.PublishedOnly {
		query = query.Where("status = ?", models.BlogStatusPublished)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var blogs []*models.Blog
	err := query.Order("published_at DESC NULLS LAST, created_at DESC").Find(&blogs).Error
	return blogs, total, err
}

// FindByID returns a blog post by its ID
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug returns a blog post by its unique slug
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// Search runs full-text search over title and content of published posts.
func (r *BlogRepo) Search(term string, limit int) ([]*models.Blog, error) {
	if limit <= 0 {
		limit = 20
	}
	var blogs []*models.Blog
	err := r.db.
		Where("status = ?", models.BlogStatusPublished).
		Where("to_tsvector('english', title || ' ' || content) @@ plainto_tsquery('english', ?)", term).
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// Add inserts a new blog post into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Update updates an existing blog post in the database
func (r *BlogRepo) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes a blog post from the database by id
func (r *BlogRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}

// IncrementViews bumps the view counter in a single statement so concurrent
// reads never lose an update.
func (r *BlogRepo) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.Blog{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// TotalViews sums views across all posts for the analytics dashboard.
func (r *BlogRepo) TotalViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.Blog{}).
		Select("COALESCE(SUM(views), 0)").
		Scan(&total).Error
	return total, err
}
