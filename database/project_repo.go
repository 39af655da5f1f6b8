package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectFilter narrows FindAll results. Zero values mean "no filter".
type ProjectFilter struct {
	Category   string
	Status     string
	Featured   *bool
	PublicOnly bool
	Limit      int
	Offset     int
}

// FindAll returns projects matching the filter, ordered by priority then
// recency.
func (r *ProjectRepo) FindAll(filter ProjectFilter) ([]*models.Project, int64, error) {
	query := r.db.Model(&models.Project{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.PublicOnly {
		query = query.Where("is_public = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var projects []*models.Project
	err := query.Order("priority DESC, created_at DESC").Find(&projects).Error
	return projects, total, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id. Hard delete only;
// projects are never soft-deleted.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}

// IncrementViews bumps the view counter in a single statement so concurrent
// reads never lose an update.
func (r *ProjectRepo) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// IncrementLikes bumps the like counter atomically.
func (r *ProjectRepo) IncrementLikes(id uuid.UUID) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
}

// CountByCategory groups projects for the analytics dashboard.
func (r *ProjectRepo) CountByCategory() (map[string]int64, error) {
	type row struct {
		Category string
		Count    int64
	}
	var rows []row
	err := r.db.Model(&models.Project{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Count
	}
	return counts, nil
}
