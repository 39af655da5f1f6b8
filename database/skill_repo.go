package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// SkillFilter narrows FindAll results. Zero values mean "no filter".
type SkillFilter struct {
	Category    string
	VisibleOnly bool
}

// FindAll returns skills matching the filter, ordered by the admin-set sort
// key then name.
func (r *SkillRepo) FindAll(filter SkillFilter) ([]*models.Skill, error) {
	query := r.db.Model(&models.Skill{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.VisibleOnly {
		query = query.Where("is_visible = ?", true)
	}

	var skills []*models.Skill
	err := query.Order("sort_order ASC, name ASC").Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID
func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill. A duplicate name surfaces as gorm.ErrDuplicatedKey
// for the caller to map to a conflict.
func (r *SkillRepo) Add(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// Update updates an existing skill in the database
func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete removes a skill from the database by id
func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}

// Count returns the number of skills for the analytics dashboard.
func (r *SkillRepo) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Skill{}).Count(&total).Error
	return total, err
}
