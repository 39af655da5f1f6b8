package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// ContactFilter narrows FindAll results. Zero values mean "no filter".
type ContactFilter struct {
	Status   string
	Priority string
	Limit    int
	Offset   int
}

// FindAll returns submissions matching the filter, newest first.
func (r *ContactRepo) FindAll(filter ContactFilter) ([]*models.Contact, int64, error) {
	query := r.db.Model(&models.Contact{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	var contacts []*models.Contact
	err := query.Order("created_at DESC").Find(&contacts).Error
	return contacts, total, err
}

// FindByID returns a contact submission by its ID
func (r *ContactRepo) FindByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Add inserts a new contact submission into the database
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// Update updates an existing contact submission in the database
func (r *ContactRepo) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete removes a contact submission from the database by id
func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}

// CountByStatus groups submissions for the analytics dashboard.
func (r *ContactRepo) CountByStatus() (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Contact{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
