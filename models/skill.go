package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SkillCategories are the categories accepted for a skill.
var SkillCategories = []string{"frontend", "backend", "database", "devops", "mobile", "design", "other"}

// SkillCertification is one certification attached to a skill.
type SkillCertification struct {
	Name   string     `json:"name" validate:"required"`
	Issuer string     `json:"issuer"`
	Date   *time.Time `json:"date"`
	URL    string     `json:"url" validate:"omitempty,url"`
}

// Skill represents one entry of the skills matrix. Name uniqueness is enforced
// at the persistence layer; a duplicate insert surfaces as a conflict, not a
// generic failure.
type Skill struct {
	ID                uuid.UUID                               `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name              string                                  `json:"name" gorm:"type:varchar(50);not null;uniqueIndex" validate:"required,max=50"`
	Category          string                                  `json:"category" gorm:"type:varchar(20);not null;index" validate:"required,oneof=frontend backend database devops mobile design other"`
	Proficiency       int                                     `json:"proficiency" gorm:"not null" validate:"required,gte=1,lte=100"`
	Experience        string                                  `json:"experience" gorm:"type:varchar(20);not null" validate:"required,oneof=beginner intermediate advanced expert"`
	YearsOfExperience float64                                 `json:"yearsOfExperience" gorm:"not null;default:0" validate:"omitempty,gte=0"`
	Icon              string                                  `json:"icon" gorm:"type:varchar(100)"`
	Color             string                                  `json:"color" gorm:"type:varchar(20)"`
	Description       string                                  `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Certifications    datatypes.JSONSlice[SkillCertification] `json:"certifications" validate:"omitempty,dive"`
	Projects          datatypes.JSONSlice[uuid.UUID]          `json:"projects"`
	IsVisible         bool                                    `json:"isVisible" gorm:"not null;default:true"`
	Order             int                                     `json:"order" gorm:"column:sort_order;not null;default:0"`
	Tags              datatypes.JSONSlice[string]             `json:"tags"`
	CreatedAt         time.Time                               `json:"createdAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt         time.Time                               `json:"updatedAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (s *Skill) BeforeSave(tx *gorm.DB) error {
	return validateDocument("skill", s)
}
