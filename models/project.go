package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project categories and statuses accepted at the storage layer.
const (
	ProjectCategoryWeb     = "web"
	ProjectCategoryMobile  = "mobile"
	ProjectCategoryDesktop = "desktop"
	ProjectCategoryAPI     = "api"
	ProjectCategoryOther   = "other"

	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusPlanned    = "planned"
)

// ProjectImage is one entry of a project's ordered image list.
type ProjectImage struct {
	URL     string `json:"url" validate:"required,url"`
	Caption string `json:"caption"`
	IsMain  bool   `json:"isMain"`
}

// ProjectLinks holds the optional outbound links of a project.
type ProjectLinks struct {
	Demo    string `json:"demo" validate:"omitempty,url"`
	Github  string `json:"github" validate:"omitempty,url"`
	Website string `json:"website" validate:"omitempty,url"`
}

// Project represents a portfolio project. Storage constraints here are the
// authoritative gate: they also apply to programmatic writes that never pass
// through the request validators.
type Project struct {
	ID               uuid.UUID                         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title            string                            `json:"title" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Description      string                            `json:"description" gorm:"type:varchar(1000);not null" validate:"required,max=1000"`
	ShortDescription string                            `json:"shortDescription" gorm:"type:varchar(200);not null" validate:"required,max=200"`
	Technologies     datatypes.JSONSlice[string]       `json:"technologies" gorm:"not null" validate:"required,min=1,dive,required"`
	Images           datatypes.JSONSlice[ProjectImage] `json:"images" validate:"omitempty,dive"`
	Links            ProjectLinks                      `json:"links" gorm:"serializer:json" validate:"omitempty"`
	Category         string                            `json:"category" gorm:"type:varchar(20);not null;index:idx_projects_cat_feat_prio,priority:1" validate:"required,oneof=web mobile desktop api other"`
	Status           string                            `json:"status" gorm:"type:varchar(20);not null;default:in-progress" validate:"omitempty,oneof=completed in-progress planned"`
	Featured         bool                              `json:"featured" gorm:"not null;default:false;index:idx_projects_cat_feat_prio,priority:2"`
	Priority         int                               `json:"priority" gorm:"not null;default:0;index:idx_projects_cat_feat_prio,priority:3"`
	Tags             datatypes.JSONSlice[string]       `json:"tags"`
	Challenges       string                            `json:"challenges" gorm:"type:text"`
	Solutions        string                            `json:"solutions" gorm:"type:text"`
	Duration         string                            `json:"duration" gorm:"type:varchar(50)"`
	TeamSize         int                               `json:"teamSize" gorm:"not null;default:1" validate:"omitempty,gte=1"`
	IsPublic         bool                              `json:"isPublic" gorm:"not null;default:true"`
	Views            int64                             `json:"views" gorm:"not null;default:0"`
	Likes            int64                             `json:"likes" gorm:"not null;default:0"`
	CreatedAt        time.Time                         `json:"createdAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time                         `json:"updatedAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// BeforeSave enforces the schema-level constraints on every write, including
// updates that bypass the request validators.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = ProjectStatusInProgress
	}
	if p.TeamSize == 0 {
		p.TeamSize = 1
	}
	return validateDocument("project", p)
}
