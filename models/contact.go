package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ContactStatusNew        = "new"
	ContactStatusRead       = "read"
	ContactStatusReplied    = "replied"
	ContactStatusInProgress = "in-progress"
	ContactStatusCompleted  = "completed"
	ContactStatusArchived   = "archived"
)

// ContactReply is one admin reply sent for a submission.
type ContactReply struct {
	Message string     `json:"message" validate:"required"`
	SentAt  time.Time  `json:"sentAt"`
	SentBy  *uuid.UUID `json:"sentBy"`
}

// Contact is an inbound contact-form submission. Status is mutated by admin
// actions, never by the submitter; IPAddress and UserAgent are captured at
// submission time and not updated afterwards.
type Contact struct {
	ID          uuid.UUID                         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string                            `json:"name" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	Email       string                            `json:"email" gorm:"type:varchar(254);not null;index" validate:"required,email"`
	Subject     string                            `json:"subject" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Message     string                            `json:"message" gorm:"type:varchar(1000);not null" validate:"required,max=1000"`
	Phone       string                            `json:"phone" gorm:"type:varchar(20)" validate:"omitempty,max=20"`
	Company     string                            `json:"company" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	ProjectType string                            `json:"projectType" gorm:"type:varchar(30)" validate:"omitempty,oneof=website web-app mobile-app consultation other"`
	Budget      string                            `json:"budget" gorm:"type:varchar(30)" validate:"omitempty,oneof=under-1k 1k-5k 5k-10k 10k-25k over-25k not-sure"`
	Timeline    string                            `json:"timeline" gorm:"type:varchar(30)" validate:"omitempty,oneof=asap 1-month 2-3-months 3-6-months flexible"`
	Status      string                            `json:"status" gorm:"type:varchar(20);not null;default:new;index" validate:"omitempty,oneof=new read replied in-progress completed archived"`
	Priority    string                            `json:"priority" gorm:"type:varchar(10);not null;default:medium" validate:"omitempty,oneof=low medium high urgent"`
	Notes       string                            `json:"notes" gorm:"type:text"`
	IPAddress   string                            `json:"ipAddress" gorm:"type:varchar(45)"`
	UserAgent   string                            `json:"userAgent" gorm:"type:varchar(500)"`
	Source      string                            `json:"source" gorm:"type:varchar(20);not null;default:website" validate:"omitempty,oneof=website linkedin github referral other"`
	IsSpam      bool                              `json:"isSpam" gorm:"not null;default:false"`
	RepliedAt   *time.Time                        `json:"repliedAt"`
	Replies     datatypes.JSONSlice[ContactReply] `json:"replies" validate:"omitempty,dive"`
	CreatedAt   time.Time                         `json:"createdAt" gorm:"not null;default:CURRENT_TIMESTAMP;index"`
	UpdatedAt   time.Time                         `json:"updatedAt" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// MarkRead transitions a fresh submission to "read" on first admin view.
// Returns true if the status actually changed.
func (c *Contact) MarkRead() bool {
	if c.Status != ContactStatusNew {
		return false
	}
	c.Status = ContactStatusRead
	return true
}

// AddReply appends a reply, stamps RepliedAt, and moves the submission to
// "replied".
func (c *Contact) AddReply(message string, sentBy *uuid.UUID, now time.Time) {
	c.Replies = append(c.Replies, ContactReply{Message: message, SentAt: now, SentBy: sentBy})
	c.RepliedAt = &now
	c.Status = ContactStatusReplied
}

func (c *Contact) BeforeSave(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = ContactStatusNew
	}
	if c.Priority == "" {
		c.Priority = "medium"
	}
	if c.Source == "" {
		c.Source = "website"
	}
	// Spam goes straight to the archive.
	if c.IsSpam {
		c.Status = ContactStatusArchived
	}
	return validateDocument("contact", c)
}
