package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
)

func validProject() Project {
	return Project{
		Title:            "Portfolio Site",
		Description:      "A personal portfolio site built from scratch.",
		ShortDescription: "A personal portfolio site.",
		Technologies:     []string{"go", "postgres"},
		Category:         ProjectCategoryWeb,
	}
}

func fieldErrorFields(err error) []string {
	var validationErr *errs.ValidationErr
	if !errors.As(err, &validationErr) {
		return nil
	}
	fields := make([]string, len(validationErr.Errors))
	for i, fe := range validationErr.Errors {
		fields[i] = fe.Field
	}
	return fields
}

func TestProjectSchemaValidation(t *testing.T) {
	t.Run("valid project passes", func(t *testing.T) {
		p := validProject()
		if err := p.BeforeSave(nil); err != nil {
			t.Fatalf("expected valid project, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		p := validProject()
		if err := p.BeforeSave(nil); err != nil {
			t.Fatal(err)
		}
		if p.Status != ProjectStatusInProgress {
			t.Errorf("expected default status, got %q", p.Status)
		}
		if p.TeamSize != 1 {
			t.Errorf("expected default team size 1, got %d", p.TeamSize)
		}
	})

	t.Run("technologies must be non-empty", func(t *testing.T) {
		p := validProject()
		p.Technologies = nil
		err := p.BeforeSave(nil)
		if err == nil {
			t.Fatal("expected validation error for empty technologies")
		}
		fields := fieldErrorFields(err)
		if len(fields) != 1 || fields[0] != "technologies" {
			t.Errorf("expected technologies error, got %v", fields)
		}
	})

	t.Run("schema cap is looser than request validator", func(t *testing.T) {
		// 5-char description fails the request validator's 10-char minimum
		// but passes here: the schema only caps at 1000.
		p := validProject()
		p.Description = "short"
		if err := p.BeforeSave(nil); err != nil {
			t.Errorf("schema layer must not enforce the request minimum: %v", err)
		}

		p.Description = strings.Repeat("x", 1001)
		if err := p.BeforeSave(nil); err == nil {
			t.Error("expected error for description over 1000 chars")
		}
	})

	t.Run("invalid category rejected", func(t *testing.T) {
		p := validProject()
		p.Category = "game"
		if err := p.BeforeSave(nil); err == nil {
			t.Error("expected error for invalid category")
		}
	})

	t.Run("nested image URLs validated", func(t *testing.T) {
		p := validProject()
		p.Images = []ProjectImage{{URL: "not a url", Caption: "x"}}
		err := p.BeforeSave(nil)
		if err == nil {
			t.Fatal("expected error for invalid image URL")
		}
		fields := fieldErrorFields(err)
		if len(fields) != 1 || fields[0] != "images[0].url" {
			t.Errorf("expected images[0].url error, got %v", fields)
		}
	})
}

func TestSkillSchemaValidation(t *testing.T) {
	valid := Skill{
		Name:        "Go",
		Category:    "backend",
		Proficiency: 90,
		Experience:  "advanced",
	}

	t.Run("valid skill passes", func(t *testing.T) {
		s := valid
		if err := s.BeforeSave(nil); err != nil {
			t.Fatalf("expected valid skill, got %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Skill)
	}{
		{"proficiency zero", func(s *Skill) { s.Proficiency = 0 }},
		{"proficiency over 100", func(s *Skill) { s.Proficiency = 101 }},
		{"unknown category", func(s *Skill) { s.Category = "cooking" }},
		{"unknown experience", func(s *Skill) { s.Experience = "guru" }},
		{"missing name", func(s *Skill) { s.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			if err := s.BeforeSave(nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestContactSchemaDefaultsAndSpam(t *testing.T) {
	valid := Contact{
		Name:    "Jo",
		Email:   "jo@example.com",
		Subject: "Project inquiry",
		Message: "I would like to discuss a project.",
	}

	t.Run("defaults applied", func(t *testing.T) {
		c := valid
		if err := c.BeforeSave(nil); err != nil {
			t.Fatal(err)
		}
		if c.Status != ContactStatusNew {
			t.Errorf("expected status new, got %q", c.Status)
		}
		if c.Priority != "medium" {
			t.Errorf("expected priority medium, got %q", c.Priority)
		}
		if c.Source != "website" {
			t.Errorf("expected source website, got %q", c.Source)
		}
	})

	t.Run("spam forces archived", func(t *testing.T) {
		c := valid
		c.Status = ContactStatusInProgress
		c.IsSpam = true
		if err := c.BeforeSave(nil); err != nil {
			t.Fatal(err)
		}
		if c.Status != ContactStatusArchived {
			t.Errorf("spam must be archived, got %q", c.Status)
		}
	})
}

func TestContactTransitions(t *testing.T) {
	t.Run("mark read only from new", func(t *testing.T) {
		c := Contact{Status: ContactStatusNew}
		if !c.MarkRead() {
			t.Error("expected transition new -> read")
		}
		if c.Status != ContactStatusRead {
			t.Errorf("expected read, got %q", c.Status)
		}
		if c.MarkRead() {
			t.Error("second MarkRead must be a no-op")
		}
	})

	t.Run("reply stamps repliedAt and status", func(t *testing.T) {
		c := Contact{Status: ContactStatusRead}
		sentAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		c.AddReply("Thanks for reaching out", nil, sentAt)

		if c.Status != ContactStatusReplied {
			t.Errorf("expected replied, got %q", c.Status)
		}
		if c.RepliedAt == nil || !c.RepliedAt.Equal(sentAt) {
			t.Errorf("repliedAt not stamped: %v", c.RepliedAt)
		}
		if len(c.Replies) != 1 || c.Replies[0].Message != "Thanks for reaching out" {
			t.Errorf("reply not recorded: %v", c.Replies)
		}
	})
}

func TestBlogSchemaValidation(t *testing.T) {
	valid := Blog{
		Title:    "A Valid Post",
		Excerpt:  "A short excerpt for the post.",
		Content:  strings.Repeat("word ", 50),
		Category: "technology",
	}

	t.Run("valid blog passes and derives fields", func(t *testing.T) {
		b := valid
		if err := b.BeforeSave(nil); err != nil {
			t.Fatalf("expected valid blog, got %v", err)
		}
		if b.Slug != "a-valid-post" {
			t.Errorf("slug not derived: %q", b.Slug)
		}
		if b.ReadTime != 1 {
			t.Errorf("read time not derived: %d", b.ReadTime)
		}
	})

	t.Run("invalid comment email rejected", func(t *testing.T) {
		b := valid
		b.Comments = []BlogComment{{Name: "x", Email: "nope", Comment: "hello"}}
		if err := b.BeforeSave(nil); err == nil {
			t.Error("expected error for invalid comment email")
		}
	})
}
