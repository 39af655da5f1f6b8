package validation

import (
	"github.com/rpupo63/portfolio-backend/errs"
)

// Rule set names. Request validators run on create paths only; update paths
// rely on the storage-level constraints.
const (
	RuleSetUserRegister  = "user.register"
	RuleSetUserLogin     = "user.login"
	RuleSetProjectCreate = "project.create"
	RuleSetBlogCreate    = "blog.create"
	RuleSetContactCreate = "contact.create"
	RuleSetSkillCreate   = "skill.create"
)

var (
	projectCategories = []string{"web", "mobile", "desktop", "api", "other"}
	blogCategories    = []string{"technology", "tutorial", "career", "personal", "review", "other"}
	contactTypes      = []string{"website", "web-app", "mobile-app", "consultation", "other"}
	skillCategories   = []string{"frontend", "backend", "database", "devops", "mobile", "design", "other"}
	experienceLevels  = []string{"beginner", "intermediate", "advanced", "expert"}
)

// Registry maps rule-set names to their ordered field rules. It is built once
// at startup and passed explicitly; there is no ambient rule table.
type Registry map[string][]FieldRule

func NewRegistry() Registry {
	return Registry{
		RuleSetUserRegister: {
			{Field: "name", Checks: []Check{
				TrimmedLength(2, 50, "Name must be between 2 and 50 characters"),
			}},
			{Field: "email", Checks: []Check{
				Email("Please provide a valid email"),
			}},
			{Field: "password", Checks: []Check{
				Password(6),
			}},
		},
		RuleSetUserLogin: {
			{Field: "email", Checks: []Check{
				Email("Please provide a valid email"),
			}},
			{Field: "password", Checks: []Check{
				NotEmpty("Password is required"),
			}},
		},
		RuleSetProjectCreate: {
			{Field: "title", Checks: []Check{
				TrimmedLength(3, 100, "Title must be between 3 and 100 characters"),
			}},
			{Field: "description", Checks: []Check{
				TrimmedLength(10, 1000, "Description must be between 10 and 1000 characters"),
			}},
			{Field: "shortDescription", Checks: []Check{
				TrimmedLength(10, 200, "Short description must be between 10 and 200 characters"),
			}},
			{Field: "technologies", Checks: []Check{
				ArrayMinLen(1, "At least one technology is required"),
			}},
			{Field: "category", Checks: []Check{
				OneOf(projectCategories, "Invalid category"),
			}},
		},
		RuleSetBlogCreate: {
			{Field: "title", Checks: []Check{
				TrimmedLength(5, 150, "Title must be between 5 and 150 characters"),
			}},
			{Field: "excerpt", Checks: []Check{
				TrimmedLength(10, 300, "Excerpt must be between 10 and 300 characters"),
			}},
			{Field: "content", Checks: []Check{
				TrimmedLength(100, 0, "Content must be at least 100 characters"),
			}},
			{Field: "category", Checks: []Check{
				OneOf(blogCategories, "Invalid category"),
			}},
		},
		RuleSetContactCreate: {
			{Field: "name", Checks: []Check{
				TrimmedLength(2, 50, "Name must be between 2 and 50 characters"),
			}},
			{Field: "email", Checks: []Check{
				Email("Please provide a valid email"),
			}},
			{Field: "subject", Checks: []Check{
				TrimmedLength(5, 100, "Subject must be between 5 and 100 characters"),
			}},
			{Field: "message", Checks: []Check{
				TrimmedLength(10, 1000, "Message must be between 10 and 1000 characters"),
			}},
			{Field: "phone", Optional: true, Checks: []Check{
				Phone("Please provide a valid phone number"),
			}},
			{Field: "projectType", Optional: true, Checks: []Check{
				OneOf(contactTypes, "Invalid project type"),
			}},
		},
		RuleSetSkillCreate: {
			{Field: "name", Checks: []Check{
				TrimmedLength(2, 50, "Name must be between 2 and 50 characters"),
			}},
			{Field: "category", Checks: []Check{
				OneOf(skillCategories, "Invalid category"),
			}},
			{Field: "proficiency", Checks: []Check{
				IntRange(1, 100, "Proficiency must be a number between 1 and 100"),
			}},
			{Field: "experience", Checks: []Check{
				OneOf(experienceLevels, "Invalid experience level"),
			}},
		},
	}
}

// Validate runs the named rule set over the body. Every field is evaluated
// even after earlier fields fail, so callers always receive the complete
// error list; within a single field the chain stops at the first failure.
// Normalized values (trimmed strings, lowercased emails) are written back to
// the body so downstream persistence sees them.
func (reg Registry) Validate(ruleSet string, body map[string]any) []errs.FieldError {
	rules, ok := reg[ruleSet]
	if !ok {
		return []errs.FieldError{{
			Field:   "",
			Message: "unknown rule set: " + ruleSet,
		}}
	}

	var fieldErrors []errs.FieldError
	for _, rule := range rules {
		value, present := body[rule.Field]
		if rule.Optional && isAbsent(value, present) {
			continue
		}
		for _, check := range rule.Checks {
			normalized, message := check(value)
			if message != "" {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field:   rule.Field,
					Message: message,
					Value:   value,
				})
				break
			}
			value = normalized
			body[rule.Field] = normalized
		}
	}
	return fieldErrors
}

func isAbsent(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}
