package database

import (
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type Database struct {
	userRepo    *UserRepo
	projectRepo *ProjectRepo
	blogRepo    *BlogRepo
	contactRepo *ContactRepo
	skillRepo   *SkillRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		projectRepo: NewProjectRepo(db),
		blogRepo:    NewBlogRepo(db),
		contactRepo: NewContactRepo(db),
		skillRepo:   NewSkillRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

// Migrate creates or updates the schema for every model and adds the search
// indexes AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Blog{},
		&models.Contact{},
		&models.Skill{},
	); err != nil {
		return err
	}

	// Full-text search over the same fields the document store indexed.
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_blogs_search ON blogs
		 USING GIN (to_tsvector('english', title || ' ' || content))`,
		`CREATE INDEX IF NOT EXISTS idx_projects_search ON projects
		 USING GIN (to_tsvector('english', title || ' ' || description))`,
	}
	for _, stmt := range searchIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
