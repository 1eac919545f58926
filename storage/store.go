package storage

import (
	"folio-hand/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store translates typed entity operations into database queries. All
// handlers and services go through it; nothing else touches *gorm.DB.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

func New(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// AutoMigrate creates or updates every table.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.Certification{},
		&models.Activity{},
		&models.Article{},
		&models.ContactMessage{},
		&models.Gallery{},
		&models.Service{},
		&models.Project{},
	)
}

// ImageRefs collects every image URL currently referenced by stored content.
// The upload sweep uses it to decide which files are orphaned.
func (s *Store) ImageRefs() ([]string, error) {
	var refs []string

	var photo []string
	if err := s.db.Model(&models.Profile{}).Pluck("photo_url", &photo).Error; err != nil {
		return nil, err
	}
	refs = append(refs, photo...)

	var galleryImages []string
	if err := s.db.Model(&models.Gallery{}).Pluck("image_url", &galleryImages).Error; err != nil {
		return nil, err
	}
	refs = append(refs, galleryImages...)

	var articleImages []string
	if err := s.db.Model(&models.Article{}).Pluck("image_url", &articleImages).Error; err != nil {
		return nil, err
	}
	refs = append(refs, articleImages...)

	var projectImages []string
	if err := s.db.Model(&models.Project{}).Pluck("image_url", &projectImages).Error; err != nil {
		return nil, err
	}
	refs = append(refs, projectImages...)

	out := refs[:0]
	for _, r := range refs {
		if r != "" {
			out = append(out, r)
		}
	}
	return out, nil
}
