package storage

import (
	"folio-hand/models"

	"gorm.io/gorm/clause"
)

// profileColumns are the fields overwritten when the singleton row already
// exists.
var profileColumns = []string{
	"full_name", "position", "email", "phone", "location", "bio", "age",
	"linkedin_url", "github_url", "twitter_url", "instagram_url",
	"youtube_url", "photo_url", "updated_at",
}

// Profile returns the singleton row, or gorm.ErrRecordNotFound before the
// first upsert.
func (s *Store) Profile() (models.Profile, error) {
	var p models.Profile
	err := s.db.First(&p).Error
	return p, err
}

// UpsertProfile writes the singleton row in a single atomic statement. The
// fixed slot key carries a unique index, so two concurrent callers can never
// produce a second row; the conflict clause turns the loser into an update.
func (s *Store) UpsertProfile(in models.ProfileInput) (models.Profile, error) {
	p := in.Model()
	p.Slot = 1
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot"}},
		DoUpdates: clause.AssignmentColumns(profileColumns),
	}).Create(&p).Error
	if err != nil {
		return models.Profile{}, err
	}
	// Re-read so the caller sees the surviving row's id and timestamps.
	var out models.Profile
	err = s.db.Where("slot = ?", 1).First(&out).Error
	return out, err
}
