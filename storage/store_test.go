package storage

import (
	"errors"
	"fmt"
	"testing"

	"folio-hand/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	store := New(db, zap.NewNop())
	if err := store.AutoMigrate(); err != nil {
		t.Fatalf("auto-migration failed: %v", err)
	}
	return store
}

func TestSkillCreateAndList(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateSkill(models.Skill{
		Name: "Portrait Photography", Category: "Photography", Proficiency: 95,
		Description: "Natural light portraits",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected created skill to have an id")
	}

	skills, err := store.Skills()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("expected 1 skill, got %d", len(skills))
	}
	got := skills[0]
	if got.Name != created.Name || got.Category != created.Category ||
		got.Proficiency != created.Proficiency || got.Description != created.Description {
		t.Errorf("listed skill does not match created one: %+v vs %+v", got, created)
	}
}

func TestUpdateSkillPartial(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateSkill(models.Skill{Name: "React.js", Category: "Frontend", Proficiency: 80})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := store.UpdateSkill(created.ID, map[string]interface{}{"proficiency": 90})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Proficiency != 90 {
		t.Errorf("expected proficiency 90, got %d", updated.Proficiency)
	}
	if updated.Name != "React.js" || updated.Category != "Frontend" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateMissingSkill(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpdateSkill(42, map[string]interface{}{"proficiency": 50})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteSkill(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateSkill(models.Skill{Name: "Node.js", Category: "Backend", Proficiency: 70})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	deleted, err := store.DeleteSkill(created.ID)
	if err != nil || !deleted {
		t.Fatalf("expected delete to succeed, got deleted=%v err=%v", deleted, err)
	}

	// A second delete of the same id reports not found.
	deleted, err = store.DeleteSkill(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Fatal("expected delete of missing row to report false")
	}
}

func TestProfileUpsertKeepsSingleRow(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Profile(); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound on empty table, got %v", err)
	}

	first, err := store.UpsertProfile(models.ProfileInput{
		FullName: "Nisa Nur Rahmadani", Position: "Photographer", Email: "nisa@example.com",
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second, err := store.UpsertProfile(models.ProfileInput{
		FullName: "Nisa Nur Rahmadani", Position: "Photographer & Developer", Email: "nisa@example.com",
	})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if second.Position != "Photographer & Developer" {
		t.Errorf("expected updated position, got %q", second.Position)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a new row: id %d vs %d", second.ID, first.ID)
	}

	var count int64
	if err := store.db.Model(&models.Profile{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one profile row, got %d", count)
	}
}

func TestArticleSlugUnique(t *testing.T) {
	store := newTestStore(t)

	article := models.Article{
		Title: "Mastering Portraits", Slug: "mastering-portraits",
		Excerpt: "e", Content: "c", Category: "Photography", ReadTime: 8,
	}
	if _, err := store.CreateArticle(article); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err := store.CreateArticle(article)
	if err == nil {
		t.Fatal("expected duplicate slug to fail")
	}
	if !IsUniqueViolation(err) {
		t.Fatalf("expected unique violation, got %v", err)
	}
}

func TestArticleVisibilityFilters(t *testing.T) {
	store := newTestStore(t)

	seed := []models.Article{
		{Title: "Draft", Slug: "draft", Excerpt: "e", Content: "c", Category: "x", ReadTime: 1},
		{Title: "Published", Slug: "published", Excerpt: "e", Content: "c", Category: "x", ReadTime: 1, Published: true},
		{Title: "Featured", Slug: "featured", Excerpt: "e", Content: "c", Category: "x", ReadTime: 1, Published: true, Featured: true},
		{Title: "Hidden Featured", Slug: "hidden-featured", Excerpt: "e", Content: "c", Category: "x", ReadTime: 1, Featured: true},
	}
	for _, a := range seed {
		if _, err := store.CreateArticle(a); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	published, err := store.PublishedArticles()
	if err != nil {
		t.Fatalf("published list failed: %v", err)
	}
	if len(published) != 2 {
		t.Errorf("expected 2 published articles, got %d", len(published))
	}

	featured, err := store.FeaturedArticles()
	if err != nil {
		t.Fatalf("featured list failed: %v", err)
	}
	if len(featured) != 1 || featured[0].Slug != "featured" {
		t.Errorf("expected only the published+featured article, got %+v", featured)
	}

	if _, err := store.ArticleBySlug("no-such-slug"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for unknown slug, got %v", err)
	}
}

func TestMarkMessageRead(t *testing.T) {
	store := newTestStore(t)

	msg, err := store.CreateContactMessage(models.ContactMessage{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
		Subject: "Hello", Message: "Hi there",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if msg.Read {
		t.Fatal("new message should start unread")
	}

	marked, err := store.MarkMessageRead(msg.ID)
	if err != nil || !marked {
		t.Fatalf("expected mark to succeed, got marked=%v err=%v", marked, err)
	}

	// Marking again is a no-op that still succeeds.
	marked, err = store.MarkMessageRead(msg.ID)
	if err != nil || !marked {
		t.Fatalf("expected re-mark to succeed, got marked=%v err=%v", marked, err)
	}

	msgs, err := store.ContactMessages()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(msgs) != 1 || !msgs[0].Read {
		t.Fatalf("expected single read message, got %+v", msgs)
	}

	marked, err = store.MarkMessageRead(9999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if marked {
		t.Fatal("expected marking a missing message to report false")
	}
}

func TestExperienceTechnologiesRoundTrip(t *testing.T) {
	store := newTestStore(t)

	created, err := store.CreateExperience(models.Experience{
		Title: "Full Stack Developer", Company: "Tech Solutions", StartDate: "2022-06",
		Technologies: models.StringList{"React", "Node.js"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.EndDate != nil {
		t.Error("expected nil end date for current position")
	}

	list, err := store.Experiences()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(list))
	}
	techs := list[0].Technologies
	if len(techs) != 2 || techs[0] != "React" || techs[1] != "Node.js" {
		t.Errorf("technologies did not survive the round trip: %v", techs)
	}
}

func TestGalleryFilters(t *testing.T) {
	store := newTestStore(t)

	seed := []models.Gallery{
		{Title: "Portraits", ImageURL: "/uploads/a.jpg", Category: "portrait", Featured: true},
		{Title: "Landscapes", ImageURL: "/uploads/b.jpg", Category: "landscape", Featured: true},
		{Title: "Events", ImageURL: "/uploads/c.jpg", Category: "event"},
	}
	for _, g := range seed {
		if _, err := store.CreateGallery(g); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	byCategory, err := store.GalleriesByCategory("portrait")
	if err != nil {
		t.Fatalf("category filter failed: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Title != "Portraits" {
		t.Errorf("unexpected category result: %+v", byCategory)
	}

	featured, err := store.FeaturedGalleries()
	if err != nil {
		t.Fatalf("featured filter failed: %v", err)
	}
	if len(featured) != 2 {
		t.Errorf("expected 2 featured galleries, got %d", len(featured))
	}

	all, err := store.Galleries()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 galleries, got %d", len(all))
	}
}

func TestImageRefsSkipsEmptyValues(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.UpsertProfile(models.ProfileInput{
		FullName: "N", Position: "P", Email: "n@example.com", PhotoURL: "/uploads/photo.jpg",
	}); err != nil {
		t.Fatalf("profile seed failed: %v", err)
	}
	if _, err := store.CreateGallery(models.Gallery{Title: "G", ImageURL: "/uploads/g.jpg", Category: "c"}); err != nil {
		t.Fatalf("gallery seed failed: %v", err)
	}
	if _, err := store.CreateProject(models.Project{Title: "P", Description: "d", Category: "Web"}); err != nil {
		t.Fatalf("project seed failed: %v", err)
	}

	refs, err := store.ImageRefs()
	if err != nil {
		t.Fatalf("ImageRefs failed: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %v", refs)
	}
	for _, r := range refs {
		if r == "" {
			t.Fatal("empty ref leaked into the result")
		}
	}
}
