package storage

import "folio-hand/models"

func (s *Store) Articles() ([]models.Article, error) {
	var items []models.Article
	err := s.db.Order("created_at desc").Find(&items).Error
	return items, err
}

// PublishedArticles returns only articles visible on the public site.
func (s *Store) PublishedArticles() ([]models.Article, error) {
	var items []models.Article
	err := s.db.Where("published = ?", true).Order("created_at desc").Find(&items).Error
	return items, err
}

// FeaturedArticles returns published articles flagged for the home page.
func (s *Store) FeaturedArticles() ([]models.Article, error) {
	var items []models.Article
	err := s.db.Where("published = ? AND featured = ?", true, true).
		Order("created_at desc").Find(&items).Error
	return items, err
}

// ArticleBySlug returns gorm.ErrRecordNotFound for an unknown slug.
func (s *Store) ArticleBySlug(slug string) (models.Article, error) {
	var article models.Article
	err := s.db.Where("slug = ?", slug).First(&article).Error
	return article, err
}

func (s *Store) CreateArticle(article models.Article) (models.Article, error) {
	err := s.db.Create(&article).Error
	return article, err
}

func (s *Store) UpdateArticle(id uint, fields map[string]interface{}) (models.Article, error) {
	var article models.Article
	if err := s.db.First(&article, id).Error; err != nil {
		return models.Article{}, err
	}
	if err := s.db.Model(&article).Updates(fields).Error; err != nil {
		return models.Article{}, err
	}
	return article, nil
}

func (s *Store) DeleteArticle(id uint) (bool, error) {
	res := s.db.Delete(&models.Article{}, id)
	return res.RowsAffected > 0, res.Error
}
