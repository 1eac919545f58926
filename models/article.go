package models

import "time"

// Article is a blog post. Slug is the public lookup key and must stay unique.
type Article struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title    string `json:"title" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex;not null"`
	Excerpt  string `json:"excerpt" gorm:"type:text;not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
	Category string `json:"category" gorm:"not null;index"`
	ReadTime int    `json:"readTime" gorm:"not null"`
	ImageURL string `json:"imageUrl,omitempty"`

	Published bool `json:"published" gorm:"default:false;index"`
	Featured  bool `json:"featured" gorm:"default:false"`
}

func (Article) TableName() string {
	return "articles"
}

type ArticleInput struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug" binding:"required"`
	Excerpt   string `json:"excerpt" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Category  string `json:"category" binding:"required"`
	ReadTime  *int   `json:"readTime" binding:"required,gt=0"`
	ImageURL  string `json:"imageUrl"`
	Published *bool  `json:"published"`
	Featured  *bool  `json:"featured"`
}

func (in ArticleInput) Model() Article {
	a := Article{
		Title:    in.Title,
		Slug:     in.Slug,
		Excerpt:  in.Excerpt,
		Content:  in.Content,
		Category: in.Category,
		ReadTime: *in.ReadTime,
		ImageURL: in.ImageURL,
	}
	if in.Published != nil {
		a.Published = *in.Published
	}
	if in.Featured != nil {
		a.Featured = *in.Featured
	}
	return a
}

type ArticleUpdate struct {
	Title     *string `json:"title" binding:"omitempty,min=1"`
	Slug      *string `json:"slug" binding:"omitempty,min=1"`
	Excerpt   *string `json:"excerpt" binding:"omitempty,min=1"`
	Content   *string `json:"content" binding:"omitempty,min=1"`
	Category  *string `json:"category" binding:"omitempty,min=1"`
	ReadTime  *int    `json:"readTime" binding:"omitempty,gt=0"`
	ImageURL  *string `json:"imageUrl"`
	Published *bool   `json:"published"`
	Featured  *bool   `json:"featured"`
}

func (u ArticleUpdate) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if u.Title != nil {
		fields["title"] = *u.Title
	}
	if u.Slug != nil {
		fields["slug"] = *u.Slug
	}
	if u.Excerpt != nil {
		fields["excerpt"] = *u.Excerpt
	}
	if u.Content != nil {
		fields["content"] = *u.Content
	}
	if u.Category != nil {
		fields["category"] = *u.Category
	}
	if u.ReadTime != nil {
		fields["read_time"] = *u.ReadTime
	}
	if u.ImageURL != nil {
		fields["image_url"] = *u.ImageURL
	}
	if u.Published != nil {
		fields["published"] = *u.Published
	}
	if u.Featured != nil {
		fields["featured"] = *u.Featured
	}
	return fields
}
