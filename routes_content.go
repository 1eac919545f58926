package main

import (
	"errors"
	"net/http"

	"folio-hand/models"
	"folio-hand/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupArticleRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/articles")

	rg.GET("", func(c *gin.Context) {
		var (
			key   string
			fetch func() (interface{}, error)
		)
		switch {
		case c.Query("featured") == "true":
			key = "articles:featured"
			fetch = func() (interface{}, error) { return store.FeaturedArticles() }
		case c.Query("published") == "true":
			key = "articles:published"
			fetch = func() (interface{}, error) { return store.PublishedArticles() }
		default:
			key = "articles:all"
			fetch = func() (interface{}, error) { return store.Articles() }
		}
		articles, err := getCached(key, fetch)
		if err != nil {
			log.Error("listing articles failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch articles"})
			return
		}
		c.JSON(http.StatusOK, articles)
	})

	rg.GET("/:slug", func(c *gin.Context) {
		article, err := store.ArticleBySlug(c.Param("slug"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Article not found"})
				return
			}
			log.Error("fetching article failed", zap.String("slug", c.Param("slug")), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch article"})
			return
		}
		c.JSON(http.StatusOK, article)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in models.ArticleInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid article data: " + err.Error()})
			return
		}
		article, err := store.CreateArticle(in.Model())
		if err != nil {
			if storage.IsUniqueViolation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "An article with this slug already exists"})
				return
			}
			log.Error("creating article failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create article"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, article)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var up models.ArticleUpdate
		if err := c.ShouldBindJSON(&up); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid article data: " + err.Error()})
			return
		}
		fields := up.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
			return
		}
		article, err := store.UpdateArticle(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Article not found"})
				return
			}
			if storage.IsUniqueViolation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "An article with this slug already exists"})
				return
			}
			log.Error("updating article failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update article"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, article)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteArticle(id)
		if err != nil {
			log.Error("deleting article failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete article"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Article not found"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
	})
}

func setupGalleryRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/galleries")

	rg.GET("", func(c *gin.Context) {
		var (
			key   string
			fetch func() (interface{}, error)
		)
		switch {
		// featured wins when both filters are present.
		case c.Query("featured") == "true":
			key = "galleries:featured"
			fetch = func() (interface{}, error) { return store.FeaturedGalleries() }
		case c.Query("category") != "":
			category := c.Query("category")
			key = "galleries:category:" + category
			fetch = func() (interface{}, error) { return store.GalleriesByCategory(category) }
		default:
			key = "galleries:all"
			fetch = func() (interface{}, error) { return store.Galleries() }
		}
		galleries, err := getCached(key, fetch)
		if err != nil {
			log.Error("listing galleries failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch galleries"})
			return
		}
		c.JSON(http.StatusOK, galleries)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in models.GalleryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid gallery data: " + err.Error()})
			return
		}
		gallery, err := store.CreateGallery(in.Model())
		if err != nil {
			log.Error("creating gallery failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create gallery"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gallery)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var up models.GalleryUpdate
		if err := c.ShouldBindJSON(&up); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid gallery data: " + err.Error()})
			return
		}
		fields := up.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
			return
		}
		gallery, err := store.UpdateGallery(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Gallery not found"})
				return
			}
			log.Error("updating gallery failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update gallery"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gallery)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteGallery(id)
		if err != nil {
			log.Error("deleting gallery failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete gallery"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Gallery not found"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gin.H{"message": "Gallery deleted successfully"})
	})
}

func setupServiceRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/services")

	rg.GET("", func(c *gin.Context) {
		var (
			key   string
			fetch func() (interface{}, error)
		)
		if category := c.Query("category"); category != "" {
			key = "services:category:" + category
			fetch = func() (interface{}, error) { return store.ServicesByCategory(category) }
		} else {
			key = "services:all"
			fetch = func() (interface{}, error) { return store.Services() }
		}
		services, err := getCached(key, fetch)
		if err != nil {
			log.Error("listing services failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch services"})
			return
		}
		c.JSON(http.StatusOK, services)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in models.ServiceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service data: " + err.Error()})
			return
		}
		service, err := store.CreateService(in.Model())
		if err != nil {
			log.Error("creating service failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create service"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, service)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var up models.ServiceUpdate
		if err := c.ShouldBindJSON(&up); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid service data: " + err.Error()})
			return
		}
		fields := up.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
			return
		}
		service, err := store.UpdateService(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
				return
			}
			log.Error("updating service failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update service"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, service)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteService(id)
		if err != nil {
			log.Error("deleting service failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete service"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
	})
}

func setupProjectRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/projects")

	rg.GET("", func(c *gin.Context) {
		var (
			key   string
			fetch func() (interface{}, error)
		)
		switch {
		case c.Query("featured") == "true":
			key = "projects:featured"
			fetch = func() (interface{}, error) { return store.FeaturedProjects() }
		case c.Query("category") != "":
			category := c.Query("category")
			key = "projects:category:" + category
			fetch = func() (interface{}, error) { return store.ProjectsByCategory(category) }
		default:
			key = "projects:all"
			fetch = func() (interface{}, error) { return store.Projects() }
		}
		projects, err := getCached(key, fetch)
		if err != nil {
			log.Error("listing projects failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects"})
			return
		}
		c.JSON(http.StatusOK, projects)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in models.ProjectInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project data: " + err.Error()})
			return
		}
		project, err := store.CreateProject(in.Model())
		if err != nil {
			log.Error("creating project failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create project"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, project)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var up models.ProjectUpdate
		if err := c.ShouldBindJSON(&up); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid project data: " + err.Error()})
			return
		}
		fields := up.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
			return
		}
		project, err := store.UpdateProject(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
				return
			}
			log.Error("updating project failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update project"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, project)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteProject(id)
		if err != nil {
			log.Error("deleting project failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete project"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
	})
}
