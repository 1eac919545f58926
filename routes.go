package main

import (
	"net/http"
	"strconv"
	"time"

	"folio-hand/services"
	"folio-hand/storage"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// pageCache keeps the public list endpoints cheap; any mutation flushes it.
var pageCache = cache.New(5*time.Minute, 10*time.Minute)

func getCached(key string, fetch func() (interface{}, error)) (interface{}, error) {
	if data, found := pageCache.Get(key); found {
		return data, nil
	}
	data, err := fetch()
	if err != nil {
		return nil, err
	}
	pageCache.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

func invalidateCache() {
	pageCache.Flush()
}

// parseID reads the :id path parameter. On failure it writes the 400
// response itself and returns ok=false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// setupRoutes wires every API route group onto the engine.
func setupRoutes(
	router *gin.Engine,
	store *storage.Store,
	auth *services.AuthService,
	uploads *services.UploadService,
	log *zap.Logger,
) {
	admin := auth.Middleware()

	setupAuthRoutes(router, auth, log)
	setupProfileRoutes(router, store, admin, log)
	setupSkillRoutes(router, store, admin, log)
	setupExperienceRoutes(router, store, admin, log)
	setupEducationRoutes(router, store, admin, log)
	setupCertificationRoutes(router, store, admin, log)
	setupActivityRoutes(router, store, admin, log)
	setupArticleRoutes(router, store, admin, log)
	setupGalleryRoutes(router, store, admin, log)
	setupServiceRoutes(router, store, admin, log)
	setupProjectRoutes(router, store, admin, log)
	setupContactMessageRoutes(router, store, admin, log)
	setupUploadRoutes(router, uploads, admin, log)
}

func setupAuthRoutes(router *gin.Engine, auth *services.AuthService, log *zap.Logger) {
	router.POST("/api/auth/login", func(c *gin.Context) {
		var req struct {
			Username string `json:"username" binding:"required"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
			return
		}
		token, err := auth.Login(req.Username, req.Password)
		if err != nil {
			log.Warn("login rejected", zap.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	})
}
