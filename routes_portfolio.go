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

func setupProfileRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/profile")

	rg.GET("", func(c *gin.Context) {
		profile, err := store.Profile()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No profile yet; the public page treats this as empty state.
				c.JSON(http.StatusOK, nil)
				return
			}
			log.Error("fetching profile failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	})

	rg.PUT("", admin, func(c *gin.Context) {
		var in models.ProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid profile data: " + err.Error()})
			return
		}
		profile, err := store.UpsertProfile(in)
		if err != nil {
			log.Error("profile upsert failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, profile)
	})
}

func setupSkillRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/skills")

	rg.GET("", func(c *gin.Context) {
		skills, err := getCached("skills", func() (interface{}, error) {
			return store.Skills()
		})
		if err != nil {
			log.Error("listing skills failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch skills"})
			return
		}
		c.JSON(http.StatusOK, skills)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in models.SkillInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid skill data: " + err.Error()})
			return
		}
		skill, err := store.CreateSkill(in.Model())
		if err != nil {
			log.Error("creating skill failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create skill"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, skill)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var up models.SkillUpdate
		if err := c.ShouldBindJSON(&up); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid skill data: " + err.Error()})
			return
		}
		fields := up.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
			return
		}
		skill, err := store.UpdateSkill(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Skill not found"})
				return
			}
			log.Error("updating skill failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update skill"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, skill)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteSkill(id)
		if err != nil {
			log.Error("deleting skill failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete skill"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Skill not found"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
	})
}

func setupExperienceRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/experiences")

	rg.GET("", func(c *gin.Context) {
		experiences, err := getCached("experiences", func() (interface{}, error) {
			return store.Experiences()
		})
		if err != nil {
			log.Error("listing experiences failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch experiences"})
			return
		}
		c.JSON(http.StatusOK, experiences)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in models.ExperienceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid experience data: " + err.Error()})
			return
		}
		exp, err := store.CreateExperience(in.Model())
		if err != nil {
			log.Error("creating experience failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create experience"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, exp)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var up models.ExperienceUpdate
		if err := c.ShouldBindJSON(&up); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid experience data: " + err.Error()})
			return
		}
		fields := up.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
			return
		}
		exp, err := store.UpdateExperience(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Experience not found"})
				return
			}
			log.Error("updating experience failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update experience"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, exp)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteExperience(id)
		if err != nil {
			log.Error("deleting experience failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete experience"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Experience not found"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully"})
	})
}

func setupEducationRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/education")

	rg.GET("", func(c *gin.Context) {
		entries, err := getCached("education", func() (interface{}, error) {
			return store.EducationEntries()
		})
		if err != nil {
			log.Error("listing education failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch education"})
			return
		}
		c.JSON(http.StatusOK, entries)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in models.EducationInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid education data: " + err.Error()})
			return
		}
		edu, err := store.CreateEducation(in.Model())
		if err != nil {
			log.Error("creating education failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create education"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, edu)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var up models.EducationUpdate
		if err := c.ShouldBindJSON(&up); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid education data: " + err.Error()})
			return
		}
		fields := up.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
			return
		}
		edu, err := store.UpdateEducation(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Education not found"})
				return
			}
			log.Error("updating education failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update education"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, edu)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteEducation(id)
		if err != nil {
			log.Error("deleting education failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete education"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Education not found"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gin.H{"message": "Education deleted successfully"})
	})
}

func setupCertificationRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/certifications")

	rg.GET("", func(c *gin.Context) {
		certs, err := getCached("certifications", func() (interface{}, error) {
			return store.Certifications()
		})
		if err != nil {
			log.Error("listing certifications failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch certifications"})
			return
		}
		c.JSON(http.StatusOK, certs)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in models.CertificationInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid certification data: " + err.Error()})
			return
		}
		cert, err := store.CreateCertification(in.Model())
		if err != nil {
			log.Error("creating certification failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create certification"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, cert)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var up models.CertificationUpdate
		if err := c.ShouldBindJSON(&up); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid certification data: " + err.Error()})
			return
		}
		fields := up.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
			return
		}
		cert, err := store.UpdateCertification(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Certification not found"})
				return
			}
			log.Error("updating certification failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update certification"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, cert)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteCertification(id)
		if err != nil {
			log.Error("deleting certification failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete certification"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Certification not found"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gin.H{"message": "Certification deleted successfully"})
	})
}

func setupActivityRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/activities")

	rg.GET("", func(c *gin.Context) {
		activities, err := getCached("activities", func() (interface{}, error) {
			return store.Activities()
		})
		if err != nil {
			log.Error("listing activities failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch activities"})
			return
		}
		c.JSON(http.StatusOK, activities)
	})

	rg.POST("", admin, func(c *gin.Context) {
		var in models.ActivityInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid activity data: " + err.Error()})
			return
		}
		act, err := store.CreateActivity(in.Model())
		if err != nil {
			log.Error("creating activity failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create activity"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, act)
	})

	rg.PUT("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var up models.ActivityUpdate
		if err := c.ShouldBindJSON(&up); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid activity data: " + err.Error()})
			return
		}
		fields := up.Fields()
		if len(fields) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
			return
		}
		act, err := store.UpdateActivity(id, fields)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Activity not found"})
				return
			}
			log.Error("updating activity failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update activity"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, act)
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteActivity(id)
		if err != nil {
			log.Error("deleting activity failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete activity"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Activity not found"})
			return
		}
		invalidateCache()
		c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
	})
}
