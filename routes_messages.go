package main

import (
	"errors"
	"net/http"

	"folio-hand/models"
	"folio-hand/services"
	"folio-hand/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupContactMessageRoutes(router *gin.Engine, store *storage.Store, admin gin.HandlerFunc, log *zap.Logger) {
	rg := router.Group("/api/contact-messages")

	rg.GET("", admin, func(c *gin.Context) {
		messages, err := store.ContactMessages()
		if err != nil {
			log.Error("listing contact messages failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch contact messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	})

	// The contact form is the only public write endpoint.
	rg.POST("", func(c *gin.Context) {
		var in models.ContactMessageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message data: " + err.Error()})
			return
		}
		msg, err := store.CreateContactMessage(in.Model())
		if err != nil {
			log.Error("creating contact message failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
			return
		}
		contactMessagesCounter.Inc()
		c.JSON(http.StatusOK, msg)
	})

	rg.PUT("/:id/read", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		marked, err := store.MarkMessageRead(id)
		if err != nil {
			log.Error("marking message read failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update message"})
			return
		}
		if !marked {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
	})

	rg.DELETE("/:id", admin, func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		deleted, err := store.DeleteContactMessage(id)
		if err != nil {
			log.Error("deleting contact message failed", zap.Uint("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete message"})
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
	})
}

func setupUploadRoutes(router *gin.Engine, uploads *services.UploadService, admin gin.HandlerFunc, log *zap.Logger) {
	router.POST("/api/upload/profile-photo", admin, func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
			return
		}
		url, err := uploads.Save(fh)
		if err != nil {
			if errors.Is(err, services.ErrFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"message": "File exceeds the 5MB limit"})
				return
			}
			log.Error("saving upload failed", zap.String("filename", fh.Filename), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	})
}
