package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiperent/internal/middleware"
	"swiperent/internal/model"
	"swiperent/internal/storage"
	"swiperent/internal/store"
)

func (s *Server) uploadDocumentHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	documentType := c.PostForm("documentType")
	originalName := c.PostForm("originalName")

	file, err := c.FormFile("document")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if originalName == "" {
		originalName = file.Filename
	}

	mimeType := file.Header.Get("Content-Type")
	if !storage.AllowedType(mimeType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only PDF, JPEG, PNG, and DOC files are allowed."})
		return
	}
	if file.Size > storage.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 5MB)"})
		return
	}

	path, err := s.uploads.Save(userID, file, originalName)
	if err != nil {
		s.log.Error("document save failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document", "details": err.Error()})
		return
	}

	if storage.IsImage(mimeType) {
		if _, err := s.uploads.Thumbnail(path); err != nil {
			s.log.Warn("thumbnail generation failed", zap.String("path", path), zap.Error(err))
		}
	}

	// Uploads skip review for now and are stored verified.
	doc := &model.Document{
		UserID:       userID,
		DocumentType: documentType,
		FilePath:     path,
		OriginalName: originalName,
		FileSize:     file.Size,
		MimeType:     mimeType,
		Status:       model.DocumentStatusVerified,
	}
	if err := s.documents.Create(doc); err != nil {
		s.log.Error("document insert failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) listDocumentsHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	docs, err := s.documents.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) deleteDocumentHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	doc, err := s.documents.GetByIDAndUser(uint(id), userID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document", "details": err.Error()})
		return
	}

	// The stored file goes first; if removal fails the row stays.
	if err := s.uploads.Remove(doc.FilePath); err != nil {
		s.log.Error("document file removal failed", zap.String("path", doc.FilePath), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document", "details": err.Error()})
		return
	}
	if err := s.documents.Delete(doc.ID, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}
