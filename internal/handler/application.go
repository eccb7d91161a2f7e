package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiperent/internal/middleware"
	"swiperent/internal/workflow"
)

func (s *Server) submitApplicationHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	var req struct {
		ApartmentID          int64  `json:"apartmentId"`
		PropertyManagerEmail string `json:"propertyManagerEmail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := s.applications.Submit(userID, req.ApartmentID, req.PropertyManagerEmail)
	if err != nil {
		var dup *workflow.DuplicateApplicationError
		switch {
		case errors.As(err, &dup):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       "You have already applied to this apartment",
				"application": dup.Existing,
			})
		case errors.Is(err, workflow.ErrApartmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Apartment not found"})
		case errors.Is(err, workflow.ErrProfileIncomplete):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please complete your profile before applying"})
		case errors.Is(err, workflow.ErrDocumentsMissing):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload and verify your documents before applying"})
		default:
			s.log.Error("application submission failed",
				zap.Uint("user_id", userID),
				zap.Int64("apartment_id", req.ApartmentID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application", "details": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, app)
}

func (s *Server) checkApplicationHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	apartmentID, err := strconv.ParseInt(c.Param("apartmentId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid apartment ID"})
		return
	}

	result, err := s.applications.Check(userID, apartmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check application status"})
		return
	}
	c.JSON(http.StatusOK, result)
}
