package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiperent/internal/middleware"
	"swiperent/internal/model"
	"swiperent/internal/store"
)

func (s *Server) getProfileHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	profile, err := s.profiles.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		s.log.Error("profile fetch failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile.Formatted())
}

func (s *Server) upsertProfileHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	var req struct {
		FullName           string   `json:"full_name"`
		PhoneNumber        string   `json:"phone_number"`
		DateOfBirth        string   `json:"date_of_birth"`
		CurrentAddress     string   `json:"current_address"`
		Bio                string   `json:"bio"`
		Occupation         string   `json:"occupation"`
		MonthlyIncome      float64  `json:"monthly_income"`
		PreferredLocations []string `json:"preferred_locations"`
		MaxBudget          float64  `json:"max_budget"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := &model.Profile{
		UserID:             userID,
		FullName:           req.FullName,
		PhoneNumber:        req.PhoneNumber,
		DateOfBirth:        req.DateOfBirth,
		CurrentAddress:     req.CurrentAddress,
		Bio:                req.Bio,
		Occupation:         req.Occupation,
		MonthlyIncome:      req.MonthlyIncome,
		PreferredLocations: req.PreferredLocations,
		MaxBudget:          req.MaxBudget,
	}
	saved, err := s.profiles.Upsert(profile)
	if err != nil {
		s.log.Error("profile upsert failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, saved)
}
