package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiperent/internal/listings"
	"swiperent/internal/middleware"
	"swiperent/internal/model"
)

func (s *Server) addFavoriteHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	var req struct {
		Apartment *listings.Property `json:"apartment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Apartment == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No apartment data provided"})
		return
	}

	apartmentID := req.Apartment.ApartmentID()
	if apartmentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No apartment ID provided"})
		return
	}

	// Cache the listing locally on first contact.
	if err := s.apartments.Ensure(req.Apartment.ToApartment()); err != nil {
		s.log.Error("apartment upsert failed", zap.Int64("apartment_id", apartmentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	existing, err := s.favorites.GetByUserAndApartment(userID, apartmentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{
			"message":  "Apartment already in favorites",
			"favorite": existing,
		})
		return
	}

	fav := &model.Favorite{UserID: userID, ApartmentID: apartmentID}
	if err := s.favorites.Create(fav); err != nil {
		s.log.Error("favorite insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"favorite":     fav,
		"apartment_id": apartmentID,
	})
}

func (s *Server) listFavoritesHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	favorites, err := s.favorites.ListWithApartments(userID)
	if err != nil {
		s.log.Error("favorites query failed", zap.Uint("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (s *Server) removeFavoriteHandler(c *gin.Context) {
	userID := middleware.UserID(c)
	// The path parameter is the apartment id, not the favorite row id.
	apartmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid apartment ID"})
		return
	}
	if err := s.favorites.DeleteByUserAndApartment(userID, apartmentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed successfully"})
}
