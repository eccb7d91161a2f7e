package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swiperent/internal/listings"
)

// listingsHandler proxies the rental search to the third-party API and
// relays its JSON body untouched.
func (s *Server) listingsHandler(c *gin.Context) {
	filters := listings.ParseQuery(c.Request.URL.Query())
	body, err := s.listings.SearchRent(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, listings.ErrBadResponse) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse API response"})
			return
		}
		s.log.Error("listings request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch listings"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
