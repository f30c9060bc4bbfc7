package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"saathi/services/auth"
	"saathi/services/booking"
	"saathi/services/earnings"
	"saathi/services/rating"
	"saathi/services/worker"
)

// Service singletons wired in main.
var (
	AuthService     auth.AuthService
	WorkerService   worker.WorkerService
	BookingService  booking.BookingService
	RatingService   rating.RatingService
	EarningsService earnings.EarningsService
)

// currentUserID pulls the authenticated user id set by the auth
// middleware. Aborts with 401 when missing.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// readAudioUpload reads the "audio" multipart file into memory and
// returns the payload with its original filename.
func readAudioUpload(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required", "details": err.Error()})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open audio file", "details": err.Error()})
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read audio file", "details": err.Error()})
		return nil, "", false
	}
	if len(data) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is empty"})
		return nil, "", false
	}
	return data, fileHeader.Filename, true
}
