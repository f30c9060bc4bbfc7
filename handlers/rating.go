package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saathi/models"
	"saathi/utils"
)

// SubmitRatingHandler records a rating for a completed booking and
// refreshes the worker's average.
func SubmitRatingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := RatingService.Submit(userID, req)
	if err != nil {
		utils.GetLogger().Warn("Rating submit failed",
			zap.String("bookingID", req.BookingID),
			zap.String("customerID", userID),
			zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// BookingRatingHandler returns the rating attached to a booking.
func BookingRatingHandler(c *gin.Context) {
	resp, err := RatingService.ForBooking(c.Param("bookingId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
