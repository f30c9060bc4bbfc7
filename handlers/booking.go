package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saathi/models"
	"saathi/utils"
)

// EligibleWorkersHandler lists available workers matching the requested
// skill, best rated first.
func EligibleWorkersHandler(c *gin.Context) {
	workers, err := BookingService.EligibleWorkers(c.Query("skill"), c.Query("city"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workers": workers, "count": len(workers)})
}

// ConfirmBookingHandler opens a booking with the chosen worker.
func ConfirmBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := BookingService.Create(userID, req)
	if err != nil {
		logger.Warn("Booking confirmation failed",
			zap.String("customerID", userID),
			zap.String("workerID", req.WorkerID),
			zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	logger.Info("Booking confirmed",
		zap.String("bookingID", resp.BookingID),
		zap.String("customerID", userID))
	c.JSON(http.StatusCreated, resp)
}

// MyBookingsHandler returns the caller's bookings as a customer.
func MyBookingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	bookings, err := BookingService.MyBookings(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// WorkerJobsHandler returns the jobs assigned to the calling worker.
func WorkerJobsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	jobs, err := BookingService.WorkerJobs(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

// AcceptBookingHandler marks the booking ACCEPTED by its worker.
func AcceptBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := BookingService.Accept(c.Param("id"), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CompleteBookingHandler marks the booking COMPLETED and credits the
// worker's job counter.
func CompleteBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := BookingService.Complete(c.Param("id"), userID)
	if err != nil {
		utils.GetLogger().Warn("Booking completion failed",
			zap.String("bookingID", c.Param("id")),
			zap.String("workerUserID", userID),
			zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelBookingHandler cancels a booking on behalf of its customer.
func CancelBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := BookingService.Cancel(c.Param("id"), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
