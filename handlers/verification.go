package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saathi/models"
	"saathi/utils"
)

// SubmitVerificationHandler records the caller's identity document and
// opens a verification review.
func SubmitVerificationHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := WorkerService.SubmitAadhaar(userID, req.AadhaarNumber)
	if err != nil {
		utils.GetLogger().Warn("Verification submit failed", zap.String("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerificationStatusHandler reports the caller's verification state.
func VerificationStatusHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := WorkerService.VerificationStatus(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ApproveVerificationHandler grants the verified badge. Admin only.
func ApproveVerificationHandler(c *gin.Context) {
	workerID := c.Param("workerId")

	resp, err := WorkerService.ApproveVerification(workerID)
	if err != nil {
		utils.GetLogger().Error("Verification approve failed", zap.String("workerID", workerID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RejectVerificationHandler declines a verification request. Admin only.
func RejectVerificationHandler(c *gin.Context) {
	workerID := c.Param("workerId")

	resp, err := WorkerService.RejectVerification(workerID)
	if err != nil {
		utils.GetLogger().Error("Verification reject failed", zap.String("workerID", workerID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
