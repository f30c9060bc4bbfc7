package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saathi/utils"
)

// EarningsSummaryHandler aggregates the calling worker's completed
// bookings into an earnings view.
func EarningsSummaryHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := EarningsService.Summary(userID)
	if err != nil {
		utils.GetLogger().Error("Earnings summary failed", zap.String("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PredictIncomeHandler asks the forecast model for the calling worker's
// next-week projection.
func PredictIncomeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := EarningsService.PredictIncome(c.Request.Context(), userID)
	if err != nil {
		utils.GetLogger().Error("Income prediction failed", zap.String("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
