package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saathi/utils"
)

// ListWorkersHandler returns all available workers, optionally filtered
// by skill and city query params.
func ListWorkersHandler(c *gin.Context) {
	workers, err := WorkerService.Search(c.Query("skill"), c.Query("city"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workers": workers, "count": len(workers)})
}

// GetWorkerHandler returns a single worker's public summary.
func GetWorkerHandler(c *gin.Context) {
	worker, err := WorkerService.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, worker)
}

// ToggleAvailabilityHandler flips the caller's availability flag.
func ToggleAvailabilityHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	available, err := WorkerService.ToggleAvailability(userID)
	if err != nil {
		utils.GetLogger().Error("Availability toggle failed", zap.String("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// ExtractSkillsHandler runs audio skill intake for the caller and
// merges any detected tags into their profile.
func ExtractSkillsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	audio, filename, ok := readAudioUpload(c)
	if !ok {
		return
	}

	resp, err := WorkerService.ExtractSkills(c.Request.Context(), userID, audio, filename)
	if err != nil {
		utils.GetLogger().Error("Skill extraction failed", zap.String("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ValidSkillsHandler lists the recognised skill vocabulary.
func ValidSkillsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"skills": utils.ValidSkills})
}
