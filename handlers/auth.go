package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"saathi/models"
	"saathi/utils"
)

// RegisterHandler creates a customer or worker account.
func RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := AuthService.Register(req)
	if err != nil {
		logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// SignInHandler verifies credentials and returns a session token.
func SignInHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := AuthService.SignIn(req.Email, req.Password)
	if err != nil {
		logger.Warn("Sign-in failed", zap.String("email", req.Email), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MeHandler returns the authenticated caller's identity record.
func MeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := AuthService.Me(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SignOutHandler revokes the caller's cached session.
func SignOutHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := AuthService.SignOut(userID); err != nil {
		utils.GetLogger().Error("Sign-out failed", zap.String("userID", userID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// ParseVoiceRegistrationHandler extracts a spoken registration from an
// audio upload without creating the account, so the caller can review
// the parsed fields first.
func ParseVoiceRegistrationHandler(c *gin.Context) {
	audio, filename, ok := readAudioUpload(c)
	if !ok {
		return
	}

	req, err := AuthService.ParseVoiceRegistration(c.Request.Context(), audio, filename)
	if err != nil {
		utils.GetLogger().Error("Voice registration parse failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, req)
}

// ConfirmVoiceRegistrationHandler extracts a spoken registration and
// creates the worker account in one step.
func ConfirmVoiceRegistrationHandler(c *gin.Context) {
	audio, filename, ok := readAudioUpload(c)
	if !ok {
		return
	}

	resp, err := AuthService.RegisterFromVoice(c.Request.Context(), audio, filename)
	if err != nil {
		utils.GetLogger().Error("Voice registration failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
