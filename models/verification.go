package models

// VerificationRequest carries the identity-document number a worker
// submits. Only the last four digits are ever stored.
type VerificationRequest struct {
	AadhaarNumber string `json:"aadhaarNumber" binding:"required"`
}

// VerificationResponse reports the worker's trust flag and workflow state.
type VerificationResponse struct {
	WorkerID           string `json:"workerId"`
	WorkerName         string `json:"workerName"`
	Verified           bool   `json:"isVerified"`
	VerificationStatus string `json:"verificationStatus"`
	AadhaarLastFour    string `json:"aadhaarLastFour,omitempty"`
	Message            string `json:"message"`
}

// SkillExtractionResponse is returned from the audio skill-intake flow.
// An empty DetectedSkills list is a graceful outcome, not an error.
type SkillExtractionResponse struct {
	DetectedSkills []string `json:"detectedSkills"`
	Message        string   `json:"message"`
}
