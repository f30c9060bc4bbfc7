package models

// RegisterRequest is the payload for account registration. Worker
// registrations additionally carry profile fields.
type RegisterRequest struct {
	Name         string   `json:"name" binding:"required"`
	Phone        string   `json:"phone" binding:"required"`
	Email        string   `json:"email" binding:"required"`
	Password     string   `json:"password" binding:"required"`
	Role         string   `json:"role" binding:"required"`
	Language     string   `json:"language"`
	City         string   `json:"city"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Skills       []string `json:"skills"`
	PricePerHour float64  `json:"pricePerHour"`
}

// SignInRequest is the credential payload for sign-in.
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VoiceRegistration mirrors the JSON object the extraction model is
// prompted to return for a spoken worker registration. Skills arrive
// as a comma-joined string of vocabulary tags.
type VoiceRegistration struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Language     string  `json:"language"`
	City         string  `json:"city"`
	Skills       string  `json:"skills"`
	PricePerHour float64 `json:"pricePerHour"`
	Role         string  `json:"role"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}
