package models

import "time"

// Role distinguishes the two kinds of platform accounts.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleWorker   Role = "WORKER"
)

// User represents an identity record. Email and phone are unique.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Phone        string    `bson:"phone" json:"phone"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	Language     string    `bson:"language,omitempty" json:"language,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"-"`
}

// AuthResponse is returned from registration and sign-in.
type AuthResponse struct {
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}
