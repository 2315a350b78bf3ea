package controllers

import (
	"time"

	"github.com/PrayCircle/models"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockUser creates a sample user profile for testing
func MockUser() models.UserProfile {
	return models.UserProfile{
		User_Profile_ID: 1,
		Username:        "testuser",
		Display_Name:    "Test User",
		Email:           "test@example.com",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockUserWithPassword creates a sample user with a bcrypt hashed password.
// Password is "password123" - use this in tests.
func MockUserWithPassword() models.UserProfile {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := MockUser()
	user.Password = string(hashedPassword)
	return user
}

// MockSecondUser creates a second member for authorization tests
func MockSecondUser() models.UserProfile {
	return models.UserProfile{
		User_Profile_ID: 2,
		Username:        "seconduser",
		Display_Name:    "Second User",
		Email:           "second@example.com",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}
