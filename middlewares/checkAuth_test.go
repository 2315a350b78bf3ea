package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/PrayCircle/initializers"
	"github.com/PrayCircle/models"
	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

// Helper function to generate a valid JWT token
func generateValidToken(userID int, expiresIn time.Duration) string {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "test-secret-key"
		os.Setenv("SECRET", secret)
	}

	claims := jwt.MapClaims{
		"id":  float64(userID),
		"exp": float64(time.Now().Add(expiresIn).Unix()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(secret))
	return tokenString
}

// Helper function to generate a token with invalid signature
func generateInvalidSignatureToken(userID int) string {
	claims := jwt.MapClaims{
		"id":  float64(userID),
		"exp": float64(time.Now().Add(24 * time.Hour).Unix()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte("wrong-secret-key"))
	return tokenString
}

// Setup test database
func setupTestDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}

	goquDB := goqu.New("postgres", db)

	oldDB := initializers.DB
	initializers.DB = goquDB

	cleanup := func() {
		db.Close()
		initializers.DB = oldDB
	}

	return mock, cleanup
}

// Setup test Gin context
func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)
	return c, w
}

var userColumns = []string{
	"user_profile_id", "username", "password", "display_name", "email",
	"datetime_create", "datetime_update",
}

// Test CheckAuth middleware
func TestCheckAuth(t *testing.T) {
	tests := []struct {
		name              string
		authHeader        string
		mockUserLookup    bool
		userExists        bool
		expectedStatus    int
		expectCurrentUser bool
	}{
		{
			name:              "missing authorization header",
			authHeader:        "",
			expectedStatus:    http.StatusUnauthorized,
			expectCurrentUser: false,
		},
		{
			name:              "invalid token format - no Bearer prefix",
			authHeader:        "InvalidToken123",
			expectedStatus:    http.StatusUnauthorized,
			expectCurrentUser: false,
		},
		{
			name:              "expired token",
			authHeader:        "Bearer " + generateValidToken(1, -1*time.Hour),
			expectedStatus:    http.StatusUnauthorized,
			expectCurrentUser: false,
		},
		{
			name:              "invalid signature",
			authHeader:        "Bearer " + generateInvalidSignatureToken(1),
			expectedStatus:    http.StatusUnauthorized,
			expectCurrentUser: false,
		},
		{
			name:              "valid token - user loaded",
			authHeader:        "Bearer " + generateValidToken(1, 24*time.Hour),
			mockUserLookup:    true,
			userExists:        true,
			expectedStatus:    http.StatusOK,
			expectCurrentUser: true,
		},
		{
			name:              "valid token - user no longer exists",
			authHeader:        "Bearer " + generateValidToken(999, 24*time.Hour),
			mockUserLookup:    true,
			userExists:        false,
			expectedStatus:    http.StatusUnauthorized,
			expectCurrentUser: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, cleanup := setupTestDB(t)
			defer cleanup()

			if tt.mockUserLookup {
				if tt.userExists {
					now := time.Now()
					mock.ExpectQuery("SELECT").WillReturnRows(
						sqlmock.NewRows(userColumns).
							AddRow(1, "testuser", "hashed", "Test User", "test@example.com", now, now),
					)
				} else {
					mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(userColumns))
				}
			}

			c, w := setupTestContext()
			if tt.authHeader != "" {
				c.Request.Header.Set("Authorization", tt.authHeader)
			}

			CheckAuth(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			currentUser, exists := c.Get("currentUser")
			if tt.expectCurrentUser {
				assert.True(t, exists)
				user := currentUser.(models.UserProfile)
				assert.Equal(t, 1, user.User_Profile_ID)
				assert.Equal(t, "testuser", user.Username)
			} else {
				assert.False(t, exists)
			}
		})
	}
}
