package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var itemDetailColumns = []string{
	"prayer_item_id", "group_profile_id", "author_id", "author_name",
	"title", "content", "category", "status", "is_anonymous",
	"datetime_create", "datetime_update",
}

var membershipColumns = []string{
	"user_group_id", "user_profile_id", "group_profile_id", "group_role",
	"is_active", "datetime_create", "datetime_update",
}

func mockItemDetail(itemID, groupID, authorID int, anonymous bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(itemDetailColumns).
		AddRow(itemID, groupID, authorID, "Test User", "Test Prayer", "Please pray for this", nil, "praying", anonymous, now, now)
}

func mockMembership(userID, groupID int, role string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(membershipColumns).
		AddRow(1, userID, groupID, role, true, now, now)
}

// Test GetPrayerItem - single item retrieval with authorization
func TestGetPrayerItem(t *testing.T) {
	tests := []struct {
		name           string
		prayerID       string
		itemExists     bool
		isMember       bool
		expectedStatus int
		expectError    bool
	}{
		{
			name:           "successful retrieval - group member",
			prayerID:       "1",
			itemExists:     true,
			isMember:       true,
			expectedStatus: http.StatusOK,
			expectError:    false,
		},
		{
			name:           "forbidden - not a group member",
			prayerID:       "1",
			itemExists:     true,
			isMember:       false,
			expectedStatus: http.StatusForbidden,
			expectError:    true,
		},
		{
			name:           "prayer item not found",
			prayerID:       "999",
			itemExists:     false,
			isMember:       true,
			expectedStatus: http.StatusNotFound,
			expectError:    true,
		},
		{
			name:           "invalid prayer ID",
			prayerID:       "invalid",
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.prayerID != "invalid" {
				if tt.itemExists {
					mock.ExpectQuery("SELECT").WillReturnRows(mockItemDetail(1, 10, 2, false))
					if tt.isMember {
						mock.ExpectQuery("SELECT").WillReturnRows(mockMembership(1, 10, "member"))
						mock.ExpectQuery("SELECT COUNT").
							WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
					} else {
						mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(membershipColumns))
					}
				} else {
					mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(itemDetailColumns))
				}
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockUser())
			c.Params = []gin.Param{{Key: "prayer_id", Value: tt.prayerID}}

			GetPrayerItem(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)

			if tt.expectError {
				assert.Contains(t, response, "error")
			} else {
				assert.Equal(t, float64(1), response["prayerItemId"])
				assert.Equal(t, false, response["hasPrayedToday"])
			}
		})
	}
}

// Test GetPrayerItem - anonymous item viewed by a non-author member
func TestGetPrayerItemAnonymousMasking(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnRows(mockItemDetail(1, 10, 2, true))
	mock.ExpectQuery("SELECT").WillReturnRows(mockMembership(1, 10, "member"))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser())
	c.Params = []gin.Param{{Key: "prayer_id", Value: "1"}}

	GetPrayerItem(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	author := response["author"].(map[string]interface{})
	assert.Nil(t, author["id"])
	assert.Equal(t, "익명", author["name"])
	assert.Equal(t, false, response["isAuthor"])
}

// Test CreateGroupPrayerItem
func TestCreateGroupPrayerItem(t *testing.T) {
	tests := []struct {
		name           string
		groupID        string
		body           map[string]interface{}
		isMember       bool
		expectedStatus int
	}{
		{
			name:           "successful creation",
			groupID:        "10",
			body:           map[string]interface{}{"title": "New Prayer", "content": "Details here"},
			isMember:       true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "forbidden - not a group member",
			groupID:        "10",
			body:           map[string]interface{}{"title": "New Prayer", "content": "Details here"},
			isMember:       false,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid group ID",
			groupID:        "abc",
			body:           map[string]interface{}{"title": "New Prayer", "content": "Details here"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing title",
			groupID:        "10",
			body:           map[string]interface{}{"content": "Details here"},
			isMember:       true,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.groupID != "abc" && tt.body["title"] != nil {
				if tt.isMember {
					now := time.Now()
					mock.ExpectQuery("SELECT").WillReturnRows(mockMembership(1, 10, "member"))
					mock.ExpectQuery("INSERT").WillReturnRows(
						sqlmock.NewRows([]string{"prayer_item_id", "datetime_create", "datetime_update"}).
							AddRow(5, now, now),
					)
					mock.ExpectQuery("SELECT").WillReturnRows(
						sqlmock.NewRows([]string{"display_name"}).AddRow("Test User"),
					)
				} else {
					mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(membershipColumns))
				}
			}

			bodyBytes, _ := json.Marshal(tt.body)
			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockUser())
			c.Params = []gin.Param{{Key: "group_profile_id", Value: tt.groupID}}
			c.Request, _ = http.NewRequest("POST", "/groups/"+tt.groupID+"/prayers", bytes.NewBuffer(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			CreateGroupPrayerItem(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "Prayer item created successfully", response["message"])

				prayer := response["prayer"].(map[string]interface{})
				assert.Equal(t, float64(5), prayer["prayerItemId"])
				assert.Equal(t, "praying", prayer["status"])
				assert.Equal(t, true, prayer["isAuthor"])
			}
		})
	}
}

// Test GetGroupPrayerItems - pagination envelope
func TestGetGroupPrayerItems(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT").WillReturnRows(mockMembership(1, 10, "member"))
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	rows := sqlmock.NewRows(itemDetailColumns)
	rows.AddRow(2, 10, 2, "Second User", "Newer", "...", nil, "praying", false, now, now)
	rows.AddRow(1, 10, 1, "Test User", "Older", "...", nil, "answered", false, now.Add(-time.Hour), now)
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser())
	c.Params = []gin.Param{{Key: "group_profile_id", Value: "10"}}
	c.Request, _ = http.NewRequest("GET", "/groups/10/prayers?page=1&limit=2", nil)

	GetGroupPrayerItems(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(5), response["total"])
	assert.Equal(t, float64(1), response["page"])
	assert.Equal(t, float64(2), response["limit"])
	assert.Equal(t, float64(3), response["totalPages"])

	prayers := response["prayers"].([]interface{})
	assert.Len(t, prayers, 2)
}

// Test UpdatePrayerItemStatus
func TestUpdatePrayerItemStatus(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		actorIsAuthor  bool
		actorRole      string
		expectedStatus int
	}{
		{
			name:           "author updates status",
			status:         "answered",
			actorIsAuthor:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "group admin updates status",
			status:         "partial_answer",
			actorIsAuthor:  false,
			actorRole:      "admin",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "plain member denied",
			status:         "answered",
			actorIsAuthor:  false,
			actorRole:      "member",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "invalid status value",
			status:         "abandoned",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus != http.StatusBadRequest {
				authorID := 2
				if tt.actorIsAuthor {
					authorID = 1
				}
				mock.ExpectQuery("SELECT").WillReturnRows(mockItemDetail(1, 10, authorID, false))
				if !tt.actorIsAuthor {
					mock.ExpectQuery("SELECT").WillReturnRows(mockMembership(1, 10, tt.actorRole))
				}
				if tt.expectedStatus == http.StatusOK {
					mock.ExpectQuery("UPDATE").WillReturnRows(
						sqlmock.NewRows([]string{"datetime_update"}).AddRow(time.Now()),
					)
				}
			}

			bodyBytes, _ := json.Marshal(map[string]string{"status": tt.status})
			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockUser())
			c.Params = []gin.Param{{Key: "prayer_id", Value: "1"}}
			c.Request, _ = http.NewRequest("PATCH", "/prayers/1/status", bytes.NewBuffer(bodyBytes))
			c.Request.Header.Set("Content-Type", "application/json")

			UpdatePrayerItemStatus(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				prayer := response["prayer"].(map[string]interface{})
				assert.Equal(t, tt.status, prayer["status"])
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// Test DeletePrayerItem - author-only, admins get no special privilege
func TestDeletePrayerItem(t *testing.T) {
	tests := []struct {
		name           string
		actorIsAuthor  bool
		expectedStatus int
	}{
		{
			name:           "author deletes own item",
			actorIsAuthor:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-author denied",
			actorIsAuthor:  false,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			authorID := 2
			if tt.actorIsAuthor {
				authorID = 1
			}
			mock.ExpectQuery("SELECT").WillReturnRows(mockItemDetail(1, 10, authorID, false))
			if tt.actorIsAuthor {
				mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 1))
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockUser())
			c.Params = []gin.Param{{Key: "prayer_id", Value: "1"}}

			DeletePrayerItem(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
