package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

// newTestDB wraps a sqlmock connection in a goqu database for service
// tests.
func newTestDB(t *testing.T) (*goqu.Database, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	return goqu.New("postgres", db), mock, func() { db.Close() }
}

// fixedClock pins Now() so day-boundary behavior is deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// Column sets shared by the service tests.

var itemDetailColumns = []string{
	"prayer_item_id", "group_profile_id", "author_id", "author_name",
	"title", "content", "category", "status", "is_anonymous",
	"datetime_create", "datetime_update",
}

var membershipColumns = []string{
	"user_group_id", "user_profile_id", "group_profile_id", "group_role",
	"is_active", "datetime_create", "datetime_update",
}

func membershipRow(userID, groupID int, role string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(membershipColumns).
		AddRow(1, userID, groupID, role, true, now, now)
}

func emptyMembership() *sqlmock.Rows {
	return sqlmock.NewRows(membershipColumns)
}

func detailRow(itemID, groupID, authorID int, authorName string, anonymous bool, status string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(itemDetailColumns).
		AddRow(itemID, groupID, authorID, authorName, "For my family", "Please pray", nil, status, anonymous, now, now)
}

func emptyDetail() *sqlmock.Rows {
	return sqlmock.NewRows(itemDetailColumns)
}
