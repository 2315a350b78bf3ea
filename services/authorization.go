package services

import (
	"github.com/PrayCircle/models"
	"github.com/doug-martin/goqu/v9"
)

// AuthorizationService answers whether an actor may see or mutate a
// resource. Every check reads the membership row fresh; roles can change
// between requests, so nothing is cached.
type AuthorizationService struct {
	db *goqu.Database
}

func NewAuthorizationService(db *goqu.Database) *AuthorizationService {
	return &AuthorizationService{db: db}
}

// GetMembership resolves the active membership of a user in a group.
func (s *AuthorizationService) GetMembership(userID, groupID int) (models.Membership, bool, error) {
	var membership models.Membership
	found, err := s.db.From("user_group").
		Where(
			goqu.C("user_profile_id").Eq(userID),
			goqu.C("group_profile_id").Eq(groupID),
			goqu.C("is_active").IsTrue(),
		).
		ScanStruct(&membership)
	if err != nil {
		return models.Membership{}, false, Internal("failed to look up membership", err)
	}
	return membership, found, nil
}

// CanView reports whether the user is a member of the group, any role.
func (s *AuthorizationService) CanView(userID, groupID int) (bool, error) {
	_, found, err := s.GetMembership(userID, groupID)
	return found, err
}

// CanCreate reports whether the user may post a prayer item into the group.
func (s *AuthorizationService) CanCreate(userID, groupID int) (bool, error) {
	return s.CanView(userID, groupID)
}

// CanReact reports whether the user may record a prayer reaction on an
// item in the group. Same rule as viewing; the author may react too.
func (s *AuthorizationService) CanReact(userID, groupID int) (bool, error) {
	return s.CanView(userID, groupID)
}

// CanChangeStatus reports whether the user may change an item's status:
// the author always, otherwise a group admin.
func (s *AuthorizationService) CanChangeStatus(userID, authorID, groupID int) (bool, error) {
	if userID == authorID {
		return true, nil
	}
	membership, found, err := s.GetMembership(userID, groupID)
	if err != nil {
		return false, err
	}
	return found && membership.Group_Role == models.RoleAdmin, nil
}

// CanDeleteItem reports whether the user may delete an item. Delete is
// strictly author-only; group admins do not get it.
func (s *AuthorizationService) CanDeleteItem(userID, authorID int) bool {
	return userID == authorID
}

// CanModifyUpdates reports whether the user may post or delete progress
// updates on an item. Author-only, regardless of group role.
func (s *AuthorizationService) CanModifyUpdates(userID, authorID int) bool {
	return userID == authorID
}
