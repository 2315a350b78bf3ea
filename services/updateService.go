package services

import (
	"github.com/PrayCircle/models"
	"github.com/doug-martin/goqu/v9"
)

// PrayerUpdateService orchestrates progress updates on prayer items.
// Both creating and deleting an update are author-only operations; group
// admins get no special privilege here.
type PrayerUpdateService struct {
	items *PrayerItemService
	auth  *AuthorizationService
	db    *goqu.Database
}

func NewPrayerUpdateService(db *goqu.Database, clock Clock) *PrayerUpdateService {
	return &PrayerUpdateService{
		items: NewPrayerItemService(db, clock),
		auth:  NewAuthorizationService(db),
		db:    db,
	}
}

// Create attaches a progress update to the item.
func (s *PrayerUpdateService) Create(actorID, itemID int, input models.PrayerUpdateCreate) (models.PrayerUpdate, error) {
	detail, found, err := s.items.FetchDetail(itemID)
	if err != nil {
		return models.PrayerUpdate{}, err
	}
	if !found {
		return models.PrayerUpdate{}, NotFound("Prayer item not found")
	}

	if !s.auth.CanModifyUpdates(actorID, detail.Author_ID) {
		return models.PrayerUpdate{}, Forbidden("Only the author can post updates")
	}

	update := models.PrayerUpdate{
		Prayer_Item_ID: itemID,
		Content:        input.Content,
	}

	insert := s.db.Insert("prayer_update").
		Rows(update).
		Returning("prayer_update_id", "datetime_create")

	var inserted models.PrayerUpdate
	if _, err := insert.Executor().ScanStruct(&inserted); err != nil {
		return models.PrayerUpdate{}, Internal("failed to create prayer update", err)
	}

	update.Prayer_Update_ID = inserted.Prayer_Update_ID
	update.Datetime_Create = inserted.Datetime_Create
	return update, nil
}

// Delete removes a progress update from the item.
func (s *PrayerUpdateService) Delete(actorID, itemID, updateID int) error {
	detail, found, err := s.items.FetchDetail(itemID)
	if err != nil {
		return err
	}
	if !found {
		return NotFound("Prayer item not found")
	}

	if !s.auth.CanModifyUpdates(actorID, detail.Author_ID) {
		return Forbidden("Only the author can delete updates")
	}

	deleteStmt := s.db.Delete("prayer_update").
		Where(
			goqu.C("prayer_update_id").Eq(updateID),
			goqu.C("prayer_item_id").Eq(itemID),
		)

	result, err := deleteStmt.Executor().Exec()
	if err != nil {
		return Internal("failed to delete prayer update", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return NotFound("Prayer update not found")
	}
	return nil
}

// ListForItem returns an item's updates, oldest first, gated on group
// membership like any other read of the item.
func (s *PrayerUpdateService) ListForItem(viewerID, itemID int) ([]models.PrayerUpdate, error) {
	detail, found, err := s.items.FetchDetail(itemID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, NotFound("Prayer item not found")
	}

	allowed, err := s.auth.CanView(viewerID, detail.Group_Profile_ID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, Forbidden("You do not have access to this prayer item")
	}

	var updates []models.PrayerUpdate
	err = s.db.From("prayer_update").
		Where(goqu.C("prayer_item_id").Eq(itemID)).
		Order(goqu.I("datetime_create").Asc()).
		ScanStructs(&updates)
	if err != nil {
		return nil, Internal("failed to fetch prayer updates", err)
	}
	if updates == nil {
		updates = []models.PrayerUpdate{}
	}
	return updates, nil
}
