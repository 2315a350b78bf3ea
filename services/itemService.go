package services

import (
	"time"

	"github.com/PrayCircle/models"
	"github.com/doug-martin/goqu/v9"
)

const defaultPageLimit = 20

// PrayerItemService orchestrates the prayer item use cases. Every call
// runs the same fixed pipeline: resolve existence, authorize, touch the
// store, project for the viewer. Authorization failures never leave a
// partial write behind.
type PrayerItemService struct {
	db     *goqu.Database
	auth   *AuthorizationService
	ledger *ReactionLedger
	clock  Clock
}

func NewPrayerItemService(db *goqu.Database, clock Clock) *PrayerItemService {
	return &PrayerItemService{
		db:     db,
		auth:   NewAuthorizationService(db),
		ledger: NewReactionLedger(db, clock),
		clock:  clock,
	}
}

func (s *PrayerItemService) itemColumns() []interface{} {
	return []interface{}{
		goqu.I("prayer_item.prayer_item_id"),
		goqu.I("prayer_item.group_profile_id"),
		goqu.I("prayer_item.author_id"),
		goqu.I("user_profile.display_name").As("author_name"),
		goqu.I("prayer_item.title"),
		goqu.I("prayer_item.content"),
		goqu.I("prayer_item.category"),
		goqu.I("prayer_item.status"),
		goqu.I("prayer_item.is_anonymous"),
		goqu.I("prayer_item.datetime_create"),
		goqu.I("prayer_item.datetime_update"),
	}
}

// FetchDetail loads one item joined with its author's display name.
// Existence must be resolved through this before any permission check,
// so a non-member gets the same NotFound as everyone else for a missing
// id and the check has a group to authorize against.
func (s *PrayerItemService) FetchDetail(itemID int) (models.PrayerItemDetail, bool, error) {
	var detail models.PrayerItemDetail
	found, err := s.db.From("prayer_item").
		Select(s.itemColumns()...).
		Join(
			goqu.T("user_profile"),
			goqu.On(goqu.I("prayer_item.author_id").Eq(goqu.I("user_profile.user_profile_id"))),
		).
		Where(goqu.I("prayer_item.prayer_item_id").Eq(itemID)).
		ScanStruct(&detail)
	if err != nil {
		return models.PrayerItemDetail{}, false, Internal("failed to fetch prayer item", err)
	}
	return detail, found, nil
}

// Create inserts a new prayer item authored by authorID into the group
// and returns it projected for the author.
func (s *PrayerItemService) Create(authorID, groupID int, input models.PrayerItemCreate) (models.ViewItem, error) {
	allowed, err := s.auth.CanCreate(authorID, groupID)
	if err != nil {
		return models.ViewItem{}, err
	}
	if !allowed {
		return models.ViewItem{}, Forbidden("You are not a member of this group")
	}

	isAnonymous := false
	if input.Is_Anonymous != nil {
		isAnonymous = *input.Is_Anonymous
	}

	item := models.PrayerItem{
		Group_Profile_ID: groupID,
		Author_ID:        authorID,
		Title:            input.Title,
		Content:          input.Content,
		Category:         input.Category,
		Status:           models.StatusPraying,
		Is_Anonymous:     isAnonymous,
	}

	insert := s.db.Insert("prayer_item").
		Rows(item).
		Returning("prayer_item_id", "datetime_create", "datetime_update")

	var inserted models.PrayerItem
	if _, err := insert.Executor().ScanStruct(&inserted); err != nil {
		return models.ViewItem{}, Internal("failed to create prayer item", err)
	}

	var authorName string
	if _, err := s.db.From("user_profile").
		Select("display_name").
		Where(goqu.C("user_profile_id").Eq(authorID)).
		ScanVal(&authorName); err != nil {
		return models.ViewItem{}, Internal("failed to fetch author name", err)
	}

	detail := models.PrayerItemDetail{
		Prayer_Item_ID:   inserted.Prayer_Item_ID,
		Group_Profile_ID: groupID,
		Author_ID:        authorID,
		Author_Name:      authorName,
		Title:            item.Title,
		Content:          item.Content,
		Category:         item.Category,
		Status:           item.Status,
		Is_Anonymous:     item.Is_Anonymous,
		Datetime_Create:  inserted.Datetime_Create,
		Datetime_Update:  inserted.Datetime_Update,
	}
	return ProjectItem(detail, authorID), nil
}

// Get returns one item projected for the viewer, with the viewer's
// hasPrayedToday flag merged in.
func (s *PrayerItemService) Get(viewerID, itemID int) (models.ViewItem, error) {
	detail, found, err := s.FetchDetail(itemID)
	if err != nil {
		return models.ViewItem{}, err
	}
	if !found {
		return models.ViewItem{}, NotFound("Prayer item not found")
	}

	allowed, err := s.auth.CanView(viewerID, detail.Group_Profile_ID)
	if err != nil {
		return models.ViewItem{}, err
	}
	if !allowed {
		return models.ViewItem{}, Forbidden("You do not have access to this prayer item")
	}

	hasPrayed, err := s.ledger.HasReactedToday(itemID, viewerID)
	if err != nil {
		return models.ViewItem{}, err
	}

	view := ProjectItem(detail, viewerID)
	view.HasPrayedToday = &hasPrayed
	return view, nil
}

// ListByGroup returns one page of the group's items, newest first,
// projected for the viewer, plus the pagination envelope.
func (s *PrayerItemService) ListByGroup(viewerID, groupID, page, limit int) ([]models.ViewItem, models.PageInfo, error) {
	allowed, err := s.auth.CanView(viewerID, groupID)
	if err != nil {
		return nil, models.PageInfo{}, err
	}
	if !allowed {
		return nil, models.PageInfo{}, Forbidden("You are not a member of this group")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	var total int64
	if _, err := s.db.From("prayer_item").
		Select(goqu.COUNT("*")).
		Where(goqu.C("group_profile_id").Eq(groupID)).
		ScanVal(&total); err != nil {
		return nil, models.PageInfo{}, Internal("failed to count prayer items", err)
	}

	var details []models.PrayerItemDetail
	err = s.db.From("prayer_item").
		Select(s.itemColumns()...).
		Join(
			goqu.T("user_profile"),
			goqu.On(goqu.I("prayer_item.author_id").Eq(goqu.I("user_profile.user_profile_id"))),
		).
		Where(goqu.I("prayer_item.group_profile_id").Eq(groupID)).
		Order(goqu.I("prayer_item.datetime_create").Desc()).
		Offset(uint((page - 1) * limit)).
		Limit(uint(limit)).
		ScanStructs(&details)
	if err != nil {
		return nil, models.PageInfo{}, Internal("failed to fetch prayer items", err)
	}

	return ProjectItems(details, viewerID), models.NewPageInfo(int(total), page, limit), nil
}

// UpdateStatus sets an item's status. Author or group admin only; any
// status may replace any other.
func (s *PrayerItemService) UpdateStatus(actorID, itemID int, status models.PrayerStatus) (models.ViewItem, error) {
	detail, found, err := s.FetchDetail(itemID)
	if err != nil {
		return models.ViewItem{}, err
	}
	if !found {
		return models.ViewItem{}, NotFound("Prayer item not found")
	}

	allowed, err := s.auth.CanChangeStatus(actorID, detail.Author_ID, detail.Group_Profile_ID)
	if err != nil {
		return models.ViewItem{}, err
	}
	if !allowed {
		return models.ViewItem{}, Forbidden("Only the author or a group admin can change the status")
	}

	update := s.db.Update("prayer_item").
		Set(goqu.Record{
			"status":          status,
			"datetime_update": goqu.L("NOW()"),
		}).
		Where(goqu.C("prayer_item_id").Eq(itemID)).
		Returning("datetime_update")

	var updatedAt time.Time
	if _, err := update.Executor().ScanVal(&updatedAt); err != nil {
		return models.ViewItem{}, Internal("failed to update prayer item status", err)
	}

	detail.Status = status
	detail.Datetime_Update = updatedAt
	return ProjectItem(detail, actorID), nil
}

// Delete removes an item and, via cascade, its reactions and updates.
// Strictly author-only.
func (s *PrayerItemService) Delete(actorID, itemID int) error {
	detail, found, err := s.FetchDetail(itemID)
	if err != nil {
		return err
	}
	if !found {
		return NotFound("Prayer item not found")
	}

	if !s.auth.CanDeleteItem(actorID, detail.Author_ID) {
		return Forbidden("Only the author can delete a prayer item")
	}

	deleteStmt := s.db.Delete("prayer_item").
		Where(goqu.C("prayer_item_id").Eq(itemID))

	if _, err := deleteStmt.Executor().Exec(); err != nil {
		return Internal("failed to delete prayer item", err)
	}
	return nil
}
