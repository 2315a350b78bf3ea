package services

import (
	"github.com/PrayCircle/models"
	"github.com/doug-martin/goqu/v9"
)

// ReactionService orchestrates the "pray" use cases on top of the
// reaction ledger.
type ReactionService struct {
	items  *PrayerItemService
	auth   *AuthorizationService
	ledger *ReactionLedger
}

func NewReactionService(db *goqu.Database, clock Clock) *ReactionService {
	return &ReactionService{
		items:  NewPrayerItemService(db, clock),
		auth:   NewAuthorizationService(db),
		ledger: NewReactionLedger(db, clock),
	}
}

// React records that the actor prayed for the item today and returns the
// item's all-time prayer count. A second call within the same calendar
// day surfaces AlreadyReacted and writes nothing.
func (s *ReactionService) React(actorID, itemID int) (int, models.PrayerItemDetail, error) {
	detail, found, err := s.items.FetchDetail(itemID)
	if err != nil {
		return 0, models.PrayerItemDetail{}, err
	}
	if !found {
		return 0, models.PrayerItemDetail{}, NotFound("Prayer item not found")
	}

	allowed, err := s.auth.CanReact(actorID, detail.Group_Profile_ID)
	if err != nil {
		return 0, models.PrayerItemDetail{}, err
	}
	if !allowed {
		return 0, models.PrayerItemDetail{}, Forbidden("You do not have access to this prayer item")
	}

	count, err := s.ledger.RecordReaction(itemID, actorID)
	if err != nil {
		return 0, models.PrayerItemDetail{}, err
	}
	return count, detail, nil
}

// Reactors returns the full reaction history for an item, gated on the
// viewer's group membership.
func (s *ReactionService) Reactors(viewerID, itemID int) ([]models.Reactor, error) {
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

	return s.ledger.Reactors(itemID)
}
