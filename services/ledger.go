package services

import (
	"github.com/PrayCircle/models"
	"github.com/doug-martin/goqu/v9"
)

// ReactionLedger is the append-only history of "I prayed for this"
// actions. A unique constraint on (prayer_item_id, user_profile_id,
// reacted_at) together with day-bucketed timestamps enforces at most one
// reaction per user per item per calendar day, even under concurrent
// requests.
type ReactionLedger struct {
	db    *goqu.Database
	clock Clock
}

func NewReactionLedger(db *goqu.Database, clock Clock) *ReactionLedger {
	return &ReactionLedger{db: db, clock: clock}
}

// HasReactedToday reports whether the user already has a ledger entry
// for this item within the current day window.
func (l *ReactionLedger) HasReactedToday(itemID, userID int) (bool, error) {
	bucket := DayBucket(l.clock.Now())

	var count int64
	_, err := l.db.From("prayer_reaction").
		Select(goqu.COUNT("*")).
		Where(
			goqu.C("prayer_item_id").Eq(itemID),
			goqu.C("user_profile_id").Eq(userID),
			goqu.C("reacted_at").Gte(bucket),
		).
		ScanVal(&count)
	if err != nil {
		return false, Internal("failed to check today's reactions", err)
	}
	return count > 0, nil
}

// RecordReaction appends today's ledger entry for (item, user) and
// returns the item's all-time reaction count. The insert and the
// duplicate check are one statement: ON CONFLICT DO NOTHING on the
// day-bucket unique key, so a concurrent duplicate loses at the store
// rather than racing a separate existence check. A duplicate surfaces
// as AlreadyReacted and writes nothing.
func (l *ReactionLedger) RecordReaction(itemID, userID int) (int, error) {
	bucket := DayBucket(l.clock.Now())

	insert := l.db.Insert("prayer_reaction").
		Rows(goqu.Record{
			"prayer_item_id":  itemID,
			"user_profile_id": userID,
			"reacted_at":      bucket,
		}).
		OnConflict(goqu.DoNothing()).
		Returning("prayer_reaction_id")

	var insertedID int
	inserted, err := insert.Executor().ScanVal(&insertedID)
	if err != nil {
		return 0, Internal("failed to record reaction", err)
	}
	if !inserted {
		return 0, AlreadyReacted("You have already prayed for this item today")
	}

	var count int64
	_, err = l.db.From("prayer_reaction").
		Select(goqu.COUNT("*")).
		Where(goqu.C("prayer_item_id").Eq(itemID)).
		ScanVal(&count)
	if err != nil {
		return 0, Internal("failed to count reactions", err)
	}
	return int(count), nil
}

// Reactors returns the full reaction history for an item, most recent
// first, joined with display names. One row per reaction, not per user:
// someone who prayed on three days appears three times.
func (l *ReactionLedger) Reactors(itemID int) ([]models.Reactor, error) {
	var reactors []models.Reactor
	err := l.db.From("prayer_reaction").
		Select(
			goqu.I("prayer_reaction.user_profile_id"),
			goqu.I("user_profile.display_name"),
			goqu.I("prayer_reaction.reacted_at"),
		).
		Join(
			goqu.T("user_profile"),
			goqu.On(goqu.I("prayer_reaction.user_profile_id").Eq(goqu.I("user_profile.user_profile_id"))),
		).
		Where(goqu.I("prayer_reaction.prayer_item_id").Eq(itemID)).
		Order(goqu.I("prayer_reaction.reacted_at").Desc()).
		ScanStructs(&reactors)
	if err != nil {
		return nil, Internal("failed to fetch reactors", err)
	}
	if reactors == nil {
		reactors = []models.Reactor{}
	}
	return reactors, nil
}
