package services

import (
	"fmt"
	"log"

	"github.com/PrayCircle/initializers"
	"github.com/PrayCircle/models"
	"github.com/doug-martin/goqu/v9"
)

// authorLabel is the name used for the item's author in notification
// bodies. Anonymity masking applies here the same as in projections:
// other members must not learn who posted an anonymous item through a
// push notification.
func authorLabel(item models.PrayerItemDetail) string {
	if item.Is_Anonymous {
		return AnonymousLabel
	}
	return item.Author_Name
}

// activeMemberIDs returns the user ids of a group's active members,
// except the excluded user.
func activeMemberIDs(groupID, excludeUserID int) ([]int, error) {
	var memberIDs []int
	err := initializers.DB.From("user_group").
		Select("user_profile_id").
		Where(
			goqu.C("group_profile_id").Eq(groupID),
			goqu.C("user_profile_id").Neq(excludeUserID),
			goqu.C("is_active").IsTrue(),
		).
		ScanVals(&memberIDs)
	return memberIDs, err
}

// NotifyGroupOfNewItem tells the other group members that a prayer item
// was posted. Fire-and-forget: runs only after the item is committed and
// never affects the caller's response.
func NotifyGroupOfNewItem(item models.PrayerItemDetail) {
	if GetPushNotificationService() == nil {
		return
	}

	memberIDs, err := activeMemberIDs(item.Group_Profile_ID, item.Author_ID)
	if err != nil {
		log.Printf("Failed to fetch group members for notification: %v", err)
		return
	}
	if len(memberIDs) == 0 {
		return
	}

	payload := NotificationPayload{
		Title: "New prayer request",
		Body:  fmt.Sprintf("%s shared a prayer request: %s", authorLabel(item), item.Title),
		Data: map[string]string{
			"type":         "prayer_item_created",
			"prayerItemId": fmt.Sprintf("%d", item.Prayer_Item_ID),
			"groupId":      fmt.Sprintf("%d", item.Group_Profile_ID),
		},
	}
	GetPushNotificationService().SendNotificationToUsers(memberIDs, payload)
}

// NotifyAuthorOfReaction tells the author that someone prayed for their
// item today. The reactor keeps their name; only authors are masked.
func NotifyAuthorOfReaction(item models.PrayerItemDetail, reactorID int) {
	if GetPushNotificationService() == nil {
		return
	}
	// Praying for your own item is not news.
	if reactorID == item.Author_ID {
		return
	}

	var reactorName string
	_, err := initializers.DB.From("user_profile").
		Select("display_name").
		Where(goqu.C("user_profile_id").Eq(reactorID)).
		ScanVal(&reactorName)
	if err != nil {
		log.Printf("Failed to fetch reactor name for notification: %v", err)
		return
	}

	payload := NotificationPayload{
		Title: "Someone prayed for you",
		Body:  fmt.Sprintf("%s prayed for: %s", reactorName, item.Title),
		Data: map[string]string{
			"type":         "prayer_reaction",
			"prayerItemId": fmt.Sprintf("%d", item.Prayer_Item_ID),
		},
	}
	if err := GetPushNotificationService().SendNotificationToUser(item.Author_ID, payload); err != nil {
		log.Printf("Failed to notify author %d: %v", item.Author_ID, err)
	}
}
