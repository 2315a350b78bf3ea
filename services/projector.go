package services

import "github.com/PrayCircle/models"

// AnonymousLabel is the display name substituted for the author of an
// anonymous prayer item when anyone but the author is looking.
const AnonymousLabel = "익명"

// ProjectItem maps a stored prayer item to its view-safe representation
// for one viewer. The same item projects differently for different
// viewers in the same instant; nothing about anonymity is baked into
// storage.
func ProjectItem(item models.PrayerItemDetail, viewerID int) models.ViewItem {
	isAuthor := viewerID == item.Author_ID

	author := models.ViewAuthor{Name: AnonymousLabel}
	if !item.Is_Anonymous || isAuthor {
		authorID := item.Author_ID
		author = models.ViewAuthor{ID: &authorID, Name: item.Author_Name}
	}

	return models.ViewItem{
		PrayerItemID:   item.Prayer_Item_ID,
		GroupID:        item.Group_Profile_ID,
		Author:         author,
		Title:          item.Title,
		Content:        item.Content,
		Category:       item.Category,
		Status:         item.Status,
		IsAnonymous:    item.Is_Anonymous,
		IsAuthor:       isAuthor,
		DatetimeCreate: item.Datetime_Create,
		DatetimeUpdate: item.Datetime_Update,
	}
}

// ProjectItems projects a list for one viewer, preserving input order.
func ProjectItems(items []models.PrayerItemDetail, viewerID int) []models.ViewItem {
	views := make([]models.ViewItem, 0, len(items))
	for _, item := range items {
		views = append(views, ProjectItem(item, viewerID))
	}
	return views
}
