package itinerary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"menara/db"
	"menara/models"
	"menara/utils"
)

// MatchCandidate resolves a generated activity name to a catalog id by
// case-insensitive substring containment in either direction. First match
// in iteration order wins; short generic names can match several candidates
// and that ambiguity is accepted — this is best-effort linking for display,
// not guaranteed-correct linking.
func MatchCandidate(name string, candidates []models.CandidateActivity) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	for _, c := range candidates {
		cn := strings.ToLower(c.Name)
		if strings.Contains(cn, needle) || strings.Contains(needle, cn) {
			return c.ActivityID, true
		}
	}
	return "", false
}

// SaveGenerated writes one header row and one row per item. A failed item
// insert after a successful header insert surfaces an error but leaves the
// header in place; the returned itinerary id lets the caller clean up.
func SaveGenerated(ctx context.Context, userID, preferences string, gen models.GeneratedItinerary, candidates []models.CandidateActivity) (models.Itinerary, error) {
	if userID == "" {
		return models.Itinerary{}, fmt.Errorf("missing user identity")
	}

	header := models.Itinerary{
		ItineraryID: utils.GetUUID(),
		UserID:      userID,
		Name:        "Marrakech itinerary " + time.Now().Format("2006-01-02"),
		Description: gen.Summary,
		Preferences: preferences,
		IsPublic:    false,
		CreatedAt:   time.Now(),
	}

	if _, err := db.ItineraryCollection.InsertOne(ctx, header); err != nil {
		return models.Itinerary{}, fmt.Errorf("header insert failed: %w", err)
	}

	for i, item := range gen.Items {
		var activityID *string
		if id, ok := MatchCandidate(item.ActivityName, candidates); ok {
			activityID = &id
		}

		notes := item.Description
		if item.Tips != "" {
			if notes != "" {
				notes += " Tip: " + item.Tips
			} else {
				notes = "Tip: " + item.Tips
			}
		}

		row := models.ItineraryItem{
			ItemID:      utils.GetUUID(),
			ItineraryID: header.ItineraryID,
			ActivityID:  activityID,
			DayNumber:   1,
			StartTime:   item.Time,
			OrderInDay:  i + 1,
			Notes:       notes,
		}

		if _, err := db.ItineraryItemCollection.InsertOne(ctx, row); err != nil {
			return header, fmt.Errorf("item %d insert failed (header %s kept): %w", i+1, header.ItineraryID, err)
		}
	}

	return header, nil
}
