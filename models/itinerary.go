package models

import "time"

// CandidateActivity is a read-only snapshot of a catalog entry handed to the
// generation pipeline as context. Constructed fresh per request, never
// mutated.
type CandidateActivity struct {
	ActivityID  string  `json:"activityid"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	IsFeatured  bool    `json:"is_featured"`
}

// GeneratedItineraryItem is one scheduled stop. ActivityName should match a
// candidate name exactly, but the model hallucinates; persistence tolerates
// mismatch.
type GeneratedItineraryItem struct {
	Time         string `json:"time"`
	ActivityName string `json:"activity"`
	Location     string `json:"location,omitempty"`
	Duration     string `json:"duration,omitempty"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category,omitempty"`
	Tips         string `json:"tips,omitempty"`
}

// GeneratedItinerary is what the interpreter always returns, whether parsed
// from model output or synthesized from the catalog.
type GeneratedItinerary struct {
	Items           []GeneratedItineraryItem `json:"itinerary"`
	Summary         string                   `json:"summary"`
	TotalDuration   string                   `json:"total_duration"`
	EstimatedBudget string                   `json:"estimated_budget"`
}

// Itinerary is the persisted header record owned by a user.
type Itinerary struct {
	ItineraryID string    `json:"itineraryid" bson:"itineraryid"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Preferences string    `json:"preferences" bson:"preferences"`
	IsPublic    bool      `json:"is_public" bson:"is_public"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// ItineraryItem is one ordered row under an itinerary header. ActivityID is
// nil when no catalog entry could be linked.
type ItineraryItem struct {
	ItemID      string  `json:"itemid" bson:"itemid"`
	ItineraryID string  `json:"itinerary_id" bson:"itinerary_id"`
	ActivityID  *string `json:"activity_id" bson:"activity_id"`
	DayNumber   int     `json:"day_number" bson:"day_number"`
	StartTime   string  `json:"start_time" bson:"start_time"`
	OrderInDay  int     `json:"order_in_day" bson:"order_in_day"`
	Notes       string  `json:"notes,omitempty" bson:"notes,omitempty"`
}
