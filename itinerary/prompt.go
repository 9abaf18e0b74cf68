package itinerary

import (
	"fmt"
	"strings"

	"menara/models"
)

// BuildPrompt turns the user's free-text preferences and the candidate
// catalog into a single prompt. Pure transformation; the caller guarantees
// preferences is non-empty.
func BuildPrompt(preferences string, candidates []models.CandidateActivity) string {
	var listing strings.Builder
	for _, c := range candidates {
		line := fmt.Sprintf("- %s (category: %s", c.Name, c.Category)
		if c.Rating > 0 {
			line += fmt.Sprintf(", rating: %.1f", c.Rating)
		}
		line += ")"
		if c.Description != "" {
			line += " — " + c.Description
		}
		if c.Location != "" {
			line += " | location: " + c.Location
		}
		if c.Notes != "" {
			line += " | notes: " + c.Notes
		}
		listing.WriteString(line + "\n")
	}

	return fmt.Sprintf(`You are a Marrakech travel planner. Create a personalized one-day itinerary from the visitor's preferences, using ONLY the activities listed below.

Visitor preferences: %s

Available activities:
%s
Select 4 to 6 activities and order them by realistic time of day.
The "activity" values MUST exactly match the activity names from the list above.
Return the response STRICTLY as a single JSON object with:
{
"itinerary": [
    {
    "time": "HH:MM",
    "activity": "Exact name of the activity from the list",
    "location": "Where it is",
    "duration": "How long to spend there",
    "description": "1-2 sentences on what to do there",
    "category": "The activity's category",
    "tips": "One practical tip"
    }
],
"summary": "A short paragraph describing the day",
"total_duration": "Total time the plan covers",
"estimated_budget": "Rough budget for the day"
}`, preferences, listing.String())
}
