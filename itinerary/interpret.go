package itinerary

import (
	"encoding/json"
	"fmt"

	"menara/models"
)

// Built-in stops used when the catalog itself is empty.
var defaultLandmarks = []models.CandidateActivity{
	{
		Name:        "Jardin Majorelle",
		Category:    "Garden",
		Description: "Botanical garden and villa painted in the famous Majorelle blue.",
		Location:    "Rue Yves Saint Laurent",
	},
	{
		Name:        "Place Jemaa el-Fna",
		Category:    "Landmark",
		Description: "The beating heart of the medina: food stalls, musicians and storytellers.",
		Location:    "Medina",
	},
	{
		Name:        "Palais de la Bahia",
		Category:    "Palace",
		Description: "Nineteenth-century palace with painted cedar ceilings and quiet courtyards.",
		Location:    "Rue Riad Zitoun el Jdid",
	},
	{
		Name:        "Mosquée Koutoubia",
		Category:    "Landmark",
		Description: "The largest mosque in Marrakech, its minaret visible across the city.",
		Location:    "Avenue Mohammed V",
	},
}

const (
	fallbackDuration = "2 hours"
	fallbackTip      = "Arrive early to avoid the crowds."
)

// Interpret always returns a usable itinerary. Model output is parsed when
// possible; any upstream failure or malformed response degrades to a
// synthesized plan built from the catalog.
func Interpret(raw string, genErr error, candidates []models.CandidateActivity) models.GeneratedItinerary {
	if genErr != nil {
		return synthesize(candidates)
	}

	jsonStr, ok := extractJSON(raw)
	if !ok {
		return synthesize(candidates)
	}

	var parsed models.GeneratedItinerary
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		return synthesize(candidates)
	}
	if len(parsed.Items) == 0 {
		return synthesize(candidates)
	}
	// Items keep the order the model produced; no chronological re-sort.
	return parsed
}

// extractJSON returns the first balanced top-level JSON object in s.
// Braces inside string literals are ignored.
func extractJSON(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		if start >= 0 && inString {
			if escaped {
				escaped = false
			} else if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
			continue
		}
		switch ch {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return "", false
}

// synthesize builds a deterministic itinerary straight from the catalog:
// up to 4 stops, featured first, padded with the rest in original order.
// An empty catalog uses the built-in landmark set.
func synthesize(candidates []models.CandidateActivity) models.GeneratedItinerary {
	selected := make([]models.CandidateActivity, 0, 4)
	for _, c := range candidates {
		if c.IsFeatured {
			selected = append(selected, c)
			if len(selected) == 4 {
				break
			}
		}
	}
	if len(selected) < 4 {
		for _, c := range candidates {
			if c.IsFeatured {
				continue
			}
			selected = append(selected, c)
			if len(selected) == 4 {
				break
			}
		}
	}
	if len(selected) == 0 {
		selected = defaultLandmarks
	}

	items := make([]models.GeneratedItineraryItem, 0, len(selected))
	for i, c := range selected {
		description := c.Description
		if description == "" {
			description = "A recommended stop on your day in Marrakech."
		}
		category := c.Category
		if category == "" {
			category = "Activity"
		}
		items = append(items, models.GeneratedItineraryItem{
			Time:         fmt.Sprintf("%02d:00", 9+3*i),
			ActivityName: c.Name,
			Location:     c.Location,
			Duration:     fallbackDuration,
			Description:  description,
			Category:     category,
			Tips:         fallbackTip,
		})
	}

	return models.GeneratedItinerary{
		Items:           items,
		Summary:         fmt.Sprintf("A day in Marrakech across %d hand-picked stops.", len(items)),
		TotalDuration:   "Full day",
		EstimatedBudget: "400-600 MAD per person",
	}
}
