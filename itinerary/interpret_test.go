package itinerary

import (
	"errors"
	"testing"

	"menara/models"
)

func candidateSet() []models.CandidateActivity {
	return []models.CandidateActivity{
		{ActivityID: "a1", Name: "Jardin Majorelle", Category: "Garden", IsFeatured: false},
		{ActivityID: "a2", Name: "Le Jardin Secret", Category: "Garden", IsFeatured: true},
		{ActivityID: "a3", Name: "Musée Yves Saint Laurent", Category: "Museum", IsFeatured: false},
		{ActivityID: "a4", Name: "Hammam de la Rose", Category: "Spa", IsFeatured: true},
		{ActivityID: "a5", Name: "Café des Épices", Category: "Restaurant", IsFeatured: false},
		{ActivityID: "a6", Name: "Souk Semmarine", Category: "Shop", IsFeatured: false},
	}
}

func TestInterpretUpstreamFailureFallsBack(t *testing.T) {
	gen := Interpret("", errors.New("boom"), candidateSet())

	if len(gen.Items) != 4 {
		t.Fatalf("expected 4 fallback items, got %d", len(gen.Items))
	}
	if gen.Summary == "" {
		t.Error("fallback itinerary missing summary")
	}
}

func TestInterpretEmptyCandidatesUsesLandmarks(t *testing.T) {
	gen := Interpret("", errors.New("boom"), nil)

	if len(gen.Items) != 4 {
		t.Fatalf("expected 4 landmark items, got %d", len(gen.Items))
	}

	found := false
	for _, item := range gen.Items {
		if item.ActivityName == "Jardin Majorelle" {
			found = true
		}
	}
	if !found {
		t.Error("expected Jardin Majorelle in the built-in landmark set")
	}
}

func TestInterpretFeaturedFirst(t *testing.T) {
	gen := Interpret("garbage with no json", nil, candidateSet())

	if len(gen.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(gen.Items))
	}
	// both featured candidates come before any non-featured ones
	if gen.Items[0].ActivityName != "Le Jardin Secret" || gen.Items[1].ActivityName != "Hammam de la Rose" {
		t.Errorf("featured candidates not first: %q, %q", gen.Items[0].ActivityName, gen.Items[1].ActivityName)
	}
	// padding preserves original order
	if gen.Items[2].ActivityName != "Jardin Majorelle" {
		t.Errorf("expected padding in original order, got %q", gen.Items[2].ActivityName)
	}
}

func TestInterpretSmallCandidateList(t *testing.T) {
	small := candidateSet()[:2]
	gen := Interpret("", errors.New("down"), small)

	if len(gen.Items) != 2 {
		t.Fatalf("expected item count to equal candidate count, got %d", len(gen.Items))
	}
}

func TestInterpretFallbackTimeSlots(t *testing.T) {
	gen := Interpret("", errors.New("down"), candidateSet())

	want := []string{"09:00", "12:00", "15:00", "18:00"}
	for i, item := range gen.Items {
		if item.Time != want[i] {
			t.Errorf("item %d: expected time %s, got %s", i, want[i], item.Time)
		}
		if item.Duration != fallbackDuration {
			t.Errorf("item %d: expected duration %q, got %q", i, fallbackDuration, item.Duration)
		}
	}
}

func TestInterpretParsesJSONWithSurroundingProse(t *testing.T) {
	raw := `Voici votre itinéraire: {"itinerary":[{"time":"09:00","activity":"Jardin Majorelle","location":"Rue Yves Saint Laurent","duration":"2 hours","description":"Stroll the gardens.","category":"Garden","tips":"Go early."}],"summary":"Une belle journée.","total_duration":"Full day","estimated_budget":"500 MAD"} Merci!`

	gen := Interpret(raw, nil, candidateSet())

	if len(gen.Items) != 1 {
		t.Fatalf("expected 1 parsed item, got %d", len(gen.Items))
	}
	if gen.Items[0].ActivityName != "Jardin Majorelle" {
		t.Errorf("expected parsed activity name, got %q", gen.Items[0].ActivityName)
	}
	if gen.Summary != "Une belle journée." {
		t.Errorf("expected parsed summary, got %q", gen.Summary)
	}
}

func TestInterpretUnbalancedBracesFallsBack(t *testing.T) {
	gen := Interpret(`{"itinerary":[{"time":"09:00"`, nil, candidateSet())

	if len(gen.Items) != 4 {
		t.Fatalf("expected fallback on unbalanced JSON, got %d items", len(gen.Items))
	}
}

func TestInterpretEmptyParsedItemsFallsBack(t *testing.T) {
	gen := Interpret(`{"itinerary":[],"summary":"empty"}`, nil, candidateSet())

	if len(gen.Items) != 4 {
		t.Fatalf("expected fallback on empty parsed item list, got %d items", len(gen.Items))
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around", `before {"a":{"b":2}} after`, `{"a":{"b":2}}`, true},
		{"brace in string", `{"a":"}"}`, `{"a":"}"}`, true},
		{"escaped quote", `{"a":"\"}"}`, `{"a":"\"}"}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"no object", `nothing here`, "", false},
	}

	for _, tt := range tests {
		got, ok := extractJSON(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%s: extractJSON(%q) = %q, %v; want %q, %v", tt.name, tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
