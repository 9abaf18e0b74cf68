package itinerary

import (
	"strings"
	"testing"
)

func TestBuildPromptContainsPreferencesAndCandidates(t *testing.T) {
	prefs := "2 jours, culture et gastronomie"
	prompt := BuildPrompt(prefs, candidateSet())

	if !strings.Contains(prompt, prefs) {
		t.Error("prompt missing verbatim preference text")
	}
	for _, c := range candidateSet() {
		if !strings.Contains(prompt, c.Name) {
			t.Errorf("prompt missing candidate %q", c.Name)
		}
	}
	if !strings.Contains(prompt, "STRICTLY as a single JSON object") {
		t.Error("prompt missing strict JSON instruction")
	}
	if !strings.Contains(prompt, "MUST exactly match") {
		t.Error("prompt missing exact-name instruction")
	}
	if !strings.Contains(prompt, "4 to 6") {
		t.Error("prompt missing item count instruction")
	}
}

func TestBuildPromptEmptyCandidates(t *testing.T) {
	prompt := BuildPrompt("budget trip", nil)

	if !strings.Contains(prompt, "budget trip") {
		t.Error("prompt missing preference text")
	}
	if !strings.Contains(prompt, "Available activities:") {
		t.Error("prompt missing activity section header")
	}
}
