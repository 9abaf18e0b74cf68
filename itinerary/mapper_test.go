package itinerary

import (
	"testing"

	"menara/models"
)

func TestMatchCandidateExact(t *testing.T) {
	id, ok := MatchCandidate("Jardin Majorelle", candidateSet())
	if !ok || id != "a1" {
		t.Fatalf("expected a1, got %q (ok=%v)", id, ok)
	}
}

func TestMatchCandidateSubstring(t *testing.T) {
	// item name is a substring of the candidate name
	id, ok := MatchCandidate("Hammam", candidateSet())
	if !ok || id != "a4" {
		t.Fatalf("expected a4, got %q (ok=%v)", id, ok)
	}

	// candidate name is a substring of the item name
	id, ok = MatchCandidate("Dinner at Café des Épices", candidateSet())
	if !ok || id != "a5" {
		t.Fatalf("expected a5, got %q (ok=%v)", id, ok)
	}
}

func TestMatchCandidateCaseInsensitive(t *testing.T) {
	id, ok := MatchCandidate("souk semmarine", candidateSet())
	if !ok || id != "a6" {
		t.Fatalf("expected a6, got %q (ok=%v)", id, ok)
	}
}

func TestMatchCandidateFirstMatchWins(t *testing.T) {
	// "Jardin" matches both a1 and a2; iteration order decides
	id, ok := MatchCandidate("Jardin", candidateSet())
	if !ok || id != "a1" {
		t.Fatalf("expected first match a1, got %q (ok=%v)", id, ok)
	}
}

func TestMatchCandidateNoMatch(t *testing.T) {
	if id, ok := MatchCandidate("Tour Eiffel", candidateSet()); ok {
		t.Fatalf("expected no match, got %q", id)
	}
	if id, ok := MatchCandidate("   ", candidateSet()); ok {
		t.Fatalf("expected no match for blank name, got %q", id)
	}
}

func TestMatchCandidateEmptySet(t *testing.T) {
	if id, ok := MatchCandidate("Jardin Majorelle", []models.CandidateActivity{}); ok {
		t.Fatalf("expected no match against empty set, got %q", id)
	}
}
