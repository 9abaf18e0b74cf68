package search

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("The gardens of the Majorelle and la Koutoubia")
	want := []string{"gardens", "majorelle", "koutoubia"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeDeduplicates(t *testing.T) {
	got := Tokenize("souk souk SOUK")
	if len(got) != 1 || got[0] != "souk" {
		t.Errorf("expected single token, got %v", got)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize("   "); got != nil {
		t.Errorf("expected nil for whitespace input, got %v", got)
	}
}
