package utils

import (
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	got := SplitTags("Spa, restaurant , SPA,, museum")
	want := []string{"spa", "restaurant", "museum"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitTags = %v, want %v", got, want)
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	if got := GenerateRandomString(13); len(got) != 13 {
		t.Errorf("expected length 13, got %d", len(got))
	}
}

func TestGetUUID(t *testing.T) {
	a, b := GetUUID(), GetUUID()
	if len(a) != 36 {
		t.Errorf("expected 36-char uuid, got %q", a)
	}
	if a == b {
		t.Error("expected distinct uuids")
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	if !ContainsIgnoreCase("Jardin Majorelle", "majorelle") {
		t.Error("expected case-insensitive match")
	}
	if ContainsIgnoreCase("Koutoubia", "bahia") {
		t.Error("unexpected match")
	}
}
