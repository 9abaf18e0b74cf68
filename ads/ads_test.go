package ads

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetAdsFiltersByCategory(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/ads?category=spa", nil)
	rec := httptest.NewRecorder()

	GetAds(rec, req, nil)

	var got []Ad
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Category != "spa" {
		t.Errorf("expected one spa ad, got %v", got)
	}
}

func TestGetAdsDefaultReturnsAll(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/ads", nil)
	rec := httptest.NewRecorder()

	GetAds(rec, req, nil)

	var got []Ad
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(ads) {
		t.Errorf("expected %d ads, got %d", len(ads), len(got))
	}
}

func TestGetOffersUnknownCategoryEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/offers?category=nightclub", nil)
	rec := httptest.NewRecorder()

	GetOffers(rec, req, nil)

	var got []Offer
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
