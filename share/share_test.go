package share

import (
	"strings"
	"testing"
)

func TestSharePayloadRoundTrip(t *testing.T) {
	payload := BuildSharePayload("activity", "abc123")

	entityType, entityID, ok := VerifySharePayload(payload)
	if !ok {
		t.Fatal("expected valid signature")
	}
	if entityType != "activity" || entityID != "abc123" {
		t.Errorf("got %q/%q, want activity/abc123", entityType, entityID)
	}
}

func TestSharePayloadTamperDetected(t *testing.T) {
	payload := BuildSharePayload("itinerary", "xyz")
	tampered := strings.Replace(payload, "xyz", "zzz", 1)

	if _, _, ok := VerifySharePayload(tampered); ok {
		t.Fatal("expected tampered payload to fail verification")
	}
}

func TestSharePayloadMalformed(t *testing.T) {
	if _, _, ok := VerifySharePayload("not|a|payload"); ok {
		t.Fatal("expected malformed payload to fail verification")
	}
}
