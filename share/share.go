package share

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"menara/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

var shareSecret = []byte(secretFromEnv())

func secretFromEnv() string {
	if s := os.Getenv("SHARE_SECRET"); s != "" {
		return s
	}
	return "change_me_share_secret"
}

var shareableTypes = map[string]bool{
	"activity":  true,
	"itinerary": true,
}

// BuildSharePayload returns a signed payload: entityType|entityID|timestamp|signature
func BuildSharePayload(entityType, entityID string) string {
	timestamp := time.Now().Unix()
	data := fmt.Sprintf("%s|%s|%d", entityType, entityID, timestamp)

	h := hmac.New(sha256.New, shareSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// VerifySharePayload checks the signature on a payload produced by
// BuildSharePayload and returns entityType and entityID.
func VerifySharePayload(payload string) (string, string, bool) {
	parts := strings.Split(payload, "|")
	if len(parts) != 4 {
		return "", "", false
	}
	data := strings.Join(parts[:3], "|")

	h := hmac.New(sha256.New, shareSecret)
	h.Write([]byte(data))
	expected := base64.StdEncoding.EncodeToString(h.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(parts[3])) {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// GET /api/share/:entitytype/:entityid — share link JSON for the UI's
// social buttons.
func GetShareLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entityType := ps.ByName("entitytype")
	entityID := ps.ByName("entityid")

	if !shareableTypes[entityType] {
		utils.Error(w, http.StatusBadRequest, "Unsupported entity type")
		return
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "https://menara.example.com"
	}

	payload := BuildSharePayload(entityType, entityID)
	link := fmt.Sprintf("%s/%s/%s?s=%s", baseURL, entityType, entityID, base64.URLEncoding.EncodeToString([]byte(payload)))

	utils.JSON(w, http.StatusOK, utils.M{
		"ok":   true,
		"link": link,
	})
}

// GET /api/share/:entitytype/:entityid/qr — PNG QR code for the share link.
func GetShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	entityType := ps.ByName("entitytype")
	entityID := ps.ByName("entityid")

	if !shareableTypes[entityType] {
		utils.Error(w, http.StatusBadRequest, "Unsupported entity type")
		return
	}

	payload := BuildSharePayload(entityType, entityID)

	qrPNG, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(qrPNG)
}
