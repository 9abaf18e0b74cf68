package itinerary

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"menara/db"
	"menara/globals"
	"menara/models"
	"menara/share"
	"menara/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GET /api/itinerary/print/:id — printable PDF with a share QR code.
func (s *Service) PrintItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var header models.Itinerary
	err := db.ItineraryCollection.FindOne(ctx, bson.M{"itineraryid": itineraryID}).Decode(&header)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	if !header.IsPublic && header.UserID != userID {
		utils.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	items, err := loadItems(ctx, itineraryID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching itinerary items")
		return
	}

	qrPNG, err := qrcode.Encode(share.BuildSharePayload("itinerary", itineraryID), qrcode.Medium, 256)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, header.Name)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if header.Description != "" {
		pdf.MultiCell(0, 6, header.Description, "", "L", false)
		pdf.Ln(4)
	}
	if header.Preferences != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 5, "Preferences: "+header.Preferences, "", "L", false)
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 12)
	}

	for _, item := range items {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", item.DayNumber, item.StartTime))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		if item.Notes != "" {
			pdf.MultiCell(0, 5, item.Notes, "", "L", false)
		}
		pdf.Ln(3)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("shareqr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("shareqr", 160, 250, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to render PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=itinerary-%s.pdf", itineraryID))
	w.Write(buf.Bytes())
}
