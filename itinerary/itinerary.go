package itinerary

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"menara/db"
	"menara/globals"
	"menara/models"
	"menara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Service wires the generation client into the HTTP handlers so tests can
// construct one with a fresh breaker.
type Service struct {
	Client *Client
}

func NewService(client *Client) *Service {
	return &Service{Client: client}
}

// POST /api/itinerary/generate
func (s *Service) Generate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Preferences string `json:"preferences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	input.Preferences = strings.TrimSpace(input.Preferences)
	if input.Preferences == "" {
		utils.Error(w, http.StatusBadRequest, "Preferences are required")
		return
	}

	candidates, err := LoadCandidates(r.Context())
	if err != nil {
		// an unreadable catalog degrades to the built-in fallback set
		log.Printf("Candidate load failed: %v", err)
		candidates = nil
	}

	prompt := BuildPrompt(input.Preferences, candidates)
	raw, genErr := s.Client.Generate(r.Context(), prompt)
	if genErr != nil {
		log.Printf("Generation call failed: %v", genErr)
	}

	generated := Interpret(raw, genErr, candidates)

	utils.JSON(w, http.StatusOK, utils.M{
		"ok":        true,
		"itinerary": generated,
	})
}

// POST /api/itinerary/save
func (s *Service) Save(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Preferences string                    `json:"preferences"`
		Itinerary   models.GeneratedItinerary `json:"itinerary"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if len(input.Itinerary.Items) == 0 {
		utils.Error(w, http.StatusBadRequest, "Itinerary has no items")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	candidates, err := LoadCandidates(ctx)
	if err != nil {
		log.Printf("Candidate load failed during save: %v", err)
		candidates = nil
	}

	header, err := SaveGenerated(ctx, userID, input.Preferences, input.Itinerary, candidates)
	if err != nil {
		log.Printf("Itinerary save failed: %v", err)
		resp := utils.M{"error": "Failed to save itinerary"}
		if header.ItineraryID != "" {
			// header survived a partial write
			resp["itineraryid"] = header.ItineraryID
		}
		utils.JSON(w, http.StatusInternalServerError, resp)
		return
	}

	utils.JSON(w, http.StatusCreated, header)
}

// GET /api/itinerary/all
func (s *Service) GetItineraries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	itineraries, err := utils.FindAndDecode[models.Itinerary](ctx, db.ItineraryCollection, bson.M{"user_id": userID}, findOpts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error fetching itineraries")
		return
	}

	utils.JSON(w, http.StatusOK, itineraries)
}

// GET /api/itinerary/one/:id
func (s *Service) GetItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itineraryID := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
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

	utils.JSON(w, http.StatusOK, utils.M{"itinerary": header, "items": items})
}

// DELETE /api/itinerary/one/:id
func (s *Service) DeleteItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	itineraryID := ps.ByName("id")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ItineraryCollection.DeleteOne(ctx, bson.M{"itineraryid": itineraryID, "user_id": userID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Itinerary not found")
		return
	}

	if _, err := db.ItineraryItemCollection.DeleteMany(ctx, bson.M{"itinerary_id": itineraryID}); err != nil {
		log.Printf("Failed to delete items for itinerary %s: %v", itineraryID, err)
	}

	utils.JSON(w, http.StatusOK, bson.M{"message": "Itinerary deleted successfully"})
}

func loadItems(ctx context.Context, itineraryID string) ([]models.ItineraryItem, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "day_number", Value: 1}, {Key: "order_in_day", Value: 1}})
	return utils.FindAndDecode[models.ItineraryItem](ctx, db.ItineraryItemCollection, bson.M{"itinerary_id": itineraryID}, findOpts)
}
