package favorites

import (
	"context"
	"net/http"
	"time"

	"menara/db"
	"menara/globals"
	"menara/models"
	"menara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/favorites/:activityid — toggles the favourite for the caller.
func ToggleFavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	activityID := ps.ByName("activityid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := db.ActivitiesCollection.CountDocuments(ctx, bson.M{"activityid": activityID})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	if count == 0 {
		utils.Error(w, http.StatusNotFound, "Activity not found")
		return
	}

	filter := bson.M{"entity_type": "favourite", "entity_id": activityID, "userid": userID}
	res, err := db.UserDataCollection.DeleteOne(ctx, filter)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Database error")
		return
	}
	if res.DeletedCount > 0 {
		utils.JSON(w, http.StatusOK, utils.M{"ok": true, "favorited": false})
		return
	}

	fav := models.UserData{
		EntityType: "favourite",
		EntityID:   activityID,
		ItemType:   "activity",
		UserID:     userID,
		CreatedAt:  time.Now().Format(time.RFC3339),
	}
	if _, err := db.UserDataCollection.InsertOne(ctx, fav); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to save favourite")
		return
	}

	utils.JSON(w, http.StatusOK, utils.M{"ok": true, "favorited": true})
}

// GET /api/favorites — full activity documents for the caller's favourites.
func GetFavorites(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	filter := bson.M{"entity_type": "favourite", "userid": userID}
	favs, err := utils.FindAndDecode[models.UserData](ctx, db.UserDataCollection, filter)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch favourites")
		return
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.EntityID)
	}
	if len(ids) == 0 {
		utils.JSON(w, http.StatusOK, []models.Activity{})
		return
	}

	activities, err := utils.FindAndDecode[models.Activity](ctx, db.ActivitiesCollection, bson.M{"activityid": bson.M{"$in": ids}})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	utils.JSON(w, http.StatusOK, activities)
}
