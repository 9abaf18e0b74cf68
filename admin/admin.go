package admin

import (
	"context"
	"net/http"
	"time"

	"menara/db"
	"menara/models"
	"menara/mq"
	"menara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPendingActivities returns submissions awaiting moderation.
//
// Endpoint: GET /api/admin/activities/pending
func GetPendingActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	pending, err := utils.FindAndDecode[models.Activity](ctx, db.ActivitiesCollection, bson.M{"approved": false}, findOpts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch pending activities")
		return
	}

	utils.JSON(w, http.StatusOK, pending)
}

// PUT /api/admin/activities/:activityid/approve
func ApproveActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("activityid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ActivitiesCollection.UpdateOne(ctx,
		bson.M{"activityid": id},
		bson.M{"$set": bson.M{"approved": true, "updated_at": time.Now()}},
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to approve activity")
		return
	}
	if res.MatchedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Activity not found")
		return
	}

	mq.Emit(ctx, "activity-approved", models.Index{EntityType: "activity", EntityId: id, Method: "PUT"})

	utils.JSON(w, http.StatusOK, utils.M{"ok": true, "message": "Activity approved"})
}

// DELETE /api/admin/activities/:activityid/reject
func RejectActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("activityid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ActivitiesCollection.DeleteOne(ctx, bson.M{"activityid": id, "approved": false})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to reject activity")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Pending activity not found")
		return
	}

	mq.Emit(ctx, "activity-rejected", models.Index{EntityType: "activity", EntityId: id, Method: "DELETE"})

	utils.JSON(w, http.StatusOK, utils.M{"ok": true, "message": "Activity rejected"})
}

// GET /api/admin/stats — headline counts for the admin dashboard.
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	approved, err := db.ActivitiesCollection.CountDocuments(ctx, bson.M{"approved": true})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}
	pending, _ := db.ActivitiesCollection.CountDocuments(ctx, bson.M{"approved": false})
	users, _ := db.UserCollection.CountDocuments(ctx, bson.M{})
	itineraries, _ := db.ItineraryCollection.CountDocuments(ctx, bson.M{})
	reviews, _ := db.ReviewsCollection.CountDocuments(ctx, bson.M{})

	utils.JSON(w, http.StatusOK, utils.M{
		"activities_approved": approved,
		"activities_pending":  pending,
		"users":               users,
		"itineraries":         itineraries,
		"reviews":             reviews,
	})
}
