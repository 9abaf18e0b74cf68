package reviews

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"menara/db"
	"menara/globals"
	"menara/models"
	"menara/mq"
	"menara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Reviews
func GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	activityID := ps.ByName("activityid")

	skip, limit := utils.ParsePagination(r, 10, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "createdAt", Value: -1}}, nil)

	filter := bson.M{"activity_id": activityID}
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)

	reviews, err := utils.FindAndDecode[models.Review](ctx, db.ReviewsCollection, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to retrieve reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"status": http.StatusOK, "ok": true, "reviews": reviews})
}

// POST /api/reviews/:activityid
func AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	activityID := ps.ByName("activityid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := db.ReviewsCollection.CountDocuments(ctx, bson.M{
		"userid":      userID,
		"activity_id": activityID,
	})
	if err != nil {
		log.Printf("Error checking for existing review: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, "You have already reviewed this activity", http.StatusConflict)
		return
	}

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	review := models.Review{
		ReviewID:   utils.GenerateRandomString(13),
		ActivityID: activityID,
		UserID:     userID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now(),
	}

	if _, err := db.ReviewsCollection.InsertOne(ctx, review); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save review")
		return
	}

	if err := recomputeAverageRating(ctx, activityID); err != nil {
		log.Printf("Failed to update average rating for %s: %v", activityID, err)
	}

	mq.Emit(ctx, "review-added", models.Index{EntityType: "review", EntityId: activityID, ItemId: review.ReviewID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// DELETE /api/reviews/:activityid/:reviewid
func DeleteReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	activityID := ps.ByName("activityid")
	reviewID := ps.ByName("reviewid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ReviewsCollection.DeleteOne(ctx, bson.M{"reviewid": reviewID, "userid": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Review not found")
		return
	}

	if err := recomputeAverageRating(ctx, activityID); err != nil {
		log.Printf("Failed to update average rating for %s: %v", activityID, err)
	}

	mq.Emit(ctx, "review-deleted", models.Index{EntityType: "review", EntityId: activityID, ItemId: reviewID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// recomputeAverageRating recalculates and stores the activity's average and
// review count from the reviews collection.
func recomputeAverageRating(ctx context.Context, activityID string) error {
	pipeline := []bson.M{
		{"$match": bson.M{"activity_id": activityID}},
		{"$group": bson.M{
			"_id":   nil,
			"avg":   bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := db.ReviewsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	avg := 0.0
	count := 0
	if cursor.Next(ctx) {
		var result struct {
			Avg   float64 `bson:"avg"`
			Count int     `bson:"count"`
		}
		if err := cursor.Decode(&result); err != nil {
			return err
		}
		avg = result.Avg
		count = result.Count
	}

	_, err = db.ActivitiesCollection.UpdateOne(ctx,
		bson.M{"activityid": activityID},
		bson.M{"$set": bson.M{"average_rating": avg, "review_count": count}},
	)
	return err
}
