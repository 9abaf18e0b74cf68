package activities

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"menara/db"
	"menara/globals"
	"menara/models"
	"menara/mq"
	"menara/rdx"
	"menara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildListFilter translates list query options into a Mongo filter over
// approved activities.
func buildListFilter(opts utils.QueryOptions) bson.M {
	filter := bson.M{"approved": true}
	if opts.Category != "" {
		filter["category_name"] = opts.Category
	}
	if opts.Featured != nil {
		filter["is_featured"] = *opts.Featured
	}
	if opts.Search != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": opts.Search, "$options": "i"}},
			{"description": bson.M{"$regex": opts.Search, "$options": "i"}},
		}
	}
	return filter
}

// Activities
func GetActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := utils.ParseQueryOptions(r)

	// Only the unfiltered first page is cached
	cacheable := opts.Category == "" && opts.Featured == nil && opts.Search == "" && opts.Page == 1
	if cacheable {
		if cached, _ := rdx.RdxGet("activities"); cached != "" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	filter := buildListFilter(opts)

	skip := int64((opts.Page - 1) * opts.Limit)
	limit := int64(opts.Limit)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "is_featured", Value: -1}, {Key: "average_rating", Value: -1}}, nil)
	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)

	activities, err := utils.FindAndDecode[models.Activity](ctx, db.ActivitiesCollection, filter, findOpts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	data := utils.ToJSON(activities)
	if cacheable {
		rdx.RdxSet("activities", string(data))
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func GetActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("activityid")

	if cached, _ := rdx.RdxGet("activity:" + id); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	var activity models.Activity
	err := db.ActivitiesCollection.FindOne(context.TODO(), bson.M{"activityid": id}).Decode(&activity)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.Error(w, http.StatusNotFound, "Activity not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch activity")
		return
	}

	data := utils.ToJSON(activity)
	rdx.RdxSet("activity:"+id, string(data))
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if cached, _ := rdx.RdxGet("categories"); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}})
	categories, err := utils.FindAndDecode[models.Category](ctx, db.CategoriesCollection, bson.M{}, findOpts)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	data := utils.ToJSON(categories)
	rdx.RdxSet("categories", string(data))
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// POST /api/activities/activity
func CreateActivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var activity models.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if activity.Name == "" || activity.CategoryName == "" {
		utils.Error(w, http.StatusBadRequest, "Name and category are required")
		return
	}

	activity.ActivityID = utils.GenerateRandomString(13)
	activity.CreatedBy = userID
	activity.Approved = false // submissions wait for moderation
	activity.AverageRating = 0
	activity.ReviewCount = 0
	activity.CreatedAt = time.Now()
	activity.UpdatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.ActivitiesCollection.InsertOne(ctx, activity); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error inserting activity")
		return
	}

	mq.Emit(ctx, "activity-created", models.Index{EntityType: "activity", EntityId: activity.ActivityID, Method: "POST"})

	utils.JSON(w, http.StatusCreated, activity)
}

// PUT /api/activities/activity/:activityid
func EditActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := ps.ByName("activityid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.Activity
	if err := db.ActivitiesCollection.FindOne(ctx, bson.M{"activityid": id}).Decode(&existing); err != nil {
		utils.Error(w, http.StatusNotFound, "Activity not found")
		return
	}

	if existing.CreatedBy != userID && !isAdmin(r) {
		utils.Error(w, http.StatusForbidden, "Forbidden")
		return
	}

	var updated models.Activity
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":             updated.Name,
		"description":      updated.Description,
		"category_name":    updated.CategoryName,
		"street_address":   updated.StreetAddress,
		"phone_number":     updated.PhoneNumber,
		"reservation_info": updated.ReservationInfo,
		"comments":         updated.Comments,
		"is_featured":      updated.IsFeatured,
		"updated_at":       time.Now(),
	}}

	if _, err := db.ActivitiesCollection.UpdateOne(ctx, bson.M{"activityid": id}, update); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error updating activity")
		return
	}

	mq.Emit(ctx, "activity-updated", models.Index{EntityType: "activity", EntityId: id, Method: "PUT"})

	utils.JSON(w, http.StatusOK, bson.M{"message": "Activity updated successfully"})
}

// DELETE /api/activities/activity/:activityid
func DeleteActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("activityid")
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ActivitiesCollection.DeleteOne(ctx, bson.M{"activityid": id})
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Error deleting activity")
		return
	}
	if res.DeletedCount == 0 {
		utils.Error(w, http.StatusNotFound, "Activity not found")
		return
	}

	mq.Emit(ctx, "activity-deleted", models.Index{EntityType: "activity", EntityId: id, Method: "DELETE"})

	utils.JSON(w, http.StatusOK, bson.M{"message": "Activity deleted successfully"})
}

func isAdmin(r *http.Request) bool {
	roles, ok := r.Context().Value(globals.RoleKey).([]string)
	return ok && utils.Contains(roles, "admin")
}
