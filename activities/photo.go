package activities

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"menara/db"
	"menara/globals"
	"menara/models"
	"menara/mq"
	"menara/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const photoDir = "./static/activitypic"

// POST /api/activities/activity/:activityid/photo
func UploadActivityPhoto(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || userID == "" {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := ps.ByName("activityid")
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
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

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.Error(w, http.StatusBadRequest, "File too large or malformed form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Missing photo field")
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Unreadable image")
		return
	}

	if err := utils.EnsureDir(photoDir); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Storage unavailable")
		return
	}

	filename := utils.GenerateRandomString(12) + ".jpg"
	originalPath := fmt.Sprintf("%s/%s", photoDir, filename)
	thumbName := "thumb_" + filename
	thumbnailPath := fmt.Sprintf("%s/%s", photoDir, thumbName)

	if err := imaging.Save(img, originalPath); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to save thumbnail")
		return
	}

	update := bson.M{"$set": bson.M{
		"photo":      filename,
		"thumbnail":  thumbName,
		"updated_at": time.Now(),
	}}
	if _, err := db.ActivitiesCollection.UpdateOne(ctx, bson.M{"activityid": id}, update); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to update activity")
		return
	}

	mq.Emit(ctx, "activity-photo", models.Index{EntityType: "activity", EntityId: id, Method: "PUT"})

	utils.JSON(w, http.StatusOK, utils.M{"photo": filename, "thumbnail": thumbName})
}
