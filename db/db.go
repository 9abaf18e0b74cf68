package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection          *mongo.Collection
	ActivitiesCollection    *mongo.Collection
	CategoriesCollection    *mongo.Collection
	ItineraryCollection     *mongo.Collection
	ItineraryItemCollection *mongo.Collection
	UserDataCollection      *mongo.Collection
	ReviewsCollection       *mongo.Collection
	Client                  *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI is required")
	}

	var err error
	ClientOptions := options.Client().ApplyURI(uri)
	Client, err = mongo.Connect(context.TODO(), ClientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	UserCollection = Client.Database("menaradb").Collection("users")
	ActivitiesCollection = Client.Database("menaradb").Collection("activities")
	CategoriesCollection = Client.Database("menaradb").Collection("categories")
	ItineraryCollection = Client.Database("menaradb").Collection("itineraries")
	ItineraryItemCollection = Client.Database("menaradb").Collection("itineraryitems")
	UserDataCollection = Client.Database("menaradb").Collection("userdata")
	ReviewsCollection = Client.Database("menaradb").Collection("reviews")
}
