package models

import "time"

// Activity is one catalog entry: a restaurant, museum, spa or shop curated
// for visitors.
type Activity struct {
	ActivityID      string    `json:"activityid" bson:"activityid"`
	Name            string    `json:"name" bson:"name"`
	Description     string    `json:"description" bson:"description"`
	CategoryName    string    `json:"category_name" bson:"category_name"`
	StreetAddress   string    `json:"street_address" bson:"street_address"`
	PhoneNumber     string    `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	ReservationInfo string    `json:"reservation_info,omitempty" bson:"reservation_info,omitempty"`
	Comments        string    `json:"comments,omitempty" bson:"comments,omitempty"`
	AverageRating   float64   `json:"average_rating" bson:"average_rating"`
	ReviewCount     int       `json:"review_count" bson:"review_count"`
	IsFeatured      bool      `json:"is_featured" bson:"is_featured"`
	Approved        bool      `json:"approved" bson:"approved"`
	Photo           string    `json:"photo,omitempty" bson:"photo,omitempty"`
	Thumbnail       string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}

type Category struct {
	CategoryID string `json:"categoryid" bson:"categoryid"`
	Name       string `json:"name" bson:"name"`
	Icon       string `json:"icon,omitempty" bson:"icon,omitempty"`
	SortOrder  int    `json:"sort_order" bson:"sort_order"`
}
