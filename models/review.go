package models

import "time"

type Review struct {
	ReviewID   string    `json:"reviewid" bson:"reviewid"`
	ActivityID string    `json:"activity_id" bson:"activity_id"`
	UserID     string    `json:"userid" bson:"userid"`
	Username   string    `json:"username,omitempty" bson:"username,omitempty"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
