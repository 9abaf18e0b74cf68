package models

// UserData links a user to an entity they saved (favourites and similar
// per-user collections).
type UserData struct {
	EntityType string `json:"entity_type" bson:"entity_type"`
	EntityID   string `json:"entity_id" bson:"entity_id"`
	ItemType   string `json:"item_type,omitempty" bson:"item_type,omitempty"`
	ItemID     string `json:"item_id,omitempty" bson:"item_id,omitempty"`
	UserID     string `json:"userid" bson:"userid"`
	CreatedAt  string `json:"created_at" bson:"created_at"`
}

// Index represents an indexing-related message emitted on catalog writes.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	ItemId     string `json:"item_id,omitempty"`
	ItemType   string `json:"item_type,omitempty"`
}
