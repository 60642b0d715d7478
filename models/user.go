package models

import "time"

// User represents a registered account.
// Collection: users (keyed by email as _id)
//
// Favourites holds blog ids in insertion order; SelectedCategories is always
// a subset of the global category set.
type User struct {
	Email              string    `bson:"_id" json:"email"`
	Name               string    `bson:"name" json:"name"`
	Password           string    `bson:"password" json:"-"`
	ProfileImage       string    `bson:"profile_image" json:"profile_image"`
	SelectedCategories []string  `bson:"selected_categories" json:"selected_categories"`
	Favourites         []string  `bson:"favourites" json:"favourites"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}
