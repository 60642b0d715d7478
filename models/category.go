package models

// Category is one entry of the global category enumeration.
// Collection: categories (keyed by name as _id, seeded at startup)
type Category struct {
	Name string `bson:"_id" json:"name"`
}
