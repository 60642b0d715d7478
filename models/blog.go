package models

import "time"

// Blog represents a single blog post document.
// Collection: blogs (keyed by a generated UUID string)
//
// Author and Avatar are a denormalized snapshot of the creating user taken at
// post time; later profile edits do not change past posts. AuthorEmail is the
// immutable owner key — only the owner may mutate or delete the post.
type Blog struct {
	ID          string     `bson:"_id,omitempty" json:"id"`
	Category    string     `bson:"category" json:"category"`
	Topic       string     `bson:"topic" json:"topic"`
	Title       string     `bson:"title" json:"title"`
	ReadTime    string     `bson:"readTime" json:"readTime"`
	Content     string     `bson:"content" json:"content"`
	Author      string     `bson:"author" json:"author"`
	AuthorEmail string     `bson:"author_email" json:"author_email"`
	Avatar      string     `bson:"avatar" json:"avatar"`
	ImageURL    string     `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `bson:"updated_at" json:"updated_at"`
}
