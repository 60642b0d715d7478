package dto

// BlogDTO is the public blog representation returned by all blog endpoints.
// Author and Avatar are the snapshot taken at creation time; the owner email
// is never exposed.
type BlogDTO struct {
	ID        string  `json:"id"`
	Category  string  `json:"category" example:"Technology"`
	Topic     string  `json:"topic"`
	Title     string  `json:"title"`
	ReadTime  string  `json:"readTime" example:"5 min"`
	Content   string  `json:"content"`
	Author    string  `json:"author"`
	Avatar    string  `json:"avatar"`
	ImageURL  string  `json:"imageUrl"`
	CreatedAt string  `json:"created_at" example:"2025-01-01T12:00:00Z"`
	UpdatedAt *string `json:"updated_at"`
}

// CreateBlogResponseDTO is returned after a successful blog creation.
type CreateBlogResponseDTO struct {
	Message string `json:"message" example:"blog created successfully"`
	BlogID  string `json:"blog_id"`
}
