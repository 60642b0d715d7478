package dto

// PaginationBlogDTO is a concrete swagger-friendly type for paginated blogs response
// swagger:model PaginationBlogDTO
type PaginationBlogDTO struct {
	Data     []BlogDTO `json:"data"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Total    int64     `json:"total"`
}
