package dto

import "github.com/edusphere/lms-client/internal/models"

// AdminUsersResponse is the paginated user listing for the admin console.
type AdminUsersResponse struct {
	Status
	Users       []models.User `json:"users"`
	Total       int           `json:"total"`
	Pages       int           `json:"pages"`
	CurrentPage int           `json:"current_page"`
}

// AdminCoursesResponse is the paginated course listing for the admin console.
type AdminCoursesResponse struct {
	Status
	Courses     []models.Course `json:"courses"`
	Total       int             `json:"total"`
	Pages       int             `json:"pages"`
	CurrentPage int             `json:"current_page"`
}

// Pagination converts the embedded paging fields into the shared metadata
// struct stores keep alongside the page.
func (r *AdminUsersResponse) Pagination() models.Pagination {
	return models.Pagination{Total: r.Total, Pages: r.Pages, CurrentPage: r.CurrentPage}
}

// Pagination converts the embedded paging fields into the shared metadata
// struct stores keep alongside the page.
func (r *AdminCoursesResponse) Pagination() models.Pagination {
	return models.Pagination{Total: r.Total, Pages: r.Pages, CurrentPage: r.CurrentPage}
}
