package dto

import "github.com/edusphere/lms-client/internal/models"

// ActivitiesResponse is returned by the activity list endpoints.
type ActivitiesResponse struct {
	Status
	Activities []models.Activity `json:"activities"`
}

// ActivityResponse wraps a single activity record.
type ActivityResponse struct {
	Status
	Activity models.Activity `json:"activity"`
}
