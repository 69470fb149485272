package submissions

import "codeberg.org/foodmap/client/foodmap/submissions"

// ListResponse wraps a list of submissions
type ListResponse struct {
	Data []*submissions.Submission `json:"data"`
}

// DetailResponse wraps a single submission
type DetailResponse struct {
	Data *submissions.Submission `json:"data"`
}

// StatusRequest moves a submission through review
type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Success bool `json:"success"`
}
