package restaurants

import "codeberg.org/foodmap/client/foodmap/restaurants"

const popularLimit = 5

// ListResponse wraps a list of restaurants
type ListResponse struct {
	Data []*restaurants.Restaurant `json:"data"`
}

// DetailResponse wraps a single restaurant
type DetailResponse struct {
	Data *restaurants.Restaurant `json:"data"`
}

// DeleteResponse confirms a deletion
type DeleteResponse struct {
	Success bool `json:"success"`
}
