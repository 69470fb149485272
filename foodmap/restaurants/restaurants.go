package restaurants

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

// creates a new restaurant repository
func NewRepository() *Repository {
	return &Repository{byID: make(map[string]*Restaurant)}
}

// lists restaurants in insertion order
func (r *Repository) List(_ context.Context) ([]*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Restaurant, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clone(r.byID[id]))
	}

	return out, nil
}

// lists the most liked restaurants, ties broken by rating
func (r *Repository) Popular(ctx context.Context, limit int) ([]*Restaurant, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Likes != all[j].Likes {
			return all[i].Likes > all[j].Likes
		}
		return all[i].Rating > all[j].Rating
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	return all, nil
}

func (r *Repository) Get(_ context.Context, id string) (*Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	restaurant, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	return clone(restaurant), nil
}

func (r *Repository) Create(_ context.Context, in Input) (*Restaurant, error) {
	now := time.Now().UTC()
	restaurant := &Restaurant{ID: uuid.NewString(), CreatedAt: now}
	apply(restaurant, in, now)

	r.mu.Lock()
	r.byID[restaurant.ID] = restaurant
	r.order = append(r.order, restaurant.ID)
	r.mu.Unlock()

	return clone(restaurant), nil
}

func (r *Repository) Update(_ context.Context, id string, in Input) (*Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	restaurant, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	apply(restaurant, in, time.Now().UTC())

	return clone(restaurant), nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}

	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

func apply(restaurant *Restaurant, in Input, now time.Time) {
	restaurant.Name = in.Name
	restaurant.Category = in.Category
	restaurant.Location = in.Location
	restaurant.PriceRange = in.PriceRange
	restaurant.Rating = in.Rating
	restaurant.Description = in.Description
	restaurant.RecommendedMenu = append([]string(nil), in.RecommendedMenu...)
	restaurant.Likes = in.Likes
	restaurant.Image = in.Image
	restaurant.UpdatedAt = now
}

func clone(r *Restaurant) *Restaurant {
	c := *r
	c.RecommendedMenu = append([]string(nil), r.RecommendedMenu...)
	return &c
}
