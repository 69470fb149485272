package submissions

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// creates a new submission repository
func NewRepository() *Repository {
	return &Repository{byID: make(map[string]*Submission)}
}

// stores a pending submission
func (r *Repository) Create(_ context.Context, in Input, submitterName, submitterEmail string) (*Submission, error) {
	now := time.Now().UTC()
	submission := &Submission{
		ID:              uuid.NewString(),
		RestaurantName:  in.RestaurantName,
		Category:        in.Category,
		Location:        in.Location,
		PriceRange:      in.PriceRange,
		RecommendedMenu: append([]string(nil), in.RecommendedMenu...),
		Review:          in.Review,
		SubmitterName:   submitterName,
		SubmitterEmail:  submitterEmail,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	r.mu.Lock()
	r.byID[submission.ID] = submission
	r.order = append(r.order, submission.ID)
	r.mu.Unlock()

	return clone(submission), nil
}

// lists submissions newest first, filtered by status unless it is empty
func (r *Repository) List(_ context.Context, status string) ([]*Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Submission, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		submission := r.byID[r.order[i]]
		if status != "" && submission.Status != status {
			continue
		}
		out = append(out, clone(submission))
	}

	return out, nil
}

func (r *Repository) UpdateStatus(_ context.Context, id, status string) (*Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	submission, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	submission.Status = status
	submission.UpdatedAt = time.Now().UTC()

	return clone(submission), nil
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

// reports whether status is a known review state
func IsValidStatus(status string) bool {
	return status == StatusPending || status == StatusApproved || status == StatusRejected
}

func clone(s *Submission) *Submission {
	c := *s
	c.RecommendedMenu = append([]string(nil), s.RecommendedMenu...)
	return &c
}
