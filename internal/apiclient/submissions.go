package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// reports a new restaurant for review
func (c *Client) CreateSubmission(ctx context.Context, s Submission) (*Submission, error) {
	var resp dataResponse[*Submission]

	if err := c.send(ctx, request{method: http.MethodPost, path: "/api/submissions", body: s}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

// lists submissions, filtered by status unless status is empty
func (c *Client) ListSubmissions(ctx context.Context, status SubmissionStatus) ([]Submission, error) {
	var resp dataResponse[[]Submission]

	path := "/api/submissions"
	if status != "" {
		path += "?" + url.Values{"status": {string(status)}}.Encode()
	}

	if err := c.send(ctx, request{method: http.MethodGet, path: path}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *Client) UpdateSubmissionStatus(ctx context.Context, id string, status SubmissionStatus) (*Submission, error) {
	var resp dataResponse[*Submission]

	if err := c.send(ctx, request{method: http.MethodPut, path: submissionPath(id), body: statusRequest{Status: status}}, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (c *Client) DeleteSubmission(ctx context.Context, id string) error {
	return c.send(ctx, request{method: http.MethodDelete, path: submissionPath(id)}, nil)
}

// creates the restaurant described by a submission and marks it approved
func (c *Client) ApproveSubmission(ctx context.Context, s Submission) (*Restaurant, error) {
	created, err := c.CreateRestaurant(ctx, Restaurant{
		Name:            s.RestaurantName,
		Category:        s.Category,
		Location:        s.Location,
		PriceRange:      s.PriceRange,
		Description:     s.Review,
		RecommendedMenu: s.RecommendedMenu,
	})
	if err != nil {
		return nil, err
	}

	if _, err := c.UpdateSubmissionStatus(ctx, s.ID, StatusApproved); err != nil {
		return created, &ApprovalError{Restaurant: created, Err: err}
	}

	return created, nil
}

// returned by ApproveSubmission when the restaurant was published but the
// submission could not be marked approved. retrying would publish it twice.
type ApprovalError struct {
	Restaurant *Restaurant
	Err        error
}

func (e *ApprovalError) Error() string {
	if e.Restaurant == nil {
		return fmt.Sprintf("restaurant created but submission not marked approved: %v", e.Err)
	}

	return fmt.Sprintf("restaurant %s created but submission not marked approved: %v", e.Restaurant.ID, e.Err)
}

func (e *ApprovalError) Unwrap() error {
	return e.Err
}

func submissionPath(id string) string {
	return "/api/submissions/" + url.PathEscape(id)
}
