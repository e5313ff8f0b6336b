// Package hevy is a minimal client for the Hevy public API: routine
// folders, routines, and workout history.
package hevy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production Hevy API endpoint.
const DefaultBaseURL = "https://api.hevyapp.com"

// pageSize matches the API's default page size for list endpoints.
const pageSize = 10

// workoutFetchCap bounds how much history a workouts listing drains.
// The top-set search only needs recent workouts.
const workoutFetchCap = 100

// APIError is a non-2xx response from the Hevy API. Runs abort on the
// first APIError; reconciliation is idempotent, so the fix is to re-run.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hevy API error (status %d): %s", e.StatusCode, e.Body)
}

// Client talks to the Hevy API over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the given endpoint and credential.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) do(method, path string, query url.Values, body any) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return respBody, nil
}

func pageQuery(page int) url.Values {
	return url.Values{
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(pageSize)},
	}
}

// ListRoutineFolders fetches all routine folders, draining pagination.
func (c *Client) ListRoutineFolders() ([]Folder, error) {
	var all []Folder
	for page := 1; ; page++ {
		body, err := c.do(http.MethodGet, "/v1/routine_folders", pageQuery(page), nil)
		if err != nil {
			return nil, fmt.Errorf("listing folders: %w", err)
		}
		var result foldersResponse
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("decoding folders: %w", err)
		}
		all = append(all, result.RoutineFolders...)
		if page >= result.PageCount {
			return all, nil
		}
	}
}

// CreateRoutineFolder creates a folder and returns it with its assigned
// identifier.
func (c *Client) CreateRoutineFolder(title string) (*Folder, error) {
	wrapper := map[string]any{"routine_folder": map[string]string{"title": title}}
	body, err := c.do(http.MethodPost, "/v1/routine_folders", nil, wrapper)
	if err != nil {
		return nil, fmt.Errorf("creating folder %q: %w", title, err)
	}

	var result struct {
		RoutineFolder Folder `json:"routine_folder"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding folder response: %w", err)
	}
	return &result.RoutineFolder, nil
}

// ListRoutines fetches all routines, draining pagination.
func (c *Client) ListRoutines() ([]Routine, error) {
	var all []Routine
	for page := 1; ; page++ {
		body, err := c.do(http.MethodGet, "/v1/routines", pageQuery(page), nil)
		if err != nil {
			return nil, fmt.Errorf("listing routines: %w", err)
		}
		var result routinesResponse
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("decoding routines: %w", err)
		}
		all = append(all, result.Routines...)
		if page >= result.PageCount {
			return all, nil
		}
	}
}

// CreateRoutine creates a routine and returns the resulting
// representation.
func (c *Client) CreateRoutine(req RoutineRequest) (*Routine, error) {
	wrapper := map[string]RoutineRequest{"routine": req}
	body, err := c.do(http.MethodPost, "/v1/routines", nil, wrapper)
	if err != nil {
		return nil, fmt.Errorf("creating routine %q: %w", req.Title, err)
	}
	return decodeRoutine(body)
}

// UpdateRoutine replaces the named routine's title and exercise list.
// The request must not carry a folder assignment.
func (c *Client) UpdateRoutine(id string, req RoutineRequest) (*Routine, error) {
	wrapper := map[string]RoutineRequest{"routine": req}
	body, err := c.do(http.MethodPut, "/v1/routines/"+id, nil, wrapper)
	if err != nil {
		return nil, fmt.Errorf("updating routine %q: %w", req.Title, err)
	}
	return decodeRoutine(body)
}

func decodeRoutine(body []byte) (*Routine, error) {
	var result struct {
		Routine Routine `json:"routine"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding routine response: %w", err)
	}
	return &result.Routine, nil
}

// ListWorkouts fetches workout history, most recent first, draining
// pagination but stopping once workoutFetchCap entries are collected.
func (c *Client) ListWorkouts() ([]Workout, error) {
	var all []Workout
	for page := 1; ; page++ {
		body, err := c.do(http.MethodGet, "/v1/workouts", pageQuery(page), nil)
		if err != nil {
			return nil, fmt.Errorf("listing workouts: %w", err)
		}
		var result workoutsResponse
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("decoding workouts: %w", err)
		}
		all = append(all, result.Workouts...)
		if len(all) >= workoutFetchCap {
			return all[:workoutFetchCap], nil
		}
		if page >= result.PageCount {
			return all, nil
		}
	}
}
