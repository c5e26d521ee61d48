// ABOUTME: HTTP client for the remote exercise catalog API.
// ABOUTME: Read-only JSON endpoints; rate limits and network failures surface as ErrRemoteUnavailable.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// ErrRemoteUnavailable indicates the remote catalog could not be
// reached or refused the request. Always recoverable: callers fall back
// to the local cache.
var ErrRemoteUnavailable = errors.New("exercise catalog unavailable")

// Remote is the narrow contract the core consumes from the catalog API.
type Remote interface {
	FetchByBodyPart(ctx context.Context, bodyPart string) ([]*models.Exercise, error)
	FetchByTarget(ctx context.Context, target string) ([]*models.Exercise, error)
	FetchByEquipment(ctx context.Context, equipment string) ([]*models.Exercise, error)
	SearchByName(ctx context.Context, name string) ([]*models.Exercise, error)
	FetchByID(ctx context.Context, id string) (*models.Exercise, error)
}

// Client talks to an ExerciseDB-style HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient creates a catalog API client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchByBodyPart lists exercises for one body part.
func (c *Client) FetchByBodyPart(ctx context.Context, bodyPart string) ([]*models.Exercise, error) {
	return c.fetchList(ctx, "/exercises/bodyPart/"+url.PathEscape(bodyPart))
}

// FetchByTarget lists exercises for one target muscle.
func (c *Client) FetchByTarget(ctx context.Context, target string) ([]*models.Exercise, error) {
	return c.fetchList(ctx, "/exercises/target/"+url.PathEscape(target))
}

// FetchByEquipment lists exercises for one equipment type.
func (c *Client) FetchByEquipment(ctx context.Context, equipment string) ([]*models.Exercise, error) {
	return c.fetchList(ctx, "/exercises/equipment/"+url.PathEscape(equipment))
}

// SearchByName lists exercises matching a name fragment.
func (c *Client) SearchByName(ctx context.Context, name string) ([]*models.Exercise, error) {
	return c.fetchList(ctx, "/exercises/name/"+url.PathEscape(name))
}

// FetchByID retrieves one exercise by its stable catalog id.
func (c *Client) FetchByID(ctx context.Context, id string) (*models.Exercise, error) {
	data, err := c.get(ctx, "/exercises/exercise/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var ex models.Exercise
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("%w: decode exercise: %v", ErrRemoteUnavailable, err)
	}
	return &ex, nil
}

func (c *Client) fetchList(ctx context.Context, path string) ([]*models.Exercise, error) {
	data, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var exs []*models.Exercise
	if err := json.Unmarshal(data, &exs); err != nil {
		return nil, fmt.Errorf("%w: decode exercises: %v", ErrRemoteUnavailable, err)
	}
	return exs, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: rate limited", ErrRemoteUnavailable)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrRemoteUnavailable, resp.StatusCode)
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrRemoteUnavailable, err)
	}
	return buf, nil
}
