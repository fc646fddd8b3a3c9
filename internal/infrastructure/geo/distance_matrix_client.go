package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"mecanique_mobile/internal/domain/entities"
)

const distanceMatrixBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// DistanceMatrixClient queries the Google Distance Matrix API for driving
// distances. Only wired when an API key is configured; without one the
// resolver skips straight to the geocoding tier.

type DistanceMatrixClient struct {
	httpClient *http.Client
	apiKey     string

	// originAddress, when set, is sent instead of the raw coordinates so
	// Google snaps the origin to the known street address.
	originAddress string
}

func NewDistanceMatrixClient(apiKey, originAddress string) *DistanceMatrixClient {
	return &DistanceMatrixClient{
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		apiKey:        apiKey,
		originAddress: originAddress,
	}
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

func (c *DistanceMatrixClient) DrivingDistanceKm(ctx context.Context, origin entities.Coordinate, destination string) (float64, error) {
	origins := fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude)
	if c.originAddress != "" {
		origins = c.originAddress
	}

	q := url.Values{}
	q.Set("origins", origins)
	q.Set("destinations", destination)
	q.Set("mode", "driving")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, distanceMatrixBaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distancematrix: unexpected status %d", resp.StatusCode)
	}

	var body distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.Status != "OK" {
		return 0, fmt.Errorf("distancematrix: response status %q", body.Status)
	}
	if len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distancematrix: empty result")
	}
	el := body.Rows[0].Elements[0]
	if el.Status != "OK" {
		return 0, fmt.Errorf("distancematrix: element status %q", el.Status)
	}

	return float64(el.Distance.Value) / 1000.0, nil
}
