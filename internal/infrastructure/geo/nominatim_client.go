package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mecanique_mobile/internal/domain/entities"
)

const (
	defaultNominatimBaseURL = "https://nominatim.openstreetmap.org"

	// Nominatim's usage policy requires an identifying User-Agent.
	nominatimUserAgent = "JJ-Mecanique-Distance-Calculator/1.0"
)

// NominatimClient geocodes free-text addresses against a Nominatim
// instance, biased to Canadian results.

type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewNominatimClient(baseURL string) *NominatimClient {
	if baseURL == "" {
		baseURL = defaultNominatimBaseURL
	}
	return &NominatimClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the best match for the address. The boolean is false on
// a clean miss; errors are transport or decoding failures.
func (c *NominatimClient) Geocode(ctx context.Context, address string) (entities.Coordinate, bool, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", "ca")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return entities.Coordinate{}, false, err
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.Coordinate{}, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entities.Coordinate{}, false, fmt.Errorf("nominatim: unexpected status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return entities.Coordinate{}, false, err
	}
	if len(results) == 0 {
		return entities.Coordinate{}, false, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return entities.Coordinate{}, false, fmt.Errorf("nominatim: bad latitude %q", results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return entities.Coordinate{}, false, fmt.Errorf("nominatim: bad longitude %q", results[0].Lon)
	}

	return entities.Coordinate{Latitude: lat, Longitude: lng}, true, nil
}
