package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Sentinel errors for upstream conditions the proxy endpoints translate
// to distinct status codes.
var (
	ErrQuotaExceeded = errors.New("mapping provider quota exceeded")
	ErrRequestDenied = errors.New("mapping provider denied the request")
	ErrTimeout       = errors.New("mapping provider timed out")
	ErrNoResults     = errors.New("mapping provider returned no results")
)

const defaultBaseURL = "https://maps.googleapis.com"

// Client is a thin reshaping layer over the Google Maps web services.
// Every call is bounded by a fixed timeout; expiry is reported as
// ErrTimeout, distinct from other upstream failures.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		// Client.Timeout bounds the whole exchange, body included.
		httpClient: &http.Client{Timeout: timeout},
	}
}

type GeocodeResult struct {
	FormattedAddress string  `json:"formattedAddress"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	PlaceID          string  `json:"placeId"`
}

type PlacePrediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"placeId"`
}

type DistanceResult struct {
	OriginAddress      string `json:"originAddress"`
	DestinationAddress string `json:"destinationAddress"`
	DistanceText       string `json:"distanceText"`
	DistanceMeters     int    `json:"distanceMeters"`
	DurationText       string `json:"durationText"`
	DurationSeconds    int    `json:"durationSeconds"`
}

func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", address)

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			FormattedAddress string `json:"formatted_address"`
			PlaceID          string `json:"place_id"`
			Geometry         struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	if err := c.getJSON(ctx, "/maps/api/geocode/json", params, &payload); err != nil {
		return nil, err
	}

	if err := translateStatus(payload.Status); err != nil {
		return nil, err
	}

	if len(payload.Results) == 0 {
		return nil, ErrNoResults
	}

	first := payload.Results[0]
	return &GeocodeResult{
		FormattedAddress: first.FormattedAddress,
		Latitude:         first.Geometry.Location.Lat,
		Longitude:        first.Geometry.Location.Lng,
		PlaceID:          first.PlaceID,
	}, nil
}

func (c *Client) PlaceAutocomplete(ctx context.Context, input string) ([]PlacePrediction, error) {
	params := url.Values{}
	params.Set("input", input)

	var payload struct {
		Status      string `json:"status"`
		Predictions []struct {
			Description string `json:"description"`
			PlaceID     string `json:"place_id"`
		} `json:"predictions"`
	}

	if err := c.getJSON(ctx, "/maps/api/place/autocomplete/json", params, &payload); err != nil {
		return nil, err
	}

	if err := translateStatus(payload.Status); err != nil {
		return nil, err
	}

	predictions := make([]PlacePrediction, 0, len(payload.Predictions))
	for _, p := range payload.Predictions {
		predictions = append(predictions, PlacePrediction{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}

	return predictions, nil
}

func (c *Client) DistanceMatrix(ctx context.Context, origins, destinations string) (*DistanceResult, error) {
	params := url.Values{}
	params.Set("origins", origins)
	params.Set("destinations", destinations)

	var payload struct {
		Status               string   `json:"status"`
		OriginAddresses      []string `json:"origin_addresses"`
		DestinationAddresses []string `json:"destination_addresses"`
		Rows                 []struct {
			Elements []struct {
				Status   string `json:"status"`
				Distance struct {
					Text  string `json:"text"`
					Value int    `json:"value"`
				} `json:"distance"`
				Duration struct {
					Text  string `json:"text"`
					Value int    `json:"value"`
				} `json:"duration"`
			} `json:"elements"`
		} `json:"rows"`
	}

	if err := c.getJSON(ctx, "/maps/api/distancematrix/json", params, &payload); err != nil {
		return nil, err
	}

	if err := translateStatus(payload.Status); err != nil {
		return nil, err
	}

	if len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return nil, ErrNoResults
	}

	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, ErrNoResults
	}

	result := &DistanceResult{
		DistanceText:    element.Distance.Text,
		DistanceMeters:  element.Distance.Value,
		DurationText:    element.Duration.Text,
		DurationSeconds: element.Duration.Value,
	}
	if len(payload.OriginAddresses) > 0 {
		result.OriginAddress = payload.OriginAddresses[0]
	}
	if len(payload.DestinationAddresses) > 0 {
		result.DestinationAddress = payload.DestinationAddresses[0]
	}

	return result, nil
}

// StaticMap fetches a rendered map image, passing the caller's query
// parameters through untouched apart from the API key.
func (c *Client) StaticMap(ctx context.Context, params url.Values) ([]byte, string, error) {
	resp, err := c.get(ctx, "/maps/api/staticmap", params)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, "", ErrRequestDenied
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, "", ErrQuotaExceeded
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, "", fmt.Errorf("static map request failed with status %d: %s", resp.StatusCode, string(body))
	}

	image, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read static map body: %w", err)
	}

	return image, resp.Header.Get("Content-Type"), nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, target any) error {
	resp, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upstream request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	query := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}

	return resp, nil
}

func translateStatus(status string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT":
		return ErrQuotaExceeded
	case "REQUEST_DENIED":
		return ErrRequestDenied
	default:
		return fmt.Errorf("upstream returned status %s", status)
	}
}
