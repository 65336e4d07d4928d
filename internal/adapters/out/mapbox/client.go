// Package mapbox implements the route planner port against the Mapbox
// Geocoding and Directions APIs.
package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.mapbox.com"
	requestTimeout = 5 * time.Second

	// geocoding is biased to India, matching the marketplace's coverage.
	geocodeCountry = "IN"
)

// Client calls Mapbox over HTTP. The base URL and HTTP client are
// injectable so tests can point it at a local server.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the Mapbox API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// NewClient creates a Mapbox client with the given access token.
func NewClient(token string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger.With(slog.String("component", "mapbox-client")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geocodeResponse struct {
	Features []struct {
		Center [2]float64 `json:"center"` // lng, lat
	} `json:"features"`
}

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// GeocodeCity resolves a city name to coordinates using forward geocoding
// limited to one result.
func (c *Client) GeocodeCity(ctx context.Context, city string) (kernel.GeoPoint, error) {
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		c.baseURL,
		url.PathEscape(city),
		url.Values{
			"access_token": {c.token},
			"country":      {geocodeCountry},
			"limit":        {"1"},
		}.Encode(),
	)

	var resp geocodeResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return kernel.GeoPoint{}, err
	}
	if len(resp.Features) == 0 {
		return kernel.GeoPoint{}, fmt.Errorf("no geocoding result for %q", city)
	}

	center := resp.Features[0].Center
	return kernel.NewGeoPoint(center[1], center[0])
}

// PlanRoute geocodes both cities and requests a driving route between them.
func (c *Client) PlanRoute(ctx context.Context, pickupCity, dropCity string) (ports.RoutePlan, error) {
	pickup, err := c.GeocodeCity(ctx, pickupCity)
	if err != nil {
		return ports.RoutePlan{}, fmt.Errorf("geocode pickup: %w", err)
	}

	drop, err := c.GeocodeCity(ctx, dropCity)
	if err != nil {
		return ports.RoutePlan{}, fmt.Errorf("geocode drop: %w", err)
	}

	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/driving/%f,%f;%f,%f?%s",
		c.baseURL,
		pickup.Longitude(), pickup.Latitude(),
		drop.Longitude(), drop.Latitude(),
		url.Values{
			"access_token": {c.token},
			"geometries":   {"geojson"},
			"overview":     {"full"},
		}.Encode(),
	)

	var resp directionsResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return ports.RoutePlan{}, err
	}
	if len(resp.Routes) == 0 {
		return ports.RoutePlan{}, fmt.Errorf("no route between %q and %q", pickupCity, dropCity)
	}

	route := resp.Routes[0]
	return ports.RoutePlan{
		Pickup:          pickup,
		Drop:            drop,
		DistanceMeters:  route.Distance,
		DurationSeconds: route.Duration,
		Geometry:        route.Geometry.Coordinates,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("mapbox request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return fmt.Errorf("mapbox responded with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
