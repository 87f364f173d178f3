package geo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Point is a geocoded coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeocodeClient resolves free-text addresses to coordinates so the origin
// picker can pin them on the map.
type GeocodeClient struct {
	client
}

func NewGeocodeClient(baseURL string) GeocodeClient {
	return GeocodeClient{client: newClient(baseURL)}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c GeocodeClient) Search(ctx context.Context, query string) (Point, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", "ph")

	results := []nominatimResult{}
	if err := c.getJSON(ctx, "/search", q, &results); err != nil {
		return Point{}, err
	}
	if len(results) == 0 {
		return Point{}, fmt.Errorf("no geocode results for %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Point{}, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}
	return Point{Lat: lat, Lon: lon}, nil
}
