package geo

import (
	"context"
	"fmt"
)

// Division is one entry of the region/province/city/barangay hierarchy.
type Division struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PSGCClient reads the Philippine Standard Geographic Code hierarchy.
type PSGCClient struct {
	client
}

func NewPSGCClient(baseURL string) PSGCClient {
	return PSGCClient{client: newClient(baseURL)}
}

func (c PSGCClient) Regions(ctx context.Context) ([]Division, error) {
	return c.list(ctx, "/regions.json")
}

func (c PSGCClient) Provinces(ctx context.Context, regionCode string) ([]Division, error) {
	return c.list(ctx, fmt.Sprintf("/regions/%s/provinces.json", regionCode))
}

func (c PSGCClient) CitiesMunicipalities(ctx context.Context, provinceCode string) ([]Division, error) {
	return c.list(ctx, fmt.Sprintf("/provinces/%s/cities-municipalities.json", provinceCode))
}

func (c PSGCClient) Barangays(ctx context.Context, cityCode string) ([]Division, error) {
	return c.list(ctx, fmt.Sprintf("/cities-municipalities/%s/barangays.json", cityCode))
}

func (c PSGCClient) list(ctx context.Context, path string) ([]Division, error) {
	out := []Division{}
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
