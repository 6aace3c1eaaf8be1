package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
}

// Probe requests a health endpoint and returns the reported status. Any
// answer other than 200 is an error.
func Probe(ctx context.Context, client *http.Client, url, username, password string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}

	if username != "" {
		req.SetBasicAuth(username, password)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("client do: %w", err)
	}
	defer resp.Body.Close()

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return "", fmt.Errorf("body decode, status %d: %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		return health.Status, fmt.Errorf("unhealthy, status %d: %s", resp.StatusCode, health.Status)
	}

	return health.Status, nil
}
