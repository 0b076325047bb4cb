// Package directory implements the synchronous collaborator lookups
// against the restaurant and user services' REST APIs. Transport and
// server failures surface as upstream-unavailable errors so callers can
// distinguish "the collaborator said no" from "the collaborator is down".
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fooddelivery/internal/pkg/errs"
)

const requestTimeout = 5 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// getJSON performs a GET against url and decodes the body into out.
// Returns (false, nil) on 404, (true, nil) on success.
func getJSON(ctx context.Context, client *http.Client, service, url string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return false, errs.NewUpstreamUnavailableError(service, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode != http.StatusOK:
		return false, errs.NewUpstreamUnavailableError(service,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, errs.NewUpstreamUnavailableError(service, err)
	}

	return true, nil
}
