/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/clapdb/clapctl/internal/provider"
)

// ServiceAPI talks to the deployed service's own HTTP endpoints: the license
// API for license management and the data API for user provisioning. Both
// base URLs come from stack outputs.
type ServiceAPI struct {
	httpClient *http.Client
}

// NewServiceAPI creates a service API client with a bounded request timeout
func NewServiceAPI() *ServiceAPI {
	return &ServiceAPI{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetLicense fetches the current service license from the license API
func (s *ServiceAPI) GetLicense(ctx context.Context, licenseAPIURL string) (*provider.License, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, licenseAPIURL+"/license", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build license request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get service license: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("license API returned %s", resp.Status)
	}

	var license provider.License
	if err := json.NewDecoder(resp.Body).Decode(&license); err != nil {
		return nil, fmt.Errorf("failed to decode license response: %w", err)
	}

	return &license, nil
}

// UpgradeLicense submits a new license key to the license API
func (s *ServiceAPI) UpgradeLicense(ctx context.Context, licenseAPIURL, licenseKey string) error {
	body := map[string]string{"key": licenseKey}
	return s.postJSON(ctx, licenseAPIURL+"/license", body, "failed to upgrade service license")
}

// AddUser provisions a service user through the data API
func (s *ServiceAPI) AddUser(ctx context.Context, dataAPIURL, user, password string) error {
	body := map[string]string{"name": user, "password": password}
	return s.postJSON(ctx, dataAPIURL+"/v1/users", body, fmt.Sprintf("failed to add user %s", user))
}

func (s *ServiceAPI) postJSON(ctx context.Context, url string, body interface{}, failure string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", failure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s: %s: %s", failure, resp.Status, bytes.TrimSpace(detail))
	}

	return nil
}
