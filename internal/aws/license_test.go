/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLicense(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/license", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"type":      "enterprise",
			"expiresAt": "2026-08-01T00:00:00Z",
			"maxBytes":  1099511627776,
		})
	}))
	defer server.Close()

	api := NewServiceAPI()
	license, err := api.GetLicense(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "enterprise", license.Type)
	assert.Equal(t, int64(1099511627776), license.MaxBytes)
}

func TestGetLicense_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	api := NewServiceAPI()
	_, err := api.GetLicense(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestUpgradeLicense(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/license", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&received)
	}))
	defer server.Close()

	api := NewServiceAPI()
	err := api.UpgradeLicense(context.Background(), server.URL, "LIC-12345")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"key": "LIC-12345"}, received)
}

func TestAddUser(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&received)
	}))
	defer server.Close()

	api := NewServiceAPI()
	err := api.AddUser(context.Background(), server.URL, "alice", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "alice", "password": "s3cret"}, received)
}

func TestAddUser_ErrorIncludesDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("user already exists"))
	}))
	defer server.Close()

	api := NewServiceAPI()
	err := api.AddUser(context.Background(), server.URL, "alice", "s3cret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add user alice")
	assert.Contains(t, err.Error(), "user already exists")
}
