// Copyright 2026 The Minwon Console Authors
// SPDX-License-Identifier: Apache-2.0

// Package minwonclient is the HTTP client for the remote complaint
// service. The console treats the service as an opaque request/response
// collaborator: read the full collection, update one record by ID,
// upload an attachment. Every call either succeeds with a value or
// fails; failures carry the HTTP status via [ServiceError] but no
// further structure is required of them.
package minwonclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/jiminbae/minwon-console/lib/complaint"
)

// maxResponseBytes bounds how much of a response body the client will
// read. The complaint collection for a district office is a few
// thousand records; 32 MiB is far past any legitimate payload.
const maxResponseBytes = 32 << 20

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the base URL of the complaint service
	// (e.g., "http://127.0.0.1:8000").
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient
	// is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Client talks to the complaint service. Safe for use from multiple
// goroutines; it holds no mutable state beyond the HTTP transport.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for the complaint service at
// config.BaseURL.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("minwonclient: BaseURL is required")
	}
	if _, err := url.Parse(config.BaseURL); err != nil {
		return nil, fmt.Errorf("minwonclient: invalid BaseURL %q: %w", config.BaseURL, err)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// ServiceError is a non-success response from the complaint service.
type ServiceError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

// Error implements the error interface.
func (serviceError *ServiceError) Error() string {
	body := serviceError.Body
	if len(body) > 200 {
		body = body[:200] + "…"
	}
	return fmt.Sprintf("complaint service: %s %s returned %d: %s",
		serviceError.Method, serviceError.Path, serviceError.StatusCode, body)
}

// Complaints fetches the full complaint collection. The returned slice
// preserves the service's ordering (newest first), which becomes the
// store's arrival order.
func (client *Client) Complaints(ctx context.Context) ([]complaint.Record, error) {
	body, err := client.doRequest(ctx, http.MethodGet, "/complaints", nil)
	if err != nil {
		return nil, err
	}

	var records []complaint.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("minwonclient: failed to parse complaint list: %w", err)
	}

	client.logger.Debug("fetched complaints", "count", len(records))
	return records, nil
}

// UpdateRequest is the payload for a complaint update. Reply is the
// optional operator reply text, sent to the service but not stored
// client-side.
type UpdateRequest struct {
	Status complaint.Status `json:"status"`
	Dept   string           `json:"dept"`
	Reply  string           `json:"reply"`
}

// UpdateComplaint applies a status/department update to one record.
// The service fails the call (non-success status) when the ID is
// unknown or the payload is malformed.
func (client *Client) UpdateComplaint(ctx context.Context, id string, update UpdateRequest) error {
	_, err := client.doRequest(ctx, http.MethodPost, "/complaints/"+url.PathEscape(id), update)
	return err
}

// CommitEdit implements the console's committer contract by issuing
// UpdateComplaint.
func (client *Client) CommitEdit(ctx context.Context, id string, status complaint.Status, dept, reply string) error {
	return client.UpdateComplaint(ctx, id, UpdateRequest{Status: status, Dept: dept, Reply: reply})
}

// FetchAll implements the console's source contract by issuing
// Complaints.
func (client *Client) FetchAll(ctx context.Context) ([]complaint.Record, error) {
	return client.Complaints(ctx)
}

// uploadResponse is the service's reply to an attachment upload.
type uploadResponse struct {
	URL string `json:"url"`
}

// UploadAttachment uploads a file as multipart form data and returns
// the reference the service assigned, usable as a record's attachment
// field. Used only by submission tooling, not by the console's core
// browsing flow.
func (client *Client) UploadAttachment(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buffer bytes.Buffer
	writer := multipart.NewWriter(&buffer)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("minwonclient: failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("minwonclient: failed to read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("minwonclient: failed to finalize upload form: %w", err)
	}

	body, err := client.doRaw(ctx, http.MethodPost, "/uploads", writer.FormDataContentType(), &buffer)
	if err != nil {
		return "", err
	}

	var response uploadResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("minwonclient: failed to parse upload response: %w", err)
	}
	if response.URL == "" {
		return "", fmt.Errorf("minwonclient: upload response carried no url")
	}
	return response.URL, nil
}

// doRequest performs a JSON request and returns the response body.
// Non-2xx responses become a *ServiceError.
func (client *Client) doRequest(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("minwonclient: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	contentType := ""
	if requestBody != nil {
		contentType = "application/json"
	}
	return client.doRaw(ctx, method, path, contentType, bodyReader)
}

// doRaw performs a request with a pre-encoded body.
func (client *Client) doRaw(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("minwonclient: failed to create request: %w", err)
	}
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("minwonclient: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("minwonclient: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}

	return nil, &ServiceError{
		StatusCode: response.StatusCode,
		Method:     method,
		Path:       path,
		Body:       string(responseBody),
	}
}
