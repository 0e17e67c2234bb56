package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"prescripto-patient-client/internal/domain/entity"
	"prescripto-patient-client/internal/domain/gateway"

	"github.com/sirupsen/logrus"
)

const (
	pathDoctorList      = "/api/doctor/list"
	pathGetProfile      = "/api/user/get-profile"
	pathUpdateProfile   = "/api/user/update-profile"
	pathBookAppointment = "/api/user/book-appointment"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Doctors []entity.Doctor `json:"doctors"`
	// interior pointer so a missing field stays nil
	UserData *entity.UserProfile `json:"userData"`
}

// BackendClient talks to the booking platform's REST API. A zero timeout on
// the underlying http.Client is intentional: the client configures none and
// relies on the transport's defaults.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
}

// NewBackendClient creates a client for the API at baseURL. Pass a nil
// httpClient to use a default one with no timeout configured.
func NewBackendClient(baseURL string, httpClient *http.Client, log *logrus.Logger) *BackendClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &BackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

var _ gateway.Backend = (*BackendClient)(nil)

// ListDoctors fetches the full doctor directory. No authentication required.
func (c *BackendClient) ListDoctors(ctx context.Context) ([]entity.Doctor, error) {
	env, err := c.do(ctx, http.MethodGet, pathDoctorList, "", nil, "")
	if err != nil {
		return nil, err
	}
	return env.Doctors, nil
}

// GetProfile fetches the authenticated user's profile.
func (c *BackendClient) GetProfile(ctx context.Context, token string) (*entity.UserProfile, error) {
	env, err := c.do(ctx, http.MethodGet, pathGetProfile, token, nil, "")
	if err != nil {
		return nil, err
	}
	if env.UserData == nil {
		return nil, fmt.Errorf("profile response missing userData")
	}
	return env.UserData, nil
}

// UpdateProfile sends the editable profile fields as a multipart form and
// returns the backend's confirmation message.
func (c *BackendClient) UpdateProfile(ctx context.Context, token string, req *gateway.UpdateProfileRequest) (string, error) {
	addressJSON, err := json.Marshal(req.Address)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":    req.Name,
		"phone":   req.Phone,
		"address": string(addressJSON),
		"dob":     req.DOB,
		"gender":  req.Gender,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return "", fmt.Errorf("build update-profile form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build update-profile form: %w", err)
	}

	env, err := c.do(ctx, http.MethodPost, pathUpdateProfile, token, &buf, mw.FormDataContentType())
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// BookAppointment books one slot for the authenticated user and returns the
// backend's confirmation message.
func (c *BackendClient) BookAppointment(ctx context.Context, token string, req *gateway.BookAppointmentRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode booking request: %w", err)
	}

	env, err := c.do(ctx, http.MethodPost, pathBookAppointment, token, bytes.NewReader(body), "application/json")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// do issues one request and decodes the standard envelope. A success:false
// envelope becomes an *APIError carrying the backend's message.
func (c *BackendClient) do(ctx context.Context, method, path, token string, body io.Reader, contentType string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warnf("Request to %s failed: %v", path, err)
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
		}
		return nil, fmt.Errorf("decode response from %s: %w", path, err)
	}

	if !env.Success {
		// Failure envelopes ride on any status code; the message is what the
		// user sees.
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("request %s failed with status %d", path, resp.StatusCode)
		}
		c.log.Warnf("Backend reported failure for %s: %s", path, msg)
		return nil, &gateway.APIError{Message: msg}
	}

	return &env, nil
}
