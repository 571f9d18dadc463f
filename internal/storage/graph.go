package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// GraphStorage handles file uploads to a Microsoft Graph drive
type GraphStorage struct {
	tenantID     string
	clientID     string
	clientSecret string
	driveID      string
	httpClient   *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewGraphStorage creates a new Graph drive client
func NewGraphStorage(tenantID, clientID, clientSecret, driveID string) *GraphStorage {
	return &GraphStorage{
		tenantID:     tenantID,
		clientID:     clientID,
		clientSecret: clientSecret,
		driveID:      driveID,
		httpClient:   &http.Client{},
	}
}

// UploadFile uploads a file to the drive and returns its public web URL
func (s *GraphStorage) UploadFile(ctx context.Context, path string, file io.Reader, contentType string) (string, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return "", err
	}

	uploadURL := fmt.Sprintf("https://graph.microsoft.com/v1.0/drives/%s/root:/%s:/content",
		s.driveID, path)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(fileBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	req.Header.Set("Content-Type", contentType)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(body))
	}

	var item struct {
		WebURL string `json:"webUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if item.WebURL == "" {
		return "", fmt.Errorf("upload response missing webUrl")
	}

	return item.WebURL, nil
}

// accessToken exchanges client credentials for a bearer token, caching it
// until shortly before expiry.
func (s *GraphStorage) accessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.tokenExpiry) {
		return s.token, nil
	}

	tokenURL := fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", s.tenantID)

	payload := url.Values{}
	payload.Set("grant_type", "client_credentials")
	payload.Set("client_id", s.clientID)
	payload.Set("client_secret", s.clientSecret)
	payload.Set("scope", "https://graph.microsoft.com/.default")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(payload.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	s.token = tokenResp.AccessToken
	s.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn-60) * time.Second)

	return s.token, nil
}
