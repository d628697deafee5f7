package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
)

// HTTPClient talks to the quiz service over HTTP/JSON.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*HTTPClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) {
		h.httpClient = c
	}
}

// WithTimeout sets the per-request timeout; 0 means none.
func WithTimeout(timeout time.Duration) Option {
	return func(h *HTTPClient) {
		h.httpClient.Timeout = timeout
	}
}

// NewHTTPClient creates a client for the service at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type federatedRequest struct {
	ProviderToken string `json:"provider_token"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type startResponse struct {
	Items []models.Question `json:"items"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	return c.token(ctx, "/auth/login", credentialsRequest{Email: email, Password: password})
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (string, error) {
	return c.token(ctx, "/auth/register", credentialsRequest{Email: email, Password: password})
}

func (c *HTTPClient) FederatedLogin(ctx context.Context, providerToken string) (string, error) {
	return c.token(ctx, "/auth/federated", federatedRequest{ProviderToken: providerToken})
}

func (c *HTTPClient) token(ctx context.Context, path string, body any) (string, error) {
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, path, "", nil, body, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: POST %s: empty access_token", ErrServer, path)
	}
	return resp.AccessToken, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodPatch, "/auth/profile", token, nil, upd, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) DeleteProfile(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/auth/profile", token, nil, nil, nil)
}

func (c *HTTPClient) Categories(ctx context.Context, token string) ([]models.Category, error) {
	var cats []models.Category
	if err := c.do(ctx, http.MethodGet, "/quiz/categories", token, nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *HTTPClient) StartQuiz(ctx context.Context, token string, category int, difficulty models.Difficulty, amount int) ([]models.Question, error) {
	q := url.Values{}
	q.Set("category", strconv.Itoa(category))
	q.Set("difficulty", string(difficulty))
	q.Set("amount", strconv.Itoa(amount))

	var resp startResponse
	if err := c.do(ctx, http.MethodGet, "/quiz/start?"+q.Encode(), token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *HTTPClient) Scores(ctx context.Context, token string) ([]models.ScoreRecord, error) {
	var recs []models.ScoreRecord
	if err := c.do(ctx, http.MethodGet, "/scores", token, nil, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *HTTPClient) SubmitScore(ctx context.Context, token, idempotencyKey string, rec models.ScoreRecord) (*models.ScoreRecord, error) {
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers[common.IdempotencyKeyHeaderName] = idempotencyKey
	}

	body := struct {
		Total      int    `json:"total"`
		Correct    int    `json:"correct"`
		Category   string `json:"category"`
		Difficulty string `json:"difficulty"`
	}{rec.Total, rec.Correct, rec.Category, rec.Difficulty}

	var created models.ScoreRecord
	if err := c.do(ctx, http.MethodPost, "/scores", token, headers, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Close drops idle keep-alive connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// do sends a JSON request and decodes a JSON response into out (if non-nil).
// A non-empty token is sent as a bearer credential.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, headers map[string]string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: %s %s: HTTP %d: %s", mapStatus(resp.StatusCode), method, path,
			resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: failed to unmarshal response: %v", ErrServer, err)
	}
	return nil
}

func mapStatus(code int) error {
	switch {
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusConflict:
		return ErrConflict
	case code >= 500:
		return ErrServer
	default:
		return ErrRejected
	}
}
