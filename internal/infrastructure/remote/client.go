// Package remote is the HTTP client for the marketplace backend's REST API.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/workbridge/client/internal/core/domain"
	"github.com/workbridge/client/internal/core/ports"
	"github.com/workbridge/client/internal/metrics"
)

const (
	pathRegister       = "/register/"
	pathLogin          = "/login/"
	pathJobs           = "/jobs/"
	pathApplications   = "/applications/"
	pathMyApplications = "/my-applications/"
)

// Config captures the settings for reaching the backend.
type Config struct {
	BaseURL string
	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration
}

// StatusError is a non-2xx answer from the backend. Body is the raw payload.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error { return domain.ErrRemoteRejected }

// Client implements ports.RemoteAPI. It never retries.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

var _ ports.RemoteAPI = (*Client)(nil)

func NewClient(cfg Config, log zerolog.Logger) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if cfg.Timeout > 0 {
		c.SetTimeout(cfg.Timeout)
	}
	return &Client{http: c, log: log}
}

func (c *Client) Register(ctx context.Context, in domain.RegisterInput) (*domain.Account, error) {
	body := registerRequest{
		Username:     in.Username,
		Email:        in.Email,
		Password:     in.Password,
		IsFreelancer: in.IsFreelancer,
		IsClient:     in.IsClient,
		UserType:     domain.Account{IsFreelancer: in.IsFreelancer, IsClient: in.IsClient}.Role(),
	}
	var out accountPayload
	if err := c.do(ctx, http.MethodPost, pathRegister, "", body, &out); err != nil {
		return nil, err
	}
	account := out.toDomain()
	if account.Username == "" {
		account.Username = in.Username
	}
	if account.Email == "" {
		account.Email = in.Email
	}
	return &account, nil
}

func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	var out loginPayload
	if err := c.do(ctx, http.MethodPost, pathLogin, "", creds, &out); err != nil {
		return nil, err
	}
	account := out.accountPayload.toDomain()
	if account.Username == "" {
		account.Username = creds.Username
	}
	if account.ID == "" && out.Access != "" {
		id, err := userIDFromToken(out.Access)
		if err != nil {
			c.log.Debug().Err(err).Msg("access token has no readable user_id")
		}
		account.ID = id
	}
	// Profiles are keyed by account id, so the username stands in when the
	// backend gave neither an id nor a user_id claim.
	if account.ID == "" {
		c.log.Warn().Str("username", account.Username).Msg("login response carries no user id, keying profile by username")
		account.ID = account.Username
	}
	return &ports.LoginResult{
		Account:      account,
		AccessToken:  out.Access,
		RefreshToken: out.Refresh,
	}, nil
}

func (c *Client) ListJobs(ctx context.Context, token string) ([]domain.Job, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, pathJobs, token, nil, &raw); err != nil {
		return nil, err
	}
	var payload []jobPayload
	if err := decodeList(raw, &payload); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", pathJobs, err)
	}
	jobs := make([]domain.Job, 0, len(payload))
	for _, p := range payload {
		jobs = append(jobs, p.toDomain())
	}
	return jobs, nil
}

func (c *Client) Apply(ctx context.Context, token string, in domain.ApplicationInput) (*domain.Application, error) {
	body := applicationRequest{
		Job:         in.JobID,
		Proposal:    in.Proposal,
		CoverLetter: in.Proposal,
		BidAmount:   in.BidAmount,
	}
	var out applicationPayload
	if err := c.do(ctx, http.MethodPost, pathApplications, token, body, &out); err != nil {
		return nil, err
	}
	app := out.toDomain()
	if app.JobID == 0 {
		app.JobID = in.JobID
	}
	if app.Proposal == "" {
		app.Proposal = in.Proposal
	}
	if app.BidAmount.IsZero() {
		app.BidAmount = in.BidAmount
	}
	return &app, nil
}

func (c *Client) MyApplications(ctx context.Context, token string) ([]domain.Application, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, pathMyApplications, token, nil, &raw); err != nil {
		return nil, err
	}
	var payload []applicationPayload
	if err := decodeList(raw, &payload); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", pathMyApplications, err)
	}
	apps := make([]domain.Application, 0, len(payload))
	for _, p := range payload {
		apps = append(apps, p.toDomain())
	}
	return apps, nil
}

// Ping reports whether the backend answers at all. Any HTTP status counts.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.http.R().SetContext(ctx).Get("/"); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteUnavailable, err)
	}
	return nil
}

// do sends one JSON request and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		metrics.RemoteRequestDuration.WithLabelValues(path, "unreachable").Observe(time.Since(start).Seconds())
		return fmt.Errorf("%s: %w: %v", path, domain.ErrRemoteUnavailable, err)
	}
	if !resp.IsSuccess() {
		metrics.RemoteRequestDuration.WithLabelValues(path, "status_error").Observe(time.Since(start).Seconds())
		return &StatusError{Endpoint: path, Code: resp.StatusCode(), Body: strings.TrimSpace(resp.String())}
	}
	metrics.RemoteRequestDuration.WithLabelValues(path, "ok").Observe(time.Since(start).Seconds())

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode: %w", path, err)
	}
	return nil
}

// decodeList accepts either a bare JSON array or a paginated {"results": [...]}.
func decodeList(raw json.RawMessage, out any) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		return json.Unmarshal(raw, out)
	}
	var page struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return err
	}
	if len(page.Results) == 0 {
		return nil
	}
	return json.Unmarshal(page.Results, out)
}
