package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/adiwinata/deposito/internal/config"
	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/internal/utils"
	"github.com/adiwinata/deposito/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from cfg.BaseURL
// and configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, username, password string) (models.User, error) {
	var registeredUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Username: username, Password: password}).
		SetResult(&registeredUser).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return registeredUser, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Username: username, Password: password}).
		SetResult(&foundUser).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// CreateDeposit implements [ServerAdapter].
func (h *httpServerAdapter) CreateDeposit(ctx context.Context, input models.DepositInput) (models.Deposit, error) {
	var created models.Deposit

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&created).
		Post("/api/deposits")
	if err != nil {
		return models.Deposit{}, fmt.Errorf("create deposit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deposit{}, err
	}

	return created, nil
}

// ListDeposits implements [ServerAdapter].
func (h *httpServerAdapter) ListDeposits(ctx context.Context) ([]models.Deposit, error) {
	var deposits []models.Deposit

	resp, err := h.authedRequest(ctx).
		SetResult(&deposits).
		Get("/api/deposits")
	if err != nil {
		return nil, fmt.Errorf("list deposits request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return deposits, nil
}

// GetDeposit implements [ServerAdapter].
func (h *httpServerAdapter) GetDeposit(ctx context.Context, depositID string) (models.Deposit, error) {
	var deposit models.Deposit

	resp, err := h.authedRequest(ctx).
		SetResult(&deposit).
		Get("/api/deposits/" + url.PathEscape(depositID))
	if err != nil {
		return models.Deposit{}, fmt.Errorf("get deposit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deposit{}, err
	}

	return deposit, nil
}

// UpdateDeposit implements [ServerAdapter].
func (h *httpServerAdapter) UpdateDeposit(ctx context.Context, depositID string, input models.DepositInput) (models.Deposit, error) {
	var updated models.Deposit

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(input).
		SetResult(&updated).
		Put("/api/deposits/" + url.PathEscape(depositID))
	if err != nil {
		return models.Deposit{}, fmt.Errorf("update deposit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Deposit{}, err
	}

	return updated, nil
}

// DeleteDeposit implements [ServerAdapter].
func (h *httpServerAdapter) DeleteDeposit(ctx context.Context, depositID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/deposits/" + url.PathEscape(depositID))
	if err != nil {
		return fmt.Errorf("delete deposit request: %w", err)
	}

	return mapHTTPError(resp)
}

// Summary implements [ServerAdapter].
func (h *httpServerAdapter) Summary(ctx context.Context) (models.SummaryStats, error) {
	var stats models.SummaryStats

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/deposits/summary")
	if err != nil {
		return models.SummaryStats{}, fmt.Errorf("summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SummaryStats{}, err
	}

	return stats, nil
}

// ListBanks implements [ServerAdapter].
func (h *httpServerAdapter) ListBanks(ctx context.Context) ([]models.Bank, error) {
	var banks []models.Bank

	resp, err := h.authedRequest(ctx).
		SetResult(&banks).
		Get("/api/banks")
	if err != nil {
		return nil, fmt.Errorf("list banks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return banks, nil
}

// Settings implements [ServerAdapter].
func (h *httpServerAdapter) Settings(ctx context.Context) (map[string]string, error) {
	settings := make(map[string]string)

	resp, err := h.authedRequest(ctx).
		SetResult(&settings).
		Get("/api/settings")
	if err != nil {
		return nil, fmt.Errorf("settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return settings, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
