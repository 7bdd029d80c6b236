package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwinata/deposito/internal/config"
	"github.com/adiwinata/deposito/internal/logger"
	"github.com/adiwinata/deposito/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.Client{BaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"bare host and port", "localhost:8080", "http://localhost:8080", false},
		{"explicit scheme", "https://deposito.example.com", "https://deposito.example.com", false},
		{"trailing slash stripped", "http://localhost:8080/", "http://localhost:8080", false},
		{"surrounding whitespace", "  localhost:8080  ", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdapterLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, "adi", user.Username)

		w.Header().Set("Authorization", "Bearer issued.jwt.token")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{UserID: 7, Username: user.Username})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	user, err := a.Login(context.Background(), "adi", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "issued.jwt.token", a.Token())
}

func TestAdapterLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid username/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Login(context.Background(), "adi", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestAdapterRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("username already taken"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Register(context.Background(), "adi", "s3cret")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAdapterListDeposits_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored.jwt.token", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/deposits", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Deposit{{DepositID: "DEP001"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored.jwt.token")

	deposits, err := a.ListDeposits(context.Background())
	require.NoError(t, err)
	require.Len(t, deposits, 1)
	assert.Equal(t, "DEP001", deposits[0].DepositID)
}

func TestAdapterGetDeposit_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/deposits/DEP404", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("Not Found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored.jwt.token")

	_, err := a.GetDeposit(context.Background(), "DEP404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdapterDeleteDeposit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/deposits/DEP001", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored.jwt.token")

	assert.NoError(t, a.DeleteDeposit(context.Background(), "DEP001"))
}

func TestAdapterSummary_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/deposits/summary", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SummaryStats{TotalDeposits: 3, CurrencySymbol: "Rp"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored.jwt.token")

	stats, err := a.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalDeposits)
	assert.Equal(t, "Rp", stats.CurrencySymbol)
}

func TestAdapterSettings_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/settings", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			models.SettingCurrencySymbol: "Rp",
			models.SettingDefaultTaxRate: "20",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stored.jwt.token")

	settings, err := a.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Rp", settings[models.SettingCurrencySymbol])
}

func TestSetToken_TrimsWhitespace(t *testing.T) {
	a := &httpServerAdapter{}

	a.SetToken("  token  ")
	assert.Equal(t, "token", a.Token())
}
