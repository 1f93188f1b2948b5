package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/hrverify/internal/client/client"
	"github.com/dmitrijs2005/hrverify/internal/client/config"
	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/client/routes"
	"github.com/dmitrijs2005/hrverify/internal/client/session"
	"github.com/dmitrijs2005/hrverify/internal/logging"
	"github.com/fatih/color"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newTestApp wires an App against h with input as the scripted terminal.
func newTestApp(t *testing.T, h http.HandlerFunc, input string) (*App, *bytes.Buffer, *session.MemoryStore) {
	t.Helper()
	if h == nil {
		h = http.NotFound
	}
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BaseURL = srv.URL

	store := session.NewMemoryStore()
	api := client.New(client.Options{BaseURL: srv.URL, Timeout: 2 * time.Second}, store, logging.Nop())

	out := &bytes.Buffer{}
	a := newApp(cfg, logging.Nop(), store, api, strings.NewReader(input), out)
	t.Cleanup(a.Close)
	return a, out, store
}

func stubPassword(t *testing.T, secret string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer, _ string) ([]byte, error) { return []byte(secret), nil }
	t.Cleanup(func() { getPassword = orig })
}

func TestLogin_CandidateReachesDashboard(t *testing.T) {
	stubPassword(t, "secret1")

	var got models.LoginRequest
	a, out, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			writeJSON(w, http.StatusOK, models.AuthResponse{Token: "tok-1", Role: models.RoleCandidate})
		case "/api/candidate/reports":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			writeJSON(w, http.StatusOK, []models.Report{{ID: "r1", Reason: "fake offer", Status: models.ReportPending}})
		default:
			http.NotFound(w, r)
		}
	}, "candidate\nann@example.com\n")

	ctx := context.Background()
	require.NoError(t, a.cmdLogin(ctx, nil))

	assert.Equal(t, "ann@example.com", got.Username)
	assert.Equal(t, "secret1", got.Password)

	s, ok, err := store.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.Session{Token: "tok-1", Role: models.RoleCandidate}, s)

	assert.Equal(t, routes.CandidateDashboard, a.route)
	assert.Contains(t, out.String(), "Logged in as CANDIDATE.")
	assert.Len(t, a.candidate.Reports.Items, 1)
}

func TestLogin_RejectedCredentialsStayOnLogin(t *testing.T) {
	stubPassword(t, "wrong-pass")

	a, out, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
	}, "company\nhr@acme.com\n")

	ctx := context.Background()
	require.NoError(t, a.cmdLogin(ctx, nil))

	assert.Equal(t, routes.Login, a.route)
	assert.Contains(t, out.String(), "Login failed: Invalid credentials")
	assert.NotContains(t, out.String(), "session has expired")

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogin_AdminOtp(t *testing.T) {
	stubPassword(t, "admin-pass")

	var otps []string
	a, _, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		switch r.URL.Path {
		case "/api/auth/login":
			writeJSON(w, http.StatusOK, models.AuthResponse{Message: models.MessageOTPRequired})
		case "/api/auth/admin/login":
			otps = append(otps, req.OTP)
			writeJSON(w, http.StatusOK, models.AuthResponse{Token: "adm", Role: models.RoleAdmin})
		case "/api/admin/dashboard/stats":
			writeJSON(w, http.StatusOK, models.AdminStats{TotalCompanies: 3})
		case "/api/admin/companies":
			writeJSON(w, http.StatusOK, []models.Company{})
		default:
			http.NotFound(w, r)
		}
	}, "admin\nroot@example.com\n12ab\n654321\n")

	require.NoError(t, a.cmdLogin(context.Background(), nil))

	assert.Equal(t, []string{"654321"}, otps)
	assert.Equal(t, routes.AdminDashboard, a.route)
	require.NotNil(t, a.admin.Stats)
	assert.Equal(t, 3, a.admin.Stats.TotalCompanies)
}

func TestLogin_CancelLeavesFlow(t *testing.T) {
	a, _, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}, "cancel\n")

	err := a.cmdLogin(context.Background(), nil)
	require.ErrorIs(t, err, errAborted)
	assert.Equal(t, routes.Login, a.route)
}

func TestSessionExpiredRedirectsToLogin(t *testing.T) {
	a, out, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token expired"})
	}, "")

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "stale", models.RoleCompany))
	a.route = routes.CompanyDashboard

	err := a.cmdCompanyContacts(ctx, nil)
	require.Error(t, err)

	assert.Equal(t, routes.Login, a.route)
	assert.Contains(t, out.String(), "Your session has expired")
	_, ok, _ := store.Get(ctx)
	assert.False(t, ok)
}

func TestNavigate_GuardsRoles(t *testing.T) {
	a, out, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Report{})
	}, "")
	ctx := context.Background()

	a.navigate(ctx, routes.AdminDashboard)
	assert.Equal(t, routes.Login, a.route)
	assert.Contains(t, out.String(), "/admin is not available")

	require.NoError(t, store.Set(ctx, "tok", models.RoleCandidate))
	a.navigate(ctx, routes.CompanyDashboard)
	assert.Equal(t, routes.CandidateDashboard, a.route)

	a.navigate(ctx, routes.About)
	assert.Equal(t, routes.About, a.route)
}

func TestRun_StartsOnStoredDashboard(t *testing.T) {
	a, out, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Report{})
	}, "exit\n")
	require.NoError(t, store.Set(context.Background(), "tok", models.RoleCandidate))

	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	a.Run(context.Background())

	assert.Equal(t, routes.CandidateDashboard, a.route)
	assert.Contains(t, out.String(), "Welcome to HRVerify (backend "+a.api.BaseURL())
	assert.Contains(t, lines, "Bye!")
}

func TestCommands_DependOnRouteAndSession(t *testing.T) {
	a, _, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {}, "")
	ctx := context.Background()

	names := func() []string {
		var ns []string
		for _, c := range a.commands(ctx) {
			ns = append(ns, c.Name)
		}
		return ns
	}

	assert.Contains(t, names(), "login")
	assert.NotContains(t, names(), "logout")

	require.NoError(t, store.Set(ctx, "tok", models.RoleCompany))
	a.route = routes.CompanyDashboard
	assert.Contains(t, names(), "logout")
	assert.Contains(t, names(), "bulk-delete")
	assert.NotContains(t, names(), "approve")
}

func TestLogout(t *testing.T) {
	a, _, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {}, "")
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "tok", models.RoleAdmin))

	require.NoError(t, a.cmdLogout(ctx, nil))
	assert.Equal(t, routes.Landing, a.route)
	_, ok, _ := store.Get(ctx)
	assert.False(t, ok)
}

func TestTokenSubjectAndStatus(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "ann@example.com"}).
		SignedString([]byte("test-key"))
	require.NoError(t, err)

	assert.Equal(t, "ann@example.com", tokenSubject(tok))
	assert.Equal(t, "", tokenSubject("not-a-jwt"))

	a, _, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {}, "")
	assert.Equal(t, "/", a.status())

	require.NoError(t, store.Set(context.Background(), tok, models.RoleCandidate))
	a.route = routes.CandidateDashboard
	assert.Equal(t, "(ann@example.com CANDIDATE) /candidate", a.status())

	require.NoError(t, store.Set(context.Background(), "opaque", models.RoleCandidate))
	assert.Equal(t, "(CANDIDATE) /candidate", a.status())
}

func TestSignup_UnauthorizedMovesToLogin(t *testing.T) {
	stubPassword(t, "secret1")

	var calls int
	a, out, store := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Signup disabled"})
	}, "candidate\nAnn Lee\nann@example.com\n\n")

	ctx := context.Background()
	require.NoError(t, a.cmdSignup(ctx, nil))

	assert.Equal(t, 1, calls)
	assert.Equal(t, routes.Login, a.route)
	assert.Contains(t, out.String(), "Not authorized. Please log in.")
	assert.Contains(t, out.String(), "Signup disabled")
	assert.Equal(t, 1, strings.Count(out.String(), "Account type"), "the dialog is not restarted")

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignup_UnauthorizedImplicitLoginMovesToLogin(t *testing.T) {
	stubPassword(t, "secret1")

	a, _, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/signup":
			writeJSON(w, http.StatusOK, models.AuthResponse{})
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Account not verified"})
		}
	}, "candidate\nAnn Lee\nann@example.com\n\n123456\n")

	require.NoError(t, a.cmdSignup(context.Background(), nil))
	assert.Equal(t, routes.Login, a.route)
}
