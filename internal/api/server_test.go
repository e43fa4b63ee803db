package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk/internal/config"
	"github.com/eventdesk/eventdesk/internal/domain"
	"github.com/eventdesk/eventdesk/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:   "test",
			Port:          "8080",
			BaseURL:       "localhost:8080",
			JWTSigningKey: "test-signing-key",
		},
		Gin:   &config.GinConfig{Mode: gin.TestMode},
		Store: &config.StoreConfig{Path: "unused"},
	}

	s, err := NewServer(conf, store)
	require.NoError(t, err)
	return s
}

func doJSON(s *Server, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, s *Server) string {
	t.Helper()

	w := doJSON(s, http.MethodPost, "/api/v1/auth/register", `{
		"username": "bob_brown",
		"email": "bob@example.com",
		"password": "s3cretpass",
		"confirm_password": "s3cretpass"
	}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(s, http.MethodPost, "/api/v1/auth/login", `{
		"identity": "bob_brown",
		"password": "s3cretpass"
	}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestServer_Healthcheck(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServer_GuardedRoutesRejectMissingToken(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/v1/events", "/api/v1/tickets", "/api/v1/users"} {
		w := doJSON(s, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestServer_GuardedRoutesRejectBadToken(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodGet, "/api/v1/events", "", "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_RegisterLoginAndListEvents(t *testing.T) {
	s := newTestServer(t)
	token := registerAndLogin(t, s)

	w := doJSON(s, http.MethodGet, "/api/v1/events", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var events []domain.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Tech Conference 2025", events[0].Name)
}

func TestServer_RegisterDuplicateUsernameConflicts(t *testing.T) {
	s := newTestServer(t)
	registerAndLogin(t, s)

	w := doJSON(s, http.MethodPost, "/api/v1/auth/register", `{
		"username": "bob_brown",
		"email": "other@example.com",
		"password": "s3cretpass",
		"confirm_password": "s3cretpass"
	}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestServer_LoginWrongPassword(t *testing.T) {
	s := newTestServer(t)
	registerAndLogin(t, s)

	w := doJSON(s, http.MethodPost, "/api/v1/auth/login", `{
		"identity": "bob_brown",
		"password": "wrongpass1"
	}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_MeReflectsSession(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	registerAndLogin(t, s)

	w = doJSON(s, http.MethodGet, "/api/v1/auth/me", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var account domain.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))
	assert.Equal(t, "bob_brown", account.Username)

	w = doJSON(s, http.MethodPost, "/api/v1/auth/logout", "", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(s, http.MethodGet, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServer_RosterFlowKeepsEventInSync(t *testing.T) {
	s := newTestServer(t)
	token := registerAndLogin(t, s)

	w := doJSON(s, http.MethodPost, "/api/v1/events/1/participants", `{
		"first_name": "Carol",
		"last_name": "White",
		"role": "speaker",
		"status": "confirmed"
	}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate adds conflict.
	w = doJSON(s, http.MethodPost, "/api/v1/events/1/participants", `{
		"first_name": "Carol",
		"last_name": "White"
	}`, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The event's denormalized handle list picked up the new participant.
	w = doJSON(s, http.MethodGet, "/api/v1/events/1", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var event domain.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.Contains(t, event.Participants, domain.User{Name: "carol_white"})

	// Removal drops both sides; removing again is still a 204.
	w = doJSON(s, http.MethodDelete, "/api/v1/events/1/participants?first_name=Carol&last_name=White", "", token)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(s, http.MethodDelete, "/api/v1/events/1/participants?first_name=Carol&last_name=White", "", token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(s, http.MethodGet, "/api/v1/events/1", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	assert.NotContains(t, event.Participants, domain.User{Name: "carol_white"})
}

func TestServer_TicketFlow(t *testing.T) {
	s := newTestServer(t)
	token := registerAndLogin(t, s)

	w := doJSON(s, http.MethodPost, "/api/v1/tickets", `{
		"event_id": 1,
		"user_id": "bob_brown",
		"type": "vip",
		"price": 80
	}`, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ticket domain.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
	assert.Equal(t, 2, ticket.ID) // seed ticket holds ID 1
	assert.Equal(t, domain.TicketActive, ticket.Status)
	assert.NotEmpty(t, ticket.PurchaseDate)

	w = doJSON(s, http.MethodGet, "/api/v1/events/1/tickets", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	var tickets []domain.Ticket
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tickets))
	assert.Len(t, tickets, 2)
}
