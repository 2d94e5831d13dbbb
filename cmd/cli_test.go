package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "secret1"

// fakeGateway is an in-memory stand-in for the fitness API gateway.
type fakeGateway struct {
	t      *testing.T
	server *httptest.Server

	mu         sync.Mutex
	token      string
	expired    bool
	username   string
	email      string
	activities []map[string]any
	nextID     int
	analyzed   []string
	deleted    []string
}

func newFakeGateway(t *testing.T) *fakeGateway {
	t.Helper()

	gw := &fakeGateway{t: t, username: "ana", email: "ana@example.com"}
	gw.token = gw.sign(t)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/auth/login", gw.login).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/auth/register", gw.register).Methods(http.MethodPost)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(gw.requireToken)
	api.HandleFunc("/activities", gw.listActivities).Methods(http.MethodGet)
	api.HandleFunc("/activities/my-activities/filtered", gw.listActivities).Methods(http.MethodGet)
	api.HandleFunc("/activities/create", gw.createActivity).Methods(http.MethodPost)
	api.HandleFunc("/activities/delete/{id}", gw.deleteActivity).Methods(http.MethodDelete)
	api.HandleFunc("/recommendations", gw.listRecommendations).Methods(http.MethodGet)
	api.HandleFunc("/ai/analyze", gw.analyze).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", gw.getUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", gw.updateUser).Methods(http.MethodPut)

	gw.server = httptest.NewServer(router)
	t.Cleanup(gw.server.Close)
	return gw
}

func (g *fakeGateway) sign(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    "ana",
		"userId": 7,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("gateway-secret"))
	require.NoError(t, err)
	return token
}

func (g *fakeGateway) expire() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.expired = true
}

func (g *fakeGateway) calls() (analyzed, deleted []string, activities []map[string]any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.analyzed), slices.Clone(g.deleted), slices.Clone(g.activities)
}

func (g *fakeGateway) userJSON() map[string]any {
	return map[string]any{"id": 7, "username": g.username, "email": g.email, "createdAt": "2026-01-05T10:00:00"}
}

func (g *fakeGateway) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Password != testPassword {
		respond(w, http.StatusUnauthorized, map[string]any{"message": "Invalid email or password"})
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.expired = false
	respond(w, http.StatusOK, map[string]any{"token": g.token, "user": g.userJSON()})
}

func (g *fakeGateway) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.username = body.Username
	g.email = body.Email
	respond(w, http.StatusOK, map[string]any{"token": g.token, "user": body.Username})
}

func (g *fakeGateway) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		ok := !g.expired && r.Header.Get("Authorization") == "Bearer "+g.token
		g.mu.Unlock()
		if !ok {
			respond(w, http.StatusUnauthorized, map[string]any{"message": "Unauthorized"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *fakeGateway) listActivities(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	content := []map[string]any{}
	filter := r.URL.Query().Get("activityType")
	for i := len(g.activities) - 1; i >= 0; i-- {
		if filter == "" || g.activities[i]["activityType"] == filter {
			content = append(content, g.activities[i])
		}
	}
	totalPages := 0
	if len(content) > 0 {
		totalPages = 1
	}
	respond(w, http.StatusOK, map[string]any{"content": content, "totalPages": totalPages})
}

func (g *fakeGateway) createActivity(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	require.NoError(g.t, json.NewDecoder(r.Body).Decode(&body))

	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	body["id"] = fmt.Sprintf("a%d", g.nextID)
	body["userId"] = 7
	body["status"] = strings.ToUpper(fmt.Sprint(body["status"]))
	g.activities = append(g.activities, body)
	respond(w, http.StatusCreated, body)
}

func (g *fakeGateway) deleteActivity(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	g.mu.Lock()
	defer g.mu.Unlock()
	for i, activity := range g.activities {
		if activity["id"] == id {
			g.activities = append(g.activities[:i], g.activities[i+1:]...)
			g.deleted = append(g.deleted, id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	respond(w, http.StatusNotFound, map[string]any{"message": "Activity not found"})
}

func (g *fakeGateway) listRecommendations(w http.ResponseWriter, _ *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	content := []map[string]any{}
	for _, id := range g.analyzed {
		content = append(content, recommendationFor(id))
	}
	respond(w, http.StatusOK, content)
}

func (g *fakeGateway) analyze(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ActivityID string `json:"activityId"`
	}
	require.NoError(g.t, json.NewDecoder(r.Body).Decode(&body))

	g.mu.Lock()
	defer g.mu.Unlock()
	g.analyzed = append(g.analyzed, body.ActivityID)
	respond(w, http.StatusOK, []map[string]any{recommendationFor(body.ActivityID)})
}

func recommendationFor(activityID string) map[string]any {
	return map[string]any{
		"id":                 "r-" + activityID,
		"activityId":         activityID,
		"activityType":       "RUNNING",
		"recommendationText": "Keep a steady pace",
		"improvements":       []string{"longer warm-up"},
	}
}

func (g *fakeGateway) getUser(w http.ResponseWriter, _ *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()
	respond(w, http.StatusOK, g.userJSON())
}

func (g *fakeGateway) updateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	require.NoError(g.t, json.NewDecoder(r.Body).Decode(&body))

	g.mu.Lock()
	defer g.mu.Unlock()
	g.username = body.Username
	g.email = body.Email
	respond(w, http.StatusOK, g.userJSON())
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func executeCLI(t *testing.T, home, gatewayURL string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("FIT_SESSION_BACKEND", "toml")
	t.Setenv("FIT_GATEWAY_BASE_URL", gatewayURL)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func loginCLI(t *testing.T, home string, gw *fakeGateway) {
	t.Helper()

	stdout, _, err := executeCLI(t, home, gw.server.URL, "login", "--email", "ana@example.com", "--password", testPassword)
	require.NoError(t, err)
	require.Contains(t, stdout, "Signed in as ana.")
}

func TestVersionCommand(t *testing.T) {
	gw := newFakeGateway(t)

	stdout, _, err := executeCLI(t, t.TempDir(), gw.server.URL, "version")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(stdout))
}

func TestWhoamiWhenSignedOut(t *testing.T) {
	gw := newFakeGateway(t)

	stdout, _, err := executeCLI(t, t.TempDir(), gw.server.URL, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "not signed in\n", stdout)
}

func TestLoginPersistsSessionAcrossInvocations(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, gw.server.URL, "login", "--email", "ana@example.com", "--password", testPassword)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as ana. Continue with `fit dashboard`.")
	assert.Contains(t, stdout, "[success] Logged in successfully")

	sessionFile, err := os.ReadFile(filepath.Join(home, ".fit", "session.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(sessionFile), "[[entries]]")

	stdout, _, err = executeCLI(t, home, gw.server.URL, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "ana <ana@example.com> (id 7)\n", stdout)
}

func TestLoginWithReturnToPointsAtRequestedPage(t *testing.T) {
	gw := newFakeGateway(t)

	stdout, _, err := executeCLI(t, t.TempDir(), gw.server.URL,
		"login", "--email", "ana@example.com", "--password", testPassword, "--return-to", "/profile")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Continue with `fit profile show`.")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, gw.server.URL, "login", "--email", "ana@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
	assert.Equal(t, "[error] Invalid email or password\n", stdout)

	stdout, _, err = executeCLI(t, home, gw.server.URL, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "not signed in\n", stdout)
}

func TestLoginWhenAlreadySignedIn(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()
	loginCLI(t, home, gw)

	_, _, err := executeCLI(t, home, gw.server.URL, "login", "--email", "ana@example.com", "--password", testPassword)
	require.ErrorIs(t, err, errAlreadySignedIn)
	assert.Contains(t, err.Error(), "run `fit logout` first")
}

func TestRegisterSignsIn(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, gw.server.URL,
		"register", "--username", "ben", "--email", "ben@example.com", "--password", testPassword)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as ben.")
	assert.Contains(t, stdout, "[success] Account created successfully")

	stdout, _, err = executeCLI(t, home, gw.server.URL, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "ben <ben@example.com> (id 7)\n", stdout)
}

func TestActivityListRequiresLogin(t *testing.T) {
	gw := newFakeGateway(t)

	_, _, err := executeCLI(t, t.TempDir(), gw.server.URL, "activity", "list")
	require.ErrorIs(t, err, errLoginRequired)
	assert.Contains(t, err.Error(), "/dashboard")
}

func TestActivityCreateListAndDelete(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()
	loginCLI(t, home, gw)

	stdout, stderr, err := executeCLI(t, home, gw.server.URL,
		"activity", "create",
		"--title", "Morning run",
		"--type", "running",
		"--status", "completed",
		"--duration", "30",
		"--calories", "320",
		"--start", "2026-03-02T06:45",
		"--metrics", `{"distanceKm": 5.2}`,
	)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Saving activity")
	assert.Contains(t, stdout, "Created activity a1 (Morning run).")
	assert.Contains(t, stdout, "[success] Activity created successfully!")
	assert.Contains(t, stdout, "[info] AI recommendations updated!")
	analyzed, _, activities := gw.calls()
	assert.Equal(t, []string{"a1"}, analyzed)
	require.Len(t, activities, 1)
	assert.Equal(t, "2026-03-02T06:45:00", activities[0]["startTime"])

	stdout, _, err = executeCLI(t, home, gw.server.URL, "activity", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Morning run")
	assert.Contains(t, stdout, "Running")
	assert.Contains(t, stdout, "2026-03-02 06:45")
	assert.Contains(t, stdout, "page 1/1")

	stdout, _, err = executeCLI(t, home, gw.server.URL, "activity", "list", "--type", "YOGA")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No activities yet.")
	assert.Contains(t, stdout, "no pages")

	stdout, _, err = executeCLI(t, home, gw.server.URL, "recommendation", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Keep a steady pace")
	assert.Contains(t, stdout, "improve: longer warm-up")
	assert.Contains(t, stdout, "[info] AI recommendations updated!")

	stdout, _, err = executeCLI(t, home, gw.server.URL, "activity", "delete", "a1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[success] Activity deleted successfully")
	_, deleted, _ := gw.calls()
	assert.Equal(t, []string{"a1"}, deleted)
}

func TestActivityListJSONOutput(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()
	loginCLI(t, home, gw)

	stdout, _, err := executeCLI(t, home, gw.server.URL, "activity", "list", "--json", "--size", "10", "--direction", "asc")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var page pageOutput[json.RawMessage]
	require.NoError(t, json.Unmarshal([]byte(stdout), &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Equal(t, "startTime", page.SortBy)
	assert.Equal(t, "asc", page.Direction)
	assert.Empty(t, page.Content)
}

func TestActivityCreateRejectsZeroDuration(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()
	loginCLI(t, home, gw)

	stdout, _, err := executeCLI(t, home, gw.server.URL,
		"activity", "create", "--title", "Stretch", "--type", "STRETCHING", "--duration", "0")
	require.Error(t, err)
	assert.Equal(t, "Duration must be at least 1 minute", err.Error())
	assert.Contains(t, stdout, "[error] Duration must be at least 1 minute")
	_, _, activities := gw.calls()
	assert.Empty(t, activities)
}

func TestActivityListRejectsInvalidPagination(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()
	loginCLI(t, home, gw)

	_, _, err := executeCLI(t, home, gw.server.URL, "activity", "list", "--page", "0")
	require.Error(t, err)
	assert.Equal(t, "Page must be at least 1", err.Error())

	_, _, err = executeCLI(t, home, gw.server.URL, "activity", "list", "--direction", "sideways")
	require.Error(t, err)
	assert.Equal(t, "Sort direction must be asc or desc", err.Error())
}

func TestExpiredSessionSignsOut(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()
	loginCLI(t, home, gw)
	gw.expire()

	stdout, stderr, err := executeCLI(t, home, gw.server.URL, "activity", "list")
	require.Error(t, err)
	assert.Contains(t, stdout, "[error] Your session has expired. Please log in again.")
	assert.Equal(t, 1, strings.Count(stdout, "[error]"))
	assert.Contains(t, stderr, "Run `fit login` to sign in again.")

	stdout, _, err = executeCLI(t, home, gw.server.URL, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "not signed in\n", stdout)
}

func TestLogoutForgetsSession(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()
	loginCLI(t, home, gw)

	stdout, _, err := executeCLI(t, home, gw.server.URL, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed out.")

	stdout, _, err = executeCLI(t, home, gw.server.URL, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "not signed in\n", stdout)
}

func TestDashboardOncePrintsSnapshot(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()
	loginCLI(t, home, gw)

	_, _, err := executeCLI(t, home, gw.server.URL,
		"activity", "create", "--title", "Evening swim", "--type", "SWIMMING", "--duration", "45")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, gw.server.URL, "dashboard", "--once")
	require.NoError(t, err)
	assert.Contains(t, stdout, "signed in as ana <ana@example.com>")
	assert.Contains(t, stdout, "Evening swim")
	assert.Contains(t, stdout, "Keep a steady pace")
	assert.Equal(t, 1, strings.Count(stdout, "AI recommendations updated!"))
}

func TestProfileShowAndUpdate(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()
	loginCLI(t, home, gw)

	stdout, _, err := executeCLI(t, home, gw.server.URL, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "username:\tana")
	assert.Contains(t, stdout, "member since:\t05 Jan 2026")

	stdout, _, err = executeCLI(t, home, gw.server.URL, "profile", "update", "--username", "ana.b")
	require.NoError(t, err)
	assert.Contains(t, stdout, "username:\tana.b")
	assert.Contains(t, stdout, "email:\tana@example.com")
	assert.Contains(t, stdout, "[success] Profile updated successfully!")

	stdout, _, err = executeCLI(t, home, gw.server.URL, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "ana.b <ana@example.com> (id 7)\n", stdout)
}

func TestMetricsFlagPrintsCounters(t *testing.T) {
	gw := newFakeGateway(t)
	home := t.TempDir()

	_, stderr, err := executeCLI(t, home, gw.server.URL,
		"login", "--email", "ana@example.com", "--password", testPassword, "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, `fit_client_session_transitions_total{status="authenticated"}`)
	assert.Contains(t, stderr, `fit_client_notifications_posted_total{kind="success"}`)
}

func TestUnknownCommand(t *testing.T) {
	gw := newFakeGateway(t)

	_, _, err := executeCLI(t, t.TempDir(), gw.server.URL, "usage")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command \"usage\"")
}

func TestParseStartTime(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 3, 2, 9, 15, 42, 0, time.Local) }

	parsed, err := parseStartTime("", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 15, 0, 0, time.Local), parsed)

	parsed, err = parseStartTime("2026-03-01 18:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 18, 30, 0, 0, time.Local), parsed)

	_, err = parseStartTime("yesterday", now)
	require.Error(t, err)
}
