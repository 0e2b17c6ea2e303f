package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexpass/gympass-backend-go/internal/config"
	"github.com/flexpass/gympass-backend-go/internal/database"
)

// Fixed IDs from the seed migration.
const (
	seededIronPeakID = "7c9f1a02-5b1e-4d7a-9a64-2f0f3a5c1d11"
	seededCrossFitID = "b42e8c77-3d0a-4f2b-8e15-6a9d0c4b2e22"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator := database.NewMigrationManager(db, filepath.Join("..", "..", "migrations"))
	require.NoError(t, migrator.RunMigrations())

	cfg := &config.Config{
		Port:      ":0",
		JWTSecret: "test-secret",
	}
	return SetupRouter(cfg, db)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":"supersecret","fullName":"Jane Doe"}`, email)
	w, env := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/listings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_GetListings(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/listings", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 5, data.Total)
	assert.Contains(t, w.Body.String(), "Iron Peak Fitness")
	// Iron Peak is open 24 hours every day, so its badge is set at any
	// instant.
	assert.Contains(t, w.Body.String(), `"isOpen":true`)
}

func TestRouter_GetListings_Filtered(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/listings?query=crossfit", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Beach Body CrossFit")
	assert.NotContains(t, w.Body.String(), "Iron Peak Fitness")

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/listings?category=Yoga", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Zen Flow")
}

func TestRouter_GetListingByID(t *testing.T) {
	router := newTestRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/listings/"+seededIronPeakID, "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Title       string `json:"title"`
		PlaceStatus *struct {
			IsOpen bool `json:"isOpen"`
		} `json:"placeStatus"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Iron Peak Fitness", data.Title)
	// Iron Peak is open 24 hours every day, so this holds at any instant.
	require.NotNil(t, data.PlaceStatus)
	assert.True(t, data.PlaceStatus.IsOpen)

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/listings/no-such-id", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_AuthRequired(t *testing.T) {
	router := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/bookings"},
		{http.MethodGet, "/api/v1/saved"},
		{http.MethodPost, "/api/v1/payments/intent"},
	} {
		w, _ := doRequest(t, router, tc.method, tc.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}

	w, _ := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", "", "not-a-valid-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_RegisterLoginMe(t *testing.T) {
	router := newTestRouter(t)

	token := registerUser(t, router, "jane@example.com")

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/auth/me", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var me struct {
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "jane@example.com", me.Email)

	// Duplicate registration conflicts.
	body := `{"email":"jane@example.com","password":"supersecret","fullName":"Jane Doe"}`
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/auth/register", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	// Login round-trip.
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"jane@example.com","password":"supersecret"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"jane@example.com","password":"wrong-password"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_BookingFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "booker@example.com")

	body := fmt.Sprintf(`{"listingId":%q,"passDate":"2026-09-15","passCount":2}`, seededIronPeakID)
	w, env := doRequest(t, router, http.MethodPost, "/api/v1/bookings", body, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var booking struct {
		Status    string `json:"status"`
		PassCount int    `json:"passCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, 2, booking.PassCount)

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/bookings", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Iron Peak Fitness")

	// Unknown listing.
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/bookings",
		`{"listingId":"no-such-id","passDate":"2026-09-15"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SavedFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "saver@example.com")

	w, _ := doRequest(t, router, http.MethodPut, "/api/v1/saved/"+seededCrossFitID, "", token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/saved", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var ids struct {
		ListingIDs []string `json:"listingIds"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &ids))
	assert.Equal(t, []string{seededCrossFitID}, ids.ListingIDs)

	w, env = doRequest(t, router, http.MethodGet, "/api/v1/saved/listings", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Beach Body CrossFit")

	var expanded struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &expanded))
	assert.Equal(t, 1, expanded.Total)

	w, _ = doRequest(t, router, http.MethodDelete, "/api/v1/saved/"+seededCrossFitID, "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, router, http.MethodGet, "/api/v1/saved", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &ids))
	assert.Empty(t, ids.ListingIDs)

	// Saving an unknown gym is a 404.
	w, _ = doRequest(t, router, http.MethodPut, "/api/v1/saved/no-such-id", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ReviewFlow(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "reviewer@example.com")

	body := `{"rating":4,"comment":"Great squat racks."}`
	w, env := doRequest(t, router, http.MethodPost, "/api/v1/listings/"+seededIronPeakID+"/reviews", body, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var review struct {
		AuthorName string `json:"authorName"`
		Rating     int    `json:"rating"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &review))
	assert.Equal(t, "Jane Doe", review.AuthorName)
	assert.Equal(t, 4, review.Rating)

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/listings/"+seededIronPeakID+"/reviews", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Great squat racks.")

	// Binding rejects out-of-range ratings before the service sees them.
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/listings/"+seededIronPeakID+"/reviews",
		`{"rating":9}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_CreateListing(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "host@example.com")

	body := `{"title":"Host Gym","location":"Oakland, CA","price":18,"category":"Yoga"}`
	w, env := doRequest(t, router, http.MethodPost, "/api/v1/listings", body, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var listing struct {
		ID       string  `json:"id"`
		Rating   float64 `json:"rating"`
		Category string  `json:"category"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listing))
	require.NotEmpty(t, listing.ID)
	assert.Equal(t, 5.0, listing.Rating)
	assert.Equal(t, "Yoga", listing.Category)

	// Anonymous creation is rejected.
	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/listings", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_PaymentIntentValidation(t *testing.T) {
	router := newTestRouter(t)
	token := registerUser(t, router, "payer@example.com")

	// Below Stripe's 50 cent floor fails before any upstream call.
	w, _ := doRequest(t, router, http.MethodPost, "/api/v1/payments/intent",
		`{"amount":10}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
