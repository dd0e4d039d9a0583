package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/siddhityagi17/event-manager/internal/cache"
	"github.com/siddhityagi17/event-manager/internal/handler"
	"github.com/siddhityagi17/event-manager/internal/model"
	"github.com/siddhityagi17/event-manager/internal/repository"
	"github.com/siddhityagi17/event-manager/internal/service"
	"github.com/siddhityagi17/event-manager/test/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB  *pgxpool.Pool
	testRdb *redis.Client
)

func TestMain(m *testing.M) {
	var cleanup func()
	var err error
	testDB, testRdb, cleanup, err = testutil.Setup()
	if err != nil {
		log.Fatalf("Failed to set up integration tests: %v", err)
	}

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	if _, err := testDB.Exec(ctx, "TRUNCATE events"); err != nil {
		t.Fatalf("Failed to truncate events: %v", err)
	}
	if err := testRdb.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush redis: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()

	eventRepo := repository.NewEventRepository(testDB)
	eventCache := cache.NewRedisEventCache(testRdb)
	eventService := service.NewEventService(eventRepo, eventCache)
	handler.NewEventHandler(eventService).RegisterRoutes(router)

	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEvent(t *testing.T, w *httptest.ResponseRecorder) model.Event {
	t.Helper()
	var event model.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &event))
	return event
}

func TestEventLifecycle(t *testing.T) {
	router := setupRouter(t)

	// create
	w := doJSON(t, router, "POST", "/api/events", map[string]string{
		"title": "Launch",
		"date":  "2025-01-10",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeEvent(t, w)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, []string{}, created.Attendees)

	// list includes it
	w = doJSON(t, router, "GET", "/api/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []model.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, created.ID, events[0].ID)

	// update title only, date stays
	w = doJSON(t, router, "PUT", "/api/events/"+created.ID.String(), map[string]string{
		"title": "Launch v2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeEvent(t, w)
	assert.Equal(t, "Launch v2", updated.Title)
	assert.True(t, updated.Date.Equal(created.Date))

	// delete
	w = doJSON(t, router, "DELETE", "/api/events/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	// list no longer includes it
	w = doJSON(t, router, "GET", "/api/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	events = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Empty(t, events)

	// second delete is a 404
	w = doJSON(t, router, "DELETE", "/api/events/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateValidationStoresNothing(t *testing.T) {
	router := setupRouter(t)

	for _, body := range []map[string]string{
		{"title": "   ", "date": "2025-01-10"},
		{"title": "Launch", "date": "next tuesday"},
		{},
	} {
		w := doJSON(t, router, "POST", "/api/events", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := doJSON(t, router, "GET", "/api/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []model.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Empty(t, events)
}

func TestRSVPMonotonic(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/events", map[string]string{
		"title": "Launch",
		"date":  "2025-01-10",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeEvent(t, w)

	names := []string{"Ana", "Bob", "Ana"}
	var last model.Event
	for i, name := range names {
		w = doJSON(t, router, "POST", "/api/events/"+created.ID.String()+"/rsvp", map[string]string{
			"attendee": name,
		})
		require.Equal(t, http.StatusOK, w.Code)
		last = decodeEvent(t, w)
		require.Len(t, last.Attendees, i+1)
	}
	assert.Equal(t, names, last.Attendees)

	// missing event gets a 404, not a crash
	w = doJSON(t, router, "POST", "/api/events/00000000-0000-0000-0000-000000000000/rsvp", map[string]string{
		"attendee": "Ana",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListIsFreshAfterMutation(t *testing.T) {
	router := setupRouter(t)

	// prime the list cache
	w := doJSON(t, router, "GET", "/api/events", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/api/events", map[string]string{
		"title": "Launch",
		"date":  "2025-01-10",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// the mutation must invalidate the cached snapshot
	w = doJSON(t, router, "GET", "/api/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var events []model.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Len(t, events, 1)
}
