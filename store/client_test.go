package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradebook/journal"
)

func testClient(serverURL string) *Client {
	return &Client{
		baseURL:    serverURL,
		token:      "test-token",
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func requireCookie(t *testing.T, r *http.Request) {
	t.Helper()

	c, err := r.Cookie(CookieName)
	require.NoError(t, err, "auth cookie missing")
	assert.Equal(t, "test-token", c.Value)
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	c := NewClient("http://localhost:5001/", "tok")
	assert.Equal(t, "http://localhost:5001", c.baseURL)
	assert.Equal(t, "tok", c.token)
	assert.NotNil(t, c.httpClient)
}

func TestListTrades(t *testing.T) {
	t.Parallel()

	docs := []map[string]any{
		{"_id": "a1", "date": "2024-03-05", "pnl": 1000.0, "tradeResult": "tp_hit", "notes": "clean entry"},
		{"_id": "b2", "date": "2024-03-06", "profitLoss": -500.0},
		{"_id": "c3", "date": "2024-03-07", "pnl": 50.0, "profitLoss": 9999.0},
		{"_id": "d4", "date": "not-a-date", "pnl": 10.0},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/trades", r.URL.Path)
		json.NewEncoder(w).Encode(docs)
	}))
	defer server.Close()

	entries, err := testClient(server.URL).ListTrades(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, "a1", entries[0].ExternalID)
	assert.Equal(t, 1000.0, entries[0].PnL)
	assert.Equal(t, journal.TPHit, entries[0].Result)
	assert.Equal(t, "clean entry", entries[0].Notes)

	// Legacy alias is honored when pnl is absent.
	assert.Equal(t, -500.0, entries[1].PnL)

	// pnl wins when both fields are present.
	assert.Equal(t, 50.0, entries[2].PnL)

	// Unparseable dates map to the zero date (matches no period).
	assert.True(t, entries[3].Date.IsZero())

	// Local ids are a session concern; the client leaves them unset.
	for _, e := range entries {
		assert.Zero(t, e.ID)
	}
}

func TestCreateTrade(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/trades", r.URL.Path)

		var doc map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Equal(t, "2024-03-05", doc["date"])
		assert.Equal(t, 5000.0, doc["pnl"])
		assert.Equal(t, "tp_hit", doc["tradeResult"])
		_, hasID := doc["_id"]
		assert.False(t, hasID, "client must not send a store id on create")

		doc["_id"] = "new-id"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(doc)
	}))
	defer server.Close()

	date, err := journal.ParseDate("2024-03-05")
	require.NoError(t, err)

	externalID, err := testClient(server.URL).CreateTrade(context.Background(), journal.Entry{
		Date:   date,
		PnL:    5000,
		Result: journal.TPHit,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", externalID)
}

func TestUpdateTrade(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/trades/a1", r.URL.Path)

		var doc map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&doc))
		assert.Equal(t, 750.0, doc["pnl"])

		doc["_id"] = "a1"
		json.NewEncoder(w).Encode(doc)
	}))
	defer server.Close()

	date, err := journal.ParseDate("2024-03-05")
	require.NoError(t, err)

	err = testClient(server.URL).UpdateTrade(context.Background(), journal.Entry{
		ID:         3,
		ExternalID: "a1",
		Date:       date,
		PnL:        750,
	})
	assert.NoError(t, err)
}

func TestUpdateTradeMissingExternalID(t *testing.T) {
	t.Parallel()

	err := testClient("http://unused").UpdateTrade(context.Background(), journal.Entry{ID: 1})
	assert.Error(t, err)
}

func TestDeleteTrade(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/trades/a1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"msg": "deleted"})
	}))
	defer server.Close()

	assert.NoError(t, testClient(server.URL).DeleteTrade(context.Background(), "a1"))
}

func TestInitialCapital(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/capital/initial", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]float64{"initialCapital": 123456.78})
	}))
	defer server.Close()

	v, err := testClient(server.URL).InitialCapital(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 123456.78, v)
}

func TestSetInitialCapitalAdoptsServerValue(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireCookie(t, r)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/capital/initial", r.URL.Path)

		var body map[string]float64
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 200000.0, body["initialCapital"])

		// The server is the source of truth and may normalize the value.
		json.NewEncoder(w).Encode(map[string]float64{"initialCapital": 199999.99})
	}))
	defer server.Close()

	v, err := testClient(server.URL).SetInitialCapital(context.Background(), 200000)
	require.NoError(t, err)
	assert.Equal(t, 199999.99, v)
}

func TestUnauthorizedMapsToSessionExpired(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"msg": "token expired"})
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.ListTrades(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = client.InitialCapital(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)

	err = client.DeleteTrade(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestStoreErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("msg field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"msg": "date is required"})
		}))
		defer server.Close()

		_, err := testClient(server.URL).ListTrades(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "date is required")
		assert.Contains(t, err.Error(), "400")
	})

	t.Run("error field fallback", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		}))
		defer server.Close()

		_, err := testClient(server.URL).ListTrades(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("non-JSON body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := testClient(server.URL).ListTrades(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := testClient(server.URL).ListTrades(ctx)
	assert.Error(t, err)
}
