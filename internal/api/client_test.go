package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narabid/bidassist/internal/domain"
)

func testConfig(endpoint string) Config {
	return Config{Endpoint: endpoint, TimeoutMs: 2000, MaxRetries: 0}
}

func TestFetchWishlist_PreservesRemoteOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/wishlist", r.URL.Path)
		json.NewEncoder(w).Encode([]domain.WishlistItem{
			{WishlistID: 9, Title: "Road resurfacing", Stage: domain.StageReview},
			{WishlistID: 3, Title: "IT maintenance", Stage: domain.StageInterest},
		})
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), StaticToken("tok"), nil)
	items, err := c.FetchWishlist(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(9), items[0].WishlistID)
	assert.Equal(t, int64(3), items[1].WishlistID)
}

func TestBearerTokenAttachedWhenPresent(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), StaticToken("secret-token"), nil)
	_, err := c.FetchWishlist(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestNoAuthorizationHeaderWithoutToken(t *testing.T) {
	var hadHeader bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadHeader = r.Header["Authorization"]
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), StaticToken(""), nil)
	_, err := c.FetchWishlist(context.Background())
	require.NoError(t, err)
	assert.False(t, hadHeader)
}

func TestUpdateWishlistStage_SendsPatchWithStageBody(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody stageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), StaticToken("tok"), nil)
	err := c.UpdateWishlistStage(context.Background(), 42, domain.StageSubmitted)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/wishlist/42/stage", gotPath)
	assert.Equal(t, domain.StageSubmitted, gotBody.Stage)
}

func TestDeleteWishlist(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), StaticToken("tok"), nil)
	require.NoError(t, c.DeleteWishlist(context.Background(), 7))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/wishlist/7", gotPath)
}

func TestLogin_ReturnsAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		var req loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "kim@example.com", req.Email)
		json.NewEncoder(w).Encode(loginResponse{AccessToken: "issued-token"})
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), StaticToken(""), nil)
	token, err := c.Login(context.Background(), "kim@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestUnauthorizedStatusMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), StaticToken("expired"), nil)
	_, err := c.FetchWishlist(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestServerErrorMapsToErrRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), StaticToken("tok"), nil)
	err := c.UpdateWishlistStage(context.Background(), 1, domain.StageWon)
	assert.ErrorIs(t, err, ErrRemote)
}

func TestUnreachableEndpointMapsToErrUnavailable(t *testing.T) {
	// Reserve a port and close it so nothing is listening.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	c := NewClient(testConfig(endpoint), StaticToken("tok"), nil)
	_, err := c.FetchWishlist(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetRetriesButMutationsDoNot(t *testing.T) {
	var gets, patches int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			gets++
			if gets == 1 {
				// Drop the first connection to force a transport error.
				hj, ok := w.(http.Hijacker)
				require.True(t, ok)
				conn, _, err := hj.Hijack()
				require.NoError(t, err)
				conn.Close()
				return
			}
			w.Write([]byte("[]"))
		case http.MethodPatch:
			patches++
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2
	c := NewClient(cfg, StaticToken("tok"), nil)

	_, err := c.FetchWishlist(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, gets)

	err = c.UpdateWishlistStage(context.Background(), 1, domain.StageWon)
	assert.ErrorIs(t, err, ErrRemote)
	assert.Equal(t, 1, patches)
}

func TestObserverSeesOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })
	c := NewClient(testConfig(srv.URL), StaticToken("tok"), obs)

	_, err := c.FetchWishlist(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "wishlist_list", events[0].Op)
	assert.True(t, events[0].Success)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
