package jobhubs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, zerolog.Nop()), server
}

func TestUsersListNewestFirst(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"nom":"Premier"},{"id":2,"nom":"Dernier"}]`))
	}))

	users, err := NewUsersClient(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(2), users[0].ID, "latest insertion comes first")
	assert.Equal(t, int64(1), users[1].ID)
}

func TestCellulesListUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/cellules/all", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":4,"name":"Cellule Nord"}]}`))
	}))

	cellules, err := NewCellulesClient(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, cellules, 1)
	assert.Equal(t, "Cellule Nord", cellules[0].Name)
}

func TestCellulesListEmptyEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	cellules, err := NewCellulesClient(client).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, cellules)
	assert.Empty(t, cellules)
}

func TestNonSuccessStatusBecomesRequestError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"email already in use"}`))
	}))

	err := NewUsersClient(client).Create(context.Background(), map[string]string{"email": "x@y.zz"})
	require.Error(t, err)

	reqErr, ok := apperrors.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, reqErr.Status)
	assert.Equal(t, "email already in use", reqErr.Error())
}

func TestNonSuccessStatusWithoutBodyMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	err := NewPaysClient(client).Delete(context.Background(), 9)
	reqErr, ok := apperrors.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, "502: Bad Gateway", reqErr.Error())
}

func TestTransportFailureWrapsUpstreamUnavailable(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewUsersClient(client).List(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestUserNotFoundMapsSentinel(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := NewUsersClient(client).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpstreamPathShapes(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]interface{}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotBody = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}
		w.WriteHeader(http.StatusOK)
	}))
	ctx := context.Background()

	require.NoError(t, NewUsersClient(client).Update(ctx, 7, map[string]string{"nom": "Ba"}))
	assert.Equal(t, http.MethodPost, gotMethod, "user updates are POSTs upstream")
	assert.Equal(t, "/users/7", gotPath)

	require.NoError(t, NewUsersClient(client).Delete(ctx, 7))
	assert.Equal(t, "/users/7/delete", gotPath)

	require.NoError(t, NewCellulesClient(client).Create(ctx, 3, map[string]string{"name": "C"}))
	assert.Equal(t, "/cellules/create/3", gotPath)

	require.NoError(t, NewCellulesClient(client).Update(ctx, 5, nil))
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/cellules/5/update", gotPath)

	require.NoError(t, NewActivitesClient(client).CreateForUser(ctx, 3, map[string]string{"fonction": "Plombier"}))
	assert.Equal(t, "/users/3/activities", gotPath)

	require.NoError(t, NewActivitesClient(client).AddPhotos(ctx, 3, 11, []string{"https://cdn/x.jpg"}))
	assert.Equal(t, "/users/3/activities/11/photos", gotPath)

	require.NoError(t, NewActivitesClient(client).AddExpertise(ctx, 3, 11, "Canalisations"))
	assert.Equal(t, "/users/3/activities/11/expertise", gotPath)
	assert.Equal(t, "Canalisations", gotBody["expertise"])
}
