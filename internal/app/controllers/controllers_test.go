package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubs/backoffice/internal/app/clients/jobhubs"
	"github.com/jobhubs/backoffice/internal/app/controllers"
	"github.com/jobhubs/backoffice/internal/app/routes"
	"github.com/jobhubs/backoffice/internal/app/services"
	"github.com/jobhubs/backoffice/internal/middleware"
	"github.com/jobhubs/backoffice/internal/pkg/auth"
	"github.com/jobhubs/backoffice/internal/pkg/filestorage"
)

// upstreamFixture serves the canonical upstream responses the handlers
// under test consume.
func upstreamFixture() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":1,"nom":"Sow","prenom":"Fatou","email":"fatou@example.com","role":"USER","paysId":3},
			{"id":2,"nom":"Ndiaye","prenom":"Moussa","email":"moussa@example.com","role":"USER","paysId":3}
		]`))
	})
	mux.HandleFunc("GET /users/2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":2,"nom":"Ndiaye","prenom":"Moussa","email":"moussa@example.com","role":"USER","paysId":3}`))
	})
	mux.HandleFunc("GET /users/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"user not found"}`))
	})
	mux.HandleFunc("GET /categorie", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":5,"nom":"BTP"},{"id":6,"nom":"Artisanat"}]`))
	})
	mux.HandleFunc("GET /pays", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":3,"nom":"Sénégal","code":"221"}]`))
	})
	mux.HandleFunc("GET /cellules/all", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"name":"Cellule A","leaderPersonId":2,"locationDesc":"Plateau","isActive":true}]}`))
	})
	mux.HandleFunc("GET /activites", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":7,"fonction":"Plombier","region":"Dakar","marque":"SenPlomberie","description":"d","telephone":"+221775556677","tarif":"t","disponibilite":"d","categorieId":5,"paysId":3,"userId":2}]`))
	})
	mux.HandleFunc("POST /cellules/create/2", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("POST /auth/signup", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	return mux
}

func newTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(upstreamFixture())
	t.Cleanup(upstream.Close)

	client := jobhubs.NewClient(upstream.URL, 2*time.Second, zerolog.Nop())
	usersClient := jobhubs.NewUsersClient(client)
	categoriesClient := jobhubs.NewCategoriesClient(client)
	paysClient := jobhubs.NewPaysClient(client)
	cellulesClient := jobhubs.NewCellulesClient(client)
	activitesClient := jobhubs.NewActivitesClient(client)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "jobhubs-backoffice",
	})
	hash, err := auth.HashPassword("azerty123@")
	require.NoError(t, err)

	storage := filestorage.NewRemoteStorage(upstream.URL, 5*1024*1024, time.Second)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(services.NewAuthService("admin", hash, jwtService)),
		controllers.NewUserController(services.NewUserService(usersClient)),
		controllers.NewCategorieController(services.NewCategorieService(categoriesClient)),
		controllers.NewPaysController(services.NewPaysService(paysClient)),
		controllers.NewCelluleController(services.NewCelluleService(cellulesClient, usersClient)),
		controllers.NewActiviteController(services.NewActiviteService(activitesClient)),
		controllers.NewUploadController(storage),
		middleware.NewAuthMiddleware(jwtService),
	)

	token, _, err := jwtService.GenerateToken("admin")
	require.NoError(t, err)
	return router, token
}

func doRequest(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/v1/auth/login", "",
		`{"username":"admin","password":"azerty123@"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"accessToken"`
			TokenType   string `json:"tokenType"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	assert.NotEmpty(t, resp.Data.AccessToken)
}

func TestSessionStatus(t *testing.T) {
	router, token := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/auth/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "true", string(resp.Data["isAuthenticated"]))
	assert.Contains(t, string(resp.Data["user"]), `"admin"`)
	assert.NotContains(t, resp.Data, "token")
}

func TestLoginRejectsBadCredential(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/v1/auth/login", "",
		`{"username":"admin","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_001")
}

func TestListUsersRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListUsersNewestFirst(t *testing.T) {
	router, token := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/users", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Items []struct {
				ID int64 `json:"id"`
			} `json:"items"`
			Pagination struct {
				CurrentPage int `json:"currentPage"`
				TotalPages  int `json:"totalPages"`
			} `json:"pagination"`
			CollectionSize int `json:"collectionSize"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Items, 2)
	assert.Equal(t, int64(2), resp.Data.Items[0].ID)
	assert.Equal(t, 1, resp.Data.Pagination.CurrentPage)
	assert.Equal(t, 1, resp.Data.Pagination.TotalPages)
	assert.Equal(t, 2, resp.Data.CollectionSize)
}

func TestListUsersSearchNoMatch(t *testing.T) {
	router, token := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/users?search=introuvable", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"noSearchMatch":true`)
}

func TestExportUsersCSV(t *testing.T) {
	router, token := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/users/export", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	disposition := rec.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "users_export_")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\uFEFF"))
	// Header row plus one line per user.
	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Len(t, lines, 3)
}

func TestCreateUserValidation(t *testing.T) {
	router, token := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/v1/users", token,
		`{"nom":"Ba","email":"not-an-email","password":"secret1","paysId":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_001")
}

func TestCreateCellule(t *testing.T) {
	router, token := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/v1/cellules", token,
		`{"name":"Cellule Dakar Centre","leaderPersonId":2,"locationDesc":"Immeuble Kebe","isActive":true}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateCelluleUnknownLeader(t *testing.T) {
	router, token := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/v1/cellules", token,
		`{"name":"Cellule orpheline","leaderPersonId":999,"locationDesc":"Nulle part"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "leaderPersonId")
}

func TestGetUserProfile(t *testing.T) {
	router, token := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/users/2", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "moussa@example.com")
}

func TestGetUserProfileNotFound(t *testing.T) {
	router, token := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/users/999", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")
}
