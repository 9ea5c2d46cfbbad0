package app

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bcommune_backend/internal/config"
	"bcommune_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/files"
	cfg.Upload.MaxSize = 10 * 1024 * 1024
	config.AppConfig = cfg

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Account{},
		&models.CompanyProfile{},
		&models.RefreshToken{},
		&models.Idea{},
		&models.Job{},
		&models.Project{},
		&models.Upload{},
	))

	router, err := SetupRouter(cfg, db)
	require.NoError(t, err)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, w)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, "expected an error envelope, got %s", w.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

func individualSignupBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"email":            email,
		"password":         "secret123",
		"confirm_password": "secret123",
	}
}

func companySignupBody(email string) map[string]interface{} {
	return map[string]interface{}{
		"email":            email,
		"password":         "secret123",
		"confirm_password": "secret123",
		"company_name":     "Acme Ltd",
		"company_website":  "https://acme.example.com",
		"industry":         "Manufacturing",
		"company_size":     "51-200",
		"company_type":     "Private Limited",
		"person_name":      "Jordan Doe",
		"designation":      "CTO",
		"phone_number":     "9876543210",
		"bcommune_profile": "https://bcommune.example.com/acme",
	}
}

func loginAs(t *testing.T, router *gin.Engine, role, email string) (accessToken, refreshToken string) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/"+role+"/login", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	return body["access_token"].(string), body["refresh_token"].(string)
}

func signupIndividual(t *testing.T, router *gin.Engine, email string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/individual/signup", "", individualSignupBody(email))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func signupCompany(t *testing.T, router *gin.Engine, email string) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/company/signup", "", companySignupBody(email))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestSignup_DuplicateEmailConflict(t *testing.T) {
	router := setupTestRouter(t)

	signupIndividual(t, router, "dup@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/company/signup", "", companySignupBody("dup@example.com"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", errorCode(t, w))
}

func TestSignup_PasswordMismatch(t *testing.T) {
	router := setupTestRouter(t)

	body := individualSignupBody("user@example.com")
	body["confirm_password"] = "different1"
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/individual/signup", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "PASSWORD_MISMATCH", errorCode(t, w))
}

func TestSignup_CompanyValidation(t *testing.T) {
	router := setupTestRouter(t)

	body := companySignupBody("corp@example.com")
	body["phone_number"] = "12345"
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/company/signup", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, w))
}

func TestLogin_RoleGate(t *testing.T) {
	router := setupTestRouter(t)

	signupIndividual(t, router, "user@example.com")

	// Valid credentials at the wrong door read as invalid credentials.
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/company/login", "", map[string]interface{}{
		"email":    "user@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, w))

	// The right door works and points at the individual dashboard.
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/individual/login", "", map[string]interface{}{
		"email":    "user@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "/individual/dashboard", body["redirect"])
}

func TestDashboards_RoleGated(t *testing.T) {
	router := setupTestRouter(t)

	signupIndividual(t, router, "user@example.com")
	signupCompany(t, router, "corp@example.com")

	individualToken, _ := loginAs(t, router, "individual", "user@example.com")
	companyToken, _ := loginAs(t, router, "company", "corp@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/v1/individual/dashboard", individualToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/company/dashboard", individualToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/company/dashboard", companyToken, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/individual/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func projectBody(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":              title,
		"description":        "CNC parts for a pilot run",
		"project_type":       "outsourcing",
		"industry":           "Manufacturing",
		"budget":             5000,
		"timeline":           "2026-12-01",
		"expertise_required": "CNC machining",
		"payment_terms":      "Net 30",
		"nda_required":       true,
	}
}

func createProject(t *testing.T, router *gin.Engine, token, title string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/projects", token, projectBody(title))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	project := body["project"].(map[string]interface{})
	return project["id"].(string)
}

func TestProjects_CompanyOnly(t *testing.T) {
	router := setupTestRouter(t)

	signupIndividual(t, router, "user@example.com")
	individualToken, _ := loginAs(t, router, "individual", "user@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/projects", individualToken, projectBody("Nope"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/projects", individualToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProjects_BoardPartition(t *testing.T) {
	router := setupTestRouter(t)

	signupCompany(t, router, "alpha@example.com")
	signupCompany(t, router, "beta@example.com")
	alphaToken, _ := loginAs(t, router, "company", "alpha@example.com")
	betaToken, _ := loginAs(t, router, "company", "beta@example.com")

	createProject(t, router, alphaToken, "Alpha One")
	createProject(t, router, betaToken, "Beta One")
	createProject(t, router, betaToken, "Beta Two")

	w := doJSON(t, router, http.MethodGet, "/api/v1/projects", alphaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	mine := body["mine"].([]interface{})
	others := body["others"].([]interface{})
	assert.Len(t, mine, 1)
	assert.Len(t, others, 2)

	ids := map[string]bool{}
	for _, p := range mine {
		ids[p.(map[string]interface{})["id"].(string)] = true
	}
	for _, p := range others {
		assert.False(t, ids[p.(map[string]interface{})["id"].(string)])
	}
}

func TestProjects_NonOwnerMutationForbidden(t *testing.T) {
	router := setupTestRouter(t)

	signupCompany(t, router, "owner@example.com")
	signupCompany(t, router, "rival@example.com")
	ownerToken, _ := loginAs(t, router, "company", "owner@example.com")
	rivalToken, _ := loginAs(t, router, "company", "rival@example.com")

	projectID := createProject(t, router, ownerToken, "Mine")

	w := doJSON(t, router, http.MethodDelete, "/api/v1/projects/"+projectID, rivalToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/projects/"+projectID, rivalToken, map[string]interface{}{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A made-up id answers the same way as a foreign one.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/projects/00000000-0000-0000-0000-000000000000", rivalToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The project survived, untouched.
	w = doJSON(t, router, http.MethodGet, "/api/v1/projects", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	mine := body["mine"].([]interface{})
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].(map[string]interface{})["title"])
}

func TestProjects_OwnerUpdateAndDelete(t *testing.T) {
	router := setupTestRouter(t)

	signupCompany(t, router, "owner@example.com")
	ownerToken, _ := loginAs(t, router, "company", "owner@example.com")

	projectID := createProject(t, router, ownerToken, "Original")

	w := doJSON(t, router, http.MethodPut, "/api/v1/projects/"+projectID, ownerToken, map[string]interface{}{
		"title":  "Renamed",
		"budget": 7500,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	project := body["project"].(map[string]interface{})
	assert.Equal(t, "Renamed", project["title"])
	assert.Equal(t, 7500.0, project["budget"])
	assert.Equal(t, "Net 30", project["payment_terms"])

	w = doJSON(t, router, http.MethodDelete, "/api/v1/projects/"+projectID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/projects", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Empty(t, body["mine"])
}

func TestRefreshAndLogout(t *testing.T) {
	router := setupTestRouter(t)

	signupIndividual(t, router, "user@example.com")
	_, refreshToken := loginAs(t, router, "individual", "user@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": refreshToken,
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	rotated := body["refresh_token"].(string)
	assert.NotEqual(t, refreshToken, rotated)

	// The old token was consumed by the rotation.
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": refreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", "", map[string]interface{}{
		"refresh_token": rotated,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": rotated,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJobs_CreateAndList(t *testing.T) {
	router := setupTestRouter(t)

	signupIndividual(t, router, "user@example.com")
	token, _ := loginAs(t, router, "individual", "user@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/jobs", token, map[string]interface{}{
		"title":        "Backend Engineer",
		"company":      "Acme Ltd",
		"location":     "Remote",
		"description":  "Build APIs",
		"requirements": "3+ years",
		"skills":       []string{"go", "postgres"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	job := body["job"].(map[string]interface{})
	assert.Equal(t, "Not Specified", job["salary"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/jobs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Len(t, body["jobs"], 1)

	// Jobs are behind authentication.
	w = doJSON(t, router, http.MethodGet, "/api/v1/jobs", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIdeas_MultipartCreate(t *testing.T) {
	router := setupTestRouter(t)

	signupIndividual(t, router, "user@example.com")
	token, _ := loginAs(t, router, "individual", "user@example.com")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":             "Washable Filter",
		"brief_description": "A reusable water filter",
		"problem_statement": "Filters are disposable",
		"solution":          "Make them washable",
		"visibility":        "private",
		"category":          "Sustainability",
		"fund":              "2500",
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("photo", "pitch.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ideas", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := decodeBody(t, w)
	idea := body["idea"].(map[string]interface{})
	assert.Equal(t, "private", idea["visibility"])
	assert.Equal(t, 2500.0, idea["fund"])
	photoURL, ok := idea["photo_url"].(string)
	require.True(t, ok)
	assert.Contains(t, photoURL, "/files/ideas/")

	// The list shows every idea regardless of visibility.
	listW := doJSON(t, router, http.MethodGet, "/api/v1/ideas", token, nil)
	require.Equal(t, http.StatusOK, listW.Code)
	listBody := decodeBody(t, listW)
	assert.Len(t, listBody["ideas"], 1)
}

func TestHealth(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
