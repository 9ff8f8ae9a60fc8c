package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tastebud-app/tastebud/internal/database"
	"github.com/tastebud-app/tastebud/internal/models"
	"github.com/tastebud-app/tastebud/internal/service"
)

const testJWTSecret = "test-secret"

type testAPI struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

// setupTestAPI builds the full route tree against an in-memory SQLite
// database.
func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	router := gin.New()
	SetupAPI(router, db, testJWTSecret, Options{})

	return &testAPI{
		router: router,
		db:     db,
		auth:   service.NewAuthService(db, testJWTSecret),
	}
}

// createUser inserts a user directly and returns it with a valid token.
func (a *testAPI) createUser(t *testing.T, username, email string) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		FullName:     "Test " + username,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, a.db.Create(user).Error)

	_, token, err := a.auth.Login(email, "password123")
	require.NoError(t, err)
	return user, token
}

func (a *testAPI) createRecipe(t *testing.T, user *models.User, title string) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		UserID:      user.ID,
		Title:       title,
		Ingredients: "flour, water, salt",
		Directions:  "Mix and bake.",
	}
	require.NoError(t, a.db.Create(recipe).Error)
	return recipe
}

// request performs one request against the router and decodes the
// envelope.
func (a *testAPI) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var envelope map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope),
			"response was not valid JSON: %s", w.Body.String())
	}
	return w, envelope
}

func dataField(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "envelope has no data object: %v", envelope)
	return data
}
