package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebud-app/tastebud/internal/models"
)

func TestGetProfile(t *testing.T) {
	a := setupTestAPI(t)
	user, token := a.createUser(t, "adacook", "ada@example.com")

	w, env := a.request(t, http.MethodGet, "/api/v1/users/"+user.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := dataField(t, env)["user"].(map[string]any)
	assert.Equal(t, "adacook", got["username"])
	assert.NotContains(t, got, "password_hash")
}

func TestUpdateProfileSelfOnly(t *testing.T) {
	a := setupTestAPI(t)
	user, token := a.createUser(t, "adacook", "ada@example.com")
	other, _ := a.createUser(t, "benbaker", "ben@example.com")

	w, env := a.request(t, http.MethodPut, "/api/v1/users/"+user.ID.String(), token, map[string]string{
		"full_name":  "Ada C.",
		"about":      "Weeknight dinners.",
		"user_image": "https://img.example.com/ada.png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := dataField(t, env)["user"].(map[string]any)
	assert.Equal(t, "Ada C.", got["full_name"])
	assert.Equal(t, "Weeknight dinners.", got["about"])

	// Editing someone else's profile is forbidden.
	w, env = a.request(t, http.MethodPut, "/api/v1/users/"+other.ID.String(), token, map[string]string{
		"about": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Fail", env["status"])
}

func TestUserRecipesAndFavorites(t *testing.T) {
	a := setupTestAPI(t)
	chef, chefToken := a.createUser(t, "chef", "chef@example.com")
	fan, fanToken := a.createUser(t, "fan", "fan@example.com")

	first := a.createRecipe(t, chef, "First Dish")
	a.createRecipe(t, chef, "Second Dish")

	w, env := a.request(t, http.MethodGet, "/api/v1/users/"+chef.ID.String()+"/recipes", chefToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := dataField(t, env)
	assert.Equal(t, float64(2), data["total_count"])

	// The fan favorites one recipe and it shows up in their list.
	w, _ = a.request(t, http.MethodPost, "/api/v1/recipes/"+first.ID.String()+"/favorites", fanToken, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env = a.request(t, http.MethodGet, "/api/v1/users/"+fan.ID.String()+"/favorites", fanToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = dataField(t, env)
	assert.Equal(t, float64(1), data["total_count"])
	recipes := data["recipes"].([]any)
	require.Len(t, recipes, 1)
	assert.Equal(t, "First Dish", recipes[0].(map[string]any)["title"])

	var stored models.Recipe
	require.NoError(t, a.db.First(&stored, "id = ?", first.ID).Error)
	assert.Equal(t, 1, stored.FavoritesCount)
}

func TestProfileRequiresAuth(t *testing.T) {
	a := setupTestAPI(t)
	user, _ := a.createUser(t, "adacook", "ada@example.com")

	w, env := a.request(t, http.MethodGet, "/api/v1/users/"+user.ID.String(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Fail", env["status"])
}
