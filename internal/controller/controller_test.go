package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"emlakpark_backend/internal/middleware"
	"emlakpark_backend/internal/model"
	"emlakpark_backend/internal/store"
	"emlakpark_backend/pkg/utils/jwt"
	"emlakpark_backend/pkg/utils/password"
)

// newTestApp wires a fresh store into the same route layout the server
// uses, minus the rate limiter and upload plumbing.
func newTestApp(t *testing.T) (*fiber.App, *store.MemoryStore) {
	t.Helper()
	jwt.SetSecret("controller-test-secret")

	s := store.NewMemoryStore()
	app := fiber.New()

	authController := NewAuthController(s)
	listingController := NewListingController(s)
	catalogController := NewCatalogController(s)
	agentController := NewAgentController(s)
	userController := NewUserController(s)
	contactController := NewContactController(s)
	settingsController := NewSettingsController(s)
	statsController := NewStatsController(s)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", authController.Register)
	auth.Post("/login", authController.Login)
	auth.Post("/logout", authController.Logout)
	api.Get("/me", middleware.AuthMiddleware(), authController.GetMe)
	api.Put("/me", middleware.AuthMiddleware(), authController.UpdateMe)

	listings := api.Group("/listings")
	listings.Get("/", listingController.List)
	listings.Get("/featured", listingController.Featured)
	listings.Get("/:id", listingController.Get)
	listings.Post("/", middleware.AuthMiddleware(), listingController.Create)
	listings.Put("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), listingController.Update)
	listings.Delete("/:id", middleware.AuthMiddleware(), middleware.AdminMiddleware(), listingController.Delete)

	api.Get("/cities", catalogController.ListCities)
	api.Get("/property-types", catalogController.ListPropertyTypes)

	agents := api.Group("/agents")
	agents.Get("/", agentController.List)
	agents.Get("/:id", agentController.Get)
	agents.Get("/:id/listings", agentController.Listings)

	api.Post("/contact", contactController.Create)
	api.Get("/contact", middleware.AuthMiddleware(), middleware.AdminMiddleware(), contactController.List)

	settings := api.Group("/settings")
	settings.Get("/contact-info", settingsController.GetContactInfo)
	settings.Get("/working-hours", settingsController.GetWorkingHours)
	settings.Put("/contact-info", middleware.AuthMiddleware(), middleware.AdminMiddleware(), settingsController.UpdateContactInfo)
	settings.Put("/working-hours", middleware.AuthMiddleware(), middleware.AdminMiddleware(), settingsController.UpdateWorkingHours)

	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	admin.Get("/users", userController.List)
	admin.Post("/users", userController.Create)
	admin.Put("/users/:id", userController.Update)
	admin.Delete("/users/:id", userController.Delete)
	admin.Get("/stats", statsController.Dashboard)

	return app, s
}

// seedUser creates an account directly in the store and returns it
// with a valid session token.
func seedUser(t *testing.T, s store.Store, username string, role model.Role) (*model.User, string) {
	t.Helper()

	hash, err := password.Hash("parola123")
	require.NoError(t, err)

	u := s.CreateUser(store.UserInput{
		Username: username,
		Password: hash,
		FullName: "Test " + username,
		Email:    username + "@example.com",
		Role:     role,
	})

	token, err := jwt.GenerateToken(u.ID, u.Username, u.Role)
	require.NoError(t, err)
	return u, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func validListingBody() string {
	return `{
		"title": "Test İlanı",
		"description": "Açıklama",
		"price": 1250000,
		"listingType": "sell",
		"propertyTypeId": 1,
		"cityId": 1,
		"district": "Çankaya",
		"address": "Atatürk Bulvarı No: 10",
		"squareMeters": 110,
		"imageUrls": ["https://example.com/1.jpg"]
	}`
}
