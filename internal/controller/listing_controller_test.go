package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emlakpark_backend/internal/model"
	"emlakpark_backend/internal/store"
)

func TestListListings_QueryParams(t *testing.T) {
	app, s := newTestApp(t)

	s.CreateListing(store.ListingInput{
		Title: "Satılık Daire", Price: 2000000, ListingType: model.ListingTypeSell,
		CityID: 1, PropertyTypeID: 1, District: "Kadıköy", Address: "Adres 1",
		SquareMeters: 100, UserID: 1, ImageURLs: []string{"https://example.com/1.jpg"},
	})
	s.CreateListing(store.ListingInput{
		Title: "Kiralık Daire", Price: 25000, ListingType: model.ListingTypeRent,
		CityID: 2, PropertyTypeID: 1, District: "Çankaya", Address: "Adres 2",
		SquareMeters: 80, UserID: 1, ImageURLs: []string{"https://example.com/2.jpg"},
	})

	resp := doRequest(t, app, http.MethodGet, "/api/listings?listingType=sell&minPrice=1000000&maxPrice=3000000", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listings []model.Listing
	decodeBody(t, resp, &listings)
	require.Len(t, listings, 1)
	assert.Equal(t, "Satılık Daire", listings[0].Title)

	resp = doRequest(t, app, http.MethodGet, "/api/listings?search=kadıköy", "", "")
	decodeBody(t, resp, &listings)
	require.Len(t, listings, 1)
	assert.Equal(t, "Kadıköy", listings[0].District)
}

func TestListListings_MalformedParams(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{
		"/api/listings?cityId=abc",
		"/api/listings?minPrice=-5",
		"/api/listings?limit=-1",
		"/api/listings?limit=abc",
		"/api/listings?listingType=lease",
	} {
		resp := doRequest(t, app, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "path %s", path)
	}
}

func TestGetListing(t *testing.T) {
	app, s := newTestApp(t)
	l := s.CreateListing(store.ListingInput{
		Title: "Tek İlan", Price: 900000, ListingType: model.ListingTypeSell,
		CityID: 1, PropertyTypeID: 1, District: "Konak", Address: "Adres",
		SquareMeters: 75, UserID: 1, ImageURLs: []string{"https://example.com/1.jpg"},
	})

	resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/api/listings/%d", l.ID), "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/listings/9999", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateListing_RequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/listings/", validListingBody(), "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateListing_AgentAttributedSelf(t *testing.T) {
	app, s := newTestApp(t)
	agent, token := seedUser(t, s, "agent1", model.RoleAgent)
	other, _ := seedUser(t, s, "agent2", model.RoleAgent)

	// An agent cannot attribute a listing to someone else.
	body := fmt.Sprintf(`{
		"title": "Benim İlanım", "price": 500000, "listingType": "sell",
		"propertyTypeId": 1, "cityId": 1, "district": "Moda", "address": "Adres",
		"squareMeters": 60, "userId": %d,
		"imageUrls": ["https://example.com/1.jpg"]
	}`, other.ID)

	resp := doRequest(t, app, http.MethodPost, "/api/listings/", body, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Listing
	decodeBody(t, resp, &created)
	assert.Equal(t, agent.ID, created.UserID)
}

func TestCreateListing_AdminMayAssignAgent(t *testing.T) {
	app, s := newTestApp(t)
	_, adminToken := seedUser(t, s, "admin", model.RoleAdmin)
	agent, _ := seedUser(t, s, "agent1", model.RoleAgent)

	body := fmt.Sprintf(`{
		"title": "Atanmış İlan", "price": 750000, "listingType": "rent",
		"propertyTypeId": 1, "cityId": 1, "district": "Moda", "address": "Adres",
		"squareMeters": 95, "userId": %d,
		"imageUrls": ["https://example.com/1.jpg"]
	}`, agent.ID)

	resp := doRequest(t, app, http.MethodPost, "/api/listings/", body, adminToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created model.Listing
	decodeBody(t, resp, &created)
	assert.Equal(t, agent.ID, created.UserID)
	require.NotNil(t, created.RentPeriod)
	assert.Equal(t, model.RentPeriodMonthly, *created.RentPeriod)
}

func TestCreateListing_Validation(t *testing.T) {
	app, s := newTestApp(t)
	_, token := seedUser(t, s, "agent1", model.RoleAgent)

	cases := map[string]string{
		"zero price":    `{"title":"t","price":0,"listingType":"sell","propertyTypeId":1,"cityId":1,"address":"a","squareMeters":50,"imageUrls":["https://example.com/1.jpg"]}`,
		"zero sqm":      `{"title":"t","price":100,"listingType":"sell","propertyTypeId":1,"cityId":1,"address":"a","squareMeters":0,"imageUrls":["https://example.com/1.jpg"]}`,
		"bad type":      `{"title":"t","price":100,"listingType":"lease","propertyTypeId":1,"cityId":1,"address":"a","squareMeters":50,"imageUrls":["https://example.com/1.jpg"]}`,
		"no images":     `{"title":"t","price":100,"listingType":"sell","propertyTypeId":1,"cityId":1,"address":"a","squareMeters":50,"imageUrls":[]}`,
		"missing title": `{"price":100,"listingType":"sell","propertyTypeId":1,"cityId":1,"address":"a","squareMeters":50,"imageUrls":["https://example.com/1.jpg"]}`,
	}
	for name, body := range cases {
		resp := doRequest(t, app, http.MethodPost, "/api/listings/", body, token)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "case %s", name)
	}
	assert.Empty(t, s.ListListings(store.ListingFilter{}), "no partial writes on validation failure")
}

func TestUpdateListing_AdminOnlyAndPartial(t *testing.T) {
	app, s := newTestApp(t)
	_, agentToken := seedUser(t, s, "agent1", model.RoleAgent)
	_, adminToken := seedUser(t, s, "admin", model.RoleAdmin)

	l := s.CreateListing(store.ListingInput{
		Title: "Önce", Price: 800000, ListingType: model.ListingTypeSell,
		CityID: 1, PropertyTypeID: 1, District: "Moda", Address: "Adres",
		SquareMeters: 100, UserID: 1, ImageURLs: []string{"https://example.com/1.jpg"},
	})

	// Agents get 403, distinct from the anonymous 401.
	resp := doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/listings/%d", l.ID), `{"price":5000}`, agentToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/listings/%d", l.ID), `{"price":5000}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPut, fmt.Sprintf("/api/listings/%d", l.ID), `{"price":5000}`, adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated model.Listing
	decodeBody(t, resp, &updated)
	assert.Equal(t, 5000, updated.Price)
	assert.Equal(t, "Önce", updated.Title, "omitted fields stay untouched")
	assert.Equal(t, l.PostedAt, updated.PostedAt)

	resp = doRequest(t, app, http.MethodPut, "/api/listings/9999", `{"price":5000}`, adminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteListing_Admin(t *testing.T) {
	app, s := newTestApp(t)
	_, adminToken := seedUser(t, s, "admin", model.RoleAdmin)

	l := s.CreateListing(store.ListingInput{
		Title: "Silinecek", Price: 100000, ListingType: model.ListingTypeSell,
		CityID: 1, PropertyTypeID: 1, District: "Moda", Address: "Adres",
		SquareMeters: 50, UserID: 1, ImageURLs: []string{"https://example.com/1.jpg"},
	})

	resp := doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/listings/%d", l.ID), "", adminToken)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/api/listings/%d", l.ID), "", adminToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFeaturedListings_Endpoint(t *testing.T) {
	app, s := newTestApp(t)

	for i := 0; i < 6; i++ {
		s.CreateListing(store.ListingInput{
			Title: fmt.Sprintf("İlan %d", i), Price: 100000, ListingType: model.ListingTypeSell,
			CityID: 1, PropertyTypeID: 1, District: "Moda", Address: "Adres",
			SquareMeters: 50, UserID: 1, IsFeatured: true,
			ImageURLs: []string{"https://example.com/1.jpg"},
		})
	}

	resp := doRequest(t, app, http.MethodGet, "/api/listings/featured", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listings []model.Listing
	decodeBody(t, resp, &listings)
	assert.Len(t, listings, 4, "default limit is 4")

	resp = doRequest(t, app, http.MethodGet, "/api/listings/featured?limit=2", "", "")
	decodeBody(t, resp, &listings)
	assert.Len(t, listings, 2)
}
