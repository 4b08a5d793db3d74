package controller

import (
	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/model"
	"emlakpark_backend/internal/store"
)

// DashboardStats aggregates for the admin dashboard. Everything is
// computed live from the store; no counter caches are consulted.
type DashboardStats struct {
	TotalListings    int            `json:"totalListings"`
	ActiveListings   int            `json:"activeListings"`
	FeaturedListings int            `json:"featuredListings"`
	TotalAgents      int            `json:"totalAgents"`
	TotalMessages    int            `json:"totalMessages"`
	ByListingType    map[string]int `json:"byListingType"`
	ByCity           []CityStat     `json:"byCity"`
	ByPropertyType   []PropertyStat `json:"byPropertyType"`
}

type CityStat struct {
	CityID int    `json:"cityId"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

type PropertyStat struct {
	PropertyTypeID int    `json:"propertyTypeId"`
	Name           string `json:"name"`
	Count          int    `json:"count"`
}

type StatsController struct {
	store store.Store
}

func NewStatsController(s store.Store) *StatsController {
	return &StatsController{store: s}
}

func (ct *StatsController) Dashboard(c *fiber.Ctx) error {
	listings := ct.store.ListListings(store.ListingFilter{})

	stats := DashboardStats{
		TotalListings: len(listings),
		TotalAgents:   len(ct.store.ListAgents()),
		TotalMessages: len(ct.store.ListContactMessages()),
		ByListingType: make(map[string]int),
	}

	for _, l := range listings {
		if l.Status == model.ListingStatusActive {
			stats.ActiveListings++
		}
		if l.IsFeatured {
			stats.FeaturedListings++
		}
		stats.ByListingType[string(l.ListingType)]++
	}

	for _, city := range ct.store.ListCities() {
		stats.ByCity = append(stats.ByCity, CityStat{
			CityID: city.ID,
			Name:   city.Name,
			Count:  ct.store.CountListingsByCity(city.ID),
		})
	}
	for _, pt := range ct.store.ListPropertyTypes() {
		stats.ByPropertyType = append(stats.ByPropertyType, PropertyStat{
			PropertyTypeID: pt.ID,
			Name:           pt.Name,
			Count:          ct.store.CountListingsByPropertyType(pt.ID),
		})
	}

	return c.JSON(stats)
}
