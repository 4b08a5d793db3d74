package controller

import (
	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/store"
)

// CatalogController serves the fixed city and property-type catalogs.
// Listing counts are recomputed from the listing collection on every
// read; the cached counter on the entities is display-only.
type CatalogController struct {
	store store.Store
}

func NewCatalogController(s store.Store) *CatalogController {
	return &CatalogController{store: s}
}

func (ct *CatalogController) ListCities(c *fiber.Ctx) error {
	cities := ct.store.ListCities()
	for _, city := range cities {
		city.ListingCount = ct.store.CountListingsByCity(city.ID)
	}
	return c.JSON(cities)
}

func (ct *CatalogController) ListPropertyTypes(c *fiber.Ctx) error {
	types := ct.store.ListPropertyTypes()
	for _, pt := range types {
		pt.ListingCount = ct.store.CountListingsByPropertyType(pt.ID)
	}
	return c.JSON(types)
}
