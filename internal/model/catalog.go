package model

// City is part of the fixed catalog seeded at startup. ListingCount is
// a display cache refreshed by the reconciliation cron; endpoints that
// serve counts recompute them from the listing collection instead.
type City struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	ListingCount int    `json:"listingCount"`
}

// PropertyType carries an icon identifier the client maps to a glyph.
type PropertyType struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	ListingCount int    `json:"listingCount"`
}
