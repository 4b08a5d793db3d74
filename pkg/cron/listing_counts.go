package cron

import (
	"log"

	"github.com/robfig/cron/v3"

	"emlakpark_backend/internal/store"
)

// InitListingCountCron refreshes the denormalized listingCount display
// caches on cities and property types. Read paths always recompute
// counts live; this only keeps the cached field from drifting too far
// for clients that render it directly.
func InitListingCountCron(s store.Store) {
	s.RefreshListingCounts()

	c := cron.New()
	_, err := c.AddFunc("@every 10m", func() {
		s.RefreshListingCounts()
	})
	if err != nil {
		log.Printf("Could not initialize listing count cron: %v", err)
		return
	}
	c.Start()
}
