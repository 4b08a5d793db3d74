package store

import (
	"sort"
	"strings"

	"emlakpark_backend/internal/model"
)

// ListingFilter narrows the listing collection. Every field is
// optional; nil / zero means "not supplied". All bounds are inclusive.
// Unknown city or property-type ids simply match nothing.
//
// Parsing and sanitizing raw query strings is the controller's job;
// the engine assumes well-formed values.
type ListingFilter struct {
	CityID          *int
	PropertyTypeID  *int
	ListingType     model.ListingType
	MinPrice        *int
	MaxPrice        *int
	MinSquareMeters *int
	MaxSquareMeters *int
	RoomCount       *int
	Search          string
	Limit           int // <= 0 means unlimited
}

// ListListings returns the listings matching every supplied predicate,
// newest first. The order of operations is fixed: filter, then a
// stable sort by PostedAt descending, then Limit — so a limited query
// always returns the N most recent matches.
func (s *MemoryStore) ListListings(f ListingFilter) []*model.Listing {
	s.mu.RLock()
	matched := make([]*model.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if f.matches(l) {
			matched = append(matched, copyListing(l))
		}
	}
	s.mu.RUnlock()

	sortNewestFirst(matched)
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched
}

const defaultFeaturedLimit = 4

// FeaturedListings returns the most recently posted featured listings.
// A non-positive limit falls back to the default of 4.
func (s *MemoryStore) FeaturedListings(limit int) []*model.Listing {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}

	s.mu.RLock()
	matched := make([]*model.Listing, 0, limit)
	for _, l := range s.listings {
		if l.IsFeatured {
			matched = append(matched, copyListing(l))
		}
	}
	s.mu.RUnlock()

	sortNewestFirst(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// ListListingsByUser returns one agent's listings, newest first.
func (s *MemoryStore) ListListingsByUser(userID int) []*model.Listing {
	s.mu.RLock()
	matched := make([]*model.Listing, 0)
	for _, l := range s.listings {
		if l.UserID == userID {
			matched = append(matched, copyListing(l))
		}
	}
	s.mu.RUnlock()

	sortNewestFirst(matched)
	return matched
}

func (f ListingFilter) matches(l *model.Listing) bool {
	if f.CityID != nil && l.CityID != *f.CityID {
		return false
	}
	if f.PropertyTypeID != nil && l.PropertyTypeID != *f.PropertyTypeID {
		return false
	}
	if f.ListingType != "" && l.ListingType != f.ListingType {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	if f.MinSquareMeters != nil && l.SquareMeters < *f.MinSquareMeters {
		return false
	}
	if f.MaxSquareMeters != nil && l.SquareMeters > *f.MaxSquareMeters {
		return false
	}
	if f.RoomCount != nil && (l.RoomCount == nil || *l.RoomCount != *f.RoomCount) {
		return false
	}
	if f.Search != "" && !matchesSearch(l, f.Search) {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match over title,
// description, district and address; any single hit matches.
func matchesSearch(l *model.Listing, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{l.Title, l.Description, l.District, l.Address} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// sortNewestFirst orders by PostedAt descending. Ties keep descending
// id order, so repeated calls over the same data are stable even
// though the source is an unordered map.
func sortNewestFirst(listings []*model.Listing) {
	sort.Slice(listings, func(i, j int) bool { return listings[i].ID > listings[j].ID })
	sort.SliceStable(listings, func(i, j int) bool {
		return listings[i].PostedAt.After(listings[j].PostedAt)
	})
}
