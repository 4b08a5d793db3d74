package model

import "time"

// Listing Types
type ListingType string

const (
	ListingTypeSell  ListingType = "sell"
	ListingTypeRent  ListingType = "rent"
	ListingTypeDaily ListingType = "daily"
)

// Rent Periods
type RentPeriod string

const (
	RentPeriodMonthly RentPeriod = "monthly"
	RentPeriodDaily   RentPeriod = "daily"
)

// Publication Status
type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusPassive ListingStatus = "passive"
)

// Transaction Status
type TransactionStatus string

const (
	TransactionAvailable TransactionStatus = "available"
	TransactionSold      TransactionStatus = "sold"
	TransactionRented    TransactionStatus = "rented"
)

type Listing struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Price       int         `json:"price"` // whole Turkish lira
	ListingType ListingType `json:"listingType"`
	RentPeriod  *RentPeriod `json:"rentPeriod"` // nil iff ListingType == sell

	PropertyTypeID int `json:"propertyTypeId"`
	CityID         int `json:"cityId"`

	District     string `json:"district"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Address      string `json:"address"`

	SquareMeters  int  `json:"squareMeters"`
	RoomCount     *int `json:"roomCount"`
	BathroomCount *int `json:"bathroomCount"`
	ParkingCount  *int `json:"parkingCount"`

	IsFeatured        bool              `json:"isFeatured"`
	Status            ListingStatus     `json:"status"`
	TransactionStatus TransactionStatus `json:"transactionStatus"`

	PostedAt time.Time `json:"postedAt"`
	UserID   int       `json:"userId"`

	ImageURLs []string `json:"imageUrls"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	ReferenceNo string `json:"referenceNo,omitempty"`

	// Optional descriptive attributes
	BuildingAge     *int   `json:"buildingAge"`
	HeatingType     string `json:"heatingType,omitempty"`
	IsFurnished     *bool  `json:"isFurnished"`
	FacingDirection string `json:"facingDirection,omitempty"`
	FloorNumber     *int   `json:"floorNumber"`
}

func (t ListingType) Valid() bool {
	switch t {
	case ListingTypeSell, ListingTypeRent, ListingTypeDaily:
		return true
	}
	return false
}

// DefaultRentPeriod returns the rent period implied by the listing
// type when the caller supplies none.
func (t ListingType) DefaultRentPeriod() *RentPeriod {
	switch t {
	case ListingTypeRent:
		p := RentPeriodMonthly
		return &p
	case ListingTypeDaily:
		p := RentPeriodDaily
		return &p
	}
	return nil
}
