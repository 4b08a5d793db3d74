package store

import (
	"encoding/json"

	"emlakpark_backend/internal/model"
)

// Store is the process-wide data layer. It is injected into every
// controller instead of being reached through package globals so that
// handlers can be tested against a fresh instance and the whole layer
// can later be swapped for a database-backed one.
//
// Absence is always a normal return value, never an error or a panic.
// Mutations either fully apply or leave the store untouched.
type Store interface {
	CreateUser(in UserInput) *model.User
	GetUser(id int) (*model.User, bool)
	GetUserByUsername(username string) (*model.User, bool)
	ListUsers() []*model.User
	ListAgents() []*model.User
	UpdateUser(id int, upd UserUpdate) (*model.User, bool)
	DeleteUser(id int) bool

	CreateCity(in CityInput) *model.City
	GetCity(id int) (*model.City, bool)
	ListCities() []*model.City

	CreatePropertyType(in PropertyTypeInput) *model.PropertyType
	GetPropertyType(id int) (*model.PropertyType, bool)
	ListPropertyTypes() []*model.PropertyType

	CreateListing(in ListingInput) *model.Listing
	GetListing(id int) (*model.Listing, bool)
	ListListings(f ListingFilter) []*model.Listing
	FeaturedListings(limit int) []*model.Listing
	ListListingsByUser(userID int) []*model.Listing
	UpdateListing(id int, upd ListingUpdate) (*model.Listing, bool)
	DeleteListing(id int) bool
	CountListingsByCity(cityID int) int
	CountListingsByPropertyType(propertyTypeID int) int
	RefreshListingCounts()

	CreateContactMessage(in ContactMessageInput) *model.ContactMessage
	ListContactMessages() []*model.ContactMessage

	GetSetting(name string) (*model.SiteSetting, bool)
	SetSetting(name string, value json.RawMessage) *model.SiteSetting
}

// UserInput carries the fields of a new user. Password must already be
// hashed; the store never sees plaintext credentials. Role defaults to
// agent when empty. Username uniqueness is the caller's check, via
// GetUserByUsername, before any mutation.
type UserInput struct {
	Username  string
	Password  string
	FullName  string
	Email     string
	Phone     string
	AvatarURL string
	Role      model.Role
}

// UserUpdate merges onto an existing user. Nil fields are untouched.
type UserUpdate struct {
	Username  *string
	Password  *string
	FullName  *string
	Email     *string
	Phone     *string
	AvatarURL *string
	Role      *model.Role
}

type CityInput struct {
	Name     string
	ImageURL string
}

type PropertyTypeInput struct {
	Name string
	Icon string
}

// ListingInput carries the creatable fields of a listing. The store
// fills defaults: Status → active, TransactionStatus → available,
// RentPeriod → the period implied by ListingType when unset (and
// forced nil for sales), ReferenceNo → generated when empty. Slug and
// PostedAt are always assigned by the store.
type ListingInput struct {
	Title       string
	Description string
	Price       int
	ListingType model.ListingType
	RentPeriod  *model.RentPeriod

	PropertyTypeID int
	CityID         int

	District     string
	Neighborhood string
	Address      string

	SquareMeters  int
	RoomCount     *int
	BathroomCount *int
	ParkingCount  *int

	IsFeatured        bool
	Status            model.ListingStatus
	TransactionStatus model.TransactionStatus

	UserID    int
	ImageURLs []string

	Latitude  *float64
	Longitude *float64

	ReferenceNo     string
	BuildingAge     *int
	HeatingType     string
	IsFurnished     *bool
	FacingDirection string
	FloorNumber     *int
}

// ListingUpdate merges onto an existing listing. Nil fields are left
// untouched, never reset. ImageURLs replaces the whole ordered list
// when non-nil.
type ListingUpdate struct {
	Title       *string
	Description *string
	Price       *int
	ListingType *model.ListingType
	RentPeriod  *model.RentPeriod

	PropertyTypeID *int
	CityID         *int

	District     *string
	Neighborhood *string
	Address      *string

	SquareMeters  *int
	RoomCount     *int
	BathroomCount *int
	ParkingCount  *int

	IsFeatured        *bool
	Status            *model.ListingStatus
	TransactionStatus *model.TransactionStatus

	UserID    *int
	ImageURLs []string

	Latitude  *float64
	Longitude *float64

	ReferenceNo     *string
	BuildingAge     *int
	HeatingType     *string
	IsFurnished     *bool
	FacingDirection *string
	FloorNumber     *int
}

type ContactMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}
