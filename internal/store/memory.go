package store

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"emlakpark_backend/internal/model"
)

// MemoryStore keeps everything in process memory. A restart discards
// all writes; the seeder repopulates identical sample data on boot.
//
// Fiber serves requests on multiple goroutines, so unlike the
// single-threaded store this replaces, every operation takes the
// mutex. Entities are copied at the boundary in both directions so a
// caller can never alias internal state.
type MemoryStore struct {
	mu sync.RWMutex

	users         map[int]*model.User
	cities        map[int]*model.City
	propertyTypes map[int]*model.PropertyType
	listings      map[int]*model.Listing
	messages      map[int]*model.ContactMessage
	settings      map[string]*model.SiteSetting

	// Per-entity counters, strictly increasing from 1, never reused.
	nextUserID         int
	nextCityID         int
	nextPropertyTypeID int
	nextListingID      int
	nextMessageID      int
	nextSettingID      int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:         make(map[int]*model.User),
		cities:        make(map[int]*model.City),
		propertyTypes: make(map[int]*model.PropertyType),
		listings:      make(map[int]*model.Listing),
		messages:      make(map[int]*model.ContactMessage),
		settings:      make(map[string]*model.SiteSetting),
	}
}

// Users

func (s *MemoryStore) CreateUser(in UserInput) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	role := in.Role
	if role == "" {
		role = model.RoleAgent
	}

	s.nextUserID++
	u := &model.User{
		ID:        s.nextUserID,
		Username:  in.Username,
		Password:  in.Password,
		FullName:  in.FullName,
		Email:     in.Email,
		Phone:     in.Phone,
		AvatarURL: in.AvatarURL,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.users[u.ID] = u
	return copyUser(u)
}

func (s *MemoryStore) GetUser(id int) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return copyUser(u), true
}

func (s *MemoryStore) GetUserByUsername(username string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return copyUser(u), true
		}
	}
	return nil, false
}

func (s *MemoryStore) ListUsers() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, copyUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) ListAgents() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		if u.Role == model.RoleAgent {
			out = append(out, copyUser(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) UpdateUser(id int, upd UserUpdate) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.AvatarURL != nil {
		u.AvatarURL = *upd.AvatarURL
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	return copyUser(u), true
}

func (s *MemoryStore) DeleteUser(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

// Cities and property types

func (s *MemoryStore) CreateCity(in CityInput) *model.City {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCityID++
	c := &model.City{
		ID:       s.nextCityID,
		Name:     in.Name,
		ImageURL: in.ImageURL,
	}
	s.cities[c.ID] = c
	cc := *c
	return &cc
}

func (s *MemoryStore) GetCity(id int) (*model.City, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cities[id]
	if !ok {
		return nil, false
	}
	cc := *c
	return &cc, true
}

func (s *MemoryStore) ListCities() []*model.City {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.City, 0, len(s.cities))
	for _, c := range s.cities {
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) CreatePropertyType(in PropertyTypeInput) *model.PropertyType {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPropertyTypeID++
	p := &model.PropertyType{
		ID:   s.nextPropertyTypeID,
		Name: in.Name,
		Icon: in.Icon,
	}
	s.propertyTypes[p.ID] = p
	pc := *p
	return &pc
}

func (s *MemoryStore) GetPropertyType(id int) (*model.PropertyType, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.propertyTypes[id]
	if !ok {
		return nil, false
	}
	pc := *p
	return &pc, true
}

func (s *MemoryStore) ListPropertyTypes() []*model.PropertyType {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.PropertyType, 0, len(s.propertyTypes))
	for _, p := range s.propertyTypes {
		pc := *p
		out = append(out, &pc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Listings

func (s *MemoryStore) CreateListing(in ListingInput) *model.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := in.Status
	if status == "" {
		status = model.ListingStatusActive
	}
	txn := in.TransactionStatus
	if txn == "" {
		txn = model.TransactionAvailable
	}

	// rentPeriod is nil iff the listing is a sale; rentals get the
	// period implied by their type when the caller supplies none.
	rentPeriod := in.RentPeriod
	if in.ListingType == model.ListingTypeSell {
		rentPeriod = nil
	} else if rentPeriod == nil {
		rentPeriod = in.ListingType.DefaultRentPeriod()
	}

	refNo := in.ReferenceNo
	if refNo == "" {
		refNo = "EP-" + strings.ToUpper(uuid.NewString()[:8])
	}

	s.nextListingID++
	l := &model.Listing{
		ID:                s.nextListingID,
		Title:             in.Title,
		Slug:              slug.Make(in.Title),
		Description:       in.Description,
		Price:             in.Price,
		ListingType:       in.ListingType,
		RentPeriod:        copyRentPeriod(rentPeriod),
		PropertyTypeID:    in.PropertyTypeID,
		CityID:            in.CityID,
		District:          in.District,
		Neighborhood:      in.Neighborhood,
		Address:           in.Address,
		SquareMeters:      in.SquareMeters,
		RoomCount:         copyInt(in.RoomCount),
		BathroomCount:     copyInt(in.BathroomCount),
		ParkingCount:      copyInt(in.ParkingCount),
		IsFeatured:        in.IsFeatured,
		Status:            status,
		TransactionStatus: txn,
		PostedAt:          time.Now().UTC(),
		UserID:            in.UserID,
		ImageURLs:         append([]string(nil), in.ImageURLs...),
		Latitude:          copyFloat(in.Latitude),
		Longitude:         copyFloat(in.Longitude),
		ReferenceNo:       refNo,
		BuildingAge:       copyInt(in.BuildingAge),
		HeatingType:       in.HeatingType,
		IsFurnished:       copyBool(in.IsFurnished),
		FacingDirection:   in.FacingDirection,
		FloorNumber:       copyInt(in.FloorNumber),
	}
	s.listings[l.ID] = l
	return copyListing(l)
}

func (s *MemoryStore) GetListing(id int) (*model.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, false
	}
	return copyListing(l), true
}

func (s *MemoryStore) UpdateListing(id int, upd ListingUpdate) (*model.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, false
	}
	if upd.Title != nil {
		l.Title = *upd.Title
		l.Slug = slug.Make(l.Title)
	}
	if upd.Description != nil {
		l.Description = *upd.Description
	}
	if upd.Price != nil {
		l.Price = *upd.Price
	}
	if upd.ListingType != nil {
		l.ListingType = *upd.ListingType
	}
	if upd.RentPeriod != nil {
		l.RentPeriod = copyRentPeriod(upd.RentPeriod)
	}
	if upd.PropertyTypeID != nil {
		l.PropertyTypeID = *upd.PropertyTypeID
	}
	if upd.CityID != nil {
		l.CityID = *upd.CityID
	}
	if upd.District != nil {
		l.District = *upd.District
	}
	if upd.Neighborhood != nil {
		l.Neighborhood = *upd.Neighborhood
	}
	if upd.Address != nil {
		l.Address = *upd.Address
	}
	if upd.SquareMeters != nil {
		l.SquareMeters = *upd.SquareMeters
	}
	if upd.RoomCount != nil {
		l.RoomCount = copyInt(upd.RoomCount)
	}
	if upd.BathroomCount != nil {
		l.BathroomCount = copyInt(upd.BathroomCount)
	}
	if upd.ParkingCount != nil {
		l.ParkingCount = copyInt(upd.ParkingCount)
	}
	if upd.IsFeatured != nil {
		l.IsFeatured = *upd.IsFeatured
	}
	if upd.Status != nil {
		l.Status = *upd.Status
	}
	if upd.TransactionStatus != nil {
		l.TransactionStatus = *upd.TransactionStatus
	}
	if upd.UserID != nil {
		l.UserID = *upd.UserID
	}
	if upd.ImageURLs != nil {
		l.ImageURLs = append([]string(nil), upd.ImageURLs...)
	}
	if upd.Latitude != nil {
		l.Latitude = copyFloat(upd.Latitude)
	}
	if upd.Longitude != nil {
		l.Longitude = copyFloat(upd.Longitude)
	}
	if upd.ReferenceNo != nil {
		l.ReferenceNo = *upd.ReferenceNo
	}
	if upd.BuildingAge != nil {
		l.BuildingAge = copyInt(upd.BuildingAge)
	}
	if upd.HeatingType != nil {
		l.HeatingType = *upd.HeatingType
	}
	if upd.IsFurnished != nil {
		l.IsFurnished = copyBool(upd.IsFurnished)
	}
	if upd.FacingDirection != nil {
		l.FacingDirection = *upd.FacingDirection
	}
	if upd.FloorNumber != nil {
		l.FloorNumber = copyInt(upd.FloorNumber)
	}

	// A type change re-establishes the rentPeriod rule: nil iff sale.
	if l.ListingType == model.ListingTypeSell {
		l.RentPeriod = nil
	} else if l.RentPeriod == nil {
		l.RentPeriod = l.ListingType.DefaultRentPeriod()
	}

	return copyListing(l), true
}

func (s *MemoryStore) DeleteListing(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.listings[id]; !ok {
		return false
	}
	delete(s.listings, id)
	return true
}

func (s *MemoryStore) CountListingsByCity(cityID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, l := range s.listings {
		if l.CityID == cityID {
			n++
		}
	}
	return n
}

func (s *MemoryStore) CountListingsByPropertyType(propertyTypeID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, l := range s.listings {
		if l.PropertyTypeID == propertyTypeID {
			n++
		}
	}
	return n
}

// RefreshListingCounts rewrites the denormalized display counters on
// cities and property types from the live listing collection. Read
// paths never trust these counters; the cron job keeps them roughly
// current for clients that render the cached value.
func (s *MemoryStore) RefreshListingCounts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	byCity := make(map[int]int)
	byType := make(map[int]int)
	for _, l := range s.listings {
		byCity[l.CityID]++
		byType[l.PropertyTypeID]++
	}
	for _, c := range s.cities {
		c.ListingCount = byCity[c.ID]
	}
	for _, p := range s.propertyTypes {
		p.ListingCount = byType[p.ID]
	}
}

// Contact messages

func (s *MemoryStore) CreateContactMessage(in ContactMessageInput) *model.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextMessageID++
	m := &model.ContactMessage{
		ID:        s.nextMessageID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.messages[m.ID] = m
	mc := *m
	return &mc
}

func (s *MemoryStore) ListContactMessages() []*model.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.ContactMessage, 0, len(s.messages))
	for _, m := range s.messages {
		mc := *m
		out = append(out, &mc)
	}
	// Newest first for the admin review screen.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Site settings

func (s *MemoryStore) GetSetting(name string) (*model.SiteSetting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.settings[name]
	if !ok {
		return nil, false
	}
	return copySetting(st), true
}

// SetSetting upserts, keeping exactly one row per name.
func (s *MemoryStore) SetSetting(name string, value json.RawMessage) *model.SiteSetting {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.settings[name]
	if !ok {
		s.nextSettingID++
		st = &model.SiteSetting{
			ID:   s.nextSettingID,
			Name: name,
		}
		s.settings[name] = st
	}
	st.Value = append(json.RawMessage(nil), value...)
	st.UpdatedAt = time.Now().UTC()
	return copySetting(st)
}

// Copy helpers. Listings carry pointer-typed optionals, so a plain
// struct copy would still alias the pointees.

func copyUser(u *model.User) *model.User {
	c := *u
	return &c
}

func copyListing(l *model.Listing) *model.Listing {
	c := *l
	c.RentPeriod = copyRentPeriod(l.RentPeriod)
	c.RoomCount = copyInt(l.RoomCount)
	c.BathroomCount = copyInt(l.BathroomCount)
	c.ParkingCount = copyInt(l.ParkingCount)
	c.ImageURLs = append([]string(nil), l.ImageURLs...)
	c.Latitude = copyFloat(l.Latitude)
	c.Longitude = copyFloat(l.Longitude)
	c.BuildingAge = copyInt(l.BuildingAge)
	c.IsFurnished = copyBool(l.IsFurnished)
	c.FloorNumber = copyInt(l.FloorNumber)
	return &c
}

func copySetting(st *model.SiteSetting) *model.SiteSetting {
	c := *st
	c.Value = append(json.RawMessage(nil), st.Value...)
	return &c
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyRentPeriod(p *model.RentPeriod) *model.RentPeriod {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
