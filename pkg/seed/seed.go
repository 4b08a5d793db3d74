package seed

import (
	"encoding/json"
	"fmt"
	"log"

	"emlakpark_backend/internal/model"
	"emlakpark_backend/internal/store"
	"emlakpark_backend/pkg/utils/password"
)

var cities = []struct {
	Name      string
	ImageURL  string
	Districts []string
}{
	{"İstanbul", "https://images.emlakpark.com/cities/istanbul.jpg", []string{"Kadıköy", "Beşiktaş", "Üsküdar", "Sarıyer", "Bakırköy"}},
	{"Ankara", "https://images.emlakpark.com/cities/ankara.jpg", []string{"Çankaya", "Keçiören", "Yenimahalle", "Etimesgut"}},
	{"İzmir", "https://images.emlakpark.com/cities/izmir.jpg", []string{"Konak", "Karşıyaka", "Bornova", "Alsancak"}},
	{"Antalya", "https://images.emlakpark.com/cities/antalya.jpg", []string{"Muratpaşa", "Konyaaltı", "Lara", "Kepez"}},
	{"Bursa", "https://images.emlakpark.com/cities/bursa.jpg", []string{"Nilüfer", "Osmangazi", "Yıldırım"}},
	{"Mersin", "https://images.emlakpark.com/cities/mersin.jpg", []string{"Yenişehir", "Mezitli", "Erdemli"}},
}

var propertyTypes = []struct {
	Name string
	Icon string
}{
	{"Daire", "apartment"},
	{"Villa", "villa"},
	{"Müstakil Ev", "home"},
	{"Residence", "building"},
	{"Ofis", "briefcase"},
	{"Arsa", "map"},
}

var agents = []struct {
	Username string
	FullName string
	Email    string
	Phone    string
}{
	{"ayse.yilmaz", "Ayşe Yılmaz", "ayse.yilmaz@emlakpark.com", "+90 532 111 22 33"},
	{"mehmet.kaya", "Mehmet Kaya", "mehmet.kaya@emlakpark.com", "+90 533 222 33 44"},
	{"zeynep.demir", "Zeynep Demir", "zeynep.demir@emlakpark.com", "+90 534 333 44 55"},
	{"emre.celik", "Emre Çelik", "emre.celik@emlakpark.com", "+90 535 444 55 66"},
}

// Seed repopulates a fresh store with the fixed catalogs, the admin
// account, a few agents and procedurally varied listings. The store is
// not durable, so this runs on every start and produces the same data
// each time (only timestamps differ).
func Seed(s store.Store, listingCount int) error {
	adminHash, err := password.Hash("admin123")
	if err != nil {
		return fmt.Errorf("could not hash admin password: %w", err)
	}
	agentHash, err := password.Hash("agent123")
	if err != nil {
		return fmt.Errorf("could not hash agent password: %w", err)
	}

	s.CreateUser(store.UserInput{
		Username: "admin",
		Password: adminHash,
		FullName: "Site Yöneticisi",
		Email:    "admin@emlakpark.com",
		Role:     model.RoleAdmin,
	})

	agentIDs := make([]int, 0, len(agents))
	for _, a := range agents {
		u := s.CreateUser(store.UserInput{
			Username: a.Username,
			Password: agentHash,
			FullName: a.FullName,
			Email:    a.Email,
			Phone:    a.Phone,
			Role:     model.RoleAgent,
		})
		agentIDs = append(agentIDs, u.ID)
	}

	cityIDs := make([]int, 0, len(cities))
	for _, c := range cities {
		created := s.CreateCity(store.CityInput{Name: c.Name, ImageURL: c.ImageURL})
		cityIDs = append(cityIDs, created.ID)
	}

	typeIDs := make([]int, 0, len(propertyTypes))
	for _, p := range propertyTypes {
		created := s.CreatePropertyType(store.PropertyTypeInput{Name: p.Name, Icon: p.Icon})
		typeIDs = append(typeIDs, created.ID)
	}

	seedListings(s, listingCount, cityIDs, typeIDs, agentIDs)
	seedSettings(s)

	log.Printf("Seeded %d cities, %d property types, %d users, %d listings",
		len(cityIDs), len(typeIDs), len(agentIDs)+1, listingCount)
	return nil
}

var listingTypes = []model.ListingType{
	model.ListingTypeSell,
	model.ListingTypeRent,
	model.ListingTypeDaily,
}

func seedListings(s store.Store, count int, cityIDs, typeIDs, agentIDs []int) {
	// Fixed showcase listing, always present regardless of count.
	rooms := 3
	baths := 2
	s.CreateListing(store.ListingInput{
		Title:          "Kadıköy'de Deniz Manzaralı 3+1 Daire",
		Description:    "Moda sahiline yürüme mesafesinde, yüksek katta, deniz manzaralı daire.",
		Price:          2000000,
		ListingType:    model.ListingTypeSell,
		CityID:         cityIDs[0],
		PropertyTypeID: typeIDs[0],
		District:       "Kadıköy",
		Neighborhood:   "Moda Mahallesi",
		Address:        "Moda Caddesi No: 12, Kadıköy/İstanbul",
		SquareMeters:   100,
		RoomCount:      &rooms,
		BathroomCount:  &baths,
		IsFeatured:     true,
		UserID:         agentIDs[0],
		ImageURLs: []string{
			"https://images.emlakpark.com/listings/000-1.jpg",
			"https://images.emlakpark.com/listings/000-2.jpg",
		},
	})

	for i := 0; i < count; i++ {
		cityIdx := i % len(cities)
		city := cities[cityIdx]
		district := city.Districts[i%len(city.Districts)]
		ptIdx := (i * 5 / 3) % len(typeIDs)
		lt := listingTypes[i%len(listingTypes)]

		sqm := 70 + (i*17)%180
		rooms := 1 + (i % 5)
		baths := 1 + (i % 3)

		var price int
		switch lt {
		case model.ListingTypeSell:
			price = 1000000 + sqm*25000 + (i%7)*150000
		case model.ListingTypeRent:
			price = 15000 + sqm*180 + (i%7)*2500
		default:
			price = 2500 + sqm*20 + (i%7)*500
		}

		title := fmt.Sprintf("%s %s, %d+1 %s",
			city.Name, district, rooms, propertyTypes[ptIdx].Name)

		s.CreateListing(store.ListingInput{
			Title:          title,
			Description:    fmt.Sprintf("%s %s bölgesinde %d m² %s.", city.Name, district, sqm, propertyTypes[ptIdx].Name),
			Price:          price,
			ListingType:    lt,
			CityID:         cityIDs[cityIdx],
			PropertyTypeID: typeIDs[ptIdx],
			District:       district,
			Neighborhood:   fmt.Sprintf("%s Mahallesi", district),
			Address:        fmt.Sprintf("%s Caddesi No: %d, %s/%s", district, 10+i, district, city.Name),
			SquareMeters:   sqm,
			RoomCount:      &rooms,
			BathroomCount:  &baths,
			IsFeatured:     i%5 == 0,
			UserID:         agentIDs[i%len(agentIDs)],
			ImageURLs: []string{
				fmt.Sprintf("https://images.emlakpark.com/listings/%03d-1.jpg", i+1),
				fmt.Sprintf("https://images.emlakpark.com/listings/%03d-2.jpg", i+1),
			},
		})
	}
}

func seedSettings(s store.Store) {
	contactInfo, _ := json.Marshal(map[string]string{
		"address": "Bağdat Caddesi No: 145, Kadıköy/İstanbul",
		"phone":   "+90 216 555 00 00",
		"email":   "info@emlakpark.com",
	})
	s.SetSetting(model.SettingContactInfo, contactInfo)

	workingHours, _ := json.Marshal(map[string]string{
		"weekdays": "09:00 - 19:00",
		"saturday": "10:00 - 17:00",
		"sunday":   "Kapalı",
	})
	s.SetSetting(model.SettingWorkingHours, workingHours)
}
