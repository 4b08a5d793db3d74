package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/model"
	"emlakpark_backend/internal/store"
	"emlakpark_backend/pkg/utils/jwt"
)

const MaxListingImages = 16

type ListingController struct {
	store store.Store
}

func NewListingController(s store.Store) *ListingController {
	return &ListingController{store: s}
}

type ListingCreateInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       int               `json:"price"`
	ListingType model.ListingType `json:"listingType"`
	RentPeriod  *model.RentPeriod `json:"rentPeriod"`

	PropertyTypeID int `json:"propertyTypeId"`
	CityID         int `json:"cityId"`

	District     string `json:"district"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`

	SquareMeters  int  `json:"squareMeters"`
	RoomCount     *int `json:"roomCount"`
	BathroomCount *int `json:"bathroomCount"`
	ParkingCount  *int `json:"parkingCount"`

	IsFeatured        bool                    `json:"isFeatured"`
	Status            model.ListingStatus     `json:"status"`
	TransactionStatus model.TransactionStatus `json:"transactionStatus"`

	UserID    int      `json:"userId"`
	ImageURLs []string `json:"imageUrls"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	ReferenceNo     string `json:"referenceNo"`
	BuildingAge     *int   `json:"buildingAge"`
	HeatingType     string `json:"heatingType"`
	IsFurnished     *bool  `json:"isFurnished"`
	FacingDirection string `json:"facingDirection"`
	FloorNumber     *int   `json:"floorNumber"`
}

type ListingUpdateInput struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Price       *int               `json:"price"`
	ListingType *model.ListingType `json:"listingType"`
	RentPeriod  *model.RentPeriod  `json:"rentPeriod"`

	PropertyTypeID *int `json:"propertyTypeId"`
	CityID         *int `json:"cityId"`

	District     *string `json:"district"`
	Neighborhood *string `json:"neighborhood"`
	Address      *string `json:"address"`

	SquareMeters  *int `json:"squareMeters"`
	RoomCount     *int `json:"roomCount"`
	BathroomCount *int `json:"bathroomCount"`
	ParkingCount  *int `json:"parkingCount"`

	IsFeatured        *bool                    `json:"isFeatured"`
	Status            *model.ListingStatus     `json:"status"`
	TransactionStatus *model.TransactionStatus `json:"transactionStatus"`

	UserID    *int     `json:"userId"`
	ImageURLs []string `json:"imageUrls"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	ReferenceNo     *string `json:"referenceNo"`
	BuildingAge     *int    `json:"buildingAge"`
	HeatingType     *string `json:"heatingType"`
	IsFurnished     *bool   `json:"isFurnished"`
	FacingDirection *string `json:"facingDirection"`
	FloorNumber     *int    `json:"floorNumber"`
}

// List serves the filterable listing catalog. All query parameters are
// optional and combinable; malformed numerics are rejected here so the
// query engine only ever sees sane values.
func (ct *ListingController) List(c *fiber.Ctx) error {
	var filter store.ListingFilter

	intParams := map[string]**int{
		"cityId":          &filter.CityID,
		"propertyTypeId":  &filter.PropertyTypeID,
		"minPrice":        &filter.MinPrice,
		"maxPrice":        &filter.MaxPrice,
		"minSquareMeters": &filter.MinSquareMeters,
		"maxSquareMeters": &filter.MaxSquareMeters,
		"roomCount":       &filter.RoomCount,
	}
	for name, dst := range intParams {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid " + name,
			})
		}
		*dst = &n
	}

	if raw := c.Query("listingType"); raw != "" {
		lt := model.ListingType(raw)
		if !lt.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid listingType",
			})
		}
		filter.ListingType = lt
	}

	filter.Search = c.Query("search")

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid limit",
			})
		}
		filter.Limit = n
	}

	return c.JSON(ct.store.ListListings(filter))
}

func (ct *ListingController) Featured(c *fiber.Ctx) error {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid limit",
			})
		}
		limit = n
	}
	return c.JSON(ct.store.FeaturedListings(limit))
}

func (ct *ListingController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing ID",
		})
	}

	listing, ok := ct.store.GetListing(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}
	return c.JSON(listing)
}

// Create requires authentication. Agents are always attributed their
// own listings; only an admin may attribute one to another user.
func (ct *ListingController) Create(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(ListingCreateInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if msg := validateListingCreate(input); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	userID := claims.UserID
	if claims.Role == model.RoleAdmin && input.UserID != 0 {
		if _, ok := ct.store.GetUser(input.UserID); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Assigned user does not exist",
			})
		}
		userID = input.UserID
	}

	listing := ct.store.CreateListing(store.ListingInput{
		Title:             input.Title,
		Description:       input.Description,
		Price:             input.Price,
		ListingType:       input.ListingType,
		RentPeriod:        input.RentPeriod,
		PropertyTypeID:    input.PropertyTypeID,
		CityID:            input.CityID,
		District:          input.District,
		Neighborhood:      input.Neighborhood,
		Address:           input.Address,
		SquareMeters:      input.SquareMeters,
		RoomCount:         input.RoomCount,
		BathroomCount:     input.BathroomCount,
		ParkingCount:      input.ParkingCount,
		IsFeatured:        input.IsFeatured,
		Status:            input.Status,
		TransactionStatus: input.TransactionStatus,
		UserID:            userID,
		ImageURLs:         input.ImageURLs,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		ReferenceNo:       input.ReferenceNo,
		BuildingAge:       input.BuildingAge,
		HeatingType:       input.HeatingType,
		IsFurnished:       input.IsFurnished,
		FacingDirection:   input.FacingDirection,
		FloorNumber:       input.FloorNumber,
	})

	return c.Status(fiber.StatusCreated).JSON(listing)
}

// Update is admin-only (enforced by middleware) and partial: omitted
// fields keep their current values.
func (ct *ListingController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing ID",
		})
	}

	input := new(ListingUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Price != nil && *input.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "price must be positive",
		})
	}
	if input.SquareMeters != nil && *input.SquareMeters <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "squareMeters must be positive",
		})
	}
	if input.ListingType != nil && !input.ListingType.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listingType",
		})
	}
	if input.ImageURLs != nil && len(input.ImageURLs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A listing needs at least one image",
		})
	}

	listing, ok := ct.store.UpdateListing(id, store.ListingUpdate{
		Title:             input.Title,
		Description:       input.Description,
		Price:             input.Price,
		ListingType:       input.ListingType,
		RentPeriod:        input.RentPeriod,
		PropertyTypeID:    input.PropertyTypeID,
		CityID:            input.CityID,
		District:          input.District,
		Neighborhood:      input.Neighborhood,
		Address:           input.Address,
		SquareMeters:      input.SquareMeters,
		RoomCount:         input.RoomCount,
		BathroomCount:     input.BathroomCount,
		ParkingCount:      input.ParkingCount,
		IsFeatured:        input.IsFeatured,
		Status:            input.Status,
		TransactionStatus: input.TransactionStatus,
		UserID:            input.UserID,
		ImageURLs:         input.ImageURLs,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		ReferenceNo:       input.ReferenceNo,
		BuildingAge:       input.BuildingAge,
		HeatingType:       input.HeatingType,
		IsFurnished:       input.IsFurnished,
		FacingDirection:   input.FacingDirection,
		FloorNumber:       input.FloorNumber,
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}

	return c.JSON(listing)
}

func (ct *ListingController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid listing ID",
		})
	}

	if !ct.store.DeleteListing(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Listing not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func validateListingCreate(input *ListingCreateInput) string {
	switch {
	case input.Title == "":
		return "title is required"
	case input.Price <= 0:
		return "price must be positive"
	case input.SquareMeters <= 0:
		return "squareMeters must be positive"
	case !input.ListingType.Valid():
		return "Invalid listingType"
	case input.CityID == 0:
		return "cityId is required"
	case input.PropertyTypeID == 0:
		return "propertyTypeId is required"
	case input.Address == "":
		return "address is required"
	case len(input.ImageURLs) == 0:
		return "A listing needs at least one image"
	case len(input.ImageURLs) > MaxListingImages:
		return "Too many images"
	}
	return ""
}
