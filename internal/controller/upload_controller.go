package controller

import (
	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/store"
	"emlakpark_backend/pkg/utils/image"
	"emlakpark_backend/pkg/utils/storage"
)

type UploadController struct {
	store store.Store
}

func NewUploadController(s store.Store) *UploadController {
	return &UploadController{store: s}
}

// UploadListingImage accepts a multipart photo, re-encodes it, stores
// it to S3 and appends the URL to the listing's ordered image list.
func (ct *UploadController) UploadListingImage(c *fiber.Ctx) error {
	if !storage.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Image storage is not configured",
		})
	}

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

	if len(listing.ImageURLs) >= MaxListingImages {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maximum image limit reached",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	buf, contentType, err := image.ProcessImage(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	url, err := storage.UploadListingImage(c.Context(), buf, contentType, listing.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not upload image",
		})
	}

	updated, _ := ct.store.UpdateListing(listing.ID, store.ListingUpdate{
		ImageURLs: append(listing.ImageURLs, url),
	})

	return c.Status(fiber.StatusCreated).JSON(updated)
}
