package controller

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/model"
	"emlakpark_backend/internal/store"
)

// SettingsController serves the named site-wide configuration blobs.
// Reads are public (the client renders contact info and working hours
// in the footer); writes are admin-only.
type SettingsController struct {
	store store.Store
}

func NewSettingsController(s store.Store) *SettingsController {
	return &SettingsController{store: s}
}

func (ct *SettingsController) GetContactInfo(c *fiber.Ctx) error {
	return ct.getSetting(c, model.SettingContactInfo)
}

func (ct *SettingsController) UpdateContactInfo(c *fiber.Ctx) error {
	return ct.updateSetting(c, model.SettingContactInfo)
}

func (ct *SettingsController) GetWorkingHours(c *fiber.Ctx) error {
	return ct.getSetting(c, model.SettingWorkingHours)
}

func (ct *SettingsController) UpdateWorkingHours(c *fiber.Ctx) error {
	return ct.updateSetting(c, model.SettingWorkingHours)
}

func (ct *SettingsController) getSetting(c *fiber.Ctx, name string) error {
	setting, ok := ct.store.GetSetting(name)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Setting not found",
		})
	}
	return c.JSON(setting)
}

// updateSetting stores the request body as the new opaque payload.
// The store upserts, so exactly one row per name always exists.
func (ct *SettingsController) updateSetting(c *fiber.Ctx, name string) error {
	body := c.Body()
	if !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid JSON payload",
		})
	}

	setting := ct.store.SetSetting(name, json.RawMessage(body))
	return c.JSON(setting)
}
