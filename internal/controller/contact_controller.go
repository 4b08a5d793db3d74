package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/store"
	"emlakpark_backend/pkg/email"
)

type ContactController struct {
	store store.Store
}

func NewContactController(s store.Store) *ContactController {
	return &ContactController{store: s}
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Create accepts the public contact form. Messages are write-only from
// this side; only the admin review endpoint reads them back.
func (ct *ContactController) Create(c *fiber.Ctx) error {
	input := new(ContactInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Name == "" || input.Email == "" || input.Subject == "" || input.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name, email, subject and message are required",
		})
	}

	msg := ct.store.CreateContactMessage(store.ContactMessageInput{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	})

	if email.GlobalEmailService != nil {
		go func() {
			if err := email.GlobalEmailService.SendContactNotification(
				msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
			); err != nil {
				log.Printf("Could not send contact notification email: %v", err)
			}
		}()
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Your message has been received. We will get back to you soon.",
	})
}

func (ct *ContactController) List(c *fiber.Ctx) error {
	return c.JSON(ct.store.ListContactMessages())
}
