package controller

import (
	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/model"
	"emlakpark_backend/internal/store"
)

// AgentController is the public agent directory.
type AgentController struct {
	store store.Store
}

func NewAgentController(s store.Store) *AgentController {
	return &AgentController{store: s}
}

func (ct *AgentController) List(c *fiber.Ctx) error {
	agents := ct.store.ListAgents()
	out := make([]map[string]interface{}, 0, len(agents))
	for _, a := range agents {
		out = append(out, a.GetPublicProfile())
	}
	return c.JSON(out)
}

func (ct *AgentController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid agent ID",
		})
	}

	agent, ok := ct.store.GetUser(id)
	if !ok || agent.Role != model.RoleAgent {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agent not found",
		})
	}
	return c.JSON(agent.GetPublicProfile())
}

// Listings serves one agent's active listings, newest first.
func (ct *AgentController) Listings(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid agent ID",
		})
	}

	agent, ok := ct.store.GetUser(id)
	if !ok || agent.Role != model.RoleAgent {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Agent not found",
		})
	}

	listings := ct.store.ListListingsByUser(agent.ID)
	active := listings[:0]
	for _, l := range listings {
		if l.Status == model.ListingStatusActive {
			active = append(active, l)
		}
	}
	return c.JSON(active)
}
