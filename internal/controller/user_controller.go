package controller

import (
	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/model"
	"emlakpark_backend/internal/store"
	"emlakpark_backend/pkg/utils/password"
)

// UserController is the admin back office for accounts. All routes sit
// behind the admin middleware.
type UserController struct {
	store store.Store
}

func NewUserController(s store.Store) *UserController {
	return &UserController{store: s}
}

type UserCreateInput struct {
	Username  string     `json:"username"`
	Password  string     `json:"password"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	AvatarURL string     `json:"avatarUrl"`
	Role      model.Role `json:"role"`
}

type UserUpdateInput struct {
	Username  *string     `json:"username"`
	Password  *string     `json:"password"`
	FullName  *string     `json:"fullName"`
	Email     *string     `json:"email"`
	Phone     *string     `json:"phone"`
	AvatarURL *string     `json:"avatarUrl"`
	Role      *model.Role `json:"role"`
}

func (ct *UserController) List(c *fiber.Ctx) error {
	return c.JSON(ct.store.ListUsers())
}

func (ct *UserController) Create(c *fiber.Ctx) error {
	input := new(UserCreateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Username == "" || input.Password == "" || input.FullName == "" || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "username, password, fullName and email are required",
		})
	}
	if input.Role != "" && input.Role != model.RoleAdmin && input.Role != model.RoleAgent {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid role",
		})
	}

	if _, exists := ct.store.GetUserByUsername(input.Username); exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Username already exists",
		})
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not hash password",
		})
	}

	user := ct.store.CreateUser(store.UserInput{
		Username:  input.Username,
		Password:  hashed,
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		AvatarURL: input.AvatarURL,
		Role:      input.Role,
	})

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (ct *UserController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	input := new(UserUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if input.Role != nil && *input.Role != model.RoleAdmin && *input.Role != model.RoleAgent {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid role",
		})
	}

	// A username change must not collide with another account.
	if input.Username != nil {
		if existing, ok := ct.store.GetUserByUsername(*input.Username); ok && existing.ID != id {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Username already exists",
			})
		}
	}

	upd := store.UserUpdate{
		Username:  input.Username,
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		AvatarURL: input.AvatarURL,
		Role:      input.Role,
	}
	if input.Password != nil {
		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not hash password",
			})
		}
		upd.Password = &hashed
	}

	user, ok := ct.store.UpdateUser(id, upd)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(user)
}

// Delete removes an account. Admin accounts are undeletable; the rule
// lives here and not in the store, which stays policy-free.
func (ct *UserController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	user, ok := ct.store.GetUser(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	if user.IsAdmin() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Admin accounts cannot be deleted",
		})
	}

	ct.store.DeleteUser(id)
	return c.SendStatus(fiber.StatusNoContent)
}
