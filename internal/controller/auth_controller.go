package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/middleware"
	"emlakpark_backend/internal/store"
	"emlakpark_backend/pkg/utils/jwt"
	"emlakpark_backend/pkg/utils/password"
)

type AuthController struct {
	store store.Store
}

func NewAuthController(s store.Store) *AuthController {
	return &AuthController{store: s}
}

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an agent account and logs it in. Role is always
// agent here; only an admin can promote accounts afterwards.
func (ct *AuthController) Register(c *fiber.Ctx) error {
	input := new(RegisterInput)
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

	// Uniqueness is checked before any mutation happens.
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
		Username: input.Username,
		Password: hashed,
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
	})

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}
	setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login verifies credentials. Unknown user and wrong password produce
// the same generic response so usernames cannot be enumerated.
func (ct *AuthController) Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	user, ok := ct.store.GetUserByUsername(input.Username)
	if !ok || !password.Verify(input.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, err := jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}
	setSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (ct *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{
		"message": "Logged out",
	})
}

func (ct *AuthController) GetMe(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	user, ok := ct.store.GetUser(claims.UserID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	return c.JSON(fiber.Map{
		"user": user,
	})
}

type ProfileUpdateInput struct {
	FullName  *string `json:"fullName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatarUrl"`
	Password  *string `json:"password"`
}

// UpdateMe lets the logged-in account change its own profile fields.
// Username and role are fixed here; changing those is an admin
// operation.
func (ct *AuthController) UpdateMe(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	input := new(ProfileUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	upd := store.UserUpdate{
		FullName:  input.FullName,
		Email:     input.Email,
		Phone:     input.Phone,
		AvatarURL: input.AvatarURL,
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

	user, ok := ct.store.UpdateUser(claims.UserID, upd)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}
	return c.JSON(fiber.Map{
		"user": user,
	})
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(jwt.SessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
