package handlers

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/safestay/safestay-backend/internal/models"
	"github.com/safestay/safestay-backend/internal/services"
	"github.com/safestay/safestay-backend/internal/storage"
)

// AuthHandler handles registration and login for the dashboard API
type AuthHandler struct {
	store         storage.Store
	notifications *services.NotificationService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store storage.Store, notifications *services.NotificationService) *AuthHandler {
	return &AuthHandler{
		store:         store,
		notifications: notifications,
	}
}

// RegisterRequest is the registration payload for tenants and landlords
type RegisterRequest struct {
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	Password             string     `json:"password"`
	NationalID           string     `json:"national_id"`
	PrimaryPhoneNumber   string     `json:"primary_phone_number"`
	SecondaryPhoneNumber string     `json:"secondary_phone_number"`
	Role                 string     `json:"role"`
	ApartmentName        string     `json:"apartment_name"`
	RentAmount           float64    `json:"rent_amount"`
	DateMovedIn          *time.Time `json:"date_moved_in"`
}

// Register creates a tenant or landlord account
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" || req.PrimaryPhoneNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name, email, password, and primary phone number are required",
		})
	}

	if req.Role != models.RoleTenant && req.Role != models.RoleLandlord {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role must be Tenant or Landlord",
		})
	}

	if existing, _ := h.store.GetUserByEmail(req.Email); existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User already exists",
		})
	}

	user, err := h.store.CreateUser(&models.User{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		NationalID:           req.NationalID,
		PrimaryPhoneNumber:   req.PrimaryPhoneNumber,
		SecondaryPhoneNumber: req.SecondaryPhoneNumber,
		Role:                 req.Role,
		ApartmentName:        req.ApartmentName,
		RentAmount:           req.RentAmount,
		DateMovedIn:          req.DateMovedIn,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to register user",
		})
	}

	if h.notifications != nil {
		go func() {
			if err := h.notifications.SendWelcomeMessage(user); err != nil {
				log.Printf("Failed to send welcome message to %s: %v", user.PrimaryPhoneNumber, err)
			}
		}()
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful",
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"token": token,
	})
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and issues a JWT
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := h.store.GetUserByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	if !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Incorrect password",
		})
	}

	token, err := generateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
		"token": token,
	})
}

// generateToken issues a 7-day JWT carrying the user's ID and role.
func generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
