package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/safestay/safestay-backend/internal/storage"
)

// ComplaintHandler exposes complaints to the dashboard API
type ComplaintHandler struct {
	store storage.Store
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(store storage.Store) *ComplaintHandler {
	return &ComplaintHandler{
		store: store,
	}
}

// GetMyComplaints returns the authenticated user's complaints
func (h *ComplaintHandler) GetMyComplaints(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	complaints, err := h.store.GetComplaintsByTenant(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch complaints",
		})
	}

	return c.JSON(fiber.Map{
		"complaints": complaints,
	})
}

// GetTenantComplaints returns a tenant's complaints, for landlord dashboards
func (h *ComplaintHandler) GetTenantComplaints(c *fiber.Ctx) error {
	tenantID, err := c.ParamsInt("tenantId")
	if err != nil || tenantID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid tenant ID",
		})
	}

	complaints, err := h.store.GetComplaintsByTenant(uint(tenantID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch complaints",
		})
	}

	return c.JSON(fiber.Map{
		"complaints": complaints,
	})
}
