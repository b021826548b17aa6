package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/safestay/safestay-backend/internal/models"
	"github.com/safestay/safestay-backend/internal/services"
	"github.com/safestay/safestay-backend/internal/storage"
)

// BillHandler handles bill management for the dashboard API
type BillHandler struct {
	store    storage.Store
	payments *services.PaymentService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(store storage.Store, payments *services.PaymentService) *BillHandler {
	return &BillHandler{
		store:    store,
		payments: payments,
	}
}

// CreateBillRequest is the payload for issuing a new bill
type CreateBillRequest struct {
	TenantID    uint      `json:"tenant_id"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	Month       string    `json:"month"`
	Year        int       `json:"year"`
	Description string    `json:"description"`
}

// CreateBill issues a bill against a tenant
func (h *BillHandler) CreateBill(c *fiber.Ctx) error {
	var req CreateBillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.TenantID == 0 || req.Amount <= 0 || req.Month == "" || req.Year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Tenant, amount, month, and year are required",
		})
	}

	tenant, err := h.store.GetUser(req.TenantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tenant not found",
		})
	}

	landlordID := uint(0)
	if landlord, err := h.store.GetLandlordByApartment(tenant.ApartmentName); err == nil {
		landlordID = landlord.ID
	}

	bill, err := h.store.CreateBill(&models.Bill{
		TenantID:    tenant.ID,
		LandlordID:  landlordID,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Month:       req.Month,
		Year:        req.Year,
		Description: req.Description,
		Status:      models.BillStatusPending,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create bill",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Bill created successfully",
		"bill":    bill,
	})
}

// GetMyBills returns the authenticated user's bills
func (h *BillHandler) GetMyBills(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	bills, err := h.store.GetBillsByTenant(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bills",
		})
	}

	stats, err := h.store.GetBillStats(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bill stats",
		})
	}

	return c.JSON(fiber.Map{
		"bills": bills,
		"stats": stats,
	})
}

// GetTenantBills returns a tenant's bills, for landlord dashboards
func (h *BillHandler) GetTenantBills(c *fiber.Ctx) error {
	tenantID, err := c.ParamsInt("tenantId")
	if err != nil || tenantID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid tenant ID",
		})
	}

	bills, err := h.store.GetBillsByTenant(uint(tenantID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bills",
		})
	}

	return c.JSON(fiber.Map{
		"bills": bills,
	})
}

// RecordPaymentRequest is the payload for manual payment entry
type RecordPaymentRequest struct {
	BillID uint    `json:"bill_id"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Notes  string  `json:"notes"`
}

// RecordPayment records a cash or bank payment against a bill
func (h *BillHandler) RecordPayment(c *fiber.Ctx) error {
	var req RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	bill, err := h.payments.RecordManualPayment(req.BillID, req.Amount, req.Method, req.Notes)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Payment recorded successfully",
		"bill": fiber.Map{
			"id":               bill.ID,
			"paid_amount":      bill.PaidAmount,
			"remaining_amount": bill.RemainingAmount,
			"status":           bill.Status,
		},
	})
}
