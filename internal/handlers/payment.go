package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/safestay/safestay-backend/internal/services"
	"github.com/safestay/safestay-backend/internal/storage"
)

// PaymentHandler receives M-Pesa settlement webhooks from the provider
type PaymentHandler struct {
	store    storage.Store
	payments *services.PaymentService
}

// NewPaymentHandler creates a new payment webhook handler
func NewPaymentHandler(store storage.Store, payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		store:    store,
		payments: payments,
	}
}

// HandleNotification processes a settlement notification. The provider
// retries on non-2xx, so only genuinely retryable failures return 500.
func (h *PaymentHandler) HandleNotification(c *fiber.Ctx) error {
	if err := h.payments.ProcessPaymentNotification(c.Body()); err != nil {
		log.Printf("Payment notification error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing payment notification",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment processed successfully",
	})
}

// QueryStatus looks up a settled payment by provider transaction ID
func (h *PaymentHandler) QueryStatus(c *fiber.Ctx) error {
	transactionID := c.Params("transactionId")
	if transactionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Transaction ID is required",
		})
	}

	request, err := h.store.GetPaymentRequestByTransaction(transactionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Transaction not found",
		})
	}

	bill, err := h.store.GetBill(request.BillID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Bill not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"payment": fiber.Map{
			"transaction_id": request.TransactionID,
			"amount":         request.Amount,
			"status":         request.Status,
			"bill":           bill.Month,
			"year":           bill.Year,
		},
	})
}
