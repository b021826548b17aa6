package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/safestay/safestay-backend/internal/ussd"
)

// UssdHandler bridges the gateway's HTTP callback to the dialog engine
type UssdHandler struct {
	engine *ussd.Engine
}

// NewUssdHandler creates a new USSD handler
func NewUssdHandler(engine *ussd.Engine) *UssdHandler {
	return &UssdHandler{
		engine: engine,
	}
}

// HandleCallback processes a gateway turn. The gateway posts form-encoded
// sessionId/serviceCode/phoneNumber/text and expects a plain-text body
// starting with CON or END.
func (h *UssdHandler) HandleCallback(c *fiber.Ctx) error {
	cb := ussd.Callback{
		SessionID:   c.FormValue("sessionId"),
		ServiceCode: c.FormValue("serviceCode"),
		PhoneNumber: c.FormValue("phoneNumber"),
		Text:        c.FormValue("text"),
	}

	if cb.SessionID == "" || cb.PhoneNumber == "" {
		c.Set("Content-Type", "text/plain")
		return c.SendString(ussd.EndPrefix + "An error occurred. Please try again later.")
	}

	response := h.engine.Handle(cb)

	c.Set("Content-Type", "text/plain")
	return c.SendString(response)
}

// HandleTest simulates a gateway turn from a JSON body, for development.
// The response comes back as JSON with the raw text and its type.
func (h *UssdHandler) HandleTest(c *fiber.Ctx) error {
	var req struct {
		SessionID   string `json:"sessionId"`
		PhoneNumber string `json:"phoneNumber"`
		Text        string `json:"text"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.SessionID == "" {
		req.SessionID = fmt.Sprintf("test_%d", time.Now().UnixNano())
	}
	if req.PhoneNumber == "" {
		req.PhoneNumber = "+254700000000"
	}

	response := h.engine.Handle(ussd.Callback{
		SessionID:   req.SessionID,
		ServiceCode: "*384*96#",
		PhoneNumber: req.PhoneNumber,
		Text:        req.Text,
	})

	responseType := "end"
	if strings.HasPrefix(response, ussd.ContinuePrefix) {
		responseType = "continue"
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"sessionId": req.SessionID,
		"response":  response,
		"type":      responseType,
	})
}
