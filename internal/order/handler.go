package order

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/pharmacy-shop-backend/internal/auth"
)

// Handler serves the authenticated user's order history.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.getOrders)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	ident, err := auth.GetIdentityFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(c.Context(), ident.UID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}
