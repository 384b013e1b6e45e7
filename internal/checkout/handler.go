package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/pharmacy-shop-backend/internal/auth"
)

// Handler exposes the single checkout operation.
type Handler struct {
	coordinator *Coordinator
}

func NewHandler(co *Coordinator) *Handler {
	return &Handler{coordinator: co}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.checkout)
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	ident, err := auth.GetIdentityFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord, err := h.coordinator.Checkout(c.Context(), ident)
	if err != nil {
		var gone *ProductGoneError
		var stock *InsufficientStockError
		switch {
		case errors.Is(err, ErrNotAuthenticated):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
		case errors.As(err, &gone), errors.As(err, &stock):
			// cart left intact so the user can fix the line and retry
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(ord)
}
