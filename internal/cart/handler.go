package cart

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/pharmacy-shop-backend/internal/auth"
	"github.com/wichananm65/pharmacy-shop-backend/internal/product"
)

// Handler exposes the cart operations over HTTP. Every route is protected:
// the cart belongs to the authenticated caller.
type Handler struct {
	store    *Store
	products product.ServiceInterface
}

func NewHandler(store *Store, products product.ServiceInterface) *Handler {
	return &Handler{store: store, products: products}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Post("/api/v1/cart/:lineID/increase", h.increase)
	app.Post("/api/v1/cart/:lineID/decrease", h.decrease)
	app.Delete("/api/v1/cart/:lineID", h.remove)
	app.Delete("/api/v1/cart", h.clear)
}

type addRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type cartResponse struct {
	Items      []Line  `json:"items"`
	TotalPrice float64 `json:"totalPrice"`
}

func respond(c *fiber.Ctx, lines []Line) error {
	return c.JSON(cartResponse{Items: lines, TotalPrice: Total(lines)})
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	ident, err := auth.GetIdentityFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respond(c, h.store.Items(requestCtx(c), ident.UID))
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	ident, err := auth.GetIdentityFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	p, err := h.products.GetByID(requestCtx(c), payload.ProductID)
	if err != nil {
		switch err {
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return respond(c, h.store.Add(requestCtx(c), ident.UID, p, payload.Quantity))
}

func (h *Handler) increase(c *fiber.Ctx) error {
	ident, err := auth.GetIdentityFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respond(c, h.store.Increase(requestCtx(c), ident.UID, c.Params("lineID")))
}

func (h *Handler) decrease(c *fiber.Ctx) error {
	ident, err := auth.GetIdentityFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respond(c, h.store.Decrease(requestCtx(c), ident.UID, c.Params("lineID")))
}

func (h *Handler) remove(c *fiber.Ctx) error {
	ident, err := auth.GetIdentityFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	return respond(c, h.store.Remove(requestCtx(c), ident.UID, c.Params("lineID")))
}

func (h *Handler) clear(c *fiber.Ctx) error {
	ident, err := auth.GetIdentityFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	h.store.Clear(requestCtx(c), ident.UID)
	return respond(c, []Line{})
}

func requestCtx(c *fiber.Ctx) context.Context {
	return c.Context()
}
