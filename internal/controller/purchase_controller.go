package controller

import (
	"errors"
	"strconv"

	"bundle-store-be/internal/dto"
	"bundle-store-be/internal/pkg/serverutils"
	"bundle-store-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPurchaseController interface {
	RegisterRoutes(r fiber.Router)
	ListPaymentMethods(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	GetReceipt(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
}

type purchaseController struct {
	service service.IPurchaseService
}

func NewPurchaseController(service service.IPurchaseService) IPurchaseController {
	return &purchaseController{service: service}
}

func (c *purchaseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/purchase")
	h.Get("/methods", c.ListPaymentMethods) // Public, the picker renders pre-auth

	// Protected routes
	h.Post("/checkout", serverutils.JwtMiddleware, c.Checkout)
	h.Get("/receipt/:id", serverutils.JwtMiddleware, c.GetReceipt)

	r.Get("/transactions", serverutils.JwtMiddleware, c.GetHistory)
}

func (c *purchaseController) ListPaymentMethods(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success fetching payment methods", c.service.ListPaymentMethods()))
}

func (c *purchaseController) Checkout(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Checkout(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrPaymentDeclined) && res != nil {
			// The charge itself was declined. Report the failed outcome
			// rather than a bare error so the client can render it.
			return ctx.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
				"success": false,
				"code":    402,
				"message": err.Error(),
				"data":    res,
			})
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Purchase completed", res))
}

func (c *purchaseController) GetReceipt(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetReceipt(ctx.Context(), userId, ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching receipt", res))
}

func (c *purchaseController) GetHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid limit"))
		}
		limit = parsed
	}

	res, err := c.service.GetHistory(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching transactions", res))
}
