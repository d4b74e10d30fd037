package controller

import (
	"bundle-store-be/internal/pkg/serverutils"
	"bundle-store-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListProviders(ctx *fiber.Ctx) error
	ListCategories(ctx *fiber.Ctx) error
	ListBundles(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

// Catalog routes are public: the selection screens render before sign-in.
func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("/providers", c.ListProviders)
	h.Get("/categories", c.ListCategories)
	h.Get("/bundles", c.ListBundles)
}

func (c *catalogController) ListProviders(ctx *fiber.Ctx) error {
	res, err := c.service.ListProviders(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching providers", res))
}

func (c *catalogController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.service.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching categories", res))
}

func (c *catalogController) ListBundles(ctx *fiber.Ctx) error {
	providerIdStr := ctx.Query("provider_id")
	categoryIdStr := ctx.Query("category_id")
	if providerIdStr == "" || categoryIdStr == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "provider_id and category_id are required"))
	}

	providerId, err := uuid.Parse(providerIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid provider_id"))
	}
	categoryId, err := uuid.Parse(categoryIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid category_id"))
	}

	res, err := c.service.ListBundles(ctx.Context(), providerId, categoryId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success fetching bundles", res))
}
