package handlers

import (
	"errors"
	"streetbite-backend/domain"
	"streetbite-backend/internal/api/presenters"
	"streetbite-backend/pkg/promotion"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PromotionHandler interface {
		CreatePromotion(c *fiber.Ctx) error
		HandleWebhook(c *fiber.Ctx) error
		GetVendorPromotions(c *fiber.Ctx) error
	}

	promotionHandler struct {
		promotionService promotion.PromotionService
		validator        *validator.Validate
	}
)

func NewPromotionHandler(promotionService promotion.PromotionService, validator *validator.Validate) PromotionHandler {
	return &promotionHandler{
		promotionService: promotionService,
		validator:        validator,
	}
}

func (h *promotionHandler) CreatePromotion(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	if role != domain.RoleVendor {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	req := new(domain.CreatePromotionRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePromotion, err)
	}

	res, err := h.promotionService.CreatePromotion(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrVendorNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreatePromotion, err)
		case errors.Is(err, domain.ErrInvalidDuration):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePromotion, err)
		case errors.Is(err, domain.ErrPaymentFailed):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedCreatePromotion, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreatePromotion, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePromotion)
}

// HandleWebhook receives payment notifications from Midtrans. It is
// unauthenticated and must always answer 200 on processed requests so the
// gateway stops retrying.
func (h *promotionHandler) HandleWebhook(c *fiber.Ctx) error {
	req := new(domain.PromotionWebhookRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.promotionService.HandleWebhook(c.Context(), *req); err != nil {
		if errors.Is(err, domain.ErrPromotionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreatePromotion, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreatePromotion, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCreatePromotion)
}

func (h *promotionHandler) GetVendorPromotions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	if role != domain.RoleVendor {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	res, err := h.promotionService.GetVendorPromotions(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPromotions, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPromotions, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"orders": res,
		"count":  len(res),
	}, fiber.StatusOK, domain.MessageSuccessGetPromotions)
}
