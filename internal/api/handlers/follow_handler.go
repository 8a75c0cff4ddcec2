package handlers

import (
	"errors"
	"streetbite-backend/domain"
	"streetbite-backend/internal/api/presenters"
	"streetbite-backend/pkg/follow"

	"github.com/gofiber/fiber/v2"
)

type (
	FollowHandler interface {
		Follow(c *fiber.Ctx) error
		Unfollow(c *fiber.Ctx) error
		FollowStatus(c *fiber.Ctx) error
		ListFollowed(c *fiber.Ctx) error
	}

	followHandler struct {
		followService follow.FollowService
	}
)

func NewFollowHandler(followService follow.FollowService) FollowHandler {
	return &followHandler{followService: followService}
}

func (h *followHandler) Follow(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	if role != domain.RoleCustomer {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	vendorID := c.Params("id")

	if err := h.followService.Follow(c.Context(), userID, vendorID); err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedFollow, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFollow, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessFollow)
}

func (h *followHandler) Unfollow(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	vendorID := c.Params("id")

	if err := h.followService.Unfollow(c.Context(), userID, vendorID); err != nil {
		if errors.Is(err, domain.ErrNotFollowing) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUnfollow, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnfollow, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnfollow)
}

func (h *followHandler) FollowStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	vendorID := c.Params("id")

	res, err := h.followService.Status(c.Context(), userID, vendorID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFollow, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessListFollowed)
}

func (h *followHandler) ListFollowed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.followService.ListFollowed(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListFollowed, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessListFollowed)
}
