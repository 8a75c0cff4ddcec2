package handlers

import (
	"errors"
	"streetbite-backend/domain"
	"streetbite-backend/internal/api/presenters"
	"streetbite-backend/pkg/comment"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CommentHandler interface {
		PostComment(c *fiber.Ctx) error
		ListAreaComments(c *fiber.Ctx) error
		ListVendorAreaComments(c *fiber.Ctx) error
		ListVendorComments(c *fiber.Ctx) error
		ToggleLike(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
	}

	commentHandler struct {
		commentService comment.CommentService
		validator      *validator.Validate
	}
)

func NewCommentHandler(commentService comment.CommentService, validator *validator.Validate) CommentHandler {
	return &commentHandler{
		commentService: commentService,
		validator:      validator,
	}
}

func (h *commentHandler) PostComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	req := new(domain.PostCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPostComment, err)
	}

	res, err := h.commentService.PostComment(c.Context(), *req, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotAllowed):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedPostComment, err)
		case errors.Is(err, domain.ErrVendorNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedPostComment, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPostComment, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPostComment)
}

func (h *commentHandler) ListAreaComments(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	pincode := c.Query("pincode")
	sortBy := c.Query("sort_by", domain.CommentSortRecent)

	res, err := h.commentService.ListAreaComments(c.Context(), pincode, sortBy, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"comments": res,
		"count":    len(res),
	}, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *commentHandler) ListVendorAreaComments(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)

	res, err := h.commentService.ListVendorAreaComments(c.Context(), userID, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetComments, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"comments": res,
		"count":    len(res),
	}, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *commentHandler) ListVendorComments(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	vendorID := c.Params("id")

	res, err := h.commentService.ListVendorComments(c.Context(), vendorID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetComments, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"comments": res,
		"count":    len(res),
	}, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *commentHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")

	res, err := h.commentService.ToggleLike(c.Context(), commentID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrCommentNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleLike, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *commentHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")

	if err := h.commentService.DeleteComment(c.Context(), commentID, userID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCommentNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteComment, err)
		case errors.Is(err, domain.ErrNotCommentAuthor):
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteComment, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteComment, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}
