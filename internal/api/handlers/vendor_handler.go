package handlers

import (
	"errors"
	"strconv"
	"streetbite-backend/domain"
	"streetbite-backend/internal/api/presenters"
	"streetbite-backend/pkg/vendor"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VendorHandler interface {
		CreateVendor(c *fiber.Ctx) error
		GetOwnVendor(c *fiber.Ctx) error
		GetVendorDetails(c *fiber.Ctx) error
		UpdateVendor(c *fiber.Ctx) error
		UpdateLocation(c *fiber.Ctx) error
		ListVendors(c *fiber.Ctx) error
		UploadVendorImage(c *fiber.Ctx) error
		DeleteVendorImage(c *fiber.Ctx) error
	}

	vendorHandler struct {
		vendorService vendor.VendorService
		validator     *validator.Validate
	}
)

func NewVendorHandler(vendorService vendor.VendorService, validator *validator.Validate) VendorHandler {
	return &vendorHandler{
		vendorService: vendorService,
		validator:     validator,
	}
}

func (h *vendorHandler) CreateVendor(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	if role != domain.RoleVendor {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	req := new(domain.CreateVendorRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateVendor, err)
	}

	res, err := h.vendorService.CreateVendor(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateVendor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateVendor)
}

func (h *vendorHandler) GetOwnVendor(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	if role != domain.RoleVendor {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	res, err := h.vendorService.GetOwnVendor(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVendor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVendor)
}

func (h *vendorHandler) GetVendorDetails(c *fiber.Ctx) error {
	vendorID := c.Params("id")

	res, err := h.vendorService.GetVendorByID(c.Context(), vendorID)
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetVendor, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVendor, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVendor)
}

func (h *vendorHandler) UpdateVendor(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateVendorRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateVendor, err)
	}

	if err := h.vendorService.UpdateVendor(c.Context(), *req, userID); err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateVendor, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateVendor, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateVendor)
}

func (h *vendorHandler) UpdateLocation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	role := c.Locals("role").(string)
	if role != domain.RoleVendor {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	req := new(domain.UpdateLocationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLocation, err)
	}

	res, err := h.vendorService.UpdateLocation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateLocation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateLocation)
}

func (h *vendorHandler) ListVendors(c *fiber.Ctx) error {
	filter := domain.VendorFilter{
		Cuisine: c.Query("cuisine"),
		Pincode: c.Query("pincode"),
		Status:  c.Query("status"),
		SortBy:  c.Query("sort_by"),
	}

	if minRating := c.Query("min_rating"); minRating != "" {
		parsed, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListVendors, domain.ErrInvalidMinRating)
		}
		filter.MinRating = parsed
	}

	res, err := h.vendorService.ListVendors(c.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMinRating) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedListVendors, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedListVendors, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"vendors": res,
		"count":   len(res),
	}, fiber.StatusOK, domain.MessageSuccessListVendors)
}

func (h *vendorHandler) UploadVendorImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadVendorImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	imageURL, err := h.vendorService.UploadVendorImage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": imageURL}, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}

func (h *vendorHandler) DeleteVendorImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	imageID := c.Params("id")

	if err := h.vendorService.DeleteVendorImage(c.Context(), imageID, userID); err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteImage, err)
		}
		if errors.Is(err, domain.ErrUserNotAllowed) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteImage, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteImage)
}
