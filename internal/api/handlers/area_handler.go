package handlers

import (
	"errors"
	"strconv"
	"streetbite-backend/domain"
	"streetbite-backend/internal/api/presenters"
	"streetbite-backend/pkg/area"

	"github.com/gofiber/fiber/v2"
)

type (
	AreaHandler interface {
		ResolveArea(c *fiber.Ctx) error
	}

	areaHandler struct {
		areaService area.AreaService
	}
)

func NewAreaHandler(areaService area.AreaService) AreaHandler {
	return &areaHandler{areaService: areaService}
}

func (h *areaHandler) ResolveArea(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveArea, domain.ErrInvalidCoordinate)
	}

	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveArea, domain.ErrInvalidCoordinate)
	}

	res, err := h.areaService.Resolve(c.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, domain.ErrAreaNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedResolveArea, err)
		}
		if errors.Is(err, domain.ErrInvalidCoordinate) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveArea, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedResolveArea, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveArea)
}
