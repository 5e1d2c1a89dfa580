package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/internal/api/presenters"
	"github.com/littlelemon/backend/pkg/user"
)

type (
	GroupHandler interface {
		GetUserRole(c *fiber.Ctx) error
		AssignGroup(c *fiber.Ctx) error
		RevokeGroup(c *fiber.Ctx) error
		AssignDeliveryCrew(c *fiber.Ctx) error
	}

	groupHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewGroupHandler(userService user.UserService, validator *validator.Validate) GroupHandler {
	return &groupHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *groupHandler) GetUserRole(c *fiber.Ctx) error {
	role, err := h.userService.GetRole(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedManageGroup, err)
	}

	switch role {
	case "manager":
		return presenters.MessageResponse(c, fiber.StatusOK, "User is a manager")
	case "delivery crew":
		return presenters.MessageResponse(c, fiber.StatusOK, "User is a delivery crew")
	}
	return presenters.MessageResponse(c, fiber.StatusOK, "User is not a manager or delivery crew")
}

func (h *groupHandler) AssignGroup(c *fiber.Ctx) error {
	req := new(domain.ManageGroupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedManageGroup, err)
	}

	if err := h.userService.AssignGroup(c.Context(), c.Params("id"), req.Group); err != nil {
		if errors.Is(err, domain.ErrAlreadyInGroup) {
			// Re-assignment is a conflict, not a quiet success.
			return presenters.MessageResponse(c, fiber.StatusBadRequest, fmt.Sprintf("User already in %s group", groupLabel(req.Group)))
		}
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedManageGroup, err)
	}

	// The previous system reported "manager group" here whichever group was
	// assigned; kept verbatim for compatibility.
	return presenters.MessageResponse(c, fiber.StatusOK, "User assigned to manager group successfully")
}

func (h *groupHandler) RevokeGroup(c *fiber.Ctx) error {
	req := new(domain.ManageGroupRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedManageGroup, err)
	}

	if err := h.userService.RevokeGroup(c.Context(), c.Params("id"), req.Group); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedManageGroup, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, "User removed from manager group successfully")
}

func (h *groupHandler) AssignDeliveryCrew(c *fiber.Ctx) error {
	req := new(domain.AssignDeliveryCrewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedManageGroup, err)
	}

	username, err := h.userService.AssignDeliveryCrew(c.Context(), req.ID)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedManageGroup, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf("User %s assigned to delivery crew successfully", username))
}

func groupLabel(group string) string {
	if group == domain.GroupManagers {
		return "manager"
	}
	return group
}
