package handlers

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/littlelemon/backend/domain"
	"github.com/littlelemon/backend/internal/api/presenters"
	"github.com/littlelemon/backend/pkg/menu"
)

type (
	MenuHandler interface {
		AddMenuItem(c *fiber.Ctx) error
		GetMenuItems(c *fiber.Ctx) error
		GetMenuItem(c *fiber.Ctx) error
		UpdateMenuItem(c *fiber.Ctx) error
		DeleteMenuItem(c *fiber.Ctx) error
		SetFeatured(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
		AddCategory(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) AddMenuItem(c *fiber.Ctx) error {
	req := new(domain.AddMenuItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMenuItem, err)
	}

	res, err := h.menuService.AddMenuItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddMenuItem, err)
	}

	return presenters.JSONResponse(c, fiber.StatusCreated, res)
}

func (h *menuHandler) GetMenuItems(c *fiber.Ctx) error {
	filter := domain.MenuItemFilter{
		Ordering: c.Query("ordering"),
	}
	if raw := c.Query("category"); raw != "" {
		category, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenuItems, err)
		}
		filter.Category = uint(category)
	}

	items, err := h.menuService.ListMenuItems(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMenuItems, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, items)
}

func (h *menuHandler) GetMenuItem(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMenuItems, err)
	}

	item, err := h.menuService.GetMenuItem(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMenuItems, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, item)
}

func (h *menuHandler) UpdateMenuItem(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	req := new(domain.UpdateMenuItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateMenuItem, err)
	}

	item, err := h.menuService.UpdateMenuItem(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateMenuItem, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, item)
}

func (h *menuHandler) DeleteMenuItem(c *fiber.Ctx) error {
	id, err := itemID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMenuItem, err)
	}

	if err := h.menuService.DeleteMenuItem(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteMenuItem, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteMenuItem)
}

func (h *menuHandler) SetFeatured(c *fiber.Ctx) error {
	req := new(domain.SetFeaturedRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFeatured, err)
	}

	title, err := h.menuService.SetFeatured(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUpdateFeatured, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, fmt.Sprintf("Item %s of the day updated successfully", title))
}

func (h *menuHandler) UploadItemImage(c *fiber.Ctx) error {
	req := new(domain.UploadItemImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	if err := h.menuService.UploadItemImage(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedUploadItemImage, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessUploadItemImage)
}

func (h *menuHandler) AddCategory(c *fiber.Ctx) error {
	req := new(domain.AddCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	title, err := h.menuService.AddCategory(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddCategory, err)
	}

	return presenters.MessageResponse(c, fiber.StatusCreated, fmt.Sprintf("Category %s added successfully", title))
}

func (h *menuHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.menuService.ListCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetCategories, err)
	}

	return presenters.JSONResponse(c, fiber.StatusOK, categories)
}

func itemID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
