package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type createCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Group string `json:"categoryGroup" validate:"required,oneof=Health Relationships Career Other"`
}

// List returns the authenticated user's categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	categories, err := h.categoryService.List(c.Request().Context(), principal.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create adds a category to the authenticated user's wheel.
//
// @Summary      Add a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      createCategoryRequest  true  "Category"
// @Success      200   {object}  domain.Category
// @Failure      400   {object}  map[string]string
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	category, err := h.categoryService.Add(c.Request().Context(), principal.Subject, req.Name, domain.CategoryGroup(req.Group))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete removes one of the authenticated user's categories.
//
// @Summary      Delete a category
// @Tags         categories
// @Param        id  path  string  true  "Category ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.categoryService.Remove(c.Request().Context(), principal.Subject, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
