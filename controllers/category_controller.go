package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"table-order/models"
)

type CategoryService interface {
	List(ctx context.Context, filter models.CategoryFilter) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id int64, req models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type CategoryController struct {
	service CategoryService
}

func NewCategoryController(service CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

const categoryNotFound = "Category not found."

// @Summary Get all categories
// @Tags Categories
// @Produce json
// @Param active query bool false "Filter by active flag"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=[]models.Category}
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	active, ok := optionalBool(c, "active")
	if !ok {
		return
	}

	categories, err := ctrl.service.List(c.Request.Context(), models.CategoryFilter{Active: active})
	if err != nil {
		respondError(c, err, categoryNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Categories retrieved", categories)
}

// @Summary Get category by ID
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.Category}
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [get]
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, categoryNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Category retrieved", category)
}

// @Summary Create new category
// @Description Admin only
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body models.CreateCategoryRequest true "Category"
// @Security BearerAuth
// @Success 201 {object} models.Response{data=models.Category}
// @Failure 400 {object} models.ErrorResponse
// @Router /categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	category, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, categoryNotFound)
		return
	}

	respondOK(c, http.StatusCreated, "Category created successfully", category)
}

// @Summary Update category
// @Description Admin only. Omitted fields keep their value.
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body models.UpdateCategoryRequest true "Category fields"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.Category}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	category, err := ctrl.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, categoryNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Category updated successfully", category)
}

// @Summary Delete category
// @Description Admin only. Rejected while menus still use the category.
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, categoryNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Category deleted successfully", nil)
}
