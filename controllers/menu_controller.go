package controllers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"table-order/models"
	"table-order/utils"
)

type MenuService interface {
	List(ctx context.Context, filter models.MenuFilter) ([]models.Menu, error)
	Get(ctx context.Context, id int64) (*models.Menu, error)
	Create(ctx context.Context, req models.CreateMenuRequest) (*models.Menu, error)
	Update(ctx context.Context, id int64, req models.UpdateMenuRequest) (*models.Menu, error)
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, id int64, file io.Reader, filename string) (*models.Menu, error)
}

type MenuController struct {
	service       MenuService
	maxUploadSize int64
}

func NewMenuController(service MenuService, maxUploadSize int64) *MenuController {
	return &MenuController{service: service, maxUploadSize: maxUploadSize}
}

const menuNotFound = "Menu not found."

// @Summary Get all menus
// @Tags Menus
// @Produce json
// @Param category query int false "Category ID"
// @Param available query bool false "Filter by availability"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=[]models.Menu}
// @Router /menus [get]
func (ctrl *MenuController) GetMenus(c *gin.Context) {
	var filter models.MenuFilter

	if raw := c.Query("category"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondFail(c, http.StatusBadRequest, "Invalid category parameter", "")
			return
		}
		filter.CategoryID = &categoryID
	}

	available, ok := optionalBool(c, "available")
	if !ok {
		return
	}
	filter.Available = available

	menus, err := ctrl.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Menus retrieved", menus)
}

// @Summary Get menu by ID
// @Tags Menus
// @Produce json
// @Param id path int true "Menu ID"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.Menu}
// @Failure 404 {object} models.ErrorResponse
// @Router /menus/{id} [get]
func (ctrl *MenuController) GetMenuByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	menu, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Menu retrieved", menu)
}

// @Summary Create menu
// @Description Admin only
// @Tags Menus
// @Accept json
// @Produce json
// @Param request body models.CreateMenuRequest true "Menu"
// @Security BearerAuth
// @Success 201 {object} models.Response{data=models.Menu}
// @Failure 400 {object} models.ErrorResponse
// @Router /menus [post]
func (ctrl *MenuController) CreateMenu(c *gin.Context) {
	var req models.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	menu, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}

	respondOK(c, http.StatusCreated, "Menu created successfully", menu)
}

// @Summary Update menu
// @Description Admin only. Omitted fields keep their value.
// @Tags Menus
// @Accept json
// @Produce json
// @Param id path int true "Menu ID"
// @Param request body models.UpdateMenuRequest true "Menu fields"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.Menu}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /menus/{id} [put]
func (ctrl *MenuController) UpdateMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	menu, err := ctrl.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Menu updated successfully", menu)
}

// @Summary Delete menu
// @Description Admin only. Existing orders keep their item snapshots.
// @Tags Menus
// @Produce json
// @Param id path int true "Menu ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menus/{id} [delete]
func (ctrl *MenuController) DeleteMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, menuNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Menu deleted successfully", nil)
}

// @Summary Upload menu image
// @Description Admin only. Accepts jpg, jpeg, png, gif or webp.
// @Tags Menus
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Menu ID"
// @Param image formData file true "Image file"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.Menu}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /menus/{id}/image [post]
func (ctrl *MenuController) UploadMenuImage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Image file is required", err.Error())
		return
	}
	if err := utils.ValidateImage(fileHeader, ctrl.maxUploadSize); err != nil {
		respondFail(c, http.StatusBadRequest, err.Error(), "image")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Failed to read image", err.Error())
		return
	}
	defer file.Close()

	menu, err := ctrl.service.UploadImage(c.Request.Context(), id, file, fileHeader.Filename)
	if err != nil {
		respondError(c, err, menuNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Menu image uploaded successfully", menu)
}
