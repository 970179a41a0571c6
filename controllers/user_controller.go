package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"table-order/middleware"
	"table-order/models"
)

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id, actorID int64) error
}

type UserController struct {
	service UserService
}

func NewUserController(service UserService) *UserController {
	return &UserController{service: service}
}

const userNotFound = "User not found."

// @Summary List users
// @Description Admin only
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response{data=[]models.User}
// @Failure 403 {object} models.ErrorResponse
// @Router /users [get]
func (ctrl *UserController) GetUsers(c *gin.Context) {
	users, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Users retrieved", users)
}

// @Summary Get user by ID
// @Description Admin only
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.User}
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}

	respondOK(c, http.StatusOK, "User retrieved", user)
}

// @Summary Create user
// @Description Admin only. Role defaults to customer.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User"
// @Security BearerAuth
// @Success 201 {object} models.Response{data=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Username and password are required.", err.Error())
		return
	}

	user, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}

	respondOK(c, http.StatusCreated, "User created successfully", user)
}

// @Summary Update user
// @Description Admin only. A new password is re-hashed.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRequest true "User fields"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	user, err := ctrl.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, userNotFound)
		return
	}

	respondOK(c, http.StatusOK, "User updated successfully", user)
}

// @Summary Delete user
// @Description Admin only. The caller's own account cannot be deleted.
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [delete]
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var actorID int64
	if identity := middleware.CurrentIdentity(c); identity != nil {
		actorID = identity.UserID
	}

	if err := ctrl.service.Delete(c.Request.Context(), id, actorID); err != nil {
		respondError(c, err, userNotFound)
		return
	}

	respondOK(c, http.StatusOK, "User deleted successfully", nil)
}
