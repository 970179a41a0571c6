package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"table-order/middleware"
	"table-order/models"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	QRLogin(ctx context.Context, req models.QRLoginRequest) (*models.QRLoginResponse, error)
}

type AuthController struct {
	auth  AuthService
	users UserService
}

func NewAuthController(auth AuthService, users UserService) *AuthController {
	return &AuthController{auth: auth, users: users}
}

// Login godoc
// @Summary Login with username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response{data=models.LoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Username and password are required.", err.Error())
		return
	}

	result, err := ctrl.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "User not found.")
		return
	}

	respondOK(c, http.StatusOK, "Login successful", result)
}

// QRLogin godoc
// @Summary Login with a table QR code
// @Description Issues a customer token bound to the scanned table
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.QRLoginRequest true "QR Login Request"
// @Success 200 {object} models.Response{data=models.QRLoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/qr-login [post]
func (ctrl *AuthController) QRLogin(c *gin.Context) {
	var req models.QRLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "QR code is required.", err.Error())
		return
	}

	result, err := ctrl.auth.QRLogin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Table not found.")
		return
	}

	respondOK(c, http.StatusOK, "Login successful", result)
}

// Register godoc
// @Summary Register a staff or customer account
// @Description Admin only
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "Register Request"
// @Security BearerAuth
// @Success 201 {object} models.Response{data=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Username and password are required.", err.Error())
		return
	}

	user, err := ctrl.users.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "User not found.")
		return
	}

	respondOK(c, http.StatusCreated, "User registered successfully", user)
}

// Me godoc
// @Summary Current identity
// @Description Returns the stored user, or the temporary table identity for QR tokens
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		respondFail(c, http.StatusUnauthorized, "Authentication required", "")
		return
	}

	if identity.User != nil {
		respondOK(c, http.StatusOK, "Profile retrieved", identity.User)
		return
	}
	respondOK(c, http.StatusOK, "Profile retrieved", identity)
}
