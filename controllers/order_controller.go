package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"table-order/models"
)

type OrderService interface {
	Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
	List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	ListByTable(ctx context.Context, tableNumber int, status string) ([]models.Order, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
}

type OrderController struct {
	service OrderService
}

func NewOrderController(service OrderService) *OrderController {
	return &OrderController{service: service}
}

const orderNotFound = "Order not found."

// @Summary Place an order
// @Description Customer or admin. Prices are taken from the current menu; quantity defaults to 1.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order"
// @Security BearerAuth
// @Success 201 {object} models.Response{data=models.Order}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Table number and items are required.", err.Error())
		return
	}

	order, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}

	respondOK(c, http.StatusCreated, "Order created successfully", order)
}

// @Summary List orders
// @Description Kitchen or admin. Newest first.
// @Tags Orders
// @Produce json
// @Param status query string false "Order status" Enums(pending, cooking, completed)
// @Param tableNumber query int false "Table number"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=[]models.Order}
// @Failure 403 {object} models.ErrorResponse
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	filter := models.OrderFilter{Status: c.Query("status")}

	if raw := c.Query("tableNumber"); raw != "" {
		tableNumber, err := strconv.Atoi(raw)
		if err != nil {
			respondFail(c, http.StatusBadRequest, "Invalid tableNumber parameter", "")
			return
		}
		filter.TableNumber = &tableNumber
	}

	orders, err := ctrl.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Orders retrieved", orders)
}

// @Summary List orders for a table
// @Tags Orders
// @Produce json
// @Param tableNumber path int true "Table number"
// @Param status query string false "Order status" Enums(pending, cooking, completed)
// @Security BearerAuth
// @Success 200 {object} models.Response{data=[]models.Order}
// @Router /orders/table/{tableNumber} [get]
func (ctrl *OrderController) GetOrdersByTable(c *gin.Context) {
	tableNumber, err := strconv.Atoi(c.Param("tableNumber"))
	if err != nil || tableNumber <= 0 {
		respondFail(c, http.StatusBadRequest, "Invalid tableNumber", "")
		return
	}

	orders, err := ctrl.service.ListByTable(c.Request.Context(), tableNumber, c.Query("status"))
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Orders retrieved", orders)
}

// @Summary Get order by ID
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.Order}
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Order retrieved", order)
}

// @Summary Update order status
// @Description Kitchen or admin. Any of pending, cooking, completed is accepted.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Security BearerAuth
// @Success 200 {object} models.Response{data=models.Order}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/status [patch]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	order, err := ctrl.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, orderNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Order status updated successfully", order)
}

// @Summary Delete order
// @Description Admin only
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [delete]
func (ctrl *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, orderNotFound)
		return
	}

	respondOK(c, http.StatusOK, "Order deleted successfully", nil)
}
