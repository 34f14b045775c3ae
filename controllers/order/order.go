package orderController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/middleware"
	"github.com/yashsingh9651/arvan-backend/models"
	"github.com/yashsingh9651/arvan-backend/utils"
	orderValidator "github.com/yashsingh9651/arvan-backend/validators/order"
)

type Controller struct {
	db        *gorm.DB
	messenger utils.Messenger
}

func New(db *gorm.DB, messenger utils.Messenger) *Controller {
	return &Controller{db: db, messenger: messenger}
}

// notifyStatus sends the customer a WhatsApp update for their order.
// Best effort: a failed send never fails the status change.
func (ctrl *Controller) notifyStatus(order *models.Order) {
	if ctrl.messenger == nil {
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, order.UserID).Error; err != nil {
		return
	}

	item := "your order"
	var first models.OrderItem
	if err := ctrl.db.Where("order_id = ?", order.ID).Order("id").
		First(&first).Error; err == nil && first.ProductName != "" {
		item = first.ProductName
	}

	if err := ctrl.messenger.SendOrderUpdate(user.Name, item, order.Status, user.Mobile); err != nil {
		log.Printf("Failed to send order update for order %d: %v", order.ID, err)
	}
}

// CreateOrder records a new order in PENDING state with an item snapshot
func (ctrl *Controller) CreateOrder(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return common.NewUnauthorized("Unauthorized")
	}
	reqData := c.Locals("validatedOrder").(*orderValidator.CreateOrderRequest)

	order := models.Order{
		UserID:      principal.UserID,
		AddressID:   reqData.AddressID,
		Total:       reqData.Total,
		Paid:        reqData.Paid,
		Status:      models.OrderStatusPending,
		Fulfillment: models.FulfillmentPending,
	}
	for _, item := range reqData.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductVariantID: item.ProductVariantID,
			Quantity:         item.Quantity,
			PriceAtOrder:     item.PriceAtOrder,
			ProductName:      item.ProductName,
			ProductImage:     item.ProductImage,
			Color:            item.Color,
			Size:             item.Size,
		})
	}

	if err := ctrl.db.Create(&order).Error; err != nil {
		return common.NewInternal("Failed to create order!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Order created.", order)
}

// GetAllOrders lists orders newest first with pagination and id search.
// Admins see every order, users only their own.
func (ctrl *Controller) GetAllOrders(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return common.NewUnauthorized("Unauthorized")
	}

	limit := c.QueryInt("limit", 10)
	page := c.QueryInt("page", 1)
	if limit < 1 {
		limit = 10
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	search := c.Query("search")

	query := ctrl.db.Model(&models.Order{})
	if principal.Role != models.RoleAdmin {
		query = query.Where("user_id = ?", principal.UserID)
	}
	if search != "" {
		query = query.Where("CAST(id AS TEXT) LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return common.NewInternal("Failed to count orders!", err)
	}

	var orders []models.Order
	if err := query.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error; err != nil {
		return common.NewInternal("Failed to fetch orders!", err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return common.JsonResponse(c, fiber.StatusOK, true, "Orders fetched.", fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"totalPages":   totalPages,
			"currentPage":  page,
			"totalItems":   total,
			"itemsPerPage": limit,
		},
	})
}

// GetOrderByID returns one order; users can only fetch their own
func (ctrl *Controller) GetOrderByID(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return common.NewUnauthorized("Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return common.NewValidationError(map[string]string{"id": "Invalid id parameter!"})
	}

	query := ctrl.db.Preload("Items")
	if principal.Role != models.RoleAdmin {
		query = query.Where("user_id = ?", principal.UserID)
	}

	var order models.Order
	if err := query.First(&order, id).Error; err != nil {
		return common.NewNotFound("Order not found")
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Order fetched.", order)
}

// UpdateStatus changes the order status (admin only, enforced in routing)
func (ctrl *Controller) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return common.NewValidationError(map[string]string{"id": "Invalid id parameter!"})
	}
	reqData := c.Locals("validatedOrderStatus").(*orderValidator.UpdateStatusRequest)

	var order models.Order
	if err := ctrl.db.First(&order, id).Error; err != nil {
		return common.NewNotFound("Order not found")
	}

	order.Status = reqData.Status
	if err := ctrl.db.Save(&order).Error; err != nil {
		return common.NewInternal("Failed to update order status!", err)
	}

	ctrl.notifyStatus(&order)

	return common.JsonResponse(c, fiber.StatusOK, true, "Order status updated.", order)
}

// UpdateFulfillment changes the fulfillment stage (admin only)
func (ctrl *Controller) UpdateFulfillment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return common.NewValidationError(map[string]string{"id": "Invalid id parameter!"})
	}
	reqData := c.Locals("validatedFulfillment").(*orderValidator.UpdateFulfillmentRequest)

	var order models.Order
	if err := ctrl.db.First(&order, id).Error; err != nil {
		return common.NewNotFound("Order not found")
	}

	order.Fulfillment = reqData.Fulfillment
	if err := ctrl.db.Save(&order).Error; err != nil {
		return common.NewInternal("Failed to update fulfillment!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Fulfillment updated.", order)
}

// DeleteOrder removes an order (admin only)
func (ctrl *Controller) DeleteOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return common.NewValidationError(map[string]string{"id": "Invalid id parameter!"})
	}

	var order models.Order
	if err := ctrl.db.First(&order, id).Error; err != nil {
		return common.NewNotFound("Order not found")
	}

	if err := ctrl.db.Delete(&order).Error; err != nil {
		return common.NewInternal("Failed to delete order!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Order deleted.", nil)
}
