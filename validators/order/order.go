package orderValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/validators"
)

type OrderItemInput struct {
	ProductVariantID uint    `json:"productVariantId" validate:"required"`
	Quantity         int     `json:"quantity" validate:"required,min=1"`
	PriceAtOrder     float64 `json:"priceAtOrder" validate:"gte=0"`
	ProductName      string  `json:"productName" validate:"required"`
	ProductImage     string  `json:"productImage"`
	Color            string  `json:"color"`
	Size             string  `json:"size"`
}

type CreateOrderRequest struct {
	AddressID uint             `json:"addressId" validate:"required"`
	Paid      bool             `json:"paid"`
	Items     []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Total     float64          `json:"total" validate:"gte=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PROCESSING SHIPPED DELIVERED CANCELLED"`
}

type UpdateFulfillmentRequest struct {
	Fulfillment string `json:"fulfillment" validate:"required,oneof=PENDING PACKED SHIPPED DELIVERED"`
}

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[CreateOrderRequest](c, "validatedOrder") }
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[UpdateStatusRequest](c, "validatedOrderStatus") }
}

func UpdateFulfillment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return validators.Body[UpdateFulfillmentRequest](c, "validatedFulfillment")
	}
}
