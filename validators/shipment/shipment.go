package shipmentValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/validators"
)

type ShipmentItemInput struct {
	Name         string `json:"name" validate:"required"`
	SKU          string `json:"sku" validate:"required"`
	Units        int    `json:"units" validate:"required,min=1"`
	SellingPrice string `json:"selling_price" validate:"required"`
	HSN          string `json:"hsn"`
}

// CreateShipmentRequest mirrors Shiprocket's adhoc order payload.
type CreateShipmentRequest struct {
	OrderID             string              `json:"order_id" validate:"required"`
	OrderDate           string              `json:"order_date" validate:"required"`
	PickupLocation      string              `json:"pickup_location" validate:"required"`
	BillingCustomerName string              `json:"billing_customer_name"`
	BillingAddress      string              `json:"billing_address"`
	BillingCity         string              `json:"billing_city"`
	BillingPincode      string              `json:"billing_pincode"`
	BillingState        string              `json:"billing_state"`
	BillingCountry      string              `json:"billing_country" validate:"required"`
	BillingEmail        string              `json:"billing_email" validate:"required,email"`
	BillingPhone        string              `json:"billing_phone"`
	OrderItems          []ShipmentItemInput `json:"order_items" validate:"required,min=1,dive"`
	PaymentMethod       string              `json:"payment_method" validate:"required,oneof=COD Prepaid"`
	SubTotal            float64             `json:"sub_total" validate:"gte=0"`
	Length              float64             `json:"length" validate:"gt=0"`
	Breadth             float64             `json:"breadth" validate:"gt=0"`
	Height              float64             `json:"height" validate:"gt=0"`
	Weight              float64             `json:"weight" validate:"gt=0"`
}

func CreateShipment() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[CreateShipmentRequest](c, "validatedShipment") }
}
