package shipmentController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/models"
	"github.com/yashsingh9651/arvan-backend/utils"
	shipmentValidator "github.com/yashsingh9651/arvan-backend/validators/shipment"
)

type Controller struct {
	db         *gorm.DB
	shiprocket *utils.ShiprocketClient
}

func New(db *gorm.DB, shiprocket *utils.ShiprocketClient) *Controller {
	return &Controller{db: db, shiprocket: shiprocket}
}

// CreateShipment relays a validated adhoc order to Shiprocket
func (ctrl *Controller) CreateShipment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedShipment").(*shipmentValidator.CreateShipmentRequest)

	data, err := ctrl.shiprocket.CreateOrder(reqData)
	if err != nil {
		return common.NewInternal("Failed to create shipment!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Shipment created.", data)
}

type webhookPayload struct {
	OrderID       uint   `json:"order_id"`
	AWB           string `json:"awb"`
	CurrentStatus string `json:"current_status"`
}

// Webhook ingests Shiprocket tracking callbacks. The AWB guard lives in the
// update statement itself (only an empty column is written), so replayed or
// overlapping callbacks for the same order cannot both claim it.
func (ctrl *Controller) Webhook(c *fiber.Ctx) error {
	var payload webhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return common.NewValidationError(map[string]string{"body": "Invalid webhook payload!"})
	}
	if payload.OrderID == 0 {
		return common.NewValidationError(map[string]string{"order_id": "This field is required!"})
	}

	log.Printf("Shipment webhook for order %d: status=%s awb=%s", payload.OrderID, payload.CurrentStatus, payload.AWB)

	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, payload.OrderID).Error; err != nil {
			return err
		}

		if payload.AWB != "" {
			// First carrier assignment wins
			if err := tx.Model(&models.Order{}).
				Where("id = ? AND awb = ''", order.ID).
				Update("awb", payload.AWB).Error; err != nil {
				return err
			}
		}
		if payload.CurrentStatus != "" {
			if err := tx.Model(&models.Order{}).
				Where("id = ?", order.ID).
				Update("status", payload.CurrentStatus).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.NewNotFound("Order not found")
		}
		return common.NewInternal("Failed to process webhook!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Webhook processed.", nil)
}
