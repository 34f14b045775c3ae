package emailController

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/utils"
	emailValidator "github.com/yashsingh9651/arvan-backend/validators/email"
)

type Controller struct {
	sender utils.EmailSender
}

func New(sender utils.EmailSender) *Controller {
	return &Controller{sender: sender}
}

// SendContactForm relays a storefront contact submission to the shop inbox
func (ctrl *Controller) SendContactForm(c *fiber.Ctx) error {
	reqData := c.Locals("validatedContactForm").(*emailValidator.ContactFormRequest)

	if err := ctrl.sender.SendContactForm(reqData.Name, reqData.Email, reqData.Phone, reqData.Message); err != nil {
		return common.NewInternal("Failed to send email!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Email sent successfully!", nil)
}
