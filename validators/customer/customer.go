package customerValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/validators"
)

type UpdateCustomerRequest struct {
	Name   string `json:"name" validate:"required"`
	Mobile string `json:"mobile_no" validate:"required,min=10,max=15"`
	Image  string `json:"image" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

type AddAddressRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Phone   string `json:"phone" validate:"required,min=10"`
	Street  string `json:"street" validate:"required,min=3"`
	City    string `json:"city" validate:"required,min=2"`
	State   string `json:"state" validate:"required,min=2"`
	Country string `json:"country" validate:"required,min=2"`
	ZipCode string `json:"zipCode" validate:"required,min=5"`
}

func UpdateCustomer() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[UpdateCustomerRequest](c, "validatedCustomer") }
}

func AddAddress() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[AddAddressRequest](c, "validatedAddress") }
}
