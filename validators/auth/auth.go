package authValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/validators"
)

const (
	OtpTypeVerify         = "verify"
	OtpTypeForgetPassword = "forgetpassword"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	Mobile   string `json:"mobile" validate:"required,min=10,max=15"`
	Password string `json:"password" validate:"required,min=8"`
}

type SigninRequest struct {
	Mobile   string `json:"mobile" validate:"required,min=10,max=15"`
	Password string `json:"password" validate:"required,min=8"`
}

type SendOTPRequest struct {
	Mobile string `json:"mobile_no" validate:"required,min=10,max=15"`
}

type VerifyOTPRequest struct {
	Mobile string `json:"mobile_no" validate:"required,min=10,max=15"`
	Code   string `json:"otp" validate:"required,len=6,numeric"`
	Type   string `json:"type" validate:"required,oneof=verify forgetpassword"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// Signup validator middleware
func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[SignupRequest](c, "validatedSignup") }
}

// Signin validator middleware
func Signin() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[SigninRequest](c, "validatedSignin") }
}

// SendOTP validator middleware
func SendOTP() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[SendOTPRequest](c, "validatedSendOTP") }
}

// VerifyOTP validator middleware
func VerifyOTP() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[VerifyOTPRequest](c, "validatedVerifyOTP") }
}

// ResetPassword validator middleware
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[ResetPasswordRequest](c, "validatedResetPassword") }
}
