package authController

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/config"
	"github.com/yashsingh9651/arvan-backend/middleware"
	"github.com/yashsingh9651/arvan-backend/models"
	"github.com/yashsingh9651/arvan-backend/utils"
	authValidator "github.com/yashsingh9651/arvan-backend/validators/auth"
)

const (
	// Minimum wait between two OTP issuances for the same mobile
	otpCooldown = 15 * time.Minute

	// Reset continuation tokens expire after this
	resetTokenTTL = 15 * time.Minute

	// Wrong guesses allowed before the record is discarded and a fresh
	// issuance is required
	maxOtpAttempts = 5
)

type Controller struct {
	db        *gorm.DB
	auth      *middleware.Auth
	messenger utils.Messenger
	cfg       *config.Config
}

func New(db *gorm.DB, auth *middleware.Auth, messenger utils.Messenger, cfg *config.Config) *Controller {
	return &Controller{db: db, auth: auth, messenger: messenger, cfg: cfg}
}

// Signup registers a new user keyed by mobile number
func (ctrl *Controller) Signup(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSignup").(*authValidator.SignupRequest)

	var existing models.User
	if err := ctrl.db.Where("mobile = ?", reqData.Mobile).First(&existing).Error; err == nil {
		return common.NewConflict("Mobile number is already registered!")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctrl.cfg.SaltRound)
	if err != nil {
		return common.NewInternal("Failed to process your request!", err)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Mobile:   reqData.Mobile,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}

	if err := ctrl.db.Create(&newUser).Error; err != nil {
		return common.NewInternal("Failed to register user!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", newUser)
}

// Signin authenticates a user and returns a session JWT
func (ctrl *Controller) Signin(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSignin").(*authValidator.SigninRequest)

	var user models.User
	if err := ctrl.db.Where("mobile = ?", reqData.Mobile).First(&user).Error; err != nil {
		return common.NewUnauthorized("Invalid mobile or password!")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return common.NewUnauthorized("Invalid mobile or password!")
	}

	token, err := ctrl.auth.GenerateJWT(&user)
	if err != nil {
		return common.NewInternal("Failed to generate token!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// SendOTP issues a one-time code for a mobile number. The cooldown guard is
// part of the upsert itself: the conflict clause only overwrites a record
// older than the window, so two racing calls serialize on the unique mobile
// key and at most one of them dispatches. The transaction commits only after
// the message went out, so a stored code was always actually sent.
func (ctrl *Controller) SendOTP(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSendOTP").(*authValidator.SendOTPRequest)

	var user models.User
	if err := ctrl.db.Where("mobile = ?", reqData.Mobile).First(&user).Error; err != nil {
		return common.NewNotFound("No account found for this mobile number!")
	}

	var retryAfter time.Duration
	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		code, err := utils.GenerateOTP()
		if err != nil {
			return err
		}

		record := models.OTP{Mobile: reqData.Mobile, Code: code}
		res := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "mobile"}},
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "otps.created_at <= ?", Vars: []interface{}{time.Now().Add(-otpCooldown)}},
			}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "signed_token", "attempts", "created_at", "updated_at"}),
		}).Create(&record)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// A live record won the conflict; report the remaining wait
			var existing models.OTP
			if err := tx.Where("mobile = ?", reqData.Mobile).First(&existing).Error; err != nil {
				return err
			}
			retryAfter = otpCooldown - time.Since(existing.CreatedAt)
			if retryAfter <= 0 {
				retryAfter = time.Second
			}
			return nil
		}

		// Dispatch inside the transaction: a failed send rolls the
		// claimed record back, so no code exists that was never sent.
		if _, err := ctrl.messenger.SendOTP(code, reqData.Mobile); err != nil {
			return common.NewInternal("Failed to send OTP!", err)
		}
		return nil
	})
	if err != nil {
		var routeErr *common.RouteError
		if errors.As(err, &routeErr) {
			return routeErr
		}
		return common.NewInternal("Failed to create OTP!", err)
	}

	if retryAfter > 0 {
		minutes := int(retryAfter.Minutes()) + 1
		return common.JsonResponse(c, fiber.StatusTooManyRequests, false,
			"OTP already sent. Please wait before requesting another.", fiber.Map{
				"retryAfterMinutes": minutes,
			})
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "OTP sent successfully.", nil)
}

// VerifyOTP checks a submitted code. For type "verify" it marks the mobile
// verified and consumes the record; for type "forgetpassword" it returns a
// short-lived signed token and keeps the record alive for the reset step.
func (ctrl *Controller) VerifyOTP(c *fiber.Ctx) error {
	reqData := c.Locals("validatedVerifyOTP").(*authValidator.VerifyOTPRequest)

	var otpRecord models.OTP
	if err := ctrl.db.Where("mobile = ?", reqData.Mobile).First(&otpRecord).Error; err != nil {
		return common.NewInvalidOtp()
	}

	if otpRecord.Code != reqData.Code {
		otpRecord.Attempts++
		if otpRecord.Attempts >= maxOtpAttempts {
			// Too many wrong guesses: discard the challenge entirely
			ctrl.db.Unscoped().Delete(&otpRecord)
		} else if err := ctrl.db.Save(&otpRecord).Error; err != nil {
			log.Printf("Error updating OTP attempts: %v", err)
		}
		return common.NewInvalidOtp()
	}

	var user models.User
	if err := ctrl.db.Where("mobile = ?", reqData.Mobile).First(&user).Error; err != nil {
		return common.NewInvalidOtp()
	}

	switch reqData.Type {
	case authValidator.OtpTypeVerify:
		user.IsMobileVerified = true
		if err := ctrl.db.Save(&user).Error; err != nil {
			return common.NewInternal("Failed to update verification status!", err)
		}
		if err := ctrl.db.Unscoped().Delete(&otpRecord).Error; err != nil {
			return common.NewInternal("Failed to consume OTP!", err)
		}

		token, err := ctrl.auth.GenerateJWT(&user)
		if err != nil {
			return common.NewInternal("Failed to generate token!", err)
		}
		return common.JsonResponse(c, fiber.StatusOK, true, "Mobile verified successfully!", fiber.Map{
			"token": token,
		})

	case authValidator.OtpTypeForgetPassword:
		token, err := ctrl.auth.SignResetToken(user.Mobile, otpRecord.ID, resetTokenTTL)
		if err != nil {
			return common.NewInternal("Failed to generate reset token!", err)
		}

		// The record stays alive, carrying the token, until the reset
		// finisher redeems it or a fresh issuance supersedes it.
		otpRecord.SignedToken = token
		if err := ctrl.db.Save(&otpRecord).Error; err != nil {
			return common.NewInternal("Failed to store reset token!", err)
		}

		return common.JsonResponse(c, fiber.StatusOK, true, "OTP verified successfully!", fiber.Map{
			"token": token,
		})

	default:
		return common.NewValidationError(map[string]string{"type": "Must be one of: verify forgetpassword!"})
	}
}

// ResetPassword consumes a reset token minted by VerifyOTP and overwrites the
// user's credential. The token is valid only while its backing OTP record
// still exists and carries the same token bytes, which defeats replay after
// redemption or after a newer OTP cycle superseded the record.
func (ctrl *Controller) ResetPassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedResetPassword").(*authValidator.ResetPasswordRequest)

	mobile, otpID, err := ctrl.auth.VerifyResetToken(reqData.Token)
	if err != nil {
		return common.NewInvalidToken()
	}

	var otpRecord models.OTP
	if err := ctrl.db.First(&otpRecord, otpID).Error; err != nil {
		return common.NewInvalidToken()
	}
	if otpRecord.Mobile != mobile || otpRecord.SignedToken != reqData.Token {
		return common.NewInvalidToken()
	}

	var user models.User
	if err := ctrl.db.Where("mobile = ?", mobile).First(&user).Error; err != nil {
		return common.NewInvalidToken()
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctrl.cfg.SaltRound)
	if err != nil {
		return common.NewInternal("Failed to process your request!", err)
	}

	user.Password = string(hashedPassword)
	if err := ctrl.db.Save(&user).Error; err != nil {
		return common.NewInternal("Failed to update password!", err)
	}

	if err := ctrl.db.Unscoped().Delete(&otpRecord).Error; err != nil {
		return common.NewInternal("Failed to consume OTP record!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Password updated successfully!", nil)
}
