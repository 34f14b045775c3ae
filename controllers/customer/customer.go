package customerController

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/middleware"
	"github.com/yashsingh9651/arvan-backend/models"
	customerValidator "github.com/yashsingh9651/arvan-backend/validators/customer"
)

type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

type customerSummary struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	TotalOrders int        `json:"totalOrders"`
	TotalSpent  float64    `json:"totalSpent"`
	LastOrder   *time.Time `json:"lastOrder"`
}

// AllCustomers builds the admin customer report: order count, lifetime spend
// and most recent order per user.
func (ctrl *Controller) AllCustomers(c *fiber.Ctx) error {
	var users []models.User
	if err := ctrl.db.
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Find(&users).Error; err != nil {
		return common.NewInternal("Failed to fetch customers!", err)
	}

	summaries := make([]customerSummary, 0, len(users))
	for _, user := range users {
		summary := customerSummary{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			TotalOrders: len(user.Orders),
		}
		if summary.Name == "" {
			summary.Name = "N/A"
		}
		for _, order := range user.Orders {
			summary.TotalSpent += order.Total
		}
		if len(user.Orders) > 0 {
			last := user.Orders[0].CreatedAt
			summary.LastOrder = &last
		}
		summaries = append(summaries, summary)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Customers fetched.", summaries)
}

// UpdateCustomer edits the caller's own profile
func (ctrl *Controller) UpdateCustomer(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return common.NewUnauthorized("Unauthorized")
	}
	reqData := c.Locals("validatedCustomer").(*customerValidator.UpdateCustomerRequest)

	var user models.User
	if err := ctrl.db.First(&user, principal.UserID).Error; err != nil {
		return common.NewNotFound("User not found")
	}

	user.Name = reqData.Name
	user.Mobile = reqData.Mobile
	user.Image = reqData.Image
	user.Email = reqData.Email
	if err := ctrl.db.Save(&user).Error; err != nil {
		return common.NewInternal("Failed to update profile!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Profile updated.", user)
}

// AddAddress stores a shipping address for the caller
func (ctrl *Controller) AddAddress(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return common.NewUnauthorized("Unauthorized")
	}
	reqData := c.Locals("validatedAddress").(*customerValidator.AddAddressRequest)

	address := models.Address{
		UserID:  principal.UserID,
		Name:    reqData.Name,
		Phone:   reqData.Phone,
		Street:  reqData.Street,
		City:    reqData.City,
		State:   reqData.State,
		Country: reqData.Country,
		ZipCode: reqData.ZipCode,
	}
	if err := ctrl.db.Create(&address).Error; err != nil {
		return common.NewInternal("Failed to save address!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Address added.", address)
}

// ListAddresses returns the caller's saved addresses
func (ctrl *Controller) ListAddresses(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return common.NewUnauthorized("Unauthorized")
	}

	var addresses []models.Address
	if err := ctrl.db.Where("user_id = ?", principal.UserID).Find(&addresses).Error; err != nil {
		return common.NewInternal("Failed to fetch addresses!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Addresses fetched.", addresses)
}

// DeleteAddress removes one of the caller's addresses
func (ctrl *Controller) DeleteAddress(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return common.NewUnauthorized("Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return common.NewValidationError(map[string]string{"id": "Invalid id parameter!"})
	}

	var address models.Address
	if err := ctrl.db.Where("user_id = ?", principal.UserID).First(&address, id).Error; err != nil {
		return common.NewNotFound("Address not found")
	}

	if err := ctrl.db.Delete(&address).Error; err != nil {
		return common.NewInternal("Failed to delete address!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Address deleted.", nil)
}
