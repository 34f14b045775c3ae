package testimonialController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/middleware"
	"github.com/yashsingh9651/arvan-backend/models"
	testimonialValidator "github.com/yashsingh9651/arvan-backend/validators/testimonial"
)

type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// CreateTestimonial stores a storefront testimonial
func (ctrl *Controller) CreateTestimonial(c *fiber.Ctx) error {
	reqData := c.Locals("validatedTestimonial").(*testimonialValidator.CreateTestimonialRequest)

	testimonial := models.Testimonial{
		Username:    reqData.Username,
		Role:        reqData.Role,
		Description: reqData.Description,
		Image:       reqData.Image,
		Ratings:     reqData.Ratings,
	}
	if err := ctrl.db.Create(&testimonial).Error; err != nil {
		return common.NewInternal("Failed to create testimonial!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Testimonial created.", testimonial)
}

// GetTestimonials lists all testimonials
func (ctrl *Controller) GetTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial
	if err := ctrl.db.Find(&testimonials).Error; err != nil {
		return common.NewInternal("Failed to fetch testimonials!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Testimonials fetched.", testimonials)
}

// CreateRating stores a product review for the authenticated caller
func (ctrl *Controller) CreateRating(c *fiber.Ctx) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return common.NewUnauthorized("Unauthorized")
	}
	reqData := c.Locals("validatedRating").(*testimonialValidator.CreateRatingRequest)

	var product models.Product
	if err := ctrl.db.First(&product, reqData.ProductID).Error; err != nil {
		return common.NewNotFound("Product not found")
	}

	rating := models.ProductRating{
		ProductID:   reqData.ProductID,
		UserID:      principal.UserID,
		Title:       reqData.Title,
		Description: reqData.Description,
		Rating:      reqData.Rating,
	}
	if err := ctrl.db.Create(&rating).Error; err != nil {
		return common.NewInternal("Failed to create rating!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Rating created.", rating)
}

// GetRatings lists reviews, optionally filtered by product, newest first
func (ctrl *Controller) GetRatings(c *fiber.Ctx) error {
	query := ctrl.db.Order("created_at DESC")
	if productID := c.QueryInt("productId", 0); productID > 0 {
		query = query.Where("product_id = ?", productID)
	}

	var ratings []models.ProductRating
	if err := query.Find(&ratings).Error; err != nil {
		return common.NewInternal("Failed to fetch ratings!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Ratings fetched.", ratings)
}
