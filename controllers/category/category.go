package categoryController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/models"
	categoryValidator "github.com/yashsingh9651/arvan-backend/validators/category"
)

type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

func (ctrl *Controller) AddCategory(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
	}
	if err := ctrl.db.Create(&category).Error; err != nil {
		return common.NewInternal("Failed to create category!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Category created.", category)
}

func (ctrl *Controller) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return common.NewValidationError(map[string]string{"id": "Invalid id parameter!"})
	}
	reqData := c.Locals("validatedCategory").(*categoryValidator.CategoryRequest)

	var category models.Category
	if err := ctrl.db.First(&category, id).Error; err != nil {
		return common.NewNotFound("Category not found")
	}

	category.Name = reqData.Name
	category.Description = reqData.Description
	if err := ctrl.db.Save(&category).Error; err != nil {
		return common.NewInternal("Failed to update category!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Category updated.", category)
}

func (ctrl *Controller) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return common.NewValidationError(map[string]string{"id": "Invalid id parameter!"})
	}

	var category models.Category
	if err := ctrl.db.First(&category, id).Error; err != nil {
		return common.NewNotFound("Category not found")
	}

	if err := ctrl.db.Delete(&category).Error; err != nil {
		return common.NewInternal("Failed to delete category!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Category deleted.", nil)
}

func (ctrl *Controller) GetAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := ctrl.db.Find(&categories).Error; err != nil {
		return common.NewInternal("Failed to fetch categories!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Categories fetched.", categories)
}

func (ctrl *Controller) GetCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return common.NewValidationError(map[string]string{"id": "Invalid id parameter!"})
	}

	var category models.Category
	if err := ctrl.db.First(&category, id).Error; err != nil {
		return common.NewNotFound("Category not found")
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Category fetched.", category)
}
