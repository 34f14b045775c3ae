package productController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/models"
	productValidator "github.com/yashsingh9651/arvan-backend/validators/product"
)

type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, common.NewValidationError(map[string]string{"id": "Invalid id parameter!"})
	}
	return uint(id), nil
}

// AddProduct creates a product along with its top-level assets
func (ctrl *Controller) AddProduct(c *fiber.Ctx) error {
	reqData := c.Locals("validatedProduct").(*productValidator.AddProductRequest)

	status := reqData.Status
	if status == "" {
		status = models.ProductStatusDraft
	}

	product := models.Product{
		Name:          reqData.Name,
		Description:   reqData.Description,
		Price:         reqData.Price,
		DiscountPrice: reqData.DiscountPrice,
		Material:      reqData.Material,
		Status:        status,
		CategoryID:    reqData.CategoryID,
	}
	for _, asset := range reqData.Assets {
		product.Assets = append(product.Assets, models.ProductAsset{
			AssetURL: asset.URL,
			Type:     asset.Type,
		})
	}

	if err := ctrl.db.Create(&product).Error; err != nil {
		return common.NewInternal("Failed to create product!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Product created.", product)
}

// AddColor attaches a color with its assets and sizes to an existing product
func (ctrl *Controller) AddColor(c *fiber.Ctx) error {
	reqData := c.Locals("validatedColor").(*productValidator.AddColorRequest)

	var product models.Product
	if err := ctrl.db.First(&product, reqData.ProductID).Error; err != nil {
		return common.NewNotFound("Product not found")
	}

	color := models.ProductColor{
		ProductID: reqData.ProductID,
		Color:     reqData.Color,
	}
	for _, asset := range reqData.Assets {
		color.Assets = append(color.Assets, models.ProductAsset{
			AssetURL: asset.URL,
			Type:     asset.Type,
		})
	}
	for _, size := range reqData.Sizes {
		color.Sizes = append(color.Sizes, models.ProductVariant{
			Size:  size.Size,
			Stock: size.Stock,
		})
	}

	if err := ctrl.db.Create(&color).Error; err != nil {
		return common.NewInternal("Failed to create product color!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Color added.", color)
}

// AddSizes adds size variants with stock to a color
func (ctrl *Controller) AddSizes(c *fiber.Ctx) error {
	reqData := c.Locals("validatedSizes").(*productValidator.AddSizesRequest)

	var color models.ProductColor
	if err := ctrl.db.First(&color, reqData.ColorID).Error; err != nil {
		return common.NewNotFound("Color not found")
	}

	variants := make([]models.ProductVariant, 0, len(reqData.Sizes))
	for _, size := range reqData.Sizes {
		variants = append(variants, models.ProductVariant{
			ColorID: reqData.ColorID,
			Size:    size.Size,
			Stock:   size.Stock,
		})
	}

	if err := ctrl.db.Create(&variants).Error; err != nil {
		return common.NewInternal("Failed to create variants!", err)
	}

	return common.JsonResponse(c, fiber.StatusCreated, true, "Sizes added.", variants)
}

// UpdateStock sets the stock count for one variant
func (ctrl *Controller) UpdateStock(c *fiber.Ctx) error {
	reqData := c.Locals("validatedStock").(*productValidator.UpdateStockRequest)

	var variant models.ProductVariant
	if err := ctrl.db.First(&variant, reqData.VariantID).Error; err != nil {
		return common.NewNotFound("Variant not found")
	}

	variant.Stock = reqData.Stock
	if err := ctrl.db.Save(&variant).Error; err != nil {
		return common.NewInternal("Failed to update stock!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Stock updated.", variant)
}

// UpdateStatus moves a product between DRAFT, PUBLISHED and ARCHIVED
func (ctrl *Controller) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	reqData := c.Locals("validatedStatus").(*productValidator.UpdateStatusRequest)

	var product models.Product
	if err := ctrl.db.First(&product, id).Error; err != nil {
		return common.NewNotFound("Product not found")
	}

	product.Status = reqData.Status
	if err := ctrl.db.Save(&product).Error; err != nil {
		return common.NewInternal("Failed to update status!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Status updated.", product)
}

// UpdateProduct edits the scalar fields of a product
func (ctrl *Controller) UpdateProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	reqData := c.Locals("validatedProduct").(*productValidator.AddProductRequest)

	var product models.Product
	if err := ctrl.db.First(&product, id).Error; err != nil {
		return common.NewNotFound("Product not found")
	}

	product.Name = reqData.Name
	product.Description = reqData.Description
	product.Price = reqData.Price
	product.DiscountPrice = reqData.DiscountPrice
	product.Material = reqData.Material
	if err := ctrl.db.Save(&product).Error; err != nil {
		return common.NewInternal("Failed to update product!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Product updated.", product)
}

// GetProduct returns a product with its assets, colors and sizes
func (ctrl *Controller) GetProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := ctrl.db.
		Preload("Assets").
		Preload("Colors.Assets").
		Preload("Colors.Sizes").
		First(&product, id).Error; err != nil {
		return common.NewNotFound("Product not found")
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Product fetched.", product)
}

// GetAllProducts lists products with their top-level assets
func (ctrl *Controller) GetAllProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := ctrl.db.Preload("Assets").Find(&products).Error; err != nil {
		return common.NewInternal("Failed to fetch products!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Products fetched.", products)
}

// DeleteProduct removes a product
func (ctrl *Controller) DeleteProduct(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := ctrl.db.First(&product, id).Error; err != nil {
		return common.NewNotFound("Product not found")
	}

	if err := ctrl.db.Delete(&product).Error; err != nil {
		return common.NewInternal("Failed to delete product!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Product deleted.", nil)
}

// DeleteColor removes a product color
func (ctrl *Controller) DeleteColor(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var color models.ProductColor
	if err := ctrl.db.First(&color, id).Error; err != nil {
		return common.NewNotFound("Color not found")
	}

	if err := ctrl.db.Delete(&color).Error; err != nil {
		return common.NewInternal("Failed to delete color!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Product color deleted.", nil)
}

// DeleteVariant removes a size variant
func (ctrl *Controller) DeleteVariant(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var variant models.ProductVariant
	if err := ctrl.db.First(&variant, id).Error; err != nil {
		return common.NewNotFound("Variant not found")
	}

	if err := ctrl.db.Delete(&variant).Error; err != nil {
		return common.NewInternal("Failed to delete variant!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Product variant deleted.", nil)
}

// DeleteAsset removes one image or video
func (ctrl *Controller) DeleteAsset(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}

	var asset models.ProductAsset
	if err := ctrl.db.First(&asset, id).Error; err != nil {
		return common.NewNotFound("Asset not found")
	}

	if err := ctrl.db.Delete(&asset).Error; err != nil {
		return common.NewInternal("Failed to delete asset!", err)
	}

	return common.JsonResponse(c, fiber.StatusOK, true, "Asset deleted.", nil)
}
