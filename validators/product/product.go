package productValidator

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yashsingh9651/arvan-backend/validators"
)

type AssetInput struct {
	URL  string `json:"url" validate:"required,url"`
	Type string `json:"type" validate:"required,oneof=IMAGE VIDEO"`
}

type SizeInput struct {
	Size  string `json:"size" validate:"required,oneof=XS S M L XL XXL"`
	Stock int    `json:"stock" validate:"gte=0"`
}

type AddProductRequest struct {
	Name          string       `json:"name" validate:"required"`
	Description   string       `json:"description" validate:"required"`
	Price         float64      `json:"price" validate:"required,gt=0"`
	DiscountPrice float64      `json:"discountPrice" validate:"omitempty,gt=0"`
	CategoryID    uint         `json:"categoryId" validate:"required"`
	Material      string       `json:"material" validate:"required"`
	Status        string       `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	Assets        []AssetInput `json:"assets" validate:"omitempty,dive"`
}

type AddColorRequest struct {
	ProductID uint         `json:"productId" validate:"required"`
	Color     string       `json:"color" validate:"required"`
	Assets    []AssetInput `json:"assets" validate:"omitempty,dive"`
	Sizes     []SizeInput  `json:"sizes" validate:"omitempty,dive"`
}

type AddSizesRequest struct {
	ColorID uint        `json:"colorId" validate:"required"`
	Sizes   []SizeInput `json:"sizes" validate:"required,min=1,dive"`
}

type UpdateStockRequest struct {
	VariantID uint `json:"variantId" validate:"required"`
	Stock     int  `json:"stock" validate:"gte=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT PUBLISHED ARCHIVED"`
}

func AddProduct() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[AddProductRequest](c, "validatedProduct") }
}

func AddColor() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[AddColorRequest](c, "validatedColor") }
}

func AddSizes() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[AddSizesRequest](c, "validatedSizes") }
}

func UpdateStock() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[UpdateStockRequest](c, "validatedStock") }
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error { return validators.Body[UpdateStatusRequest](c, "validatedStatus") }
}
