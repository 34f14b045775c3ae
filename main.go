package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/config"
	analyticsController "github.com/yashsingh9651/arvan-backend/controllers/analytics"
	authController "github.com/yashsingh9651/arvan-backend/controllers/auth"
	categoryController "github.com/yashsingh9651/arvan-backend/controllers/category"
	customerController "github.com/yashsingh9651/arvan-backend/controllers/customer"
	emailController "github.com/yashsingh9651/arvan-backend/controllers/email"
	inventoryController "github.com/yashsingh9651/arvan-backend/controllers/inventory"
	orderController "github.com/yashsingh9651/arvan-backend/controllers/order"
	paymentController "github.com/yashsingh9651/arvan-backend/controllers/payment"
	productController "github.com/yashsingh9651/arvan-backend/controllers/product"
	shipmentController "github.com/yashsingh9651/arvan-backend/controllers/shipment"
	testimonialController "github.com/yashsingh9651/arvan-backend/controllers/testimonial"
	uploadController "github.com/yashsingh9651/arvan-backend/controllers/upload"
	"github.com/yashsingh9651/arvan-backend/database"
	"github.com/yashsingh9651/arvan-backend/middleware"
	analyticsRoutes "github.com/yashsingh9651/arvan-backend/routers/analyticsRoutes"
	authRoutes "github.com/yashsingh9651/arvan-backend/routers/authRoutes"
	categoryRoutes "github.com/yashsingh9651/arvan-backend/routers/categoryRoutes"
	customerRoutes "github.com/yashsingh9651/arvan-backend/routers/customerRoutes"
	emailRoutes "github.com/yashsingh9651/arvan-backend/routers/emailRoutes"
	inventoryRoutes "github.com/yashsingh9651/arvan-backend/routers/inventoryRoutes"
	orderRoutes "github.com/yashsingh9651/arvan-backend/routers/orderRoutes"
	paymentRoutes "github.com/yashsingh9651/arvan-backend/routers/paymentRoutes"
	productRoutes "github.com/yashsingh9651/arvan-backend/routers/productRoutes"
	shipmentRoutes "github.com/yashsingh9651/arvan-backend/routers/shipmentRoutes"
	testimonialRoutes "github.com/yashsingh9651/arvan-backend/routers/testimonialRoutes"
	uploadRoutes "github.com/yashsingh9651/arvan-backend/routers/uploadRoutes"
	"github.com/yashsingh9651/arvan-backend/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	auth := middleware.NewAuth(cfg.JWTKey)

	messenger, err := utils.NewWhatsAppSender(cfg)
	if err != nil {
		log.Fatalf("Failed to initialise WhatsApp client: %v", err)
	}
	razorpay := utils.NewRazorpayClient(cfg)
	shiprocket := utils.NewShiprocketClient(cfg)
	cloudinary := utils.NewCloudinaryClient(cfg)
	emailSender := utils.NewSendgridSender(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: common.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authController.New(db, auth, messenger, cfg))
	productRoutes.SetupProductRoutes(app, productController.New(db), auth)
	categoryRoutes.SetupCategoryRoutes(app, categoryController.New(db), auth)
	orderRoutes.SetupOrderRoutes(app, orderController.New(db, messenger), auth)
	customerRoutes.SetupCustomerRoutes(app, customerController.New(db), auth)
	inventoryRoutes.SetupInventoryRoutes(app, inventoryController.New(db), auth)
	analyticsRoutes.SetupAnalyticsRoutes(app, analyticsController.New(db), auth)
	paymentRoutes.SetupPaymentRoutes(app, paymentController.New(razorpay), auth)
	shipmentRoutes.SetupShipmentRoutes(app, shipmentController.New(db, shiprocket), auth)
	testimonialRoutes.SetupTestimonialRoutes(app, testimonialController.New(db), auth)
	uploadRoutes.SetupUploadRoutes(app, uploadController.New(cloudinary), auth)
	emailRoutes.SetupEmailRoutes(app, emailController.New(emailSender))

	scheduler := utils.StartSalesScheduler(db)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
