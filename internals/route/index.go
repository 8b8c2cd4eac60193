package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentRoutes "tuitionpay_backend/internals/features/payment/routes"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up PaymentRoutes...")
	api := app.Group("/api/v1")
	paymentRoutes.PaymentRoutes(api, db)
}
