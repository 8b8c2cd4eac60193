package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tuitionpay_backend/internals/configs"
	client "tuitionpay_backend/internals/features/payment/client"
	controller "tuitionpay_backend/internals/features/payment/controller"
	repository "tuitionpay_backend/internals/features/payment/repository"
	service "tuitionpay_backend/internals/features/payment/service"
	authMiddleware "tuitionpay_backend/internals/middlewares/auth"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	repo := repository.NewPaymentRepository(db)
	directory := client.NewDirectoryClient(configs.StudentServiceBaseURL, configs.LocationServiceBaseURL)
	svc := service.NewPaymentService(repo, directory)
	ctl := controller.NewPaymentController(svc)

	payment := api.Group("/payment", authMiddleware.AuthMiddleware())

	payment.Post("/", ctl.MakePayment)
	payment.Put("/", ctl.UpdatePayment)
	payment.Get("/", ctl.GetAllPayments)
	payment.Get("/student/report/:month/:year", ctl.GetUserReport)
	payment.Get("/student/:studentId", ctl.GetPaymentsByStudentID)
	payment.Get("/:paymentId", ctl.GetPaymentByID)
	payment.Delete("/:paymentId", ctl.DeletePayment)
}
