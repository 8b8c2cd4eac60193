package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"tuitionpay_backend/internals/constants"
	dto "tuitionpay_backend/internals/features/payment/dto"
	service "tuitionpay_backend/internals/features/payment/service"
	helper "tuitionpay_backend/internals/helpers"
)

var listOpts = helper.Options{
	DefaultPerPage: constants.DefaultPageSize,
	MaxPerPage:     constants.MaxPageSize,
}

type PaymentController struct {
	service  *service.PaymentService
	validate *validator.Validate
}

func NewPaymentController(s *service.PaymentService) *PaymentController {
	return &PaymentController{
		service:  s,
		validate: validator.New(),
	}
}

/* ======================= CREATE ======================= */
// POST /api/v1/payment
func (h *PaymentController) MakePayment(c *fiber.Ctx) error {
	var req dto.MakePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgMissingRequiredFields)
	}
	if err := h.validate.Struct(req); err != nil {
		log.Printf("[DEBUG] required fields missing on make payment: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgMissingRequiredFields)
	}

	payment, err := h.service.MakePayment(req.PaymentMonth, req.StudentID, callerToken(c))
	if err != nil {
		log.Printf("[ERROR] payment failed for student id: %s month: %s: %v", req.StudentID, req.PaymentMonth.Combined(), err)
		return h.writeError(c, err)
	}
	return helper.JsonCreated(c, constants.MsgPaidSuccessful, dto.FromModel(*payment))
}

/* ======================= UPDATE ======================= */
// PUT /api/v1/payment
func (h *PaymentController) UpdatePayment(c *fiber.Ctx) error {
	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgMissingRequiredFields)
	}
	if err := h.validate.Struct(req); err != nil {
		log.Printf("[DEBUG] required fields missing on update payment: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgMissingRequiredFields)
	}

	payment, err := h.service.UpdatePayment(req, callerToken(c))
	if err != nil {
		log.Printf("[ERROR] updating payment failed for payment id: %s: %v", req.PaymentID, err)
		return h.writeError(c, err)
	}
	return helper.JsonOK(c, constants.MsgPaymentUpdated, dto.FromModel(*payment))
}

/* ======================= DELETE ======================= */
// DELETE /api/v1/payment/:paymentId
func (h *PaymentController) DeletePayment(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")
	if paymentID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgMissingRequiredFields)
	}

	if err := h.service.DeletePayment(paymentID); err != nil {
		log.Printf("[ERROR] deleting payment failed for payment id: %s: %v", paymentID, err)
		return h.writeError(c, err)
	}
	return helper.JsonOK(c, constants.MsgPaymentDeleted, nil)
}

/* ======================= READS ======================= */
// GET /api/v1/payment/:paymentId
func (h *PaymentController) GetPaymentByID(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")
	payment, err := h.service.GetPaymentByID(paymentID)
	if err != nil {
		return h.writeError(c, err)
	}
	return helper.JsonOK(c, constants.MsgReadPayment, dto.FromModel(*payment))
}

// GET /api/v1/payment?page=&per_page=
func (h *PaymentController) GetAllPayments(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, listOpts)
	list, err := h.service.ListAll(params, callerToken(c))
	if err != nil {
		log.Printf("[ERROR] retrieving payment list failed: %v", err)
		return h.writeError(c, err)
	}
	return helper.JsonOK(c, constants.MsgReadPaymentList, list)
}

// GET /api/v1/payment/student/:studentId
func (h *PaymentController) GetPaymentsByStudentID(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	params := helper.ParseFiber(c, listOpts)
	list, err := h.service.ListByStudent(studentID, params, callerToken(c))
	if err != nil {
		log.Printf("[ERROR] retrieving payment list for student id: %s failed: %v", studentID, err)
		return h.writeError(c, err)
	}
	return helper.JsonOK(c, constants.MsgReadStudentPaymentList, list)
}

// GET /api/v1/payment/student/report/:month/:year
func (h *PaymentController) GetUserReport(c *fiber.Ctx) error {
	month := c.Params("month")
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || month == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgMissingRequiredFields)
	}

	report, err := h.service.BuildReport(dto.PaymentMonth{Month: month, Year: year}, callerToken(c))
	if err != nil {
		log.Printf("[ERROR] payment report failed for month: %s year: %d: %v", month, year, err)
		return h.writeError(c, err)
	}
	return helper.JsonOK(c, constants.MsgReadStudentPaymentReport, report)
}

/* ======================= INTERNAL ======================= */

// callerToken: the auth middleware already validated presence; Locals covers
// the Bearer fallback path where the access_token header is empty.
func callerToken(c *fiber.Ctx) string {
	if token, ok := c.Locals(constants.TokenHeader).(string); ok && token != "" {
		return token
	}
	return c.Get(constants.TokenHeader)
}

// writeError maps workflow failures onto the platform envelope. Business
// rule violations and connectivity problems are the caller's 400s; anything
// else is a 500 with a generic message.
func (h *PaymentController) writeError(c *fiber.Ctx, err error) error {
	var (
		alreadyPaid       *service.AlreadyPaidError
		invalidStudent    *service.InvalidStudentError
		invalidPayment    *service.InvalidPaymentError
		remoteUnavailable *service.RemoteUnavailableError
	)
	switch {
	case errors.As(err, &alreadyPaid),
		errors.As(err, &invalidStudent),
		errors.As(err, &invalidPayment),
		errors.As(err, &remoteUnavailable):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgInternalServerError)
	}
}
