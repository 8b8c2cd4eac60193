package dto

import (
	"strconv"
	"time"

	m "tuitionpay_backend/internals/features/payment/model"
)

/* =============== REQUESTS =============== */

type PaymentMonth struct {
	Month string `json:"month" validate:"required"`
	Year  int    `json:"year"  validate:"required,gte=2000,lte=2100"`
}

// Combined yields the natural grouping key, e.g. "March 2023".
func (p PaymentMonth) Combined() string {
	return p.Month + " " + strconv.Itoa(p.Year)
}

type MakePaymentRequest struct {
	PaymentMonth PaymentMonth `json:"paymentMonth" validate:"required"`
	StudentID    string       `json:"studentId"    validate:"required"`
}

type UpdatePaymentRequest struct {
	PaymentID    string       `json:"paymentId"    validate:"required"`
	StudentID    string       `json:"studentId"    validate:"required"`
	PaymentMonth PaymentMonth `json:"paymentMonth" validate:"required"`
}

/* =============== RESPONSES =============== */

type PaymentResponse struct {
	PaymentID       string          `json:"paymentId"`
	PaymentMonth    string          `json:"paymentMonth"`
	PaidDate        time.Time       `json:"paidDate"`
	StudentDetails  *StudentRecord  `json:"studentDetails"`
	LocationDetails *LocationRecord `json:"locationDetails"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	IsDeleted       bool            `json:"isDeleted"`
}

func FromModel(p m.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.PaymentID,
		PaymentMonth: p.PaymentMonth,
		PaidDate:     p.PaymentPaidDate,
		UpdatedAt:    p.PaymentUpdatedAt,
		IsDeleted:    p.PaymentIsDeleted,
	}
}

// NewEnrichedPayment joins a payment with its student and that student's
// class location. Best effort: a payment whose student has vanished from a
// freshly fetched snapshot keeps nil details instead of failing the request.
func NewEnrichedPayment(p m.PaymentModel, students map[string]StudentRecord, locations map[string]LocationRecord) PaymentResponse {
	resp := FromModel(p)
	student, ok := students[p.PaymentStudentID]
	if !ok {
		return resp
	}
	resp.StudentDetails = &student
	if location, ok := locations[student.TuitionClassID]; ok {
		resp.LocationDetails = &location
	}
	return resp
}
