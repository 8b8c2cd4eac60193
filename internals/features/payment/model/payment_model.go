package model

import (
	"time"

	"github.com/google/uuid"

	"tuitionpay_backend/internals/constants"
)

// PaymentModel is one monthly tuition payment by one student. Rows are never
// physically removed: deletes flip payment_is_deleted and every read filters
// on it. A partial unique index over (payment_month, payment_student_id)
// WHERE NOT deleted backs the one-active-payment rule (see databases.Migrate).
type PaymentModel struct {
	PaymentID string `gorm:"column:payment_id;type:varchar(50);primaryKey" json:"paymentId"`

	// Combined month-year key, e.g. "March 2023"
	PaymentMonth string `gorm:"column:payment_month;type:varchar(20);not null" json:"paymentMonth"`

	// FK into the remote student directory; cross-checked via the student
	// service on writes, never locally enforced.
	PaymentStudentID string `gorm:"column:payment_student_id;type:varchar(50);not null" json:"studentId"`

	// Set once at creation, never changed.
	PaymentPaidDate time.Time `gorm:"column:payment_paid_date;not null" json:"paidDate"`

	// Refreshed on every write, including soft delete.
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;not null" json:"updatedAt"`

	PaymentIsDeleted bool `gorm:"column:payment_is_deleted;not null;default:false" json:"isDeleted"`
}

func (PaymentModel) TableName() string { return "payments" }

// NewPayment builds a fresh active payment with a server-generated id.
func NewPayment(paymentMonth, studentID string) *PaymentModel {
	now := time.Now()
	return &PaymentModel{
		PaymentID:        constants.PaymentIDPrefix + uuid.NewString(),
		PaymentMonth:     paymentMonth,
		PaymentStudentID: studentID,
		PaymentPaidDate:  now,
		PaymentUpdatedAt: now,
		PaymentIsDeleted: false,
	}
}
