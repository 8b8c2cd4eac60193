package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "tuitionpay_backend/internals/features/payment/model"
	helper "tuitionpay_backend/internals/helpers"
)

var (
	// ErrPaymentNotFound: no active payment with that id.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrDuplicatePayment: the partial unique index rejected a second active
	// payment for the same (month, student). Authoritative AlreadyPaid signal.
	ErrDuplicatePayment = errors.New("an active payment already exists for this month and student")
)

// PaymentRepository is the persistence boundary for payments. All list reads
// exclude soft-deleted rows and come back newest-touched first.
type PaymentRepository interface {
	Save(p *model.PaymentModel) error
	FindByID(paymentID string) (*model.PaymentModel, error)
	FindAllActive(params helper.Params) ([]model.PaymentModel, int64, error)
	FindActiveByStudentID(studentID string, params helper.Params) ([]model.PaymentModel, int64, error)
	FindActiveByPaymentMonth(paymentMonth string) ([]model.PaymentModel, error)
	ExistsActive(paymentMonth, studentID, excludePaymentID string) (bool, error)
}

type gormPaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &gormPaymentRepository{db: db}
}

// Save upserts by payment_id. Ids are generated client-side, so this must be
// an explicit on-conflict upsert rather than gorm's pk-blank heuristic. A
// violation of the partial (month, student) index still surfaces as 23505.
func (r *gormPaymentRepository) Save(p *model.PaymentModel) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "payment_id"}},
		UpdateAll: true,
	}).Create(p).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePayment
		}
		return err
	}
	return nil
}

// FindByID returns the row whether or not it is soft-deleted; hiding deleted
// payments from callers is the workflow's job, and the delete flow needs the
// row back so re-deleting stays a no-op.
func (r *gormPaymentRepository) FindByID(paymentID string) (*model.PaymentModel, error) {
	var row model.PaymentModel
	err := r.db.
		Where("payment_id = ?", paymentID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *gormPaymentRepository) FindAllActive(params helper.Params) ([]model.PaymentModel, int64, error) {
	return r.listActive(r.activeQuery(), params)
}

func (r *gormPaymentRepository) FindActiveByStudentID(studentID string, params helper.Params) ([]model.PaymentModel, int64, error) {
	return r.listActive(r.activeQuery().Where("payment_student_id = ?", studentID), params)
}

// FindActiveByPaymentMonth loads every active payment of the month, unpaged.
// The monthly report diffs payers against the whole student directory, so a
// partial page would misreport anyone outside it as unpaid.
func (r *gormPaymentRepository) FindActiveByPaymentMonth(paymentMonth string) ([]model.PaymentModel, error) {
	var rows []model.PaymentModel
	err := r.activeQuery().
		Where("payment_month = ?", paymentMonth).
		Order("payment_updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ExistsActive is the uniqueness guard. When excludePaymentID is non-empty a
// payment with that id does not count as a collision, so an update may keep
// its own (month, student) pair.
func (r *gormPaymentRepository) ExistsActive(paymentMonth, studentID, excludePaymentID string) (bool, error) {
	query := r.activeQuery().
		Where("payment_month = ? AND payment_student_id = ?", paymentMonth, studentID)
	if excludePaymentID != "" {
		query = query.Where("payment_id <> ?", excludePaymentID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormPaymentRepository) activeQuery() *gorm.DB {
	return r.db.Model(&model.PaymentModel{}).Where("payment_is_deleted = false")
}

func (r *gormPaymentRepository) listActive(query *gorm.DB, params helper.Params) ([]model.PaymentModel, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.PaymentModel
	err := query.
		Order("payment_updated_at DESC").
		Limit(params.Limit()).
		Offset(params.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// fall back to message sniffing for non-pg drivers
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
