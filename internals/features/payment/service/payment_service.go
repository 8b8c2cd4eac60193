package service

import (
	"errors"
	"time"

	client "tuitionpay_backend/internals/features/payment/client"
	dto "tuitionpay_backend/internals/features/payment/dto"
	model "tuitionpay_backend/internals/features/payment/model"
	repository "tuitionpay_backend/internals/features/payment/repository"
	helper "tuitionpay_backend/internals/helpers"
)

// PaymentService orchestrates the payment write/read workflow: it enforces
// the uniqueness guard, cross-checks students against the student service,
// and assembles enriched lists and monthly reports.
type PaymentService struct {
	repo      repository.PaymentRepository
	directory client.DirectoryClient
}

func NewPaymentService(repo repository.PaymentRepository, directory client.DirectoryClient) *PaymentService {
	return &PaymentService{repo: repo, directory: directory}
}

/* ======================= WRITES ======================= */

// MakePayment records a new monthly payment. The local uniqueness pre-check
// runs before the remote student check: it is cheap and short-circuits
// without paying for the network call. The partial unique index still backs
// the guard at save time, so a racing duplicate surfaces as AlreadyPaid too.
func (s *PaymentService) MakePayment(month dto.PaymentMonth, studentID, token string) (*model.PaymentModel, error) {
	paymentMonth := month.Combined()

	exists, err := s.repo.ExistsActive(paymentMonth, studentID, "")
	if err != nil {
		return nil, &StorageError{Op: "Checking the existing payment", Err: err}
	}
	if exists {
		return nil, &AlreadyPaidError{PaymentMonth: paymentMonth}
	}

	ok, err := s.checkStudentExists(studentID, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &InvalidStudentError{StudentID: studentID}
	}

	payment := model.NewPayment(paymentMonth, studentID)
	if err := s.repo.Save(payment); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			return nil, &AlreadyPaidError{PaymentMonth: paymentMonth}
		}
		return nil, &StorageError{Op: "Saving payment details into database", Err: err}
	}
	return payment, nil
}

// UpdatePayment moves an existing payment to a new month. The student check
// runs against the request's student id, not the stored record's, so a
// request naming an unknown student is rejected even when the stored row
// still points at a valid one.
func (s *PaymentService) UpdatePayment(req dto.UpdatePaymentRequest, token string) (*model.PaymentModel, error) {
	payment, err := s.loadActive(req.PaymentID)
	if err != nil {
		return nil, err
	}

	paymentMonth := req.PaymentMonth.Combined()
	exists, err := s.repo.ExistsActive(paymentMonth, req.StudentID, req.PaymentID)
	if err != nil {
		return nil, &StorageError{Op: "Checking the existing payment", Err: err}
	}
	if exists {
		return nil, &AlreadyPaidError{PaymentMonth: paymentMonth}
	}

	ok, err := s.checkStudentExists(req.StudentID, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &InvalidStudentError{StudentID: req.StudentID}
	}

	payment.PaymentMonth = paymentMonth
	payment.PaymentUpdatedAt = time.Now()
	if err := s.repo.Save(payment); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			return nil, &AlreadyPaidError{PaymentMonth: paymentMonth}
		}
		return nil, &StorageError{Op: "Updating payment", Err: err}
	}
	return payment, nil
}

// DeletePayment soft-deletes: the row stays, every read skips it. Loading
// includes already-deleted rows so a second delete is a no-op, not an error.
// No remote validation; deleting a payment of a now-invalid student is fine.
func (s *PaymentService) DeletePayment(paymentID string) error {
	payment, err := s.repo.FindByID(paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return &InvalidPaymentError{PaymentID: paymentID}
		}
		return &StorageError{Op: "Deleting payment", Err: err}
	}

	payment.PaymentIsDeleted = true
	payment.PaymentUpdatedAt = time.Now()
	if err := s.repo.Save(payment); err != nil {
		return &StorageError{Op: "Deleting payment", Err: err}
	}
	return nil
}

/* ======================= READS ======================= */

func (s *PaymentService) GetPaymentByID(paymentID string) (*model.PaymentModel, error) {
	return s.loadActive(paymentID)
}

// ListAll returns one page of active payments enriched with fresh student
// and location snapshots.
func (s *PaymentService) ListAll(params helper.Params, token string) (*dto.PaymentListResponse, error) {
	payments, total, err := s.repo.FindAllActive(params)
	if err != nil {
		return nil, &StorageError{Op: "Retrieving Payment list from database", Err: err}
	}
	students, locations, err := s.fetchDirectories(token)
	if err != nil {
		return nil, err
	}
	return dto.NewPaymentListResponse(payments, total, params, students, locations), nil
}

func (s *PaymentService) ListByStudent(studentID string, params helper.Params, token string) (*dto.PaymentListResponse, error) {
	payments, total, err := s.repo.FindActiveByStudentID(studentID, params)
	if err != nil {
		return nil, &StorageError{Op: "Retrieving Payment list for student id " + studentID, Err: err}
	}
	students, locations, err := s.fetchDirectories(token)
	if err != nil {
		return nil, err
	}
	return dto.NewPaymentListResponse(payments, total, params, students, locations), nil
}

// BuildReport splits the whole student directory into payers and non-payers
// for the given month. It always reads the month's complete payer set; a
// paged read here would flip payers outside the page into the unpaid list.
func (s *PaymentService) BuildReport(month dto.PaymentMonth, token string) (*dto.PaymentReportResponse, error) {
	payments, err := s.repo.FindActiveByPaymentMonth(month.Combined())
	if err != nil {
		return nil, &StorageError{Op: "Retrieving the payment reports from database", Err: err}
	}
	students, locations, err := s.fetchDirectories(token)
	if err != nil {
		return nil, err
	}
	return dto.NewPaymentReportResponse(payments, students, locations), nil
}

/* ======================= INTERNAL ======================= */

// loadActive treats a soft-deleted payment the same as a missing one.
func (s *PaymentService) loadActive(paymentID string) (*model.PaymentModel, error) {
	payment, err := s.repo.FindByID(paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, &InvalidPaymentError{PaymentID: paymentID}
		}
		return nil, &StorageError{Op: "Retrieving payment from database for " + paymentID, Err: err}
	}
	if payment.PaymentIsDeleted {
		return nil, &InvalidPaymentError{PaymentID: paymentID}
	}
	return payment, nil
}

func (s *PaymentService) checkStudentExists(studentID, token string) (bool, error) {
	ok, err := s.directory.CheckStudentExists(studentID, token)
	if err != nil {
		return false, s.mapDirectoryError("Validating student identity", err)
	}
	return ok, nil
}

func (s *PaymentService) fetchDirectories(token string) (map[string]dto.StudentRecord, map[string]dto.LocationRecord, error) {
	students, err := s.directory.FetchAllStudents(token)
	if err != nil {
		return nil, nil, s.mapDirectoryError("Requesting student details", err)
	}
	locations, err := s.directory.FetchAllLocations(token)
	if err != nil {
		return nil, nil, s.mapDirectoryError("Requesting location details", err)
	}
	return students, locations, nil
}

func (s *PaymentService) mapDirectoryError(op string, err error) error {
	if errors.Is(err, client.ErrRemoteUnavailable) {
		return &RemoteUnavailableError{Err: err}
	}
	return &RemoteCallError{Op: op, Err: err}
}
