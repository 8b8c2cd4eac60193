package service

import (
	"sort"

	dto "tuitionpay_backend/internals/features/payment/dto"
	model "tuitionpay_backend/internals/features/payment/model"
	repository "tuitionpay_backend/internals/features/payment/repository"
	helper "tuitionpay_backend/internals/helpers"
)

// =============================================================================
// Fake payment repository (in-memory)
// =============================================================================

type fakePaymentRepository struct {
	Payments map[string]*model.PaymentModel

	SaveErr         error
	DuplicateOnSave bool
	FindErr         error
	ExistsErr       error
}

func newFakePaymentRepository() *fakePaymentRepository {
	return &fakePaymentRepository{Payments: map[string]*model.PaymentModel{}}
}

func (f *fakePaymentRepository) Save(p *model.PaymentModel) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	if f.DuplicateOnSave {
		return repository.ErrDuplicatePayment
	}
	cp := *p
	f.Payments[p.PaymentID] = &cp
	return nil
}

func (f *fakePaymentRepository) FindByID(paymentID string) (*model.PaymentModel, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	p, ok := f.Payments[paymentID]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepository) FindAllActive(params helper.Params) ([]model.PaymentModel, int64, error) {
	return f.list(func(p *model.PaymentModel) bool { return true }, params)
}

func (f *fakePaymentRepository) FindActiveByStudentID(studentID string, params helper.Params) ([]model.PaymentModel, int64, error) {
	return f.list(func(p *model.PaymentModel) bool { return p.PaymentStudentID == studentID }, params)
}

func (f *fakePaymentRepository) FindActiveByPaymentMonth(paymentMonth string) ([]model.PaymentModel, error) {
	if f.FindErr != nil {
		return nil, f.FindErr
	}
	var rows []model.PaymentModel
	for _, p := range f.Payments {
		if !p.PaymentIsDeleted && p.PaymentMonth == paymentMonth {
			rows = append(rows, *p)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].PaymentUpdatedAt.After(rows[j].PaymentUpdatedAt)
	})
	return rows, nil
}

func (f *fakePaymentRepository) ExistsActive(paymentMonth, studentID, excludePaymentID string) (bool, error) {
	if f.ExistsErr != nil {
		return false, f.ExistsErr
	}
	for _, p := range f.Payments {
		if p.PaymentIsDeleted {
			continue
		}
		if p.PaymentMonth == paymentMonth && p.PaymentStudentID == studentID && p.PaymentID != excludePaymentID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePaymentRepository) list(match func(*model.PaymentModel) bool, params helper.Params) ([]model.PaymentModel, int64, error) {
	if f.FindErr != nil {
		return nil, 0, f.FindErr
	}
	var rows []model.PaymentModel
	for _, p := range f.Payments {
		if !p.PaymentIsDeleted && match(p) {
			rows = append(rows, *p)
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].PaymentUpdatedAt.After(rows[j].PaymentUpdatedAt)
	})
	total := int64(len(rows))
	if params.Offset() >= len(rows) {
		return nil, total, nil
	}
	rows = rows[params.Offset():]
	if params.Limit() < len(rows) {
		rows = rows[:params.Limit()]
	}
	return rows, total, nil
}

// =============================================================================
// Fake directory client
// =============================================================================

type fakeDirectoryClient struct {
	Exists    map[string]bool
	Students  map[string]dto.StudentRecord
	Locations map[string]dto.LocationRecord

	CheckErr          error
	FetchStudentsErr  error
	FetchLocationsErr error

	CheckedStudentIDs []string
	SeenTokens        []string
}

func newFakeDirectoryClient() *fakeDirectoryClient {
	return &fakeDirectoryClient{
		Exists:    map[string]bool{},
		Students:  map[string]dto.StudentRecord{},
		Locations: map[string]dto.LocationRecord{},
	}
}

func (f *fakeDirectoryClient) CheckStudentExists(studentID, token string) (bool, error) {
	f.CheckedStudentIDs = append(f.CheckedStudentIDs, studentID)
	f.SeenTokens = append(f.SeenTokens, token)
	if f.CheckErr != nil {
		return false, f.CheckErr
	}
	return f.Exists[studentID], nil
}

func (f *fakeDirectoryClient) FetchAllStudents(token string) (map[string]dto.StudentRecord, error) {
	f.SeenTokens = append(f.SeenTokens, token)
	if f.FetchStudentsErr != nil {
		return nil, f.FetchStudentsErr
	}
	return f.Students, nil
}

func (f *fakeDirectoryClient) FetchAllLocations(token string) (map[string]dto.LocationRecord, error) {
	f.SeenTokens = append(f.SeenTokens, token)
	if f.FetchLocationsErr != nil {
		return nil, f.FetchLocationsErr
	}
	return f.Locations, nil
}
