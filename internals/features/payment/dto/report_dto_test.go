package dto

import (
	"testing"
	"time"

	m "tuitionpay_backend/internals/features/payment/model"
	helper "tuitionpay_backend/internals/helpers"
)

func samplePayment(id, month, studentID string) m.PaymentModel {
	now := time.Now()
	return m.PaymentModel{
		PaymentID:        id,
		PaymentMonth:     month,
		PaymentStudentID: studentID,
		PaymentPaidDate:  now,
		PaymentUpdatedAt: now,
	}
}

func TestNewEnrichedPayment(t *testing.T) {
	students := map[string]StudentRecord{
		"sid-1": {StudentID: "sid-1", FirstName: "Aroshi", TuitionClassID: "tid-1"},
	}
	locations := map[string]LocationRecord{
		"tid-1": {TuitionClassID: "tid-1", LocationName: "Nugegoda"},
	}

	t.Run("Given student and location present Then both details are joined", func(t *testing.T) {
		// When
		resp := NewEnrichedPayment(samplePayment("pid-1", "March 2023", "sid-1"), students, locations)

		// Then
		if resp.StudentDetails == nil || resp.StudentDetails.FirstName != "Aroshi" {
			t.Fatalf("expected student details, got %+v", resp.StudentDetails)
		}
		if resp.LocationDetails == nil || resp.LocationDetails.LocationName != "Nugegoda" {
			t.Fatalf("expected location details, got %+v", resp.LocationDetails)
		}
	})

	t.Run("Given the student is missing from the snapshot Then details stay nil without error", func(t *testing.T) {
		// A payment can reference a student that is gone from a freshly
		// fetched directory; the join is best-effort.
		resp := NewEnrichedPayment(samplePayment("pid-1", "March 2023", "sid-gone"), students, locations)

		if resp.StudentDetails != nil || resp.LocationDetails != nil {
			t.Errorf("expected nil details, got %+v / %+v", resp.StudentDetails, resp.LocationDetails)
		}
		if resp.PaymentID != "pid-1" {
			t.Errorf("payment fields must survive the missing join, got %+v", resp)
		}
	})

	t.Run("Given the student's class has no location Then only location stays nil", func(t *testing.T) {
		withOrphanClass := map[string]StudentRecord{
			"sid-2": {StudentID: "sid-2", TuitionClassID: "tid-unknown"},
		}

		resp := NewEnrichedPayment(samplePayment("pid-2", "March 2023", "sid-2"), withOrphanClass, locations)

		if resp.StudentDetails == nil {
			t.Fatal("expected student details")
		}
		if resp.LocationDetails != nil {
			t.Errorf("expected nil location details, got %+v", resp.LocationDetails)
		}
	})
}

func TestNewPaymentReportResponse(t *testing.T) {
	t.Run("Given one payer of two students Then paid and unpaid split correctly", func(t *testing.T) {
		// Given
		students := map[string]StudentRecord{
			"sid-1": {StudentID: "sid-1", TuitionClassID: "tid-1"},
			"sid-2": {StudentID: "sid-2", TuitionClassID: "tid-2"},
		}
		locations := map[string]LocationRecord{
			"tid-1": {TuitionClassID: "tid-1", LocationName: "Nugegoda"},
			"tid-2": {TuitionClassID: "tid-2", LocationName: "Kodagama"},
		}
		payments := []m.PaymentModel{samplePayment("pid-1", "March 2023", "sid-1")}

		// When
		report := NewPaymentReportResponse(payments, students, locations)

		// Then
		if len(report.PaidUsers) != 1 || report.PaidUsers[0].StudentDetails.StudentID != "sid-1" {
			t.Fatalf("unexpected paid list: %+v", report.PaidUsers)
		}
		if len(report.UnPaidUsers) != 1 || report.UnPaidUsers[0].StudentDetails.StudentID != "sid-2" {
			t.Fatalf("unexpected unpaid list: %+v", report.UnPaidUsers)
		}
		if report.UnPaidUsers[0].LocationDetails == nil || report.UnPaidUsers[0].LocationDetails.LocationName != "Kodagama" {
			t.Errorf("unpaid rows must be joined to their location, got %+v", report.UnPaidUsers[0].LocationDetails)
		}
	})

	t.Run("Given a report is built Then the source snapshot map is not mutated", func(t *testing.T) {
		// Given
		students := map[string]StudentRecord{
			"sid-1": {StudentID: "sid-1"},
			"sid-2": {StudentID: "sid-2"},
		}
		payments := []m.PaymentModel{samplePayment("pid-1", "March 2023", "sid-1")}

		// When
		_ = NewPaymentReportResponse(payments, students, map[string]LocationRecord{})

		// Then
		if len(students) != 2 {
			t.Errorf("snapshot map was mutated, %d entries left", len(students))
		}
	})

	t.Run("Given everyone paid Then unpaid list is empty but non-nil", func(t *testing.T) {
		students := map[string]StudentRecord{"sid-1": {StudentID: "sid-1"}}
		payments := []m.PaymentModel{samplePayment("pid-1", "March 2023", "sid-1")}

		report := NewPaymentReportResponse(payments, students, map[string]LocationRecord{})

		if report.UnPaidUsers == nil || len(report.UnPaidUsers) != 0 {
			t.Errorf("expected empty unpaid list, got %+v", report.UnPaidUsers)
		}
	})
}

func TestNewPaymentListResponse(t *testing.T) {
	t.Run("Given two pages worth of rows Then meta reflects the totals", func(t *testing.T) {
		// Given
		payments := []m.PaymentModel{
			samplePayment("pid-1", "March 2023", "sid-1"),
			samplePayment("pid-2", "April 2023", "sid-1"),
		}
		params := helper.Params{Page: 1, PerPage: 2}

		// When
		list := NewPaymentListResponse(payments, 5, params, nil, nil)

		// Then
		if len(list.Payments) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(list.Payments))
		}
		if list.Meta.Total != 5 || list.Meta.TotalPages != 3 || !list.Meta.HasNext {
			t.Errorf("unexpected meta: %+v", list.Meta)
		}
	})
}
