package dto

import (
	"sort"

	m "tuitionpay_backend/internals/features/payment/model"
	helper "tuitionpay_backend/internals/helpers"
)

/* =============== LIST =============== */

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Meta     helper.Meta       `json:"meta"`
}

func NewPaymentListResponse(payments []m.PaymentModel, total int64, params helper.Params,
	students map[string]StudentRecord, locations map[string]LocationRecord) *PaymentListResponse {
	list := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		list = append(list, NewEnrichedPayment(p, students, locations))
	}
	return &PaymentListResponse{
		Payments: list,
		Meta:     helper.BuildMeta(total, params),
	}
}

/* =============== MONTHLY REPORT =============== */

type UnpaidStudentResponse struct {
	StudentDetails  *StudentRecord  `json:"studentDetails"`
	LocationDetails *LocationRecord `json:"locationDetails"`
}

type PaymentReportResponse struct {
	PaidUsers   []PaymentResponse       `json:"paidUsers"`
	UnPaidUsers []UnpaidStudentResponse `json:"unPaidUsers"`
}

// NewPaymentReportResponse splits the directory into payers and non-payers
// for one month. Paid students are removed from a copy of the snapshot; the
// fetched map is left untouched. Unpaid rows are ordered by student id so
// the report is stable across calls.
func NewPaymentReportResponse(payments []m.PaymentModel,
	students map[string]StudentRecord, locations map[string]LocationRecord) *PaymentReportResponse {
	paid := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		paid = append(paid, NewEnrichedPayment(p, students, locations))
	}

	remaining := make(map[string]StudentRecord, len(students))
	for id, s := range students {
		remaining[id] = s
	}
	for _, p := range payments {
		delete(remaining, p.PaymentStudentID)
	}

	ids := make([]string, 0, len(remaining))
	for id := range remaining {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	unpaid := make([]UnpaidStudentResponse, 0, len(remaining))
	for _, id := range ids {
		student := remaining[id]
		row := UnpaidStudentResponse{StudentDetails: &student}
		if location, ok := locations[student.TuitionClassID]; ok {
			row.LocationDetails = &location
		}
		unpaid = append(unpaid, row)
	}

	return &PaymentReportResponse{PaidUsers: paid, UnPaidUsers: unpaid}
}
