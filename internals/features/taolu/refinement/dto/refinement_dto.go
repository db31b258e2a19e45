// file: internals/features/taolu/refinement/dto/refinement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "wushuku_backend/internals/features/taolu/refinement/model"
)

// =========================
// Request
// =========================

type RefinementSummaryRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
	WindowDays int         `json:"window_days" validate:"required,oneof=7 30 90"`
}

// Selection = keputusan coach per chip: section ini di-include,
// fixed atau tidak. Yang tidak dikirim = tidak dihitung sama sekali.
type RefinementSelection struct {
	TaoluFormID   uuid.UUID   `json:"taolu_form_id" validate:"required"`
	SectionNumber int         `json:"section_number" validate:"required,min=1"`
	CodeID        uuid.UUID   `json:"code_id" validate:"required"`
	Fixed         bool        `json:"fixed"`
	DeductionIDs  []uuid.UUID `json:"deduction_ids"`
}

// Temuan baru saat menonton ulang — tidak pernah punya sesi,
// hidup hanya sebagai audit di baris submission.
type RefinementNewDeduction struct {
	TaoluFormID   *uuid.UUID `json:"taolu_form_id"`
	SectionNumber *int       `json:"section_number"`
	CodeID        *uuid.UUID `json:"code_id"`
	Note          *string    `json:"note"`
}

func (nd RefinementNewDeduction) Complete() bool {
	return nd.TaoluFormID != nil && nd.SectionNumber != nil && nd.CodeID != nil
}

type RefinementSubmitRequest struct {
	StudentID     uuid.UUID                `json:"student_id" validate:"required"`
	WindowDays    int                      `json:"window_days" validate:"required,oneof=7 30 90"`
	Selections    []RefinementSelection    `json:"selections" validate:"dive"`
	NewDeductions []RefinementNewDeduction `json:"new_deductions"`
}

// =========================
// Response
// =========================

type RefinementChip struct {
	ChipID       string      `json:"chip_id"`
	CodeID       uuid.UUID   `json:"code_id"`
	CodeNumber   int         `json:"code_number"`
	CodeName     string      `json:"code_name"`
	Count        int         `json:"count"`
	DeductionIDs []uuid.UUID `json:"deduction_ids"`
	Notes        []string    `json:"notes"`
}

type RefinementSection struct {
	SectionNumber int              `json:"section_number"`
	Chips         []RefinementChip `json:"chips"`
}

type RefinementForm struct {
	TaoluFormID uuid.UUID           `json:"taolu_form_id"`
	FormName    string              `json:"form_name"`
	Sections    []RefinementSection `json:"sections"`
}

type StudentRefinementSummary struct {
	StudentID     uuid.UUID        `json:"student_id"`
	WindowDays    int              `json:"window_days"`
	SessionsCount int              `json:"sessions_count"`
	Forms         []RefinementForm `json:"forms"`
}

type RefinementSubmissionResponse struct {
	SubmissionID uuid.UUID `json:"submission_id"`
	StudentID    uuid.UUID `json:"student_id"`
	WindowDays   int       `json:"window_days"`
	FixedCount   int       `json:"fixed_count"`
	MissedCount  int       `json:"missed_count"`
	NewCount     int       `json:"new_count"`
	NetPoints    int       `json:"net_points"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromRefinementSubmissionModel(mm m.TaoluRefinementSubmissionModel) RefinementSubmissionResponse {
	return RefinementSubmissionResponse{
		SubmissionID: mm.TaoluRefinementSubmissionID,
		StudentID:    mm.TaoluRefinementSubmissionStudentID,
		WindowDays:   mm.TaoluRefinementSubmissionWindowDays,
		FixedCount:   mm.TaoluRefinementSubmissionFixedCount,
		MissedCount:  mm.TaoluRefinementSubmissionMissedCount,
		NewCount:     mm.TaoluRefinementSubmissionNewCount,
		NetPoints:    mm.TaoluRefinementSubmissionNetPoints,
		CreatedAt:    mm.TaoluRefinementSubmissionCreatedAt,
	}
}
