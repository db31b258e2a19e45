package dto

import (
	"time"

	"github.com/google/uuid"

	deductionDTO "wushuku_backend/internals/features/taolu/deductions/dto"
	deductionModel "wushuku_backend/internals/features/taolu/deductions/model"
	m "wushuku_backend/internals/features/taolu/sessions/model"
	"wushuku_backend/internals/features/taolu/scoring"
)

/* =========================================================
   REQUEST DTO
   ========================================================= */

// Satu batch: banyak siswa, satu form, sections sama.
type CreateSessionsRequest struct {
	TaoluFormID uuid.UUID   `json:"taolu_form_id" validate:"required"`
	StudentIDs  []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
	Sections    []int       `json:"sections" validate:"required,min=1"`
}

type UpdateSectionsRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
	Sections  []int     `json:"sections" validate:"required,min=1"`
}

type SetActiveSectionRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
	Section   int       `json:"section" validate:"required,min=1"`
}

type CloseSessionRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

type FinishSessionRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

/* =========================================================
   RESPONSE DTO
   ========================================================= */

type SessionResponse struct {
	SessionID     uuid.UUID  `json:"session_id"`
	StudentID     uuid.UUID  `json:"student_id"`
	TaoluFormID   uuid.UUID  `json:"taolu_form_id"`
	Sections      []int      `json:"sections"`
	ActiveSection int        `json:"active_section"`
	CreatedAt     time.Time  `json:"created_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
}

func FromSessionModel(mm m.TaoluSessionModel) SessionResponse {
	sections := make([]int, 0, len(mm.TaoluSessionSections))
	for _, s := range mm.TaoluSessionSections {
		sections = append(sections, int(s))
	}
	return SessionResponse{
		SessionID:     mm.TaoluSessionID,
		StudentID:     mm.TaoluSessionStudentID,
		TaoluFormID:   mm.TaoluSessionFormID,
		Sections:      sections,
		ActiveSection: mm.TaoluSessionActiveSection,
		CreatedAt:     mm.TaoluSessionCreatedAt,
		EndedAt:       mm.TaoluSessionEndedAt,
	}
}

func FromSessionModels(list []m.TaoluSessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromSessionModel(it))
	}
	return out
}

/* =========================================================
   FINISHED SESSION SUMMARY — turunan, selalu dihitung ulang
   dari ledger (tidak pernah disimpan sebagai kolom skor)
   ========================================================= */

type FinishedSessionSummary struct {
	SessionID       uuid.UUID                      `json:"session_id"`
	StudentID       uuid.UUID                      `json:"student_id"`
	TaoluFormID     uuid.UUID                      `json:"taolu_form_id"`
	Sections        []int                          `json:"sections"`
	Deductions      []deductionDTO.DeductionResponse `json:"deductions"`
	DeductionsCount int                            `json:"deductions_count"` // live saja
	PointsLost      int                            `json:"points_lost"`
	PointsEarned    int                            `json:"points_earned"`
	EndedAt         *time.Time                     `json:"ended_at,omitempty"`
}

// BuildFinishedSessionSummary menyusun ringkasan dari sesi + isi ledger-nya.
// Deduction voided ikut tampil (voided=true) tapi tidak dihitung skor;
// deduction yang di-remove sudah tidak ada di list sama sekali.
func BuildFinishedSessionSummary(s m.TaoluSessionModel, ds []deductionModel.TaoluDeductionModel) FinishedSessionSummary {
	live := 0
	for _, d := range ds {
		if d.IsLive() {
			live++
		}
	}

	sections := make([]int, 0, len(s.TaoluSessionSections))
	for _, n := range s.TaoluSessionSections {
		sections = append(sections, int(n))
	}

	return FinishedSessionSummary{
		SessionID:       s.TaoluSessionID,
		StudentID:       s.TaoluSessionStudentID,
		TaoluFormID:     s.TaoluSessionFormID,
		Sections:        sections,
		Deductions:      deductionDTO.FromDeductionModels(ds),
		DeductionsCount: live,
		PointsLost:      scoring.PointsLost(live),
		PointsEarned:    scoring.PointsEarned(live),
		EndedAt:         s.TaoluSessionEndedAt,
	}
}
