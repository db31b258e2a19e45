package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	m "wushuku_backend/internals/features/taolu/deductions/model"
)

/* =========================================================
   PATCH FIELD — tri-state (absent | null | value)
   ========================================================= */

type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

/* =========================================================
   LOG (keystroke wasit)
   ========================================================= */

type LogDeductionRequest struct {
	SessionID uuid.UUID `json:"session_id" validate:"required"`
	// opsional — default: active section sesi
	SectionNumber *int `json:"section_number" validate:"omitempty,min=1"`
}

/* =========================================================
   ASSIGN (partial patch: code / section / note / voided)
   ========================================================= */

type AssignDeductionRequest struct {
	DeductionID uuid.UUID `json:"deduction_id" validate:"required"`

	CodeID        PatchField[uuid.UUID] `json:"code_id"`
	SectionNumber PatchField[int]       `json:"section_number"`
	Note          PatchField[string]    `json:"note"`
	Voided        PatchField[bool]      `json:"voided"`
}

// ApplyPatch: terapkan field yang hadir ke model existing (in-place).
// Last-writer-wins PER FIELD — patch note yang stale tidak menimpa voided.
func (r *AssignDeductionRequest) ApplyPatch(mm *m.TaoluDeductionModel) {
	if r.CodeID.Present {
		mm.TaoluDeductionCodeID = r.CodeID.Value
	}
	if r.SectionNumber.Present {
		mm.TaoluDeductionSection = r.SectionNumber.Value
	}
	if r.Note.Present {
		if r.Note.Value == nil {
			mm.TaoluDeductionNote = nil
		} else {
			v := strings.TrimSpace(*r.Note.Value)
			if v == "" {
				mm.TaoluDeductionNote = nil
			} else {
				mm.TaoluDeductionNote = &v
			}
		}
	}
	if r.Voided.Present && r.Voided.Value != nil {
		if *r.Voided.Value {
			mm.TaoluDeductionStatus = m.DeductionVoided
		} else {
			mm.TaoluDeductionStatus = m.DeductionLive
		}
	}
	mm.TaoluDeductionUpdatedAt = time.Now()
}

type RemoveDeductionRequest struct {
	DeductionID uuid.UUID `json:"deduction_id" validate:"required"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type DeductionResponse struct {
	DeductionID   uuid.UUID  `json:"deduction_id"`
	SessionID     uuid.UUID  `json:"session_id"`
	OccurredAt    time.Time  `json:"occurred_at"`
	CodeID        *uuid.UUID `json:"code_id,omitempty"`
	SectionNumber *int       `json:"section_number,omitempty"`
	Note          *string    `json:"note,omitempty"`
	Voided        bool       `json:"voided"`
}

func FromDeductionModel(mm m.TaoluDeductionModel) DeductionResponse {
	return DeductionResponse{
		DeductionID:   mm.TaoluDeductionID,
		SessionID:     mm.TaoluDeductionSessionID,
		OccurredAt:    mm.TaoluDeductionOccurredAt,
		CodeID:        mm.TaoluDeductionCodeID,
		SectionNumber: mm.TaoluDeductionSection,
		Note:          mm.TaoluDeductionNote,
		Voided:        mm.TaoluDeductionStatus == m.DeductionVoided,
	}
}

func FromDeductionModels(list []m.TaoluDeductionModel) []DeductionResponse {
	out := make([]DeductionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromDeductionModel(it))
	}
	return out
}
