// file: internals/features/taolu/deductions/model/deduction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/*
=========================================================

	Status deduction (mirror dari taolu_deduction_status_enum di DB)

	Satu diskriminan, bukan dua flag boolean:
	- live   → ikut dihitung skor
	- voided → "terjadi tapi tidak dihitung" (reversibel)
	Penghapusan keras ("tidak pernah terjadi") = DELETE baris,
	jadi tidak pernah ada status 'removed'.
	=========================================================
*/
type TaoluDeductionStatus string

const (
	DeductionLive   TaoluDeductionStatus = "live"
	DeductionVoided TaoluDeductionStatus = "voided"
)

type TaoluDeductionModel struct {
	TaoluDeductionID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:taolu_deduction_id" json:"taolu_deduction_id"`
	TaoluDeductionSessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_taolu_deductions_session;column:taolu_deduction_session_id" json:"taolu_deduction_session_id"`

	// Stempel keystroke wasit — sumber urutan total per sesi
	TaoluDeductionOccurredAt time.Time `gorm:"type:timestamptz;not null;default:now();column:taolu_deduction_occurred_at" json:"taolu_deduction_occurred_at"`

	// Klasifikasi (diisi belakangan lewat assign)
	TaoluDeductionCodeID  *uuid.UUID `gorm:"type:uuid;column:taolu_deduction_code_id" json:"taolu_deduction_code_id,omitempty"`
	TaoluDeductionSection *int       `gorm:"column:taolu_deduction_section" json:"taolu_deduction_section,omitempty"`
	TaoluDeductionNote    *string    `gorm:"type:text;column:taolu_deduction_note" json:"taolu_deduction_note,omitempty"`

	TaoluDeductionStatus TaoluDeductionStatus `gorm:"type:taolu_deduction_status_enum;not null;default:'live';column:taolu_deduction_status" json:"taolu_deduction_status"`

	TaoluDeductionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:taolu_deduction_created_at" json:"taolu_deduction_created_at"`
	TaoluDeductionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:taolu_deduction_updated_at" json:"taolu_deduction_updated_at"`
}

func (TaoluDeductionModel) TableName() string { return "taolu_deductions" }

func (m TaoluDeductionModel) IsLive() bool {
	return m.TaoluDeductionStatus == DeductionLive
}
