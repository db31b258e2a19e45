// file: internals/features/taolu/refinement/model/refinement_submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
=========================================================

	Audit submit refinement berjangka. Satu baris per submit,
	immutable: selections + new_deductions disimpan apa adanya
	sebagai JSONB supaya setiap id yang pernah dikreditkan bisa
	ditelusuri. Submit boleh berulang (tidak ada lock per chip),
	jejaknya ya baris-baris ini.
	=========================================================
*/
type TaoluRefinementSubmissionModel struct {
	TaoluRefinementSubmissionID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:taolu_refinement_submission_id" json:"taolu_refinement_submission_id"`
	TaoluRefinementSubmissionStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:taolu_refinement_submission_student_id" json:"taolu_refinement_submission_student_id"`

	TaoluRefinementSubmissionWindowDays    int            `gorm:"not null;column:taolu_refinement_submission_window_days" json:"taolu_refinement_submission_window_days"`
	TaoluRefinementSubmissionSelections    datatypes.JSON `gorm:"type:jsonb;not null;column:taolu_refinement_submission_selections" json:"taolu_refinement_submission_selections"`
	TaoluRefinementSubmissionNewDeductions datatypes.JSON `gorm:"type:jsonb;not null;column:taolu_refinement_submission_new_deductions" json:"taolu_refinement_submission_new_deductions"`

	TaoluRefinementSubmissionFixedCount  int `gorm:"not null;column:taolu_refinement_submission_fixed_count" json:"taolu_refinement_submission_fixed_count"`
	TaoluRefinementSubmissionMissedCount int `gorm:"not null;column:taolu_refinement_submission_missed_count" json:"taolu_refinement_submission_missed_count"`
	TaoluRefinementSubmissionNewCount    int `gorm:"not null;column:taolu_refinement_submission_new_count" json:"taolu_refinement_submission_new_count"`
	TaoluRefinementSubmissionNetPoints   int `gorm:"not null;column:taolu_refinement_submission_net_points" json:"taolu_refinement_submission_net_points"`

	TaoluRefinementSubmissionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:taolu_refinement_submission_created_at" json:"taolu_refinement_submission_created_at"`
}

func (TaoluRefinementSubmissionModel) TableName() string { return "taolu_refinement_submissions" }
