// file: internals/features/taolu/remediation/model/remediation_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/*
=========================================================

	Hasil remediasi single-session. Maksimal SATU per sesi —
	unique index di session_id sekaligus penjaga race:
	submit kedua kena unique violation → AlreadyRefined.
	Award + daftar id yang di-fix disalin ke sini, jadi
	void/remove belakangan tidak mengubah ronde yang sudah
	tercatat.
	=========================================================
*/
type TaoluRemediationLogModel struct {
	TaoluRemediationLogID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:taolu_remediation_log_id" json:"taolu_remediation_log_id"`
	TaoluRemediationLogSessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_taolu_remediation_session;column:taolu_remediation_log_session_id" json:"taolu_remediation_log_session_id"`

	TaoluRemediationLogPointsAwarded int            `gorm:"not null;column:taolu_remediation_log_points_awarded" json:"taolu_remediation_log_points_awarded"`
	TaoluRemediationLogDeductionIDs  pq.StringArray `gorm:"type:uuid[];not null;column:taolu_remediation_log_deduction_ids" json:"taolu_remediation_log_deduction_ids"`

	TaoluRemediationLogCompletedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:taolu_remediation_log_completed_at" json:"taolu_remediation_log_completed_at"`
}

func (TaoluRemediationLogModel) TableName() string { return "taolu_remediation_logs" }

// HasDeduction: apakah id ikut di-fix pada ronde ini (berarti beku).
func (m TaoluRemediationLogModel) HasDeduction(id uuid.UUID) bool {
	s := id.String()
	for _, v := range m.TaoluRemediationLogDeductionIDs {
		if v == s {
			return true
		}
	}
	return false
}
