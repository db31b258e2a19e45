// file: internals/features/taolu/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/*
=========================================================

	Sesi judging: satu siswa × satu form × subset section.
	- sections tidak boleh kosong selama sesi hidup
	- active_section selalu anggota sections
	- setelah ended_at terisi, sesi beku bagi Session Manager
	  (perubahan selanjutnya lewat ledger/refinement saja)
	=========================================================
*/
type TaoluSessionModel struct {
	TaoluSessionID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:taolu_session_id" json:"taolu_session_id"`
	TaoluSessionStudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_taolu_sessions_student;column:taolu_session_student_id" json:"taolu_session_student_id"`
	TaoluSessionFormID    uuid.UUID `gorm:"type:uuid;not null;column:taolu_session_form_id" json:"taolu_session_form_id"`

	// subset 1..form.sections_count, tersortir & unik
	TaoluSessionSections      pq.Int64Array `gorm:"type:integer[];not null;column:taolu_session_sections" json:"taolu_session_sections"`
	TaoluSessionActiveSection int           `gorm:"not null;column:taolu_session_active_section" json:"taolu_session_active_section"`

	TaoluSessionCreatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:taolu_session_created_at" json:"taolu_session_created_at"`
	TaoluSessionUpdatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:taolu_session_updated_at" json:"taolu_session_updated_at"`
	TaoluSessionEndedAt   *time.Time `gorm:"type:timestamptz;index:idx_taolu_sessions_ended_at;column:taolu_session_ended_at" json:"taolu_session_ended_at,omitempty"`
}

func (TaoluSessionModel) TableName() string { return "taolu_sessions" }

func (m TaoluSessionModel) IsFinished() bool {
	return m.TaoluSessionEndedAt != nil
}

// HasSection: apakah n anggota sections sesi ini.
func (m TaoluSessionModel) HasSection(n int) bool {
	for _, s := range m.TaoluSessionSections {
		if int(s) == n {
			return true
		}
	}
	return false
}
