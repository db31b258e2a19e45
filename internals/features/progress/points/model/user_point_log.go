package model

import (
	"time"

	"github.com/google/uuid"
)

// Sumber delta poin (dipakai di kolom source_type)
const (
	SourceTypeTaoluSession     = 1 // skor sesi selesai
	SourceTypeTaoluRemediation = 2 // remediasi single-session
	SourceTypeTaoluRefinement  = 3 // window refinement
)

type UserPointLog struct {
	UserPointLogID         uint      `gorm:"column:user_point_log_id;primaryKey" json:"user_point_log_id"`                         // ID unik log poin
	UserPointLogStudentID  uuid.UUID `gorm:"column:user_point_log_student_id;type:uuid;not null" json:"user_point_log_student_id"` // UUID siswa
	UserPointLogPoints     int       `gorm:"column:user_point_log_points;not null" json:"user_point_log_points"`                   // Delta poin (boleh negatif)
	UserPointLogSourceType int       `gorm:"column:user_point_log_source_type;not null" json:"user_point_log_source_type"`         // Tipe sumber
	UserPointLogSourceID   uuid.UUID `gorm:"column:user_point_log_source_id;type:uuid" json:"user_point_log_source_id"`            // ID sumber (sesi/submission)
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`                                   // Timestamp
}

func (UserPointLog) TableName() string {
	return "user_point_logs"
}
