package model

import (
	"time"

	"github.com/google/uuid"
)

// Saldo berjalan poin siswa (leaderboard/kosmetik membaca dari sini,
// di luar core taolu).
type UserProgress struct {
	UserProgressID          uint      `gorm:"column:user_progress_id;primaryKey" json:"user_progress_id"`
	UserProgressStudentID   uuid.UUID `gorm:"column:user_progress_student_id;type:uuid;not null;uniqueIndex:uq_user_progress_student" json:"user_progress_student_id"`
	UserProgressTotalPoints int       `gorm:"column:user_progress_total_points;not null;default:0" json:"user_progress_total_points"`
	LastUpdated             time.Time `gorm:"column:last_updated" json:"last_updated"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
