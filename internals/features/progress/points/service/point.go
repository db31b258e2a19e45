package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userLogPoint "wushuku_backend/internals/features/progress/points/model"
	userProgress "wushuku_backend/internals/features/progress/progress/model"
)

// PostPointDelta menulis log poin + menambahkan delta ke saldo berjalan.
// Ini satu-satunya pintu core taolu ke ekonomi poin — bagaimana saldo
// dipakai (leaderboard, avatar, dsb) bukan urusan core.
func PostPointDelta(db *gorm.DB, studentID uuid.UUID, sourceType int, sourceID uuid.UUID, points int) error {
	log.Printf("[SERVICE] PostPointDelta - studentID: %s sourceType: %d sourceID: %s point: %d",
		studentID.String(), sourceType, sourceID.String(), points)

	// 1. Simpan log poin
	logEntry := userLogPoint.UserPointLog{
		UserPointLogStudentID:  studentID,
		UserPointLogPoints:     points,
		UserPointLogSourceType: sourceType,
		UserPointLogSourceID:   sourceID,
		CreatedAt:              time.Now(),
	}
	if err := db.Create(&logEntry).Error; err != nil {
		log.Println("[ERROR] Gagal insert user_point_log:", err)
		return err
	}

	// 2. Tambahkan delta ke user_progress
	res := db.Model(&userProgress.UserProgress{}).
		Where("user_progress_student_id = ?", studentID).
		Updates(map[string]interface{}{
			"user_progress_total_points": gorm.Expr("user_progress_total_points + ?", points),
			"last_updated":               time.Now(),
		})
	if res.Error != nil {
		log.Println("[ERROR] Gagal update user_progress:", res.Error)
		return res.Error
	}

	// 3. Baris belum ada → buat saldo awal
	if res.RowsAffected == 0 {
		row := userProgress.UserProgress{
			UserProgressStudentID:   studentID,
			UserProgressTotalPoints: points,
			LastUpdated:             time.Now(),
		}
		if err := db.Create(&row).Error; err != nil {
			log.Println("[ERROR] Gagal insert user_progress:", err)
			return err
		}
	}

	log.Printf("[SUCCESS] Delta poin tercatat: %d poin", points)
	return nil
}
