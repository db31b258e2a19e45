// file: internals/features/taolu/reports/controller/report_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "wushuku_backend/internals/features/taolu/catalog/model"
	deductionModel "wushuku_backend/internals/features/taolu/deductions/model"
	reportDTO "wushuku_backend/internals/features/taolu/reports/dto"
	"wushuku_backend/internals/features/taolu/scoring"
	sessionModel "wushuku_backend/internals/features/taolu/sessions/model"
	helper "wushuku_backend/internals/helpers"
)

type TaoluReportController struct {
	DB *gorm.DB
}

func NewTaoluReportController(db *gorm.DB) *TaoluReportController {
	return &TaoluReportController{DB: db}
}

// GET /finished-sessions?limit= — riwayat sesi selesai, terbaru dulu.
// Skor selalu dihitung ulang dari ledger, tidak pernah dibaca dari kolom.
func (h *TaoluReportController) ListFinishedSessions(c *fiber.Ctx) error {
	limit := 20
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return helper.JsonError(c, fiber.StatusBadRequest, "limit tidak valid")
		}
		if n > 100 {
			n = 100
		}
		limit = n
	}

	var sessions []sessionModel.TaoluSessionModel
	if err := h.DB.Where("taolu_session_ended_at IS NOT NULL").
		Order("taolu_session_ended_at DESC").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat sesi")
	}
	if len(sessions) == 0 {
		return helper.JsonOK(c, "Riwayat sesi selesai", fiber.Map{
			"sessions": []reportDTO.FinishedSessionReport{},
		})
	}

	sessionIDs := make([]uuid.UUID, 0, len(sessions))
	formIDs := make([]uuid.UUID, 0, len(sessions))
	for _, s := range sessions {
		sessionIDs = append(sessionIDs, s.TaoluSessionID)
		formIDs = append(formIDs, s.TaoluSessionFormID)
	}

	formNames := map[uuid.UUID]string{}
	var forms []catalogModel.TaoluFormModel
	if err := h.DB.Where("taolu_form_id IN ?", formIDs).Find(&forms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil katalog form")
	}
	for _, f := range forms {
		formNames[f.TaoluFormID] = f.TaoluFormName
	}

	// deduction live per sesi, urut keystroke — cuplikan label ikut urutan ini
	type liveRow struct {
		SessionID uuid.UUID  `gorm:"column:session_id"`
		CodeID    *uuid.UUID `gorm:"column:code_id"`
		CodeName  *string    `gorm:"column:code_name"`
	}
	var liveRows []liveRow
	if err := h.DB.Table("taolu_deductions AS d").
		Select(`d.taolu_deduction_session_id AS session_id,
			d.taolu_deduction_code_id AS code_id,
			c.taolu_deduction_code_name AS code_name`).
		Joins("LEFT JOIN taolu_deduction_codes c ON c.taolu_deduction_code_id = d.taolu_deduction_code_id").
		Where("d.taolu_deduction_session_id IN ?", sessionIDs).
		Where("d.taolu_deduction_status = ?", deductionModel.DeductionLive).
		Order("d.taolu_deduction_occurred_at ASC, d.taolu_deduction_id ASC").
		Scan(&liveRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil deduction")
	}

	liveCount := map[uuid.UUID]int{}
	sampleCodes := map[uuid.UUID][]string{}
	for _, r := range liveRows {
		liveCount[r.SessionID]++
		if r.CodeName != nil && len(sampleCodes[r.SessionID]) < 3 {
			sampleCodes[r.SessionID] = append(sampleCodes[r.SessionID], *r.CodeName)
		}
	}

	out := make([]reportDTO.FinishedSessionReport, 0, len(sessions))
	for _, s := range sessions {
		n := liveCount[s.TaoluSessionID]
		secs := make([]int, 0, len(s.TaoluSessionSections))
		for _, v := range s.TaoluSessionSections {
			secs = append(secs, int(v))
		}
		samples := sampleCodes[s.TaoluSessionID]
		if samples == nil {
			samples = []string{}
		}
		out = append(out, reportDTO.FinishedSessionReport{
			SessionID:       s.TaoluSessionID,
			StudentID:       s.TaoluSessionStudentID,
			TaoluFormID:     s.TaoluSessionFormID,
			FormName:        formNames[s.TaoluSessionFormID],
			Sections:        secs,
			EndedAt:         *s.TaoluSessionEndedAt,
			DeductionsCount: n,
			PointsLost:      scoring.PointsLost(n),
			PointsEarned:    scoring.PointsEarned(n),
			SampleCodes:     samples,
		})
	}

	return helper.JsonOK(c, "Riwayat sesi selesai", fiber.Map{
		"sessions": out,
	})
}

// GET /student-code-counts?student_id= — frekuensi code seumur hidup
// (hanya deduction live yang sudah ber-code).
func (h *TaoluReportController) StudentCodeCounts(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("student_id"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id wajib diisi")
	}
	studentID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	var counts []reportDTO.StudentCodeCount
	if err := h.DB.Table("taolu_deductions AS d").
		Select(`c.taolu_deduction_code_id AS code_id,
			c.taolu_deduction_code_number AS code_number,
			c.taolu_deduction_code_name AS code_name,
			COUNT(*) AS count`).
		Joins("JOIN taolu_sessions s ON s.taolu_session_id = d.taolu_deduction_session_id").
		Joins("JOIN taolu_deduction_codes c ON c.taolu_deduction_code_id = d.taolu_deduction_code_id").
		Where("s.taolu_session_student_id = ?", studentID).
		Where("d.taolu_deduction_status = ?", deductionModel.DeductionLive).
		Group("c.taolu_deduction_code_id, c.taolu_deduction_code_number, c.taolu_deduction_code_name").
		Order("count DESC, code_number ASC").
		Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung frekuensi code")
	}
	if counts == nil {
		counts = []reportDTO.StudentCodeCount{}
	}

	return helper.JsonOK(c, "Frekuensi code siswa", fiber.Map{
		"student_id":  studentID,
		"code_counts": counts,
	})
}
