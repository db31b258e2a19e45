// file: internals/features/taolu/refinement/controller/refinement_controller.go
package controller

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pointModel "wushuku_backend/internals/features/progress/points/model"
	pointService "wushuku_backend/internals/features/progress/points/service"
	deductionModel "wushuku_backend/internals/features/taolu/deductions/model"
	refinementDTO "wushuku_backend/internals/features/taolu/refinement/dto"
	refinementModel "wushuku_backend/internals/features/taolu/refinement/model"
	refinementService "wushuku_backend/internals/features/taolu/refinement/service"
	"wushuku_backend/internals/features/taolu/scoring"
	helper "wushuku_backend/internals/helpers"
)

type TaoluRefinementController struct {
	DB *gorm.DB
}

func NewTaoluRefinementController(db *gorm.DB) *TaoluRefinementController {
	return &TaoluRefinementController{DB: db}
}

// chipRows: deduction live ber-code dari sesi finished dalam window.
// Deduction tanpa code tidak bisa jadi chip — sengaja di-skip di WHERE.
func (h *TaoluRefinementController) chipRows(studentID uuid.UUID, since time.Time) ([]refinementService.ChipSourceRow, int, error) {
	var rows []refinementService.ChipSourceRow
	err := h.DB.Table("taolu_deductions AS d").
		Select(`s.taolu_session_form_id AS form_id,
			f.taolu_form_name AS form_name,
			d.taolu_deduction_section AS section_number,
			c.taolu_deduction_code_id AS code_id,
			c.taolu_deduction_code_number AS code_number,
			c.taolu_deduction_code_name AS code_name,
			d.taolu_deduction_id AS deduction_id,
			d.taolu_deduction_note AS note`).
		Joins("JOIN taolu_sessions s ON s.taolu_session_id = d.taolu_deduction_session_id").
		Joins("JOIN taolu_forms f ON f.taolu_form_id = s.taolu_session_form_id").
		Joins("JOIN taolu_deduction_codes c ON c.taolu_deduction_code_id = d.taolu_deduction_code_id").
		Where("s.taolu_session_student_id = ?", studentID).
		Where("s.taolu_session_ended_at IS NOT NULL AND s.taolu_session_ended_at >= ?", since).
		Where("d.taolu_deduction_status = ?", deductionModel.DeductionLive).
		Where("d.taolu_deduction_code_id IS NOT NULL").
		Where("d.taolu_deduction_section IS NOT NULL").
		Order("f.taolu_form_name ASC, d.taolu_deduction_section ASC, c.taolu_deduction_code_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var sessionsCount int64
	err = h.DB.Table("taolu_sessions").
		Where("taolu_session_student_id = ?", studentID).
		Where("taolu_session_ended_at IS NOT NULL AND taolu_session_ended_at >= ?", since).
		Count(&sessionsCount).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, int(sessionsCount), nil
}

// POST /refinement/summary — rekap murni per panggilan, tidak ada state;
// hasil dikelompokkan form → section → chip.
func (h *TaoluRefinementController) Summary(c *fiber.Ctx) error {
	var req refinementDTO.RefinementSummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	since := time.Now().AddDate(0, 0, -req.WindowDays)
	summaries := make([]refinementDTO.StudentRefinementSummary, 0, len(req.StudentIDs))
	for _, studentID := range req.StudentIDs {
		rows, sessionsCount, err := h.chipRows(studentID, since)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun rekap refinement")
		}
		summaries = append(summaries, refinementDTO.StudentRefinementSummary{
			StudentID:     studentID,
			WindowDays:    req.WindowDays,
			SessionsCount: sessionsCount,
			Forms:         refinementService.BuildRefinementForms(rows),
		})
	}

	return helper.JsonOK(c, "Rekap refinement", fiber.Map{
		"summaries": summaries,
	})
}

// POST /refinement/submit — hitung net lalu simpan audit immutable.
// Boleh diulang: tidak ada lock per chip, setiap submit berdiri sendiri
// dan seluruh id yang dikreditkan tersimpan di baris submission.
func (h *TaoluRefinementController) Submit(c *fiber.Ctx) error {
	var req refinementDTO.RefinementSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	for _, nd := range req.NewDeductions {
		if !nd.Complete() {
			return helper.JsonError(c, fiber.StatusBadRequest, "new_deductions wajib lengkap: form, section, dan code")
		}
	}

	fixed, missed := refinementService.CountSelections(req.Selections)
	added := len(req.NewDeductions)
	net := scoring.RefinementNet(fixed, missed, added)

	selectionsJSON, err := sonic.Marshal(req.Selections)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal serialisasi selections")
	}
	newJSON, err := sonic.Marshal(req.NewDeductions)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal serialisasi new_deductions")
	}

	sub := refinementModel.TaoluRefinementSubmissionModel{
		TaoluRefinementSubmissionStudentID:     req.StudentID,
		TaoluRefinementSubmissionWindowDays:    req.WindowDays,
		TaoluRefinementSubmissionSelections:    selectionsJSON,
		TaoluRefinementSubmissionNewDeductions: newJSON,
		TaoluRefinementSubmissionFixedCount:    fixed,
		TaoluRefinementSubmissionMissedCount:   missed,
		TaoluRefinementSubmissionNewCount:      added,
		TaoluRefinementSubmissionNetPoints:     net,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		return pointService.PostPointDelta(tx,
			req.StudentID,
			pointModel.SourceTypeTaoluRefinement,
			sub.TaoluRefinementSubmissionID,
			net,
		)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan submission refinement")
	}

	return helper.JsonCreated(c, "Refinement tercatat", fiber.Map{
		"net_points": net,
		"submission": refinementDTO.FromRefinementSubmissionModel(sub),
	})
}
