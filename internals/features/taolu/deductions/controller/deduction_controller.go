// file: internals/features/taolu/deductions/controller/deduction_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogService "wushuku_backend/internals/features/taolu/catalog/service"
	deductionDTO "wushuku_backend/internals/features/taolu/deductions/dto"
	deductionModel "wushuku_backend/internals/features/taolu/deductions/model"
	remediationModel "wushuku_backend/internals/features/taolu/remediation/model"
	sessionModel "wushuku_backend/internals/features/taolu/sessions/model"
	helper "wushuku_backend/internals/helpers"
)

type TaoluDeductionController struct {
	DB      *gorm.DB
	Catalog *catalogService.CatalogService
}

func NewTaoluDeductionController(db *gorm.DB) *TaoluDeductionController {
	return &TaoluDeductionController{DB: db, Catalog: catalogService.NewCatalogService(db)}
}

func (h *TaoluDeductionController) getSession(id uuid.UUID) (*sessionModel.TaoluSessionModel, error) {
	var s sessionModel.TaoluSessionModel
	if err := h.DB.Where("taolu_session_id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	return &s, nil
}

// deduction yang sudah di-fix pada ronde remediasi yang selesai = beku
func (h *TaoluDeductionController) remediationLocked(sessionID, deductionID uuid.UUID) (bool, error) {
	var rl remediationModel.TaoluRemediationLogModel
	if err := h.DB.Where("taolu_remediation_log_session_id = ?", sessionID).First(&rl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek remediasi")
	}
	return rl.HasDeduction(deductionID), nil
}

// LOG (keystroke)
// POST /deductions — satu panggilan = satu append atomik, tanpa debounce.
// Aman dipanggil beruntun cepat: tiap insert berdiri sendiri.
func (h *TaoluDeductionController) LogDeduction(c *fiber.Ctx) error {
	var req deductionDTO.LogDeductionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	s, err := h.getSession(req.SessionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if s.IsFinished() {
		return helper.JsonError(c, fiber.StatusConflict, "Sesi sudah selesai — keystroke hanya saat sesi berjalan")
	}

	section := s.TaoluSessionActiveSection
	if req.SectionNumber != nil {
		if !s.HasSection(*req.SectionNumber) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Section bukan bagian dari sesi ini")
		}
		section = *req.SectionNumber
	}

	m := deductionModel.TaoluDeductionModel{
		TaoluDeductionSessionID:  s.TaoluSessionID,
		TaoluDeductionOccurredAt: time.Now(),
		TaoluDeductionSection:    &section,
		TaoluDeductionStatus:     deductionModel.DeductionLive,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat deduction")
	}

	return helper.JsonCreated(c, "Deduction tercatat", fiber.Map{
		"deduction": deductionDTO.FromDeductionModel(m),
	})
}

// ASSIGN / VOID / NOTE
// POST /deductions/assign — partial patch per field
func (h *TaoluDeductionController) AssignDeduction(c *fiber.Ctx) error {
	var req deductionDTO.AssignDeductionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m deductionModel.TaoluDeductionModel
	if err := h.DB.Where("taolu_deduction_id = ?", req.DeductionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Deduction tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil deduction")
	}

	// sesi pemilik harus masih ada (NotFound kalau sudah ditutup paksa)
	s, err := h.getSession(m.TaoluDeductionSessionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	locked, err := h.remediationLocked(s.TaoluSessionID, m.TaoluDeductionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if locked {
		return helper.JsonError(c, fiber.StatusConflict, "Deduction sudah dikunci ronde remediasi yang selesai")
	}

	// validasi isi patch sebelum menulis apa pun
	updates := map[string]interface{}{}

	if req.CodeID.Present {
		if req.CodeID.Value != nil {
			if _, err := h.Catalog.GetDeductionCode(*req.CodeID.Value); err != nil {
				return helper.FromFiberError(c, err)
			}
		}
		updates["taolu_deduction_code_id"] = req.CodeID.Value
	}
	if req.SectionNumber.Present {
		if req.SectionNumber.Value != nil && !s.HasSection(*req.SectionNumber.Value) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Section bukan bagian dari sesi ini")
		}
		updates["taolu_deduction_section"] = req.SectionNumber.Value
	}
	if req.Note.Present {
		if req.Note.Value == nil || strings.TrimSpace(*req.Note.Value) == "" {
			updates["taolu_deduction_note"] = nil
		} else {
			v := strings.TrimSpace(*req.Note.Value)
			updates["taolu_deduction_note"] = v
		}
	}
	if req.Voided.Present && req.Voided.Value != nil {
		if *req.Voided.Value {
			updates["taolu_deduction_status"] = deductionModel.DeductionVoided
		} else {
			updates["taolu_deduction_status"] = deductionModel.DeductionLive
		}
	}

	if len(updates) > 0 {
		// hanya kolom yang hadir di patch — last-writer-wins per field
		if err := h.DB.Model(&deductionModel.TaoluDeductionModel{}).
			Where("taolu_deduction_id = ?", m.TaoluDeductionID).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update deduction")
		}
	}

	req.ApplyPatch(&m)
	return helper.JsonUpdated(c, "Deduction diperbarui", fiber.Map{
		"deduction": deductionDTO.FromDeductionModel(m),
	})
}

// REMOVE (hard delete — "tidak pernah terjadi", tidak reversibel)
// DELETE /deductions/assign
func (h *TaoluDeductionController) RemoveDeduction(c *fiber.Ctx) error {
	var req deductionDTO.RemoveDeductionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var m deductionModel.TaoluDeductionModel
	if err := h.DB.Where("taolu_deduction_id = ?", req.DeductionID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Deduction tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil deduction")
	}

	locked, err := h.remediationLocked(m.TaoluDeductionSessionID, m.TaoluDeductionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if locked {
		return helper.JsonError(c, fiber.StatusConflict, "Deduction sudah dikunci ronde remediasi yang selesai")
	}

	if err := h.DB.Where("taolu_deduction_id = ?", m.TaoluDeductionID).
		Delete(&deductionModel.TaoluDeductionModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus deduction")
	}

	return helper.JsonDeleted(c, "Deduction dihapus", fiber.Map{"deduction_id": m.TaoluDeductionID})
}

// LIST
// GET /deductions?session_id= — urut occurred_at ASC (urutan keystroke)
func (h *TaoluDeductionController) ListDeductions(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("session_id"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id wajib diisi")
	}
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id tidak valid")
	}

	if _, err := h.getSession(sessionID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var list []deductionModel.TaoluDeductionModel
	if err := h.DB.Where("taolu_deduction_session_id = ?", sessionID).
		Order("taolu_deduction_occurred_at ASC, taolu_deduction_id ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil deduction")
	}

	return helper.JsonOK(c, "Deduction sesi", fiber.Map{
		"deductions": deductionDTO.FromDeductionModels(list),
	})
}
