// file: internals/features/taolu/sessions/controller/session_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	pointService "wushuku_backend/internals/features/progress/points/service"
	pointModel "wushuku_backend/internals/features/progress/points/model"
	catalogService "wushuku_backend/internals/features/taolu/catalog/service"
	deductionModel "wushuku_backend/internals/features/taolu/deductions/model"
	sessionDTO "wushuku_backend/internals/features/taolu/sessions/dto"
	sessionModel "wushuku_backend/internals/features/taolu/sessions/model"
	sessionService "wushuku_backend/internals/features/taolu/sessions/service"
	helper "wushuku_backend/internals/helpers"
)

type TaoluSessionController struct {
	DB      *gorm.DB
	Catalog *catalogService.CatalogService
}

func NewTaoluSessionController(db *gorm.DB) *TaoluSessionController {
	return &TaoluSessionController{DB: db, Catalog: catalogService.NewCatalogService(db)}
}

// ambil sesi by id; 404 kalau tidak ada
func (h *TaoluSessionController) getSession(id uuid.UUID) (*sessionModel.TaoluSessionModel, error) {
	var s sessionModel.TaoluSessionModel
	if err := h.DB.Where("taolu_session_id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	return &s, nil
}

// CREATE (batch)
// POST /sessions — satu sesi per siswa, form & sections sama
func (h *TaoluSessionController) CreateSessions(c *fiber.Ctx) error {
	var req sessionDTO.CreateSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	form, err := h.Catalog.GetForm(req.TaoluFormID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sections, err := sessionService.NormalizeSections(req.Sections, form.TaoluFormSectionsCount)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	active := int(sections[0])

	created := make([]sessionModel.TaoluSessionModel, 0, len(req.StudentIDs))
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, studentID := range req.StudentIDs {
			m := sessionModel.TaoluSessionModel{
				TaoluSessionStudentID:     studentID,
				TaoluSessionFormID:        req.TaoluFormID,
				TaoluSessionSections:      sections,
				TaoluSessionActiveSection: active,
			}
			if err := tx.Create(&m).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sesi")
			}
			created = append(created, m)
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Sesi judging dibuat", fiber.Map{
		"sessions": sessionDTO.FromSessionModels(created),
	})
}

// UPDATE SECTIONS
// PATCH /sessions — ganti subset sections; active ikut pindah kalau tergusur
func (h *TaoluSessionController) UpdateSections(c *fiber.Ctx) error {
	var req sessionDTO.UpdateSectionsRequest
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
		return helper.JsonError(c, fiber.StatusConflict, "Sesi sudah selesai")
	}

	form, err := h.Catalog.GetForm(s.TaoluSessionFormID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sections, err := sessionService.NormalizeSections(req.Sections, form.TaoluFormSectionsCount)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	s.TaoluSessionSections = sections
	if !s.HasSection(s.TaoluSessionActiveSection) {
		// active section tergusur → reset ke anggota pertama set baru
		s.TaoluSessionActiveSection = int(sections[0])
	}

	if err := h.DB.Model(&sessionModel.TaoluSessionModel{}).
		Where("taolu_session_id = ?", s.TaoluSessionID).
		Updates(map[string]interface{}{
			"taolu_session_sections":       s.TaoluSessionSections,
			"taolu_session_active_section": s.TaoluSessionActiveSection,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update sections")
	}

	return helper.JsonUpdated(c, "Sections diperbarui", fiber.Map{
		"session": sessionDTO.FromSessionModel(*s),
	})
}

// SET ACTIVE SECTION
// POST /sessions/active-section
func (h *TaoluSessionController) SetActiveSection(c *fiber.Ctx) error {
	var req sessionDTO.SetActiveSectionRequest
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
		return helper.JsonError(c, fiber.StatusConflict, "Sesi sudah selesai")
	}
	if !s.HasSection(req.Section) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Section bukan bagian dari sesi ini")
	}

	if err := h.DB.Model(&sessionModel.TaoluSessionModel{}).
		Where("taolu_session_id = ?", s.TaoluSessionID).
		Update("taolu_session_active_section", req.Section).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal set active section")
	}

	s.TaoluSessionActiveSection = req.Section
	return helper.JsonUpdated(c, "Active section diperbarui", fiber.Map{
		"session": sessionDTO.FromSessionModel(*s),
	})
}

// CLOSE (buang sesi yang belum selesai)
// DELETE /sessions — idempotent: sesi yang sudah tidak ada = no-op
func (h *TaoluSessionController) CloseSession(c *fiber.Ctx) error {
	var req sessionDTO.CloseSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var s sessionModel.TaoluSessionModel
	if err := h.DB.Where("taolu_session_id = ?", req.SessionID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// sudah tidak ada — bukan error
			return helper.JsonDeleted(c, "Sesi sudah tidak ada", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	if s.IsFinished() {
		return helper.JsonError(c, fiber.StatusConflict, "Sesi sudah selesai — tidak bisa ditutup")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("taolu_deduction_session_id = ?", s.TaoluSessionID).
			Delete(&deductionModel.TaoluDeductionModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus deduction sesi")
		}
		if err := tx.Where("taolu_session_id = ?", s.TaoluSessionID).
			Delete(&sessionModel.TaoluSessionModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus sesi")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "Sesi ditutup", fiber.Map{"session_id": s.TaoluSessionID})
}

// LIST OPEN
// GET /sessions[?student_id=]
func (h *TaoluSessionController) ListOpenSessions(c *fiber.Ctx) error {
	q := h.DB.Model(&sessionModel.TaoluSessionModel{}).
		Where("taolu_session_ended_at IS NULL")

	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		studentID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("taolu_session_student_id = ?", studentID)
	}

	var list []sessionModel.TaoluSessionModel
	if err := q.Order("taolu_session_created_at DESC").Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi terbuka")
	}

	return helper.JsonOK(c, "Sesi terbuka", fiber.Map{
		"sessions": sessionDTO.FromSessionModels(list),
	})
}

// FINISH (transisi satu arah, pemenang tunggal)
// POST /finish
func (h *TaoluSessionController) FinishSession(c *fiber.Ctx) error {
	var req sessionDTO.FinishSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var summary sessionDTO.FinishedSessionSummary
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// UPDATE kondisional: hanya satu pemanggil yang menang,
		// sisanya jatuh ke cabang AlreadyFinished di bawah
		res := tx.Model(&sessionModel.TaoluSessionModel{}).
			Where("taolu_session_id = ? AND taolu_session_ended_at IS NULL", req.SessionID).
			Update("taolu_session_ended_at", time.Now())
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyelesaikan sesi")
		}
		if res.RowsAffected == 0 {
			var cnt int64
			if err := tx.Model(&sessionModel.TaoluSessionModel{}).
				Where("taolu_session_id = ?", req.SessionID).Count(&cnt).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek sesi")
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusConflict, "Sesi sudah selesai")
		}

		var s sessionModel.TaoluSessionModel
		if err := tx.Where("taolu_session_id = ?", req.SessionID).First(&s).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
		}

		var ds []deductionModel.TaoluDeductionModel
		if err := tx.Where("taolu_deduction_session_id = ?", s.TaoluSessionID).
			Order("taolu_deduction_occurred_at ASC, taolu_deduction_id ASC").
			Find(&ds).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil deduction sesi")
		}

		summary = sessionDTO.BuildFinishedSessionSummary(s, ds)

		// kredit skor sesi ke ledger poin eksternal
		if err := pointService.PostPointDelta(tx, s.TaoluSessionStudentID,
			pointModel.SourceTypeTaoluSession, s.TaoluSessionID, summary.PointsEarned); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mencatat poin sesi")
		}
		return nil
	}); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Sesi selesai", fiber.Map{"session": summary})
}
