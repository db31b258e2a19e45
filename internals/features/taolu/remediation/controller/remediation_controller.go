// file: internals/features/taolu/remediation/controller/remediation_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	pointService "wushuku_backend/internals/features/progress/points/service"
	deductionModel "wushuku_backend/internals/features/taolu/deductions/model"
	remediationDTO "wushuku_backend/internals/features/taolu/remediation/dto"
	remediationModel "wushuku_backend/internals/features/taolu/remediation/model"
	sessionModel "wushuku_backend/internals/features/taolu/sessions/model"
	pointModel "wushuku_backend/internals/features/progress/points/model"
	helper "wushuku_backend/internals/helpers"
)

type TaoluRemediationController struct {
	DB *gorm.DB
}

func NewTaoluRemediationController(db *gorm.DB) *TaoluRemediationController {
	return &TaoluRemediationController{DB: db}
}

// GET /remediations?session_id= — log sesi, atau null kalau belum ada ronde.
func (h *TaoluRemediationController) GetRemediation(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("session_id"))
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id wajib diisi")
	}
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session_id tidak valid")
	}

	var rl remediationModel.TaoluRemediationLogModel
	if err := h.DB.Where("taolu_remediation_log_session_id = ?", sessionID).First(&rl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "Belum ada remediasi untuk sesi ini", fiber.Map{
				"remediation": nil,
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil remediasi")
	}

	return helper.JsonOK(c, "Remediasi sesi", fiber.Map{
		"remediation": remediationDTO.FromRemediationLogModel(rl),
	})
}

// POST /remediations — ronde remediasi single-session.
// Maksimal satu per sesi: insert dijaga unique index di session_id,
// submit kedua (termasuk race) kena 409 — tidak pernah double-award.
func (h *TaoluRemediationController) SubmitRemediation(c *fiber.Ctx) error {
	var req remediationDTO.SubmitRemediationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var s sessionModel.TaoluSessionModel
	if err := h.DB.Where("taolu_session_id = ?", req.SessionID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	if !s.IsFinished() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Sesi belum selesai — remediasi hanya untuk sesi finished")
	}

	// setiap id wajib deduction live milik sesi ini
	var live []deductionModel.TaoluDeductionModel
	if err := h.DB.Where("taolu_deduction_session_id = ? AND taolu_deduction_status = ?",
		s.TaoluSessionID, deductionModel.DeductionLive).
		Find(&live).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil deduction")
	}
	liveSet := make(map[uuid.UUID]bool, len(live))
	for _, d := range live {
		liveSet[d.TaoluDeductionID] = true
	}
	seen := make(map[uuid.UUID]bool, len(req.DeductionIDs))
	ids := make(pq.StringArray, 0, len(req.DeductionIDs))
	for _, id := range req.DeductionIDs {
		if !liveSet[id] {
			return helper.JsonError(c, fiber.StatusBadRequest, "deduction_ids memuat id yang bukan deduction live sesi ini")
		}
		if seen[id] {
			return helper.JsonError(c, fiber.StatusBadRequest, "deduction_ids memuat id ganda")
		}
		seen[id] = true
		ids = append(ids, id.String())
	}

	rl := remediationModel.TaoluRemediationLogModel{
		TaoluRemediationLogSessionID:     s.TaoluSessionID,
		TaoluRemediationLogPointsAwarded: len(ids),
		TaoluRemediationLogDeductionIDs:  ids,
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rl).Error; err != nil {
			return err
		}
		return pointService.PostPointDelta(tx,
			s.TaoluSessionStudentID,
			pointModel.SourceTypeTaoluRemediation,
			rl.TaoluRemediationLogID,
			rl.TaoluRemediationLogPointsAwarded,
		)
	}); err != nil {
		// unique violation di session_id = ronde sudah pernah tercatat
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "23505") {
			return helper.JsonError(c, fiber.StatusConflict, "Sesi ini sudah punya ronde remediasi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan remediasi")
	}

	return helper.JsonCreated(c, "Remediasi tercatat", fiber.Map{
		"remediation":    remediationDTO.FromRemediationLogModel(rl),
		"points_awarded": rl.TaoluRemediationLogPointsAwarded,
	})
}
