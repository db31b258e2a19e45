// file: internals/features/taolu/remediation/dto/remediation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "wushuku_backend/internals/features/taolu/remediation/model"
)

// =========================
// Request
// =========================

type SubmitRemediationRequest struct {
	SessionID    uuid.UUID   `json:"session_id" validate:"required"`
	DeductionIDs []uuid.UUID `json:"deduction_ids" validate:"required,min=1,dive,required"`
}

// =========================
// Response
// =========================

type RemediationLogResponse struct {
	RemediationLogID uuid.UUID   `json:"remediation_log_id"`
	SessionID        uuid.UUID   `json:"session_id"`
	PointsAwarded    int         `json:"points_awarded"`
	DeductionIDs     []uuid.UUID `json:"deduction_ids"`
	CompletedAt      time.Time   `json:"completed_at"`
}

func FromRemediationLogModel(mm m.TaoluRemediationLogModel) RemediationLogResponse {
	ids := make([]uuid.UUID, 0, len(mm.TaoluRemediationLogDeductionIDs))
	for _, raw := range mm.TaoluRemediationLogDeductionIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	return RemediationLogResponse{
		RemediationLogID: mm.TaoluRemediationLogID,
		SessionID:        mm.TaoluRemediationLogSessionID,
		PointsAwarded:    mm.TaoluRemediationLogPointsAwarded,
		DeductionIDs:     ids,
		CompletedAt:      mm.TaoluRemediationLogCompletedAt,
	}
}
