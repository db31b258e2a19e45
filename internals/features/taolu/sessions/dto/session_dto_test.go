package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	deductionModel "wushuku_backend/internals/features/taolu/deductions/model"
	m "wushuku_backend/internals/features/taolu/sessions/model"
)

func newTestSession() m.TaoluSessionModel {
	ended := time.Now()
	return m.TaoluSessionModel{
		TaoluSessionID:            uuid.New(),
		TaoluSessionStudentID:     uuid.New(),
		TaoluSessionFormID:        uuid.New(),
		TaoluSessionSections:      pq.Int64Array{1},
		TaoluSessionActiveSection: 1,
		TaoluSessionEndedAt:       &ended,
	}
}

func newDeduction(sessionID uuid.UUID, status deductionModel.TaoluDeductionStatus) deductionModel.TaoluDeductionModel {
	return deductionModel.TaoluDeductionModel{
		TaoluDeductionID:        uuid.New(),
		TaoluDeductionSessionID: sessionID,
		TaoluDeductionOccurredAt: time.Now(),
		TaoluDeductionStatus:    status,
	}
}

// 3 deduction live → lost 6, earned 4.
func TestBuildFinishedSessionSummary(t *testing.T) {
	s := newTestSession()
	ds := []deductionModel.TaoluDeductionModel{
		newDeduction(s.TaoluSessionID, deductionModel.DeductionLive),
		newDeduction(s.TaoluSessionID, deductionModel.DeductionLive),
		newDeduction(s.TaoluSessionID, deductionModel.DeductionLive),
	}

	sum := BuildFinishedSessionSummary(s, ds)
	assert.Equal(t, 3, sum.DeductionsCount)
	assert.Equal(t, 6, sum.PointsLost)
	assert.Equal(t, 4, sum.PointsEarned)
	assert.Equal(t, []int{1}, sum.Sections)
	assert.Len(t, sum.Deductions, 3)
}

// Voided tetap tampil di list tapi tidak dihitung skor.
func TestBuildFinishedSessionSummaryVoidedExcluded(t *testing.T) {
	s := newTestSession()
	ds := []deductionModel.TaoluDeductionModel{
		newDeduction(s.TaoluSessionID, deductionModel.DeductionLive),
		newDeduction(s.TaoluSessionID, deductionModel.DeductionVoided),
	}

	sum := BuildFinishedSessionSummary(s, ds)
	assert.Equal(t, 1, sum.DeductionsCount)
	assert.Equal(t, 2, sum.PointsLost)
	assert.Equal(t, 8, sum.PointsEarned)
	assert.Len(t, sum.Deductions, 2)

	voided := 0
	for _, d := range sum.Deductions {
		if d.Voided {
			voided++
		}
	}
	assert.Equal(t, 1, voided)
}

func TestBuildFinishedSessionSummaryEmptyLedger(t *testing.T) {
	s := newTestSession()
	sum := BuildFinishedSessionSummary(s, nil)
	assert.Equal(t, 0, sum.DeductionsCount)
	assert.Equal(t, 0, sum.PointsLost)
	assert.Equal(t, 10, sum.PointsEarned)
	assert.NotNil(t, sum.Deductions)
}
