package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "wushuku_backend/internals/features/taolu/deductions/model"
)

// absent ≠ null ≠ value — field yang tidak dikirim tidak ikut patch.
func TestPatchFieldTriState(t *testing.T) {
	var req AssignDeductionRequest
	payload := `{"deduction_id":"` + uuid.New().String() + `","code_id":null,"note":"telat angkat kaki"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.True(t, req.CodeID.Present)
	assert.Nil(t, req.CodeID.Value)

	assert.True(t, req.Note.Present)
	require.NotNil(t, req.Note.Value)
	assert.Equal(t, "telat angkat kaki", *req.Note.Value)

	assert.False(t, req.SectionNumber.Present)
	assert.False(t, req.Voided.Present)
}

// Patch parsial tidak menimpa field yang absen (last-writer-wins per field).
func TestApplyPatchPartial(t *testing.T) {
	codeID := uuid.New()
	section := 2
	existing := m.TaoluDeductionModel{
		TaoluDeductionID:      uuid.New(),
		TaoluDeductionCodeID:  &codeID,
		TaoluDeductionSection: &section,
		TaoluDeductionStatus:  m.DeductionLive,
	}

	var req AssignDeductionRequest
	payload := `{"deduction_id":"` + existing.TaoluDeductionID.String() + `","voided":true}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	req.ApplyPatch(&existing)
	assert.Equal(t, m.DeductionVoided, existing.TaoluDeductionStatus)
	// code & section tidak disentuh
	require.NotNil(t, existing.TaoluDeductionCodeID)
	assert.Equal(t, codeID, *existing.TaoluDeductionCodeID)
	require.NotNil(t, existing.TaoluDeductionSection)
	assert.Equal(t, 2, *existing.TaoluDeductionSection)
}

// code_id:null = lepas klasifikasi; note string kosong dinormalisasi jadi nil.
func TestApplyPatchClearFields(t *testing.T) {
	codeID := uuid.New()
	note := "catatan lama"
	existing := m.TaoluDeductionModel{
		TaoluDeductionID:     uuid.New(),
		TaoluDeductionCodeID: &codeID,
		TaoluDeductionNote:   &note,
		TaoluDeductionStatus: m.DeductionVoided,
	}

	var req AssignDeductionRequest
	payload := `{"deduction_id":"` + existing.TaoluDeductionID.String() + `","code_id":null,"note":"  ","voided":false}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	req.ApplyPatch(&existing)
	assert.Nil(t, existing.TaoluDeductionCodeID)
	assert.Nil(t, existing.TaoluDeductionNote)
	assert.Equal(t, m.DeductionLive, existing.TaoluDeductionStatus)
	assert.True(t, existing.IsLive())
}
