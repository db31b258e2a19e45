package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "wushuku_backend/internals/features/taolu/refinement/dto"
)

func strPtr(s string) *string { return &s }

// Dua sesi, code & section sama → satu chip dengan count 2.
func TestBuildRefinementFormsMergesAcrossSessions(t *testing.T) {
	formID := uuid.New()
	codeID := uuid.New()
	d1, d2 := uuid.New(), uuid.New()

	rows := []ChipSourceRow{
		{FormID: formID, FormName: "Chang Quan", SectionNumber: 2, CodeID: codeID, CodeNumber: 31, CodeName: "Kuda-kuda goyah", DeductionID: d1, Note: strPtr("kaki kiri")},
		{FormID: formID, FormName: "Chang Quan", SectionNumber: 2, CodeID: codeID, CodeNumber: 31, CodeName: "Kuda-kuda goyah", DeductionID: d2},
	}

	forms := BuildRefinementForms(rows)
	require.Len(t, forms, 1)
	require.Len(t, forms[0].Sections, 1)
	require.Len(t, forms[0].Sections[0].Chips, 1)

	ch := forms[0].Sections[0].Chips[0]
	assert.Equal(t, 2, ch.Count)
	assert.Equal(t, ChipID(formID, 2, codeID), ch.ChipID)
	assert.ElementsMatch(t, []uuid.UUID{d1, d2}, ch.DeductionIDs)
	assert.Equal(t, []string{"kaki kiri"}, ch.Notes)
}

// Section dan code diurutkan stabil.
func TestBuildRefinementFormsOrdering(t *testing.T) {
	formID := uuid.New()
	rows := []ChipSourceRow{
		{FormID: formID, FormName: "Nan Quan", SectionNumber: 3, CodeID: uuid.New(), CodeNumber: 45, CodeName: "b", DeductionID: uuid.New()},
		{FormID: formID, FormName: "Nan Quan", SectionNumber: 1, CodeID: uuid.New(), CodeNumber: 12, CodeName: "a", DeductionID: uuid.New()},
		{FormID: formID, FormName: "Nan Quan", SectionNumber: 1, CodeID: uuid.New(), CodeNumber: 3, CodeName: "c", DeductionID: uuid.New()},
	}

	forms := BuildRefinementForms(rows)
	require.Len(t, forms, 1)
	require.Len(t, forms[0].Sections, 2)
	assert.Equal(t, 1, forms[0].Sections[0].SectionNumber)
	assert.Equal(t, 3, forms[0].Sections[1].SectionNumber)
	assert.Equal(t, 3, forms[0].Sections[0].Chips[0].CodeNumber)
	assert.Equal(t, 12, forms[0].Sections[0].Chips[1].CodeNumber)
}

func TestBuildRefinementFormsEmpty(t *testing.T) {
	assert.Empty(t, BuildRefinementForms(nil))
}

// included ∧ !fixed = missed; yang tidak dikirim tidak dihitung.
func TestCountSelections(t *testing.T) {
	sels := []dto.RefinementSelection{
		{Fixed: true},
		{Fixed: true},
		{Fixed: false},
	}
	fixed, missed := CountSelections(sels)
	assert.Equal(t, 2, fixed)
	assert.Equal(t, 1, missed)

	fixed, missed = CountSelections(nil)
	assert.Equal(t, 0, fixed)
	assert.Equal(t, 0, missed)
}
