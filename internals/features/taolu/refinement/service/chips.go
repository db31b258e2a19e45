// file: internals/features/taolu/refinement/service/chips.go
package service

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	dto "wushuku_backend/internals/features/taolu/refinement/dto"
)

// ChipSourceRow = satu deduction live ber-code hasil join
// sessions ∈ window × deductions × catalog. Pure input untuk grouping.
type ChipSourceRow struct {
	FormID        uuid.UUID
	FormName      string
	SectionNumber int
	CodeID        uuid.UUID
	CodeNumber    int
	CodeName      string
	DeductionID   uuid.UUID
	Note          *string
}

// ChipID deterministik per (form, section, code) — id yang sama berarti
// chip yang sama lintas panggilan, frontend boleh pakai sebagai key.
func ChipID(formID uuid.UUID, section int, codeID uuid.UUID) string {
	return fmt.Sprintf("%s:%d:%s", formID.String(), section, codeID.String())
}

// BuildRefinementForms mengelompokkan baris mentah menjadi
// form → section → chip. Deduction dengan code yang sama pada
// section yang sama digabung jadi satu chip dengan count naik.
// Urutan stabil: nama form, nomor section, nomor code.
func BuildRefinementForms(rows []ChipSourceRow) []dto.RefinementForm {
	type chipKey struct {
		formID  uuid.UUID
		section int
		codeID  uuid.UUID
	}

	formNames := map[uuid.UUID]string{}
	chips := map[chipKey]*dto.RefinementChip{}
	var order []chipKey

	for _, r := range rows {
		formNames[r.FormID] = r.FormName
		k := chipKey{formID: r.FormID, section: r.SectionNumber, codeID: r.CodeID}
		ch, ok := chips[k]
		if !ok {
			ch = &dto.RefinementChip{
				ChipID:       ChipID(r.FormID, r.SectionNumber, r.CodeID),
				CodeID:       r.CodeID,
				CodeNumber:   r.CodeNumber,
				CodeName:     r.CodeName,
				DeductionIDs: []uuid.UUID{},
				Notes:        []string{},
			}
			chips[k] = ch
			order = append(order, k)
		}
		ch.Count++
		ch.DeductionIDs = append(ch.DeductionIDs, r.DeductionID)
		if r.Note != nil && *r.Note != "" {
			ch.Notes = append(ch.Notes, *r.Note)
		}
	}

	byForm := map[uuid.UUID]map[int][]dto.RefinementChip{}
	for _, k := range order {
		if byForm[k.formID] == nil {
			byForm[k.formID] = map[int][]dto.RefinementChip{}
		}
		byForm[k.formID][k.section] = append(byForm[k.formID][k.section], *chips[k])
	}

	forms := make([]dto.RefinementForm, 0, len(byForm))
	for formID, sections := range byForm {
		f := dto.RefinementForm{
			TaoluFormID: formID,
			FormName:    formNames[formID],
			Sections:    make([]dto.RefinementSection, 0, len(sections)),
		}
		for section, cs := range sections {
			sort.Slice(cs, func(i, j int) bool { return cs[i].CodeNumber < cs[j].CodeNumber })
			f.Sections = append(f.Sections, dto.RefinementSection{
				SectionNumber: section,
				Chips:         cs,
			})
		}
		sort.Slice(f.Sections, func(i, j int) bool {
			return f.Sections[i].SectionNumber < f.Sections[j].SectionNumber
		})
		forms = append(forms, f)
	}
	sort.Slice(forms, func(i, j int) bool {
		if forms[i].FormName != forms[j].FormName {
			return forms[i].FormName < forms[j].FormName
		}
		return forms[i].TaoluFormID.String() < forms[j].TaoluFormID.String()
	})
	return forms
}

// CountSelections: hanya section yang di-include yang dihitung.
// missed = di-include tapi tidak fixed.
func CountSelections(selections []dto.RefinementSelection) (fixed, missed int) {
	for _, sel := range selections {
		if sel.Fixed {
			fixed++
		} else {
			missed++
		}
	}
	return fixed, missed
}
