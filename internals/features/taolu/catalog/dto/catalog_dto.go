package dto

import (
	"github.com/google/uuid"

	m "wushuku_backend/internals/features/taolu/catalog/model"
)

/* =========================================================
   Response DTO — field mengikuti kontrak UI taolu-tracker
   ========================================================= */

type FormResponse struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	SectionsCount int        `json:"sections_count"`
	AgeGroupID    *uuid.UUID `json:"age_group_id,omitempty"`
}

func FromFormModel(mm m.TaoluFormModel) FormResponse {
	return FormResponse{
		ID:            mm.TaoluFormID,
		Name:          mm.TaoluFormName,
		SectionsCount: mm.TaoluFormSectionsCount,
		AgeGroupID:    mm.TaoluFormAgeGroupID,
	}
}

func FromFormModels(list []m.TaoluFormModel) []FormResponse {
	out := make([]FormResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromFormModel(it))
	}
	return out
}

type DeductionCodeResponse struct {
	ID              uuid.UUID `json:"id"`
	CodeNumber      int       `json:"code_number"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DeductionAmount int       `json:"deduction_amount"`
}

func FromDeductionCodeModel(mm m.TaoluDeductionCodeModel) DeductionCodeResponse {
	return DeductionCodeResponse{
		ID:              mm.TaoluDeductionCodeID,
		CodeNumber:      mm.TaoluDeductionCodeNumber,
		Name:            mm.TaoluDeductionCodeName,
		Description:     mm.TaoluDeductionCodeDescription,
		DeductionAmount: mm.TaoluDeductionCodeDeductionAmount,
	}
}

func FromDeductionCodeModels(list []m.TaoluDeductionCodeModel) []DeductionCodeResponse {
	out := make([]DeductionCodeResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromDeductionCodeModel(it))
	}
	return out
}

type AgeGroupResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	MinAge int       `json:"min_age"`
	MaxAge *int      `json:"max_age,omitempty"`
}

func FromAgeGroupModel(mm m.TaoluAgeGroupModel) AgeGroupResponse {
	return AgeGroupResponse{
		ID:     mm.TaoluAgeGroupID,
		Name:   mm.TaoluAgeGroupName,
		MinAge: mm.TaoluAgeGroupMinAge,
		MaxAge: mm.TaoluAgeGroupMaxAge,
	}
}

func FromAgeGroupModels(list []m.TaoluAgeGroupModel) []AgeGroupResponse {
	out := make([]AgeGroupResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromAgeGroupModel(it))
	}
	return out
}
