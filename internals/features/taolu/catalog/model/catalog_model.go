// file: internals/features/taolu/catalog/model/catalog_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   Katalog referensi (read-only bagi core taolu).
   Penulisan data hanya lewat seeder — lihat internals/seeds/taolu.
   ========================================================= */

type TaoluAgeGroupModel struct {
	TaoluAgeGroupID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:taolu_age_group_id" json:"taolu_age_group_id"`
	TaoluAgeGroupName   string    `gorm:"type:varchar(80);not null;column:taolu_age_group_name" json:"taolu_age_group_name"`
	TaoluAgeGroupMinAge int       `gorm:"not null;default:0;column:taolu_age_group_min_age" json:"taolu_age_group_min_age"`
	TaoluAgeGroupMaxAge *int      `gorm:"column:taolu_age_group_max_age" json:"taolu_age_group_max_age,omitempty"`

	TaoluAgeGroupCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:taolu_age_group_created_at" json:"taolu_age_group_created_at"`
}

func (TaoluAgeGroupModel) TableName() string { return "taolu_age_groups" }

type TaoluFormModel struct {
	TaoluFormID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:taolu_form_id" json:"taolu_form_id"`
	TaoluFormName          string     `gorm:"type:varchar(120);not null;column:taolu_form_name" json:"taolu_form_name"`
	TaoluFormSectionsCount int        `gorm:"not null;column:taolu_form_sections_count" json:"taolu_form_sections_count"`
	TaoluFormAgeGroupID    *uuid.UUID `gorm:"type:uuid;column:taolu_form_age_group_id" json:"taolu_form_age_group_id,omitempty"`

	TaoluFormCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:taolu_form_created_at" json:"taolu_form_created_at"`
	TaoluFormUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:taolu_form_updated_at" json:"taolu_form_updated_at"`
}

func (TaoluFormModel) TableName() string { return "taolu_forms" }

type TaoluDeductionCodeModel struct {
	TaoluDeductionCodeID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:taolu_deduction_code_id" json:"taolu_deduction_code_id"`
	TaoluDeductionCodeNumber      int       `gorm:"not null;uniqueIndex:uq_taolu_deduction_code_number;column:taolu_deduction_code_number" json:"taolu_deduction_code_number"`
	TaoluDeductionCodeName        string    `gorm:"type:varchar(120);not null;column:taolu_deduction_code_name" json:"taolu_deduction_code_name"`
	TaoluDeductionCodeDescription *string   `gorm:"type:text;column:taolu_deduction_code_description" json:"taolu_deduction_code_description,omitempty"`
	// nilai potongan dalam poin (ekonomi poin memakai konstanta scoring,
	// kolom ini dipajang di UI picker sebagai referensi wasit)
	TaoluDeductionCodeDeductionAmount int `gorm:"not null;default:2;column:taolu_deduction_code_deduction_amount" json:"taolu_deduction_code_deduction_amount"`

	TaoluDeductionCodeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:taolu_deduction_code_created_at" json:"taolu_deduction_code_created_at"`
}

func (TaoluDeductionCodeModel) TableName() string { return "taolu_deduction_codes" }
