package seeds

import (
	age_groups "wushuku_backend/internals/seeds/taolu/age_groups"
	deduction_codes "wushuku_backend/internals/seeds/taolu/deduction_codes"
	forms "wushuku_backend/internals/seeds/taolu/forms"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* Katalog taolu — urutan penting: age groups dulu, forms me-link via nama
	age_groups.SeedAgeGroupsFromJSON(db, "internals/seeds/taolu/age_groups/data_age_groups.json")
	forms.SeedFormsFromJSON(db, "internals/seeds/taolu/forms/data_forms.json")
	deduction_codes.SeedDeductionCodesFromJSON(db, "internals/seeds/taolu/deduction_codes/data_deduction_codes.json")
}
