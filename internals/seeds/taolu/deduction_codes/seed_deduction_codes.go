package deduction_codes

import (
	"encoding/json"
	"log"
	"os"

	"wushuku_backend/internals/features/taolu/catalog/model"

	"gorm.io/gorm"
)

type DeductionCodeSeed struct {
	TaoluDeductionCodeNumber          int     `json:"taolu_deduction_code_number"`
	TaoluDeductionCodeName            string  `json:"taolu_deduction_code_name"`
	TaoluDeductionCodeDescription     *string `json:"taolu_deduction_code_description"`
	TaoluDeductionCodeDeductionAmount int     `json:"taolu_deduction_code_deduction_amount"`
}

func SeedDeductionCodesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal baca file JSON: %v", err)
	}

	var data []DeductionCodeSeed
	if err := json.Unmarshal(content, &data); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, item := range data {
		var existing model.TaoluDeductionCodeModel
		if err := db.Where("taolu_deduction_code_number = ?", item.TaoluDeductionCodeNumber).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Code %d sudah ada, lewati...", item.TaoluDeductionCodeNumber)
			continue
		}

		record := model.TaoluDeductionCodeModel{
			TaoluDeductionCodeNumber:          item.TaoluDeductionCodeNumber,
			TaoluDeductionCodeName:            item.TaoluDeductionCodeName,
			TaoluDeductionCodeDescription:     item.TaoluDeductionCodeDescription,
			TaoluDeductionCodeDeductionAmount: item.TaoluDeductionCodeDeductionAmount,
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("❌ Gagal insert code %d: %v", item.TaoluDeductionCodeNumber, err)
		} else {
			log.Printf("✅ Berhasil insert code %d (%s)", item.TaoluDeductionCodeNumber, item.TaoluDeductionCodeName)
		}
	}
}
