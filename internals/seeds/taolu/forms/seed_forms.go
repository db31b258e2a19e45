package forms

import (
	"encoding/json"
	"log"
	"os"

	"wushuku_backend/internals/features/taolu/catalog/model"

	"gorm.io/gorm"
)

type FormSeed struct {
	TaoluFormName          string  `json:"taolu_form_name"`
	TaoluFormSectionsCount int     `json:"taolu_form_sections_count"`
	TaoluAgeGroupName      *string `json:"taolu_age_group_name"` // bisa null (form umum)
}

func SeedFormsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal baca file JSON: %v", err)
	}

	var data []FormSeed
	if err := json.Unmarshal(content, &data); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, item := range data {
		var existing model.TaoluFormModel
		if err := db.Where("taolu_form_name = ?", item.TaoluFormName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Form %s sudah ada, lewati...", item.TaoluFormName)
			continue
		}

		record := model.TaoluFormModel{
			TaoluFormName:          item.TaoluFormName,
			TaoluFormSectionsCount: item.TaoluFormSectionsCount,
		}

		// link opsional ke age group via nama
		if item.TaoluAgeGroupName != nil {
			var ag model.TaoluAgeGroupModel
			if err := db.Where("taolu_age_group_name = ?", *item.TaoluAgeGroupName).First(&ag).Error; err == nil {
				record.TaoluFormAgeGroupID = &ag.TaoluAgeGroupID
			} else {
				log.Printf("⚠️ Age group %s tidak ditemukan untuk form %s", *item.TaoluAgeGroupName, item.TaoluFormName)
			}
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("❌ Gagal insert form %s: %v", item.TaoluFormName, err)
		} else {
			log.Printf("✅ Berhasil insert form %s", item.TaoluFormName)
		}
	}
}
