package age_groups

import (
	"encoding/json"
	"log"
	"os"

	"wushuku_backend/internals/features/taolu/catalog/model"

	"gorm.io/gorm"
)

type AgeGroupSeed struct {
	TaoluAgeGroupName   string `json:"taolu_age_group_name"`
	TaoluAgeGroupMinAge int    `json:"taolu_age_group_min_age"`
	TaoluAgeGroupMaxAge *int   `json:"taolu_age_group_max_age"` // bisa null (kelompok tertua)
}

func SeedAgeGroupsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal baca file JSON: %v", err)
	}

	var data []AgeGroupSeed
	if err := json.Unmarshal(content, &data); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, item := range data {
		var existing model.TaoluAgeGroupModel
		if err := db.Where("taolu_age_group_name = ?", item.TaoluAgeGroupName).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Age group %s sudah ada, lewati...", item.TaoluAgeGroupName)
			continue
		}

		record := model.TaoluAgeGroupModel{
			TaoluAgeGroupName:   item.TaoluAgeGroupName,
			TaoluAgeGroupMinAge: item.TaoluAgeGroupMinAge,
			TaoluAgeGroupMaxAge: item.TaoluAgeGroupMaxAge,
		}

		if err := db.Create(&record).Error; err != nil {
			log.Printf("❌ Gagal insert age group %s: %v", item.TaoluAgeGroupName, err)
		} else {
			log.Printf("✅ Berhasil insert age group %s", item.TaoluAgeGroupName)
		}
	}
}
