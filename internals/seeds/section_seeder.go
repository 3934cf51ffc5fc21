// file: internals/seeds/section_seeder.go
package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	profileModel "orquestra_backend/internals/features/users/profile/model"
)

var defaultSections = []profileModel.Section{
	{Name: "Violino", Category: "cordas"},
	{Name: "Viola", Category: "cordas"},
	{Name: "Violoncelo", Category: "cordas"},
	{Name: "Contrabaixo", Category: "cordas"},
	{Name: "Flauta", Category: "sopros"},
	{Name: "Clarinete", Category: "sopros"},
	{Name: "Oboé", Category: "sopros"},
	{Name: "Fagote", Category: "sopros"},
	{Name: "Trompete", Category: "sopros"},
	{Name: "Trombone", Category: "sopros"},
	{Name: "Trompa", Category: "sopros"},
	{Name: "Percussão", Category: "percussão"},
}

// SeedSections inserts the fixed naipe list, existing names stay untouched.
func SeedSections(db *gorm.DB) {
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&defaultSections)
	if res.Error != nil {
		log.Println("[ERROR] section seed failed:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] seeded %d sections", res.RowsAffected)
	}
}
