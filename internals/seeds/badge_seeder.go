// file: internals/seeds/badge_seeder.go
package seeds

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	statsModel "orquestra_backend/internals/features/gamification/stats/model"
)

var defaultBadges = []statsModel.Badge{
	{Slug: "primeira-presenca", Name: "Primeira Presença", Description: "Confirmou presença no primeiro evento", Icon: "🎵"},
	{Slug: "frequencia-90", Name: "Assiduidade", Description: "Frequência acima de 90% no trimestre", Icon: "🏅"},
	{Slug: "nivel-5", Name: "Meio Caminho", Description: "Alcançou o nível 5", Icon: "⭐"},
	{Slug: "virtuoso", Name: "Virtuoso", Description: "Alcançou o nível máximo", Icon: "🏆"},
	{Slug: "veterano", Name: "Veterano", Description: "Um ano de orquestra completo", Icon: "🎻"},
}

// SeedBadges inserts the default badge set, existing slugs stay untouched.
func SeedBadges(db *gorm.DB) {
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&defaultBadges)
	if res.Error != nil {
		log.Println("[ERROR] badge seed failed:", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("[INFO] seeded %d badges", res.RowsAffected)
	}
}
