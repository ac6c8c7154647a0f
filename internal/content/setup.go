package content

import (
	"log"

	"github.com/bartek-filipiuk/dw-zizi/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "cms"); err != nil {
		log.Fatal("Failed to ensure schema cms: ", err)
	}

	if err := db.DB.AutoMigrate(
		&Section{},
		&SectionImage{},
		&GalleryItem{},
		&GalleryItemImage{},
		&MenuItem{},
		&SiteSetting{},
		&ContactSubmission{},
	); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
