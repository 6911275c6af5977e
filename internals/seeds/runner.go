package seeds

import (
	"gorm.io/gorm"

	reference "ihtiyati_backend/internals/seeds/reference"
)

func RunAllSeeds(db *gorm.DB) {
	reference.SeedDefaultSettings(db)
	reference.SeedReferenceListsFromJSON(db, "internals/seeds/reference/data_reference_lists.json")
	reference.SeedTeachersFromJSON(db, "internals/seeds/reference/data_teachers.json")
}
