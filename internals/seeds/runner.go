package seeds

import (
	"gorm.io/gorm"

	taxonomy "prosnobank_backend/internals/seeds/taxonomy"
)

// RunAllSeeds loads the baseline reference data. Run manually after a fresh
// migration; every seeder is idempotent.
func RunAllSeeds(db *gorm.DB) {
	taxonomy.SeedTaxonomyFromJSON(db, "internals/seeds/taxonomy/data_taxonomy.json")
}
