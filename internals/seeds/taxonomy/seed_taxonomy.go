package taxonomy

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"prosnobank_backend/internals/constants"
	taxonomyService "prosnobank_backend/internals/features/questionbank/taxonomy/service"
)

type TaxonomySeed struct {
	ClassName string              `json:"class_name"`
	Subjects  map[string][]string `json:"subjects"` // subject → chapters
}

// SeedTaxonomyFromJSON loads the baseline class/subject/chapter tree.
// Get-or-create underneath, so re-running is a no-op.
func SeedTaxonomyFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("seed taxonomy: read %s: %v", filePath, err)
		return
	}

	var entries []TaxonomySeed
	if err := json.Unmarshal(file, &entries); err != nil {
		log.Printf("seed taxonomy: decode %s: %v", filePath, err)
		return
	}

	for _, e := range entries {
		cls, err := taxonomyService.GetOrCreateClassName(db, e.ClassName)
		if err != nil {
			log.Printf("seed taxonomy: class %q: %v", e.ClassName, err)
			continue
		}
		for subjectName, chapters := range e.Subjects {
			subj, err := taxonomyService.GetOrCreateSubject(db, cls.ClassNameID, subjectName)
			if err != nil {
				log.Printf("seed taxonomy: subject %q: %v", subjectName, err)
				continue
			}
			for _, chapterName := range chapters {
				if _, err := taxonomyService.GetOrCreateChapter(db, subj.SubjectID, chapterName); err != nil {
					log.Printf("seed taxonomy: chapter %q: %v", chapterName, err)
				}
			}
		}
	}

	// parking spot for importer rows that arrive without a class
	if _, err := taxonomyService.GetOrCreateClassName(db, constants.UnspecifiedClassName); err != nil {
		log.Printf("seed taxonomy: fallback class: %v", err)
	}
}
