// file: internals/features/questionbank/taxonomy/route/taxonomy_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	taxonomyController "prosnobank_backend/internals/features/questionbank/taxonomy/controller"
)

// TaxonomyUserRoutes mounts the read-only cascading lookups.
// Mount under /api/u:
//
//	GET /api/u/lookups/classes
//	GET /api/u/lookups/subjects?class_id=
//	GET /api/u/lookups/chapters?subject_id=|subject_ids=
func TaxonomyUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := taxonomyController.NewLookupController(db)

	lookups := r.Group("/lookups")
	lookups.Get("/classes", ctl.ListClasses)
	lookups.Get("/subjects", ctl.ListSubjects)
	lookups.Get("/chapters", ctl.ListChapters)
}

// TaxonomyAdminRoutes mounts explicit create/delete of taxonomy rows.
func TaxonomyAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := taxonomyController.NewTaxonomyAdminController(db, v)

	taxonomy := r.Group("/taxonomy")
	taxonomy.Post("/classes", ctl.CreateClass)
	taxonomy.Post("/subjects", ctl.CreateSubject)
	taxonomy.Post("/chapters", ctl.CreateChapter)
	taxonomy.Delete("/classes/:id", ctl.DeleteClass)
	taxonomy.Delete("/subjects/:id", ctl.DeleteSubject)
	taxonomy.Delete("/chapters/:id", ctl.DeleteChapter)
}
