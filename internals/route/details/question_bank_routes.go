// file: internals/route/details/question_bank_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paperRoute "prosnobank_backend/internals/features/questionbank/papers/route"
	questionRoute "prosnobank_backend/internals/features/questionbank/questions/route"
	taxonomyRoute "prosnobank_backend/internals/features/questionbank/taxonomy/route"
)

// QuestionBankUserRoutes mounts the teacher-facing pipeline:
// lookups → selection → paper composition/management.
func QuestionBankUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	taxonomyRoute.TaxonomyUserRoutes(r, db)
	questionRoute.QuestionUserRoutes(r, db, v)
	paperRoute.PaperUserRoutes(r, db, v)
}

// QuestionBankAdminRoutes mounts taxonomy management, bulk import and
// destructive question maintenance.
func QuestionBankAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	taxonomyRoute.TaxonomyAdminRoutes(r, db, v)
	questionRoute.QuestionAdminRoutes(r, db, v)
}
