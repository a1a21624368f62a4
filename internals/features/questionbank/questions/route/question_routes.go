// file: internals/features/questionbank/questions/route/question_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "prosnobank_backend/internals/features/questionbank/questions/controller"
	"prosnobank_backend/internals/middlewares"
)

// QuestionUserRoutes: selection + ad-hoc creation for logged-in teachers.
func QuestionUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := questionController.NewQuestionController(db, v)

	questions := r.Group("/questions")
	questions.Get("/select", ctl.Select)
	questions.Post("/", ctl.Create)
}

// QuestionAdminRoutes: bulk import and destructive maintenance.
func QuestionAdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := questionController.NewQuestionController(db, v)
	importCtl := questionController.NewImportController(db)

	questions := r.Group("/questions")
	questions.Post("/import", middlewares.ImportRateLimiter(), importCtl.Import)
	questions.Post("/normalize-types", importCtl.NormalizeTypes)
	questions.Delete("/:id", ctl.Delete)
}
