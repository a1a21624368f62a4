// file: internals/features/questionbank/papers/route/paper_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paperController "prosnobank_backend/internals/features/questionbank/papers/controller"
)

// PaperUserRoutes: every paper operation is creator-scoped, so the whole
// group lives under the authenticated /api/u tree.
func PaperUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := paperController.NewPaperController(db, v)

	papers := r.Group("/papers")
	papers.Post("/compose", ctl.Compose)
	papers.Post("/", ctl.Declare)
	papers.Get("/", ctl.List)
	papers.Get("/:id", ctl.Detail)
	papers.Delete("/:id", ctl.Delete)
}
