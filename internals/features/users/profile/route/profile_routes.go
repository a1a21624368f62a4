// file: internals/features/users/profile/route/profile_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileController "prosnobank_backend/internals/features/users/profile/controller"
)

// GeoPublicRoutes: the static cascade is public, signup needs it before
// there is a session.
func GeoPublicRoutes(r fiber.Router) {
	ctl := profileController.NewGeoController()

	geo := r.Group("/geo")
	geo.Get("/divisions", ctl.ListDivisions)
	geo.Get("/districts", ctl.ListDistricts)
	geo.Get("/thanas", ctl.ListThanas)
}

func ProfileUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := profileController.NewProfileController(db, v)

	profile := r.Group("/profile")
	profile.Get("/", ctl.Get)
	profile.Put("/", ctl.Upsert)
}
