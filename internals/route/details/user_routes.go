// file: internals/route/details/user_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileRoute "prosnobank_backend/internals/features/users/profile/route"
)

func GeoPublicRoutes(r fiber.Router) {
	profileRoute.GeoPublicRoutes(r)
}

func ProfileUserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	profileRoute.ProfileUserRoutes(r, db, v)
}
