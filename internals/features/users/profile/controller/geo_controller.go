// file: internals/features/users/profile/controller/geo_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	profileService "prosnobank_backend/internals/features/users/profile/service"
	helper "prosnobank_backend/internals/helpers"
)

// GeoController serves the static division/district/thana cascade.
type GeoController struct{}

func NewGeoController() *GeoController { return &GeoController{} }

func (h *GeoController) ListDivisions(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", profileService.Divisions())
}

func (h *GeoController) ListDistricts(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", profileService.Districts(c.Query("division")))
}

func (h *GeoController) ListThanas(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", profileService.Thanas(c.Query("division"), c.Query("district")))
}
