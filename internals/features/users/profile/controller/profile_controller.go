// file: internals/features/users/profile/controller/profile_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileDTO "prosnobank_backend/internals/features/users/profile/dto"
	profileModel "prosnobank_backend/internals/features/users/profile/model"
	profileService "prosnobank_backend/internals/features/users/profile/service"
	helper "prosnobank_backend/internals/helpers"
)

type ProfileController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewProfileController(db *gorm.DB, v interface{ Struct(any) error }) *ProfileController {
	return &ProfileController{DB: db, Validator: v}
}

func (h *ProfileController) Get(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profile profileModel.UserProfileModel
	err = h.DB.WithContext(c.UserContext()).
		Where("user_profile_user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not set yet")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}
	return helper.JsonOK(c, "OK", profile)
}

func (h *ProfileController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var p profileDTO.UpsertProfileRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !profileService.ValidCombination(p.Division, p.District, p.Thana) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown division/district/thana combination")
	}

	db := h.DB.WithContext(c.UserContext())

	var profile profileModel.UserProfileModel
	err = db.Where("user_profile_user_id = ?", userID).First(&profile).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = profileModel.UserProfileModel{
			UserProfileUserID:   userID,
			UserProfileDivision: p.Division,
			UserProfileDistrict: p.District,
			UserProfileThana:    p.Thana,
		}
		if err := db.Create(&profile).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save profile")
		}
		return helper.JsonCreated(c, "Profile saved", profile)
	case err != nil:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load profile")
	}

	profile.UserProfileDivision = p.Division
	profile.UserProfileDistrict = p.District
	profile.UserProfileThana = p.Thana
	if err := db.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save profile")
	}
	return helper.JsonOK(c, "Profile saved", profile)
}
