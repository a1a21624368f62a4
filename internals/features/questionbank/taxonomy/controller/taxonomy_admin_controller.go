// file: internals/features/questionbank/taxonomy/controller/taxonomy_admin_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	taxonomyDTO "prosnobank_backend/internals/features/questionbank/taxonomy/dto"
	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
	taxonomyService "prosnobank_backend/internals/features/questionbank/taxonomy/service"
	helper "prosnobank_backend/internals/helpers"
)

type TaxonomyAdminController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewTaxonomyAdminController(db *gorm.DB, v interface{ Struct(any) error }) *TaxonomyAdminController {
	return &TaxonomyAdminController{DB: db, Validator: v}
}

/* =========================================================
   CREATE (get-or-create semantics, admin entry path)
   ========================================================= */

func (h *TaxonomyAdminController) CreateClass(c *fiber.Ctx) error {
	var p taxonomyDTO.CreateClassNameRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row, err := taxonomyService.GetOrCreateClassName(h.DB.WithContext(c.UserContext()), p.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class ready", row)
}

func (h *TaxonomyAdminController) CreateSubject(c *fiber.Ctx) error {
	var p taxonomyDTO.CreateSubjectRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := h.DB.WithContext(c.UserContext())

	var cls taxonomyModel.ClassNameModel
	if err := db.First(&cls, "class_name_id = ?", p.ClassNameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class")
	}

	row, err := taxonomyService.GetOrCreateSubject(db, cls.ClassNameID, p.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject ready", row)
}

func (h *TaxonomyAdminController) CreateChapter(c *fiber.Ctx) error {
	var p taxonomyDTO.CreateChapterRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	db := h.DB.WithContext(c.UserContext())

	var subject taxonomyModel.SubjectModel
	if err := db.First(&subject, "subject_id = ?", p.SubjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check subject")
	}

	row, err := taxonomyService.GetOrCreateChapter(db, subject.SubjectID, p.Name)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create chapter")
	}
	return helper.JsonCreated(c, "Chapter ready", row)
}

/* =========================================================
   DELETE (explicit admin action; questions cascade)
   ========================================================= */

func (h *TaxonomyAdminController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&taxonomyModel.ClassNameModel{}, "class_name_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}
	return helper.JsonOK(c, "Class deleted", nil)
}

func (h *TaxonomyAdminController) DeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&taxonomyModel.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonOK(c, "Subject deleted", nil)
}

func (h *TaxonomyAdminController) DeleteChapter(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter id")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&taxonomyModel.ChapterModel{}, "chapter_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete chapter")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
	}
	return helper.JsonOK(c, "Chapter deleted", nil)
}
