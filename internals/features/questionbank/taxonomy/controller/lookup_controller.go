// file: internals/features/questionbank/taxonomy/controller/lookup_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	taxonomyDTO "prosnobank_backend/internals/features/questionbank/taxonomy/dto"
	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
	helper "prosnobank_backend/internals/helpers"
)

// LookupController feeds the cascading class → subject → chapter selects.
type LookupController struct {
	DB *gorm.DB
}

func NewLookupController(db *gorm.DB) *LookupController {
	return &LookupController{DB: db}
}

func (h *LookupController) ListClasses(c *fiber.Ctx) error {
	var rows []taxonomyModel.ClassNameModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("class_name_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}
	return helper.JsonOK(c, "OK", taxonomyDTO.FromClassNameModels(rows))
}

func (h *LookupController) ListSubjects(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil || classID == uuid.Nil {
		return helper.JsonOK(c, "OK", []taxonomyDTO.LookupItem{})
	}

	var rows []taxonomyModel.SubjectModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("subject_class_name_id = ?", classID).
		Order("subject_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subjects")
	}
	return helper.JsonOK(c, "OK", taxonomyDTO.FromSubjectModels(rows))
}

// ListChapters accepts either ?subject_id= or ?subject_ids=a,b,c.
func (h *LookupController) ListChapters(c *fiber.Ctx) error {
	raw := c.Query("subject_ids")
	if raw == "" {
		raw = c.Query("subject_id")
	}
	subjectIDs := helper.ParseUUIDList(raw)
	if len(subjectIDs) == 0 {
		return helper.JsonOK(c, "OK", []taxonomyDTO.LookupItem{})
	}

	var rows []taxonomyModel.ChapterModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("chapter_subject_id IN ?", subjectIDs).
		Order("chapter_name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load chapters")
	}
	return helper.JsonOK(c, "OK", taxonomyDTO.FromChapterModels(rows))
}
