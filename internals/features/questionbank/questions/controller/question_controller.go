// file: internals/features/questionbank/questions/controller/question_controller.go
package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"prosnobank_backend/internals/constants"
	questionDTO "prosnobank_backend/internals/features/questionbank/questions/dto"
	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
	questionService "prosnobank_backend/internals/features/questionbank/questions/service"
	taxonomyDTO "prosnobank_backend/internals/features/questionbank/taxonomy/dto"
	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
	helper "prosnobank_backend/internals/helpers"
)

type QuestionController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewQuestionController(db *gorm.DB, v interface{ Struct(any) error }) *QuestionController {
	return &QuestionController{DB: db, Validator: v}
}

/* =========================================================
   SELECT — cascading filter, newest first, bounded
   ========================================================= */

func (h *QuestionController) Select(c *fiber.Ctx) error {
	db := h.DB.WithContext(c.UserContext())

	classID, _ := uuid.Parse(c.Query("class_id"))
	subjectID, _ := uuid.Parse(c.Query("subject_id"))

	chapterRaw := c.Query("chapter_ids")
	if chapterRaw == "" {
		chapterRaw = c.Query("chapter_id")
	}
	chapterIDs := helper.ParseUUIDList(chapterRaw)

	questionType := strings.TrimSpace(c.Query("question_type"))

	// absent/non-numeric → 0, service falls back to the default;
	// numeric but non-positive → clamp to 1 so a typo never empties the page
	count := 0
	if rawCount := strings.TrimSpace(c.Query("question_count")); rawCount != "" {
		if n, err := strconv.Atoi(rawCount); err == nil {
			if n <= 0 {
				n = 1
			}
			count = n
		}
	}

	resp := questionDTO.SelectionResponse{
		Questions: []questionModel.QuestionModel{},
		Subjects:  []taxonomyDTO.LookupItem{},
		Chapters:  []taxonomyDTO.LookupItem{},
	}

	// dropdown population for the next selector level
	if classID != uuid.Nil {
		var subjects []taxonomyModel.SubjectModel
		if err := db.Where("subject_class_name_id = ?", classID).
			Order("subject_name ASC").Find(&subjects).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subjects")
		}
		resp.Subjects = taxonomyDTO.FromSubjectModels(subjects)
	}
	if subjectID != uuid.Nil {
		var chapters []taxonomyModel.ChapterModel
		if err := db.Where("chapter_subject_id = ?", subjectID).
			Order("chapter_name ASC").Find(&chapters).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load chapters")
		}
		resp.Chapters = taxonomyDTO.FromChapterModels(chapters)
	}

	questions, err := questionService.SelectQuestions(c.UserContext(), h.DB, questionService.SelectionFilter{
		ClassID:    classID,
		SubjectID:  subjectID,
		ChapterIDs: chapterIDs,
		Type:       questionType,
		Count:      count,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}
	resp.Questions = questions
	resp.ShowQuestions = classID != uuid.Nil && subjectID != uuid.Nil && len(chapterIDs) > 0 && questionType != ""

	return helper.JsonOK(c, "OK", resp)
}

/* =========================================================
   CREATE — ad-hoc entry from the selection page modal
   ========================================================= */

func (h *QuestionController) Create(c *fiber.Ctx) error {
	var p questionDTO.CreateQuestionRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()
	if p.ClassID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id is required")
	}
	if p.Text == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "question text is required")
	}

	db := h.DB.WithContext(c.UserContext())

	var cls taxonomyModel.ClassNameModel
	if err := db.First(&cls, "class_name_id = ?", p.ClassID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid class")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class")
	}

	qType := p.QuestionType
	if qType == "" {
		qType = constants.QuestionTypeMCQ
	}

	newQuestion := func(subjectID, chapterID *uuid.UUID) questionModel.QuestionModel {
		return questionModel.QuestionModel{
			QuestionText:          p.Text,
			QuestionType:          qType,
			QuestionClassNameID:   cls.ClassNameID,
			QuestionSubjectID:     subjectID,
			QuestionChapterID:     chapterID,
			QuestionOptionA:       p.OptionA,
			QuestionOptionB:       p.OptionB,
			QuestionOptionC:       p.OptionC,
			QuestionOptionD:       p.OptionD,
			QuestionCorrectOption: p.CorrectOption,
		}
	}

	// selected subjects constrained to the class; chapters resolved as rows
	// so their owning subject is known
	var subjects []taxonomyModel.SubjectModel
	if ids := helper.ParseUUIDTokens(p.Subjects); len(ids) > 0 {
		if err := db.Where("subject_id IN ? AND subject_class_name_id = ?", ids, cls.ClassNameID).
			Find(&subjects).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subjects")
		}
	}
	var chapters []taxonomyModel.ChapterModel
	if ids := helper.ParseUUIDTokens(p.Chapters); len(ids) > 0 {
		if err := db.Where("chapter_id IN ?", ids).Find(&chapters).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load chapters")
		}
	}

	out := questionDTO.CreateQuestionResponse{Errors: []string{}}

	create := func(q questionModel.QuestionModel) {
		if err := db.Create(&q).Error; err != nil {
			out.Errors = append(out.Errors, err.Error())
			return
		}
		out.Created++
	}

	switch {
	case len(subjects) > 0 && len(chapters) > 0:
		// one question per subject × matching chapter
		for _, s := range subjects {
			for _, ch := range chapters {
				if ch.ChapterSubjectID != s.SubjectID {
					continue
				}
				create(newQuestion(ptr(s.SubjectID), ptr(ch.ChapterID)))
			}
		}
	case len(subjects) > 0:
		for _, s := range subjects {
			create(newQuestion(ptr(s.SubjectID), nil))
		}
	case len(chapters) > 0:
		for _, ch := range chapters {
			create(newQuestion(ptr(ch.ChapterSubjectID), ptr(ch.ChapterID)))
		}
	default:
		create(newQuestion(nil, nil))
	}

	return helper.JsonCreated(c, fmt.Sprintf("Created %d question(s)", out.Created), out)
}

/* =========================================================
   DELETE — explicit admin action
   ========================================================= */

func (h *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&questionModel.QuestionModel{}, "question_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonOK(c, "Question deleted", nil)
}

func ptr[T any](v T) *T { return &v }
