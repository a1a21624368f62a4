// file: internals/features/questionbank/papers/controller/paper_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"prosnobank_backend/internals/constants"
	paperDTO "prosnobank_backend/internals/features/questionbank/papers/dto"
	paperModel "prosnobank_backend/internals/features/questionbank/papers/model"
	paperService "prosnobank_backend/internals/features/questionbank/papers/service"
	helper "prosnobank_backend/internals/helpers"
)

type PaperController struct {
	DB        *gorm.DB
	Validator interface{ Struct(any) error }
}

func NewPaperController(db *gorm.DB, v interface{ Struct(any) error }) *PaperController {
	return &PaperController{DB: db, Validator: v}
}

/* =========================================================
   COMPOSE — materialize a paper from selected question ids
   ========================================================= */

func (h *PaperController) Compose(c *fiber.Ctx) error {
	creatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var p paperDTO.ComposePaperRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()

	paper, questions, err := paperService.ComposePaper(c.UserContext(), h.DB, paperService.ComposeInput{
		Mode:        paperService.ModeMaterialize,
		CreatorID:   creatorID,
		QuestionIDs: p.ResolvedQuestionIDs(),
		SchoolName:  p.SchoolName,
	})
	if errors.Is(err, paperService.ErrNoQuestions) {
		// no error page for an empty selection: send the caller back
		return c.Status(fiber.StatusSeeOther).JSON(fiber.Map{
			"code":     fiber.StatusSeeOther,
			"status":   "redirect",
			"redirect": "/api/u/questions/select",
			"message":  "No questions selected",
		})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create paper")
	}

	render := paperDTO.BuildPaperRender(*paper, questions,
		p.SchoolName, p.Duration, p.TotalMarks, p.IncludeOMR, true)
	return helper.JsonCreated(c, "Paper created", render)
}

/* =========================================================
   DECLARE — record a paper's intended scope only
   ========================================================= */

func (h *PaperController) Declare(c *fiber.Ctx) error {
	creatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var p paperDTO.DeclarePaperRequest
	if err := c.BodyParser(&p); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	p.Normalize()
	if err := h.Validator.Struct(p); err != nil {
		return helper.JsonValidationError(c, err)
	}

	paper, _, err := paperService.ComposePaper(c.UserContext(), h.DB, paperService.ComposeInput{
		Mode:              paperService.ModeDeclare,
		CreatorID:         creatorID,
		ProgramName:       p.ProgramName,
		ClassNameID:       p.ClassNameID,
		SubjectIDs:        helper.ParseUUIDTokens(p.SubjectIDs),
		ChapterIDs:        helper.ParseUUIDTokens(p.ChapterIDs),
		QuestionType:      p.QuestionType,
		NumberOfQuestions: p.NumberOfQuestions,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create paper")
	}
	return helper.JsonCreated(c, "Paper created", paper)
}

/* =========================================================
   LIST — caller's papers, newest first, 10 per page
   ========================================================= */

func (h *PaperController) List(c *fiber.Ctx) error {
	creatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	db := h.DB.WithContext(c.UserContext())
	paging := helper.ResolvePaging(c, constants.DefaultPapersPerPage, 100)

	var total int64
	if err := db.Model(&paperModel.QuestionPaperModel{}).
		Where("question_paper_creator_id = ?", creatorID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count papers")
	}

	var papers []paperModel.QuestionPaperModel
	if err := db.Where("question_paper_creator_id = ?", creatorID).
		Order("question_paper_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&papers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load papers")
	}

	return helper.JsonOK(c, "OK", paperDTO.PaperListResponse{
		Papers:     papers,
		Pagination: helper.BuildPagination(total, paging.Page, paging.PerPage, len(papers)),
	})
}

/* =========================================================
   DETAIL — printable view, creator-scoped
   ========================================================= */

func (h *PaperController) Detail(c *fiber.Ctx) error {
	creatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paperID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid paper id")
	}

	paper, err := paperService.FindOwnedPaper(c.UserContext(), h.DB, paperID, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Paper not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load paper")
	}

	questions, err := paperService.PaperQuestions(c.UserContext(), h.DB, paper.QuestionPaperID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	// print defaults: one mark per question, sixty minutes
	totalMarks := strconv.Itoa(len(questions))
	render := paperDTO.BuildPaperRender(*paper, questions,
		paper.QuestionPaperProgramName, "60 মিনিট", totalMarks, false, false)
	return helper.JsonOK(c, "OK", render)
}

/* =========================================================
   DELETE — hard delete, creator only, idempotent 404
   ========================================================= */

func (h *PaperController) Delete(c *fiber.Ctx) error {
	creatorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paperID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid paper id")
	}

	var deleted int64
	txErr := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("question_paper_id = ? AND question_paper_creator_id = ?", paperID, creatorID).
			Delete(&paperModel.QuestionPaperModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 {
			return nil
		}
		return tx.Where("paper_question_paper_id = ?", paperID).
			Delete(&paperModel.PaperQuestionModel{}).Error
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete paper")
	}
	if deleted == 0 {
		// missing and not-yours answer the same
		return helper.JsonError(c, fiber.StatusNotFound, "পেপারটি খুঁজে পাওয়া যায়নি বা আপনার এটি মুছে ফেলার অনুমতি নেই।")
	}
	return helper.JsonOK(c, "পেপারটি সফলভাবে মুছে ফেলা হয়েছে।", nil)
}
