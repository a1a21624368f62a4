// file: internals/features/questionbank/questions/controller/import_controller.go
package controller

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionService "prosnobank_backend/internals/features/questionbank/questions/service"
	helper "prosnobank_backend/internals/helpers"
)

type ImportController struct {
	DB *gorm.DB
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db}
}

// Import handles the bulk upload (multipart field "file", CSV or XLSX).
// The batch never aborts on a bad row; the summary carries exact counts.
func (h *ImportController) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "could not open uploaded file")
	}
	defer f.Close()

	var res *questionService.ImportResult
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx":
		res, err = questionService.ImportQuestionsXLSX(c.UserContext(), h.DB, f)
	default:
		res, err = questionService.ImportQuestionsCSV(c.UserContext(), h.DB, f)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "could not parse file: "+err.Error())
	}

	return helper.JsonOK(c, res.Summary(), res)
}

// NormalizeTypes is the one-off maintenance pass over historical rows.
func (h *ImportController) NormalizeTypes(c *fiber.Ctx) error {
	total, changed, err := questionService.NormalizeStoredTypes(c.UserContext(), h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Normalization failed")
	}
	return helper.JsonOK(c, "Normalization complete", fiber.Map{
		"processed": total,
		"updated":   changed,
	})
}
