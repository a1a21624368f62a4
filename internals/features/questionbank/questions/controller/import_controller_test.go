package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
)

func newImportApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&taxonomyModel.ClassNameModel{},
		&taxonomyModel.SubjectModel{},
		&taxonomyModel.ChapterModel{},
		&questionModel.QuestionModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	h := NewImportController(db)
	app.Post("/questions/import", h.Import)
	app.Post("/questions/normalize-types", h.NormalizeTypes)
	return app, db
}

func uploadCSV(t *testing.T, app *fiber.App, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/questions/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestImportEndpoint_CSV(t *testing.T) {
	app, db := newImportApp(t)

	csvData := "class_name,subject,chapter,text,question_type\n" +
		"Class 9,Physics,Motion,What is velocity?,mcq\n" +
		"Class 9,Physics,Motion,,mcq\n"

	resp := uploadCSV(t, app, "batch.csv", csvData)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Message string `json:"message"`
		Data    struct {
			Created int      `json:"created"`
			Failed  int      `json:"failed"`
			Errors  []string `json:"errors"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Message != "Created 1 questions. 1 rows failed." {
		t.Errorf("message = %q", body.Message)
	}
	if body.Data.Created != 1 || body.Data.Failed != 1 {
		t.Errorf("created=%d failed=%d", body.Data.Created, body.Data.Failed)
	}
	if len(body.Data.Errors) != 1 || body.Data.Errors[0] != "Row 3: missing question text" {
		t.Errorf("errors = %v", body.Data.Errors)
	}

	var count int64
	db.Model(&questionModel.QuestionModel{}).Count(&count)
	if count != 1 {
		t.Errorf("question rows = %d, want 1", count)
	}
}

func TestImportEndpoint_MissingFile(t *testing.T) {
	app, _ := newImportApp(t)

	req := httptest.NewRequest(http.MethodPost, "/questions/import", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
