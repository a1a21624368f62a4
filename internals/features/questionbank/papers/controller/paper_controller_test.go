package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	paperModel "prosnobank_backend/internals/features/questionbank/papers/model"
	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
)

func newTestApp(t *testing.T, userID uuid.UUID) (*fiber.App, *gorm.DB) {
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
		&questionModel.QuestionModel{},
		&paperModel.QuestionPaperModel{},
		&paperModel.PaperQuestionModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	app := fiber.New()
	// stand-in for the jwt middleware
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})

	h := NewPaperController(db, validator.New())
	app.Post("/papers/compose", h.Compose)
	app.Post("/papers/", h.Declare)
	app.Get("/papers/", h.List)
	app.Get("/papers/:id", h.Detail)
	app.Delete("/papers/:id", h.Delete)

	return app, db
}

func seedQuestion(t *testing.T, db *gorm.DB) questionModel.QuestionModel {
	t.Helper()
	cls := taxonomyModel.ClassNameModel{ClassNameName: "Class 9"}
	if err := db.Where("class_name_name = ?", cls.ClassNameName).FirstOrCreate(&cls).Error; err != nil {
		t.Fatalf("seed class: %v", err)
	}
	q := questionModel.QuestionModel{
		QuestionText:        "What is velocity?",
		QuestionType:        "mcq",
		QuestionClassNameID: cls.ClassNameID,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return q
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestPaperCompose_CreatesAndRenders(t *testing.T) {
	user := uuid.New()
	app, db := newTestApp(t, user)
	q := seedQuestion(t, db)

	resp := doJSON(t, app, http.MethodPost, "/papers/compose", fiber.Map{
		"question_ids": []string{q.QuestionID.String()},
		"school_name":  "Dhaka High School",
		"duration":     "60",
		"total_marks":  "30",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	body := decodeEnvelope(t, resp)
	data, _ := body["data"].(map[string]any)
	if data == nil {
		t.Fatalf("no data in response: %v", body)
	}
	if data["duration_bn"] != "৬০" {
		t.Errorf("duration_bn = %v, want ৬০", data["duration_bn"])
	}

	var papers int64
	db.Model(&paperModel.QuestionPaperModel{}).Count(&papers)
	if papers != 1 {
		t.Errorf("papers = %d, want 1", papers)
	}
}

func TestPaperCompose_EmptySelectionRedirects(t *testing.T) {
	app, _ := newTestApp(t, uuid.New())

	resp := doJSON(t, app, http.MethodPost, "/papers/compose", fiber.Map{
		"question_ids": []string{},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	body := decodeEnvelope(t, resp)
	if body["redirect"] != "/api/u/questions/select" {
		t.Errorf("redirect = %v", body["redirect"])
	}
}

func TestPaperDeclare_Validates(t *testing.T) {
	app, db := newTestApp(t, uuid.New())

	// missing program_name rejected
	resp := doJSON(t, app, http.MethodPost, "/papers/", fiber.Map{
		"class_level":         uuid.New().String(),
		"question_type":       "mcq",
		"number_of_questions": 10,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/papers/", fiber.Map{
		"program_name":        "অর্ধবার্ষিক পরীক্ষা",
		"class_level":         uuid.New().String(),
		"question_type":       "বহুনির্বাচনী",
		"number_of_questions": 30,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var papers int64
	db.Model(&paperModel.QuestionPaperModel{}).Count(&papers)
	if papers != 1 {
		t.Errorf("papers = %d, want 1", papers)
	}
}

func TestPaperDelete_OwnershipScoped(t *testing.T) {
	owner := uuid.New()
	app, db := newTestApp(t, owner)
	q := seedQuestion(t, db)

	resp := doJSON(t, app, http.MethodPost, "/papers/compose", fiber.Map{
		"question_ids": []string{q.QuestionID.String()},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("compose status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	var paper paperModel.QuestionPaperModel
	if err := db.First(&paper).Error; err != nil {
		t.Fatalf("load paper: %v", err)
	}

	// another user sees 404, the paper survives
	foreign := fiber.New()
	foreign.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New())
		return c.Next()
	})
	foreign.Delete("/papers/:id", NewPaperController(db, validator.New()).Delete)

	resp = doJSON(t, foreign, http.MethodDelete, "/papers/"+paper.QuestionPaperID.String(), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign delete status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	var survived int64
	db.Model(&paperModel.QuestionPaperModel{}).Count(&survived)
	if survived != 1 {
		t.Fatalf("paper rows after foreign delete = %d, want 1", survived)
	}

	// the owner deletes: paper and join rows both gone
	resp = doJSON(t, app, http.MethodDelete, "/papers/"+paper.QuestionPaperID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner delete status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	var papers, joins int64
	db.Model(&paperModel.QuestionPaperModel{}).Count(&papers)
	db.Model(&paperModel.PaperQuestionModel{}).Count(&joins)
	if papers != 0 || joins != 0 {
		t.Errorf("after delete papers=%d joins=%d, want 0/0", papers, joins)
	}

	// second delete answers 404
	resp = doJSON(t, app, http.MethodDelete, "/papers/"+paper.QuestionPaperID.String(), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("repeat delete status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestPaperDetail_NotFoundForForeignPaper(t *testing.T) {
	owner := uuid.New()
	ownerApp, db := newTestApp(t, owner)
	q := seedQuestion(t, db)

	resp := doJSON(t, ownerApp, http.MethodPost, "/papers/compose", fiber.Map{
		"question_ids": []string{q.QuestionID.String()},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("compose status = %d", resp.StatusCode)
	}
	resp.Body.Close()

	var paper paperModel.QuestionPaperModel
	if err := db.First(&paper).Error; err != nil {
		t.Fatalf("load paper: %v", err)
	}

	resp = doJSON(t, ownerApp, http.MethodGet, "/papers/"+paper.QuestionPaperID.String(), nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("owner detail status = %d, want 200", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, ownerApp, http.MethodGet, "/papers/"+uuid.New().String(), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown paper status = %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}
