package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	questionModel "prosnobank_backend/internals/features/questionbank/questions/model"
	taxonomyModel "prosnobank_backend/internals/features/questionbank/taxonomy/model"
	taxonomyService "prosnobank_backend/internals/features/questionbank/taxonomy/service"
)

type selectFixture struct {
	App     *fiber.App
	DB      *gorm.DB
	Class   *taxonomyModel.ClassNameModel
	Subject *taxonomyModel.SubjectModel
	Chapter *taxonomyModel.ChapterModel
}

func newSelectFixture(t *testing.T) selectFixture {
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

	cls, err := taxonomyService.GetOrCreateClassName(db, "Class 9")
	if err != nil {
		t.Fatalf("class: %v", err)
	}
	subj, err := taxonomyService.GetOrCreateSubject(db, cls.ClassNameID, "Physics")
	if err != nil {
		t.Fatalf("subject: %v", err)
	}
	ch, err := taxonomyService.GetOrCreateChapter(db, subj.SubjectID, "Motion")
	if err != nil {
		t.Fatalf("chapter: %v", err)
	}

	for _, text := range []string{"q1", "q2", "q3"} {
		q := questionModel.QuestionModel{
			QuestionText:        text,
			QuestionType:        "mcq",
			QuestionClassNameID: cls.ClassNameID,
			QuestionSubjectID:   &subj.SubjectID,
			QuestionChapterID:   &ch.ChapterID,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}

	app := fiber.New()
	h := NewQuestionController(db, validator.New())
	app.Get("/questions/select", h.Select)

	return selectFixture{App: app, DB: db, Class: cls, Subject: subj, Chapter: ch}
}

type selectBody struct {
	Data struct {
		Questions     []json.RawMessage `json:"questions"`
		Subjects      []json.RawMessage `json:"subjects"`
		Chapters      []json.RawMessage `json:"chapters"`
		ShowQuestions bool              `json:"show_questions"`
	} `json:"data"`
}

func getSelect(t *testing.T, app *fiber.App, query string) selectBody {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/questions/select?"+query, nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body selectBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestSelect_PartialFilterHidesQuestions(t *testing.T) {
	fx := newSelectFixture(t)

	// class only: subjects dropdown fills, questions stay hidden
	body := getSelect(t, fx.App, "class_id="+fx.Class.ClassNameID.String())
	if body.Data.ShowQuestions {
		t.Error("show_questions = true with partial filter")
	}
	if len(body.Data.Questions) != 0 {
		t.Errorf("questions leaked: %d", len(body.Data.Questions))
	}
	if len(body.Data.Subjects) != 1 {
		t.Errorf("subjects = %d, want 1", len(body.Data.Subjects))
	}
}

func TestSelect_CompleteFilterShowsQuestions(t *testing.T) {
	fx := newSelectFixture(t)

	body := getSelect(t, fx.App,
		"class_id="+fx.Class.ClassNameID.String()+
			"&subject_id="+fx.Subject.SubjectID.String()+
			"&chapter_ids="+fx.Chapter.ChapterID.String()+
			"&question_type=mcq")
	if !body.Data.ShowQuestions {
		t.Error("show_questions = false with complete filter")
	}
	if len(body.Data.Questions) != 3 {
		t.Errorf("questions = %d, want 3", len(body.Data.Questions))
	}
	if len(body.Data.Chapters) != 1 {
		t.Errorf("chapters = %d, want 1", len(body.Data.Chapters))
	}
}

func TestSelect_CountClamping(t *testing.T) {
	fx := newSelectFixture(t)

	base := "class_id=" + fx.Class.ClassNameID.String() +
		"&subject_id=" + fx.Subject.SubjectID.String() +
		"&chapter_ids=" + fx.Chapter.ChapterID.String() +
		"&question_type=mcq"

	tests := []struct {
		name  string
		count string
		want  int
	}{
		{"explicit count", "2", 2},
		{"zero clamps to one", "0", 1},
		{"negative clamps to one", "-5", 1},
		{"non-numeric uses default", "abc", 3},
		{"absent uses default", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base
			if tt.count != "" {
				q += "&question_count=" + tt.count
			}
			body := getSelect(t, fx.App, q)
			if len(body.Data.Questions) != tt.want {
				t.Errorf("questions = %d, want %d", len(body.Data.Questions), tt.want)
			}
		})
	}
}

func TestSelect_BengaliTypeQuery(t *testing.T) {
	fx := newSelectFixture(t)

	body := getSelect(t, fx.App,
		"class_id="+fx.Class.ClassNameID.String()+
			"&subject_id="+fx.Subject.SubjectID.String()+
			"&chapter_ids="+fx.Chapter.ChapterID.String()+
			"&question_type="+"বহুনির্বাচনী")
	if len(body.Data.Questions) != 3 {
		t.Errorf("bengali type query found %d questions, want 3", len(body.Data.Questions))
	}
}
