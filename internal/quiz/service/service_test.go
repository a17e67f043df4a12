package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"milestone-tracker/backend/internal/apierr"
	"milestone-tracker/backend/internal/audit"
	"milestone-tracker/backend/internal/quiz/domain"
)

type memQuestionRepo struct {
	mu sync.Mutex
	m  map[string]*domain.QuizQuestion
}

func newMemQuestionRepo() *memQuestionRepo {
	return &memQuestionRepo{m: make(map[string]*domain.QuizQuestion)}
}

func (r *memQuestionRepo) GetByID(ctx context.Context, id string) (*domain.QuizQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *memQuestionRepo) List(ctx context.Context) ([]*domain.QuizQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.QuizQuestion
	for _, q := range r.m {
		cp := *q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memQuestionRepo) ListByDifficulty(ctx context.Context, d domain.Difficulty) ([]*domain.QuizQuestion, error) {
	all, _ := r.List(ctx)
	var out []*domain.QuizQuestion
	for _, q := range all {
		if q.Difficulty == d {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *memQuestionRepo) Create(ctx context.Context, q *domain.QuizQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q.StampCreate(audit.Actor(ctx), time.Now().UTC())
	cp := *q
	r.m[q.ID] = &cp
	return nil
}

func (r *memQuestionRepo) Update(ctx context.Context, q *domain.QuizQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q.StampUpdate(audit.Actor(ctx), time.Now().UTC())
	cp := *q
	r.m[q.ID] = &cp
	return nil
}

func (r *memQuestionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, id)
	return nil
}

type memResultRepo struct {
	mu sync.Mutex
	rs []*domain.QuizResult
}

func (r *memResultRepo) Create(ctx context.Context, res *domain.QuizResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.StampCreate(audit.Actor(ctx), time.Now().UTC())
	cp := *res
	r.rs = append(r.rs, &cp)
	return nil
}

func (r *memResultRepo) ListByUsername(ctx context.Context, username string) ([]*domain.QuizResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.QuizResult
	for _, res := range r.rs {
		if res.Username == username {
			cp := *res
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CompletedAt, out[j].CompletedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
	return out, nil
}

func questionDTO(text, difficulty string) QuizQuestionDTO {
	return QuizQuestionDTO{
		Question:      text,
		Options:       json.RawMessage(`{"a":"Kapadokya","b":"Roma"}`),
		CorrectOption: 0,
		Difficulty:    difficulty,
	}
}

func newQuizService() (*Service, *memQuestionRepo, *memResultRepo) {
	questions := newMemQuestionRepo()
	results := &memResultRepo{}
	return NewService(questions, results), questions, results
}

func TestCreateQuestionThenGet(t *testing.T) {
	svc, questions, _ := newQuizService()
	ctx := audit.WithActor(context.Background(), "sevgi")

	created, err := svc.CreateQuestion(ctx, questionDTO("İlk buluşmamız nerdeydi?", "EASY"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}
	got, err := svc.GetQuestion(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Question != "İlk buluşmamız nerdeydi?" || got.Difficulty != "EASY" {
		t.Fatalf("unexpected question: %+v", got)
	}
	stored, _ := questions.GetByID(ctx, created.ID)
	if stored.CreatedBy != "sevgi" || stored.UpdatedBy != "sevgi" {
		t.Fatalf("audit fields not stamped: %+v", stored.Envelope)
	}
}

func TestCreateQuestion_Validation(t *testing.T) {
	svc, _, _ := newQuizService()
	ctx := context.Background()

	cases := []struct {
		name string
		dto  QuizQuestionDTO
	}{
		{"missing question", QuizQuestionDTO{Options: json.RawMessage(`{"a":"x"}`)}},
		{"missing options", QuizQuestionDTO{Question: "soru"}},
		{"non-object options", QuizQuestionDTO{Question: "soru", Options: json.RawMessage(`[1,2]`)}},
		{"bad difficulty", func() QuizQuestionDTO {
			d := questionDTO("soru", "IMPOSSIBLE")
			return d
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateQuestion(ctx, tc.dto); err == nil {
				t.Fatal("expected validation failure")
			} else {
				var ve *apierr.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected validation failure, got %v", err)
				}
			}
		})
	}
}

func TestUpdateQuestion_PreservesCreationAudit(t *testing.T) {
	svc, questions, _ := newQuizService()
	ctx := audit.WithActor(context.Background(), "sevgi")

	created, err := svc.CreateQuestion(ctx, questionDTO("soru", "EASY"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before, _ := questions.GetByID(ctx, created.ID)

	updCtx := audit.WithActor(context.Background(), "deniz")
	dto := questionDTO("güncel soru", "HARD")
	if _, err := svc.UpdateQuestion(updCtx, created.ID, dto); err != nil {
		t.Fatalf("update: %v", err)
	}
	after, _ := questions.GetByID(ctx, created.ID)
	if after.CreatedBy != "sevgi" || !after.CreatedAt.Equal(before.CreatedAt) {
		t.Fatalf("creation audit overwritten: %+v", after.Envelope)
	}
	if after.UpdatedBy != "deniz" {
		t.Fatalf("update audit not refreshed: %+v", after.Envelope)
	}
	if after.Question != "güncel soru" || after.Difficulty != domain.DifficultyHard {
		t.Fatalf("fields not overwritten: %+v", after)
	}
}

func TestDeleteQuestion_Missing(t *testing.T) {
	svc, _, _ := newQuizService()
	err := svc.DeleteQuestion(context.Background(), "2c1f0ff1-6f0f-4ab5-9f11-000000000000")
	var nf *apierr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestGetRandomQuestions_SmallPoolReturnsAll(t *testing.T) {
	svc, _, _ := newQuizService()
	ctx := context.Background()
	for _, text := range []string{"bir", "iki", "üç"} {
		if _, err := svc.CreateQuestion(ctx, questionDTO(text, "EASY")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := svc.CreateQuestion(ctx, questionDTO("zor", "HARD")); err != nil {
		t.Fatalf("create: %v", err)
	}

	easy := domain.DifficultyEasy
	got, err := svc.GetRandomQuestions(ctx, 5, &easy)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected the whole pool of 3, got %d", len(got))
	}
	seen := map[string]bool{}
	for _, q := range got {
		if q.Difficulty != "EASY" {
			t.Fatalf("wrong difficulty in selection: %+v", q)
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestGetRandomQuestions_SubsetHasNoDuplicates(t *testing.T) {
	svc, _, _ := newQuizService()
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		if _, err := svc.CreateQuestion(ctx, questionDTO("soru", "MEDIUM")); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	for i := 0; i < 20; i++ {
		got, err := svc.GetRandomQuestions(ctx, 4, nil)
		if err != nil {
			t.Fatalf("random: %v", err)
		}
		if len(got) != 4 {
			t.Fatalf("expected 4 questions, got %d", len(got))
		}
		seen := map[string]bool{}
		for _, q := range got {
			if seen[q.ID] {
				t.Fatalf("duplicate question %s", q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestGetRandomQuestions_BadCount(t *testing.T) {
	svc, _, _ := newQuizService()
	if _, err := svc.GetRandomQuestions(context.Background(), 0, nil); err == nil {
		t.Fatal("expected validation failure")
	}
}

func TestRecordResult_StoresScoreAsReported(t *testing.T) {
	svc, _, results := newQuizService()
	ctx := audit.WithActor(context.Background(), "sevgi")

	// 7/5 is nonsense, but recording is a dumb write.
	dto := QuizResultDTO{Username: "sevgi", Score: 7, MaxScore: 5, CompletedAt: "2026-02-14T20:00:00Z"}
	saved, err := svc.RecordResult(ctx, dto)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if saved.Score != 7 || saved.MaxScore != 5 {
		t.Fatalf("score altered: %+v", saved)
	}
	if len(results.rs) != 1 {
		t.Fatalf("expected one stored result, got %d", len(results.rs))
	}
}

func TestRecordResult_BadCompletedAt(t *testing.T) {
	svc, _, _ := newQuizService()
	dto := QuizResultDTO{Username: "sevgi", Score: 1, MaxScore: 1, CompletedAt: "14.02.2026"}
	if _, err := svc.RecordResult(context.Background(), dto); err == nil {
		t.Fatal("expected validation failure")
	}
}

func TestListResultsForUser_NewestFirst(t *testing.T) {
	svc, _, _ := newQuizService()
	ctx := context.Background()

	times := []string{"2026-01-01T10:00:00Z", "2026-03-01T10:00:00Z", "2026-02-01T10:00:00Z"}
	for i, ts := range times {
		dto := QuizResultDTO{Username: "sevgi", Score: i, MaxScore: 5, CompletedAt: ts}
		if _, err := svc.RecordResult(ctx, dto); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	if _, err := svc.RecordResult(ctx, QuizResultDTO{Username: "deniz", Score: 5, MaxScore: 5}); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := svc.ListResultsForUser(ctx, "sevgi")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if got[0].CompletedAt != "2026-03-01T10:00:00Z" || got[2].CompletedAt != "2026-01-01T10:00:00Z" {
		t.Fatalf("wrong ordering: %+v", got)
	}
}

func TestListResultsForUser_RequiresUsername(t *testing.T) {
	svc, _, _ := newQuizService()
	if _, err := svc.ListResultsForUser(context.Background(), ""); err == nil {
		t.Fatal("expected validation failure")
	}
}
