// seed inserts development sample data for local testing. Run via go run ./cmd/seed.
// Idempotent: skips inserts when any dream plan already exists.
// With -hash <password> it only prints a bcrypt hash for an AUTH_USERS entry.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"milestone-tracker/backend/internal/audit"
	"milestone-tracker/backend/internal/config"
	"milestone-tracker/backend/internal/db"
	plandomain "milestone-tracker/backend/internal/plan/domain"
	planrepo "milestone-tracker/backend/internal/plan/repository"
	quizdomain "milestone-tracker/backend/internal/quiz/domain"
	quizrepo "milestone-tracker/backend/internal/quiz/repository"
	"milestone-tracker/backend/internal/security"
	timelinedomain "milestone-tracker/backend/internal/timeline/domain"
	timelinerepo "milestone-tracker/backend/internal/timeline/repository"
)

func main() {
	hashPassword := flag.String("hash", "", "Print a bcrypt hash of the given password for AUTH_USERS and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *hashPassword != "" {
		hash, err := security.NewHasher(cfg.BcryptCost).Hash([]byte(*hashPassword))
		if err != nil {
			log.Fatalf("hash: %v", err)
		}
		fmt.Println(hash)
		return
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := audit.WithActor(context.Background(), audit.SystemActor)

	plans := planrepo.NewPostgresRepository(conn)
	existing, err := plans.List(ctx)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	if len(existing) > 0 {
		log.Println("seed: sample data already present, nothing to do")
		return
	}

	seedPlans(ctx, plans)
	seedQuestions(ctx, quizrepo.NewPostgresQuestionRepository(conn))
	seedEvents(ctx, timelinerepo.NewPostgresRepository(conn))
	log.Println("seed: done")
}

func seedPlans(ctx context.Context, repo *planrepo.PostgresRepository) {
	target := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []*plandomain.DreamPlan{
		{
			Title:       "Kapadokya'da balon turu",
			Description: "Gün doğumunda balona binmek",
			TargetDate:  &target,
			Status:      plandomain.PlanStatusPlanned,
			ExtraNotes:  "Nisan-Haziran arası en iyi dönem",
		},
		{
			Title:       "Birlikte yemek kursu",
			Description: "İtalyan mutfağı atölyesine katılmak",
			Status:      plandomain.PlanStatusInProgress,
		},
	} {
		if err := repo.Create(ctx, p); err != nil {
			log.Fatalf("seed plan %q: %v", p.Title, err)
		}
	}
}

func seedQuestions(ctx context.Context, repo *quizrepo.PostgresQuestionRepository) {
	for _, q := range []*quizdomain.QuizQuestion{
		{
			Question:      "İlk buluşmamızda hangi filmi izledik?",
			Options:       json.RawMessage(`{"a":"Amélie","b":"Inception","c":"Coco"}`),
			CorrectOption: 0,
			Explanation:   "Sinemadan sonra yağmurda yürümüştük.",
			Difficulty:    quizdomain.DifficultyEasy,
		},
		{
			Question:      "İlk tatilimizde hangi şehre gittik?",
			Options:       json.RawMessage(`{"a":"İzmir","b":"Antalya","c":"Trabzon"}`),
			CorrectOption: 1,
			Difficulty:    quizdomain.DifficultyMedium,
		},
	} {
		if err := repo.Create(ctx, q); err != nil {
			log.Fatalf("seed question: %v", err)
		}
	}
}

func seedEvents(ctx context.Context, repo *timelinerepo.PostgresRepository) {
	for _, e := range []*timelinedomain.TimelineEvent{
		{
			Title:           "Tanıştığımız gün",
			EventDate:       time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC),
			Description:     "Ortak arkadaşımızın doğum günü partisi",
			InteractionType: timelinedomain.InteractionNone,
		},
		{
			Title:              "İlk yıl dönümü",
			EventDate:          time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC),
			Description:        "Boğazda akşam yemeği",
			InteractionType:    timelinedomain.InteractionQuiz,
			InteractionPayload: json.RawMessage(`{"quizDifficulty":"EASY","questionCount":5}`),
		},
	} {
		if err := repo.Create(ctx, e); err != nil {
			log.Fatalf("seed event %q: %v", e.Title, err)
		}
	}
}
