// Command seed_demo loads a small demo data set: three candidates and three
// positions into PostgreSQL, and a travel-time table into Redis.
//
// Usage:
//
//	go run cmd/tools/seed_demo/main.go
//
// DATABASE_URL enables profile seeding; REDIS_ADDR enables travel table
// publishing. At least one must be set.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jonathan/match-engine/internal/db"
	"github.com/jonathan/match-engine/internal/travel"
	"github.com/jonathan/match-engine/internal/types"
)

func demoCandidates() []types.Candidate {
	return []types.Candidate{
		{
			ID:              "demo-cand-backend",
			Name:            "Nora Petit",
			Skills:          types.SkillSetFromNames("Python", "Django", "PostgreSQL", "Docker"),
			Location:        types.Location{City: "Lyon", Country: "France"},
			ExperienceYears: 5,
			Education:       types.EducationBachelor,
		},
		{
			ID:              "demo-cand-data",
			Name:            "Karim Haddad",
			Skills:          types.SkillSetFromNames("Python", "Spark", "Airflow", "SQL"),
			Location:        types.Location{City: "Paris", Country: "France"},
			ExperienceYears: 8,
			Education:       types.EducationMaster,
		},
		{
			ID:              "demo-cand-junior",
			Name:            "Lea Fontaine",
			Skills:          types.SkillSetFromNames("JavaScript", "React"),
			Location:        types.Location{City: "Marseille", Country: "France"},
			ExperienceYears: 1,
			Education:       types.EducationBachelor,
		},
	}
}

func demoPositions() []types.Position {
	backend := mustRange(3, 8)
	data := mustRange(5, 12)
	junior := mustRange(0, 3)
	return []types.Position{
		{
			ID:             "demo-pos-backend",
			Title:          "Backend Engineer",
			Company:        "DemoCorp",
			RequiredSkills: types.SkillSetFromNames("Python", "Django"),
			Location:       types.Location{City: "Lyon", Country: "France"},
			Experience:     &backend,
			Education:      types.EducationBachelor,
			OffersRemote:   true,
		},
		{
			ID:             "demo-pos-data",
			Title:          "Senior Data Engineer",
			Company:        "DemoCorp",
			RequiredSkills: types.SkillSetFromNames("Spark", "Airflow", "Python"),
			Location:       types.Location{City: "Paris", Country: "France"},
			Experience:     &data,
			Education:      types.EducationMaster,
		},
		{
			ID:             "demo-pos-frontend",
			Title:          "Junior Frontend Developer",
			Company:        "DemoStart",
			RequiredSkills: types.SkillSetFromNames("JavaScript", "React"),
			Location:       types.Location{City: "Marseille", Country: "France"},
			Experience:     &junior,
			OffersRemote:   true,
		},
	}
}

func demoRoutes() []travel.Route {
	return []travel.Route{
		{From: "Paris", To: "Lyon", Minutes: 115},
		{From: "Paris", To: "Marseille", Minutes: 185},
		{From: "Lyon", To: "Marseille", Minutes: 100},
	}
}

func mustRange(min, max float64) types.ExperienceRange {
	r, err := types.BetweenYears(min, max)
	if err != nil {
		panic(err)
	}
	return r
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	redisAddr := os.Getenv("REDIS_ADDR")
	if dsn == "" && redisAddr == "" {
		fmt.Fprintln(os.Stderr, "ERROR: set DATABASE_URL and/or REDIS_ADDR")
		os.Exit(1)
	}

	ctx := context.Background()

	if dsn != "" {
		seedProfiles(ctx, dsn)
	}
	if redisAddr != "" {
		seedTravelTable(ctx, redisAddr)
	}
}

func seedProfiles(ctx context.Context, dsn string) {
	database, err := db.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Migration failed: %v\n", err)
		os.Exit(1)
	}

	for _, candidate := range demoCandidates() {
		if err := database.UpsertCandidate(ctx, candidate); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to seed candidate %s: %v\n", candidate.ID, err)
			os.Exit(1)
		}
	}
	for _, position := range demoPositions() {
		if err := database.UpsertPosition(ctx, position); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to seed position %s: %v\n", position.ID, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded %d candidates and %d positions\n", len(demoCandidates()), len(demoPositions()))
}

func seedTravelTable(ctx context.Context, redisAddr string) {
	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer func() { _ = client.Close() }()

	routes := demoRoutes()
	if err := travel.PublishToRedis(ctx, client, travel.DefaultRedisKey, routes); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to publish travel table: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Published %d travel routes to %s\n", len(routes), travel.DefaultRedisKey)
}
