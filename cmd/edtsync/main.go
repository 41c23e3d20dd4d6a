package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"edtsync/internal/ade"
	"edtsync/internal/config"
	"edtsync/internal/ical"
	"edtsync/internal/match"
	"edtsync/internal/mykomunote"
	"edtsync/internal/report"
)

var validStrategies = []string{match.StrategyExhaustive, match.StrategyGreedy, match.StrategyMatching}

func main() {
	// Define arguments
	envPtr := flag.String("env", "", "Path to a .env file; by default the environment (plus an optional ./.env) is used")
	strategyPtr := flag.String("strategy", match.StrategyExhaustive, `Room-resolution strategy. Allowed values are:
- "exhaustive" (enumerate every injective course-room pairing and keep the best total score, the default),
- "greedy" (each course independently takes its best room, no injectivity) and
- "matching" (largest confidence-thresholded bipartite matching, maximizes the number of resolved courses)`)
	minScorePtr := flag.Float64("minscore", match.DefaultConfig().MinScore, "Minimum confidence score under which a course is left without a room")
	daysPtr := flag.Int("days", 0, "Horizon in days; 0 uses EDT_HORIZON_DAYS from the environment")
	outPtr := flag.String("out", "edt_global.ics", "Path of the merged calendar file")
	reportPtr := flag.String("report", "", "Optional path of a CSV matching report")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)

	// Validate arguments
	if !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	} else if *minScorePtr < 0 {
		log.Fatalf("minscore must be non-negative: %v", *minScorePtr)
	}

	// Load deployment configuration
	cfg, err := config.Load(*envPtr)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("cannot load timezone %v: %v", cfg.Timezone, err)
	}
	days := cfg.HorizonDays
	if *daysPtr > 0 {
		days = *daysPtr
	}

	now := time.Now().In(location)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, location)
	end := start.AddDate(0, 0, days)

	// Fetch the course roster from the portal
	portal := mykomunote.NewClient(mykomunote.Config{
		BaseURL:         cfg.MykBaseURL,
		Username:        cfg.MykUsername,
		Password:        cfg.MykPassword,
		APIEndpoint:     cfg.MykAPIEndpoint,
		ModuleAgenda:    cfg.MykModuleAgenda,
		ActionAgenda:    cfg.MykActionAgenda,
		ObligatoryClass: cfg.MykObligatoryClass,
	})
	if err := portal.Login(); err != nil {
		log.Fatalf("portal login failed: %v", err)
	}
	courses, err := portal.FetchAgenda(start, end, location)
	if err != nil {
		log.Fatalf("cannot fetch course roster: %v", err)
	}

	// Fetch the room allocations
	rooms, err := ade.NewClient(ade.Config{
		BaseURL:   cfg.AdeBaseURL,
		Resources: cfg.AdeResources,
		ProjectID: cfg.AdeProjectID,
	}).FetchRooms(start, end)
	if err != nil {
		log.Fatalf("cannot fetch room feed: %v", err)
	}
	log.Printf("fetched %v courses and %v room events", len(courses), len(rooms))

	// Resolve rooms
	engineCfg := match.DefaultConfig()
	engineCfg.Strategy = strategy
	engineCfg.MinScore = *minScorePtr
	matcher, err := match.New(engineCfg, location)
	if err != nil {
		log.Fatalf("cannot initialize matcher: %v", err)
	}
	decisions := matcher.Resolve(courses, rooms)

	resolved := 0
	for _, decision := range decisions {
		if decision.Resolved {
			resolved++
		}
	}
	log.Printf("resolved rooms for %v/%v courses", resolved, len(decisions))

	// Build and write the merged calendar
	calendar := ical.BuildGlobal(courses, decisions, ical.Options{
		UnessBaseURL: cfg.UnessBaseURL,
		UEToUness:    cfg.UEToUness,
		Location:     location,
	})
	if err := os.WriteFile(*outPtr, []byte(calendar.Serialize()), 0666); err != nil {
		log.Fatalf("cannot write calendar file: %v", err)
	}

	if *reportPtr != "" {
		if err := report.Write(*reportPtr, decisions); err != nil {
			log.Fatalf("cannot write matching report: %v", err)
		}
	}

	fmt.Printf("%v written (%v events)\n", *outPtr, len(courses))
}
