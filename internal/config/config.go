// Package config loads the deployment configuration from the environment,
// optionally seeded from a .env file. Everything the upstream portal and feed
// clients need lives here; the matching engine receives its own explicit
// configuration and never reads the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// MyKomunoté portal
	MykUsername        string
	MykPassword        string
	MykBaseURL         string
	MykAPIEndpoint     string
	MykModuleAgenda    string
	MykActionAgenda    string
	MykObligatoryClass string // CSS class of the icon flagging mandatory sessions

	// ADE room-allocation feed
	AdeBaseURL   string
	AdeResources string
	AdeProjectID string

	// UNESS course-page links, keyed by raw UE code
	UnessBaseURL string
	UEToUness    map[string]string

	Timezone    string
	HorizonDays int
}

// Load reads the configuration from the environment. When envFile is not
// empty it is loaded first; a missing default .env is not an error since CI
// environments inject variables directly.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("cannot load env file %v: %w", envFile, err)
		}
	} else {
		godotenv.Load()
	}

	cfg := Config{
		MykUsername:        os.Getenv("MYK_USERNAME"),
		MykPassword:        os.Getenv("MYK_PASSWORD"),
		MykBaseURL:         os.Getenv("MYK_BASE_URL"),
		MykAPIEndpoint:     os.Getenv("MYK_API_ENDPOINT"),
		MykModuleAgenda:    os.Getenv("MYK_MODULE_AGENDA"),
		MykActionAgenda:    os.Getenv("MYK_ACTION_AGENDA"),
		MykObligatoryClass: os.Getenv("MYK_OBLIGATORY_CLASS_SELECTOR"),
		AdeBaseURL:         os.Getenv("ADE_BASE_URL"),
		AdeResources:       os.Getenv("ADE_RESOURCES"),
		AdeProjectID:       os.Getenv("ADE_PROJECT_ID"),
		UnessBaseURL:       os.Getenv("UNESS_BASE_URL"),
		Timezone:           os.Getenv("EDT_TIMEZONE"),
		HorizonDays:        14,
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Europe/Paris"
	}
	if days := os.Getenv("EDT_HORIZON_DAYS"); days != "" {
		parsed, err := strconv.Atoi(days)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("EDT_HORIZON_DAYS must be a positive integer: %v", days)
		}
		cfg.HorizonDays = parsed
	}

	if table := os.Getenv("UNESS_ID_UE_CODE"); table != "" {
		if err := json.Unmarshal([]byte(table), &cfg.UEToUness); err != nil {
			return Config{}, fmt.Errorf("UNESS_ID_UE_CODE is not a valid JSON table: %w", err)
		}
	}

	if missing := cfg.missing(); len(missing) > 0 {
		return Config{}, fmt.Errorf("missing environment variables: %v", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (cfg Config) missing() []string {
	required := map[string]string{
		"MYK_USERNAME":      cfg.MykUsername,
		"MYK_PASSWORD":      cfg.MykPassword,
		"MYK_BASE_URL":      cfg.MykBaseURL,
		"MYK_API_ENDPOINT":  cfg.MykAPIEndpoint,
		"MYK_MODULE_AGENDA": cfg.MykModuleAgenda,
		"MYK_ACTION_AGENDA": cfg.MykActionAgenda,
		"ADE_BASE_URL":      cfg.AdeBaseURL,
		"ADE_RESOURCES":     cfg.AdeResources,
		"ADE_PROJECT_ID":    cfg.AdeProjectID,
	}

	missing := make([]string, 0)
	for name, value := range required {
		if value == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
