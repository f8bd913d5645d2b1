package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Telegram configuration
	BotToken        string `long:"bot-token" env:"BOT_TOKEN" description:"Telegram bot token (required)" required:"true"`
	AdminID         int64  `long:"admin-id" env:"ADMIN_ID" description:"Telegram user ID of the bot administrator"`
	BotUsername     string `long:"bot-username" env:"BOT_USERNAME" default:"GovtJobsAlertBot" description:"Bot username without @"`
	OwnerUsername   string `long:"owner-username" env:"OWNER_USERNAME" description:"Owner username without @"`
	ChannelUsername string `long:"channel-username" env:"CHANNEL_USERNAME" description:"Official channel username without @"`

	// Enrichment providers
	GeminiAPIKey string `long:"gemini-api-key" env:"GEMINI_API_KEY" description:"Google Gemini API key (primary enrichment provider)"`
	GroqAPIKey   string `long:"groq-api-key" env:"GROQ_API_KEY" description:"Groq API key (fallback enrichment provider)"`

	// Storage
	DBPath string `long:"db-path" env:"DB_PATH" default:"./data/bot.db" description:"Path to the SQLite database file"`

	// Application configuration
	Port          string `long:"port" env:"PORT" default:"8080" description:"HTTP status server port"`
	SourcesFile   string `long:"sources-file" env:"SOURCES_FILE" description:"Optional YAML file overriding the built-in feed source list"`
	FetchInterval int    `long:"fetch-interval" env:"FETCH_INTERVAL" default:"30" description:"Fetch cycle interval in minutes"`
	WarmupDelay   int    `long:"warmup-delay" env:"WARMUP_DELAY" default:"30" description:"Delay before the first fetch cycle in seconds"`
	CycleTimeout  int    `long:"cycle-timeout" env:"CYCLE_TIMEOUT" default:"300" description:"Overall timeout per fetch cycle in seconds"`
	EnrichTimeout int    `long:"enrich-timeout" env:"ENRICH_TIMEOUT" default:"60" description:"Timeout per enrichment provider call in seconds"`
	SendDelay     int    `long:"send-delay" env:"SEND_DELAY" default:"500" description:"Pacing delay between destination sends in milliseconds"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"Asia/Kolkata" description:"Timezone for timestamps (e.g., UTC, Asia/Kolkata)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		BotToken:        raw.BotToken,
		AdminID:         raw.AdminID,
		BotUsername:     raw.BotUsername,
		OwnerUsername:   raw.OwnerUsername,
		ChannelUsername: raw.ChannelUsername,
		GeminiAPIKey:    raw.GeminiAPIKey,
		GroqAPIKey:      raw.GroqAPIKey,
		DBPath:          raw.DBPath,
		Port:            raw.Port,
		SourcesFile:     raw.SourcesFile,
		FetchInterval:   raw.FetchInterval,
		WarmupDelay:     raw.WarmupDelay,
		CycleTimeout:    raw.CycleTimeout,
		EnrichTimeout:   raw.EnrichTimeout,
		SendDelay:       raw.SendDelay,
		UserAgent:       raw.UserAgent,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
