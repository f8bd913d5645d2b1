package cfg

type Cfg struct {
	// Telegram configuration
	BotToken        string
	AdminID         int64
	BotUsername     string
	OwnerUsername   string
	ChannelUsername string

	// Enrichment providers
	GeminiAPIKey string
	GroqAPIKey   string

	// Storage
	DBPath string

	// Application configuration
	Port          string
	SourcesFile   string
	FetchInterval int // minutes
	WarmupDelay   int // seconds
	CycleTimeout  int // seconds
	EnrichTimeout int // seconds
	SendDelay     int // milliseconds

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
