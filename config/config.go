package config

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultDraftTTL is how long an open draft survives without being
// confirmed or canceled.
const DefaultDraftTTL = 15 * time.Minute

// Config holds the project config values
type Config struct {
	DiscordToken      string
	GuildIDs          []string
	SpreadsheetID     string
	GoogleCredentials string
	AuditChannelID    string
	AuditEmail        string
	SendgridAPIKey    string
	CloudinaryURL     string
	Port              string
	DraftTTL          time.Duration
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		DiscordToken:      os.Getenv("DISCORD_TOKEN"),
		GuildIDs:          splitList(os.Getenv("GUILD_IDS")),
		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		GoogleCredentials: os.Getenv("GOOGLE_SHEETS_CREDENTIALS"),
		AuditChannelID:    os.Getenv("AUDIT_CHANNEL_ID"),
		AuditEmail:        os.Getenv("AUDIT_EMAIL"),
		SendgridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		CloudinaryURL:     os.Getenv("CLOUDINARY_URL"),
		Port:              os.Getenv("PORT"),
		DraftTTL:          draftTTL(os.Getenv("DRAFT_TTL")),
	}

}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func draftTTL(raw string) time.Duration {
	if raw == "" {
		return DefaultDraftTTL
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		zap.S().Warnw("invalid DRAFT_TTL, using default",
			"value", raw,
			"default", DefaultDraftTTL,
		)
		return DefaultDraftTTL
	}
	return d
}
