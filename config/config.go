package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config reads a variable from the environment, loading .env on first use.
func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment")
		}
	})
	return os.Getenv(key)
}

func ConfigInt(key string, fallback int) int {
	v := Config(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

type PesapalConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	BaseURL        string
	CallbackURL    string
	NotificationID string
	Currency       string
	Timeout        time.Duration
}

func LoadPesapal() PesapalConfig {
	currency := Config("PESAPAL_CURRENCY")
	if currency == "" {
		currency = "UGX"
	}
	return PesapalConfig{
		ConsumerKey:    Config("PESAPAL_CONSUMER_KEY"),
		ConsumerSecret: Config("PESAPAL_CONSUMER_SECRET"),
		BaseURL:        strings.TrimRight(Config("PESAPAL_BASE_URL"), "/"),
		CallbackURL:    Config("PESAPAL_CALLBACK_URL"),
		NotificationID: Config("PESAPAL_NOTIFICATION_ID"),
		Currency:       currency,
		Timeout:        10 * time.Second,
	}
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string
}

func LoadSMTP() SMTPConfig {
	return SMTPConfig{
		Host:      Config("SMTP_HOST"),
		Port:      ConfigInt("SMTP_PORT", 587),
		Username:  Config("SMTP_USERNAME"),
		Password:  Config("SMTP_PASSWORD"),
		From:      Config("SMTP_FROM"),
		Recipient: Config("CONTACT_RECIPIENT"),
	}
}

type YouTubeConfig struct {
	APIKey    string
	ChannelID string
}

func LoadYouTube() YouTubeConfig {
	return YouTubeConfig{
		APIKey:    Config("YOUTUBE_API_KEY"),
		ChannelID: Config("YOUTUBE_CHANNEL_ID"),
	}
}

// StatusRule maps a substring of the gateway's free-text payment status
// description to an internal ticket status. Rules are evaluated in order
// against the lower-cased description; no match falls back to pending.
type StatusRule struct {
	Substring string
	Status    string
}

var PaymentStatusRules = []StatusRule{
	{Substring: "completed", Status: "confirmed"},
	{Substring: "successful", Status: "confirmed"},
	{Substring: "failed", Status: "failed"},
	{Substring: "cancelled", Status: "failed"},
}

func MapPaymentStatus(description string) string {
	d := strings.ToLower(description)
	for _, rule := range PaymentStatusRules {
		if strings.Contains(d, rule.Substring) {
			return rule.Status
		}
	}
	return "pending"
}
