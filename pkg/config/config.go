package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
		LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	}
	Postgres struct {
		Port     int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
		User     string `env:"POSTGRES_USER"`
		Pass     string `env:"POSTGRES_PASS"`
		Name     string `env:"POSTGRES_NAME"`
		SslMode  string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
		MaxConns int32  `env:"POSTGRES_MAX_CONNS" env-default:"4"`
	}
	Storage struct {
		Driver     string `env:"STORAGE_DRIVER" env-default:"sqlite"`
		SQLitePath string `env:"STORAGE_SQLITE_PATH" env-default:"./.sites/ledger.db"`
	}
	Telegram struct {
		User  int64  `env:"TELEGRAM_USER"`
		Token string `env:"TELEGRAM_TOKEN"`
	}
	Site struct {
		Name                string   `env:"SITE_NAME" env-default:"StarsAVN"`
		APIURL              string   `env:"SITE_API_URL" env-default:"https://www.starsavn.com/api2/v2"`
		Cookie              string   `env:"SITE_COOKIE"`
		UserAgent           string   `env:"SITE_USER_AGENT" env-default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36"`
		DateFormat          string   `env:"SITE_DATE_FORMAT" env-default:"%d-%m-%Y"`
		FileDirectoryFormat string   `env:"SITE_FILE_DIRECTORY_FORMAT" env-default:"{site_name}/{model_username}/{api_type}/{value}/{media_type}"`
		FilenameFormat      string   `env:"SITE_FILENAME_FORMAT" env-default:"{filename}.{ext}"`
		VideoQuality        string   `env:"SITE_VIDEO_QUALITY" env-default:"source"`
		IgnoredKeywords     []string `env:"SITE_IGNORED_KEYWORDS" env-separator:","`
		TextLength          int      `env:"SITE_TEXT_LENGTH" env-default:"255"`
		RequestsPerSecond   float64  `env:"SITE_REQUESTS_PER_SECOND" env-default:"2"`
		RequestBurst        int      `env:"SITE_REQUEST_BURST" env-default:"3"`
	}
	Profile struct {
		Username          string `env:"PROFILE_USERNAME" env-default:"default"`
		DownloadDirectory string `env:"PROFILE_DOWNLOAD_DIRECTORY" env-default:"./.sites"`
		MetadataDirectory string `env:"PROFILE_METADATA_DIRECTORY" env-default:"./.profiles/default/Metadata"`
		RandomString      string `env:"PROFILE_RANDOM_STRING"`
	}
	Parser struct {
		ScrapeInterval      string   `env:"PARSER_SCRAPE_INTERVAL" env-default:"0 */6 * * *"`
		MassMessageInterval string   `env:"PARSER_MASS_MESSAGE_INTERVAL" env-default:"30 */12 * * *"`
		LedgerRetention     string   `env:"PARSER_LEDGER_RETENTION" env-default:"720h"`
		Identifiers         []string `env:"PARSER_IDENTIFIERS" env-separator:","`
		Workers             int      `env:"PARSER_WORKERS" env-default:"5"`
		MassMessages        bool     `env:"PARSER_MASS_MESSAGES" env-default:"true"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		// .env is optional
		_ = godotenv.Load()

		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the postgres connection string in URL form.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}
