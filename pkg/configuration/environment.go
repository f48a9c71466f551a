package configuration

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ostech/hrconsole/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type DirectoryOptions struct {
	BaseURL string        `env:"DIRECTORY_API_URL" envDefault:"https://69373625f8dc350aff33ae81.mockapi.io/api/v1"`
	Timeout time.Duration `env:"DIRECTORY_TIMEOUT" envDefault:"15s"`
}

func (d *DirectoryOptions) Validate() error {
	if d.BaseURL == "" {
		return fmt.Errorf("directory configuration error: DIRECTORY_API_URL must not be empty")
	}
	if d.Timeout <= 0 {
		return fmt.Errorf("directory configuration error: DIRECTORY_TIMEOUT must be positive, got %s", d.Timeout)
	}
	return nil
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"hrconsole"`
}

// RosterOptions holds the select-option rosters surfaced in the drawer and
// detail forms. They are deployment configuration, not reference data served
// by the directory API.
type RosterOptions struct {
	Clients           []string `env:"CLIENT_ROSTER" envSeparator:"," envDefault:"3M Library Systems,Alpha Technologies,BlueOrbit Solar"`
	WorksiteLocations []string `env:"WORKSITE_LOCATIONS" envSeparator:"," envDefault:"NYC Office,Remote,LA Office"`
	PayGroups         []string `env:"PAY_GROUPS" envSeparator:"," envDefault:"Weekly,Bi-Weekly,Monthly"`
	TaxTypes          []string `env:"TAX_TYPES" envSeparator:"," envDefault:"W-2,1099"`
	Genders           []string `env:"GENDERS" envSeparator:"," envDefault:"Female,Male,Other"`
	MaritalStatuses   []string `env:"MARITAL_STATUSES" envSeparator:"," envDefault:"Single,Married,Divorced"`
}

type Configuration struct {
	Directory     DirectoryOptions
	OpenTelemetry OpenTelemetryOptions
	Rosters       RosterOptions

	ServerPort       int    `env:"PORT" envDefault:"3200"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress    string `env:"-"`
	Domain           string `env:"DOMAIN" envDefault:"localhost"`
	Origin           string `env:"ORIGIN" envDefault:"http://localhost:3200"`

	// PageSize is the fixed list-view page size. All filtering and paging is
	// client-side over the full collection; see the list-view controller.
	PageSize int `env:"PAGE_SIZE" envDefault:"15"`

	// SSNVisibleDigits is the length of the unmasked trailing SSN segment
	// shown in list rows.
	SSNVisibleDigits int `env:"SSN_VISIBLE_DIGITS" envDefault:"4"`

	MaxUploadSize   int64  `env:"MAX_UPLOAD_SIZE" envDefault:"8388608"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"error"`
	LogPath         string `env:"LOG_PATH" envDefault:"./logs/app.log"`
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	RealIPHeader    string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production {
		return "https"
	}
	return "http"
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}

	if err := c.Directory.Validate(); err != nil {
		return err
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("configuration error: PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.SSNVisibleDigits < 0 {
		return fmt.Errorf("configuration error: SSN_VISIBLE_DIGITS must be non-negative, got %d", c.SSNVisibleDigits)
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}
	if os.Getenv("ORIGIN") == "" && c.GoAppEnvironment != Production {
		c.Origin = fmt.Sprintf("%s://%s:%d", c.Scheme(), c.Domain, c.ServerPort)
	}

	return nil
}

func (c *Configuration) Unload() {
	if c.logFile != nil {
		_ = c.logFile.Close()
	}
}
