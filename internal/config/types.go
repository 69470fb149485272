package config

import "time"

// settings for the terminal client
type ClientConfig struct {
	Environment       string        `env:"FOODMAP_ENV" envDefault:"development"`
	APIURL            string        `env:"FOODMAP_API_URL"`
	Language          string        `env:"FOODMAP_LANG" envDefault:"ko"`
	RequestTimeout    time.Duration `env:"FOODMAP_REQUEST_TIMEOUT" envDefault:"10s"`
	RequestsPerSecond float64       `env:"FOODMAP_REQUESTS_PER_SECOND" envDefault:"10"`
	RequestBurst      int           `env:"FOODMAP_REQUEST_BURST" envDefault:"5"`
	LogFile           string        `env:"FOODMAP_LOG_FILE" envDefault:"foodmap.log"`
	OAuthTimeout      time.Duration `env:"FOODMAP_OAUTH_TIMEOUT" envDefault:"3m"`
}

// settings for the local development API
type DevAPIConfig struct {
	Environment    string   `env:"FOODMAP_ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"5000"`
	BaseURL        string   `env:"BASE_URL" envDefault:"http://localhost:5000"`
	SessionSecret  string   `env:"SESSION_SECRET,required"`
	JWTSecret      string   `env:"JWT_SECRET,required"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	LoginRateLimit string   `env:"LOGIN_RATE_LIMIT" envDefault:"20-M"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	NaverClientID      string `env:"NAVER_CLIENT_ID"`
	NaverClientSecret  string `env:"NAVER_CLIENT_SECRET"`

	// seeded on startup so the admin console is reachable locally
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@ajou.ac.kr"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin1234"`
}

// command line overrides for the client
type ClientFlags struct {
	APIURL   string
	Language string
	LogFile  string
}
