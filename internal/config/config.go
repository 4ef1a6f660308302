package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the todo manager
type Config struct {
	Database    DatabaseConfig
	Validation  ValidationConfig
	Server      ServerConfig
	Auth        AuthConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TODO_DB_DIR"`
	Filename       string        `env:"TODO_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TODO_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"TODO_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"TODO_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration.
// The console shape historically allows 256-character descriptions while the
// HTTP shape caps titles and descriptions at 255; the two bounds stay
// independently configurable rather than being unified.
type ValidationConfig struct {
	TitleMaxLength       int `env:"TODO_VALIDATION_TITLE_MAX"`
	DescriptionMaxLength int `env:"TODO_VALIDATION_DESCRIPTION_MAX"`
	CategoryMaxLength    int `env:"TODO_VALIDATION_CATEGORY_MAX"`
	MaxTags              int `env:"TODO_VALIDATION_MAX_TAGS"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `env:"TODO_SERVER_ADDR"`
	ReadTimeout     time.Duration `env:"TODO_SERVER_READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"TODO_SERVER_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"TODO_SERVER_SHUTDOWN_TIMEOUT"`
	DefaultPageSize int           `env:"TODO_SERVER_DEFAULT_PAGE_SIZE"`
	MaxPageSize     int           `env:"TODO_SERVER_MAX_PAGE_SIZE"`
}

// AuthConfig holds actor-resolution configuration. Tokens maps opaque bearer
// credentials to actor identifiers for the built-in static resolver; external
// verifiers ignore it.
type AuthConfig struct {
	Tokens map[string]string `env:"TODO_AUTH_TOKENS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT"`
	Verbose bool          `env:"TODO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".todo")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "todo.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			TitleMaxLength:       255,
			DescriptionMaxLength: 255,
			CategoryMaxLength:    100,
			MaxTags:              20,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Auth: AuthConfig{
			Tokens: map[string]string{},
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// NewConsoleConfig creates a configuration tuned for the single-user console
// shape, which keeps the original 256-character description bound.
func NewConsoleConfig() *Config {
	cfg := NewConfig()
	cfg.Validation.DescriptionMaxLength = 256
	cfg.Validation.TitleMaxLength = 256
	return cfg
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TODO_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("TODO_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	// Validation configuration
	if maxLen := os.Getenv("TODO_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}
	if maxLen := os.Getenv("TODO_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.DescriptionMaxLength = n
		}
	}
	if maxLen := os.Getenv("TODO_VALIDATION_CATEGORY_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.CategoryMaxLength = n
		}
	}
	if maxTags := os.Getenv("TODO_VALIDATION_MAX_TAGS"); maxTags != "" {
		if n, err := strconv.Atoi(maxTags); err == nil {
			c.Validation.MaxTags = n
		}
	}

	// Server configuration
	if addr := os.Getenv("TODO_SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if timeout := os.Getenv("TODO_SERVER_READ_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ReadTimeout = d
		}
	}
	if timeout := os.Getenv("TODO_SERVER_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.WriteTimeout = d
		}
	}
	if timeout := os.Getenv("TODO_SERVER_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ShutdownTimeout = d
		}
	}
	if size := os.Getenv("TODO_SERVER_DEFAULT_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.Server.DefaultPageSize = n
		}
	}
	if size := os.Getenv("TODO_SERVER_MAX_PAGE_SIZE"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			c.Server.MaxPageSize = n
		}
	}

	// Auth configuration: TODO_AUTH_TOKENS holds comma-separated token=actor pairs
	if tokens := os.Getenv("TODO_AUTH_TOKENS"); tokens != "" {
		parsed := ParseTokenPairs(tokens)
		if len(parsed) > 0 {
			c.Auth.Tokens = parsed
		}
	}

	// Application configuration
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// ParseTokenPairs parses a comma-separated list of token=actor pairs
func ParseTokenPairs(s string) map[string]string {
	pairs := map[string]string{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		token, actor, ok := strings.Cut(part, "=")
		if !ok || token == "" || actor == "" {
			continue
		}
		pairs[token] = actor
	}
	return pairs
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}
	if c.Validation.CategoryMaxLength < 1 {
		return &ConfigError{Field: "validation.category_max_length", Message: "category maximum length must be at least 1"}
	}
	if c.Validation.MaxTags < 0 {
		return &ConfigError{Field: "validation.max_tags", Message: "maximum tag count cannot be negative"}
	}

	// Validate server configuration
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "server address cannot be empty"}
	}
	if c.Server.DefaultPageSize < 1 {
		return &ConfigError{Field: "server.default_page_size", Message: "default page size must be at least 1"}
	}
	if c.Server.MaxPageSize < c.Server.DefaultPageSize {
		return &ConfigError{Field: "server.max_page_size", Message: "maximum page size must not be smaller than the default page size"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
