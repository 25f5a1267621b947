package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Generation GenerationConfig
	Simulation SimulationConfig
	Storage    StorageConfig
	Database   DatabaseConfig
	LLM        LLMConfig
	Redis      RedisConfig
	Server     ServerConfig
	Logging    LoggingConfig
}

type GenerationConfig struct {
	OrganizationCount int `mapstructure:"organization_count"`
	TeamCount         int `mapstructure:"team_count"`
	UserCount         int `mapstructure:"user_count"`
	ProjectCount      int `mapstructure:"project_count"`
	TaskCount         int `mapstructure:"task_count"`
	// SubtaskCount and CommentCount cap the probability-driven satellite
	// generators; zero means uncapped.
	SubtaskCount int `mapstructure:"subtask_count"`
	CommentCount int `mapstructure:"comment_count"`

	SubtaskProbability    float64 `mapstructure:"subtask_probability"`
	CommentProbability    float64 `mapstructure:"comment_probability"`
	UnassignedProbability float64 `mapstructure:"unassigned_probability"`

	// CompletionRates overrides the per-archetype task completion rate.
	CompletionRates map[string]float64 `mapstructure:"completion_rates"`

	// Seed for the random source; zero seeds from the clock so each run
	// yields a different dataset.
	Seed int64 `mapstructure:"seed"`

	DataDir string `mapstructure:"data_dir"`
}

type SimulationConfig struct {
	StartDate string `mapstructure:"start_date"`
	EndDate   string `mapstructure:"end_date"`
}

// Window parses the simulation date range.
func (s *SimulationConfig) Window() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", s.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid simulation start date %q: %w", s.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", s.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid simulation end date %q: %w", s.EndDate, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("simulation end %s precedes start %s", s.EndDate, s.StartDate)
	}
	return start, end, nil
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"` // sqlite, postgres or memory
	Path   string `mapstructure:"path"`   // sqlite database file
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	SSLMode      string `mapstructure:"ssl_mode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type LLMConfig struct {
	Provider  string        `mapstructure:"provider"`
	Model     string        `mapstructure:"model"`
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	MaxTokens int           `mapstructure:"max_tokens"`
}

type RedisConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Password  string   `mapstructure:"password"`
	DB        int      `mapstructure:"db"`
	PoolSize  int      `mapstructure:"pool_size"`
}

type ServerConfig struct {
	HTTPPort    int           `mapstructure:"http_port"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/workseed/")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("WORKSEED")
	viper.AutomaticEnv()

	viper.SetDefault("generation.organization_count", 1)
	viper.SetDefault("generation.team_count", 15)
	viper.SetDefault("generation.user_count", 200)
	viper.SetDefault("generation.project_count", 45)
	viper.SetDefault("generation.task_count", 5000)
	viper.SetDefault("generation.subtask_count", 0)
	viper.SetDefault("generation.comment_count", 0)
	viper.SetDefault("generation.subtask_probability", 0.35)
	viper.SetDefault("generation.comment_probability", 0.60)
	viper.SetDefault("generation.unassigned_probability", 0.15)
	viper.SetDefault("generation.completion_rates", map[string]float64{
		"sprint":             0.75,
		"bug_tracking":       0.65,
		"product_roadmap":    0.55,
		"marketing_campaign": 0.65,
		"operational":        0.50,
		"ongoing":            0.45,
	})
	viper.SetDefault("generation.seed", 0)
	viper.SetDefault("generation.data_dir", "data")
	viper.SetDefault("simulation.start_date", "2023-07-01")
	viper.SetDefault("simulation.end_date", "2024-01-07")
	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.path", "output/workseed.sqlite")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("llm.provider", "openai")
	viper.SetDefault("llm.model", "gpt-3.5-turbo")
	viper.SetDefault("llm.base_url", "https://api.openai.com/v1")
	viper.SetDefault("llm.timeout", "30s")
	viper.SetDefault("llm.max_tokens", 300)
	viper.SetDefault("redis.pool_size", 100)
	viper.SetDefault("server.http_port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
