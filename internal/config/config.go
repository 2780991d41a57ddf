package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port      string `toml:"port"`
	StaticDir string `toml:"static_dir"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text, json or logfmt
}

type LLMConfig struct {
	Provider     string  `toml:"provider"`
	Model        string  `toml:"model"`
	APIKey       string  `toml:"api_key"`
	BaseURL      string  `toml:"base_url"`
	SystemPrompt string  `toml:"system_prompt"`
	MaxTokens    int     `toml:"max_tokens"`
	Temperature  float32 `toml:"temperature"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

// DatasetConfig describes where the customer list lives and which column
// holds the display name.
type DatasetConfig struct {
	Path       string `toml:"path"`
	Delimiter  string `toml:"delimiter"`
	NameColumn int    `toml:"name_column"` // zero-based, used when NameHeader is empty
	NameHeader string `toml:"name_header"`
	Sheet      string `toml:"sheet"` // xlsx only, defaults to the first sheet
	HeaderRows int    `toml:"header_rows"`
}

// RecommendationConfig holds the prompt templates and limits of the chat flow.
// Initial takes (data, question), Revisit takes (data, question, initial
// recommendation) and Validate takes (question).
type RecommendationConfig struct {
	Initial           string `toml:"initial"`
	Revisit           string `toml:"revisit"`
	Validate          string `toml:"validate"`
	WordCap           int    `toml:"word_cap"`
	MaxBullets        int    `toml:"max_bullets"`
	MaxQuestionLength int    `toml:"max_question_length"`
}

type ExtractionConfig struct {
	WindowPadding int `toml:"window_padding"`
}

type Config struct {
	Server         ServerConfig         `toml:"server"`
	Log            LogConfig            `toml:"log"`
	LLM            LLMConfig            `toml:"llm"`
	Memgraph       MemgraphConfig       `toml:"memgraph"`
	Dataset        DatasetConfig        `toml:"dataset"`
	Recommendation RecommendationConfig `toml:"recommendation"`
	Extraction     ExtractionConfig     `toml:"extraction"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Log:    LogConfig{Level: "info", Format: "text"},
		LLM:    LLMConfig{MaxTokens: 1000},
		Dataset: DatasetConfig{
			Path:       "data/customers.csv",
			Delimiter:  ";",
			NameColumn: 1,
			HeaderRows: 1,
		},
		Recommendation: RecommendationConfig{
			WordCap:           80,
			MaxBullets:        5,
			MaxQuestionLength: 500,
		},
		Extraction: ExtractionConfig{WindowPadding: 20},
	}
}

// Load reads the TOML file at path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides file values with environment variables and fills in the
// local Ollama defaults when no provider is configured.
func (c *Config) ApplyEnv() {
	overrides := map[string]*string{
		"PORT":              &c.Server.Port,
		"LOG_LEVEL":         &c.Log.Level,
		"LOG_FORMAT":        &c.Log.Format,
		"LLM_PROVIDER":      &c.LLM.Provider,
		"LLM_MODEL":         &c.LLM.Model,
		"LLM_API_KEY":       &c.LLM.APIKey,
		"LLM_BASE_URL":      &c.LLM.BaseURL,
		"MEMGRAPH_URI":      &c.Memgraph.URI,
		"MEMGRAPH_USER":     &c.Memgraph.User,
		"MEMGRAPH_PASSWORD": &c.Memgraph.Password,
		"DATASET_PATH":      &c.Dataset.Path,
	}
	for key, field := range overrides {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}

	if v := os.Getenv("WINDOW_PADDING"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Extraction.WindowPadding = n
		}
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = "ollama"
		if c.LLM.Model == "" {
			c.LLM.Model = "gpt-oss:latest"
		}
		if c.LLM.BaseURL == "" {
			c.LLM.BaseURL = "http://localhost:11434"
		}
	}
}

// HistoryEnabled reports whether a Memgraph endpoint is configured.
func (c *Config) HistoryEnabled() bool {
	return c.Memgraph.URI != ""
}
