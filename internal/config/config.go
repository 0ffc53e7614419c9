package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Qdrant   QdrantConfig
	Gemini   GeminiConfig
	Storage  StorageConfig
	Worker   WorkerConfig
	Scoring  ScoringConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type GeminiConfig struct {
	APIKey string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type WorkerConfig struct {
	Concurrency       int
	RetryMaxAttempts  int
	RetryInitialDelay time.Duration
}

type ScoringConfig struct {
	LexicalWeight     float64
	SemanticWeight    float64
	ReadabilityWeight float64
	ATSWeight         float64
	SemanticThreshold float64
	NormalizationFile string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_analyzer"),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", ""),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "resume_analyzer_embeddings"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Worker: WorkerConfig{
			Concurrency:       getEnvAsInt("WORKER_CONCURRENCY", 3),
			RetryMaxAttempts:  getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			RetryInitialDelay: getEnvAsDuration("RETRY_INITIAL_DELAY", "2s"),
		},
		Scoring: ScoringConfig{
			LexicalWeight:     getEnvAsFloat("WEIGHT_LEXICAL", 0.45),
			SemanticWeight:    getEnvAsFloat("WEIGHT_SEMANTIC", 0.35),
			ReadabilityWeight: getEnvAsFloat("WEIGHT_READABILITY", 0.10),
			ATSWeight:         getEnvAsFloat("WEIGHT_ATS", 0.10),
			SemanticThreshold: getEnvAsFloat("SEMANTIC_THRESHOLD", 0.78),
			NormalizationFile: getEnv("NORMALIZATION_FILE", ""),
		},
	}
}

// Validate rejects broken scoring configuration before any analysis runs.
func (c *Config) Validate() error {
	s := c.Scoring

	for name, w := range map[string]float64{
		"WEIGHT_LEXICAL":     s.LexicalWeight,
		"WEIGHT_SEMANTIC":    s.SemanticWeight,
		"WEIGHT_READABILITY": s.ReadabilityWeight,
		"WEIGHT_ATS":         s.ATSWeight,
	} {
		if w < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, w)
		}
	}

	sum := s.LexicalWeight + s.SemanticWeight + s.ReadabilityWeight + s.ATSWeight
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("score weights must sum to 1.0, got %v", sum)
	}

	if s.SemanticThreshold < 0 || s.SemanticThreshold > 1 {
		return fmt.Errorf("SEMANTIC_THRESHOLD must be within [0,1], got %v", s.SemanticThreshold)
	}

	return nil
}

// LoadNormalizationOverrides reads the optional JSON term-normalization table
// referenced by NORMALIZATION_FILE. An unset path yields an empty table.
func (c *Config) LoadNormalizationOverrides() (map[string]string, error) {
	if c.Scoring.NormalizationFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(c.Scoring.NormalizationFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read normalization file: %w", err)
	}

	overrides := make(map[string]string)
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse normalization file: %w", err)
	}

	return overrides, nil
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
