package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Algoritmos de hash suportados.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// Config centraliza a configuração carregada do ambiente.
type Config struct {
	Hash          HashConfig
	BaseDir       string
	RetryInterval time.Duration
	LogLevel      zerolog.Level
}

// HashConfig define algoritmo e custo do hash de senha.
type HashConfig struct {
	Algorithm  string
	BcryptCost int
	Argon2     Argon2Config
}

// Argon2Config espelha os parâmetros do argon2id.
type Argon2Config struct {
	MemoryKB    uint32
	Iterations  uint32
	Parallelism uint8
}

// Default devolve a configuração usada quando nenhuma variável está definida.
func Default() *Config {
	return &Config{
		Hash: HashConfig{
			Algorithm:  AlgorithmBcrypt,
			BcryptCost: bcrypt.DefaultCost,
			Argon2: Argon2Config{
				MemoryKB:    64 * 1024,
				Iterations:  3,
				Parallelism: 1,
			},
		},
		LogLevel: zerolog.WarnLevel,
	}
}

// Load carrega variáveis de ambiente (e .env, se existir) sobre os defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	algorithm := strings.ToLower(strings.TrimSpace(getEnv("HASH_ALGORITHM", AlgorithmBcrypt)))
	switch algorithm {
	case AlgorithmBcrypt, AlgorithmArgon2id:
		cfg.Hash.Algorithm = algorithm
	default:
		return nil, errors.New("HASH_ALGORITHM invalid (expected bcrypt|argon2id)")
	}

	cost, err := parseIntEnv("BCRYPT_COST", cfg.Hash.BcryptCost)
	if err != nil {
		return nil, err
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.New("BCRYPT_COST out of range")
	}
	cfg.Hash.BcryptCost = cost

	memory, err := parseIntEnv("ARGON2_MEMORY_KB", int(cfg.Hash.Argon2.MemoryKB))
	if err != nil {
		return nil, err
	}
	if memory < 8*1024 || memory > 4*1024*1024 {
		return nil, errors.New("ARGON2_MEMORY_KB out of range")
	}
	cfg.Hash.Argon2.MemoryKB = uint32(memory)

	iterations, err := parseIntEnv("ARGON2_ITERATIONS", int(cfg.Hash.Argon2.Iterations))
	if err != nil {
		return nil, err
	}
	if iterations < 1 || iterations > 100 {
		return nil, errors.New("ARGON2_ITERATIONS out of range")
	}
	cfg.Hash.Argon2.Iterations = uint32(iterations)

	parallelism, err := parseIntEnv("ARGON2_PARALLELISM", int(cfg.Hash.Argon2.Parallelism))
	if err != nil {
		return nil, err
	}
	if parallelism < 1 || parallelism > 255 {
		return nil, errors.New("ARGON2_PARALLELISM out of range")
	}
	cfg.Hash.Argon2.Parallelism = uint8(parallelism)

	if baseDir := strings.TrimSpace(getEnv("BASE_DIR", "")); baseDir != "" {
		abs, err := filepath.Abs(baseDir)
		if err != nil {
			return nil, errors.New("BASE_DIR invalid")
		}
		cfg.BaseDir = abs
	}

	interval, err := parseDurationEnv("RETRY_INTERVAL", 0)
	if err != nil {
		return nil, err
	}
	if interval < 0 {
		return nil, errors.New("RETRY_INTERVAL must not be negative")
	}
	cfg.RetryInterval = interval

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "warn"))))
	if err != nil {
		return nil, errors.New("LOG_LEVEL invalid")
	}
	cfg.LogLevel = level

	return cfg, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func parseIntEnv(key string, def int) (int, error) {
	val := strings.TrimSpace(getEnv(key, ""))
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.New(key + " invalid")
	}
	return n, nil
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New(key + " invalid")
	}
	return dur, nil
}
