package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestaozabele/credrecord/internal/config"
)

var (
	// ErrUnknownHash é retornado quando o prefixo do hash não identifica nenhum algoritmo suportado.
	ErrUnknownHash = errors.New("auth: formato de hash desconhecido")
	// ErrUnknownAlgorithm é retornado por NewHasher para algoritmos não suportados.
	ErrUnknownAlgorithm = errors.New("auth: algoritmo de hash desconhecido")
)

// Hasher gera hashes salgados; cada chamada usa um salt novo e o resultado carrega salt e custo.
type Hasher interface {
	Hash(password string) (string, error)
	Algorithm() string
}

// NewHasher escolhe a implementação conforme a configuração.
func NewHasher(cfg config.HashConfig) (Hasher, error) {
	switch cfg.Algorithm {
	case config.AlgorithmBcrypt, "":
		return NewBcryptHasher(cfg.BcryptCost)
	case config.AlgorithmArgon2id:
		return NewArgon2idHasher(cfg.Argon2), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}
}

// bcryptMaxPasswordBytes é o limite do bcrypt; bytes além dele não entram no hash.
const bcryptMaxPasswordBytes = 72

// BcryptHasher gera hashes bcrypt ($2a$). Senhas longas são truncadas em 72 bytes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher valida o custo e cria o hasher.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("auth: custo bcrypt fora do intervalo: %d", cost)
	}
	return &BcryptHasher{cost: cost}, nil
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(bcryptKey(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Algorithm() string { return config.AlgorithmBcrypt }

func bcryptKey(password string) []byte {
	key := []byte(password)
	if len(key) > bcryptMaxPasswordBytes {
		key = key[:bcryptMaxPasswordBytes]
	}
	return key
}

// Argon2idHasher gera hashes argon2id no formato PHC (inclui os parâmetros dentro do próprio hash).
type Argon2idHasher struct {
	params *argon2id.Params
}

// NewArgon2idHasher monta os parâmetros a partir da configuração.
func NewArgon2idHasher(cfg config.Argon2Config) *Argon2idHasher {
	return &Argon2idHasher{params: &argon2id.Params{
		Memory:      cfg.MemoryKB,
		Iterations:  cfg.Iterations,
		Parallelism: cfg.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	}}
}

func (h *Argon2idHasher) Hash(password string) (string, error) {
	return argon2id.CreateHash(password, h.params)
}

func (h *Argon2idHasher) Algorithm() string { return config.AlgorithmArgon2id }

// DetectAlgorithm identifica o algoritmo pelo prefixo do hash.
func DetectAlgorithm(encoded string) (string, bool) {
	switch {
	case strings.HasPrefix(encoded, "$2a$"), strings.HasPrefix(encoded, "$2b$"), strings.HasPrefix(encoded, "$2y$"):
		return config.AlgorithmBcrypt, true
	case strings.HasPrefix(encoded, "$argon2id$"):
		return config.AlgorithmArgon2id, true
	}
	return "", false
}

// Verify compara a senha com o hash, lendo algoritmo e parâmetros do próprio hash.
func Verify(password, encoded string) (bool, error) {
	algorithm, ok := DetectAlgorithm(encoded)
	if !ok {
		return false, ErrUnknownHash
	}
	if algorithm == config.AlgorithmArgon2id {
		return argon2id.ComparePasswordAndHash(password, encoded)
	}
	err := bcrypt.CompareHashAndPassword([]byte(encoded), bcryptKey(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
