package service

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/gestaozabele/credrecord/internal/auth"
	"github.com/gestaozabele/credrecord/internal/record"
)

// MsgWritten é exibido depois que o arquivo de saída é fechado.
const MsgWritten = "Contents written to output file"

// Credentials transforma um InputRecord completo em arquivo de credencial e ecoa o arquivo de entrada.
type Credentials struct {
	hasher auth.Hasher
	out    io.Writer
	logger zerolog.Logger
}

// NewCredentials cria o serviço.
func NewCredentials(hasher auth.Hasher, out io.Writer, logger zerolog.Logger) *Credentials {
	return &Credentials{hasher: hasher, out: out, logger: logger}
}

// Process gera o hash, grava o registro e imprime o conteúdo do arquivo de entrada.
// O arquivo de saída já gravado permanece mesmo se a leitura da entrada falhar.
func (s *Credentials) Process(in record.InputRecord) error {
	hash, err := s.hasher.Hash(in.Password())
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	rec := record.CredentialRecord{
		FirstName:    in.FirstName(),
		LastName:     in.LastName(),
		PasswordHash: hash,
	}
	if err := record.Write(in.OutputPath(), rec); err != nil {
		return err
	}
	s.logger.Info().Str("path", in.OutputPath()).Str("algorithm", s.hasher.Algorithm()).Msg("registro gravado")
	fmt.Fprintln(s.out, MsgWritten)

	contents, err := record.ReadInput(in.InputPath())
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, string(contents))
	return nil
}
