package record

import (
	"bufio"
	"errors"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gestaozabele/credrecord/internal/util"
)

var errLineBreak = errors.New("record: campo contém quebra de linha")

// Write grava nome, sobrenome e hash, um por linha, em UTF-8. Arquivos existentes são sobrescritos.
func Write(path string, rec CredentialRecord) error {
	lines := []string{rec.FirstName, rec.LastName, rec.PasswordHash}
	for _, line := range lines {
		if !utf8.ValidString(line) {
			return util.NewFatal(util.EncodingUnsupported, path, nil)
		}
		if strings.ContainsAny(line, "\r\n") {
			return util.NewFatal(util.WriteFailure, path, errLineBreak)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return util.NewFatal(util.WriteFailure, path, err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			_ = f.Close()
			return util.NewFatal(util.WriteFailure, path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return util.NewFatal(util.WriteFailure, path, err)
	}
	if err := f.Close(); err != nil {
		return util.NewFatal(util.WriteFailure, path, err)
	}
	return nil
}

// ReadInput lê o arquivo inteiro para a memória.
func ReadInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, util.NewFatal(util.ReadFailure, path, err)
	}
	return data, nil
}
