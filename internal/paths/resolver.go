package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gestaozabele/credrecord/internal/util"
)

// Nomes de campo usados nas mensagens de diagnóstico.
const (
	FieldInput  = "Input file"
	FieldOutput = "Output file"
)

// Resolver normaliza caminhos digitados e só aceita os que ficam dentro do diretório base,
// nunca o próprio executável.
type Resolver struct {
	baseDir    string
	executable string
}

// New descobre o executável em execução. baseDir vazio usa o diretório do executável.
func New(baseDir string) (*Resolver, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, util.NewFatal(util.ExecutablePathResolutionFailure, "", err)
	}
	return NewWithExecutable(baseDir, exe)
}

// NewWithExecutable é como New, com o caminho do executável informado.
func NewWithExecutable(baseDir, executable string) (*Resolver, error) {
	if strings.TrimSpace(executable) == "" {
		return nil, util.NewFatal(util.ExecutablePathResolutionFailure, "", os.ErrNotExist)
	}
	exe, err := filepath.Abs(executable)
	if err != nil {
		return nil, util.NewFatal(util.ExecutablePathResolutionFailure, executable, err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, util.NewFatal(util.ExecutablePathResolutionFailure, executable, err)
	}

	if strings.TrimSpace(baseDir) == "" {
		baseDir = filepath.Dir(exe)
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, util.NewFatal(util.ExecutablePathResolutionFailure, baseDir, err)
	}

	return &Resolver{baseDir: resolveExisting(base), executable: exe}, nil
}

// BaseDir devolve o diretório base já canonicalizado.
func (r *Resolver) BaseDir() string { return r.baseDir }

// Executable devolve o caminho canonicalizado do executável.
func (r *Resolver) Executable() string { return r.executable }

// Canonicalize remove ".", ".." e separadores repetidos e torna o caminho absoluto
// em relação ao diretório de trabalho do processo.
func Canonicalize(field, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", util.NewValidationError(util.EmptyInput, field, "%s path must not be empty", field)
	}
	abs, err := filepath.Abs(raw)
	if err != nil {
		return "", util.NewValidationError(util.PathNotAdmissible, field, "%s path cannot be resolved", field)
	}
	return abs, nil
}

// ResolveInput aceita apenas arquivos existentes e legíveis dentro do diretório base.
func (r *Resolver) ResolveInput(raw string) (string, error) {
	path, err := Canonicalize(FieldInput, raw)
	if err != nil {
		return "", err
	}
	if err := r.admissible(FieldInput, path); err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", util.NewValidationError(util.FileNotFound, FieldInput, "Input file does not exist")
	}
	if info.IsDir() {
		return "", util.NewValidationError(util.FileNotFound, FieldInput, "Input file is a directory")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", util.NewValidationError(util.FileNotFound, FieldInput, "Input file is not readable")
	}
	_ = f.Close()

	return path, nil
}

// ResolveOutput aceita qualquer destino gravável dentro do diretório base; arquivos existentes são sobrescritos.
func (r *Resolver) ResolveOutput(raw string) (string, error) {
	path, err := Canonicalize(FieldOutput, raw)
	if err != nil {
		return "", err
	}
	if err := r.admissible(FieldOutput, path); err != nil {
		return "", err
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "", util.NewValidationError(util.PathNotAdmissible, FieldOutput, "Output file is a directory")
	}
	parent, err := os.Stat(filepath.Dir(path))
	if err != nil || !parent.IsDir() {
		return "", util.NewValidationError(util.PathNotAdmissible, FieldOutput, "Output directory does not exist")
	}

	return path, nil
}

func (r *Resolver) admissible(field, path string) error {
	resolved := resolveExisting(path)
	if path == r.executable || resolved == r.executable {
		return util.NewValidationError(util.PathNotAdmissible, field, "%s must not be the program itself", field)
	}
	rel, err := filepath.Rel(r.baseDir, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return util.NewValidationError(util.PathNotAdmissible, field, "%s must be inside %s", field, r.baseDir)
	}
	return nil
}

// resolveExisting resolve links simbólicos do maior prefixo existente de path
// e reanexa os componentes que ainda não existem.
func resolveExisting(path string) string {
	var rest []string
	cur := path
	for {
		if resolved, err := filepath.EvalSymlinks(cur); err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...)
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return path
		}
		rest = append([]string{filepath.Base(cur)}, rest...)
		cur = parent
	}
}
