package record

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gestaozabele/credrecord/internal/util"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	return lines
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	if err := Write(path, CredentialRecord{FirstName: "Ada", LastName: "Lovelace", PasswordHash: hash}); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := readLines(t, path)
	want := []string{"Ada", "Lovelace", hash}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "Ada\nLovelace\n"+hash+"\n" {
		t.Fatalf("unexpected file contents %q", raw)
	}
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("old content\n", 20)), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := Write(path, CredentialRecord{FirstName: "Grace", LastName: "Hopper", PasswordHash: "h"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "Grace\nHopper\nh\n" {
		t.Fatalf("expected truncated file, got %q", raw)
	}
}

func TestWriteFailures(t *testing.T) {
	dir := t.TempDir()

	err := Write(filepath.Join(dir, "missing", "out.txt"), CredentialRecord{FirstName: "a", LastName: "b", PasswordHash: "c"})
	if util.KindOf(err) != util.WriteFailure {
		t.Fatalf("expected WriteFailure, got %v", err)
	}
	if err.Error() != "Could not open output file for writing" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	err = Write(dir, CredentialRecord{FirstName: "a", LastName: "b", PasswordHash: "c"})
	if util.KindOf(err) != util.WriteFailure {
		t.Fatalf("expected WriteFailure for directory, got %v", err)
	}

	err = Write(filepath.Join(dir, "out.txt"), CredentialRecord{FirstName: "a\nb", LastName: "b", PasswordHash: "c"})
	if util.KindOf(err) != util.WriteFailure {
		t.Fatalf("expected WriteFailure for embedded newline, got %v", err)
	}

	err = Write(filepath.Join(dir, "out.txt"), CredentialRecord{FirstName: "\xff", LastName: "b", PasswordHash: "c"})
	if util.KindOf(err) != util.EncodingUnsupported {
		t.Fatalf("expected EncodingUnsupported, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.txt")); !os.IsNotExist(statErr) {
		t.Fatalf("expected nothing written on rejected record")
	}
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	data, err := ReadInput(path)
	if err != nil || string(data) != "hello" {
		t.Fatalf("ReadInput = %q, %v", data, err)
	}

	_, err = ReadInput(filepath.Join(t.TempDir(), "gone.txt"))
	if util.KindOf(err) != util.ReadFailure {
		t.Fatalf("expected ReadFailure, got %v", err)
	}
}

func TestInputRecordAccessors(t *testing.T) {
	rec := NewInputRecord(Fields{
		FirstName: "Ada", LastName: "Lovelace",
		InputPath: "/base/notes.txt", OutputPath: "/base/out.txt",
		X: 2, Y: 3, Password: "pw123",
	})
	if rec.FirstName() != "Ada" || rec.LastName() != "Lovelace" {
		t.Fatalf("unexpected names %q %q", rec.FirstName(), rec.LastName())
	}
	if rec.InputPath() != "/base/notes.txt" || rec.OutputPath() != "/base/out.txt" {
		t.Fatalf("unexpected paths %q %q", rec.InputPath(), rec.OutputPath())
	}
	if rec.X() != 2 || rec.Y() != 3 || rec.Password() != "pw123" {
		t.Fatalf("unexpected values %d %d %q", rec.X(), rec.Y(), rec.Password())
	}
}
