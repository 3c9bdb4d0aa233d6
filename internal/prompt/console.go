package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInputClosed é retornado quando a entrada termina antes de todos os campos serem coletados.
var ErrInputClosed = errors.New("input closed before all fields were collected")

// Reader entrega uma linha por chamada, sem o terminador.
type Reader interface {
	ReadLine() (string, error)
	// ReadSecret lê uma linha sem eco quando a entrada é um terminal.
	ReadSecret() (string, error)
}

// Console lê linhas de um io.Reader e usa x/term para senhas quando a entrada é um TTY.
type Console struct {
	in           *bufio.Reader
	out          io.Writer
	fd           int
	tty          bool
	readPassword func(fd int) ([]byte, error)
}

// NewConsole cria o leitor; out recebe a quebra de linha que o terminal não ecoa após a senha.
func NewConsole(in io.Reader, out io.Writer) *Console {
	c := &Console{in: bufio.NewReader(in), out: out, readPassword: term.ReadPassword}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.fd = int(f.Fd())
		c.tty = true
	}
	return c
}

func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimEOL(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read line: %w", err)
	}
	return trimEOL(line), nil
}

func (c *Console) ReadSecret() (string, error) {
	if !c.tty {
		return c.ReadLine()
	}
	secret, err := c.readPassword(c.fd)
	fmt.Fprintln(c.out)
	if errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(secret), nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
