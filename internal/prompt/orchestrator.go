package prompt

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/gestaozabele/credrecord/internal/record"
	"github.com/gestaozabele/credrecord/internal/util"
)

// Textos exibidos ao usuário.
const (
	PromptFirstName    = "What is your first name?"
	PromptLastName     = "What is your last name?"
	PromptFirstNumber  = "Enter the first number"
	PromptSecondNumber = "Enter the second number"
	PromptInputPath    = "Enter the path for the input file (must be relative to application directory)"
	PromptOutputPath   = "Enter the path for the output file (must be relative to application directory)"
	PromptPassword     = "Enter password"
	PromptConfirm      = "Confirm password"

	DiagInvalidPaths = "Input or output file provided is not valid"
)

const (
	fieldFirstName = "First name"
	fieldLastName  = "Last name"
)

// State é a etapa atual da coleta.
type State int

const (
	CollectName State = iota
	CollectIntegers
	CollectPaths
	CollectPassword
	Complete
)

func (s State) String() string {
	switch s {
	case CollectName:
		return "CollectName"
	case CollectIntegers:
		return "CollectIntegers"
	case CollectPaths:
		return "CollectPaths"
	case CollectPassword:
		return "CollectPassword"
	case Complete:
		return "Complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// PathResolver valida os caminhos de entrada e saída.
type PathResolver interface {
	ResolveInput(raw string) (string, error)
	ResolveOutput(raw string) (string, error)
}

// Orchestrator conduz os prompts até que todos os campos sejam válidos.
// Uma falha repete somente os prompts da etapa atual.
type Orchestrator struct {
	in      Reader
	out     io.Writer
	errOut  io.Writer
	paths   PathResolver
	limiter *rate.Limiter
	logger  zerolog.Logger

	state  State
	fields record.Fields
}

// Option ajusta um Orchestrator.
type Option func(*Orchestrator)

// WithRetryInterval impõe um intervalo mínimo entre tentativas depois de uma falha.
// O token inicial é consumido, então já a primeira repetição espera d.
func WithRetryInterval(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			l := rate.NewLimiter(rate.Every(d), 1)
			l.Allow()
			o.limiter = l
		}
	}
}

// WithLogger define o logger de depuração.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// New cria o orquestrador na etapa CollectName.
func New(in Reader, out, errOut io.Writer, paths PathResolver, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		in:      in,
		out:     out,
		errOut:  errOut,
		paths:   paths,
		limiter: rate.NewLimiter(rate.Inf, 1),
		logger:  zerolog.Nop(),
		state:   CollectName,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State devolve a etapa atual.
func (o *Orchestrator) State() State { return o.state }

// Collect roda a máquina de estados até Complete. Erros de validação nunca saem daqui;
// qualquer outro erro (entrada encerrada, contexto cancelado) é devolvido como fatal.
func (o *Orchestrator) Collect(ctx context.Context) (record.InputRecord, error) {
	for o.state != Complete {
		err := o.step()
		if err == nil {
			o.logger.Debug().Str("state", o.state.String()).Msg("etapa concluída")
			o.state++
			continue
		}
		if !util.IsValidation(err) {
			return record.InputRecord{}, err
		}

		o.logger.Debug().Str("state", o.state.String()).Str("kind", string(util.KindOf(err))).Msg("entrada rejeitada")
		if err := o.limiter.Wait(ctx); err != nil {
			return record.InputRecord{}, err
		}
	}
	return record.NewInputRecord(o.fields), nil
}

func (o *Orchestrator) step() error {
	switch o.state {
	case CollectName:
		return o.collectName()
	case CollectIntegers:
		return o.collectIntegers()
	case CollectPaths:
		return o.collectPaths()
	case CollectPassword:
		return o.collectPassword()
	}
	return fmt.Errorf("prompt: invalid state %s", o.state)
}

func (o *Orchestrator) collectName() error {
	first, err := o.ask(PromptFirstName)
	if err != nil {
		return err
	}
	last, err := o.ask(PromptLastName)
	if err != nil {
		return err
	}

	if err := o.report(util.ValidateName(fieldFirstName, first), util.ValidateName(fieldLastName, last)); err != nil {
		return err
	}
	o.fields.FirstName = first
	o.fields.LastName = last
	return nil
}

func (o *Orchestrator) collectIntegers() error {
	x, err := o.askInt(PromptFirstNumber)
	if err != nil {
		return err
	}
	y, err := o.askInt(PromptSecondNumber)
	if err != nil {
		return err
	}

	if err := o.report(util.ValidateSum(x, y)); err != nil {
		return err
	}
	o.fields.X = x
	o.fields.Y = y
	return nil
}

func (o *Orchestrator) collectPaths() error {
	rawInput, err := o.ask(PromptInputPath)
	if err != nil {
		return err
	}
	rawOutput, err := o.ask(PromptOutputPath)
	if err != nil {
		return err
	}

	input, inErr := o.paths.ResolveInput(rawInput)
	output, outErr := o.paths.ResolveOutput(rawOutput)
	if inErr != nil || outErr != nil {
		fmt.Fprintln(o.errOut, DiagInvalidPaths)
		return o.report(inErr, outErr)
	}

	o.logger.Debug().Str("input", input).Str("output", output).Msg("caminhos aceitos")
	o.fields.InputPath = input
	o.fields.OutputPath = output
	return nil
}

func (o *Orchestrator) collectPassword() error {
	fmt.Fprintln(o.out, PromptPassword)
	password, err := o.in.ReadSecret()
	if err != nil {
		return err
	}
	fmt.Fprintln(o.out, PromptConfirm)
	confirmation, err := o.in.ReadSecret()
	if err != nil {
		return err
	}

	if err := o.report(util.ValidatePasswordMatch(password, confirmation)); err != nil {
		return err
	}
	o.fields.Password = password
	return nil
}

func (o *Orchestrator) ask(prompt string) (string, error) {
	fmt.Fprintln(o.out, prompt)
	return o.in.ReadLine()
}

func (o *Orchestrator) askInt(prompt string) (int32, error) {
	line, err := o.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := util.ParseInt32("number", line)
	if err != nil {
		return 0, o.report(err)
	}
	return n, nil
}

// report imprime um diagnóstico por erro e devolve o primeiro.
func (o *Orchestrator) report(errs ...error) error {
	var first error
	for _, err := range errs {
		if err == nil {
			continue
		}
		fmt.Fprintln(o.errOut, err.Error())
		if first == nil {
			first = err
		}
	}
	return first
}
