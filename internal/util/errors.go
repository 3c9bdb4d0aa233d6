package util

import (
	"errors"
	"fmt"
)

// Kind classifica falhas de validação e de I/O.
type Kind string

// Falhas recuperáveis: o campo é pedido novamente.
const (
	EmptyInput        Kind = "EmptyInput"
	LengthExceeded    Kind = "LengthExceeded"
	InvalidFormat     Kind = "InvalidFormat"
	OverflowDetected  Kind = "OverflowDetected"
	Mismatch          Kind = "Mismatch"
	FileNotFound      Kind = "FileNotFound"
	PathNotAdmissible Kind = "PathNotAdmissible"
)

// Falhas fatais: o processo termina com status diferente de zero.
const (
	WriteFailure                    Kind = "WriteFailure"
	EncodingUnsupported             Kind = "EncodingUnsupported"
	ReadFailure                     Kind = "ReadFailure"
	ExecutablePathResolutionFailure Kind = "ExecutablePathResolutionFailure"
)

// ValidationError descreve uma entrada rejeitada que pode ser digitada de novo.
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidf(kind Kind, field, format string, args ...any) error {
	return &ValidationError{Kind: kind, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewValidationError cria um ValidationError com mensagem formatada.
func NewValidationError(kind Kind, field, format string, args ...any) error {
	return invalidf(kind, field, format, args...)
}

// IsValidation informa se err (ou algo que ele embrulha) é um ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// KindOf devolve o Kind de um ValidationError ou FatalIOError, ou "" para outros erros.
func KindOf(err error) Kind {
	var vErr *ValidationError
	if errors.As(err, &vErr) && vErr != nil {
		return vErr.Kind
	}
	var fErr *FatalIOError
	if errors.As(err, &fErr) && fErr != nil {
		return fErr.Kind
	}
	return ""
}

// FatalIOError é uma falha de I/O sem recuperação. Error() devolve o diagnóstico de uma linha.
type FatalIOError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *FatalIOError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case WriteFailure:
		return "Could not open output file for writing"
	case EncodingUnsupported:
		return "Encoding not supported"
	case ReadFailure:
		return "Couldn't read input file"
	case ExecutablePathResolutionFailure:
		return "Error occurred while getting executable path"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *FatalIOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewFatal embrulha err numa FatalIOError do tipo indicado.
func NewFatal(kind Kind, path string, err error) error {
	return &FatalIOError{Kind: kind, Path: path, Err: err}
}

// IsFatal informa se err (ou algo que ele embrulha) é uma FatalIOError.
func IsFatal(err error) bool {
	var fErr *FatalIOError
	return errors.As(err, &fErr)
}
