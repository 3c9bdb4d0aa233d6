package util

import "github.com/google/uuid"

// NewRunID gera um UUID v4 que identifica uma execução nos logs.
func NewRunID() string {
	return uuid.NewString()
}
