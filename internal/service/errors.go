package service

import (
	"errors"

	"go.uber.org/zap"
)

var (
	ErrServiceNotConfigured = errors.New("service not configured")
	ErrEmptyImage           = errors.New("image is required")
)

// ValidationError es un error de entrada que se traduce a HTTP 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidationError reporta si err (o algo que envuelve) es un ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RecoveryPolicy decide que hace un endpoint cuando falla el LLM o la extraccion.
type RecoveryPolicy int

const (
	// PolicyPropagate devuelve el error al caller (HTTP 500).
	PolicyPropagate RecoveryPolicy = iota
	// PolicyDegrade reemplaza el resultado por un default seguro y registra el error.
	PolicyDegrade
)

func (p RecoveryPolicy) String() string {
	if p == PolicyDegrade {
		return "degrade"
	}
	return "propagate"
}

// recoverWith aplica la politica sobre el resultado de una operacion.
// Con PolicyDegrade nunca devuelve error.
func recoverWith[T any](policy RecoveryPolicy, logger *zap.Logger, op string, result T, err error, fallback func(error) T) (T, error) {
	if err == nil {
		return result, nil
	}
	if policy == PolicyDegrade {
		logger.Warn("degraded response", zap.String("op", op), zap.Error(err))
		return fallback(err), nil
	}
	var zero T
	return zero, err
}
