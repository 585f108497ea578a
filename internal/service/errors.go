package service

import (
	"errors"
	"fmt"

	"github.com/warning2025/farmaciaposventas3/internal/repository"
)

// Domain sentinels. Handlers map these to HTTP statuses; everything else is a
// 500. Messages are user-facing, matching the POS UI language.
var (
	ErrNotFound            = errors.New("registro no encontrado")
	ErrValidation          = errors.New("datos inválidos")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrRegisterClosed      = errors.New("no hay una caja abierta para esta sucursal")
	ErrRegisterAlreadyOpen = errors.New("ya existe una caja abierta para esta sucursal")
	ErrForbidden           = errors.New("operación no permitida para este usuario")
	ErrBranchInUse         = errors.New("la sucursal tiene sesiones de caja abiertas o stock asignado")
	ErrCodeUsed            = errors.New("el código de activación ya fue utilizado")
	ErrDuplicateBarcode    = errors.New("ya existe un producto con ese código de barras")
)

// IsRetryable reports whether the operation may be resubmitted unchanged.
func IsRetryable(err error) bool {
	return errors.Is(err, repository.ErrTxConflict)
}

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func branchForbiddenErr() error {
	return fmt.Errorf("%w: sucursal no asignada al usuario", ErrForbidden)
}
