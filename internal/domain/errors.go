package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingSyncKey = errors.New("sync key requerida")
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrForbidden      = errors.New("acceso denegado")
)

// BarcodeConflictError indica que el código de barras ya pertenece a otro
// producto del mismo workspace. Conserva el id del producto en conflicto
// para que el cliente pueda resolverlo.
type BarcodeConflictError struct {
	Barcode    string
	ConflictID string
}

func (e *BarcodeConflictError) Error() string {
	return fmt.Sprintf("barcode %q ya registrado por el producto %q", e.Barcode, e.ConflictID)
}
