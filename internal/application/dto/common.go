package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BarcodeConflictResponse error 409 por barcode ya usado por otro producto.
// Incluye el id en conflicto para que la caja pueda resolverlo.
type BarcodeConflictResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	ConflictID string `json:"conflictId"`
}

// SyncStatusResponse resultado de un create individual replay-safe: si el
// registro ya existía la operación es un no-op exitoso, nunca un error.
type SyncStatusResponse struct {
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped"`
	Reason  string `json:"reason,omitempty"`
}

// DeletedResponse resultado de una purga bulk.
type DeletedResponse struct {
	OK      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}
