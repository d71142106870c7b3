package dto

// BulkRecordError error por registro dentro de un lote. El lote nunca se
// aborta por un registro inválido: se acumula aquí y se continúa.
type BulkRecordError struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkSyncResponse clasificación de un lote completo. Skipped es un resultado
// normal (el registro ya existía); solo Errors señala fallos.
type BulkSyncResponse struct {
	OK       bool              `json:"ok"`
	Inserted int               `json:"inserted"`
	Skipped  int               `json:"skipped"`
	Errors   []BulkRecordError `json:"errors"`
}
