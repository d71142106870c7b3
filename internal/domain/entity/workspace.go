package entity

import "time"

// Workspace representa el negocio (tenant) dueño de los datos sincronizados.
// SyncKey es el token opaco con el que las cajas se identifican; es único y
// el nombre del negocio queda fijado en el primer registro.
type Workspace struct {
	ID        string
	SyncKey   string
	Business  string
	CreatedAt time.Time
}
