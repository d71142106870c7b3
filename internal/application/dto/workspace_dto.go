package dto

import "time"

// RegisterWorkspaceRequest entrada para registrar (o validar) un workspace.
type RegisterWorkspaceRequest struct {
	BusinessName string `json:"businessName"`
	SyncKey      string `json:"syncKey"`
}

// WorkspaceInfo identidad pública del workspace (la sync key la conoce el dueño).
type WorkspaceInfo struct {
	Business string `json:"business"`
	SyncKey  string `json:"syncKey"`
}

// RegisterWorkspaceResponse salida del registro. Created distingue el alta
// nueva de la validación idempotente de una key ya registrada.
type RegisterWorkspaceResponse struct {
	OK        bool          `json:"ok"`
	Created   bool          `json:"created"`
	Workspace WorkspaceInfo `json:"workspace"`
}

// WorkspaceInfoResponse salida de GET /workspaces/info.
type WorkspaceInfoResponse struct {
	Business  string    `json:"business"`
	SyncKey   string    `json:"syncKey"`
	CreatedAt time.Time `json:"createdAt"`
}
