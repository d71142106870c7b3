package webhook

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/scannercafe/sync-api/internal/application/dto"
)

// Notifier envía los resultados de cada sincronización bulk a una URL
// configurada (integraciones externas: contabilidad, monitoreo de tiendas).
// El envío es fire-and-forget: un fallo se loguea y no afecta la respuesta
// al cliente.
type Notifier struct {
	client *resty.Client
	url    string
}

// NewNotifier construye el notificador con timeout y reintentos acotados.
func NewNotifier(url string, timeout time.Duration) *Notifier {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Notifier{client: client, url: url}
}

type bulkEvent struct {
	Workspace string               `json:"workspace"`
	Kind      string               `json:"kind"` // "products" | "sales"
	Result    dto.BulkSyncResponse `json:"result"`
	Timestamp string               `json:"timestamp"`
}

// NotifyBulkResult publica el resultado del lote en background.
func (n *Notifier) NotifyBulkResult(workspaceKey, kind string, result *dto.BulkSyncResponse) {
	event := bulkEvent{
		Workspace: workspaceKey,
		Kind:      kind,
		Result:    *result,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		resp, err := n.client.R().SetBody(event).Post(n.url)
		if err != nil {
			log.Warn().Err(err).Str("workspace", workspaceKey).Str("kind", kind).
				Msg("webhook: notificación de sincronización fallida")
			return
		}
		if resp.IsError() {
			log.Warn().Int("status", resp.StatusCode()).Str("workspace", workspaceKey).
				Str("kind", kind).Msg("webhook: el receptor respondió error")
		}
	}()
}
