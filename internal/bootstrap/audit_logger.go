package bootstrap

import "context"

// AuditLog is a lifecycle entry for the process itself, not for requests.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
