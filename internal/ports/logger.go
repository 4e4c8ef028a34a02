package ports

import "context"

// Logger — минимальный контракт логгера для внешних слоёв.
// Debugf активен только при включённом debug-флаге конфигурации.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)  // Infof — информационные сообщения.
	Warnf(ctx context.Context, format string, args ...any)  // Warnf — предупреждения.
	Errorf(ctx context.Context, format string, args ...any) // Errorf — ошибки.
	Debugf(ctx context.Context, format string, args ...any) // Debugf — подробная диагностика выгрузки.
}
