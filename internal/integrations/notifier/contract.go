package notifier

// Logger интерфейс логирования для клиента сервиса уведомлений
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
}
