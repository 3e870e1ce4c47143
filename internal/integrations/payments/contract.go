package payments

// Logger интерфейс логирования для клиента платёжного шлюза
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
