package notifier

// Notification модель уведомления пользователю
type Notification struct {
	UserID  int64  `json:"user_id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Виды уведомлений
const (
	KindStatusChanged = "STATUS_CHANGED"
	KindReminder      = "REMINDER"
)
