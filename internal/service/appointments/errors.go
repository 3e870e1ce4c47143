package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition возвращается, когда переход статуса запрещён
	// машиной состояний
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrNotPayable возвращается, когда запись нельзя оплатить:
	// она не в статусе BOOKED или уже оплачена
	ErrNotPayable = errors.New("appointment is not payable")

	// ErrPaymentVerification возвращается, когда подпись платежа не прошла
	// проверку
	ErrPaymentVerification = errors.New("payment verification failed")

	// ErrPaymentGateway возвращается при сбое обращения к платёжному шлюзу
	ErrPaymentGateway = errors.New("payment gateway request failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
