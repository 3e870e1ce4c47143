package payments

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("payments client: invalid response")

	// ErrSignatureMismatch возвращается, когда подпись платежа не прошла проверку
	ErrSignatureMismatch = errors.New("payments client: signature verification failed")

	// ErrRefundFailed возвращается, когда шлюз отклонил возврат
	ErrRefundFailed = errors.New("payments client: refund failed")
)
