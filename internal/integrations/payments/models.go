package payments

// Order модель платёжного ордера от шлюза
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // сумма в минимальных единицах валюты
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Refund модель возврата платежа от шлюза
type Refund struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

// createOrderRequest тело запроса создания ордера
type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// refundRequest тело запроса возврата
type refundRequest struct {
	Amount int64 `json:"amount"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}
