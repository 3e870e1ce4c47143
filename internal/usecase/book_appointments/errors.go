package book_appointments

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointments: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("book_appointments: service not found")

	// ErrStylistNotFound возвращается, когда мастер не найден или неактивен
	ErrStylistNotFound = errors.New("book_appointments: stylist not found")

	// ErrOutOfHours возвращается, когда блок услуг не помещается в рабочие
	// часы: старт вне сетки или конец позже закрытия салона
	ErrOutOfHours = errors.New("book_appointments: requested block does not fit operating hours")

	// ErrStaleSlot возвращается, когда выбранный слот уже занят по данным
	// локальной проверки, до попытки записи в БД
	ErrStaleSlot = errors.New("book_appointments: slot is already occupied")

	// ErrSlotTaken возвращается, когда конкурирующее бронирование заняло
	// слот между проверкой и вставкой
	ErrSlotTaken = errors.New("book_appointments: slot was taken by a concurrent booking")

	// ErrDateInPast возвращается при попытке бронирования на прошедшую дату
	ErrDateInPast = errors.New("book_appointments: date is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointments: internal error")
)
