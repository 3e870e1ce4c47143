package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	apptRepo "github.com/haircraft/HairCraft-SchedulingService/internal/infra/storage/appointment"
	"github.com/haircraft/HairCraft-SchedulingService/internal/integrations/notifier"
	"github.com/haircraft/HairCraft-SchedulingService/internal/service/appointments/models"
)

// Валюта платёжных ордеров
const orderCurrency = "INR"

// Service сервис для работы с записями: история, статусы, оплата,
// напоминания
type Service struct {
	apptRepo       AppointmentRepository
	paymentsClient PaymentsClient
	notifierClient NotifierClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	paymentsClient PaymentsClient,
	notifierClient NotifierClient,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:       apptRepo,
		paymentsClient: paymentsClient,
		notifierClient: notifierClient,
		logger:         logger,
	}
}

// GetByID получает запись по ID
// Пользователь видит только свою запись, администратор - любую
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if appt.UserID != userID && !isAdmin {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// GetUserAppointments получает историю записей пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.apptRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus переводит запись в новый статус по машине состояний
// Доступно только администратору. При отклонении или отмене оплаченной
// записи автоматически инициируется возврат платежа.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if !appt.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
			appt.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
	}

	if err := s.apptRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}
	appt.Status = newStatus

	// Возврат платежа при отклонении или отмене оплаченной записи
	if (newStatus == domain.StatusRejected || newStatus == domain.StatusCancelledByAdmin) && appt.IsPaid() {
		s.refundPayment(ctx, appt)
	}

	// Уведомление best-effort: сбой доставки не ломает смену статуса
	s.notifyStatusChange(ctx, appt, newStatus)

	s.logger.Info("UpdateStatus: appointment id=%d moved to status=%s", id, newStatus)
	return models.FromDomainAppointment(appt), nil
}

// CreatePaymentOrder создает платёжный ордер на сумму блока записей
// Все записи должны принадлежать пользователю, быть в статусе BOOKED
// и ещё не оплачены
func (s *Service) CreatePaymentOrder(ctx context.Context, userID int64, appointmentIDs []int64) (*models.PaymentOrderResponse, error) {
	s.logger.Info("CreatePaymentOrder: user=%d, appointments=%v", userID, appointmentIDs)

	if len(appointmentIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one appointment is required", ErrInvalidInput)
	}

	total := 0.0
	for _, id := range appointmentIDs {
		appt, err := s.getAppointment(ctx, id)
		if err != nil {
			return nil, err
		}
		if appt.UserID != userID {
			s.logger.Warn("CreatePaymentOrder: appointment id=%d does not belong to user=%d", id, userID)
			return nil, ErrAccessDenied
		}
		if appt.Status != domain.StatusBooked || appt.IsPaid() {
			s.logger.Warn("CreatePaymentOrder: appointment id=%d is not payable, status=%s, payment=%s",
				id, appt.Status, appt.PaymentStatus)
			return nil, ErrNotPayable
		}
		total += appt.Amount
	}

	order, err := s.paymentsClient.CreateOrder(ctx, total, orderCurrency)
	if err != nil {
		s.logger.Error("CreatePaymentOrder: gateway error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	s.logger.Info("CreatePaymentOrder: order %s created for user=%d, amount=%.2f", order.ID, userID, total)

	return &models.PaymentOrderResponse{
		OrderID:  order.ID,
		Amount:   total,
		Currency: orderCurrency,
	}, nil
}

// VerifyPayment проверяет подпись платежа и помечает записи оплаченными
// Статус записей остаётся BOOKED: подтверждение записи делает администратор,
// оплата лишь открывает дорогу дальнейшим переходам
func (s *Service) VerifyPayment(ctx context.Context, req *models.VerifyPaymentRequest) error {
	s.logger.Info("VerifyPayment: user=%d, order=%s, appointments=%v", req.UserID, req.OrderID, req.AppointmentIDs)

	if len(req.AppointmentIDs) == 0 {
		return fmt.Errorf("%w: at least one appointment is required", ErrInvalidInput)
	}

	if err := s.paymentsClient.VerifySignature(req.OrderID, req.PaymentID, req.Signature); err != nil {
		s.logger.Warn("VerifyPayment: signature check failed for order=%s: %v", req.OrderID, err)
		return ErrPaymentVerification
	}

	for _, id := range req.AppointmentIDs {
		appt, err := s.getAppointment(ctx, id)
		if err != nil {
			return err
		}
		if appt.UserID != req.UserID {
			s.logger.Warn("VerifyPayment: appointment id=%d does not belong to user=%d", id, req.UserID)
			return ErrAccessDenied
		}

		if err := s.apptRepo.SetPayment(ctx, id, req.PaymentID, domain.PaymentStatusPaid); err != nil {
			s.logger.Error("VerifyPayment: failed to mark appointment id=%d paid: %v", id, err)
			return fmt.Errorf("%w: VerifyPayment - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("VerifyPayment: %d appointments marked paid for order=%s", len(req.AppointmentIDs), req.OrderID)
	return nil
}

// SendDueReminders отправляет напоминания по записям, начинающимся в окне
// [from, to) указанной даты. Каждое напоминание отправляется один раз.
// Возвращает количество отправленных напоминаний.
func (s *Service) SendDueReminders(ctx context.Context, date time.Time, from, to domain.Tick) (int, error) {
	due, err := s.apptRepo.GetDueReminders(ctx, date, from, to)
	if err != nil {
		s.logger.Error("SendDueReminders: repository error: %v", err)
		return 0, fmt.Errorf("%w: SendDueReminders - repository error: %v", ErrInternal, err)
	}

	sent := 0
	for _, appt := range due {
		notification := notifier.Notification{
			UserID: appt.UserID,
			Kind:   notifier.KindReminder,
			Message: fmt.Sprintf("Напоминание: %s в %s, %s",
				appt.ServiceName, appt.StartTick, appt.Date.Format(domain.DateFormat)),
		}

		if err := s.notifierClient.Notify(ctx, notification); err != nil {
			// Напоминание попробуем снова на следующем проходе планировщика
			s.logger.Warn("SendDueReminders: failed to notify user=%d for appointment id=%d: %v",
				appt.UserID, appt.ID, err)
			continue
		}

		if err := s.apptRepo.MarkReminderSent(ctx, appt.ID); err != nil {
			s.logger.Error("SendDueReminders: failed to mark reminder for appointment id=%d: %v", appt.ID, err)
			continue
		}
		sent++
	}

	if len(due) > 0 {
		s.logger.Info("SendDueReminders: sent %d of %d due reminders", sent, len(due))
	}

	return sent, nil
}

// Вспомогательные методы

func (s *Service) getAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("getAppointment: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("getAppointment: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return appt, nil
}

// refundPayment инициирует возврат платежа по оплаченной записи
// Сбой возврата логируется, но не откатывает смену статуса: деньги
// возвращают повторно через поддержку
func (s *Service) refundPayment(ctx context.Context, appt *domain.Appointment) {
	if appt.PaymentID == nil {
		s.logger.Error("refundPayment: appointment id=%d is paid but has no payment id", appt.ID)
		return
	}

	refund, err := s.paymentsClient.Refund(ctx, *appt.PaymentID, appt.Amount)
	if err != nil {
		s.logger.Error("refundPayment: refund failed for appointment id=%d: %v", appt.ID, err)
		return
	}

	if err := s.apptRepo.SetRefund(ctx, appt.ID, refund.ID, refund.Status, domain.PaymentStatusRefundInitiated); err != nil {
		s.logger.Error("refundPayment: failed to store refund for appointment id=%d: %v", appt.ID, err)
		return
	}

	s.logger.Info("refundPayment: refund %s initiated for appointment id=%d", refund.ID, appt.ID)
}

// notifyStatusChange отправляет пользователю уведомление о смене статуса
func (s *Service) notifyStatusChange(ctx context.Context, appt *domain.Appointment, status domain.AppointmentStatus) {
	notification := notifier.Notification{
		UserID: appt.UserID,
		Kind:   notifier.KindStatusChanged,
		Message: fmt.Sprintf("Статус записи на %s изменен: %s",
			appt.Date.Format(domain.DateFormat), status),
	}

	if err := s.notifierClient.Notify(ctx, notification); err != nil {
		s.logger.Warn("notifyStatusChange: failed to notify user=%d for appointment id=%d: %v",
			appt.UserID, appt.ID, err)
	}
}
