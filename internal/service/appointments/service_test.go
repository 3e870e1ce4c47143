package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	apptRepo "github.com/haircraft/HairCraft-SchedulingService/internal/infra/storage/appointment"
	"github.com/haircraft/HairCraft-SchedulingService/internal/integrations/notifier"
	"github.com/haircraft/HairCraft-SchedulingService/internal/integrations/payments"
	"github.com/haircraft/HairCraft-SchedulingService/internal/service/appointments/models"
	"github.com/haircraft/HairCraft-SchedulingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	byID          map[int64]*domain.Appointment
	refundCalls   int
	remindersSent []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, appt := range f.byID {
		if appt.UserID != userID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	appt, ok := f.byID[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeRepo) SetPayment(_ context.Context, id int64, paymentID string, paymentStatus string) error {
	appt, ok := f.byID[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.PaymentID = &paymentID
	appt.PaymentStatus = paymentStatus
	return nil
}

func (f *fakeRepo) SetRefund(_ context.Context, id int64, refundID, refundStatus, paymentStatus string) error {
	appt, ok := f.byID[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.RefundID = &refundID
	appt.RefundStatus = &refundStatus
	appt.PaymentStatus = paymentStatus
	f.refundCalls++
	return nil
}

func (f *fakeRepo) GetDueReminders(_ context.Context, _ time.Time, from, to domain.Tick) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, appt := range f.byID {
		if appt.ReminderSent || !appt.OccupiesSlot() {
			continue
		}
		if appt.StartTick >= from && appt.StartTick < to {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkReminderSent(_ context.Context, id int64) error {
	appt, ok := f.byID[id]
	if !ok {
		return apptRepo.ErrAppointmentNotFound
	}
	appt.ReminderSent = true
	f.remindersSent = append(f.remindersSent, id)
	return nil
}

type fakePayments struct {
	refunds       int
	badSignature  bool
	createdOrders int
}

func (f *fakePayments) CreateOrder(_ context.Context, amount float64, currency string) (*payments.Order, error) {
	f.createdOrders++
	return &payments.Order{ID: "order_1", Amount: int64(amount * 100), Currency: currency, Status: "created"}, nil
}

func (f *fakePayments) VerifySignature(_, _, _ string) error {
	if f.badSignature {
		return payments.ErrSignatureMismatch
	}
	return nil
}

func (f *fakePayments) Refund(_ context.Context, paymentID string, _ float64) (*payments.Refund, error) {
	f.refunds++
	return &payments.Refund{ID: "rfnd_1", PaymentID: paymentID, Status: "processed"}, nil
}

type fakeNotifier struct {
	sent []notifier.Notification
	fail bool
}

func (f *fakeNotifier) Notify(_ context.Context, n notifier.Notification) error {
	if f.fail {
		return notifier.ErrInternal
	}
	f.sent = append(f.sent, n)
	return nil
}

func bookedAppointment(id, userID int64) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		UserID:          userID,
		ServiceID:       1,
		Date:            time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC),
		StartTick:       600,
		DurationMinutes: 30,
		Amount:          500,
		Status:          domain.StatusBooked,
		PaymentStatus:   domain.PaymentStatusPending,
		ServiceName:     "Haircut",
	}
}

func newTestService(repo *fakeRepo, pay *fakePayments, notif *fakeNotifier) *Service {
	return NewService(repo, pay, notif, nopLogger{})
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: bookedAppointment(1, 7)}}
	notif := &fakeNotifier{}
	svc := newTestService(repo, &fakePayments{}, notif)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "CONFIRMED"})

	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	require.Len(t, notif.sent, 1)
	assert.Equal(t, notifier.KindStatusChanged, notif.sent[0].Kind)
}

func TestUpdateStatus_ForbiddenTransition(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: bookedAppointment(1, 7)}}
	svc := newTestService(repo, &fakePayments{}, &fakeNotifier{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "COMPLETED"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusBooked, repo.byID[1].Status, "status must not change")
}

func TestUpdateStatus_RejectPaidTriggersRefund(t *testing.T) {
	appt := bookedAppointment(1, 7)
	appt.PaymentStatus = domain.PaymentStatusPaid
	appt.PaymentID = ptr.Ptr("pay_42")
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: appt}}
	pay := &fakePayments{}
	svc := newTestService(repo, pay, &fakeNotifier{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "REJECTED"})

	require.NoError(t, err)
	assert.Equal(t, 1, pay.refunds)
	assert.Equal(t, 1, repo.refundCalls)
	assert.Equal(t, domain.PaymentStatusRefundInitiated, appt.PaymentStatus)
}

func TestUpdateStatus_RejectUnpaidSkipsRefund(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: bookedAppointment(1, 7)}}
	pay := &fakePayments{}
	svc := newTestService(repo, pay, &fakeNotifier{})

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "REJECTED"})

	require.NoError(t, err)
	assert.Equal(t, 0, pay.refunds)
}

func TestUpdateStatus_NotifierFailureDoesNotBlock(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: bookedAppointment(1, 7)}}
	svc := newTestService(repo, &fakePayments{}, &fakeNotifier{fail: true})

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "CONFIRMED"})

	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestCreatePaymentOrder_SumsBlock(t *testing.T) {
	first := bookedAppointment(1, 7)
	second := bookedAppointment(2, 7)
	second.Amount = 1500
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: first, 2: second}}
	pay := &fakePayments{}
	svc := newTestService(repo, pay, &fakeNotifier{})

	resp, err := svc.CreatePaymentOrder(context.Background(), 7, []int64{1, 2})

	require.NoError(t, err)
	assert.Equal(t, 2000.0, resp.Amount)
	assert.Equal(t, "order_1", resp.OrderID)
	assert.Equal(t, 1, pay.createdOrders)
}

func TestCreatePaymentOrder_RejectsForeignAppointment(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: bookedAppointment(1, 99)}}
	svc := newTestService(repo, &fakePayments{}, &fakeNotifier{})

	_, err := svc.CreatePaymentOrder(context.Background(), 7, []int64{1})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreatePaymentOrder_RejectsPaid(t *testing.T) {
	appt := bookedAppointment(1, 7)
	appt.PaymentStatus = domain.PaymentStatusPaid
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: appt}}
	svc := newTestService(repo, &fakePayments{}, &fakeNotifier{})

	_, err := svc.CreatePaymentOrder(context.Background(), 7, []int64{1})

	assert.ErrorIs(t, err, ErrNotPayable)
}

func TestVerifyPayment_MarksPaidKeepsBooked(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: bookedAppointment(1, 7)}}
	svc := newTestService(repo, &fakePayments{}, &fakeNotifier{})

	err := svc.VerifyPayment(context.Background(), &models.VerifyPaymentRequest{
		UserID:         7,
		AppointmentIDs: []int64{1},
		OrderID:        "order_1",
		PaymentID:      "pay_42",
		Signature:      "sig",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, repo.byID[1].PaymentStatus)
	assert.Equal(t, domain.StatusBooked, repo.byID[1].Status, "payment does not confirm the appointment")
}

func TestVerifyPayment_BadSignature(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: bookedAppointment(1, 7)}}
	svc := newTestService(repo, &fakePayments{badSignature: true}, &fakeNotifier{})

	err := svc.VerifyPayment(context.Background(), &models.VerifyPaymentRequest{
		UserID:         7,
		AppointmentIDs: []int64{1},
		OrderID:        "order_1",
		PaymentID:      "pay_42",
		Signature:      "forged",
	})

	assert.ErrorIs(t, err, ErrPaymentVerification)
	assert.Equal(t, domain.PaymentStatusPending, repo.byID[1].PaymentStatus)
}

func TestSendDueReminders(t *testing.T) {
	due := bookedAppointment(1, 7)
	due.StartTick = 600
	outside := bookedAppointment(2, 7)
	outside.StartTick = 900
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: due, 2: outside}}
	notif := &fakeNotifier{}
	svc := newTestService(repo, &fakePayments{}, notif)

	sent, err := svc.SendDueReminders(context.Background(), due.Date, 570, 630)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.True(t, due.ReminderSent)
	assert.False(t, outside.ReminderSent)
	require.Len(t, notif.sent, 1)
	assert.Equal(t, notifier.KindReminder, notif.sent[0].Kind)
}

func TestSendDueReminders_NotifyFailureRetriesNextPass(t *testing.T) {
	due := bookedAppointment(1, 7)
	repo := &fakeRepo{byID: map[int64]*domain.Appointment{1: due}}
	svc := newTestService(repo, &fakePayments{}, &fakeNotifier{fail: true})

	sent, err := svc.SendDueReminders(context.Background(), due.Date, 570, 630)

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.False(t, due.ReminderSent, "unsent reminder stays due")
}
