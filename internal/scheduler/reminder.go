package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
)

// AppointmentsService интерфейс сервиса записей для планировщика
type AppointmentsService interface {
	SendDueReminders(ctx context.Context, date time.Time, from, to domain.Tick) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Reminder периодически рассылает напоминания о предстоящих записях
// Окно [сейчас, сейчас+lead) пересчитывается на каждом проходе, поэтому
// пропущенный из-за сбоя проход подхватывается следующим
type Reminder struct {
	cron        *cron.Cron
	service     AppointmentsService
	spec        string
	leadMinutes int
	logger      Logger
}

// NewReminder создает планировщик напоминаний
// spec - стандартное cron выражение, leadMinutes - за сколько минут до
// начала записи отправляется напоминание
func NewReminder(service AppointmentsService, spec string, leadMinutes int, logger Logger) *Reminder {
	return &Reminder{
		cron:        cron.New(),
		service:     service,
		spec:        spec,
		leadMinutes: leadMinutes,
		logger:      logger,
	}
}

// Start запускает планировщик
func (r *Reminder) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.run); err != nil {
		return err
	}

	r.cron.Start()
	r.logger.Info("reminder scheduler started: spec=%q, lead=%dm", r.spec, r.leadMinutes)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего прохода
func (r *Reminder) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.logger.Info("reminder scheduler stopped")
}

func (r *Reminder) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := domain.TickFromTime(now)
	to := from.Add(r.leadMinutes)

	sent, err := r.service.SendDueReminders(ctx, date, from, to)
	if err != nil {
		r.logger.Error("reminder scheduler: pass failed: %v", err)
		return
	}

	if sent > 0 {
		r.logger.Info("reminder scheduler: sent %d reminders", sent)
	}
}
