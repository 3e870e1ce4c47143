package book_appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	catalogRepo "github.com/haircraft/HairCraft-SchedulingService/internal/infra/storage/catalog"
)

// UseCase use case для бронирования блока услуг
type UseCase struct {
	apptRepo     AppointmentRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	hours        domain.OperatingHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	hours domain.OperatingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		hours:        hours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет бронирование блока услуг
//
// Услуги укладываются последовательно внутри непрерывного блока, начиная
// со стартового тика. Каждая услуга создается в собственной сериализуемой
// транзакции с перечитыванием занятости (FOR UPDATE): блок в целом не
// атомарен. Если конкурент занял слот посреди блока, уже созданные записи
// остаются, Execute возвращает частичный Response вместе с ErrSlotTaken.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointments: user=%d, date=%s, start=%s, scope=%s, services=%v",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTick, scopeLabel(req.Scope), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("BookAppointments: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услуги, считаем длительность блока
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("BookAppointments: some of services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("BookAppointments: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	totalDuration := 0
	for _, svc := range services {
		if !svc.Active {
			uc.logger.Warn("BookAppointments: service id=%d is inactive", svc.ID)
			return nil, ErrServiceNotFound
		}
		totalDuration += svc.EffectiveDuration()
	}

	// 3. Проверяем границы рабочих часов до любых проверок занятости:
	// блок за пределами сетки - ошибка запроса, а не занятости
	if !uc.hours.Contains(req.StartTick) {
		uc.logger.Warn("BookAppointments: start %s is outside the slot grid", req.StartTick)
		return nil, ErrOutOfHours
	}
	if uc.hours.BlockEnd(req.StartTick, totalDuration) > uc.hours.CloseTick {
		uc.logger.Warn("BookAppointments: block %s+%dm spills past closing", req.StartTick, totalDuration)
		return nil, ErrOutOfHours
	}

	// 4. Резолвим мастера
	var stylist *domain.Stylist
	if !req.Scope.IsAny() {
		stylist, err = uc.catalogRepo.GetStylistByID(ctx, req.Scope.StylistID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStylistNotFound) {
				uc.logger.Warn("BookAppointments: stylist id=%d not found", req.Scope.StylistID)
				return nil, ErrStylistNotFound
			}
			uc.logger.Error("BookAppointments: failed to get stylist id=%d: %v", req.Scope.StylistID, err)
			return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
		}
		if !stylist.Active {
			uc.logger.Warn("BookAppointments: stylist id=%d is inactive", req.Scope.StylistID)
			return nil, ErrStylistNotFound
		}
	}

	// 5. Локальная предварительная проверка занятости без транзакции.
	// Отсекает заведомо устаревший выбор слота дешево, до serializable
	// транзакций. Не защищает от гонки - этим занимается пункт 6.
	appointments, err := uc.apptRepo.GetOccupyingByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("BookAppointments: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	if req.Scope.IsAny() {
		stylist, err = uc.pickFreeStylist(ctx, appointments, req.StartTick, totalDuration)
		if err != nil {
			return nil, err
		}
	} else {
		occupied := domain.OccupiedTicks(uc.hours, appointments, req.Scope, 0)
		if !domain.StartAvailable(uc.hours, occupied, req.StartTick, totalDuration) {
			uc.logger.Warn("BookAppointments: stale slot %s for stylist id=%d", req.StartTick, stylist.ID)
			return nil, ErrStaleSlot
		}
	}

	// 6. Создаем записи последовательно, услуга за услугой
	resp := &Response{Date: req.Date}
	cursor := req.StartTick

	for _, svc := range services {
		duration := svc.EffectiveDuration()
		chunkEnd := cursor.Add(uc.hours.ChunksNeeded(duration) * uc.hours.SlotGranularityMinutes)

		created, err := uc.createOne(ctx, req, svc, stylist, cursor)
		if err != nil {
			if errors.Is(err, ErrSlotTaken) {
				uc.logger.Warn("BookAppointments: slot %s taken mid-block, %d of %d appointments created",
					cursor, len(resp.Created), len(services))
				// Частичный результат: созданные записи остаются
				return resp, err
			}
			uc.logger.Error("BookAppointments: failed to create appointment for service id=%d: %v", svc.ID, err)
			return resp, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		resp.Created = append(resp.Created, *created)
		resp.TotalAmount += created.Amount
		cursor = chunkEnd
	}

	uc.logger.Info("BookAppointments: created %d appointments for user=%d, total=%.2f",
		len(resp.Created), req.UserID, resp.TotalAmount)

	return resp, nil
}

// createOne создает одну запись в сериализуемой транзакции с перечитыванием
// занятости под блокировкой
func (uc *UseCase) createOne(
	ctx context.Context,
	req *Request,
	svc *domain.ServiceItem,
	stylist *domain.Stylist,
	start domain.Tick,
) (*CreatedAppointment, error) {
	duration := svc.EffectiveDuration()
	end := start.Add(uc.hours.ChunksNeeded(duration) * uc.hours.SlotGranularityMinutes)

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Перечитываем занятость внутри транзакции (FOR UPDATE)
		appointments, err := uc.apptRepo.GetOccupyingByDate(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to re-read appointments: %v", ErrInternal, err)
		}

		for _, appt := range appointments {
			if !appt.Overlaps(start, end) {
				continue
			}
			if appt.StylistID == nil || *appt.StylistID == stylist.ID {
				return ErrSlotTaken
			}
		}

		appointment := &domain.Appointment{
			UserID:          req.UserID,
			ServiceID:       svc.ID,
			StylistID:       &stylist.ID,
			Date:            req.Date,
			StartTick:       start,
			DurationMinutes: duration,
			Amount:          svc.Price,
			Status:          domain.StatusBooked,
			PaymentStatus:   domain.PaymentStatusPending,
			ServiceName:     svc.Name,
			StylistName:     &stylist.Name,
		}

		result, err = uc.apptRepo.Create(txCtx, appointment)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &CreatedAppointment{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		StylistID:       result.StylistID,
		StartTime:       result.StartTick,
		DurationMinutes: result.DurationMinutes,
		Amount:          result.Amount,
		Status:          string(result.Status),
	}, nil
}

// pickFreeStylist выбирает мастера, свободного на весь блок
// Записи без назначенного мастера блокируют всех
func (uc *UseCase) pickFreeStylist(
	ctx context.Context,
	appointments []*domain.Appointment,
	start domain.Tick,
	totalDuration int,
) (*domain.Stylist, error) {
	stylists, err := uc.catalogRepo.GetActiveStylists(ctx)
	if err != nil {
		uc.logger.Error("BookAppointments: failed to get active stylists: %v", err)
		return nil, fmt.Errorf("%w: failed to get active stylists: %v", ErrInternal, err)
	}
	if len(stylists) == 0 {
		uc.logger.Warn("BookAppointments: no active stylists")
		return nil, ErrStaleSlot
	}

	end := uc.hours.BlockEnd(start, totalDuration)

	for _, candidate := range stylists {
		free := true
		for _, appt := range appointments {
			if !appt.Overlaps(start, end) {
				continue
			}
			if appt.StylistID == nil || *appt.StylistID == candidate.ID {
				free = false
				break
			}
		}
		if free {
			return candidate, nil
		}
	}

	uc.logger.Warn("BookAppointments: no stylist free for block %s+%dm", start, totalDuration)
	return nil, ErrStaleSlot
}

// scopeLabel возвращает человекочитаемую метку области расписания для логов
func scopeLabel(scope domain.StylistScope) string {
	if scope.IsAny() {
		return "any"
	}
	return fmt.Sprintf("stylist=%d", scope.StylistID)
}
