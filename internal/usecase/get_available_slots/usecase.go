package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	catalogRepo "github.com/haircraft/HairCraft-SchedulingService/internal/infra/storage/catalog"
)

// UseCase use case для получения доступных слотов под выбранный набор услуг
type UseCase struct {
	apptRepo    AppointmentRepository
	catalogRepo CatalogRepository
	hours       domain.OperatingHours
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	catalogRepo CatalogRepository,
	hours domain.OperatingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:    apptRepo,
		catalogRepo: catalogRepo,
		hours:       hours,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Слот считается доступным, когда с него помещается весь блок выбранных
// услуг: каждый получасовой отрезок блока свободен и блок заканчивается
// не позже закрытия салона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, scope=%s, services=%v",
		req.Date.Format(domain.DateFormat), scopeLabel(req.Scope), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услуги и считаем суммарную длительность блока
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: some of services %v not found", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	totalDuration := 0
	for _, svc := range services {
		if !svc.Active {
			uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", svc.ID)
			return nil, ErrServiceNotFound
		}
		totalDuration += svc.EffectiveDuration()
	}

	// 3. Для конкретного мастера проверяем, что он существует и активен
	if !req.Scope.IsAny() {
		stylist, err := uc.catalogRepo.GetStylistByID(ctx, req.Scope.StylistID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStylistNotFound) {
				uc.logger.Warn("GetAvailableSlots: stylist id=%d not found", req.Scope.StylistID)
				return nil, ErrStylistNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get stylist id=%d: %v", req.Scope.StylistID, err)
			return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
		}
		if !stylist.Active {
			uc.logger.Warn("GetAvailableSlots: stylist id=%d is inactive", req.Scope.StylistID)
			return nil, ErrStylistNotFound
		}
	}

	// 4. Получаем записи на дату, занимающие слоты
	appointments, err := uc.apptRepo.GetOccupyingByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	activeStylists := 0
	if req.Scope.IsAny() {
		stylists, err := uc.catalogRepo.GetActiveStylists(ctx)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get active stylists: %v", err)
			return nil, fmt.Errorf("%w: failed to get active stylists: %v", ErrInternal, err)
		}
		activeStylists = len(stylists)
	}

	// 5. Проецируем занятость на сетку и фильтруем старты по длительности
	occupied := domain.OccupiedTicks(uc.hours, appointments, req.Scope, activeStylists)
	starts := domain.AvailableStarts(uc.hours, occupied, totalDuration)

	uc.logger.Info("GetAvailableSlots: %d available starts for date=%s, scope=%s, duration=%dm",
		len(starts), req.Date.Format(domain.DateFormat), scopeLabel(req.Scope), totalDuration)

	return &Response{
		Date:                 req.Date,
		Scope:                req.Scope,
		TotalDurationMinutes: totalDuration,
		Slots:                starts,
	}, nil
}

// scopeLabel возвращает человекочитаемую метку области расписания для логов
func scopeLabel(scope domain.StylistScope) string {
	if scope.IsAny() {
		return "any"
	}
	return fmt.Sprintf("stylist=%d", scope.StylistID)
}
