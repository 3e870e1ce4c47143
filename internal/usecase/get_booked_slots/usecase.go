package get_booked_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	catalogRepo "github.com/haircraft/HairCraft-SchedulingService/internal/infra/storage/catalog"
)

// UseCase use case для получения занятых слотов на дату
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

// Execute выполняет use case получения занятых слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookedSlots: date=%s, scope=%s",
		req.Date.Format(domain.DateFormat), scopeLabel(req.Scope))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookedSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Для конкретного мастера проверяем, что он существует и активен
	if !req.Scope.IsAny() {
		stylist, err := uc.catalogRepo.GetStylistByID(ctx, req.Scope.StylistID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStylistNotFound) {
				uc.logger.Warn("GetBookedSlots: stylist id=%d not found", req.Scope.StylistID)
				return nil, ErrStylistNotFound
			}
			uc.logger.Error("GetBookedSlots: failed to get stylist id=%d: %v", req.Scope.StylistID, err)
			return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
		}
		if !stylist.Active {
			uc.logger.Warn("GetBookedSlots: stylist id=%d is inactive", req.Scope.StylistID)
			return nil, ErrStylistNotFound
		}
	}

	// 3. Получаем записи на дату, занимающие слоты
	appointments, err := uc.apptRepo.GetOccupyingByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetBookedSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Для области "весь салон" занятость агрегируется по числу
	// активных мастеров
	activeStylists := 0
	if req.Scope.IsAny() {
		stylists, err := uc.catalogRepo.GetActiveStylists(ctx)
		if err != nil {
			uc.logger.Error("GetBookedSlots: failed to get active stylists: %v", err)
			return nil, fmt.Errorf("%w: failed to get active stylists: %v", ErrInternal, err)
		}
		activeStylists = len(stylists)
	}

	// 5. Проецируем записи на сетку слотов
	occupied := domain.OccupiedTicks(uc.hours, appointments, req.Scope, activeStylists)

	uc.logger.Info("GetBookedSlots: %d occupied ticks for date=%s, scope=%s",
		len(occupied), req.Date.Format(domain.DateFormat), scopeLabel(req.Scope))

	return &Response{
		Date:  req.Date,
		Scope: req.Scope,
		Slots: occupied.Ticks(),
	}, nil
}

// scopeLabel возвращает человекочитаемую метку области расписания для логов
func scopeLabel(scope domain.StylistScope) string {
	if scope.IsAny() {
		return "any"
	}
	return fmt.Sprintf("stylist=%d", scope.StylistID)
}
