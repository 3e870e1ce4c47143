package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/haircraft/HairCraft-SchedulingService/internal/domain"
	"github.com/haircraft/HairCraft-SchedulingService/pkg/dbmetrics"
	"github.com/haircraft/HairCraft-SchedulingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий каталога услуг и мастеров
// Каталог только читается: управление услугами живёт в админском сервисе
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetServiceByID получает услугу по ID
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.ServiceItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "price", "duration_minutes", "active").
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.ServiceItem
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetServicesByIDs получает услуги по списку ID
// Порядок результата совпадает с порядком запрошенных ID.
// Если хотя бы одна услуга не найдена, возвращает ErrServiceNotFound.
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.ServiceItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(ids) == 0 {
		return []*domain.ServiceItem{}, nil
	}

	query, args, err := psqlbuilder.Select("id", "name", "price", "duration_minutes", "active").
		From("services").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byID := make(map[int64]*domain.ServiceItem, len(ids))
	for rows.Next() {
		var svc domain.ServiceItem
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Price, &svc.DurationMinutes, &svc.Active); err != nil {
			return nil, fmt.Errorf("%w: GetServicesByIDs - scan row: %v", ErrScanRow, err)
		}
		byID[svc.ID] = &svc
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - rows error: %v", ErrScanRow, err)
	}

	services := make([]*domain.ServiceItem, 0, len(ids))
	for _, id := range ids {
		svc, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
		}
		services = append(services, svc)
	}

	return services, nil
}

// GetActiveStylists получает всех активных мастеров
func (r *Repository) GetActiveStylists(ctx context.Context) ([]*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialty", "active").
		From("stylists").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveStylists - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveStylists - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stylists := make([]*domain.Stylist, 0)
	for rows.Next() {
		var st domain.Stylist
		if err := rows.Scan(&st.ID, &st.Name, &st.Specialty, &st.Active); err != nil {
			return nil, fmt.Errorf("%w: GetActiveStylists - scan row: %v", ErrScanRow, err)
		}
		stylists = append(stylists, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveStylists - rows error: %v", ErrScanRow, err)
	}

	return stylists, nil
}

// GetStylistByID получает мастера по ID
func (r *Repository) GetStylistByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialty", "active").
		From("stylists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistByID - build select query: %v", ErrBuildQuery, err)
	}

	var st domain.Stylist
	err = executor.QueryRowContext(ctx, query, args...).Scan(&st.ID, &st.Name, &st.Specialty, &st.Active)

	if err == sql.ErrNoRows {
		return nil, ErrStylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStylistByID - scan stylist: %v", ErrScanRow, err)
	}

	return &st, nil
}
