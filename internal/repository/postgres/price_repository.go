package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/domain/repository"
	"github.com/routes-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

// defaultServiceLimit - лимит каталожной выдачи услуг (как в маркетплейсе)
const defaultServiceLimit = 50

type priceRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPriceRepository создаёт репозиторий живых цен поверх таблиц
// servicios/destinos маркетплейса
func NewPriceRepository(db *DB) repository.ServicePriceRepository {
	return &priceRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *priceRepository) ListTransportPrices(ctx context.Context) ([]domain.ServicePriceRecord, error) {
	query := `
		SELECT s.nombre, COALESCE(d.nombre, ''), COALESCE(d.ciudad, ''), s.precio
		FROM servicios s
		LEFT JOIN destinos d ON d.id = s.destino_id
		WHERE s.tipo = 'transporte' AND s.activo = true AND s.disponible = true
		ORDER BY d.nombre
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list transport prices", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var records []domain.ServicePriceRecord
	for rows.Next() {
		var rec domain.ServicePriceRecord
		if err := rows.Scan(&rec.ServiceName, &rec.DestinationName, &rec.DestinationCity, &rec.Price); err != nil {
			r.logger.Error("Failed to scan price record", zap.Error(err))
			continue
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Price rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return records, nil
}

func (r *priceRepository) ListTransportServices(
	ctx context.Context,
	filter repository.ServicePriceFilter,
) ([]domain.ServicePriceRecord, error) {
	query := `
		SELECT s.nombre, COALESCE(d.nombre, ''), COALESCE(d.ciudad, ''), s.precio
		FROM servicios s
		LEFT JOIN destinos d ON d.id = s.destino_id
		WHERE s.tipo = 'transporte' AND s.activo = true AND s.disponible = true
	`
	args := []interface{}{}

	if filter.Destination != "" {
		args = append(args, "%"+filter.Destination+"%")
		idx := len(args)
		query += fmt.Sprintf(` AND (d.nombre ILIKE $%d OR d.ciudad ILIKE $%d)`, idx, idx)
	}

	if filter.MaxPrice > 0 {
		args = append(args, filter.MaxPrice)
		query += fmt.Sprintf(` AND s.precio <= $%d`, len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultServiceLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(` ORDER BY d.nombre LIMIT $%d`, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list transport services", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var records []domain.ServicePriceRecord
	for rows.Next() {
		var rec domain.ServicePriceRecord
		if err := rows.Scan(&rec.ServiceName, &rec.DestinationName, &rec.DestinationCity, &rec.Price); err != nil {
			r.logger.Error("Failed to scan service record", zap.Error(err))
			continue
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Service rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return records, nil
}
