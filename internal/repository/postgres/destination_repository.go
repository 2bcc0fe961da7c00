package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/domain/repository"
	"github.com/routes-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type destinationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewDestinationRepository создаёт репозиторий направлений поверх
// таблицы destinos маркетплейса
func NewDestinationRepository(db *DB) repository.DestinationRepository {
	return &destinationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *destinationRepository) GetByID(ctx context.Context, id int64) (*domain.Destination, error) {
	query := `
		SELECT id, nombre, COALESCE(provincia, ''), COALESCE(ciudad, ''), region,
		       latitud, longitud,
		       COALESCE(precio_promedio_minimo, 0), COALESCE(precio_promedio_maximo, 0)
		FROM destinos
		WHERE id = $1 AND activo = true
	`

	var d domain.Destination
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.Province, &d.City, &d.Region,
		&d.Location.Latitude, &d.Location.Longitude,
		&d.PriceMin, &d.PriceMax,
	)
	if err == sql.ErrNoRows {
		return nil, errors.ErrDestinationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get destination", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &d, nil
}

func (r *destinationRepository) ListActive(ctx context.Context, regions []domain.Region) ([]*domain.Destination, error) {
	query := `
		SELECT id, nombre, COALESCE(provincia, ''), COALESCE(ciudad, ''), region,
		       latitud, longitud,
		       COALESCE(precio_promedio_minimo, 0), COALESCE(precio_promedio_maximo, 0)
		FROM destinos
		WHERE activo = true
	`
	args := []interface{}{}

	if len(regions) > 0 {
		regionStrs := make([]string, 0, len(regions))
		for _, reg := range regions {
			regionStrs = append(regionStrs, string(reg))
		}
		query += ` AND region = ANY($1)`
		args = append(args, pq.Array(regionStrs))
	}

	query += ` ORDER BY nombre`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list destinations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	var destinations []*domain.Destination
	for rows.Next() {
		var d domain.Destination
		err := rows.Scan(
			&d.ID, &d.Name, &d.Province, &d.City, &d.Region,
			&d.Location.Latitude, &d.Location.Longitude,
			&d.PriceMin, &d.PriceMax,
		)
		if err != nil {
			r.logger.Error("Failed to scan destination", zap.Error(err))
			continue
		}
		destinations = append(destinations, &d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Destination rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return destinations, nil
}
