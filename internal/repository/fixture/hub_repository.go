package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/routes-microservice/internal/domain"
	"github.com/routes-microservice/internal/domain/repository"
	"github.com/routes-microservice/internal/pkg/utils"
	"go.uber.org/zap"
)

// hubCatalogFile - формат статического каталога узлов
// (static/data/transporte_ecuador.json)
type hubCatalogFile struct {
	Hubs []hubRecord `json:"hubs"`
}

type hubRecord struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	City string  `json:"city"`
	Kind string  `json:"kind"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type hubRepository struct {
	hubs   []domain.TransportHub
	logger *zap.Logger
}

// NewHubRepository загружает каталог транспортных узлов из JSON-файла.
// Каталог валидируется при загрузке: повреждённый или пустой файл -
// ошибка конфигурации, сервис не стартует.
func NewHubRepository(path string, logger *zap.Logger) (repository.HubRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hub catalog %s: %w", path, err)
	}

	var catalog hubCatalogFile
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse hub catalog %s: %w", path, err)
	}

	if len(catalog.Hubs) == 0 {
		return nil, fmt.Errorf("hub catalog %s contains no hubs", path)
	}

	hubs := make([]domain.TransportHub, 0, len(catalog.Hubs))
	seen := make(map[string]struct{}, len(catalog.Hubs))

	for i, rec := range catalog.Hubs {
		if rec.ID == "" || rec.Name == "" || rec.City == "" {
			return nil, fmt.Errorf("hub catalog %s: record %d has empty id, name or city", path, i)
		}
		if _, ok := seen[rec.ID]; ok {
			return nil, fmt.Errorf("hub catalog %s: duplicate hub id %q", path, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		kind := domain.HubKind(rec.Kind)
		if !domain.IsValidHubKind(kind) {
			return nil, fmt.Errorf("hub catalog %s: hub %q has invalid kind %q", path, rec.ID, rec.Kind)
		}
		if !utils.ValidateCoordinates(rec.Lat, rec.Lon) {
			return nil, fmt.Errorf("hub catalog %s: hub %q has invalid coordinates", path, rec.ID)
		}

		hubs = append(hubs, domain.TransportHub{
			ID:   rec.ID,
			Name: rec.Name,
			City: rec.City,
			Kind: kind,
			Location: domain.GeoPoint{
				Latitude:  rec.Lat,
				Longitude: rec.Lon,
			},
		})
	}

	logger.Info("Transport hub catalog loaded",
		zap.String("path", path),
		zap.Int("hubs", len(hubs)))

	return &hubRepository{hubs: hubs, logger: logger}, nil
}

func (r *hubRepository) ListHubs() []domain.TransportHub {
	return r.hubs
}

func (r *hubRepository) ListHubsByKind(kind domain.HubKind) []domain.TransportHub {
	filtered := make([]domain.TransportHub, 0, len(r.hubs))
	for _, hub := range r.hubs {
		if hub.Kind == kind {
			filtered = append(filtered, hub)
		}
	}
	return filtered
}
