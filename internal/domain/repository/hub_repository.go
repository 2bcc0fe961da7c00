package repository

import (
	"github.com/routes-microservice/internal/domain"
)

// HubRepository определяет доступ к статическому каталогу транспортных узлов.
// Каталог загружается один раз при старте и неизменяем, поэтому методы
// не принимают context: никакого I/O после загрузки нет.
type HubRepository interface {
	// ListHubs возвращает все узлы каталога
	ListHubs() []domain.TransportHub

	// ListHubsByKind возвращает узлы заданного типа
	ListHubsByKind(kind domain.HubKind) []domain.TransportHub
}
