package service

import (
	"github.com/MKhiriev/case-mirror/internal/adapter"
	"github.com/MKhiriev/case-mirror/internal/logger"
	"github.com/MKhiriev/case-mirror/internal/store"
)

type Services struct {
	SyncEngine       SyncEngine
	CaseWriteService CaseWriteService
}

func NewServices(storages store.Storages, gateway adapter.RemoteCaseGateway, logger *logger.Logger) *Services {
	return &Services{
		SyncEngine:       NewSyncEngine(gateway, storages.CaseRepository, logger),
		CaseWriteService: NewCaseWriteService(gateway, storages.CaseRepository, logger),
	}
}
