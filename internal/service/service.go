package service

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/cloud"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/reliability"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/repository"
)

type Services struct {
	Repos       *repository.Repos
	Maintenance *MaintenanceService
	Conditions  *ConditionService
	Reliability *reliability.Client
}

// New wires the service layer. The reliability client and SNS client are
// injected so tests (and cloudless deployments) can leave them out.
func New(db *sqlx.DB, rel *reliability.Client, sns *cloud.SNSClient) *Services {
	repos := repository.New(db)
	return &Services{
		Repos:       repos,
		Maintenance: &MaintenanceService{repos: repos, sns: sns},
		Conditions:  &ConditionService{repos: repos},
		Reliability: rel,
	}
}

// ConditionService ingests condition-monitoring snapshots published by field
// gateways and stores them on the owning asset.
type ConditionService struct {
	repos *repository.Repos
}

func (s *ConditionService) FromMQTT(topic string, payload []byte) error {
	var msg struct {
		EquipmentID string                      `json:"equipment_id"`
		Snapshot    *domain.ConditionMonitoring `json:"snapshot"`
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		return err
	}
	if msg.EquipmentID == "" || msg.Snapshot == nil {
		log.Warn().Str("topic", topic).Msg("condition snapshot missing equipment_id or payload")
		return nil
	}
	return s.repos.UpdateConditionMonitoring(msg.EquipmentID, msg.Snapshot)
}
