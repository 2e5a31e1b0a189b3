package service

import (
	"fmt"
	"time"

	"github.com/ANIKETSHETTY47/energy-grid-analytics-go/maintenance"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/cloud"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/kpi"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/repository"
)

// baselineFailureRate applies to assets with no recorded failures; a plant
// asset is never assumed failure-free forever.
const baselineFailureRate = 0.3

// MaintenanceService layers failure-risk prediction on top of the KPI
// engine.
type MaintenanceService struct {
	repos *repository.Repos
	sns   *cloud.SNSClient
}

type MaintenancePrediction struct {
	EquipmentID       string    `json:"equipment_id"`
	CurrentHealth     float64   `json:"current_health"`
	FailureRisk30Days float64   `json:"failure_risk_30_days"`
	FailureRisk90Days float64   `json:"failure_risk_90_days"`
	NextServiceDate   time.Time `json:"next_service_date"`
	DaysUntilService  int       `json:"days_until_service"`
	Recommendation    string    `json:"recommendation"`
}

// PredictMaintenanceNeeds derives an asset-health profile from the registry
// record and projects 30/90-day failure risk and the next service date.
func (s *MaintenanceService) PredictMaintenanceNeeds(equipmentID string) (*MaintenancePrediction, error) {
	eq, err := s.repos.GetEquipment(equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}

	kpis := kpi.CalculateEquipmentKPIs(eq)

	assetHealth := maintenance.AssetHealth{
		HoursRun:           eq.OperatingHours,
		FailureRatePerYear: failureRatePerYear(eq),
		LastService:        lastServiceDate(eq),
		ServiceInterval:    365 * 24 * time.Hour,
	}

	risk30 := maintenance.FailureRisk(assetHealth.FailureRatePerYear, 30*24*time.Hour)
	risk90 := maintenance.FailureRisk(assetHealth.FailureRatePerYear, 90*24*time.Hour)
	nextService := maintenance.NextServiceDate(assetHealth)

	prediction := &MaintenancePrediction{
		EquipmentID:       equipmentID,
		CurrentHealth:     kpis.HealthScore,
		FailureRisk30Days: risk30 * 100,
		FailureRisk90Days: risk90 * 100,
		NextServiceDate:   nextService,
		DaysUntilService:  int(time.Until(nextService).Hours() / 24),
		Recommendation:    recommendation(risk30, kpis.HealthScore),
	}

	if risk30 > 0.5 || kpis.HealthScore < 75 {
		s.sendMaintenanceAlert(prediction)
	}

	return prediction, nil
}

func failureRatePerYear(eq *domain.Equipment) float64 {
	failures := float64(len(eq.FailureHistory))
	if failures == 0 {
		return baselineFailureRate
	}
	years := 1.0
	if eq.InstallationDate != nil {
		years = time.Since(*eq.InstallationDate).Hours() / 24 / 365
		if years < 1 {
			years = 1
		}
	}
	return failures / years
}

func lastServiceDate(eq *domain.Equipment) time.Time {
	var last time.Time
	for _, m := range eq.MaintenanceHistory {
		if m.Date != nil && m.Date.After(last) {
			last = *m.Date
		}
	}
	if last.IsZero() {
		if eq.InstallationDate != nil {
			return *eq.InstallationDate
		}
		return time.Now()
	}
	return last
}

func recommendation(risk float64, health float64) string {
	if risk > 0.5 || health < 60 {
		return "URGENT: Schedule immediate maintenance inspection"
	} else if risk > 0.3 || health < 75 {
		return "Schedule maintenance within next 30 days"
	} else if risk > 0.15 || health < 85 {
		return "Plan maintenance within next 90 days"
	}
	return "Equipment operating normally"
}

func (s *MaintenanceService) sendMaintenanceAlert(prediction *MaintenancePrediction) {
	if s.sns == nil {
		return
	}
	if err := s.sns.SendMaintenanceAlert(
		prediction.EquipmentID,
		prediction.CurrentHealth,
		prediction.NextServiceDate,
	); err != nil {
		log.Error().Err(err).Str("equipment", prediction.EquipmentID).Msg("maintenance alert failed")
	}
}
