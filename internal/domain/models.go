package domain

import "time"

// Equipment status values as supplied by the asset registry.
const (
	StatusOperational = "operational"
	StatusMaintenance = "maintenance"
	StatusFault       = "fault"
	StatusOffline     = "offline"
	StatusTesting     = "testing"
)

// Equipment condition grades.
const (
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionPoor      = "poor"
	ConditionCritical  = "critical"
)

// Equipment is one physical asset as the registry reports it. Every field
// beyond the identifiers is optional: callers must treat missing telemetry
// as normal, not as an error.
type Equipment struct {
	ID           string `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Manufacturer string `db:"manufacturer" json:"manufacturer"`
	Model        string `db:"model" json:"model"`

	Status    string `db:"status" json:"status"`
	Condition string `db:"condition" json:"condition"`

	OperatingHours float64 `db:"operating_hours" json:"operatingHours"`

	// InstallationDate is nil when the registry has no (or an unparseable)
	// install record.
	InstallationDate *time.Time `json:"installationDate,omitempty"`

	// Specifications is a sparse map; values arrive as strings or numbers
	// depending on the upstream form. Known keys: ratedPower, efficiency.
	Specifications map[string]any `json:"specifications,omitempty"`

	ConditionMonitoring *ConditionMonitoring `json:"conditionMonitoring,omitempty"`

	FailureHistory     []FailureRecord     `json:"failureHistory,omitempty"`
	MaintenanceHistory []MaintenanceRecord `json:"maintenanceHistory,omitempty"`
}

// ConditionMonitoring is the optional live-telemetry snapshot attached to an
// asset. Each sub-structure is independently optional.
type ConditionMonitoring struct {
	Vibration    *VibrationReading    `json:"vibration,omitempty"`
	Thermography *ThermographyReading `json:"thermography,omitempty"`
	Alerts       []ConditionAlert     `json:"alerts,omitempty"`
}

// VibrationReading carries an ISO 10816 zone (A best .. D worst) and an RMS
// velocity in mm/s. RMSVelocity is `any` because field devices report it as
// either a number or a string.
type VibrationReading struct {
	RMSVelocity  any    `json:"rmsVelocity,omitempty"`
	ISO10816Zone string `json:"iso10816Zone,omitempty"`
}

// ThermographyReading carries the temperature rise over ambient in Kelvin.
type ThermographyReading struct {
	DeltaT any `json:"deltaT,omitempty"`
}

// ConditionAlert severity values: critical, warning, info.
type ConditionAlert struct {
	Severity string `json:"severity"`
	Message  string `json:"message,omitempty"`
}

// FailureRecord and MaintenanceRecord: only their count matters to the KPI
// engine; content is carried for the registry API.
type FailureRecord struct {
	Date        *time.Time `json:"date,omitempty"`
	Description string     `json:"description,omitempty"`
}

type MaintenanceRecord struct {
	Date *time.Time `json:"date,omitempty"`
	Type string     `json:"type,omitempty"`
}

// Hierarchy: Zone -> Station -> {Line | System} -> Equipment.

type Zone struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Stations []*Station `json:"stations,omitempty"`
}

type Station struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Lines   []*Line   `json:"lines,omitempty"`
	Systems []*System `json:"systems,omitempty"`
}

type Line struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Equipment []*Equipment `json:"equipment,omitempty"`
}

type System struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Equipment []*Equipment `json:"equipment,omitempty"`
}

// EquipmentKPIs is the per-asset indicator set. Percentages are in [0,100];
// MTBF, MTTR and downtime are hours; maintenance cost is currency per year.
type EquipmentKPIs struct {
	HealthScore      float64 `json:"healthScore"`
	Availability     float64 `json:"availability"`
	Reliability      float64 `json:"reliability"`
	Efficiency       float64 `json:"efficiency"`
	MTBF             float64 `json:"mtbf"`
	MTTR             float64 `json:"mttr"`
	UtilizationRate  float64 `json:"utilizationRate"`
	EnergyEfficiency float64 `json:"energyEfficiency"`
	MaintenanceCost  float64 `json:"maintenanceCost"`
	DowntimeHours    float64 `json:"downtimeHours"`
	VibrationScore   float64 `json:"vibrationScore"`
	TemperatureScore float64 `json:"temperatureScore"`
}

// HierarchyKPIs aggregates a population of assets (a flat list or a
// flattened hierarchy subtree).
type HierarchyKPIs struct {
	TotalEquipment   int `json:"totalEquipment"`
	OperationalCount int `json:"operationalCount"`
	MaintenanceCount int `json:"maintenanceCount"`
	FaultCount       int `json:"faultCount"`

	AvgHealthScore  float64 `json:"avgHealthScore"`
	AvgAvailability float64 `json:"avgAvailability"`
	AvgReliability  float64 `json:"avgReliability"`
	AvgEfficiency   float64 `json:"avgEfficiency"`

	TotalMaintenanceCost float64 `json:"totalMaintenanceCost"`
	TotalDowntimeHours   float64 `json:"totalDowntimeHours"`
	CriticalAlerts       int     `json:"criticalAlerts"`

	OEE float64 `json:"oee"`
}
