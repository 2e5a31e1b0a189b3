// Package repository reads the asset registry. The registry is the only
// persistence collaborator of the KPI engine; KPI results themselves are
// never stored, they are re-derived on every request.
package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/domain"
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

const equipmentColumns = `e.id, e.name, e.manufacturer, e.model, e.status, e.condition,
	e.operating_hours, e.installation_date, e.specifications,
	e.condition_monitoring, e.failure_history, e.maintenance_history`

// equipmentRow maps the registry table; the sparse JSONB columns are decoded
// leniently afterwards.
type equipmentRow struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Manufacturer       string         `db:"manufacturer"`
	Model              string         `db:"model"`
	Status             string         `db:"status"`
	Condition          string         `db:"condition"`
	OperatingHours     float64        `db:"operating_hours"`
	InstallationDate   sql.NullTime   `db:"installation_date"`
	Specifications     sql.NullString `db:"specifications"`
	ConditionMonitor   sql.NullString `db:"condition_monitoring"`
	FailureHistory     sql.NullString `db:"failure_history"`
	MaintenanceHistory sql.NullString `db:"maintenance_history"`
}

func (r *Repos) GetEquipment(id string) (*domain.Equipment, error) {
	var row equipmentRow
	err := r.db.Get(&row, `SELECT `+equipmentColumns+` FROM equipment e WHERE e.id = $1`, id)
	if err != nil {
		return nil, err
	}
	return rowToEquipment(row), nil
}

func (r *Repos) ListEquipment() ([]*domain.Equipment, error) {
	var rows []equipmentRow
	err := r.db.Select(&rows, `SELECT `+equipmentColumns+` FROM equipment e ORDER BY e.id`)
	if err != nil {
		return nil, err
	}
	return rowsToEquipment(rows), nil
}

// ListEquipmentByZone walks the containment tree in SQL: equipment hangs off
// a line or a system, either of which belongs to a station in the zone.
func (r *Repos) ListEquipmentByZone(zoneID string) ([]*domain.Equipment, error) {
	var rows []equipmentRow
	err := r.db.Select(&rows, `
		SELECT `+equipmentColumns+`
		FROM equipment e
		LEFT JOIN lines l ON e.line_id = l.id
		LEFT JOIN systems s ON e.system_id = s.id
		LEFT JOIN stations st ON st.id = COALESCE(l.station_id, s.station_id)
		WHERE st.zone_id = $1
		ORDER BY e.id`, zoneID)
	if err != nil {
		return nil, err
	}
	return rowsToEquipment(rows), nil
}

func (r *Repos) ListEquipmentByStation(stationID string) ([]*domain.Equipment, error) {
	var rows []equipmentRow
	err := r.db.Select(&rows, `
		SELECT `+equipmentColumns+`
		FROM equipment e
		LEFT JOIN lines l ON e.line_id = l.id
		LEFT JOIN systems s ON e.system_id = s.id
		WHERE COALESCE(l.station_id, s.station_id) = $1
		ORDER BY e.id`, stationID)
	if err != nil {
		return nil, err
	}
	return rowsToEquipment(rows), nil
}

// UpdateConditionMonitoring replaces an asset's live-telemetry snapshot.
// Used by the MQTT ingestor.
func (r *Repos) UpdateConditionMonitoring(equipmentID string, snapshot *domain.ConditionMonitoring) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`UPDATE equipment SET condition_monitoring = $2, updated_at = $3 WHERE id = $1`,
		equipmentID, string(payload), time.Now())
	return err
}

func rowsToEquipment(rows []equipmentRow) []*domain.Equipment {
	out := make([]*domain.Equipment, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToEquipment(row))
	}
	return out
}

// rowToEquipment decodes the JSONB columns leniently: a malformed column is
// logged and left empty so one bad record never poisons a listing.
func rowToEquipment(row equipmentRow) *domain.Equipment {
	eq := &domain.Equipment{
		ID:             row.ID,
		Name:           row.Name,
		Manufacturer:   row.Manufacturer,
		Model:          row.Model,
		Status:         row.Status,
		Condition:      row.Condition,
		OperatingHours: row.OperatingHours,
	}
	if row.InstallationDate.Valid {
		t := row.InstallationDate.Time
		eq.InstallationDate = &t
	}
	decodeColumn(row.Specifications, "specifications", row.ID, &eq.Specifications)
	decodeColumn(row.ConditionMonitor, "condition_monitoring", row.ID, &eq.ConditionMonitoring)
	decodeColumn(row.FailureHistory, "failure_history", row.ID, &eq.FailureHistory)
	decodeColumn(row.MaintenanceHistory, "maintenance_history", row.ID, &eq.MaintenanceHistory)
	return eq
}

func decodeColumn[T any](col sql.NullString, name, equipmentID string, dst *T) {
	if !col.Valid || col.String == "" {
		return
	}
	if err := json.Unmarshal([]byte(col.String), dst); err != nil {
		log.Warn().Err(err).Str("equipment", equipmentID).Str("column", name).
			Msg("malformed registry column, ignoring")
	}
}
