package reliability

import (
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/numeric"
)

// AnalysisRequest is the canonical wire request: nested vibration
// measurements for two components (pump, motor) at two positions each, plus
// operational data and equipment identification.
type AnalysisRequest struct {
	Equipment   EquipmentInfo   `json:"equipment"`
	Vibration   VibrationData   `json:"vibration"`
	Operational OperationalData `json:"operational"`
}

type EquipmentInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type VibrationData struct {
	Pump  ComponentVibration `json:"pump"`
	Motor ComponentVibration `json:"motor"`
}

type ComponentVibration struct {
	DriveEnd    PositionReadings `json:"drive_end"`
	NonDriveEnd PositionReadings `json:"non_drive_end"`
}

// PositionReadings holds one measurement point: velocity and acceleration on
// three axes, bearing vibration and gap, and contact temperature.
type PositionReadings struct {
	VelocityHorizontal     float64 `json:"velocity_horizontal"`
	VelocityVertical       float64 `json:"velocity_vertical"`
	VelocityAxial          float64 `json:"velocity_axial"`
	AccelerationHorizontal float64 `json:"acceleration_horizontal"`
	AccelerationVertical   float64 `json:"acceleration_vertical"`
	AccelerationAxial      float64 `json:"acceleration_axial"`
	BearingVibration       float64 `json:"bearing_vibration"`
	BearingGap             float64 `json:"bearing_gap"`
	Temperature            float64 `json:"temperature"`
}

type OperationalData struct {
	OperatingHours     float64 `json:"operating_hours"`
	Power              float64 `json:"power"`
	Efficiency         float64 `json:"efficiency"`
	AmbientTemperature float64 `json:"ambient_temperature"`
	Pressure           float64 `json:"pressure"`
	Flow               float64 `json:"flow"`
}

// BuildAnalysisRequest converts caller-supplied form values (string or
// numeric, keyed like "pump_de_velocity_h") into the canonical request.
// Every field goes through the bounded parser with a 0 fallback, so a blank
// or garbled form field contributes nothing instead of failing the analysis.
func BuildAnalysisRequest(form map[string]any) AnalysisRequest {
	str := func(key string) string {
		if s, ok := form[key].(string); ok {
			return s
		}
		return ""
	}
	num := func(key string, min, max float64) float64 {
		return numeric.SafeParseNumber(form[key], 0, min, max, "form."+key)
	}
	position := func(prefix string) PositionReadings {
		return PositionReadings{
			VelocityHorizontal:     num(prefix+"_velocity_h", 0, 1000),
			VelocityVertical:       num(prefix+"_velocity_v", 0, 1000),
			VelocityAxial:          num(prefix+"_velocity_a", 0, 1000),
			AccelerationHorizontal: num(prefix+"_acceleration_h", 0, 1000),
			AccelerationVertical:   num(prefix+"_acceleration_v", 0, 1000),
			AccelerationAxial:      num(prefix+"_acceleration_a", 0, 1000),
			BearingVibration:       num(prefix+"_bearing_vibration", 0, 1000),
			BearingGap:             num(prefix+"_bearing_gap", 0, 1000),
			Temperature:            num(prefix+"_temperature", -50, 500),
		}
	}

	return AnalysisRequest{
		Equipment: EquipmentInfo{
			ID:   str("equipment_id"),
			Name: str("equipment_name"),
			Type: str("equipment_type"),
		},
		Vibration: VibrationData{
			Pump: ComponentVibration{
				DriveEnd:    position("pump_de"),
				NonDriveEnd: position("pump_nde"),
			},
			Motor: ComponentVibration{
				DriveEnd:    position("motor_de"),
				NonDriveEnd: position("motor_nde"),
			},
		},
		Operational: OperationalData{
			OperatingHours:     num("operating_hours", 0, 1e9),
			Power:              num("power", 0, 1e6),
			Efficiency:         num("efficiency", 0, 100),
			AmbientTemperature: num("ambient_temperature", -50, 200),
			Pressure:           num("pressure", 0, 1e6),
			Flow:               num("flow", 0, 1e6),
		},
	}
}

// velocityReadings lists every velocity measurement in the request, in a
// fixed order. The fallback averages the positive ones.
func (r AnalysisRequest) velocityReadings() []float64 {
	positions := []PositionReadings{
		r.Vibration.Pump.DriveEnd,
		r.Vibration.Pump.NonDriveEnd,
		r.Vibration.Motor.DriveEnd,
		r.Vibration.Motor.NonDriveEnd,
	}
	out := make([]float64, 0, len(positions)*3)
	for _, p := range positions {
		out = append(out, p.VelocityHorizontal, p.VelocityVertical, p.VelocityAxial)
	}
	return out
}
