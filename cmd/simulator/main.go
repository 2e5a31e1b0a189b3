package main

import (
	"encoding/json"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/config"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/domain"
)

type snapshotMessage struct {
	EquipmentID string                      `json:"equipment_id"`
	Snapshot    *domain.ConditionMonitoring `json:"snapshot"`
}

var zones = []string{"A", "B", "C", "D"}

func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	for i := 0; i < 100; i++ {
		velocity := 1 + rand.Float64()*6
		msg := snapshotMessage{
			EquipmentID: "pump-001",
			Snapshot: &domain.ConditionMonitoring{
				Vibration: &domain.VibrationReading{
					RMSVelocity:  velocity,
					ISO10816Zone: zones[rand.Intn(len(zones))],
				},
				Thermography: &domain.ThermographyReading{
					DeltaT: rand.Float64() * 25,
				},
			},
		}
		payload, _ := json.Marshal(msg)
		token := client.Publish("assets/condition", 0, false, payload)
		token.Wait()
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}
