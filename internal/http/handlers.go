package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/kpi"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/reliability"
	"github.com/ANIKETSHETTY47/smart-asset-maintenance-system/internal/service"
)

func Register(app *fiber.App, svcs *service.Services) {
	app.Get("/equipment", func(c *fiber.Ctx) error {
		items, err := svcs.Repos.ListEquipment()
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(items)
	})

	app.Get("/equipment/:id/kpis", func(c *fiber.Ctx) error {
		eq, err := svcs.Repos.GetEquipment(c.Params("id"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": "equipment not found"})
		}
		return c.JSON(kpi.CalculateEquipmentKPIs(eq))
	})

	app.Get("/zones/:id/kpis", func(c *fiber.Ctx) error {
		items, err := svcs.Repos.ListEquipmentByZone(c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(kpi.CalculateHierarchyKPIs(items))
	})

	app.Get("/stations/:id/kpis", func(c *fiber.Ctx) error {
		items, err := svcs.Repos.ListEquipmentByStation(c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(kpi.CalculateHierarchyKPIs(items))
	})

	// Caller-supplied records: a malformed body is not an error, it computes
	// the documented zero result.
	app.Post("/kpis/equipment", func(c *fiber.Ctx) error {
		var eq *domain.Equipment
		if err := json.Unmarshal(c.Body(), &eq); err != nil {
			eq = nil
		}
		return c.JSON(kpi.CalculateEquipmentKPIs(eq))
	})

	app.Post("/kpis/hierarchy", func(c *fiber.Ctx) error {
		items := kpi.ParseEquipmentList(c.Body())
		return c.JSON(kpi.CalculateHierarchyKPIs(items))
	})

	app.Post("/reliability/analyze", func(c *fiber.Ctx) error {
		var form map[string]any
		if err := json.Unmarshal(c.Body(), &form); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "body must be a JSON object"})
		}
		req := reliability.BuildAnalysisRequest(form)
		return c.JSON(svcs.Reliability.Analyze(c.Context(), req))
	})

	app.Get("/equipment/:id/maintenance-prediction", func(c *fiber.Ctx) error {
		prediction, err := svcs.Maintenance.PredictMaintenanceNeeds(c.Params("id"))
		if err != nil {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(prediction)
	})
}
