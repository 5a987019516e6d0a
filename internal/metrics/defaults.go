package metrics

import "github.com/san-kum/springview/internal/sim"

// Defaults returns the metrics recorded for every stored run.
func Defaults(sc sim.Scenario) []sim.Metric {
	return []sim.Metric{
		NewSettleTime(),
		NewOvershoot(),
		NewReference(sc.Springiness, sc.DampingRatio, sc.StepMs),
	}
}
