package calc

import (
	"errors"
	"fmt"
	"sort"

	"chimney_draft/internal/models"
)

var (
	// ErrNoAppliances rejects empty appliance sets.
	ErrNoAppliances = errors.New("at least one appliance is required")

	// ErrConnectorMismatch rejects a connector list whose length differs
	// from the appliance list.
	ErrConnectorMismatch = errors.New("one connector segment is required per appliance")
)

// CombinedCFM merges several operating appliances' flue streams into one
// common-vent design condition. The mixed temperature is the mass-weighted
// mean in the Rankine domain (adiabatic mixing at constant Cp), and the
// combined CFM is re-derived from total mass flow at that mixed temperature.
// Summing the individual CFMs would overstate the flow, since each CFM is
// referenced to a different density.
func CombinedCFM(appliances []models.Appliance) (models.CombinedFlow, error) {
	if len(appliances) == 0 {
		return models.CombinedFlow{}, ErrNoAppliances
	}

	flows := make([]models.ApplianceFlow, 0, len(appliances))
	totalMassFlow := 0.0
	weightedTempR := 0.0

	for i, app := range appliances {
		result, err := CFMFromCombustion(app.MBH, app.CO2Percent, app.FlueTempF, app.Fuel)
		if err != nil {
			return models.CombinedFlow{}, fmt.Errorf("appliance %d: %w", i+1, err)
		}

		totalMassFlow += result.MassFlowLbmMin
		weightedTempR += result.MassFlowLbmMin * (app.FlueTempF + rankineOffset)

		category := app.Category
		if category == "" {
			category = models.CategoryCustom
		}
		flows = append(flows, models.ApplianceFlow{
			Index:          i + 1,
			MBH:            app.MBH,
			CFM:            result.CFM,
			MassFlowLbmMin: result.MassFlowLbmMin,
			TempF:          app.FlueTempF,
			Category:       category,
		})
	}

	// Degenerate-input guard: with zero total mass flow there is nothing to
	// weight, so take the first appliance's temperature.
	mixedTempF := appliances[0].FlueTempF
	if totalMassFlow > 0 {
		mixedTempF = weightedTempR/totalMassFlow - rankineOffset
	}

	rhoMixed := AirDensity(mixedTempF)
	return models.CombinedFlow{
		TotalCFM:            totalMassFlow / rhoMixed,
		TotalMassFlowLbmMin: totalMassFlow,
		MixedTempF:          mixedTempF,
		DensityAtMixedTemp:  rhoMixed,
		Appliances:          flows,
	}, nil
}

// AnalyzeConnector runs one appliance's individual connector at the
// appliance's own flue temperature. Connectors are evaluated at standard
// barometric pressure, like the rest of the multi-appliance path.
func AnalyzeConnector(app models.Appliance, connector models.DuctSegment, outsideTempF float64) (models.ConnectorAnalysis, error) {
	combustion, err := CFMFromCombustion(app.MBH, app.CO2Percent, app.FlueTempF, app.Fuel)
	if err != nil {
		return models.ConnectorAnalysis{}, err
	}

	analysis, err := AnalyzeSystem(combustion.CFM, connector, app.FlueTempF, outsideTempF, StandardBarometricInHg)
	if err != nil {
		return models.ConnectorAnalysis{}, err
	}

	return models.ConnectorAnalysis{
		Connector: analysis,
		CFM:       combustion.CFM,
		Appliance: app,
	}, nil
}

// operatingSubset selects the appliances considered running under a
// scenario. Ties on fuel input are broken by input order (stable sort), so
// "drop the largest" removes the first of equal-sized units.
func operatingSubset(appliances []models.Appliance, scenario models.Scenario) []models.Appliance {
	switch scenario {
	case models.ScenarioAllMinusOne:
		if len(appliances) < 2 {
			return appliances
		}
		sorted := make([]models.Appliance, len(appliances))
		copy(sorted, appliances)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MBH > sorted[j].MBH })
		return sorted[1:]
	case models.ScenarioSingleLargest:
		largest := appliances[0]
		for _, app := range appliances[1:] {
			if app.MBH > largest.MBH {
				largest = app
			}
		}
		return []models.Appliance{largest}
	case models.ScenarioSingleSmallest:
		smallest := appliances[0]
		for _, app := range appliances[1:] {
			if app.MBH < smallest.MBH {
				smallest = app
			}
		}
		return []models.Appliance{smallest}
	default:
		return appliances
	}
}

// AnalyzeManifoldSystem evaluates the common vent under one operating
// scenario: mix the operating subset's flues, then run the manifold segment
// at the mixed condition.
func AnalyzeManifoldSystem(appliances []models.Appliance, manifold models.DuctSegment, outsideTempF float64, scenario models.Scenario) (models.ScenarioResult, error) {
	if len(appliances) == 0 {
		return models.ScenarioResult{}, ErrNoAppliances
	}

	operating := operatingSubset(appliances, scenario)

	combined, err := CombinedCFM(operating)
	if err != nil {
		return models.ScenarioResult{}, err
	}

	commonVent, err := AnalyzeSystem(combined.TotalCFM, manifold, combined.MixedTempF, outsideTempF, StandardBarometricInHg)
	if err != nil {
		return models.ScenarioResult{}, err
	}

	return models.ScenarioResult{
		Scenario:     scenario,
		NumOperating: len(operating),
		Combined:     combined,
		CommonVent:   commonVent,
		Operating:    operating,
	}, nil
}

// AnalyzeWorstCase totals each appliance's draft balance (its own connector
// plus the shared all-operating manifold) and selects the appliance with the
// minimum total available draft. The worst case is a draft deficit, not the
// largest unit; the full per-appliance breakdown is returned alongside it
// for sizing and compliance checks.
func AnalyzeWorstCase(appliances []models.Appliance, connectors []models.DuctSegment, manifold models.DuctSegment, outsideTempF float64) (models.WorstCaseResult, error) {
	if len(appliances) == 0 {
		return models.WorstCaseResult{}, ErrNoAppliances
	}
	if len(connectors) != len(appliances) {
		return models.WorstCaseResult{}, fmt.Errorf("%w: %d appliances, %d connectors",
			ErrConnectorMismatch, len(appliances), len(connectors))
	}

	// The all-operating manifold condition is shared by every appliance.
	manifoldAll, err := AnalyzeManifoldSystem(appliances, manifold, outsideTempF, models.ScenarioAll)
	if err != nil {
		return models.WorstCaseResult{}, err
	}
	manifoldDraft := manifoldAll.CommonVent.AvailableDraftInWC

	all := make([]models.ApplianceDraft, 0, len(appliances))
	for i, app := range appliances {
		connector, err := AnalyzeConnector(app, connectors[i], outsideTempF)
		if err != nil {
			return models.WorstCaseResult{}, fmt.Errorf("appliance %d: %w", i+1, err)
		}

		connectorDraft := connector.Connector.AvailableDraftInWC
		all = append(all, models.ApplianceDraft{
			Index:                   i + 1,
			Appliance:               app,
			ConnectorDraftInWC:      connectorDraft,
			ManifoldDraftInWC:       manifoldDraft,
			TotalAvailableDraftInWC: connectorDraft + manifoldDraft,
			Connector:               connector,
		})
	}

	worst := all[0]
	for _, candidate := range all[1:] {
		if candidate.TotalAvailableDraftInWC < worst.TotalAvailableDraftInWC {
			worst = candidate
		}
	}

	return models.WorstCaseResult{
		WorstCase: worst,
		All:       all,
		Manifold:  manifoldAll,
	}, nil
}

// AnalyzeWorstCaseLowFire re-runs the worst-case search with every
// modulating appliance turned down to low fire. Lower inputs mean lower
// mass flow and less loss but also less buoyant mixing, so the deficient
// appliance can differ from the high-fire result.
func AnalyzeWorstCaseLowFire(appliances []models.Appliance, connectors []models.DuctSegment, manifold models.DuctSegment, outsideTempF float64) (models.WorstCaseResult, error) {
	lowFire := make([]models.Appliance, len(appliances))
	for i, app := range appliances {
		lowFire[i] = app.LowFire()
	}
	return AnalyzeWorstCase(lowFire, connectors, manifold, outsideTempF)
}

// CompleteAnalysis orchestrates every operating scenario plus the worst-case
// search. Scenarios that need more than one appliance are left nil for
// single-appliance systems; the low-fire worst case is only present when at
// least one appliance modulates.
func CompleteAnalysis(appliances []models.Appliance, connectors []models.DuctSegment, manifold models.DuctSegment, outsideTempF float64) (models.MultiApplianceAnalysis, error) {
	allOperating, err := AnalyzeManifoldSystem(appliances, manifold, outsideTempF, models.ScenarioAll)
	if err != nil {
		return models.MultiApplianceAnalysis{}, err
	}

	singleLargest, err := AnalyzeManifoldSystem(appliances, manifold, outsideTempF, models.ScenarioSingleLargest)
	if err != nil {
		return models.MultiApplianceAnalysis{}, err
	}

	var allMinusOne, singleSmallest *models.ScenarioResult
	if len(appliances) > 1 {
		minusOne, err := AnalyzeManifoldSystem(appliances, manifold, outsideTempF, models.ScenarioAllMinusOne)
		if err != nil {
			return models.MultiApplianceAnalysis{}, err
		}
		allMinusOne = &minusOne

		smallest, err := AnalyzeManifoldSystem(appliances, manifold, outsideTempF, models.ScenarioSingleSmallest)
		if err != nil {
			return models.MultiApplianceAnalysis{}, err
		}
		singleSmallest = &smallest
	}

	worstCase, err := AnalyzeWorstCase(appliances, connectors, manifold, outsideTempF)
	if err != nil {
		return models.MultiApplianceAnalysis{}, err
	}

	var lowFireWorst *models.WorstCaseResult
	for _, app := range appliances {
		if app.Modulating() {
			low, err := AnalyzeWorstCaseLowFire(appliances, connectors, manifold, outsideTempF)
			if err != nil {
				return models.MultiApplianceAnalysis{}, err
			}
			lowFireWorst = &low
			break
		}
	}

	return models.MultiApplianceAnalysis{
		AllOperating:     allOperating,
		AllMinusOne:      allMinusOne,
		SingleLargest:    singleLargest,
		SingleSmallest:   singleSmallest,
		WorstCase:        worstCase,
		LowFireWorstCase: lowFireWorst,
		NumAppliances:    len(appliances),
	}, nil
}
