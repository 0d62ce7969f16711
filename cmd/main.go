package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/google/uuid"

	"chimney_draft/internal/calc"
	"chimney_draft/internal/logger"
	"chimney_draft/internal/models"
	"chimney_draft/internal/scenario"
)

func main() {
	var (
		projectPath = flag.String("project", "project.yml", "path to the project YAML file")
		logLevel    = flag.String("log-level", logger.InfoLevel, "log level: debug|info|warn|error")
	)
	flag.Parse()

	log := logger.Get(*logLevel).Named("ventcalc")
	runID := uuid.NewString()

	project, err := scenario.Load(*projectPath)
	if err != nil {
		log.Fatalw("failed to load project", "run_id", runID, "path", *projectPath, "err", err)
	}

	log.Infow("project loaded",
		"run_id", runID,
		"name", project.Name,
		"appliances", len(project.Appliances),
		"outside_temp_f", project.OutsideTempF,
	)
	if project.ElevationFt != 0 {
		// The multi-appliance path runs at standard pressure; the local
		// barometric value is reported for reference.
		log.Infow("site elevation",
			"elevation_ft", project.ElevationFt,
			"barometric_in_hg", calc.PressureAtElevation(project.ElevationFt),
		)
	}

	analysis, err := calc.CompleteAnalysis(project.Appliances, project.Connectors, project.Manifold, project.OutsideTempF)
	if err != nil {
		log.Fatalw("analysis failed", "run_id", runID, "err", err)
	}

	warnMissingFittings(log, analysis)

	worst := analysis.WorstCase.WorstCase
	log.Infow("worst case appliance",
		"run_id", runID,
		"appliance_id", worst.Index,
		"mbh", worst.Appliance.MBH,
		"connector_draft_in_wc", worst.ConnectorDraftInWC,
		"manifold_draft_in_wc", worst.ManifoldDraftInWC,
		"total_available_draft_in_wc", worst.TotalAvailableDraftInWC,
	)

	compliance := calc.CheckAppliancePressureLimits(worst.Appliance, worst.TotalAvailableDraftInWC)
	switch {
	case compliance.Compliant == nil:
		log.Infow("category compliance indeterminate", "message", compliance.Message)
	case *compliance.Compliant:
		log.Infow("category compliance ok", "category", compliance.CategoryName)
	default:
		log.Warnw("category compliance failed",
			"category", compliance.CategoryName,
			"issue", compliance.Issue,
			"recommendation", compliance.Recommendation,
		)
	}

	if inducer := calc.CheckDraftInducer(worst.TotalAvailableDraftInWC, 0); inducer.NeedsInducer {
		log.Warnw("draft inducer check", "message", inducer.Message, "recommendation", inducer.Recommendation)
	}
	if control := calc.CheckDraftControl(worst.TotalAvailableDraftInWC); control.NeedsControl {
		log.Warnw("draft control check", "message", control.Message, "recommendation", control.Recommendation)
	}

	if project.MinAvailableDraftInWC != 0 {
		recommendDiameter(log, project, analysis, runID)
	}

	// The structured report goes to stdout for the document renderers.
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analysis); err != nil {
		log.Fatalw("failed to write report", "run_id", runID, "err", err)
	}
}

// warnMissingFittings surfaces fitting types the loss tables skipped, so bad
// input data is visible without changing the computed numbers.
func warnMissingFittings(log *logger.Logger, analysis models.MultiApplianceAnalysis) {
	if missing := analysis.AllOperating.CommonVent.Losses.MissingFittings; len(missing) > 0 {
		log.Warnw("unknown fitting types skipped in manifold", "fittings", missing)
	}
	for _, app := range analysis.WorstCase.All {
		if missing := app.Connector.Connector.Losses.MissingFittings; len(missing) > 0 {
			log.Warnw("unknown fitting types skipped in connector",
				"appliance_id", app.Index, "fittings", missing)
		}
	}
}

// recommendDiameter runs the standard-diameter sweep for the manifold at the
// all-operating mixed condition.
func recommendDiameter(log *logger.Logger, project scenario.Project, analysis models.MultiApplianceAnalysis, runID string) {
	combined := analysis.AllOperating.Combined
	selection, err := calc.SelectDiameter(
		combined.TotalCFM,
		project.Manifold,
		combined.MixedTempF,
		project.OutsideTempF,
		project.MinAvailableDraftInWC,
		calc.PressureAtElevation(project.ElevationFt),
	)
	if err != nil {
		log.Fatalw("diameter selection failed", "run_id", runID, "err", err)
	}
	if !selection.Found() {
		log.Warnw("no standard diameter meets the draft requirement",
			"min_available_draft_in_wc", project.MinAvailableDraftInWC,
		)
		return
	}
	log.Infow("manifold diameter recommendation",
		"diameter_in", selection.Selected.DiameterIn,
		"available_draft_in_wc", selection.Selected.AvailableDraftInWC,
	)
}
