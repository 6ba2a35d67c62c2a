package app

import (
	"log/slog"

	"tygcalc.metabolicrisk.org/internal/appconf"
	"tygcalc.metabolicrisk.org/internal/metabolic"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config     appconf.Config
	Logger     *slog.Logger
	Thresholds metabolic.Thresholds
}

// New returns an Application classifying against the cut points named in cfg.
func New(cfg appconf.Config, logger *slog.Logger) *Application {
	thresholds, ok := metabolic.ThresholdsByName(cfg.Thresholds)
	if !ok {
		thresholds = metabolic.IncidenceThresholds
	}
	return &Application{
		Config:     cfg,
		Logger:     logger,
		Thresholds: thresholds,
	}
}

// Calculate runs the calculator over raw text inputs with the application's
// threshold pair and logs the outcome.
func (app *Application) Calculate(tg, glucose, insulin string, unit metabolic.Unit) (metabolic.Result, error) {
	result, err := metabolic.Compute(tg, glucose, insulin, unit)
	if err == nil {
		result.RiskLevel = metabolic.Classify(result.TyG, result.HOMA, app.ActiveThresholds())
	}
	app.logCalculation(result, err)
	return result, err
}

// CalculateValues is Calculate for already parsed measurements.
func (app *Application) CalculateValues(tg, glucose, insulin float64, unit metabolic.Unit) (metabolic.Result, error) {
	result, err := metabolic.CalculateWith(tg, glucose, insulin, unit, app.ActiveThresholds())
	app.logCalculation(result, err)
	return result, err
}

// ActiveThresholds returns the configured pair, or the incidence pair when unset.
func (app *Application) ActiveThresholds() metabolic.Thresholds {
	if app.Thresholds == (metabolic.Thresholds{}) {
		return metabolic.IncidenceThresholds
	}
	return app.Thresholds
}

func (app *Application) logCalculation(result metabolic.Result, err error) {
	if app.Logger == nil {
		return
	}
	if err != nil {
		app.Logger.Debug("calculation rejected", slog.String("error", err.Error()))
		return
	}
	app.Logger.Debug("calculation completed",
		slog.String("unit", string(result.Unit)),
		slog.Float64("tyg", result.TyG),
		slog.Float64("homa_ir", result.HOMA),
		slog.String("risk_level", string(result.RiskLevel)))
}
