package webui

import (
	"errors"
	"fmt"
	"net/http"

	"tygcalc.metabolicrisk.org/internal/metabolic"
	"tygcalc.metabolicrisk.org/internal/utils"
)

type pageData struct {
	Units       []metabolic.Unit
	Unit        metabolic.Unit
	InsulinUnit string

	Triglycerides string
	Glucose       string
	Insulin       string

	Error  string
	Result *resultView

	Criteria         []string
	CriteriaRequired int
	References       []metabolic.Reference

	Author      string
	LastUpdated string
}

type resultView struct {
	TyG            string
	HOMA           string
	RiskLevel      metabolic.RiskLevel
	Interpretation string
	Disclaimer     string
}

func newPageData(unit metabolic.Unit) pageData {
	return pageData{
		Units:            metabolic.Units,
		Unit:             unit,
		InsulinUnit:      metabolic.InsulinUnit,
		Criteria:         metabolic.SyndromeCriteria,
		CriteriaRequired: metabolic.SyndromeCriteriaRequired,
		References:       metabolic.References,
		Author:           metabolic.Author,
		LastUpdated:      metabolic.LastUpdated,
	}
}

func newResultView(result metabolic.Result) *resultView {
	return &resultView{
		TyG:            fmt.Sprintf("%.3f", result.TyG),
		HOMA:           fmt.Sprintf("%.3f", result.HOMA),
		RiskLevel:      result.RiskLevel,
		Interpretation: metabolic.Interpretation(result.RiskLevel),
		Disclaimer:     metabolic.Disclaimer,
	}
}

func (webUI *WebUI) indexHandler(w http.ResponseWriter, r *http.Request) {
	unit, err := metabolic.ParseUnit(r.URL.Query().Get("unit"))
	if err != nil {
		unit = metabolic.MgPerDL
	}
	webUI.render(w, r, http.StatusOK, "index.html", newPageData(unit))
}

func (webUI *WebUI) calculateHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		webUI.render(w, r, http.StatusBadRequest, "index.html", withError(newPageData(metabolic.MgPerDL), "The form could not be read."))
		return
	}

	unit, unitErr := metabolic.ParseUnit(r.Form.Get("unit"))
	if unitErr != nil {
		unit = metabolic.MgPerDL
	}

	data := newPageData(unit)
	data.Triglycerides = utils.SanitizeInput(r.Form.Get("tg"))
	data.Glucose = utils.SanitizeInput(r.Form.Get("glucose"))
	data.Insulin = utils.SanitizeInput(r.Form.Get("insulin"))

	if unitErr != nil {
		webUI.render(w, r, http.StatusBadRequest, "index.html", withError(data, "Please choose mg/dL or mmol/L."))
		return
	}

	result, err := webUI.Calculate(r.Form.Get("tg"), r.Form.Get("glucose"), r.Form.Get("insulin"), unit)
	if err != nil {
		message := metabolic.NotNumeric.Message()
		var inputErr *metabolic.InputError
		if errors.As(err, &inputErr) {
			message = inputErr.Kind.Message()
		}
		webUI.render(w, r, http.StatusUnprocessableEntity, "index.html", withError(data, message))
		return
	}

	data.Result = newResultView(result)
	webUI.render(w, r, http.StatusOK, "index.html", data)
}

func withError(data pageData, message string) pageData {
	data.Error = message
	return data
}
