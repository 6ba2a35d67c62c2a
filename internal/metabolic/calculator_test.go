package metabolic

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTyG(t *testing.T) {
	tests := []struct {
		tg, glucose float64
	}{
		{150, 100},
		{100, 90},
		{80, 85},
		{0.5, 0.5},
		{1200, 310},
	}

	for _, tt := range tests {
		got := CalculateTyG(tt.tg, tt.glucose)
		assert.InDelta(t, math.Log(tt.tg*tt.glucose/2), got, 1e-9)
	}
}

func TestNormalizeMatchesMgdlEquivalent(t *testing.T) {
	for _, in := range [][2]float64{{1.7, 5}, {0.9, 4.2}, {3.4, 11.1}} {
		tgMgdl, glucoseMgdl := Normalize(in[0], in[1], MmolPerL)
		assert.InDelta(t, in[0]*88.57, tgMgdl, 1e-9)
		assert.InDelta(t, in[1]*18, glucoseMgdl, 1e-9)
		assert.InDelta(t, CalculateTyG(in[0]*88.57, in[1]*18), CalculateTyG(tgMgdl, glucoseMgdl), 1e-9)
	}

	tg, glucose := Normalize(150, 100, MgPerDL)
	assert.Equal(t, 150.0, tg)
	assert.Equal(t, 100.0, glucose)
}

func TestCalculateHOMADivisor(t *testing.T) {
	assert.Equal(t, 1000.0/405, CalculateHOMA(100, 10, MgPerDL))
	assert.Equal(t, 50.0/22.5, CalculateHOMA(5, 10, MmolPerL))
}

func TestClassifyBoundaries(t *testing.T) {
	th := IncidenceThresholds
	tests := []struct {
		name string
		tyg  float64
		homa float64
		want RiskLevel
	}{
		{"both exactly at cut point", 8.518, 1.5, RiskHigh},
		{"tyg at cut point only", 8.518, 1.499, RiskModerate},
		{"homa at cut point only", 8.517, 1.5, RiskModerate},
		{"both just below", 8.5179, 1.4999, RiskLow},
		{"both well above", 9.5, 4.0, RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.tyg, tt.homa, th))
		})
	}
}

func TestClassifyPrevalenceThresholds(t *testing.T) {
	// Moderate under incidence cut points, low under prevalence ones.
	assert.Equal(t, RiskModerate, Classify(8.6, 1.2, IncidenceThresholds))
	assert.Equal(t, RiskLow, Classify(8.6, 1.2, PrevalenceThresholds))
}

func TestComputeScenarios(t *testing.T) {
	tests := []struct {
		name                 string
		tg, glucose, insulin string
		unit                 Unit
		wantTyG, wantHOMA    float64
		want                 RiskLevel
	}{
		{"both elevated", "150", "100", "10", MgPerDL, 8.9227, 2.4691, RiskHigh},
		{"homa elevated only", "100", "90", "5", MgPerDL, 8.4118, 2.2222, RiskModerate},
		{"neither elevated", "80", "85", "4", MgPerDL, 8.1315, 0.8395, RiskLow},
		{"mmol input", "1.7", "5", "10", MmolPerL, 8.821, 2.222, RiskHigh},
		{"surrounding whitespace", " 150 ", "100\n", "10", MgPerDL, 8.9227, 2.4691, RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(tt.tg, tt.glucose, tt.insulin, tt.unit)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantTyG, result.TyG, 1e-3)
			assert.InDelta(t, tt.wantHOMA, result.HOMA, 1e-3)
			assert.Equal(t, tt.want, result.RiskLevel)
			assert.Equal(t, tt.unit, result.Unit)
		})
	}
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name                 string
		tg, glucose, insulin string
		field                string
		kind                 InputErrorKind
	}{
		{"negative triglycerides", "-5", "90", "5", FieldTriglycerides, NonPositive},
		{"letters", "abc", "90", "5", FieldTriglycerides, NotNumeric},
		{"empty glucose", "100", "", "5", FieldGlucose, NotNumeric},
		{"zero insulin", "100", "90", "0", FieldInsulin, NonPositive},
		{"zero glucose", "100", "0", "5", FieldGlucose, NonPositive},
		{"nan", "NaN", "90", "5", FieldTriglycerides, NotNumeric},
		{"infinity", "100", "+Inf", "5", FieldGlucose, NotNumeric},
		{"non-numeric wins over non-positive", "-5", "90", "x", FieldInsulin, NotNumeric},
		{"tyg product underflows", "1e-200", "1e-200", "5", FieldTriglycerides, NotNumeric},
		{"tyg product overflows", "1e200", "1e200", "1e200", FieldTriglycerides, NotNumeric},
		{"homa product overflows", "1", "1e200", "1e200", FieldInsulin, NotNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Compute(tt.tg, tt.glucose, tt.insulin, MgPerDL)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, Result{}, result)

			var inputErr *InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
			assert.Equal(t, tt.kind, inputErr.Kind)
		})
	}
}

func TestCalculateRejectsNonPositive(t *testing.T) {
	values := []float64{0, -1, -0.001}
	for _, v := range values {
		_, err := Calculate(v, 90, 5, MgPerDL)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = Calculate(100, v, 5, MmolPerL)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = Calculate(100, 90, v, MgPerDL)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestCalculateUnitHandling(t *testing.T) {
	want, err := Calculate(150, 100, 10, MgPerDL)
	require.NoError(t, err)

	got, err := Calculate(150, 100, 10, Unit(""))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, MgPerDL, got.Unit)

	_, err = Calculate(150, 100, 10, Unit("g/L"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResultRounded(t *testing.T) {
	result, err := Calculate(150, 100, 10, MgPerDL)
	require.NoError(t, err)

	tyg, homa := result.Rounded()
	assert.Equal(t, 8.923, tyg)
	assert.Equal(t, 2.469, homa)
}

func TestInputErrorMessages(t *testing.T) {
	assert.Equal(t, "Please enter numeric values only.", NotNumeric.Message())
	assert.Equal(t, "All values must be greater than 0.", NonPositive.Message())

	err := &InputError{Field: FieldGlucose, Value: "x", Kind: NotNumeric}
	assert.Contains(t, err.Error(), "glucose")
	assert.Contains(t, err.Error(), "invalid input")
}
