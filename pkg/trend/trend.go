// Package trend calcula la proyección lineal (mínimos cuadrados) usada por los
// gráficos de DataNova. Es puro: no toca la capa de datos.
package trend

import "math"

// Bounds acota los valores proyectados.
type Bounds struct {
	Lower float64
	Upper float64
}

var (
	// ScoreBounds para puntajes de desempeño (0–100).
	ScoreBounds = Bounds{Lower: 0, Upper: 100}
	// RevenueBounds para ingresos y cantidades (0–∞).
	RevenueBounds = Bounds{Lower: 0, Upper: math.Inf(1)}
)

// Clamp limita v al intervalo [Lower, Upper].
func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.Lower, math.Min(b.Upper, v))
}

// Slope devuelve la pendiente OLS de values contra su índice 0..n-1:
//
//	slope = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//
// ok=false con menos de 2 puntos o denominador nulo.
func Slope(values []float64) (slope float64, ok bool) {
	n := float64(len(values))
	if len(values) < 2 {
		return 0, false
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	den := n*sumXX - sumX*sumX
	if den == 0 {
		return 0, false
	}
	slope = (n*sumXY - sumX*sumY) / den
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return 0, false
	}
	return slope, true
}

// Projection resultado de proyectar una serie.
type Projection struct {
	Slope  float64   `json:"slope"`
	Values []float64 `json:"values"` // Values[i-1] = periodo i por delante
}

// Project proyecta `ahead` periodos desde el último valor:
// predicted_i = clamp(last + slope·i). ok=false si no hay datos suficientes.
func Project(values []float64, ahead int, b Bounds) (Projection, bool) {
	slope, ok := Slope(values)
	if !ok || ahead < 1 {
		return Projection{}, false
	}
	last := values[len(values)-1]
	out := make([]float64, ahead)
	for i := 1; i <= ahead; i++ {
		out[i-1] = b.Clamp(last + slope*float64(i))
	}
	return Projection{Slope: slope, Values: out}, true
}
