package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// TruncateToInt corta as casas decimais sem arredondar. É a regra do
// faturamento total exibido no dashboard.
func TruncateToInt(f float64) int64 {
	return int64(math.Trunc(f))
}

// CoerceFloat converte um valor monetário vindo de um documento para
// float64. Os documentos de extração não têm tipo garantido: o campo
// pode faltar, vir nulo, como inteiro, como string ou como número BSON.
// Qualquer valor que não der para interpretar vale zero e não interrompe
// a agregação.
func CoerceFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
