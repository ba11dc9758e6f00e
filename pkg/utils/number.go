package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidMonetaryValue indica que o valor, depois de normalizado, não é
// numérico. Nunca é convertido silenciosamente para zero.
var ErrInvalidMonetaryValue = errors.New("valor monetário inválido")

var currencyReplacer = strings.NewReplacer(
	"R$", "",
	"r$", "",
	"$", "",
	" ", "",
	" ", "",
)

// ParseMonetaryValue normaliza representações de moeda vindas de planilha:
// remove símbolo de moeda e separadores de milhar e converte vírgula decimal
// em ponto antes de interpretar como número.
func ParseMonetaryValue(input string) (float64, error) {
	s := currencyReplacer.Replace(strings.TrimSpace(input))
	if s == "" {
		return 0, ErrInvalidMonetaryValue
	}

	// "1.234,56" -> "1234.56"; ponto só é separador de milhar quando há vírgula
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidMonetaryValue
	}

	return value, nil
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
