package utils

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseableDate indica que nenhum dos formatos aceitos se aplicou à
// entrada. Chamadores devem tratar como erro de validação, nunca como pânico.
var ErrUnparseableDate = errors.New("data em formato não reconhecido")

// serialEpoch é a época dos números de série de planilha (Excel/Sheets):
// o serial N corresponde a N dias após 30/12/1899.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var bareNumberRe = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Formatos tentados na etapa genérica, depois dos formatos prioritários.
var fallbackLayouts = []string{
	"02-01-2006",
	"2006/01/02",
	"02.01.2006",
	time.RFC3339,
}

// ParseFlexibleDate normaliza as representações de data encontradas nas
// planilhas importadas, nesta ordem de prioridade:
//  1. DD/MM/YYYY
//  2. ISO YYYY-MM-DD (por prefixo, ignorando hora)
//  3. numeral puro interpretado como data serial de planilha
//  4. tentativa genérica com formatos comuns
func ParseFlexibleDate(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, ErrUnparseableDate
	}

	if date, err := time.Parse("02/01/2006", s); err == nil {
		return date, nil
	}

	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		if date, err := time.Parse(time.DateOnly, s[:10]); err == nil {
			return date, nil
		}
	}

	if bareNumberRe.MatchString(s) {
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return serialEpoch.AddDate(0, 0, int(serial)), nil
		}
	}

	for _, layout := range fallbackLayouts {
		if date, err := time.Parse(layout, s); err == nil {
			return date, nil
		}
	}

	return time.Time{}, ErrUnparseableDate
}
