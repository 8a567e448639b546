package conversor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// parseNumeroBRL interpreta valores monetários em formato brasileiro ou anglo
// ("1.234,56", "1234.56", "R$ 10,00", "(50,00)"). Devolve ok=false quando o
// texto não representa um número.
func parseNumeroBRL(val string) (float64, bool) {
	s := strings.TrimSpace(val)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
	}
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}
	s = strings.TrimPrefix(s, "+")

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case lastDot > lastComma:
		if strings.Count(s, ".") > 1 {
			partes := strings.Split(s, ".")
			decimal := partes[len(partes)-1]
			inteiro := strings.Join(partes[:len(partes)-1], "")
			s = inteiro + "." + decimal
		}
	default:
		s = strings.ReplaceAll(s, ",", ".")
	}

	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return 0, false
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}

func formatarDuasCasas(val float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", val), ".", ",", 1)
}

// FormatarValor converte o valor bruto da planilha para o texto final:
// vazio/nan vira string vazia; número vira duas casas decimais com vírgula;
// texto não numérico é usado como está, aparado. O sinal de origem é
// descartado e o prefixo "-" entra apenas quando despesa é true.
func FormatarValor(bruto string, despesa bool) string {
	base := strings.TrimSpace(bruto)
	if base == "" || strings.EqualFold(base, "nan") {
		return ""
	}

	if v, ok := parseNumeroBRL(base); ok {
		base = formatarDuasCasas(math.Abs(v))
	} else {
		base = strings.TrimSpace(strings.TrimLeft(base, "+- "))
	}

	if despesa {
		return "-" + base
	}
	return base
}

// FormatarData converte a data da tesouraria para DD/MM/YYYY. Aceita os
// formatos usuais da exportação e o serial do Excel em faixa plausível;
// o que não for reconhecido vira string vazia.
func FormatarData(bruto string) string {
	s := strings.TrimSpace(bruto)
	if s == "" {
		return ""
	}

	layouts := []string{"02/01/2006", "2006-01-02", "02-01-2006", "02/01/06", "2/1/2006", "2006-1-2"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	if len(s) > 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t.Format("02/01/2006")
		}
		if t, err := time.Parse("02/01/2006", s[:10]); err == nil {
			return t.Format("02/01/2006")
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// serial Excel: restringe a faixa para não tratar valores soltos como data
		if f > 35000 && f < 47000 {
			return excelSerialParaData(f).Format("02/01/2006")
		}
	}
	return ""
}

func excelSerialParaData(serial float64) time.Time {
	// base do serial Excel: 1899-12-30
	base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	dias := int64(serial)
	frac := serial - float64(dias)
	d := time.Duration(dias*24) * time.Hour
	d += time.Duration(frac * 24 * float64(time.Hour))
	return base.Add(d)
}
