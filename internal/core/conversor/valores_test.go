package conversor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"conversor-w4-service/internal/core/conversor"
)

func TestFormatarValor(t *testing.T) {
	casos := []struct {
		bruto    string
		despesa  bool
		esperado string
	}{
		{"1234.5", false, "1234,50"},
		{"1500.00", true, "-1500,00"},
		{"1.234,56", true, "-1234,56"},
		{"R$ 10,00", false, "10,00"},
		{"-200", false, "200,00"},   // sinal de origem é descartado
		{"(50,00)", false, "50,00"}, // idem para parênteses contábeis
		{"-200", true, "-200,00"},
		{"", true, ""},
		{"   ", false, ""},
		{"nan", false, ""},
		{"- isento", true, "-isento"}, // texto não numérico passa aparado
		{"+ isento", false, "isento"},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, conversor.FormatarValor(c.bruto, c.despesa),
			"bruto=%q despesa=%v", c.bruto, c.despesa)
	}
}

func TestFormatarData(t *testing.T) {
	casos := []struct {
		bruto    string
		esperado string
	}{
		{"2024-03-15", "15/03/2024"},
		{"15/03/2024", "15/03/2024"},
		{"2024-03-15 00:00:00", "15/03/2024"},
		{"45000", "15/03/2023"},    // serial Excel
		{"5/3/2024", "05/03/2024"}, // dia e mês sem zero à esquerda
		{"2024-3-5", "05/03/2024"},
		{"", ""},
		{"não é data", ""},
		{"99", ""}, // número fora da faixa de serial plausível
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, conversor.FormatarData(c.bruto), "bruto=%q", c.bruto)
	}
}
