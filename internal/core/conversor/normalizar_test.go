package conversor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"conversor-w4-service/internal/core/conversor"
)

func TestNormalizar(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Transferência Entre Disponíveis", "transferencia entre disponiveis"},
		{"  Ação & Reação  123 ", "acao reacao 123"},
		{"REPASSE   Recebido:  Fundo/Previdência", "repasse recebido fundo previdencia"},
		{"13089 - Desp. com Rep. Eco. Geral", "13089 desp com rep eco geral"},
		{"", ""},
		{"   ", ""},
		{"!!!", ""},
	}

	for _, c := range casos {
		assert.Equal(t, c.esperado, conversor.Normalizar(c.entrada), "entrada: %q", c.entrada)
	}
}

func TestNormalizarIdempotente(t *testing.T) {
	entradas := []string{
		"Comunidade Evangélica de Confissão Luterana",
		"já normalizado sem acentos",
		"Núm. 42 / Repasse",
		"",
	}
	for _, e := range entradas {
		uma := conversor.Normalizar(e)
		assert.Equal(t, uma, conversor.Normalizar(uma), "entrada: %q", e)
	}
}
