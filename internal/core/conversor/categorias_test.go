package conversor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"conversor-w4-service/internal/core/conversor"
	"conversor-w4-service/internal/domain"
)

func tabelaCategorias(descricoes ...string) domain.Tabela {
	linhas := [][]string{{domain.ColDescricaoCategoria}}
	for _, d := range descricoes {
		linhas = append(linhas, []string{d})
	}
	return domain.NovaTabela(linhas)
}

func TestCategoriasResolver(t *testing.T) {
	cats, err := conversor.NovaCategorias(tabelaCategorias(
		"13089 Despesas com Pessoal",
		"Receitas de Ofertas",
		"11318 - Repasse Recebido Fundo de Previdência",
	), zap.NewNop())
	require.NoError(t, err)

	// chave de busca: detalhe normalizado, sem tirar código do lado da transação
	assert.Equal(t, "13089 Despesas com Pessoal", cats.Resolver("Despesas com Pessoal"))
	assert.Equal(t, "Receitas de Ofertas", cats.Resolver("  RECEITAS DE OFERTAS  "))
	assert.Equal(t, "11318 - Repasse Recebido Fundo de Previdência", cats.Resolver("Repasse Recebido Fundo de Previdência"))
}

func TestCategoriasResolverFallbackVerbatim(t *testing.T) {
	cats, err := conversor.NovaCategorias(tabelaCategorias("100 Aluguel"), zap.NewNop())
	require.NoError(t, err)

	detalhe := "Oferta Especial - Maria da Silva"
	assert.Equal(t, detalhe, cats.Resolver(detalhe))
}

func TestCategoriasChaveDuplicadaPrimeiraVence(t *testing.T) {
	cats, err := conversor.NovaCategorias(tabelaCategorias(
		"100 Aluguel",
		"200 Aluguel",
	), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "100 Aluguel", cats.Resolver("Aluguel"))
}

func TestCategoriasSoTiraCodigoPuramenteNumerico(t *testing.T) {
	cats, err := conversor.NovaCategorias(tabelaCategorias(
		"Desp10 Manutenção", // primeiro token não é numérico, nada é removido
	), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "Desp10 Manutenção", cats.Resolver("Desp10 Manutenção"))
	assert.Equal(t, "Manutenção", cats.Resolver("Manutenção"))
}

func TestCategoriasColunaObrigatoria(t *testing.T) {
	_, err := conversor.NovaCategorias(domain.NovaTabela([][]string{{"Outra Coluna"}}), zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coluna obrigatória não encontrada")
	assert.Contains(t, err.Error(), domain.ColDescricaoCategoria)
}
