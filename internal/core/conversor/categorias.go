package conversor

import (
	"fmt"
	"strings"

	"conversor-w4-service/internal/domain"

	"github.com/schollz/closestmatch"
	"go.uber.org/zap"
)

// Categorias é o índice imutável da tabela de referência de categorias
// contábeis: nome base normalizado -> descrição original.
type Categorias struct {
	porNomeBase map[string]string
	sugestoes   *closestmatch.ClosestMatch
	logger      *zap.Logger
}

// tirarCodigo descarta o primeiro token de uma descrição de categoria quando
// ele é puramente numérico ("13089 - Desp. ..." -> "- Desp. ..."); o hífen
// restante desaparece na normalização.
func tirarCodigo(texto string) string {
	partes := strings.SplitN(texto, " ", 2)
	if len(partes) == 2 && ehNumerico(partes[0]) {
		return partes[1]
	}
	return texto
}

func ehNumerico(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NovaCategorias prepara o índice a partir da tabela de referência. Chaves
// normalizadas repetidas mantêm a primeira ocorrência na ordem da tabela.
func NovaCategorias(t domain.Tabela, logger *zap.Logger) (*Categorias, error) {
	if err := t.ExigirColunas(domain.ColDescricaoCategoria); err != nil {
		return nil, fmt.Errorf("tabela de categorias inválida: %w", err)
	}

	porNomeBase := make(map[string]string, t.NumLinhas())
	var chaves []string
	for i := 0; i < t.NumLinhas(); i++ {
		descricao := strings.TrimSpace(t.Valor(i, domain.ColDescricaoCategoria))
		if descricao == "" {
			continue
		}
		chave := Normalizar(tirarCodigo(descricao))
		if chave == "" {
			continue
		}
		if _, ok := porNomeBase[chave]; !ok {
			porNomeBase[chave] = descricao
			chaves = append(chaves, chave)
		}
	}

	c := &Categorias{porNomeBase: porNomeBase, logger: logger}
	if len(chaves) > 0 {
		c.sugestoes = closestmatch.New(chaves, []int{3, 4})
	}
	return c, nil
}

// Entradas devolve as entradas preparadas, útil para inspeção e testes.
func (c *Categorias) Entradas() []domain.CategoriaEntry {
	entradas := make([]domain.CategoriaEntry, 0, len(c.porNomeBase))
	for chave, descricao := range c.porNomeBase {
		entradas = append(entradas, domain.CategoriaEntry{NomeBase: chave, Descricao: descricao})
	}
	return entradas
}

// Resolver mapeia o texto de detalhe de um lançamento para a categoria
// oficial. Não encontrar é o caso comum (lançamentos pessoais ou de regra
// especial são sobrescritos adiante no pipeline), então a ausência nunca é
// erro: devolve o detalhe original inalterado. No miss, registra em debug a
// chave conhecida mais próxima como pista de operação.
func (c *Categorias) Resolver(detalhe string) string {
	chave := Normalizar(detalhe)
	if categoria, ok := c.porNomeBase[chave]; ok {
		return categoria
	}
	if c.logger != nil && c.sugestoes != nil && chave != "" {
		c.logger.Debug("categoria não encontrada, usando detalhe original",
			zap.String("detalhe", detalhe),
			zap.String("mais_proxima", c.sugestoes.Closest(chave)))
	}
	return detalhe
}
