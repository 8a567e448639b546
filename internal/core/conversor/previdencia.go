package conversor

import (
	"fmt"
	"sort"
	"strings"

	"conversor-w4-service/internal/domain"
)

// CategoriaRepasse é a categoria fixa atribuída a todo repasse da Previdência
// identificado pelo matcher, sobrepondo o que o resolvedor de categorias achou.
const CategoriaRepasse = "11318 - Repasse Recebido Fundo de Previdência"

// fraseRepasse é o texto-padrão que antecede o nome da unidade nos lançamentos
// de repasse; o que vem depois dele é o complemento usado no escore por tokens.
const fraseRepasse = "repasse recebido fundo de previdencia"

// ConfigMatcher reúne os limiares do matcher de repasses, ajustáveis por
// configuração.
type ConfigMatcher struct {
	NotaMinima        float64 // nota mínima para aceitar o melhor candidato
	PisoTokenLongo    float64 // nota garantida quando há token compartilhado longo
	PisoSubstring     float64 // nota garantida quando nome e complemento se contêm
	TamanhoTokenLongo int     // comprimento mínimo de um token "longo"
}

// ConfigMatcherPadrao devolve os limiares padrão do matcher.
func ConfigMatcherPadrao() ConfigMatcher {
	return ConfigMatcher{
		NotaMinima:        0.50,
		PisoTokenLongo:    0.98,
		PisoSubstring:     0.95,
		TamanhoTokenLongo: 5,
	}
}

// ExtrairCentro separa o sufixo de centro de custo do nome oficial de uma
// unidade. Divide em " - "; se o último segmento for um centro válido
// (comparação sem caixa), ele é o centro e o restante religado é o nome de
// exibição. Caso contrário o nome inteiro é devolvido com centro vazio.
func ExtrairCentro(cliente string) (nome, centro string) {
	partes := strings.Split(strings.TrimSpace(cliente), " - ")
	for i := range partes {
		partes[i] = strings.TrimSpace(partes[i])
	}
	ultimo := partes[len(partes)-1]
	if len(partes) > 1 && domain.CentrosCustoValidos[strings.ToUpper(ultimo)] {
		return strings.Join(partes[:len(partes)-1], " - "), ultimo
	}
	return strings.TrimSpace(cliente), ""
}

// CarregarRegrasPrevidencia lê a tabela de mapeamento (colunas Cliente e
// Padrao) e devolve as regras com padrão normalizado, ordenadas do padrão mais
// longo para o mais curto: o padrão mais específico é tentado primeiro, para
// que um padrão curto não sombreie um superset mais longo.
func CarregarRegrasPrevidencia(t domain.Tabela) ([]domain.RegraPrevidencia, error) {
	if err := t.ExigirColunas(domain.ColCliente, domain.ColPadrao); err != nil {
		return nil, fmt.Errorf("tabela de mapeamento da Previdência inválida: %w", err)
	}

	regras := make([]domain.RegraPrevidencia, 0, t.NumLinhas())
	for i := 0; i < t.NumLinhas(); i++ {
		padrao := Normalizar(t.Valor(i, domain.ColPadrao))
		cliente := t.Valor(i, domain.ColCliente)
		if padrao == "" || strings.TrimSpace(cliente) == "" {
			continue
		}
		nome, centro := ExtrairCentro(cliente)
		regras = append(regras, domain.RegraPrevidencia{
			Padrao:  padrao,
			Cliente: nome,
			Centro:  centro,
		})
	}

	sort.SliceStable(regras, func(i, j int) bool {
		return len(regras[i].Padrao) > len(regras[j].Padrao)
	})
	return regras, nil
}

// MatcherPrevidencia resolve a qual unidade organizacional um repasse se
// refere. Primeiro tenta as regras por substring exata (padrão mais longo
// primeiro); quando nenhuma cobre o texto, recorre ao escore por sobreposição
// de tokens contra o catálogo, que generaliza para abreviações e erros de
// digitação.
type MatcherPrevidencia struct {
	regras    []domain.RegraPrevidencia
	nomesBase []string
	tokens    []map[string]struct{}
	cfg       ConfigMatcher
}

// NovoMatcherPrevidencia monta o matcher sobre as regras já carregadas.
func NovoMatcherPrevidencia(regras []domain.RegraPrevidencia, cfg ConfigMatcher) *MatcherPrevidencia {
	m := &MatcherPrevidencia{
		regras:    regras,
		nomesBase: make([]string, len(regras)),
		tokens:    make([]map[string]struct{}, len(regras)),
		cfg:       cfg,
	}
	for i, r := range regras {
		base := Normalizar(r.Cliente)
		m.nomesBase[i] = base
		conj := make(map[string]struct{})
		for _, tok := range strings.Fields(base) {
			conj[tok] = struct{}{}
		}
		m.tokens[i] = conj
	}
	return m
}

// Encontrar procura a unidade de um lançamento já normalizado. Devolve o nome
// de exibição, o centro de custo e se houve correspondência; sem match, ambos
// ficam vazios e a categoria do lançamento segue a resolução normal.
func (m *MatcherPrevidencia) Encontrar(detalheNorm string) (cliente, centro string, ok bool) {
	if detalheNorm == "" {
		return "", "", false
	}

	for _, r := range m.regras {
		if r.Padrao == "" {
			continue
		}
		if strings.Contains(detalheNorm, r.Padrao) {
			return r.Cliente, r.Centro, true
		}
	}

	return m.encontrarPorTokens(complemento(detalheNorm))
}

// complemento devolve o trecho após a frase-padrão de repasse, ou o texto
// inteiro quando a frase não aparece.
func complemento(detalheNorm string) string {
	if i := strings.Index(detalheNorm, fraseRepasse); i != -1 {
		return strings.TrimSpace(detalheNorm[i+len(fraseRepasse):])
	}
	return detalheNorm
}

// encontrarPorTokens pontua cada unidade do catálogo contra o complemento:
// cobertura = |interseção| / max(1, |tokens do nome base|); um token
// compartilhado longo eleva a nota ao piso PisoTokenLongo; nome e complemento
// contidos um no outro elevam ao piso PisoSubstring. Empate de nota decide
// pela maior interseção bruta. Aceita apenas com nota >= NotaMinima e pelo
// menos um token em comum.
func (m *MatcherPrevidencia) encontrarPorTokens(comp string) (cliente, centro string, ok bool) {
	if comp == "" {
		return "", "", false
	}

	// Conjunto, não lista: um token repetido no complemento conta uma vez só
	// na interseção.
	tokensComp := make(map[string]struct{})
	for _, tok := range strings.Fields(comp) {
		tokensComp[tok] = struct{}{}
	}

	melhorIdx := -1
	melhorNota := -1.0
	melhorInter := 0

	for i, base := range m.nomesBase {
		if base == "" {
			continue
		}

		inter := 0
		tokenLongo := false
		for tok := range tokensComp {
			if _, achou := m.tokens[i][tok]; achou {
				inter++
				if len([]rune(tok)) >= m.cfg.TamanhoTokenLongo {
					tokenLongo = true
				}
			}
		}

		nota := float64(inter) / float64(max(1, len(m.tokens[i])))
		if tokenLongo && nota < m.cfg.PisoTokenLongo {
			nota = m.cfg.PisoTokenLongo
		}
		if (strings.Contains(comp, base) || strings.Contains(base, comp)) && nota < m.cfg.PisoSubstring {
			nota = m.cfg.PisoSubstring
		}

		if nota > melhorNota || (nota == melhorNota && inter > melhorInter) {
			melhorIdx = i
			melhorNota = nota
			melhorInter = inter
		}
	}

	if melhorIdx == -1 || melhorNota < m.cfg.NotaMinima || melhorInter < 1 {
		return "", "", false
	}
	r := m.regras[melhorIdx]
	return r.Cliente, r.Centro, true
}
