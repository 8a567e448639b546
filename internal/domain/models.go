// package domain/models.go
package domain

import "fmt"

// Setor identifica o setor operacional selecionado pelo usuário na conversão.
type Setor string

// Setores suportados pelo conversor W4.
const (
	SetorAssComunitaria    Setor = "Ass. Comunitária"
	SetorSinodalidade      Setor = "Sinodalidade"
	SetorPrevidenciaBrasil Setor = "Previdência Brasil"
)

// ParseSetor valida o valor vindo do formulário e retorna o setor correspondente.
func ParseSetor(s string) (Setor, error) {
	switch Setor(s) {
	case SetorAssComunitaria, SetorSinodalidade, SetorPrevidenciaBrasil:
		return Setor(s), nil
	}
	return "", fmt.Errorf("setor inválido: %q (esperado %q, %q ou %q)",
		s, SetorAssComunitaria, SetorSinodalidade, SetorPrevidenciaBrasil)
}

// CentrosCustoValidos é a enumeração fixa de centros de custo reconhecidos
// no sufixo " - <centro>" dos nomes oficiais de unidades.
var CentrosCustoValidos = map[string]bool{
	"DIACONIA":  true,
	"FORTALEZA": true,
	"BRASIL":    true,
	"EXTERIOR":  true,
}

// Colunas do arquivo de exportação W4 (tesouraria).
const (
	ColDetalhe   = "Detalhe Conta / Objeto"
	ColValor     = "Valor total"
	ColData      = "Data da Tesouraria"
	ColDescricao = "Descrição"
	ColItemID    = "Id Item tesouraria"
	ColFluxo     = "Fluxo"
	ColProcesso  = "Processo"
	ColPessoa    = "Pessoa"
	ColLote      = "Lote"
)

// Coluna da tabela de referência de categorias contábeis.
const ColDescricaoCategoria = "Descrição da categoria financeira"

// Colunas do arquivo de mapeamento da Previdência.
const (
	ColCliente = "Cliente"
	ColPadrao  = "Padrao"
)

// CategoriaEntry é uma entrada preparada da tabela de categorias:
// o nome base normalizado (sem o código numérico inicial) e a descrição original.
type CategoriaEntry struct {
	NomeBase  string
	Descricao string
}

// RegraPrevidencia é uma regra de mapeamento de repasses da Previdência:
// padrão normalizado de busca, nome de exibição da unidade e centro de custo
// extraído do sufixo do nome oficial.
type RegraPrevidencia struct {
	Padrao  string
	Cliente string
	Centro  string
}

// LinhaClassificada é uma linha W4 com os atributos derivados pelo pipeline.
type LinhaClassificada struct {
	Detalhe   string
	ValorRaw  string
	DataRaw   string
	Descricao string
	ItemID    string
	Fluxo     string
	Processo  string
	Pessoa    string
	Lote      string

	Categoria      string
	Despesa        bool
	Cliente        string
	CentroCusto    string
	ValorFormatado string
	DataFormatada  string
}

// LinhaSaida é uma linha do arquivo final no formato do Conta Azul.
type LinhaSaida struct {
	DataCompetencia   string
	DataVencimento    string
	DataPagamento     string
	Valor             string
	Categoria         string
	Descricao         string
	ClienteFornecedor string
	CNPJCPF           string
	CentroCusto       string
	Observacoes       string
}

// CabecalhoSaida é o cabeçalho fixo de 10 colunas do arquivo final.
var CabecalhoSaida = []string{
	"Data de Competência",
	"Data de Vencimento",
	"Data de Pagamento",
	"Valor",
	"Categoria",
	"Descrição",
	"Cliente/Fornecedor",
	"CNPJ/CPF Cliente/Fornecedor",
	"Centro de Custo",
	"Observações",
}

// Campos devolve a linha na ordem fixa do cabeçalho de saída.
func (l LinhaSaida) Campos() []string {
	return []string{
		l.DataCompetencia,
		l.DataVencimento,
		l.DataPagamento,
		l.Valor,
		l.Categoria,
		l.Descricao,
		l.ClienteFornecedor,
		l.CNPJCPF,
		l.CentroCusto,
		l.Observacoes,
	}
}
