package conversor

import (
	"fmt"
	"io"
	"strings"

	"conversor-w4-service/internal/domain"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// marcaTransferencia identifica movimentações internas entre disponíveis, que
// nunca aparecem no arquivo final. Comparado contra o detalhe normalizado.
const marcaTransferencia = "transferencia entre disponiveis"

// centroCustoPadraoSinodalidade é o centro de custo atribuído no setor
// Sinodalidade quando o lote vem vazio ou como "nan".
const centroCustoPadraoSinodalidade = "Adm Financeiro"

// Service define a interface do serviço de conversão W4 -> Conta Azul.
type Service interface {
	ProcessW4File(w4File io.Reader, w4Filename string, mapeamentoFile io.Reader, mapeamentoFilename string, setor domain.Setor) ([]byte, error)
}

type service struct {
	categorias *Categorias
	matcherCfg ConfigMatcher
	logger     *zap.Logger
}

// NewService cria o serviço de conversão sobre a tabela de categorias já
// carregada. As tabelas de referência são imutáveis; cada conversão trabalha
// apenas com as próprias entradas, então chamadas concorrentes são seguras.
func NewService(categorias *Categorias, matcherCfg ConfigMatcher, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{categorias: categorias, matcherCfg: matcherCfg, logger: logger}
}

// CarregarCategoriasArquivo lê a planilha de categorias contábeis do caminho
// configurado e prepara o índice. Falha aqui impede o serviço de subir.
func CarregarCategoriasArquivo(caminho string, logger *zap.Logger) (*Categorias, error) {
	f, err := excelize.OpenFile(caminho)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir tabela de categorias %s: %w", caminho, err)
	}
	defer f.Close()

	nomes := f.GetSheetList()
	if len(nomes) == 0 {
		return nil, fmt.Errorf("tabela de categorias %s não contém abas", caminho)
	}
	linhas, err := f.GetRows(nomes[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler tabela de categorias %s: %w", caminho, err)
	}
	return NovaCategorias(domain.NovaTabela(linhas), logger)
}

// ProcessW4File executa uma conversão completa: decodifica os uploads, monta o
// matcher da Previdência quando o setor exige, roda o pipeline e devolve o
// workbook final.
func (svc *service) ProcessW4File(w4File io.Reader, w4Filename string, mapeamentoFile io.Reader, mapeamentoFilename string, setor domain.Setor) ([]byte, error) {
	tabela, err := CarregarTabela(w4File, w4Filename)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar arquivo W4: %w", err)
	}

	var matcher *MatcherPrevidencia
	if setor == domain.SetorPrevidenciaBrasil {
		if mapeamentoFile == nil {
			return nil, fmt.Errorf("envie o arquivo de mapeamento da Previdência (colunas Cliente e Padrao)")
		}
		tabelaMapa, err := CarregarTabela(mapeamentoFile, mapeamentoFilename)
		if err != nil {
			return nil, fmt.Errorf("erro ao carregar arquivo de mapeamento: %w", err)
		}
		regras, err := CarregarRegrasPrevidencia(tabelaMapa)
		if err != nil {
			return nil, err
		}
		matcher = NovoMatcherPrevidencia(regras, svc.matcherCfg)
	}

	linhas, err := ConverterTabela(tabela, svc.categorias, setor, matcher, svc.logger)
	if err != nil {
		return nil, err
	}

	svc.logger.Info("conversão W4 concluída",
		zap.String("setor", string(setor)),
		zap.Int("linhas_entrada", tabela.NumLinhas()),
		zap.Int("linhas_saida", len(linhas)))

	return GerarXLSX(linhas)
}

// ConverterTabela é o pipeline propriamente dito: valida as colunas
// obrigatórias, descarta transferências internas e deriva categoria, sinal,
// contraparte, centro de custo, valor e datas de cada linha, na ordem fixa de
// 10 colunas da saída. Puro em relação às entradas; as tabelas de referência
// chegam por parâmetro e não são modificadas.
func ConverterTabela(t domain.Tabela, categorias *Categorias, setor domain.Setor, matcher *MatcherPrevidencia, logger *zap.Logger) ([]domain.LinhaSaida, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := t.ExigirColunas(domain.ColDetalhe, domain.ColValor, domain.ColData); err != nil {
		return nil, err
	}

	saida := make([]domain.LinhaSaida, 0, t.NumLinhas())
	for i := 0; i < t.NumLinhas(); i++ {
		linha := domain.LinhaClassificada{
			Detalhe:   t.Valor(i, domain.ColDetalhe),
			ValorRaw:  t.Valor(i, domain.ColValor),
			DataRaw:   t.Valor(i, domain.ColData),
			Descricao: t.Valor(i, domain.ColDescricao),
			ItemID:    t.Valor(i, domain.ColItemID),
			Fluxo:     t.Valor(i, domain.ColFluxo),
			Processo:  t.Valor(i, domain.ColProcesso),
			Pessoa:    t.Valor(i, domain.ColPessoa),
			Lote:      t.Valor(i, domain.ColLote),
		}

		detalheNorm := Normalizar(linha.Detalhe)
		if strings.Contains(detalheNorm, marcaTransferencia) {
			continue
		}

		linha.Categoria = categorias.Resolver(linha.Detalhe)

		if matcher != nil {
			if cliente, centro, ok := matcher.Encontrar(detalheNorm); ok {
				linha.Cliente = cliente
				linha.CentroCusto = centro
				linha.Categoria = CategoriaRepasse
			}
		}

		if categoria, ok := CategoriaEmprestimo(linha.Processo, linha.Pessoa); ok {
			linha.Categoria = categoria
		}

		linha.Despesa = ClassificarDespesa(linha.Fluxo, linha.Processo, linha.Detalhe)
		linha.ValorFormatado = FormatarValor(linha.ValorRaw, linha.Despesa)

		linha.DataFormatada = FormatarData(linha.DataRaw)
		if linha.DataFormatada == "" && strings.TrimSpace(linha.DataRaw) != "" {
			logger.Warn("data da tesouraria não reconhecida, campo de data ficará vazio",
				zap.Int("linha", i+2),
				zap.String("valor", linha.DataRaw))
		}

		saida = append(saida, domain.LinhaSaida{
			DataCompetencia:   linha.DataFormatada,
			DataVencimento:    linha.DataFormatada,
			DataPagamento:     linha.DataFormatada,
			Valor:             linha.ValorFormatado,
			Categoria:         linha.Categoria,
			Descricao:         strings.TrimSpace(linha.ItemID + " " + linha.Descricao),
			ClienteFornecedor: linha.Cliente,
			CNPJCPF:           "",
			CentroCusto:       centroCusto(setor, linha),
			Observacoes:       "",
		})
	}

	return saida, nil
}

// centroCusto aplica a regra de centro de custo do setor: Previdência usa o
// centro do match de repasse; Sinodalidade usa o Lote com padrão fixo para
// vazio/"nan"; os demais setores deixam em branco.
func centroCusto(setor domain.Setor, linha domain.LinhaClassificada) string {
	switch setor {
	case domain.SetorPrevidenciaBrasil:
		return linha.CentroCusto
	case domain.SetorSinodalidade:
		lote := strings.TrimSpace(linha.Lote)
		if lote == "" || strings.EqualFold(lote, "nan") {
			return centroCustoPadraoSinodalidade
		}
		return lote
	}
	return ""
}
