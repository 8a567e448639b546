package conversor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"conversor-w4-service/internal/domain"
	"conversor-w4-service/internal/encoding"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// CarregarTabela decodifica um upload (.xlsx, .xls ou .csv com ';') em uma
// Tabela. A extensão decide o caminho; para planilhas binárias tenta xlsx e
// em seguida xls, pois a extensão nem sempre condiz com o conteúdo.
func CarregarTabela(arquivo io.Reader, nomeArquivo string) (domain.Tabela, error) {
	ext := strings.ToLower(filepath.Ext(nomeArquivo))
	switch ext {
	case ".csv":
		return carregarCSV(arquivo)
	case ".xls", ".xlsx":
		return carregarPlanilha(arquivo)
	}
	return domain.Tabela{}, fmt.Errorf("formato de arquivo não suportado: %s", ext)
}

func carregarCSV(arquivo io.Reader) (domain.Tabela, error) {
	utf8Reader, err := encoding.NewUTF8Reader(arquivo)
	if err != nil {
		return domain.Tabela{}, fmt.Errorf("erro ao detectar codificação do CSV: %w", err)
	}

	reader := csv.NewReader(utf8Reader)
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	registros, err := reader.ReadAll()
	if err != nil {
		return domain.Tabela{}, fmt.Errorf("erro ao ler CSV: %w", err)
	}
	return domain.NovaTabela(registros), nil
}

func carregarPlanilha(arquivo io.Reader) (domain.Tabela, error) {
	data, err := io.ReadAll(arquivo)
	if err != nil {
		return domain.Tabela{}, err
	}

	// tenta xlsx
	if f, errX := excelize.OpenReader(bytes.NewReader(data)); errX == nil {
		defer f.Close()
		nomes := f.GetSheetList()
		if len(nomes) == 0 {
			return domain.Tabela{}, fmt.Errorf("a planilha não contém abas")
		}
		linhas, err := f.GetRows(nomes[0])
		if err != nil {
			return domain.Tabela{}, fmt.Errorf("erro ao ler planilha: %w", err)
		}
		return domain.NovaTabela(linhas), nil
	}

	// tenta xls
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return domain.Tabela{}, fmt.Errorf("formato de planilha não reconhecido (nem xlsx nem xls): %w", err)
	}
	if len(workbook.GetSheets()) == 0 {
		return domain.Tabela{}, fmt.Errorf("o arquivo .xls não contém planilhas")
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return domain.Tabela{}, fmt.Errorf("erro ao obter planilha do arquivo .xls: %w", err)
	}
	var linhas [][]string
	for _, row := range sheet.GetRows() {
		var linha []string
		for _, cell := range row.GetCols() {
			linha = append(linha, cell.GetString())
		}
		linhas = append(linhas, linha)
	}
	return domain.NovaTabela(linhas), nil
}

// GerarXLSX monta o arquivo final do Conta Azul com o cabeçalho fixo de 10
// colunas e devolve os bytes do workbook.
func GerarXLSX(linhas []domain.LinhaSaida) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &domain.CabecalhoSaida); err != nil {
		return nil, fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}
	for i, linha := range linhas {
		campos := linha.Campos()
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &campos); err != nil {
			return nil, fmt.Errorf("erro ao escrever linha %d: %w", i+2, err)
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar xlsx: %w", err)
	}
	return buffer.Bytes(), nil
}
