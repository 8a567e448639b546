package domain

import (
	"fmt"
	"strings"
)

// Tabela é uma visão tabular imutável de uma planilha ou CSV já decodificado:
// um cabeçalho com nomes limpos e únicos e as linhas de dados em ordem.
type Tabela struct {
	colunas []string
	indice  map[string]int
	linhas  [][]string
}

// LimparNomeColuna remove NBSP e espaços nas pontas do nome de uma coluna.
func LimparNomeColuna(nome string) string {
	return strings.TrimSpace(strings.ReplaceAll(nome, " ", " "))
}

// NovaTabela monta uma Tabela a partir das linhas cruas de uma planilha.
// A primeira linha é o cabeçalho; nomes repetidos recebem sufixo __2, __3, …
// e a primeira ocorrência é a que responde às consultas por nome.
func NovaTabela(linhas [][]string) Tabela {
	if len(linhas) == 0 {
		return Tabela{indice: map[string]int{}}
	}

	contagem := map[string]int{}
	colunas := make([]string, 0, len(linhas[0]))
	indice := make(map[string]int, len(linhas[0]))

	for i, bruto := range linhas[0] {
		nome := LimparNomeColuna(bruto)
		contagem[nome]++
		if contagem[nome] > 1 {
			nome = fmt.Sprintf("%s__%d", nome, contagem[nome])
		}
		colunas = append(colunas, nome)
		if _, ok := indice[nome]; !ok {
			indice[nome] = i
		}
	}

	return Tabela{colunas: colunas, indice: indice, linhas: linhas[1:]}
}

// Colunas devolve os nomes de coluna já limpos e únicos, na ordem original.
func (t Tabela) Colunas() []string {
	return t.colunas
}

// NumLinhas devolve a quantidade de linhas de dados (sem o cabeçalho).
func (t Tabela) NumLinhas() int {
	return len(t.linhas)
}

// TemColuna informa se a coluna existe no cabeçalho.
func (t Tabela) TemColuna(nome string) bool {
	_, ok := t.indice[LimparNomeColuna(nome)]
	return ok
}

// Valor devolve a célula da linha i na coluna nomeada, ou "" quando a coluna
// não existe ou a linha não alcança a posição dela.
func (t Tabela) Valor(i int, coluna string) string {
	idx, ok := t.indice[LimparNomeColuna(coluna)]
	if !ok || i < 0 || i >= len(t.linhas) {
		return ""
	}
	linha := t.linhas[i]
	if idx >= len(linha) {
		return ""
	}
	return linha[idx]
}

// ExigirColunas confere a presença das colunas obrigatórias. O erro nomeia a
// primeira coluna ausente e lista as colunas realmente encontradas.
func (t Tabela) ExigirColunas(nomes ...string) error {
	for _, nome := range nomes {
		if !t.TemColuna(nome) {
			return fmt.Errorf("coluna obrigatória não encontrada: %s (colunas presentes: %s)",
				nome, strings.Join(t.colunas, ", "))
		}
	}
	return nil
}
