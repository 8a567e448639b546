package conversor

import "strings"

// contextoFluxo carrega os campos já preparados para os testes de palavra-chave:
// fluxo e detalhe em minúsculas, processo normalizado (sem acentos).
type contextoFluxo struct {
	fluxo      string
	processo   string
	detalhe    string
	fluxoVazio bool
}

func novoContextoFluxo(fluxo, processo, detalhe string) contextoFluxo {
	f := strings.ToLower(strings.TrimSpace(fluxo))
	return contextoFluxo{
		fluxo:      f,
		processo:   Normalizar(processo),
		detalhe:    strings.ToLower(detalhe),
		fluxoVazio: f == "" || f == "nan" || f == "none",
	}
}

// regraFluxo é um par (predicado, efeito); as regras são avaliadas em ordem e
// a última que casar define o sinal, antes da negação final.
type regraFluxo struct {
	nome    string
	casa    func(ctx contextoFluxo) bool
	despesa bool
}

var regrasFluxo = []regraFluxo{
	{
		nome:    "fluxo contém despesa",
		casa:    func(ctx contextoFluxo) bool { return strings.Contains(ctx.fluxo, "despesa") },
		despesa: true,
	},
	{
		nome:    "fluxo contém receita",
		casa:    func(ctx contextoFluxo) bool { return strings.Contains(ctx.fluxo, "receita") },
		despesa: false,
	},
	{
		nome:    "fluxo contém imobilizado",
		casa:    func(ctx contextoFluxo) bool { return strings.Contains(ctx.fluxo, "imobilizado") },
		despesa: true,
	},
	{
		nome: "sem fluxo, detalhe contém custo/despesa",
		casa: func(ctx contextoFluxo) bool {
			return ctx.fluxoVazio &&
				(strings.Contains(ctx.detalhe, "custo") || strings.Contains(ctx.detalhe, "despesa"))
		},
		despesa: true,
	},
	{
		nome: "sem fluxo, processo contém pagamento",
		casa: func(ctx contextoFluxo) bool {
			return ctx.fluxoVazio && strings.Contains(ctx.processo, "pagamento")
		},
		despesa: true,
	},
	{
		nome: "sem fluxo, processo contém recebimento",
		casa: func(ctx contextoFluxo) bool {
			return ctx.fluxoVazio && strings.Contains(ctx.processo, "recebimento")
		},
		despesa: false,
	},
}

// receitaForcada é a negação final: fluxo de receita, ou recebimento sem
// fluxo, nunca sai como despesa, seja qual for o resultado das regras.
func receitaForcada(ctx contextoFluxo) bool {
	return strings.Contains(ctx.fluxo, "receita") ||
		(ctx.fluxoVazio && strings.Contains(ctx.processo, "recebimento"))
}

// ClassificarDespesa decide se o lançamento é despesa (true) ou receita
// (false) a partir dos sinais de fluxo, processo e detalhe, na precedência
// documentada das regras.
func ClassificarDespesa(fluxo, processo, detalhe string) bool {
	ctx := novoContextoFluxo(fluxo, processo, detalhe)

	despesa := false
	for _, r := range regrasFluxo {
		if r.casa(ctx) {
			despesa = r.despesa
		}
	}
	if receitaForcada(ctx) {
		despesa = false
	}
	return despesa
}

// CategoriaEmprestimo devolve a categoria especial de empréstimos (processo
// original + pessoa) quando o processo é de empréstimo. Independente do sinal
// despesa/receita.
func CategoriaEmprestimo(processo, pessoa string) (string, bool) {
	if !strings.Contains(Normalizar(processo), "emprestimo") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimSpace(processo) + " " + strings.TrimSpace(pessoa)), true
}
