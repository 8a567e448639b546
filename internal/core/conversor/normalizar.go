package conversor

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var naoAlfanumericoRegex = regexp.MustCompile(`[^a-z0-9]+`)
var espacosRegex = regexp.MustCompile(`\s+`)

// Normalizar produz a chave canônica de comparação de um texto livre:
// minúsculas, sem acentos (decomposição NFD com descarte das marcas
// combinantes), qualquer sequência fora de [a-z0-9] vira um único espaço.
// É total e idempotente; não há condição de erro.
func Normalizar(texto string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	resultado, _, _ := transform.String(t, texto)
	resultado = strings.ToLower(resultado)
	resultado = naoAlfanumericoRegex.ReplaceAllString(resultado, " ")
	resultado = espacosRegex.ReplaceAllString(resultado, " ")
	return strings.TrimSpace(resultado)
}
