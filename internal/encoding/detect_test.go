package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"conversor-w4-service/internal/encoding"
)

func TestNewUTF8ReaderPassaUTF8Direto(t *testing.T) {
	entrada := "Detalhe Conta / Objeto;Valor total\nOferta Missão;1.234,56\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(entrada)))
	require.NoError(t, err)

	saida, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, entrada, string(saida))
}

func TestNewUTF8ReaderDecodeLatin1(t *testing.T) {
	// "Descrição;Valor\n" em Windows-1252 (ç = 0xE7, ã = 0xE3)
	latin1 := []byte{
		'D', 'e', 's', 'c', 'r', 'i', 0xE7, 0xE3, 'o', ';',
		'V', 'a', 'l', 'o', 'r', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(latin1))
	require.NoError(t, err)

	saida, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Descrição;Valor\n", string(saida))
}

func TestNewUTF8ReaderDescartaBOM(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	conteudo := []byte("Descrição;Valor\n")

	r, err := encoding.NewUTF8Reader(bytes.NewReader(append(bom, conteudo...)))
	require.NoError(t, err)

	saida, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Descrição;Valor\n", string(saida))
}
