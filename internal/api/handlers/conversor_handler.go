package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"conversor-w4-service/internal/api/responses"
	"conversor-w4-service/internal/core/conversor"
	"conversor-w4-service/internal/domain"

	"github.com/gin-gonic/gin"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ConversorHandler lida com as requisições da API de conversão W4.
type ConversorHandler struct {
	service conversor.Service
}

// NewConversorHandler cria um novo handler de conversão.
func NewConversorHandler(service conversor.Service) *ConversorHandler {
	return &ConversorHandler{
		service: service,
	}
}

func extensaoSuportada(nome string) bool {
	switch strings.ToLower(filepath.Ext(nome)) {
	case ".csv", ".xls", ".xlsx":
		return true
	}
	return false
}

// HandleW4Conversion lida com a conversão de exportações W4 para o formato do
// Conta Azul. Espera multipart com "setor", "w4File" e, para o setor
// Previdência Brasil, "mapeamentoFile".
func (h *ConversorHandler) HandleW4Conversion(c *gin.Context) {
	setor, err := domain.ParseSetor(c.PostForm("setor"))
	if err != nil {
		responses.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	w4FileHeader, err := c.FormFile("w4File")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo W4 (.csv, .xls, .xlsx) não encontrado ou inválido")
		return
	}
	if !extensaoSuportada(w4FileHeader.Filename) {
		responses.Error(c, http.StatusBadRequest,
			fmt.Sprintf("Extensão de arquivo W4 não suportada: %s", filepath.Ext(w4FileHeader.Filename)))
		return
	}

	var mapeamentoFile io.Reader
	var mapeamentoFilename string
	if setor == domain.SetorPrevidenciaBrasil {
		mapeamentoFileHeader, err := c.FormFile("mapeamentoFile")
		if err != nil {
			responses.Error(c, http.StatusBadRequest, "Envie o arquivo de mapeamento da Previdência (Cliente / Padrao)")
			return
		}
		if !extensaoSuportada(mapeamentoFileHeader.Filename) {
			responses.Error(c, http.StatusBadRequest,
				fmt.Sprintf("Extensão de arquivo de mapeamento não suportada: %s", filepath.Ext(mapeamentoFileHeader.Filename)))
			return
		}
		f, err := mapeamentoFileHeader.Open()
		if err != nil {
			responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir o arquivo de mapeamento")
			return
		}
		defer f.Close()
		mapeamentoFile = f
		mapeamentoFilename = mapeamentoFileHeader.Filename
	}

	w4File, err := w4FileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir o arquivo W4")
		return
	}
	defer w4File.Close()

	outputXLSX, err := h.service.ProcessW4File(w4File, w4FileHeader.Filename, mapeamentoFile, mapeamentoFilename, setor)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao converter o arquivo", err.Error())
		return
	}

	fileName := fmt.Sprintf("ContaAzulConvertido_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, mimeXLSX, outputXLSX)
}
