// cmd/conversor/main.go
package main

import (
	"fmt"
	"log"

	"conversor-w4-service/internal/api/handlers"
	"conversor-w4-service/internal/api/responses"
	"conversor-w4-service/internal/config"
	"conversor-w4-service/internal/core/conversor"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Falha ao carregar configuração: ", err)
	}

	logger := responses.InitLogger()
	defer logger.Sync()

	categorias, err := conversor.CarregarCategoriasArquivo(cfg.Categorias.Path, logger)
	if err != nil {
		log.Fatal("Falha ao carregar a tabela de categorias contábeis: ", err)
	}

	matcherCfg := conversor.ConfigMatcher{
		NotaMinima:        cfg.Previdencia.NotaMinima,
		PisoTokenLongo:    cfg.Previdencia.PisoTokenLongo,
		PisoSubstring:     cfg.Previdencia.PisoSubstring,
		TamanhoTokenLongo: cfg.Previdencia.TamanhoTokenLongo,
	}

	conversorService := conversor.NewService(categorias, matcherCfg, logger)
	conversorHandler := handlers.NewConversorHandler(conversorService)

	router := gin.Default()

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/convert/w4", conversorHandler.HandleW4Conversion)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": cfg.App.Name})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("🚀 Conversor W4 (Go) iniciado e escutando na porta %d", cfg.App.Port)
	if err := router.Run(addr); err != nil {
		log.Fatal("Falha ao iniciar o servidor de conversão: ", err)
	}
}
