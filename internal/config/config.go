package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config reúne a configuração do serviço, lida do ambiente.
type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"conversor-w4"`
		Port int    `envconfig:"PORT" default:"8084"`
	}

	Categorias struct {
		// Planilha de referência de categorias contábeis, carregada uma vez
		// na subida do serviço.
		Path string `envconfig:"CATEGORIAS_PATH" default:"categorias_contabeis.xlsx"`
	}

	// Limiares do matcher de repasses da Previdência, expostos para
	// ajuste sem mudança de código.
	Previdencia struct {
		NotaMinima        float64 `envconfig:"PREV_NOTA_MINIMA" default:"0.50"`
		PisoTokenLongo    float64 `envconfig:"PREV_PISO_TOKEN_LONGO" default:"0.98"`
		PisoSubstring     float64 `envconfig:"PREV_PISO_SUBSTRING" default:"0.95"`
		TamanhoTokenLongo int     `envconfig:"PREV_TAMANHO_TOKEN_LONGO" default:"5"`
	}
}

// Load processa as variáveis de ambiente e devolve a configuração.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
