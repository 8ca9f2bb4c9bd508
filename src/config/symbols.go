package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gopkg.in/yaml.v3"
)

var DefaultSupportedSymbols = model.SupportedSymbols{
	"BTCUSDT",
	"ETHUSDT",
	"SOLUSDT",
	"BNBUSDT",
	"DOGEUSDT",
	"XRPUSDT",
}

type symbolsFile struct {
	Symbols []string `yaml:"symbols"`
}

// LoadSupportedSymbols resolves the symbol list: the yaml file wins over the
// env list, which wins over the built-in default.
func (c *Config) LoadSupportedSymbols() (model.SupportedSymbols, error) {
	if c.App.SymbolsFile != "" {
		content, err := os.ReadFile(c.App.SymbolsFile)
		if err != nil {
			return nil, errors.Wrapf(err, "read symbols file %s", c.App.SymbolsFile)
		}

		var file symbolsFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, errors.Wrapf(err, "decode symbols file %s", c.App.SymbolsFile)
		}

		symbols := normalizeSymbols(file.Symbols)
		if len(symbols) == 0 {
			return nil, errors.Errorf("symbols file %s has no symbols", c.App.SymbolsFile)
		}

		return symbols, nil
	}

	if symbols := normalizeSymbols(c.App.SupportedSymbols); len(symbols) > 0 {
		return symbols, nil
	}

	return append(model.SupportedSymbols{}, DefaultSupportedSymbols...), nil
}

func normalizeSymbols(raw []string) model.SupportedSymbols {
	symbols := make(model.SupportedSymbols, 0, len(raw))
	for _, symbol := range raw {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol == "" || symbols.Contains(symbol) {
			continue
		}
		symbols = append(symbols, symbol)
	}

	return symbols
}
