// Package coindata serves the coin catalogue the dashboard renders. A
// live deployment would sit on a market-data feed; this provider is the
// fixed read-only contract the rest of the system consumes.
package coindata

import (
	_ "embed"
	"fmt"
	"strings"

	"moonradar/internal/model"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

var ErrCoinNotFound = errors.New("coin not found")

type Provider interface {
	GetBySymbol(symbol string) (*model.Coin, error)
	MoonshotOfMonth() *model.Coin
	GroupedByPhase() map[model.MoonPhase][]*model.Coin
}

//go:embed coins.json
var coinsJSON []byte

type dataset struct {
	Moonshot model.Coin                       `json:"moonshot"`
	Coins    map[string]model.Coin            `json:"coins"`
	Phases   map[model.MoonPhase][]model.Coin `json:"phases"`
}

// StaticProvider answers every query from the embedded dataset.
type StaticProvider struct {
	moonshot model.Coin
	bySymbol map[string]model.Coin
	byPhase  map[model.MoonPhase][]*model.Coin
}

func NewStaticProvider() (*StaticProvider, error) {
	var ds dataset
	if err := json.Unmarshal(coinsJSON, &ds); err != nil {
		return nil, fmt.Errorf("failed to decode coin dataset: %w", err)
	}

	bySymbol := make(map[string]model.Coin, len(ds.Coins))
	for symbol, coin := range ds.Coins {
		bySymbol[strings.ToUpper(symbol)] = coin
	}

	byPhase := make(map[model.MoonPhase][]*model.Coin, len(ds.Phases))
	for phase, coins := range ds.Phases {
		list := make([]*model.Coin, len(coins))
		for i := range coins {
			c := coins[i]
			list[i] = &c
		}
		byPhase[phase] = list
	}

	return &StaticProvider{
		moonshot: ds.Moonshot,
		bySymbol: bySymbol,
		byPhase:  byPhase,
	}, nil
}

// GetBySymbol is case-insensitive; clients send whatever casing the URL
// carried.
func (p *StaticProvider) GetBySymbol(symbol string) (*model.Coin, error) {
	coin, ok := p.bySymbol[strings.ToUpper(symbol)]
	if !ok {
		return nil, ErrCoinNotFound
	}
	return &coin, nil
}

func (p *StaticProvider) MoonshotOfMonth() *model.Coin {
	coin := p.moonshot
	return &coin
}

func (p *StaticProvider) GroupedByPhase() map[model.MoonPhase][]*model.Coin {
	return p.byPhase
}
