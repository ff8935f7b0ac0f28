package model

type MoonPhase string

const (
	MoonPhaseNew  MoonPhase = "NEW_MOON"
	MoonPhaseHalf MoonPhase = "HALF_MOON"
	MoonPhaseFull MoonPhase = "FULL_MOON"
)

type WhaleIndicator string

const (
	WhaleIndicatorRocket   WhaleIndicator = "ROCKET"
	WhaleIndicatorDynamite WhaleIndicator = "DYNAMITE"
	WhaleIndicatorBomb     WhaleIndicator = "BOMB"
)

type Coin struct {
	ID              string         `json:"id"`
	Symbol          string         `json:"symbol"`
	Name            string         `json:"name"`
	Price           float64        `json:"price"`
	PriceChange24h  float64        `json:"priceChange24h"`
	Volume24h       float64        `json:"volume24h"`
	MarketCap       float64        `json:"marketCap,omitempty"`
	WhalePercentage float64        `json:"whalePercentage"`
	Holders         int            `json:"holders,omitempty"`
	Liquidity       float64        `json:"liquidity,omitempty"`
	MoonPhase       MoonPhase      `json:"moonPhase"`
	WhaleIndicator  WhaleIndicator `json:"whaleIndicator"`
}

// WhaleIndicatorFor tags a coin by the share of supply held by whales.
func WhaleIndicatorFor(whalePercentage float64) WhaleIndicator {
	switch {
	case whalePercentage < 5:
		return WhaleIndicatorRocket
	case whalePercentage < 10:
		return WhaleIndicatorDynamite
	default:
		return WhaleIndicatorBomb
	}
}

// MoonPhaseFor derives the sentiment phase from a composite score of
// 24h price change, whale percentage and 24h volume change.
func MoonPhaseFor(priceChange24h, whalePercentage, volume24hChange float64) MoonPhase {
	score := priceChange24h - whalePercentage + volume24hChange/10

	switch {
	case score > 20:
		return MoonPhaseFull
	case score > 0:
		return MoonPhaseHalf
	default:
		return MoonPhaseNew
	}
}
