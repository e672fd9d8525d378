package model

import "time"

// TrendState classifies one bar by the short/long SMA relation.
type TrendState int

const (
	TrendUndefined TrendState = iota // either SMA still in warmup
	TrendBullish                     // smaShort > smaLong
	TrendBearish                     // smaShort <= smaLong
)

func (s TrendState) String() string {
	switch s {
	case TrendBullish:
		return "BULLISH"
	case TrendBearish:
		return "BEARISH"
	default:
		return "UNDEFINED"
	}
}

// CrossKind tags a crossover by the state being entered.
type CrossKind string

const (
	BuyCross  CrossKind = "BUY"
	SellCross CrossKind = "SELL"
)

// CrossoverEvent marks a bar where the trend state flipped.
type CrossoverEvent struct {
	Index int // bar index in the series
	Time  time.Time
	Price float64 // close of the transition bar
	Kind  CrossKind
}
