package calculator

import "fmt"

// Params holds the window lengths and RSI policy for one pipeline run.
type Params struct {
	WShort    int
	WLong     int
	WMomentum int
	WExtrema  int
	WVolume   int
	RSIPolicy RSIPolicy
}

// DefaultParams returns the 18/50 dashboard defaults.
func DefaultParams() Params {
	return Params{
		WShort:    18,
		WLong:     50,
		WMomentum: 14,
		WExtrema:  20,
		WVolume:   20,
		RSIPolicy: RSISimple,
	}
}

// Validate fails fast on an invalid configuration, before any computation.
func (p Params) Validate() error {
	if p.WShort <= 0 {
		return fmt.Errorf("short_window must be positive, got %d", p.WShort)
	}
	if p.WLong <= 0 {
		return fmt.Errorf("long_window must be positive, got %d", p.WLong)
	}
	if p.WShort >= p.WLong {
		return fmt.Errorf("short_window (%d) must be less than long_window (%d)", p.WShort, p.WLong)
	}
	if p.WMomentum <= 0 {
		return fmt.Errorf("momentum_window must be positive, got %d", p.WMomentum)
	}
	if p.WExtrema <= 0 {
		return fmt.Errorf("extrema_window must be positive, got %d", p.WExtrema)
	}
	if p.WVolume <= 0 {
		return fmt.Errorf("volume_window must be positive, got %d", p.WVolume)
	}
	switch p.RSIPolicy {
	case RSISimple, RSIWilder:
	default:
		return fmt.Errorf("rsi_policy must be %q or %q, got %q", RSISimple, RSIWilder, p.RSIPolicy)
	}
	return nil
}
