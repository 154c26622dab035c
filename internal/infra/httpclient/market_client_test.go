package httpclient

import "testing"

func TestFormatSymbol(t *testing.T) {
	cases := []struct {
		pair string
		want string
	}{
		{"US30", "^DJI"},
		{"SPX500", "^GSPC"},
		{"NAS100", "^IXIC"},
		{"XAU/USD", "GC=F"},
		{"XAG/USD", "SI=F"},
		{"USOIL", "CL=F"},
		{"EURUSD", "EURUSD=X"},
		{"GBP/JPY", "GBPJPY=X"},
		{"BTCUSDT", "BTC-USD"},
		{"dogeusdt", "DOGE-USD"},
		{"AAPL", "AAPL"},
	}

	for _, tc := range cases {
		if got := FormatSymbol(tc.pair); got != tc.want {
			t.Errorf("FormatSymbol(%q) = %q, want %q", tc.pair, got, tc.want)
		}
	}
}

func TestFormatTimeframe(t *testing.T) {
	interval, rng := FormatTimeframe("1h")
	if interval != "60m" || rng != "1mo" {
		t.Fatalf("FormatTimeframe(1h) = %q, %q", interval, rng)
	}

	interval, rng = FormatTimeframe("unknown")
	if interval != "1d" || rng != "1y" {
		t.Fatalf("fallback = %q, %q, want daily over one year", interval, rng)
	}
}

func TestNewYahooMarketClientRequiresBaseURL(t *testing.T) {
	if _, err := NewYahooMarketClient("  "); err == nil {
		t.Fatal("expected error for blank base URL")
	}
}
