package cmd

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
)

func TestSqlitePath(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"/home/u/.grana/ledger.json", "/home/u/.grana/ledger.db"},
		{"ledger.json", "ledger.db"},
		{"ledger", "ledger.db"},
	}
	for _, tc := range testCases {
		if got := sqlitePath(tc.in); got != tc.want {
			t.Errorf("sqlitePath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestConfigDecode(t *testing.T) {
	raw := `
data_file = "/tmp/ledger.json"
backend = "sqlite"
csv_separator = ","
model = "gemini-2.5-pro"
`
	cfg := defaultConfig()
	if err := toml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.DataFile != "/tmp/ledger.json" || cfg.Backend != "sqlite" ||
		cfg.CSVSeparator != "," || cfg.Model != "gemini-2.5-pro" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Backend != "json" {
		t.Errorf("default backend = %q, want json", cfg.Backend)
	}
	if cfg.CSVSeparator != ";" {
		t.Errorf("default csv separator = %q, want ;", cfg.CSVSeparator)
	}
	if cfg.DataFile == "" {
		t.Errorf("default data file is empty")
	}
}
