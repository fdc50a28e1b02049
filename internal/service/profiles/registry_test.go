package profiles

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `entities:
  - code: us
    name: United States
    currency: USD
    index_symbol: "^GSPC"
    fx_symbol: "USDEUR=X"
    worldbank_code: USA
  - code: de
    name: Germany
    currency: EUR
    index_symbol: "^GDAXI"
    worldbank_code: DEU
`

func TestLoadAndLookup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	p, err := reg.Get("us")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.WorldBankCode != "USA" || p.IndexSymbol != "^GSPC" {
		t.Fatalf("unexpected profile %+v", p)
	}

	if _, err := reg.Get("zz"); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}

	codes := reg.Codes()
	if len(codes) != 2 || codes[0] != "de" || codes[1] != "us" {
		t.Fatalf("codes must be sorted, got %v", codes)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte("entities: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("empty profiles file must error")
	}
}
