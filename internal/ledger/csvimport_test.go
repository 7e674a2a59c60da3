package ledger

import (
	"strings"
	"testing"
)

func TestParseImportCSV(t *testing.T) {
	text := strings.Join([]string{
		"banco,saldo_actual,monto_original",
		"Santander,800000,1200000",
		"BancoX,500000,300000",
		",100000,",
		"",
		"CMR Falabella,450000,",
	}, "\n")

	rows := ParseImportCSV(text)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}

	if r := rows[0]; !r.Valid() || r.Banco != "Santander" || r.SaldoActual != 800000 ||
		r.MontoOriginal == nil || *r.MontoOriginal != 1200000 {
		t.Errorf("row 0 = %+v", r)
	}
	if r := rows[1]; r.Valid() || r.Errors[0] != "Monto original < saldo actual" {
		t.Errorf("row 1 = %+v", r)
	}
	if r := rows[2]; r.Valid() || r.Errors[0] != "Banco requerido" {
		t.Errorf("row 2 = %+v", r)
	}
	if r := rows[3]; !r.Valid() || r.MontoOriginal != nil {
		t.Errorf("row 3 = %+v", r)
	}
}

func TestParseImportCSVNormalizesSource(t *testing.T) {
	// Excel exports: BOM, \r\n endings, quoted fields with embedded commas.
	text := "\uFEFFbanco,saldo_actual,monto_original\r\n" +
		"\"Banco, Estado\",\"320.000\",500000\r" +
		"Itau,150000,\r\n"

	rows := ParseImportCSV(text)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if r := rows[0]; !r.Valid() || r.Banco != "Banco, Estado" || r.SaldoActual != 320000 {
		t.Errorf("row 0 = %+v", r)
	}
	if r := rows[1]; !r.Valid() || r.Banco != "Itau" {
		t.Errorf("row 1 = %+v", r)
	}
}

func TestCleanFieldStripsOneQuotePerEnd(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"Santander"`, "Santander"},
		{`  "Banco Estado"  `, "Banco Estado"},
		{`""x""`, `"x"`}, // only the outermost pair comes off
		{`"`, ""},
		{"sin comillas", "sin comillas"},
	}
	for _, tt := range tests {
		if got := cleanField([]string{tt.in}, 0); got != tt.want {
			t.Errorf("cleanField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := cleanField(nil, 2); got != "" {
		t.Errorf("missing column = %q, want empty", got)
	}
}

func TestParseImportCSVCollectsAllRowErrors(t *testing.T) {
	rows := ParseImportCSV("banco,saldo_actual,monto_original\n,abc,")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	r := rows[0]
	if len(r.Errors) != 2 {
		t.Fatalf("errors = %v, want bank and balance errors", r.Errors)
	}
	if r.SaldoActual != 0 {
		t.Errorf("unparseable balance must report 0, got %d", r.SaldoActual)
	}
}

func TestParseImportCSVHeaderOnly(t *testing.T) {
	if rows := ParseImportCSV("banco,saldo_actual,monto_original\n"); rows != nil {
		t.Errorf("got %v, want no rows", rows)
	}
}

func TestPartitionRows(t *testing.T) {
	rows := ParseImportCSV(CSVTemplate + "\n,0,")
	valid, invalid := PartitionRows(rows)
	if len(valid) != 3 || len(invalid) != 1 {
		t.Errorf("partition = %d/%d, want 3 valid and 1 invalid", len(valid), len(invalid))
	}
}
