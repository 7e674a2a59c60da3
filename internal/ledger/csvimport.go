package ledger

import "strings"

// CSVHeader is the fixed three-column template header. Any conforming
// spreadsheet export must be accepted.
const CSVHeader = "banco,saldo_actual,monto_original"

// CSVTemplate is the downloadable template with sample rows.
var CSVTemplate = strings.Join([]string{
	CSVHeader,
	"Santander,800000,1200000",
	"CMR Falabella,450000,",
	"BancoEstado,320000,500000",
}, "\n")

// ImportRow is one candidate debt from a CSV upload. Invalid rows are kept
// for display with their full error list; the first error doubles as the
// summary label.
type ImportRow struct {
	Banco         string   `json:"banco"`
	SaldoActual   int64    `json:"saldo_actual"`
	MontoOriginal *int64   `json:"monto_original,omitempty"`
	Errors        []string `json:"errors,omitempty"`
}

// Valid reports whether the row passed every check.
func (r ImportRow) Valid() bool { return len(r.Errors) == 0 }

// splitCSVLine splits on commas outside double quotes.
func splitCSVLine(line string) []string {
	var cols []string
	var current strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			cols = append(cols, current.String())
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}
	cols = append(cols, current.String())
	return cols
}

func cleanField(cols []string, i int) string {
	if i >= len(cols) {
		return ""
	}
	// Strip at most one surrounding quote per end so a field like ""x""
	// keeps its inner quotes.
	s := strings.TrimSpace(cols[i])
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// ParseImportCSV parses a CSV upload into candidate rows. It tolerates an
// Excel byte-order marker and \r\n or bare \r line endings, always skips the
// header line and skips blank lines. All applicable errors are collected
// per row.
func ParseImportCSV(text string) []ImportRow {
	clean := strings.TrimPrefix(text, "\uFEFF")
	clean = strings.ReplaceAll(clean, "\r\n", "\n")
	clean = strings.ReplaceAll(clean, "\r", "\n")

	lines := strings.Split(strings.TrimSpace(clean), "\n")
	if len(lines) <= 1 {
		return nil
	}

	var rows []ImportRow
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := splitCSVLine(line)
		banco := cleanField(cols, 0)
		saldoRaw := cleanField(cols, 1)
		originalRaw := cleanField(cols, 2)

		saldo, saldoOK := ParseAmount(saldoRaw)
		var original *int64
		if originalRaw != "" {
			if v, ok := ParseAmount(originalRaw); ok {
				original = &v
			}
		}

		var errs []string
		if banco == "" {
			errs = append(errs, "Banco requerido")
		}
		if !saldoOK || saldo <= 0 {
			errs = append(errs, "Saldo inválido")
		}
		if original != nil && *original <= 0 {
			errs = append(errs, "Monto original inválido")
		}
		if saldoOK && original != nil && *original < saldo {
			errs = append(errs, "Monto original < saldo actual")
		}

		if !saldoOK {
			saldo = 0
		}
		rows = append(rows, ImportRow{
			Banco:         banco,
			SaldoActual:   saldo,
			MontoOriginal: original,
			Errors:        errs,
		})
	}
	return rows
}

// PartitionRows splits parsed rows into the commit set and the rejects.
func PartitionRows(rows []ImportRow) (valid, invalid []ImportRow) {
	for _, r := range rows {
		if r.Valid() {
			valid = append(valid, r)
		} else {
			invalid = append(invalid, r)
		}
	}
	return valid, invalid
}
