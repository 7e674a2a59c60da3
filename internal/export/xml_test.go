package export

import (
	"strings"
	"testing"
	"time"

	"github.com/Maximiliano-zm/deudas-service/internal/ledger"
	"github.com/Maximiliano-zm/deudas-service/internal/models"
	"github.com/google/uuid"
)

func TestDebtBookXML(t *testing.T) {
	rate := 2.5
	original := int64(1200000)
	debts := []models.Debt{
		{
			ID:       uuid.New(),
			BankName: "Santander",
			Account: ledger.Account{
				CurrentBalance: 800000,
				Statement: &ledger.Statement{
					Balance:        120000,
					MinimumPayment: 30000,
					DueDate:        time.Date(2026, time.April, 5, 0, 0, 0, 0, time.UTC),
					InterestRate:   &rate,
				},
			},
			OriginalAmount: &original,
		},
		{
			ID:       uuid.New(),
			BankName: "BancoEstado",
			Account:  ledger.Account{CurrentBalance: 320000},
		},
	}

	out, err := DebtBookXML("maxi", debts, time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	xml := string(out)

	for _, want := range []string{
		`usuario="maxi"`,
		"<banco>Santander</banco>",
		"<saldo_actual>800000</saldo_actual>",
		"<monto_original>1200000</monto_original>",
		"<monto>120000</monto>",
		"<pago_minimo>30000</pago_minimo>",
		"<vencimiento>2026-04-05</vencimiento>",
		"<tasa_interes>2.5</tasa_interes>",
		"<banco>BancoEstado</banco>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("missing %q in:\n%s", want, xml)
		}
	}
	if strings.Count(xml, "<factura>") != 1 {
		t.Errorf("expected exactly one factura block:\n%s", xml)
	}
}
