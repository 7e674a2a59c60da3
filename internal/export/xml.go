package export

import (
	"strconv"
	"time"

	"github.com/Maximiliano-zm/deudas-service/internal/models"
	"github.com/beevik/etree"
)

// DebtBookXML renders a user's full debt book as an XML document for
// download and portability.
func DebtBookXML(username string, debts []models.Debt, now time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("deudas")
	root.CreateAttr("usuario", username)
	root.CreateAttr("generado", now.UTC().Format(time.RFC3339))

	for i := range debts {
		d := &debts[i]
		deuda := root.CreateElement("deuda")
		deuda.CreateAttr("id", d.ID.String())
		deuda.CreateElement("banco").SetText(d.BankName)
		deuda.CreateElement("saldo_actual").SetText(strconv.FormatInt(d.CurrentBalance, 10))
		if d.OriginalAmount != nil {
			deuda.CreateElement("monto_original").SetText(strconv.FormatInt(*d.OriginalAmount, 10))
		}
		if st := d.Statement; st != nil {
			factura := deuda.CreateElement("factura")
			factura.CreateElement("monto").SetText(strconv.FormatInt(st.Balance, 10))
			factura.CreateElement("pago_minimo").SetText(strconv.FormatInt(st.MinimumPayment, 10))
			factura.CreateElement("vencimiento").SetText(st.DueDate.Format("2006-01-02"))
			if st.InterestRate != nil {
				factura.CreateElement("tasa_interes").SetText(strconv.FormatFloat(*st.InterestRate, 'f', -1, 64))
			}
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
