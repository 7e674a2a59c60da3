package ledger

import "strconv"

// ParseAmount normalizes a locale-formatted CLP amount to whole pesos.
// Grouping separators and any other non-digit characters are stripped, so
// "1.200.000", "1,200,000" and "1200000" all parse to 1200000. The second
// return value is false when the input contains no digits at all.
func ParseAmount(raw string) (int64, bool) {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}
	if len(digits) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FormatAmount renders an amount the way es-CL renders CLP: "$" prefix,
// "." as thousands separator, no decimals. CLP has no subunits.
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		return sign + "$" + s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, '.')
		}
		out = append(out, s[i:i+3]...)
	}
	return sign + "$" + string(out)
}
