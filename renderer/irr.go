package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
)

// IRRMarkdown renders an IRR analysis.
func IRRMarkdown(a *Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Internal Rate of Return on %s", a.Date))
	doc.PlainText(fmt.Sprintf("Analysis of %d cash flows.", a.Flows))

	doc.Table(md.TableSet{
		Header: []string{"", "Value"},
		Rows: [][]string{
			{"Value today", a.CurrentValue.String()},
			{"Total invested", a.TotalInvested.String()},
			{"Cash PnL", a.CashPnL.SignedString()},
			{"Overall return", a.OverallReturn.SignedString()},
			{"Internal rate of return", a.IRR.String()},
		},
	})
	return doc.String()
}
