package printing

import (
	"bytes"
	"encoding/csv"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/finstatements/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Row is one line of a statement
type Row struct {
	Label string
	Note  string
	// Heading rows carry no amounts
	Heading bool
	// Total rows are printed in bold with a rule above
	Total  bool
	Indent int
	CY     decimal.Decimal
	PY     decimal.Decimal
}

// Document is a statement ready for rendering
type Document struct {
	Title      string
	EntityName string
	// PeriodCY and PeriodPY head the amount columns
	PeriodCY string
	PeriodPY string
	Units    string
	// ZeroAsDash prints zero amounts as "-"
	ZeroAsDash bool
	// NegativeInBrackets prints -5 as (5)
	NegativeInBrackets bool
	Rows               []Row
	GeneratedAt        time.Time
}

// FormatCell renders an amount according to the document settings
func (d *Document) FormatCell(v decimal.Decimal) string {
	if v.IsZero() && d.ZeroAsDash {
		return "-"
	}
	if v.IsNegative() && d.NegativeInBrackets {
		return "(" + shared.FormatAmount(v.Abs()) + ")"
	}
	return shared.FormatAmount(v)
}

var statementTemplate = template.Must(template.New("statement").Funcs(template.FuncMap{
	// a Caser keeps state, so each call gets its own
	"title":  func(s string) string { return cases.Title(language.English).String(s) },
	"indent": func(n int) template.CSS { return template.CSS("padding-left:" + strconv.Itoa(n*12) + "px") },
	"date":   func(t time.Time) string { return t.Format("02 Jan 2006 15:04") },
}).Parse(`<!DOCTYPE html>
<html><head><meta charset="UTF-8"><title>{{.Title}}</title>
<style>
body { font-family: "Bookman Old Style", Georgia, serif; font-size: 11pt; color: #111; }
h1 { font-size: 14pt; text-align: center; margin: 0; }
h2 { font-size: 12pt; text-align: center; margin: 4px 0 12px; font-weight: normal; }
table { width: 100%; border-collapse: collapse; }
th { border-bottom: 1px solid #111; text-align: right; padding: 4px; }
th.label, td.label { text-align: left; }
td { padding: 3px 4px; text-align: right; }
td.note { text-align: center; width: 60px; }
tr.heading td { font-weight: bold; padding-top: 10px; }
tr.total td { font-weight: bold; border-top: 1px solid #111; }
p.units { text-align: right; font-style: italic; margin: 0 0 4px; }
p.generated { font-size: 8pt; color: #666; margin-top: 16px; }
</style></head>
<body>
<h1>{{.EntityName}}</h1>
<h2>{{title .Title}}</h2>
{{if .Units}}<p class="units">(All amounts in {{.Units}})</p>{{end}}
<table>
<thead><tr><th class="label">Particulars</th><th>Note</th><th>{{.PeriodCY}}</th><th>{{.PeriodPY}}</th></tr></thead>
<tbody>
{{range .Rows}}{{if .Heading}}<tr class="heading"><td class="label" colspan="4" style="{{indent .Indent}}">{{.Label}}</td></tr>
{{else}}<tr{{if .Total}} class="total"{{end}}><td class="label" style="{{indent .Indent}}">{{.Label}}</td><td class="note">{{.Note}}</td><td>{{$.FormatCell .CY}}</td><td>{{$.FormatCell .PY}}</td></tr>
{{end}}{{end}}</tbody>
</table>
<p class="generated">Generated {{date .GeneratedAt}}</p>
</body></html>
`))

// FooterTemplate prints page numbers at the bottom of each PDF page
const FooterTemplate = `<div style="font-size:8px;width:100%;text-align:center;">Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`

// RenderHTML renders doc as a standalone HTML page
func RenderHTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	if err := statementTemplate.Execute(&buf, doc); err != nil {
		return "", NewRenderError(ErrCodeInvalidHTML, "render statement template", err)
	}
	return buf.String(), nil
}

// WriteCSV writes doc as CSV with plain, ungrouped amounts
func WriteCSV(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{doc.EntityName},
		{doc.Title},
		{"Particulars", "Note", doc.PeriodCY, doc.PeriodPY},
	}
	for _, r := range doc.Rows {
		if r.Heading {
			records = append(records, []string{r.Label, "", "", ""})
			continue
		}
		records = append(records, []string{r.Label, r.Note, r.CY.StringFixed(2), r.PY.StringFixed(2)})
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}
