// Package pdf draws quotation documents with fpdf.
//
// Output is byte-for-byte reproducible for the same document: the creation
// date comes from the document and the catalog is written in sorted order.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/quotation"

	"github.com/go-pdf/fpdf"
)

const (
	pageMargin   = 15.0
	footerHeight = 15.0
	lineHeight   = 5.0
	rowHeight    = 7.0
	fontFamily   = "Helvetica"
	dateLayout   = "02 Jan 2006"
)

type column struct {
	title string
	width float64
	align string
}

var tableColumns = []column{
	{title: "#", width: 10, align: "C"},
	{title: "Item", width: 86, align: "L"},
	{title: "Qty", width: 16, align: "C"},
	{title: "Unit price", width: 34, align: "R"},
	{title: "Total", width: 34, align: "R"},
}

// Renderer implements ports.QuotationRenderer.
type Renderer struct{}

func NewRenderer() Renderer {
	return Renderer{}
}

func (Renderer) Render(doc quotation.Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(doc.IssuedAt)
	pdf.SetModificationDate(doc.IssuedAt)
	pdf.SetCatalogSort(true)

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	d := &drawer{pdf: pdf, tr: tr, doc: doc}

	pdf.SetTitle(tr("Quotation "+doc.Number), false)
	pdf.SetAuthor(tr(doc.Issuer.Name), false)
	pdf.SetCreator("fulfillment", false)
	pdf.SetFooterFunc(d.footer)

	pdf.AddPage()
	d.header()
	d.parties()
	d.table()
	d.summary()
	d.section("Payment instructions", doc.Instructions)
	d.section("Terms and conditions", doc.Terms)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("draw quotation %s: %w", doc.Number, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write quotation %s: %w", doc.Number, err)
	}
	return buf.Bytes(), nil
}

type drawer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	doc quotation.Document
}

func (d *drawer) bottom() float64 {
	_, h := d.pdf.GetPageSize()
	return h - pageMargin - footerHeight
}

// ensure starts a new page when height does not fit on the current one and
// reports whether it did.
func (d *drawer) ensure(height float64) bool {
	if d.pdf.GetY()+height <= d.bottom() {
		return false
	}
	d.pdf.AddPage()
	return true
}

func (d *drawer) money(m kernel.Money) string {
	return d.doc.Issuer.Currency + " " + m.Format()
}

func (d *drawer) header() {
	p, doc := d.pdf, d.doc

	p.SetFont(fontFamily, "B", 16)
	p.CellFormat(110, 8, d.tr(doc.Issuer.Name), "", 0, "L", false, 0, "")
	p.SetFont(fontFamily, "B", 20)
	p.CellFormat(0, 8, "QUOTATION", "", 1, "R", false, 0, "")

	p.SetFont(fontFamily, "", 9)
	left := []string{doc.Issuer.Address, doc.Issuer.Phone, doc.Issuer.Email, doc.Issuer.Website}
	right := []string{
		"No: " + doc.Number,
		"Date: " + doc.IssuedAt.Format(dateLayout),
		"Valid until: " + doc.ValidUntil.Format(dateLayout),
	}
	for i := 0; i < max(len(left), len(right)); i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		p.CellFormat(110, lineHeight, d.tr(l), "", 0, "L", false, 0, "")
		p.CellFormat(0, lineHeight, d.tr(r), "", 1, "R", false, 0, "")
	}
	p.Ln(4)
}

func (d *drawer) parties() {
	p, doc := d.pdf, d.doc
	addr := doc.ShippingAddress

	billTo := []string{doc.Customer.Name, doc.Customer.Phone, doc.Customer.Email}
	shipTo := []string{addr.Name, addr.AddressLine, addr.City + ", " + addr.Region, addr.Phone}

	p.SetFont(fontFamily, "B", 10)
	p.CellFormat(90, 6, "Bill to", "B", 0, "L", false, 0, "")
	p.CellFormat(0, 6, "Ship to", "B", 1, "L", false, 0, "")

	p.SetFont(fontFamily, "", 9)
	for i := 0; i < max(len(billTo), len(shipTo)); i++ {
		var l, r string
		if i < len(billTo) {
			l = billTo[i]
		}
		if i < len(shipTo) {
			r = shipTo[i]
		}
		p.CellFormat(90, lineHeight, d.tr(l), "", 0, "L", false, 0, "")
		p.CellFormat(0, lineHeight, d.tr(r), "", 1, "L", false, 0, "")
	}

	p.Ln(2)
	location := doc.DeliveryLocation
	if location == "" {
		location = "Not specified"
	}
	p.CellFormat(90, lineHeight, d.tr("Delivery location: "+location), "", 0, "L", false, 0, "")
	p.CellFormat(0, lineHeight, d.tr("Carrier: "+doc.Carrier), "", 1, "L", false, 0, "")
	p.Ln(4)
}

func (d *drawer) tableHeader() {
	p := d.pdf
	p.SetFont(fontFamily, "B", 9)
	p.SetFillColor(230, 230, 230)
	for _, c := range tableColumns {
		p.CellFormat(c.width, rowHeight, c.title, "1", 0, c.align, true, 0, "")
	}
	p.Ln(-1)
	p.SetFont(fontFamily, "", 9)
}

func (d *drawer) table() {
	d.ensure(2 * rowHeight)
	d.tableHeader()

	for i, row := range d.doc.Rows {
		if d.ensure(rowHeight) {
			d.tableHeader()
		}
		cells := []string{
			strconv.Itoa(i + 1),
			d.fit(d.tr(row.Name), tableColumns[1].width-2),
			strconv.Itoa(row.Quantity),
			d.money(row.UnitPrice),
			d.money(row.Total),
		}
		for j, c := range tableColumns {
			d.pdf.CellFormat(c.width, rowHeight, cells[j], "1", 0, c.align, false, 0, "")
		}
		d.pdf.Ln(-1)
	}
	d.pdf.Ln(3)
}

// fit shortens s with an ellipsis until it is at most width wide.
func (d *drawer) fit(s string, width float64) string {
	if d.pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && d.pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

func (d *drawer) summary() {
	p, s := d.pdf, d.doc.Summary
	labelX := pageMargin + tableColumns[0].width + tableColumns[1].width + tableColumns[2].width

	d.ensure(3 * rowHeight)
	lines := []struct {
		label string
		value kernel.Money
		style string
	}{
		{"Subtotal", s.Subtotal, ""},
		{"Shipping", s.Shipping, ""},
		{"Total", s.Total, "B"},
	}
	for _, l := range lines {
		p.SetX(labelX)
		p.SetFont(fontFamily, l.style, 9)
		p.CellFormat(tableColumns[3].width, rowHeight, l.label, "1", 0, "L", false, 0, "")
		p.CellFormat(tableColumns[4].width, rowHeight, d.money(l.value), "1", 1, "R", false, 0, "")
	}
	p.Ln(6)
}

func (d *drawer) section(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	p := d.pdf

	d.ensure(6 + lineHeight)
	p.SetFont(fontFamily, "B", 10)
	p.CellFormat(0, 6, title, "", 1, "L", false, 0, "")
	p.SetFont(fontFamily, "", 9)

	for _, line := range lines {
		wrapped := p.SplitText(d.tr(line), 175)
		d.ensure(float64(len(wrapped)) * lineHeight)
		for _, w := range wrapped {
			p.CellFormat(0, lineHeight, w, "", 1, "L", false, 0, "")
		}
	}
	p.Ln(4)
}

func (d *drawer) footer() {
	p := d.pdf
	p.SetY(-pageMargin - footerHeight + 5)
	p.SetFont(fontFamily, "I", 8)
	p.SetTextColor(110, 110, 110)
	if text := strings.TrimSpace(d.doc.Footer); text != "" {
		p.CellFormat(0, lineHeight, d.tr(text), "T", 1, "C", false, 0, "")
	}
	p.CellFormat(0, lineHeight, fmt.Sprintf("%s - page %d", d.doc.Number, p.PageNo()), "", 0, "C", false, 0, "")
	p.SetTextColor(0, 0, 0)
}
