// Package document renders printable rental paperwork. Layout is done
// with a running cursor on US Letter pages; every section asks for the
// space it needs before drawing so headings never strand at a page break.
package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sauls8/nwa-jumpers/internal/data/entity"
	"github.com/sauls8/nwa-jumpers/pkg/utils"
)

const (
	pageMargin   = 36.0
	contentWidth = 612.0 - 2*pageMargin
	lineHeight   = 14.0
	labelWidth   = 130.0
)

var agreementTerms = []string{
	"Rental period. The equipment is rented for the date and times listed above. Overnight rentals are picked up the following morning unless arranged otherwise.",
	"Adult supervision. A responsible adult must supervise the equipment at all times while it is inflated. The renter agrees to enforce all posted safety rules.",
	"Prohibited items. No shoes, food, drinks, gum, silly string, confetti, sharp objects, or pets are allowed on or inside the equipment. Silly string damage voids the deposit and incurs a cleaning fee.",
	"Capacity. Riders must be grouped by similar age and size, and the posted occupant limit must not be exceeded. Flips, wrestling, and climbing on walls or netting are not allowed.",
	"Power and placement. The renter provides a standard 110V outlet within 75 feet of the setup location. The blower must run continuously while the equipment is in use.",
	"Weather. Equipment cannot operate in rain, in winds above 15 mph, or in temperatures below 40 degrees. If severe weather develops the equipment must be evacuated and deflated.",
	"Damage and cleaning. The renter is responsible for damage beyond normal wear, including punctures, burns, and stains, and for excess cleaning caused by prohibited items.",
	"Release of liability. The renter assumes all risk of injury arising from use of the equipment and agrees to hold the company, its owners, and its employees harmless from any claim except those caused by the company's own negligence.",
	"Cancellation and payment. Cancellations made with at least 48 hours notice receive a full refund of any deposit. The remaining balance is due in cash or card at delivery, before setup begins.",
}

const taxNoticeEN = "Arkansas levies a 10% short-term rental tax on all bounce house rentals. This tax is included in the total shown above."

const taxNoticeES = "Arkansas aplica un impuesto del 10% sobre alquileres a corto plazo de inflables. Este impuesto ya esta incluido en el total indicado arriba."

// RenderAgreement produces the rental agreement PDF for a booking.
func RenderAgreement(b *entity.Booking, company utils.CompanyConfig) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	drawCompanyHeader(pdf, company)
	drawDocumentMeta(pdf, b)
	drawSectionHeading(pdf, "Customer & Event")
	drawCustomerSection(pdf, b)
	drawSectionHeading(pdf, "Line Items")
	drawItemsTable(pdf, b)
	drawSectionHeading(pdf, "Cost Summary")
	drawCostSummary(pdf, b)

	if b.InternalNotes != nil && strings.TrimSpace(*b.InternalNotes) != "" {
		drawSectionHeading(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentWidth, lineHeight, *b.InternalNotes, "", "L", false)
	}

	drawTerms(pdf, company)
	drawTaxNotice(pdf)
	drawSignatures(pdf, b)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Ln(18)
	pdf.CellFormat(contentWidth, lineHeight,
		fmt.Sprintf("Thank you for choosing %s!", company.Name),
		"", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write agreement pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// AgreementFilename names the download after the booking and customer,
// e.g. booking-42-jane-doe.pdf.
func AgreementFilename(b *entity.Booking) string {
	slug := utils.SlugID(b.CustomerName)
	if slug == "" {
		slug = "customer"
	}
	return fmt.Sprintf("booking-%d-%s.pdf", b.ID, slug)
}

func drawCompanyHeader(pdf *fpdf.Fpdf, company utils.CompanyConfig) {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(contentWidth, 24, company.Name, "", 1, "C", false, 0, "")

	if company.Tagline != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(contentWidth, lineHeight, company.Tagline, "", 1, "C", false, 0, "")
	}

	contact := []string{}
	for _, part := range []string{company.Phone, company.Email, company.Website} {
		if part != "" {
			contact = append(contact, part)
		}
	}
	if len(contact) > 0 {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentWidth, lineHeight, strings.Join(contact, "  |  "), "", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(pageMargin, pdf.GetY(), pageMargin+contentWidth, pdf.GetY())
	pdf.Ln(10)
}

func drawDocumentMeta(pdf *fpdf.Fpdf, b *entity.Booking) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentWidth/2, 18, "Rental Agreement", "", 0, "L", false, 0, "")

	reference := fmt.Sprintf("Booking #%d", b.ID)
	if b.InvoiceNumber != nil && *b.InvoiceNumber != "" {
		reference = fmt.Sprintf("%s  (%s)", reference, *b.InvoiceNumber)
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentWidth/2, 18, reference, "", 1, "R", false, 0, "")

	pdf.CellFormat(contentWidth, lineHeight,
		fmt.Sprintf("Generated %s", time.Now().Format("January 2, 2006")),
		"", 1, "R", false, 0, "")
	pdf.Ln(4)
}

func drawSectionHeading(pdf *fpdf.Fpdf, title string) {
	ensureSpace(pdf, 3*lineHeight)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(contentWidth, 16, " "+title, "", 1, "L", true, 0, "")
	pdf.Ln(4)
}

func drawCustomerSection(pdf *fpdf.Fpdf, b *entity.Booking) {
	rows := []struct {
		label string
		value string
	}{
		{"Customer", b.CustomerName},
		{"Email", b.CustomerEmail},
		{"Phone", b.CustomerPhone},
		{"Organization", textOr(b.OrganizationName, "")},
		{"Event Date", formatDate(b.EventDate)},
		{"Event Time", timeRange(b.EventStartTime, b.EventEndTime)},
		{"Setup Date", formatDatePtr(b.SetupDate)},
		{"Delivery Window", textOr(b.DeliveryWindow, "—")},
		{"After Hours", textOr(b.AfterHoursWindow, "—")},
		{"Address", textOr(b.EventAddress, "Not specified")},
		{"Surface", textOr(b.EventSurface, "Not specified")},
		{"Indoor Event", yesNo(b.EventIsIndoor)},
	}

	for _, row := range rows {
		if row.value == "" {
			continue
		}
		ensureSpace(pdf, lineHeight)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(labelWidth, lineHeight, row.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentWidth-labelWidth, lineHeight, row.value, "", 1, "L", false, 0, "")
	}
}

func drawItemsTable(pdf *fpdf.Fpdf, b *entity.Booking) {
	colProduct := contentWidth - 70 - 90 - 90
	ensureSpace(pdf, 2*lineHeight)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(colProduct, lineHeight, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(70, lineHeight, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(90, lineHeight, "Unit Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(90, lineHeight, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)

	if len(b.Items) == 0 {
		// Older bookings predate line items; show the single unit and the
		// stored subtotal as one synthetic row.
		ensureSpace(pdf, lineHeight)
		pdf.CellFormat(colProduct, lineHeight, textOr(b.BounceHouseType, "Bounce house rental"), "", 0, "L", false, 0, "")
		pdf.CellFormat(70, lineHeight, "1", "", 0, "R", false, 0, "")
		pdf.CellFormat(90, lineHeight, formatCurrency(b.SubtotalAmount), "", 0, "R", false, 0, "")
		pdf.CellFormat(90, lineHeight, formatCurrency(b.SubtotalAmount), "", 1, "R", false, 0, "")
		return
	}

	for _, item := range b.Items {
		ensureSpace(pdf, lineHeight)
		name := item.ProductName
		if item.ProductCategory != nil && *item.ProductCategory != "" {
			name = fmt.Sprintf("%s (%s)", name, *item.ProductCategory)
		}
		pdf.CellFormat(colProduct, lineHeight, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(70, lineHeight, formatQuantity(item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(90, lineHeight, fmt.Sprintf("$%.2f", item.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(90, lineHeight, fmt.Sprintf("$%.2f", item.TotalPrice), "", 1, "R", false, 0, "")
	}
}

// costSummary carries the amounts printed in the summary block. Stored
// columns win; absent ones are derived so a booking whose aggregates were
// nulled by an admin edit never prints $0.00 next to a priced item list.
type costSummary struct {
	Subtotal    float64
	DiscountPct float64
	Discount    float64
	Fee         float64
	Tax         float64
	Total       float64
	Deposit     *float64
	Balance     *float64
}

func summarizeCosts(b *entity.Booking) costSummary {
	var itemSum float64
	for _, item := range b.Items {
		itemSum += item.TotalPrice
	}

	s := costSummary{Subtotal: itemSum, Deposit: b.DepositAmount}
	if b.SubtotalAmount != nil {
		s.Subtotal = *b.SubtotalAmount
	}
	if b.DiscountPercent != nil {
		s.DiscountPct = *b.DiscountPercent
		s.Discount = s.Subtotal * s.DiscountPct / 100
	}
	if b.DeliveryFee != nil {
		s.Fee = *b.DeliveryFee
	}
	if b.TaxAmount != nil {
		s.Tax = *b.TaxAmount
	}

	if b.TotalAmount != nil {
		s.Total = *b.TotalAmount
	} else {
		s.Total = s.Subtotal - s.Discount + s.Fee + s.Tax
	}

	if b.BalanceDue != nil {
		s.Balance = b.BalanceDue
	} else if b.DepositAmount != nil {
		balance := s.Total - *b.DepositAmount
		s.Balance = &balance
	}

	return s
}

func drawCostSummary(pdf *fpdf.Fpdf, b *entity.Booking) {
	amountRow := func(label, value string, bold bool) {
		ensureSpace(pdf, lineHeight)
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(contentWidth-90, lineHeight, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(90, lineHeight, value, "", 1, "R", false, 0, "")
	}

	s := summarizeCosts(b)

	amountRow("Subtotal", fmt.Sprintf("$%.2f", s.Subtotal), false)

	if s.DiscountPct > 0 {
		amountRow(fmt.Sprintf("Discount (%s)", formatPercent(b.DiscountPercent)),
			fmt.Sprintf("-$%.2f", s.Discount), false)
	}
	if s.Fee > 0 {
		amountRow("Delivery & Setup Fees", fmt.Sprintf("$%.2f", s.Fee), false)
	}

	amountRow("Tax (10%)", fmt.Sprintf("$%.2f", s.Tax), false)
	amountRow("Total", fmt.Sprintf("$%.2f", s.Total), true)

	if s.Deposit != nil {
		amountRow("Deposit Paid", formatCurrency(s.Deposit), false)
	}
	if s.Balance != nil {
		amountRow("Balance Due at Delivery", formatCurrency(s.Balance), true)
	}
	if b.PaymentMethod != nil && *b.PaymentMethod != "" {
		amountRow("Payment Method", *b.PaymentMethod, false)
	}
}

func drawTerms(pdf *fpdf.Fpdf, company utils.CompanyConfig) {
	drawSectionHeading(pdf, "Terms & Conditions")

	pdf.SetFont("Helvetica", "", 8)
	pdf.MultiCell(contentWidth, 11,
		fmt.Sprintf("By signing below, the renter agrees to the following terms of %s:", company.Name),
		"", "L", false)
	pdf.Ln(3)

	for i, term := range agreementTerms {
		ensureSpace(pdf, 2*11)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(18, 11, fmt.Sprintf("%d.", i+1), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.MultiCell(contentWidth-18, 11, term, "", "L", false)
		pdf.Ln(2)
	}
}

func drawTaxNotice(pdf *fpdf.Fpdf) {
	ensureSpace(pdf, 5*11)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(contentWidth, 11, taxNoticeEN, "", "L", false)
	pdf.MultiCell(contentWidth, 11, taxNoticeES, "", "L", false)
}

func drawSignatures(pdf *fpdf.Fpdf, b *entity.Booking) {
	ensureSpace(pdf, 60)
	pdf.Ln(28)

	half := contentWidth / 2
	y := pdf.GetY()
	pdf.Line(pageMargin, y, pageMargin+half-30, y)
	pdf.Line(pageMargin+half+30, y, pageMargin+contentWidth, y)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(half-30, lineHeight,
		fmt.Sprintf("Renter Signature (%s)", b.CustomerName), "", 0, "L", false, 0, "")
	pdf.CellFormat(60, lineHeight, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(half-30, lineHeight, "Date", "", 1, "L", false, 0, "")
}

func ensureSpace(pdf *fpdf.Fpdf, needed float64) {
	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+needed > pageHeight-pageMargin {
		pdf.AddPage()
	}
}

func textOr(v *string, fallback string) string {
	if v != nil && strings.TrimSpace(*v) != "" {
		return *v
	}
	return fallback
}

func yesNo(v *int) string {
	if v == nil {
		return "Not specified"
	}
	if *v != 0 {
		return "Yes"
	}
	return "No"
}

// formatCurrency prints the stored amount or $0.00 when the column is NULL.
func formatCurrency(v *float64) string {
	if v == nil {
		return "$0.00"
	}
	return fmt.Sprintf("$%.2f", *v)
}

func formatQuantity(q float64) string {
	if q == float64(int64(q)) {
		return fmt.Sprintf("%d", int64(q))
	}
	return fmt.Sprintf("%.2f", q)
}

// formatDate renders YYYY-MM-DD as a long date, passing through anything
// that does not parse.
func formatDate(raw string) string {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return t.Format("January 2, 2006")
}

func formatDatePtr(raw *string) string {
	if raw == nil || *raw == "" {
		return "—"
	}
	return formatDate(*raw)
}

func formatPercent(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// formatClock renders HH:MM as a 12-hour time, passing through anything
// that does not parse.
func formatClock(raw string) string {
	t, err := time.Parse("15:04", raw)
	if err != nil {
		return raw
	}
	return t.Format("3:04 PM")
}

func timeRange(start, end *string) string {
	from := ""
	if start != nil && *start != "" {
		from = formatClock(*start)
	}
	to := ""
	if end != nil && *end != "" {
		to = formatClock(*end)
	}

	switch {
	case from != "" && to != "":
		return fmt.Sprintf("%s to %s", from, to)
	case from != "":
		return fmt.Sprintf("Starting %s", from)
	case to != "":
		return fmt.Sprintf("Until %s", to)
	}
	return "—"
}
