package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/overpayment-simulator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
	pdfBarWidth     = 90.0
)

// PDFFormatter renders the comparison as an A4 PDF report.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// pdfReport carries the document being built.
type pdfReport struct {
	pdf      *fpdf.Fpdf
	results  *domain.StrategyComparison
	currency string
}

func (p PDFFormatter) Format(results *domain.StrategyComparison) ([]byte, error) {
	r := &pdfReport{
		pdf:      fpdf.New("P", "mm", "A4", ""),
		results:  results,
		currency: currencyOf(results),
	}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.AliasNbPages("")
	r.pdf.SetFooterFunc(func() {
		r.pdf.SetY(-15)
		r.pdf.SetFont("Arial", "I", 8)
		r.pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", r.pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	r.addSummaryPage()
	for _, o := range results.Strategies {
		r.addSchedulePage(o)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) heading(text string) {
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 9, text, "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
}

func (r *pdfReport) keyValue(key, value string) {
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.CellFormat(55, 6, key, "", 0, "L", false, 0, "")
	r.pdf.CellFormat(pdfContentWidth-55, 6, value, "", 1, "L", false, 0, "")
}

func (r *pdfReport) addSummaryPage() {
	res := r.results
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, "Mortgage Overpayment Strategy Report", "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.heading("Loan")
	p := res.Parameters
	r.keyValue("Balance:", FormatCurrency(p.Balance, r.currency))
	r.keyValue("Annual interest rate:", FormatPercentage(p.AnnualRate))
	r.keyValue("Contractual payment:", FormatCurrency(p.ContractualPayment, r.currency))
	r.keyValue("Affordable payment:", FormatCurrency(p.AffordablePayment, r.currency))
	r.keyValue("Remaining months:", strconv.Itoa(p.RemainingMonths))
	r.pdf.Ln(4)

	r.heading("Strategy Summary")
	widths := []float64{50, 35, 25, 40, 30}
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	for i, h := range []string{"Strategy", "Total interest", "Months", "Interest saved", "Months saved"} {
		r.pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 10)
	row := func(name string, interest decimal.Decimal, months int, saved string, monthsSaved string, fill bool) {
		if fill {
			r.pdf.SetFillColor(230, 244, 234)
		}
		r.pdf.CellFormat(widths[0], 6, name, "1", 0, "L", fill, 0, "")
		r.pdf.CellFormat(widths[1], 6, interest.StringFixed(2), "1", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[2], 6, strconv.Itoa(months), "1", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[3], 6, saved, "1", 0, "R", fill, 0, "")
		r.pdf.CellFormat(widths[4], 6, monthsSaved, "1", 0, "R", fill, 0, "")
		r.pdf.Ln(-1)
	}
	row(BaselineLabel, res.Baseline.TotalInterest, res.Baseline.Months, "-", "-", false)
	for _, o := range res.Strategies {
		row(o.Mode.Label(), o.Result.TotalInterest, o.Result.Months, o.InterestSaved.StringFixed(2), strconv.Itoa(o.MonthsSaved), o.Mode == res.Best)
	}
	r.pdf.Ln(6)

	r.heading("Interest Cost Comparison")
	top := maxInterest(res)
	r.barRow(BaselineLabel, res.Baseline.TotalInterest, top, FormatWholeCurrency(res.Baseline.TotalInterest, r.currency))
	for _, o := range res.Strategies {
		r.barRow(o.Mode.Label(), o.Result.TotalInterest, top, FormatWholeCurrency(o.Result.TotalInterest, r.currency))
	}
	r.pdf.Ln(4)

	r.heading("Loan Duration Comparison")
	longest := decimal.NewFromInt(int64(maxMonths(res)))
	r.barRow(BaselineLabel, decimal.NewFromInt(int64(res.Baseline.Months)), longest, fmt.Sprintf("%d months", res.Baseline.Months))
	for _, o := range res.Strategies {
		r.barRow(o.Mode.Label(), decimal.NewFromInt(int64(o.Result.Months)), longest, fmt.Sprintf("%d months", o.Result.Months))
	}
	r.pdf.Ln(6)

	if rec := AnalyzeStrategies(res); rec.StrategyName != "" {
		r.pdf.SetFillColor(245, 247, 250)
		r.pdf.SetDrawColor(0, 51, 102)
		r.pdf.SetFont("Arial", "B", 12)
		r.pdf.CellFormat(pdfContentWidth, 8, "RECOMMENDATION", "1", 1, "C", true, 0, "")
		r.pdf.SetFont("Arial", "", 11)
		r.pdf.CellFormat(pdfContentWidth, 7, "Best for maximum savings: "+rec.StrategyName, "LR", 1, "L", true, 0, "")
		r.pdf.CellFormat(pdfContentWidth, 7, "Saves: "+FormatWholeCurrency(rec.MaxInterestSaved, r.currency)+" vs original scenario", "LR", 1, "L", true, 0, "")
		r.pdf.CellFormat(pdfContentWidth, 7, fmt.Sprintf("Reduces loan by: %d months", rec.MaxMonthsSaved), "LRB", 1, "L", true, 0, "")
	}
}

func (r *pdfReport) barRow(label string, value, max decimal.Decimal, caption string) {
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.CellFormat(50, 6, label, "", 0, "L", false, 0, "")
	x, y := r.pdf.GetX(), r.pdf.GetY()
	width := 0.0
	if max.IsPositive() {
		width = value.Div(max).InexactFloat64() * pdfBarWidth
	}
	r.pdf.SetFillColor(228, 231, 235)
	r.pdf.Rect(x, y+1, pdfBarWidth, 4, "F")
	if width > 0 {
		r.pdf.SetFillColor(59, 130, 246)
		r.pdf.Rect(x, y+1, width, 4, "F")
	}
	r.pdf.SetX(x + pdfBarWidth + 3)
	r.pdf.CellFormat(pdfContentWidth-50-pdfBarWidth-3, 6, caption, "", 1, "L", false, 0, "")
}

func (r *pdfReport) addSchedulePage(o domain.StrategyOutcome) {
	r.pdf.AddPage()
	r.heading(fmt.Sprintf("%s schedule (%d months)", o.Mode.Label(), o.Result.Months))

	widths := []float64{25, 30, 30, 30, 30, 35}
	header := func() {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(245, 247, 250)
		r.pdf.SetDrawColor(200, 200, 200)
		for i, h := range []string{"Month", "Payment", "Overpayment", "Interest", "Principal", "Remaining"} {
			r.pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
		}
		r.pdf.Ln(-1)
		r.pdf.SetFont("Arial", "", 9)
	}
	header()

	_, pageHeight := r.pdf.GetPageSize()
	for _, e := range o.Result.Entries {
		if r.pdf.GetY()+5 > pageHeight-pdfMarginBottom {
			r.pdf.AddPage()
			header()
		}
		cells := []string{e.Month, e.Payment.StringFixed(2), e.Overpayment.StringFixed(2), e.Interest.StringFixed(2), e.Principal.StringFixed(2), e.RemainingBalance.StringFixed(2)}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			r.pdf.CellFormat(widths[i], 5, c, "1", 0, align, false, 0, "")
		}
		r.pdf.Ln(-1)
	}
}
