package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	serviceParagraph = "Two weeks' wages for each of the first five years of employment. " +
		"Three weeks' wages for each year of employment from five to ten years " +
		"of service and four weeks' wage above ten years of service."
	noticeParagraph = "Seven days, fourteen days, twenty one days' payment for service of " +
		"less than one year, two years, more than two years consecutively."
)

// Filename is the name the PDF is offered under.
func (r *SeverancePayReport) Filename() string {
	return fmt.Sprintf("employee_%d_severance_pay.pdf", r.Employee.BadgeNumber)
}

// WritePDF renders the report as a single A4 page dated today.
func (r *SeverancePayReport) WritePDF(w io.Writer, today time.Time) error {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle("Severance pay", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	r.drawHeader(pdf, today)
	r.drawEmployeeInfo(pdf)
	drawCompensation(pdf)
	r.drawServicePay(pdf)
	drawNotice(pdf)
	drawAnnualLeave(pdf)

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func (r *SeverancePayReport) drawHeader(pdf *fpdf.Fpdf, today time.Time) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(30, 12, "Date:- "+today.Format("2006-01-02"))
	pdf.SetFont("Helvetica", "B", 15)
	pdf.Text(140, 40, "ZaEr plc - Asmara")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(310, 40, "Tegadelti Avenue n.13")
	pdf.Text(450, 40, "Tel: 00291-1-182383")
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(135, 55, "Integrated Textiles & Garment Factory")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(320, 55, "P.O.Box 11933")
	pdf.Text(448, 55, "Fax: 00291-1-181493")
	pdf.Text(140, 70, "ZAMBAITI GROUP - ITALY")
	pdf.Text(317, 70, "Asmara - Eritrea")
	pdf.Text(445, 70, "zaer@zaerasmara.com")
}

func (r *SeverancePayReport) drawEmployeeInfo(pdf *fpdf.Fpdf) {
	e := r.Employee
	pdf.Text(45, 120, "Full Name: "+strings.ToUpper(e.FullName()))
	pdf.Text(300, 120, fmt.Sprintf("Employee ID: %d", e.BadgeNumber))
	pdf.Text(45, 135, "Employment Date: "+e.CurrentHireDate.Format("2006-01-02"))
	pdf.Text(300, 135, "Termination/Resignation Date: "+e.TerminationDate.Format("2006-01-02"))
	pdf.Text(45, 150, "Department: "+strings.ToUpper(e.Department))
	pdf.Text(300, 150, "Salary: Nfa "+e.CurrentSalary.StringFixed(2))
	pdf.Text(45, 180, fmt.Sprintf("Served for %d years %d months %d days", r.Tenure.Years, r.Tenure.Months, r.Tenure.Days))
}

func drawCompensation(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(45, 230, "1. COMPENSATION")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(60, 245, "For service of up to two years; a days pay for each month of service")
	pdf.Text(60, 260, "Salary / 26 x Days")
	pdf.Text(60, 275, "For service of more than two years; a month pay for each year of service")
	pdf.Text(60, 290, "Monthly Salary x Years Served")
}

func (r *SeverancePayReport) drawServicePay(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(45, 340, "2. SERVICE PAY")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(60, 348)
	pdf.MultiCell(350, 12, serviceParagraph, "", "L", false)

	b := r.Breakdown()
	lines := []string{
		fmt.Sprintf("Salary / 26 x 2 x 6 x (%d Years): %s", b.FirstFiveYears.Duration, b.FirstFiveYears.Amount.StringFixed(2)),
		fmt.Sprintf("Salary / 26 x 3 x 6 x (%d Years): %s", b.BetweenFiveAndTenYears.Duration, b.BetweenFiveAndTenYears.Amount.StringFixed(2)),
		fmt.Sprintf("Salary / 26 x 4 x 6 x (%d Years): %s", b.MoreThanTenYears.Duration, b.MoreThanTenYears.Amount.StringFixed(2)),
		fmt.Sprintf("Salary / 26 x m x 6 x (%d Months / 12): %s", b.RemainingMonths.Duration, b.RemainingMonths.Amount.StringFixed(2)),
		fmt.Sprintf("Salary / 26 x m x 6 x (%d Days / 313): %s", b.RemainingDays.Duration, b.RemainingDays.Amount.StringFixed(2)),
	}
	y := 400.0
	for _, line := range lines {
		pdf.Text(70, y, line)
		y += 15
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(60, y, "SUB-TOTAL: "+b.Total.StringFixed(2))
}

func drawNotice(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(45, 525, "3. NOTICE FOR TERMINATION")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(60, 533)
	pdf.MultiCell(350, 12, noticeParagraph, "", "L", false)
	pdf.Text(70, 590, "Salary / 26 x Days(7, 14, 21, 30)")
}

func drawAnnualLeave(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(45, 630, "4. ANNUAL LEAVE")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(60, 645, "Annual leave due days' x salary per day")
	pdf.Text(60, 660, "Salary / 26 x Days")
	pdf.Text(60, 675, "TOTAL GROSS PAYABLE (1 + 2 + 3 + 4)")
}
