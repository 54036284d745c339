package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zaer/hr-service/internal/report"
)

const dateLayout = "2006-01-02"

var (
	severanceSalary      string
	severanceHired       string
	severanceTerminated  string
	severanceIncludeLast bool
	severancePDF         string
)

var severanceCmd = &cobra.Command{
	Use:   "severance",
	Short: "Compute severance pay from a salary and two dates",
	Example: `  hrctl severance --salary 2609 --hired 2018-03-07 --terminated 2022-09-07
  hrctl severance --salary 2609 --hired 2018-03-07 --terminated 2022-09-07 --pdf out.pdf`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		r, err := severanceReport(severanceSalary, severanceHired, severanceTerminated, severanceIncludeLast)
		if err != nil {
			return err
		}
		if severancePDF != "" {
			f, err := os.Create(severancePDF)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := r.WritePDF(f, time.Now()); err != nil {
				return err
			}
		}
		return printBreakdown(cmd.OutOrStdout(), r.Breakdown())
	},
}

func init() {
	flags := severanceCmd.Flags()
	flags.StringVar(&severanceSalary, "salary", "", "monthly salary")
	flags.StringVar(&severanceHired, "hired", "", "hire date (YYYY-MM-DD)")
	flags.StringVar(&severanceTerminated, "terminated", "", "termination date (YYYY-MM-DD)")
	flags.BoolVar(&severanceIncludeLast, "include-end-date", false, "count the termination day as served")
	flags.StringVar(&severancePDF, "pdf", "", "also write the PDF report to this path")
	for _, name := range []string{"salary", "hired", "terminated"} {
		_ = severanceCmd.MarkFlagRequired(name)
	}
}

func severanceReport(salary, hired, terminated string, includeEndDate bool) (*report.SeverancePayReport, error) {
	amount, err := decimal.NewFromString(salary)
	if err != nil {
		return nil, fmt.Errorf("invalid --salary: %w", err)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("invalid --salary: must not be negative")
	}
	hireDate, err := time.Parse(dateLayout, hired)
	if err != nil {
		return nil, fmt.Errorf("invalid --hired: %w", err)
	}
	terminationDate, err := time.Parse(dateLayout, terminated)
	if err != nil {
		return nil, fmt.Errorf("invalid --terminated: %w", err)
	}
	if terminationDate.Before(hireDate) {
		return nil, fmt.Errorf("termination date precedes hire date")
	}
	return report.NewSeverancePayReport(report.SeveranceEmployee{
		CurrentSalary:   amount,
		CurrentHireDate: hireDate,
		TerminationDate: terminationDate,
	}, includeEndDate), nil
}

func printBreakdown(w io.Writer, b report.Breakdown) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "tenure\t%d years %d months %d days\n", b.Tenure.Years, b.Tenure.Months, b.Tenure.Days)
	for _, row := range []struct {
		name string
		pay  report.ServicePay
	}{
		{"first five years", b.FirstFiveYears},
		{"five to ten years", b.BetweenFiveAndTenYears},
		{"above ten years", b.MoreThanTenYears},
		{"remaining months", b.RemainingMonths},
		{"remaining days", b.RemainingDays},
	} {
		fmt.Fprintf(tw, "%s\t%d %s\t%s\n", row.name, row.pay.Duration, row.pay.DurationType, row.pay.Amount.StringFixed(2))
	}
	fmt.Fprintf(tw, "total\t\t%s\n", b.Total.StringFixed(2))
	return tw.Flush()
}
