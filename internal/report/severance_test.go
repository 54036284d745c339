package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func employee(salary, hire, termination string) SeveranceEmployee {
	return SeveranceEmployee{
		FirstName:       "abel",
		LastName:        "tesfay",
		GrandfatherName: "kidane",
		BadgeNumber:     42,
		Department:      "weaving",
		CurrentSalary:   decimal.RequireFromString(salary),
		CurrentHireDate: day(hire),
		TerminationDate: day(termination),
	}
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestTenureBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       Tenure
	}{
		{"2018-03-07", "2022-09-07", Tenure{Years: 4, Months: 6}},
		{"2007-11-01", "2023-05-13", Tenure{Years: 15, Months: 6, Days: 12}},
		{"2018-03-07", "2023-09-25", Tenure{Years: 5, Months: 6, Days: 18}},
		{"2020-01-31", "2020-02-29", Tenure{Months: 1}},
		{"2020-01-31", "2020-03-01", Tenure{Months: 1, Days: 1}},
		{"2019-05-20", "2019-05-19", Tenure{}},
		{"2019-12-15", "2020-01-14", Tenure{Days: 30}},
	}
	for _, tc := range cases {
		t.Run(tc.start+"_"+tc.end, func(t *testing.T) {
			got := TenureBetween(day(tc.start), day(tc.end))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("tenure mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFirstFiveYears(t *testing.T) {
	r := NewSeverancePayReport(employee("2609", "2018-03-07", "2022-09-07"), false)
	pay := r.FirstFiveYears()
	assert.Equal(t, 4, pay.Duration)
	assertAmount(t, "4816.62", pay.Amount)

	r = NewSeverancePayReport(employee("2609", "2015-03-07", "2023-03-07"), false)
	pay = r.FirstFiveYears()
	assert.Equal(t, 5, pay.Duration)
	assertAmount(t, "6020.77", pay.Amount)
}

func TestBetweenFiveAndTenYears(t *testing.T) {
	r := NewSeverancePayReport(employee("2609", "2015-03-07", "2023-03-07"), false)
	pay := r.BetweenFiveAndTenYears()
	assert.Equal(t, 3, pay.Duration)
	assertAmount(t, "5418.69", pay.Amount)

	r = NewSeverancePayReport(employee("2609", "2019-03-07", "2023-03-07"), false)
	pay = r.BetweenFiveAndTenYears()
	assert.Zero(t, pay.Duration)
	assert.True(t, pay.Amount.IsZero())
}

func TestMoreThanTenYears(t *testing.T) {
	r := NewSeverancePayReport(employee("2609", "2005-03-07", "2023-03-07"), false)
	pay := r.MoreThanTenYears()
	assert.Equal(t, 8, pay.Duration)
	assertAmount(t, "19266.46", pay.Amount)

	r = NewSeverancePayReport(employee("2609", "2019-03-07", "2023-03-07"), false)
	assert.True(t, r.MoreThanTenYears().Amount.IsZero())
}

func TestRemainingMonths(t *testing.T) {
	r := NewSeverancePayReport(employee("2609", "2018-03-07", "2023-09-07"), false)
	pay := r.RemainingMonths()
	assert.Equal(t, DurationMonths, pay.DurationType)
	assert.Equal(t, 6, pay.Duration)
	assertAmount(t, "903.12", pay.Amount)
}

func TestRemainingMonthsBands(t *testing.T) {
	cases := []struct {
		name, hired, terminated string
		amount                  string
	}{
		{"under five years", "2018-03-07", "2022-09-07", "1204.15"},
		{"exactly five years and months", "2018-03-07", "2023-09-07", "903.12"},
		{"nine years", "2014-03-07", "2023-09-07", "903.12"},
		{"ten years", "2013-03-07", "2023-09-07", "1204.15"},
		{"past ten years", "2007-03-07", "2023-09-07", "1204.15"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewSeverancePayReport(employee("2609", tc.hired, tc.terminated), false)
			pay := r.RemainingMonths()
			assert.Equal(t, 6, pay.Duration)
			assertAmount(t, tc.amount, pay.Amount)
		})
	}

	r := NewSeverancePayReport(employee("2609", "2019-03-07", "2023-03-07"), false)
	assert.True(t, r.RemainingMonths().Amount.IsZero())
}

func TestRemainingDays(t *testing.T) {
	r := NewSeverancePayReport(employee("2609", "2018-03-07", "2023-09-25"), false)
	pay := r.RemainingDays()
	assert.Equal(t, 18, pay.Duration)
	assertAmount(t, "69.25", pay.Amount)

	r = NewSeverancePayReport(employee("2609", "2018-03-07", "2023-09-25"), true)
	pay = r.RemainingDays()
	assert.Equal(t, 19, pay.Duration)
	assertAmount(t, "73.10", pay.Amount)
}

func TestTotal(t *testing.T) {
	r := NewSeverancePayReport(employee("2131", "2007-11-01", "2023-05-13"), false)
	b := r.Breakdown()
	require.Equal(t, Tenure{Years: 15, Months: 6, Days: 12}, b.Tenure)
	assertAmount(t, "4917.69", b.FirstFiveYears.Amount)
	assertAmount(t, "7376.54", b.BetweenFiveAndTenYears.Amount)
	assertAmount(t, "9835.38", b.MoreThanTenYears.Amount)
	assertAmount(t, "983.54", b.RemainingMonths.Amount)
	assertAmount(t, "75.42", b.RemainingDays.Amount)
	assertAmount(t, "23188.57", b.Total)
	assertAmount(t, "23188.57", r.Total())
}

func TestWritePDF(t *testing.T) {
	r := NewSeverancePayReport(employee("2131", "2007-11-01", "2023-05-13"), false)
	var buf bytes.Buffer
	require.NoError(t, r.WritePDF(&buf, day("2023-05-14")))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Equal(t, "employee_42_severance_pay.pdf", r.Filename())
}
