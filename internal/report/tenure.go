package report

import "time"

// Tenure is a calendar difference between two dates.
type Tenure struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// TenureBetween returns the years, months and days from start to end. Adding
// months to start clips the day to the last day of the target month, so
// 2020-01-31 plus one month is 2020-02-29. Start must not be after end.
func TenureBetween(start, end time.Time) Tenure {
	start = dateOnly(start)
	end = dateOnly(end)
	if end.Before(start) {
		return Tenure{}
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())
	anchor := addMonthsClipped(start, months)
	for anchor.After(end) {
		months--
		anchor = addMonthsClipped(start, months)
	}
	days := int(end.Sub(anchor).Hours() / 24)

	return Tenure{Years: months / 12, Months: months % 12, Days: days}
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func addMonthsClipped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + months
	year := y + total/12
	month := total % 12
	if month < 0 {
		month += 12
		year--
	}
	target := time.Month(month + 1)
	if last := daysIn(year, target); d > last {
		d = last
	}
	return time.Date(year, target, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
