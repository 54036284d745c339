package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/zaer/hr-service/internal/domain"
)

const dateLayout = "2006-01-02"

// Format is a downloadable file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format path segment.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatCSV, FormatXLSX:
		return Format(raw), nil
	}
	return "", fmt.Errorf("unsupported export format %q", raw)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Table is a header row plus data rows.
type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// Filename returns the download name of the table in format f.
func (t Table) Filename(f Format) string {
	return t.Name + "." + string(f)
}

// Write encodes the table in format f.
func Write(w io.Writer, f Format, t Table) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, t)
	case FormatXLSX:
		return WriteXLSX(w, t)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// WriteCSV encodes the table as comma separated values.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// WriteXLSX encodes the table as a single sheet workbook with a bold header row.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Name
	if sheet == "" {
		sheet = "Sheet1"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := setRow(f, sheet, 1, t.Headers); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheet, cell, &row)
}

// LookupTable tabulates reference records.
func LookupTable(kind domain.LookupKind, items []domain.Lookup) Table {
	t := Table{
		Name:    kind.Path(),
		Headers: []string{"uid", kind.Field(), "date_created", "date_modified"},
	}
	for _, item := range items {
		t.Rows = append(t.Rows, []string{
			item.ID,
			item.Label,
			item.DateCreated.Format(dateLayout),
			item.DateModified.Format(dateLayout),
		})
	}
	return t
}

// EmployeeTable tabulates the employee full info projection.
func EmployeeTable(employees []domain.EmployeeFull) Table {
	t := Table{
		Name: "employees",
		Headers: []string{
			"badge_number", "first_name", "last_name", "grandfather_name", "gender",
			"birth_date", "current_salary", "current_hire_date", "division", "department",
			"unit", "section", "designation", "educational_level", "nationality", "country",
			"phone_number", "national_id", "contract_type", "is_active", "is_terminated",
		},
	}
	for _, e := range employees {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(e.BadgeNumber, 10),
			e.FirstName,
			e.LastName,
			e.GrandfatherName,
			string(e.Gender),
			e.BirthDate.Format(dateLayout),
			e.CurrentSalary.StringFixed(2),
			e.CurrentHireDate.Format(dateLayout),
			e.Division,
			e.Department,
			e.Unit,
			e.Section,
			e.Designation,
			e.EducationalLevel,
			e.Nationality,
			e.Country,
			deref(e.PhoneNumber),
			deref(e.NationalID),
			string(e.ContractType),
			strconv.FormatBool(e.IsActive),
			strconv.FormatBool(e.IsTerminated),
		})
	}
	return t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
