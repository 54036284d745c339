package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/zaer/hr-service/internal/domain"
)

func sampleEmployees() []domain.EmployeeFull {
	phone := "0712345"
	return []domain.EmployeeFull{{
		Employee: domain.Employee{
			BadgeNumber:     12,
			FirstName:       "selam",
			LastName:        "haile",
			GrandfatherName: "gebre",
			Gender:          domain.GenderFemale,
			BirthDate:       time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC),
			CurrentSalary:   decimal.RequireFromString("2609.5"),
			CurrentHireDate: time.Date(2015, 3, 7, 0, 0, 0, 0, time.UTC),
			PhoneNumber:     &phone,
			ContractType:    domain.ContractFullTime,
			IsActive:        true,
		},
		Division:   "production",
		Department: "weaving",
		Unit:       "looms",
		Section:    "night shift",
		Country:    "eritrea",
	}}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)
	_, err = ParseFormat("pdf")
	assert.Error(t, err)
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	table := EmployeeTable(sampleEmployees())
	require.NoError(t, Write(&buf, FormatCSV, table))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.True(t, bytes.HasPrefix(lines[0], []byte("badge_number,first_name")))
	assert.Contains(t, string(lines[1]), "12,selam,haile,gebre,f,1990-04-02,2609.50,2015-03-07,production,weaving,looms,night shift")
	assert.Equal(t, "employees.csv", table.Filename(FormatCSV))
}

func TestWriteXLSX(t *testing.T) {
	items := []domain.Lookup{
		{ID: "a", Kind: domain.LookupDivision, Label: "production"},
		{ID: "b", Kind: domain.LookupDivision, Label: "finance"},
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, LookupTable(domain.LookupDivision, items)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("divisions")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"uid", "name", "date_created", "date_modified"}, rows[0])
	assert.Equal(t, "finance", rows[2][1])
}
