package domain

// LookupKind identifies a flat reference table holding a single unique label.
type LookupKind string

const (
	LookupDivision         LookupKind = "division"
	LookupDesignation      LookupKind = "designation"
	LookupCurrentJob       LookupKind = "current_job"
	LookupNationality      LookupKind = "nationality"
	LookupCountry          LookupKind = "country"
	LookupEducationalLevel LookupKind = "educational_level"
)

// LookupKinds lists every reference table served by the API.
var LookupKinds = []LookupKind{
	LookupDivision,
	LookupDesignation,
	LookupCurrentJob,
	LookupNationality,
	LookupCountry,
	LookupEducationalLevel,
}

type lookupMeta struct {
	table    string
	field    string
	resource string
	path     string
}

var lookupMetas = map[LookupKind]lookupMeta{
	LookupDivision:         {table: "division", field: "name", resource: "division", path: "divisions"},
	LookupDesignation:      {table: "designation", field: "title", resource: "designation", path: "designations"},
	LookupCurrentJob:       {table: "current_job", field: "title", resource: "current job", path: "current-jobs"},
	LookupNationality:      {table: "nationality", field: "name", resource: "nationality", path: "nationalities"},
	LookupCountry:          {table: "country", field: "name", resource: "country", path: "countries"},
	LookupEducationalLevel: {table: "educational_level", field: "level", resource: "educational level", path: "educational-levels"},
}

// Valid reports whether k is a known kind.
func (k LookupKind) Valid() bool {
	_, ok := lookupMetas[k]
	return ok
}

// Table is the database table backing the kind.
func (k LookupKind) Table() string { return lookupMetas[k].table }

// Field is the label column, also used as the JSON field name.
func (k LookupKind) Field() string { return lookupMetas[k].field }

// Resource is the human readable name used in error messages.
func (k LookupKind) Resource() string { return lookupMetas[k].resource }

// Path is the URL segment the kind is served under.
func (k LookupKind) Path() string { return lookupMetas[k].path }

// Lookup is a row of a reference table.
type Lookup struct {
	ID    string
	Kind  LookupKind
	Label string
	Audit
}
