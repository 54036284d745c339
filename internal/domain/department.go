package domain

// OrgLevel identifies a tier of the organizational hierarchy below the division.
type OrgLevel string

const (
	OrgLevelDepartment OrgLevel = "department"
	OrgLevelUnit       OrgLevel = "unit"
	OrgLevelSection    OrgLevel = "section"
	OrgLevelSubSection OrgLevel = "sub_section"
)

// OrgLevels lists the hierarchy tiers from the top down.
var OrgLevels = []OrgLevel{OrgLevelDepartment, OrgLevelUnit, OrgLevelSection, OrgLevelSubSection}

type orgLevelMeta struct {
	table       string
	parentTable string
	parentKey   string
	resource    string
	path        string
}

// Division → Department → Unit → Section → SubSection.
var orgLevelMetas = map[OrgLevel]orgLevelMeta{
	OrgLevelDepartment: {table: "department", parentTable: "division", parentKey: "division_uid", resource: "department", path: "departments"},
	OrgLevelUnit:       {table: "unit", parentTable: "department", parentKey: "department_uid", resource: "unit", path: "units"},
	OrgLevelSection:    {table: "section", parentTable: "unit", parentKey: "unit_uid", resource: "section", path: "sections"},
	OrgLevelSubSection: {table: "sub_section", parentTable: "section", parentKey: "section_uid", resource: "sub section", path: "sub-sections"},
}

// Valid reports whether l is a known level.
func (l OrgLevel) Valid() bool {
	_, ok := orgLevelMetas[l]
	return ok
}

// Table is the database table backing the level.
func (l OrgLevel) Table() string { return orgLevelMetas[l].table }

// ParentTable is the table the parent key references.
func (l OrgLevel) ParentTable() string { return orgLevelMetas[l].parentTable }

// ParentKey is the column and JSON field naming the parent record.
func (l OrgLevel) ParentKey() string { return orgLevelMetas[l].parentKey }

// Resource is the human readable name used in error messages.
func (l OrgLevel) Resource() string { return orgLevelMetas[l].resource }

// Path is the URL segment the level is served under.
func (l OrgLevel) Path() string { return orgLevelMetas[l].path }

// OrgUnit is a named node of the hierarchy attached to a parent node.
type OrgUnit struct {
	ID       string
	Level    OrgLevel
	Name     string
	ParentID string
	Audit
}
