package viewmodels

// Employee is the row and card shape the templates render. SSN only appears
// here in masked form.
type Employee struct {
	ID           string
	EmployeeID   string
	FirstName    string
	MiddleName   string
	LastName     string
	FullName     string
	Initials     string
	Client       string
	EmployeeType string
	Email        string
	Phone        string
	SSNMasked    string
	Status       string
	AvatarURL    string
	Gender       string
}

// PageLink is one entry of the pager strip.
type PageLink struct {
	Number  int
	Label   string
	Active  bool
	Enabled bool
}

type EmployeesTableProps struct {
	Employees   []*Employee
	Query       string
	Page        int
	TotalPages  int
	TotalCount  int
	PageLinks   []PageLink
	HasPrevious bool
	HasNext     bool
	LoadError   string
}

type DrawerFieldErrors map[string]string

type DrawerProps struct {
	Open          bool
	Title         string
	Draft         DraftValues
	Errors        DrawerFieldErrors
	AvatarPreview string
	Rosters       Rosters
	SubmitError   string
}

// DraftValues mirrors the editable form fields, already stringified for the
// template.
type DraftValues struct {
	ID               string
	FirstName        string
	MiddleName       string
	LastName         string
	Client           string
	WorksiteLocation string
	PayGroup         string
	TaxType          string
	EmploymentType   string
	Email            string
	Phone            string
	Gender           string
	MaritalStatus    string
	DateOfBirth      string
	OriginalHireDate string
	SSN              string
	AvatarURL        string
	Address1         string
	Address2         string
	City             string
	State            string
	ZipCode          string
	Country          string
}

// Rosters holds the fixed option lists for the selects.
type Rosters struct {
	Clients         []string
	Worksites       []string
	PayGroups       []string
	TaxTypes        []string
	Genders         []string
	MaritalStatuses []string
}

type DetailProps struct {
	Employee    *Employee
	Draft       DraftValues
	Errors      DrawerFieldErrors
	Rosters     Rosters
	SubmitError string
	Saved       bool
}

type IndexPageProps struct {
	Table      EmployeesTableProps
	Drawer     DrawerProps
	Flash      string
	FlashLevel string
}
