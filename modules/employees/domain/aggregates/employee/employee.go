package employee

import "strings"

type Type string

const (
	TypeFullTime Type = "Full Time"
	TypePartTime Type = "Part Time"
	TypeContract Type = "Contract"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract:
		return true
	}
	return false
}

type InvitationStatus string

const (
	InvitationNotInvited InvitationStatus = "Not Invited"
	InvitationPending    InvitationStatus = "Pending"
	InvitationAccepted   InvitationStatus = "Accepted"
)

type DisplayStatus string

const (
	StatusActive  DisplayStatus = "Active"
	StatusPending DisplayStatus = "Pending"
)

type Address struct {
	Line1   string
	Line2   string
	City    string
	State   string
	Zip     string
	Country string
}

type PayDetails struct {
	RateBasis   string
	Rate        float64
	WeeklyRate  float64
	MonthlyRate float64
}

type Preferences struct {
	Days          string
	Shifts        string
	ReportingTo   string
	AvailableFrom string
	AvailableTo   string
	Ethnicity     string
	Language      string
	Citizenship   string
	Disability    bool
	Veteran       bool
}

// Profile carries the extended fields edited on the detail page. Dates are
// kept in time.DateOnly form as the directory stores them.
type Profile struct {
	WorksiteLocation string
	PayGroup         string
	TaxType          string
	MaritalStatus    string
	DateOfBirth      string
	OriginalHireDate string
	Address          Address
	Residential      Address
	Pay              PayDetails
	Preferences      Preferences
}

type Employee interface {
	ID() string
	FirstName() string
	MiddleName() string
	LastName() string
	FullName() string
	Client() string
	EmployeeType() Type
	SSN() string
	Email() string
	Phone() string
	AvatarURL() string
	Gender() string
	InvitationStatus() InvitationStatus
	// DisplayStatus is derived from the invitation status and never stored.
	DisplayStatus() DisplayStatus
	Profile() Profile

	WithID(id string) Employee
	WithAvatarURL(url string) Employee
}

type Option func(e *employee)

func WithID(id string) Option {
	return func(e *employee) { e.id = id }
}

func WithAvatarURL(url string) Option {
	return func(e *employee) { e.avatarURL = url }
}

func WithGender(gender string) Option {
	return func(e *employee) { e.gender = gender }
}

func WithInvitationStatus(status InvitationStatus) Option {
	return func(e *employee) { e.invitationStatus = status }
}

func WithProfile(profile Profile) Option {
	return func(e *employee) { e.profile = profile }
}

func New(
	firstName, middleName, lastName string,
	client string,
	employeeType Type,
	ssn, email, phone string,
	opts ...Option,
) Employee {
	e := &employee{
		firstName:        strings.TrimSpace(firstName),
		middleName:       strings.TrimSpace(middleName),
		lastName:         strings.TrimSpace(lastName),
		client:           strings.TrimSpace(client),
		employeeType:     employeeType,
		ssn:              strings.TrimSpace(ssn),
		email:            strings.TrimSpace(email),
		phone:            strings.TrimSpace(phone),
		invitationStatus: InvitationNotInvited,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type employee struct {
	id               string
	firstName        string
	middleName       string
	lastName         string
	client           string
	employeeType     Type
	ssn              string
	email            string
	phone            string
	avatarURL        string
	gender           string
	invitationStatus InvitationStatus
	profile          Profile
}

func (e *employee) ID() string                         { return e.id }
func (e *employee) FirstName() string                  { return e.firstName }
func (e *employee) MiddleName() string                 { return e.middleName }
func (e *employee) LastName() string                   { return e.lastName }
func (e *employee) Client() string                     { return e.client }
func (e *employee) EmployeeType() Type                 { return e.employeeType }
func (e *employee) SSN() string                        { return e.ssn }
func (e *employee) Email() string                      { return e.email }
func (e *employee) Phone() string                      { return e.phone }
func (e *employee) AvatarURL() string                  { return e.avatarURL }
func (e *employee) Gender() string                     { return e.gender }
func (e *employee) InvitationStatus() InvitationStatus { return e.invitationStatus }
func (e *employee) Profile() Profile                   { return e.profile }

func (e *employee) FullName() string {
	return strings.TrimSpace(e.firstName + " " + e.lastName)
}

func (e *employee) DisplayStatus() DisplayStatus {
	if e.invitationStatus == InvitationAccepted {
		return StatusActive
	}
	return StatusPending
}

func (e *employee) WithID(id string) Employee {
	out := *e
	out.id = id
	return &out
}

func (e *employee) WithAvatarURL(url string) Employee {
	out := *e
	out.avatarURL = url
	return &out
}
