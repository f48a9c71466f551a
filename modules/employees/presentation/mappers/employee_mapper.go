package mappers

import (
	"strconv"
	"strings"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
	"github.com/ostech/hrconsole/modules/employees/presentation/viewmodels"
)

// MaskSSN hides everything but the trailing visible digits. The full value
// never leaves the domain layer unmasked.
func MaskSSN(ssn string, visible int) string {
	ssn = strings.TrimSpace(ssn)
	if ssn == "" {
		return ""
	}
	if visible < 0 {
		visible = 0
	}
	runes := []rune(ssn)
	if visible > len(runes) {
		visible = len(runes)
	}
	return "***" + string(runes[len(runes)-visible:])
}

func DisplayID(id string) string {
	return "EMP-" + id
}

// PageLabel turns a 0-based page index into its on-screen number.
func PageLabel(page int) string {
	return strconv.Itoa(page + 1)
}

func initials(firstName, lastName string) string {
	var b strings.Builder
	for _, name := range []string{firstName, lastName} {
		name = strings.TrimSpace(name)
		if name != "" {
			b.WriteString(strings.ToUpper(name[:1]))
		}
	}
	return b.String()
}

func EmployeeToViewModel(e employee.Employee, ssnVisibleDigits int) *viewmodels.Employee {
	return &viewmodels.Employee{
		ID:           e.ID(),
		EmployeeID:   DisplayID(e.ID()),
		FirstName:    e.FirstName(),
		MiddleName:   e.MiddleName(),
		LastName:     e.LastName(),
		FullName:     e.FullName(),
		Initials:     initials(e.FirstName(), e.LastName()),
		Client:       e.Client(),
		EmployeeType: string(e.EmployeeType()),
		Email:        e.Email(),
		Phone:        e.Phone(),
		SSNMasked:    MaskSSN(e.SSN(), ssnVisibleDigits),
		Status:       string(e.DisplayStatus()),
		AvatarURL:    e.AvatarURL(),
		Gender:       e.Gender(),
	}
}

func DraftToValues(d employee.DraftDTO) viewmodels.DraftValues {
	return viewmodels.DraftValues{
		ID:               d.ID,
		FirstName:        d.FirstName,
		MiddleName:       d.MiddleName,
		LastName:         d.LastName,
		Client:           d.Client,
		WorksiteLocation: d.WorksiteLocation,
		PayGroup:         d.PayGroup,
		TaxType:          d.TaxType,
		EmploymentType:   d.EmploymentType,
		Email:            d.Email,
		Phone:            d.Phone,
		Gender:           d.Gender,
		MaritalStatus:    d.MaritalStatus,
		DateOfBirth:      d.DateOfBirth,
		OriginalHireDate: d.OriginalHireDate,
		SSN:              d.SSN,
		AvatarURL:        d.AvatarURL,
		Address1:         d.Address1,
		Address2:         d.Address2,
		City:             d.City,
		State:            d.State,
		ZipCode:          d.ZipCode,
		Country:          d.Country,
	}
}
