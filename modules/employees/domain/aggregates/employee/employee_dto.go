package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ostech/hrconsole/pkg/constants"
	"github.com/ostech/hrconsole/pkg/serrors"
)

// DraftDTO is the single editable shape behind both the drawer and the detail
// page. Create and update share it: an empty ID signals create.
type DraftDTO struct {
	ID string `json:"id" form:"id"`

	FirstName  string `json:"firstName" form:"firstName" validate:"required"`
	MiddleName string `json:"middleName" form:"middleName"`
	LastName   string `json:"lastName" form:"lastName" validate:"required"`

	Client           string `json:"client" form:"client" validate:"required"`
	WorksiteLocation string `json:"worksiteLocation" form:"worksiteLocation" validate:"required"`
	PayGroup         string `json:"payGroup" form:"payGroup" validate:"required"`
	TaxType          string `json:"taxType" form:"taxType" validate:"required"`
	EmploymentType   string `json:"employeeType" form:"employeeType" validate:"required,oneof='Full Time' 'Part Time' 'Contract'"`

	Email string `json:"email" form:"email" validate:"required,email"`
	Phone string `json:"phone" form:"phone" validate:"required"`

	Gender        string `json:"gender" form:"gender" validate:"required"`
	MaritalStatus string `json:"maritalStatus" form:"maritalStatus" validate:"required"`

	DateOfBirth      string `json:"dob" form:"dob" validate:"required,datetime=2006-01-02"`
	OriginalHireDate string `json:"originalHireDate" form:"originalHireDate" validate:"required,datetime=2006-01-02"`

	SSN       string `json:"ssn" form:"ssn"`
	AvatarURL string `json:"avatarUrl" form:"avatarUrl"`

	Address1 string `json:"address1" form:"address1"`
	Address2 string `json:"address2" form:"address2"`
	City     string `json:"city" form:"city"`
	State    string `json:"state" form:"state"`
	ZipCode  string `json:"zipCode" form:"zipCode"`
	Country  string `json:"country" form:"country"`
}

func (d *DraftDTO) Normalize() {
	d.ID = strings.TrimSpace(d.ID)
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.MiddleName = strings.TrimSpace(d.MiddleName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Client = strings.TrimSpace(d.Client)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.SSN = strings.TrimSpace(d.SSN)
}

// Ok validates the draft. On failure it returns per-field messages keyed by
// struct field name and false; the caller marks every field as touched so the
// messages surface inline.
func (d *DraftDTO) Ok(_ context.Context) (map[string]string, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	validatorErrs := errs.(validator.ValidationErrors)
	validationErrors := serrors.ProcessValidatorErrors(validatorErrs, fieldLabel)
	return validationErrors.ToMessages(), false
}

// ToEntity is the explicit typed builder from partial form input to a
// complete record. The SSN display mask never passes through here.
func (d *DraftDTO) ToEntity() Employee {
	opts := []Option{
		WithGender(d.Gender),
		WithProfile(Profile{
			WorksiteLocation: d.WorksiteLocation,
			PayGroup:         d.PayGroup,
			TaxType:          d.TaxType,
			MaritalStatus:    d.MaritalStatus,
			DateOfBirth:      d.DateOfBirth,
			OriginalHireDate: d.OriginalHireDate,
			Address: Address{
				Line1:   d.Address1,
				Line2:   d.Address2,
				City:    d.City,
				State:   d.State,
				Zip:     d.ZipCode,
				Country: d.Country,
			},
		}),
	}
	if d.ID != "" {
		opts = append(opts, WithID(d.ID))
	}
	if d.AvatarURL != "" {
		opts = append(opts, WithAvatarURL(d.AvatarURL))
	}
	return New(
		d.FirstName,
		d.MiddleName,
		d.LastName,
		d.Client,
		Type(d.EmploymentType),
		d.SSN,
		d.Email,
		d.Phone,
		opts...,
	)
}

func fieldLabel(field string) string {
	switch field {
	case "FirstName":
		return "First name"
	case "MiddleName":
		return "Middle name"
	case "LastName":
		return "Last name"
	case "WorksiteLocation":
		return "Worksite location"
	case "PayGroup":
		return "Pay group"
	case "TaxType":
		return "Tax type"
	case "EmploymentType":
		return "Employment type"
	case "MaritalStatus":
		return "Marital status"
	case "DateOfBirth":
		return "Date of birth"
	case "OriginalHireDate":
		return "Original hire date"
	case "ZipCode":
		return "Zip code"
	default:
		return field
	}
}

// FromEntity pre-populates a draft from an existing record, by value. The
// drawer binds to the copy so edits never write through to live rows.
func FromEntity(e Employee) DraftDTO {
	profile := e.Profile()
	return DraftDTO{
		ID:               e.ID(),
		FirstName:        e.FirstName(),
		MiddleName:       e.MiddleName(),
		LastName:         e.LastName(),
		Client:           e.Client(),
		WorksiteLocation: profile.WorksiteLocation,
		PayGroup:         profile.PayGroup,
		TaxType:          profile.TaxType,
		EmploymentType:   string(e.EmployeeType()),
		Email:            e.Email(),
		Phone:            e.Phone(),
		Gender:           e.Gender(),
		MaritalStatus:    profile.MaritalStatus,
		DateOfBirth:      profile.DateOfBirth,
		OriginalHireDate: profile.OriginalHireDate,
		SSN:              e.SSN(),
		AvatarURL:        e.AvatarURL(),
		Address1:         profile.Address.Line1,
		Address2:         profile.Address.Line2,
		City:             profile.Address.City,
		State:            profile.Address.State,
		ZipCode:          profile.Address.Zip,
		Country:          profile.Address.Country,
	}
}

func (d *DraftDTO) String() string {
	return fmt.Sprintf("DraftDTO(id=%s, name=%s %s)", d.ID, d.FirstName, d.LastName)
}
