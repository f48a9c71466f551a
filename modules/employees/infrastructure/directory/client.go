package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/ostech/hrconsole/modules/employees/domain/aggregates/employee"
)

// Client talks to the remote employee directory over its REST API and
// implements employee.Repository on top of it. The remote collection is the
// single source of truth; nothing is cached here.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type addressRecord struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

type payRecord struct {
	RateBasis   string  `json:"rateBasis,omitempty"`
	Rate        float64 `json:"rate,omitempty"`
	WeeklyRate  float64 `json:"weeklyRate,omitempty"`
	MonthlyRate float64 `json:"monthlyRate,omitempty"`
}

type preferencesRecord struct {
	Days          string `json:"days,omitempty"`
	Shifts        string `json:"shifts,omitempty"`
	ReportingTo   string `json:"reportingTo,omitempty"`
	AvailableFrom string `json:"availableFrom,omitempty"`
	AvailableTo   string `json:"availableTo,omitempty"`
	Ethnicity     string `json:"ethnicity,omitempty"`
	Language      string `json:"language,omitempty"`
	Citizenship   string `json:"citizenship,omitempty"`
	Disability    bool   `json:"disability,omitempty"`
	Veteran       bool   `json:"veteran,omitempty"`
}

// record is the flat wire shape the directory stores. The masked SSN is a
// presentation concern and has no field here, so it can never round-trip back
// into the stored value.
type record struct {
	ID               string             `json:"id,omitempty"`
	FirstName        string             `json:"firstName"`
	MiddleName       string             `json:"middleName,omitempty"`
	LastName         string             `json:"lastName"`
	Client           string             `json:"client"`
	EmployeeType     string             `json:"employeeType"`
	SSN              string             `json:"ssn,omitempty"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	AvatarURL        string             `json:"avatarUrl,omitempty"`
	Gender           string             `json:"gender,omitempty"`
	InvitationStatus string             `json:"invitationStatus,omitempty"`
	WorksiteLocation string             `json:"worksiteLocation,omitempty"`
	PayGroup         string             `json:"payGroup,omitempty"`
	TaxType          string             `json:"taxType,omitempty"`
	MaritalStatus    string             `json:"maritalStatus,omitempty"`
	DateOfBirth      string             `json:"dob,omitempty"`
	OriginalHireDate string             `json:"originalHireDate,omitempty"`
	Address          *addressRecord     `json:"address,omitempty"`
	Residential      *addressRecord     `json:"residentialAddress,omitempty"`
	Pay              *payRecord         `json:"payDetails,omitempty"`
	Preferences      *preferencesRecord `json:"otherInfo,omitempty"`
}

func toEntity(rec record) employee.Employee {
	opts := []employee.Option{
		employee.WithID(rec.ID),
		employee.WithAvatarURL(rec.AvatarURL),
		employee.WithGender(rec.Gender),
		employee.WithInvitationStatus(employee.InvitationStatus(rec.InvitationStatus)),
	}
	profile := employee.Profile{
		WorksiteLocation: rec.WorksiteLocation,
		PayGroup:         rec.PayGroup,
		TaxType:          rec.TaxType,
		MaritalStatus:    rec.MaritalStatus,
		DateOfBirth:      rec.DateOfBirth,
		OriginalHireDate: rec.OriginalHireDate,
	}
	if rec.Address != nil {
		profile.Address = employee.Address(*rec.Address)
	}
	if rec.Residential != nil {
		profile.Residential = employee.Address(*rec.Residential)
	}
	if rec.Pay != nil {
		profile.Pay = employee.PayDetails(*rec.Pay)
	}
	if rec.Preferences != nil {
		profile.Preferences = employee.Preferences(*rec.Preferences)
	}
	opts = append(opts, employee.WithProfile(profile))
	return employee.New(
		rec.FirstName,
		rec.MiddleName,
		rec.LastName,
		rec.Client,
		employee.Type(rec.EmployeeType),
		rec.SSN,
		rec.Email,
		rec.Phone,
		opts...,
	)
}

func fromEntity(e employee.Employee) record {
	p := e.Profile()
	rec := record{
		ID:               e.ID(),
		FirstName:        e.FirstName(),
		MiddleName:       e.MiddleName(),
		LastName:         e.LastName(),
		Client:           e.Client(),
		EmployeeType:     string(e.EmployeeType()),
		SSN:              e.SSN(),
		Email:            e.Email(),
		Phone:            e.Phone(),
		AvatarURL:        e.AvatarURL(),
		Gender:           e.Gender(),
		InvitationStatus: string(e.InvitationStatus()),
		WorksiteLocation: p.WorksiteLocation,
		PayGroup:         p.PayGroup,
		TaxType:          p.TaxType,
		MaritalStatus:    p.MaritalStatus,
		DateOfBirth:      p.DateOfBirth,
		OriginalHireDate: p.OriginalHireDate,
	}
	if p.Address != (employee.Address{}) {
		a := addressRecord(p.Address)
		rec.Address = &a
	}
	if p.Residential != (employee.Address{}) {
		a := addressRecord(p.Residential)
		rec.Residential = &a
	}
	if p.Pay != (employee.PayDetails{}) {
		pd := payRecord(p.Pay)
		rec.Pay = &pd
	}
	if p.Preferences != (employee.Preferences{}) {
		pr := preferencesRecord(p.Preferences)
		rec.Preferences = &pr
	}
	return rec
}

// envelope is the remote's optional response wrapper. The API is inconsistent
// about using it, so every successful body is accepted both wrapped and bare.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodePayload(body []byte, into any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, into)
	}
	return json.Unmarshal(body, into)
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "encode payload")
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, employee.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.log.WithFields(logrus.Fields{
			"op":     op,
			"status": resp.StatusCode,
		}).Error("directory request failed")
		return nil, &TransportError{Op: op, StatusCode: resp.StatusCode}
	}
	return raw, nil
}

func (c *Client) GetAll(ctx context.Context) ([]employee.Employee, error) {
	raw, err := c.do(ctx, "getAll", http.MethodGet, "/employees", nil)
	if err != nil {
		return nil, err
	}
	var recs []record
	if err := decodePayload(raw, &recs); err != nil {
		return nil, &TransportError{Op: "getAll", Err: err}
	}
	out := make([]employee.Employee, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toEntity(rec))
	}
	return out, nil
}

// GetByID uses the remote's singular /employee/{id} resource; every other
// operation lives under /employees.
func (c *Client) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	raw, err := c.do(ctx, "getByID", http.MethodGet, "/employee/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var rec record
	if err := decodePayload(raw, &rec); err != nil {
		return nil, &TransportError{Op: "getByID", Err: err}
	}
	return toEntity(rec), nil
}

func (c *Client) Create(ctx context.Context, data employee.Employee) (employee.Employee, error) {
	rec := fromEntity(data)
	rec.ID = ""
	raw, err := c.do(ctx, "create", http.MethodPost, "/employees", rec)
	if err != nil {
		return nil, err
	}
	var created record
	if err := decodePayload(raw, &created); err != nil {
		return nil, &TransportError{Op: "create", Err: err}
	}
	return toEntity(created), nil
}

func (c *Client) Update(ctx context.Context, data employee.Employee) (employee.Employee, error) {
	if data.ID() == "" {
		return nil, errors.New("directory: update requires an id")
	}
	raw, err := c.do(ctx, "update", http.MethodPut, "/employees/"+url.PathEscape(data.ID()), fromEntity(data))
	if err != nil {
		return nil, err
	}
	var updated record
	if err := decodePayload(raw, &updated); err != nil {
		return nil, &TransportError{Op: "update", Err: err}
	}
	return toEntity(updated), nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, "delete", http.MethodDelete, "/employees/"+url.PathEscape(id), nil)
	return err
}
