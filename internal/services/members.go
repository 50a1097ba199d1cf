package services

import (
	"errors"
	"strconv"
	"time"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
)

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrInvalidYear   = errors.New("birth year out of range")
	ErrInvalidDate   = errors.New("invalid birth date")
	ErrInvalidChoice = errors.New("value not in the allowed set")
)

// MemberInput carries the raw form values of the public registration form.
// BirthDate ("2006-01-02") and BirthYear are alternatives; the year-only
// path stores January 1st of that year.
type MemberInput struct {
	FullName     string
	BirthDate    string
	BirthYear    string
	Gender       string
	CivilStatus  string
	Congregation string
	IsBaptized   bool
}

// ParseBirthDate resolves the date-or-year pair into a concrete date.
func ParseBirthDate(dateStr, yearStr string, now time.Time) (*time.Time, error) {
	if dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if d.Year() < 1900 || d.After(now) {
			return nil, ErrInvalidDate
		}
		return &d, nil
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, ErrInvalidYear
	}
	if year < 1900 || year > now.Year() {
		return nil, ErrInvalidYear
	}
	d := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &d, nil
}

// CreateMember validates the submission and inserts exactly one member row.
func CreateMember(in MemberInput) (*models.Member, error) {
	if in.FullName == "" || (in.BirthDate == "" && in.BirthYear == "") ||
		in.Gender == "" || in.CivilStatus == "" || in.Congregation == "" {
		return nil, ErrMissingFields
	}
	if !contains(models.Genders, in.Gender) ||
		!contains(models.CivilStatuses, in.CivilStatus) ||
		!contains(models.Congregations, in.Congregation) {
		return nil, ErrInvalidChoice
	}

	birth, err := ParseBirthDate(in.BirthDate, in.BirthYear, time.Now())
	if err != nil {
		return nil, err
	}

	m := models.Member{
		FullName:     in.FullName,
		BirthDate:    birth,
		Gender:       in.Gender,
		CivilStatus:  in.CivilStatus,
		Congregation: in.Congregation,
		IsBaptized:   in.IsBaptized,
	}
	if err := db.Conn().Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
