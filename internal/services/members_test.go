package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
)

// initTestDB points the shared connection at a fresh sqlite file in a temp
// directory. Shared by the service tests in this package.
func initTestDB(t *testing.T) {
	t.Helper()
	if err := db.Init(filepath.Join(t.TempDir(), "test.db")); err != nil {
		t.Fatalf("db init: %v", err)
	}
}

func TestParseBirthDate_YearOnly(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	d, err := ParseBirthDate("", "1990", now)
	if err != nil {
		t.Fatalf("ParseBirthDate: %v", err)
	}
	want := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Errorf("year-only birth = %v, want %v", d, want)
	}
}

func TestParseBirthDate_FullDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	d, err := ParseBirthDate("1990-07-15", "", now)
	if err != nil {
		t.Fatalf("ParseBirthDate: %v", err)
	}
	if d.Year() != 1990 || d.Month() != time.July || d.Day() != 15 {
		t.Errorf("full date parsed as %v", d)
	}
}

func TestParseBirthDate_Bounds(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		date, year string
		wantErr    error
	}{
		{"", "1899", ErrInvalidYear},
		{"", "2026", ErrInvalidYear},
		{"", "abc", ErrInvalidYear},
		{"1850-01-01", "", ErrInvalidDate},
		{"not-a-date", "", ErrInvalidDate},
	}
	for _, c := range cases {
		if _, err := ParseBirthDate(c.date, c.year, now); !errors.Is(err, c.wantErr) {
			t.Errorf("ParseBirthDate(%q, %q) err = %v, want %v", c.date, c.year, err, c.wantErr)
		}
	}
}

func TestCreateMember_InsertsOneRow(t *testing.T) {
	initTestDB(t)

	in := MemberInput{
		FullName:     "João da Silva",
		BirthYear:    "1990",
		Gender:       "masculino",
		CivilStatus:  "casado",
		Congregation: "sede_araporanga",
	}
	m, err := CreateMember(in)
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}

	var count int64
	db.Conn().Model(&models.Member{}).Count(&count)
	if count != 1 {
		t.Fatalf("member count = %d, want 1", count)
	}

	var got models.Member
	db.Conn().First(&got, m.ID)
	if got.Gender != "masculino" || got.CivilStatus != "casado" || got.Congregation != "sede_araporanga" {
		t.Errorf("enum values not preserved verbatim: %+v", got)
	}
	if got.BirthDate == nil || got.BirthDate.Year() != 1990 || got.BirthDate.Month() != time.January || got.BirthDate.Day() != 1 {
		t.Errorf("year-only submission stored as %v, want 1990-01-01", got.BirthDate)
	}
}

func TestCreateMember_RejectsMissingAndInvalid(t *testing.T) {
	initTestDB(t)

	cases := []struct {
		name string
		in   MemberInput
		want error
	}{
		{"no name", MemberInput{BirthYear: "1990", Gender: "masculino", CivilStatus: "solteiro", Congregation: "sede_araporanga"}, ErrMissingFields},
		{"no birth", MemberInput{FullName: "Ana", Gender: "feminino", CivilStatus: "solteiro", Congregation: "sede_araporanga"}, ErrMissingFields},
		{"bad gender", MemberInput{FullName: "Ana", BirthYear: "1990", Gender: "outro", CivilStatus: "solteiro", Congregation: "sede_araporanga"}, ErrInvalidChoice},
		{"bad congregation", MemberInput{FullName: "Ana", BirthYear: "1990", Gender: "feminino", CivilStatus: "solteiro", Congregation: "congregacao_inexistente"}, ErrInvalidChoice},
	}
	for _, c := range cases {
		if _, err := CreateMember(c.in); !errors.Is(err, c.want) {
			t.Errorf("%s: err = %v, want %v", c.name, err, c.want)
		}
	}

	var count int64
	db.Conn().Model(&models.Member{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected submissions created %d rows", count)
	}
}
