package services

import (
	"errors"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/adtc/araporanga/internal/config"
	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
)

const (
	LectureEnabledKey = "lecture_registrations_enabled"

	// Charged when no active lecture row declares a price.
	DefaultLecturePrice = 100.00
)

var (
	ErrRegistrationsClosed = errors.New("lecture registrations are closed")
	ErrDeadlinePassed      = errors.New("registration deadline has passed")

	validate = validator.New()
)

// CoupleInput is the couples'-retreat registration schema. Phone and CPF
// fields are validated over their digits only.
type CoupleInput struct {
	HusbandName  string `validate:"required,min=2"`
	HusbandPhone string `validate:"required,min=10"`
	HusbandCPF   string `validate:"required,min=11,max=11"`
	HusbandEmail string `validate:"omitempty,email"`
	WifeName     string `validate:"required,min=2"`
	WifePhone    string `validate:"required,min=10"`
	WifeCPF      string `validate:"required,min=11,max=11"`
	WifeEmail    string `validate:"omitempty,email"`
}

// ConfigValue reads one key from the app_config table.
func ConfigValue(key string) (string, error) {
	var cfg models.AppConfig
	if err := db.Conn().Where("key = ?", key).First(&cfg).Error; err != nil {
		return "", err
	}
	return cfg.Value, nil
}

// SetConfigValue upserts one app_config key.
func SetConfigValue(key, value string) error {
	var cfg models.AppConfig
	err := db.Conn().Where("key = ?", key).First(&cfg).Error
	if err != nil {
		return db.Conn().Create(&models.AppConfig{Key: key, Value: value}).Error
	}
	cfg.Value = value
	return db.Conn().Save(&cfg).Error
}

// LectureRegistrationsEnabled reports the global toggle. A missing key means
// registrations are open (the seed creates it as "true").
func LectureRegistrationsEnabled() bool {
	v, err := ConfigValue(LectureEnabledKey)
	if err != nil {
		return true
	}
	return v == "true"
}

// ActiveLecture returns the lecture row the public page advertises.
func ActiveLecture() (*models.LectureInfo, error) {
	var lec models.LectureInfo
	if err := db.Conn().Where("is_active = ?", true).
		Order("updated_at desc").First(&lec).Error; err != nil {
		return nil, err
	}
	return &lec, nil
}

// RegisterCouple validates a submission, inserts the registration row, and
// attaches a freshly built PIX payload for the payment step. The enabled
// toggle and the deadline are re-checked here, not only at page render.
func RegisterCouple(in CoupleInput, now time.Time) (*models.LectureRegistration, error) {
	if !LectureRegistrationsEnabled() {
		return nil, ErrRegistrationsClosed
	}

	price := DefaultLecturePrice
	if lec, err := ActiveLecture(); err == nil {
		if lec.RegistrationDeadline != nil && now.After(*lec.RegistrationDeadline) {
			return nil, ErrDeadlinePassed
		}
		if lec.Price > 0 {
			price = lec.Price
		}
	}

	in.HusbandPhone = digitsOnly(in.HusbandPhone)
	in.WifePhone = digitsOnly(in.WifePhone)
	in.HusbandCPF = digitsOnly(in.HusbandCPF)
	in.WifeCPF = digitsOnly(in.WifeCPF)
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	txid := NewTxID()
	payload := BuildPayload(Payment{
		Key:          config.C.PixKey,
		ReceiverName: config.C.PixReceiverName,
		City:         config.C.PixCity,
		Amount:       price,
		TxID:         txid,
	})

	reg := models.LectureRegistration{
		HusbandName:  in.HusbandName,
		HusbandPhone: in.HusbandPhone,
		HusbandCPF:   in.HusbandCPF,
		HusbandEmail: in.HusbandEmail,
		WifeName:     in.WifeName,
		WifePhone:    in.WifePhone,
		WifeCPF:      in.WifeCPF,
		WifeEmail:    in.WifeEmail,
		Amount:       price,
		PixTxID:      txid,
		PixPayload:   payload,
	}
	if err := db.Conn().Create(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func digitsOnly(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
