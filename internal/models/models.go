package models

import "time"

// Enum values are stored verbatim as the public forms submit them; the store
// schema and the form option lists share these sets.
var (
	Genders       = []string{"masculino", "feminino"}
	CivilStatuses = []string{"solteiro", "casado", "divorciado", "viuvo"}

	Congregations = []string{
		"sede_araporanga",
		"congregacao_boa_vista",
		"congregacao_ponta_serra",
		"congregacao_balsamo",
		"congregacao_latao_baixo",
		"congregacao_latao_cima",
	}

	CongregationLabels = map[string]string{
		"sede_araporanga":         "Sede Araporanga",
		"congregacao_boa_vista":   "Congregação da Boa Vista",
		"congregacao_ponta_serra": "Congregação da Ponta da Serra",
		"congregacao_balsamo":     "Congregação do Bálsamo",
		"congregacao_latao_baixo": "Congregação do Latão de Baixo",
		"congregacao_latao_cima":  "Congregação do Latão de Cima",
	}
)

// DaysOfWeek fixes both the allowed values and the display order for service
// schedules, so grouping never splits on capitalization or spelling drift.
var DaysOfWeek = []string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

type Member struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	FullName     string `gorm:"not null"`
	BirthDate    *time.Time
	Gender       string `gorm:"not null"`
	CivilStatus  string `gorm:"not null"`
	Congregation string `gorm:"not null;index"`
	IsBaptized   bool
}

type Post struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title    string `gorm:"not null"`
	Content  string
	ImageURL string
	AuthorID *uint
}

type ServiceSchedule struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	DayOfWeek   string `gorm:"not null"`
	ServiceName string `gorm:"not null"`
	ServiceTime string `gorm:"not null"`
	Leader      string
	SortOrder   int
	IsActive    bool `gorm:"index"`
}

// At most one row may be active at a time; enforced by a partial unique
// index created in db.Init plus transactional activation in services.
type PastorProfile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name          string `gorm:"not null"`
	ImageURL      string
	ImagePosition string
	IsActive      bool
}

func (PastorProfile) TableName() string { return "pastor_info" }

// Singleton row, seeded on first boot.
type ChurchInfo struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ChurchName        string
	ChurchDescription string
	Location          string
	Phone             string
	Email             string
	CopyrightText     string
}

func (ChurchInfo) TableName() string { return "church_info" }

type ChurchImage struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name     string `gorm:"not null"`
	ImageURL string `gorm:"not null"`
	IsHero   bool
}

type AppConfig struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Key   string `gorm:"uniqueIndex;not null"`
	Value string `gorm:"not null"`
}

func (AppConfig) TableName() string { return "app_config" }

type LectureInfo struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title                string `gorm:"not null"`
	Description          string
	Location             string
	DateTime             *time.Time
	Price                float64
	MaxParticipants      int
	RegistrationDeadline *time.Time
	AdditionalInfo       string
	ContactInfo          string
	IsActive             bool
}

func (LectureInfo) TableName() string { return "lecture_info" }

type LectureRegistration struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	HusbandName  string `gorm:"not null"`
	HusbandPhone string `gorm:"not null"`
	HusbandCPF   string `gorm:"column:husband_cpf;not null"`
	HusbandEmail string
	WifeName     string `gorm:"not null"`
	WifePhone    string `gorm:"not null"`
	WifeCPF      string `gorm:"column:wife_cpf;not null"`
	WifeEmail    string

	// Payment reference generated at registration time. The payload is kept
	// so the QR endpoint serves exactly what the payment page displayed.
	Amount     float64
	PixTxID    string `gorm:"column:pix_tx_id;uniqueIndex"`
	PixPayload string
}

type AdminUser struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null"` // admin | moderator | user
}

type AdminSession struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Token       string `gorm:"uniqueIndex;not null"`
	AdminUserID uint
	AdminUser   AdminUser
	ExpiresAt   time.Time
}
