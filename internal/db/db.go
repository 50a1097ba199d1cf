package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adtc/araporanga/internal/models"
)

var conn *gorm.DB

func Init(path string) error {
	var err error
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	conn, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	// SQLite works best with a single writer; cap the pool accordingly.
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := conn.AutoMigrate(
		&models.Member{},
		&models.Post{},
		&models.ServiceSchedule{},
		&models.PastorProfile{},
		&models.ChurchInfo{},
		&models.ChurchImage{},
		&models.AppConfig{},
		&models.LectureInfo{},
		&models.LectureRegistration{},
		&models.AdminUser{},
		&models.AdminSession{},
	); err != nil {
		log.Fatalf("auto-migrate failed: %v", err)
	}

	// Partial unique indexes GORM doesn't express: at most one active pastor
	// row and at most one hero image, enforced by the store itself.
	conn.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_pastor_single_active ON pastor_info(is_active) WHERE is_active = 1")
	conn.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_images_single_hero   ON church_images(is_hero) WHERE is_hero = 1")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_schedules_active_order ON service_schedules(is_active, sort_order)")

	log.Println("database ready (sqlite)")
	return nil
}

func Conn() *gorm.DB {
	return conn
}

// Seed fills in the rows the site expects to exist: the singleton church-info
// row, the lecture toggle, and the first admin account. Idempotent.
func Seed(adminUsername, adminPassword string) error {
	info := models.ChurchInfo{
		ChurchName:        "Assembleia de Deus Templo Central - Araporanga",
		ChurchDescription: "Uma comunidade de fé, esperança e amor.",
		CopyrightText:     "© ADTC Araporanga. Todos os direitos reservados.",
	}
	if err := conn.FirstOrCreate(&info, models.ChurchInfo{ID: 1}).Error; err != nil {
		return err
	}

	toggle := models.AppConfig{Key: "lecture_registrations_enabled", Value: "true"}
	if err := conn.Where(models.AppConfig{Key: toggle.Key}).FirstOrCreate(&toggle).Error; err != nil {
		return err
	}

	var admins int64
	if err := conn.Model(&models.AdminUser{}).Count(&admins).Error; err != nil {
		return err
	}
	if admins == 0 && adminPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.AdminUser{Username: adminUsername, PasswordHash: string(hash), Role: "admin"}
		if err := conn.Create(&admin).Error; err != nil {
			return err
		}
		log.Printf("seeded admin account %q", adminUsername)
	}
	return nil
}
