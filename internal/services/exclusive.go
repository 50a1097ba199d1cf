package services

import (
	"gorm.io/gorm"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
)

// SetHeroImage flags one image as the landing-page hero and clears the flag
// everywhere else inside a single transaction, so the partial unique index
// never observes two hero rows.
func SetHeroImage(id uint) error {
	return db.Conn().Transaction(func(tx *gorm.DB) error {
		var img models.ChurchImage
		if err := tx.First(&img, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ChurchImage{}).
			Where("is_hero = ?", true).Update("is_hero", false).Error; err != nil {
			return err
		}
		return tx.Model(&img).Update("is_hero", true).Error
	})
}

// SetActivePastor stores a new pastor profile and retires any prior active
// row in the same transaction.
func SetActivePastor(p models.PastorProfile) (*models.PastorProfile, error) {
	p.IsActive = true
	err := db.Conn().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PastorProfile{}).
			Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ActivePastor returns the profile shown on the public page, or nil when
// none is configured.
func ActivePastor() *models.PastorProfile {
	var p models.PastorProfile
	if err := db.Conn().Where("is_active = ?", true).First(&p).Error; err != nil {
		return nil
	}
	return &p
}

// HeroImage returns the current hero row, or nil when none is flagged.
func HeroImage() *models.ChurchImage {
	var img models.ChurchImage
	if err := db.Conn().Where("is_hero = ?", true).First(&img).Error; err != nil {
		return nil
	}
	return &img
}
