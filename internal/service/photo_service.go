package service

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/config"
	"github.com/shubhamgoyal071/website/internal/consts"
	"github.com/shubhamgoyal071/website/internal/db"
	"github.com/shubhamgoyal071/website/internal/model"

	"gorm.io/gorm"
)

// ProcessPhotoUpload validates the metadata, stores the binary and inserts
// the catalog row. Validation runs before any side effect; a failed insert
// removes the just-written file so neither an orphaned row nor an orphaned
// file survives a single request.
func ProcessPhotoUpload(file *multipart.FileHeader, title, description, category string) (*model.Photo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Validation("photo title is required", "title")
	}
	if !consts.IsValidPhotoCategory(category) {
		return nil, apperr.Validation("unknown photo category: "+category, "category")
	}

	relPath, err := SaveAsset(file)
	if err != nil {
		return nil, err
	}

	photo := model.Photo{
		Title:       title,
		Description: description,
		Category:    category,
		FilePath:    relPath,
		FileURL:     config.Get().Upload.URLPrefix + relPath,
		Size:        file.Size,
	}

	if err := db.DB.Create(&photo).Error; err != nil {
		// Roll the file back so a DB failure leaves no stray asset.
		_ = RemoveAsset(relPath)
		log.Printf("Photo insert error: %v\n", err)
		return nil, apperr.Storage("failed to record the uploaded photo", err)
	}

	return &photo, nil
}

// ListPhotos returns the catalog in insertion order, optionally narrowed
// to one category. An unknown filter value is rejected rather than
// silently returning nothing.
func ListPhotos(category string) ([]model.Photo, error) {
	query := db.DB.Model(&model.Photo{}).Order("id ASC")
	if category != "" {
		if !consts.IsValidPhotoCategory(category) {
			return nil, apperr.Validation("unknown photo category: "+category, "category")
		}
		query = query.Where("category = ?", category)
	}

	photos := make([]model.Photo, 0)
	if err := query.Find(&photos).Error; err != nil {
		return nil, apperr.Storage("failed to load photos", err)
	}
	return photos, nil
}

// GetPhoto fetches a single catalog row.
func GetPhoto(id uint) (*model.Photo, error) {
	var photo model.Photo
	if err := db.DB.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("photo not found")
		}
		return nil, apperr.Storage("failed to load the photo", err)
	}
	return &photo, nil
}

// DeletePhoto removes the stored file first and the catalog row second, so
// a crash in between leaves a detectable dangling row instead of an
// invisible orphaned file. Both steps are idempotent; when two deletes
// race, the loser sees the row already gone and reports not found.
func DeletePhoto(id uint) error {
	photo, err := GetPhoto(id)
	if err != nil {
		return err
	}

	if err := RemoveAsset(photo.FilePath); err != nil {
		return err
	}

	res := db.DB.Where("id = ?", id).Delete(&model.Photo{})
	if res.Error != nil {
		return apperr.Storage("failed to delete the photo record", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("photo not found")
	}
	return nil
}

// DanglingPhoto is a catalog row whose stored file is missing, the
// expected leftover of a crash between the two delete steps.
type DanglingPhoto struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	FilePath string `json:"file_path"`
}

// CheckCatalogIntegrity scans the catalog for rows whose asset no longer
// resolves. The inconsistency is reported, never silently repaired.
func CheckCatalogIntegrity() ([]DanglingPhoto, error) {
	photos, err := ListPhotos("")
	if err != nil {
		return nil, err
	}

	dangling := make([]DanglingPhoto, 0)
	for _, p := range photos {
		if !AssetExists(p.FilePath) {
			dangling = append(dangling, DanglingPhoto{ID: p.ID, Title: p.Title, FilePath: p.FilePath})
		}
	}
	return dangling, nil
}
