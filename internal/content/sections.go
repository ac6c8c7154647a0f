package content

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/bartek-filipiuk/dw-zizi/internal/db"
	"github.com/bartek-filipiuk/dw-zizi/internal/uploads"
	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func orderedImages(tx *gorm.DB) *gorm.DB {
	return tx.Order("sort_order ASC")
}

func loadSection(id string) (Section, error) {
	var section Section
	err := db.DB.Preload("Images", orderedImages).First(&section, "id = ?", id).Error
	return section, err
}

func SectionListHandler(w http.ResponseWriter, r *http.Request) {
	var sections []Section
	if err := db.DB.Preload("Images", orderedImages).Order("sort_order ASC").Find(&sections).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load sections")
		return
	}
	utils.WriteJSON(w, http.StatusOK, sections)
}

func SectionGetHandler(w http.ResponseWriter, r *http.Request) {
	section, err := loadSection(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Section not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, section)
}

// SectionUpdateHandler handles both shapes of PUT /sections/{id}: a
// multipart body attaches a new image to the section, a JSON body
// updates the section's copy fields.
func SectionUpdateHandler(store *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if _, err := loadSection(id); err != nil {
			utils.WriteError(w, http.StatusNotFound, "Section not found")
			return
		}

		if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			result, ok := ingestFormImage(w, r, store)
			if !ok {
				return
			}
			if result != nil {
				img := SectionImage{
					ID:        uuid.NewString(),
					SectionID: id,
					URL:       result.URL,
					Alt:       r.FormValue("alt"),
					Role:      formValueOr(r, "role", "background"),
					Width:     result.Width,
					Height:    result.Height,
				}
				if err := db.DB.Create(&img).Error; err != nil {
					// The row failed after the file was written; drop the file
					// so no orphan artifact survives.
					_ = store.Retire(result.URL)
					utils.WriteError(w, http.StatusInternalServerError, "Failed to save image")
					return
				}
			}
			section, err := loadSection(id)
			if err != nil {
				utils.WriteError(w, http.StatusInternalServerError, "Failed to update section")
				return
			}
			utils.WriteJSON(w, http.StatusOK, section)
			return
		}

		var in sectionInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validateSection(in); err != nil {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		updates := map[string]any{"title": *in.Title}
		if in.Subtitle != nil {
			updates["subtitle"] = *in.Subtitle
		}
		if in.Body != nil {
			updates["body"] = *in.Body
		}
		if in.CtaText != nil {
			updates["cta_text"] = *in.CtaText
		}
		if in.CtaLink != nil {
			updates["cta_link"] = *in.CtaLink
		}
		if in.Visible != nil {
			updates["visible"] = *in.Visible
		}
		if in.SortOrder != nil {
			updates["sort_order"] = *in.SortOrder
		}

		if err := db.DB.Model(&Section{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to update section")
			return
		}

		section, err := loadSection(id)
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to update section")
			return
		}
		utils.WriteJSON(w, http.StatusOK, section)
	}
}

// SectionImageDeleteHandler removes one owned image: the stored file is
// retired first, then the row. DELETE /sections/{id}?imageId=...
func SectionImageDeleteHandler(store *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID := r.URL.Query().Get("imageId")
		if imageID == "" {
			utils.WriteError(w, http.StatusBadRequest, "Missing imageId")
			return
		}

		var img SectionImage
		err := db.DB.First(&img, "id = ? AND section_id = ?", imageID, chi.URLParam(r, "id")).Error
		if err == nil {
			_ = store.Retire(img.URL)
			if err := db.DB.Delete(&img).Error; err != nil {
				utils.WriteError(w, http.StatusInternalServerError, "Failed to delete image")
				return
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to delete image")
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}
