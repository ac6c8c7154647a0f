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

func loadGalleryItem(id string) (GalleryItem, error) {
	var item GalleryItem
	err := db.DB.Preload("Images", orderedImages).First(&item, "id = ?", id).Error
	return item, err
}

func GalleryListHandler(w http.ResponseWriter, r *http.Request) {
	var items []GalleryItem
	if err := db.DB.Preload("Images", orderedImages).Order("sort_order ASC").Find(&items).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load gallery")
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

func GalleryGetHandler(w http.ResponseWriter, r *http.Request) {
	item, err := loadGalleryItem(chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Gallery item not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func GalleryCreateHandler(w http.ResponseWriter, r *http.Request) {
	var in galleryItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateGalleryItem(in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	item := GalleryItem{
		ID:      uuid.NewString(),
		Name:    *in.Name,
		Visible: true,
	}
	if in.Slug != nil && *in.Slug != "" {
		item.Slug = *in.Slug
	} else {
		item.Slug = Slugify(item.Name)
	}
	applyGalleryInput(&item, in)

	if err := db.DB.Create(&item).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create gallery item")
		return
	}

	item.Images = []GalleryItemImage{}
	utils.WriteJSON(w, http.StatusCreated, item)
}

// GalleryUpdateHandler handles both shapes of PUT /gallery/{id}: a
// multipart body attaches a new image, a JSON body updates the fields.
func GalleryUpdateHandler(store *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if _, err := loadGalleryItem(id); err != nil {
			utils.WriteError(w, http.StatusNotFound, "Gallery item not found")
			return
		}

		if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
			result, ok := ingestFormImage(w, r, store)
			if !ok {
				return
			}
			if result != nil {
				img := GalleryItemImage{
					ID:            uuid.NewString(),
					GalleryItemID: id,
					URL:           result.URL,
					Alt:           r.FormValue("alt"),
					Type:          formValueOr(r, "type", "full"),
					Width:         result.Width,
					Height:        result.Height,
				}
				if err := db.DB.Create(&img).Error; err != nil {
					_ = store.Retire(result.URL)
					utils.WriteError(w, http.StatusInternalServerError, "Failed to save image")
					return
				}
			}
			item, err := loadGalleryItem(id)
			if err != nil {
				utils.WriteError(w, http.StatusInternalServerError, "Failed to update gallery item")
				return
			}
			utils.WriteJSON(w, http.StatusOK, item)
			return
		}

		var in galleryItemInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validateGalleryItem(in); err != nil {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		updates := map[string]any{"name": *in.Name}
		if in.Slug != nil && *in.Slug != "" {
			updates["slug"] = *in.Slug
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if in.WoodType != nil {
			updates["wood_type"] = *in.WoodType
		}
		if in.Dimensions != nil {
			updates["dimensions"] = *in.Dimensions
		}
		if in.Featured != nil {
			updates["featured"] = *in.Featured
		}
		if in.Visible != nil {
			updates["visible"] = *in.Visible
		}
		if in.SortOrder != nil {
			updates["sort_order"] = *in.SortOrder
		}

		if err := db.DB.Model(&GalleryItem{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to update gallery item")
			return
		}

		item, err := loadGalleryItem(id)
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to update gallery item")
			return
		}
		utils.WriteJSON(w, http.StatusOK, item)
	}
}

// GalleryDeleteHandler deletes one owned image when ?imageId= is given,
// otherwise the whole item. Stored files are always retired before the
// rows that reference them, so a crash can leave an unreferenced file
// but never a reference to a missing file.
func GalleryDeleteHandler(store *uploads.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if imageID := r.URL.Query().Get("imageId"); imageID != "" {
			var img GalleryItemImage
			err := db.DB.First(&img, "id = ? AND gallery_item_id = ?", imageID, id).Error
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
			return
		}

		item, err := loadGalleryItem(id)
		if err == nil {
			for _, img := range item.Images {
				_ = store.Retire(img.URL)
			}
			if err := db.DB.Select("Images").Delete(&item).Error; err != nil {
				utils.WriteError(w, http.StatusInternalServerError, "Failed to delete")
				return
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to delete")
			return
		}

		utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

func applyGalleryInput(item *GalleryItem, in galleryItemInput) {
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.WoodType != nil {
		item.WoodType = *in.WoodType
	}
	if in.Dimensions != nil {
		item.Dimensions = *in.Dimensions
	}
	if in.Featured != nil {
		item.Featured = *in.Featured
	}
	if in.Visible != nil {
		item.Visible = *in.Visible
	}
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
}
