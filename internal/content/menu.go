package content

import (
	"encoding/json"
	"net/http"

	"github.com/bartek-filipiuk/dw-zizi/internal/db"
	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func MenuListHandler(w http.ResponseWriter, r *http.Request) {
	var items []MenuItem
	if err := db.DB.Order("sort_order ASC").Find(&items).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load menu")
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

func MenuCreateHandler(w http.ResponseWriter, r *http.Request) {
	var in menuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateMenuItem(in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	item := MenuItem{
		ID:      uuid.NewString(),
		Label:   *in.Label,
		Href:    *in.Href,
		Visible: true,
	}
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	if in.Visible != nil {
		item.Visible = *in.Visible
	}

	if err := db.DB.Create(&item).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create menu item")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, item)
}

func MenuUpdateHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in menuItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateMenuItem(in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var item MenuItem
	if err := db.DB.First(&item, "id = ?", id).Error; err != nil {
		utils.WriteError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	item.Label = *in.Label
	item.Href = *in.Href
	if in.SortOrder != nil {
		item.SortOrder = *in.SortOrder
	}
	if in.Visible != nil {
		item.Visible = *in.Visible
	}

	if err := db.DB.Save(&item).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to update menu item")
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func MenuDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := db.DB.Delete(&MenuItem{}, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete menu item")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
