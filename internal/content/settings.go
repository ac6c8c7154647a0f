package content

import (
	"encoding/json"
	"net/http"

	"github.com/bartek-filipiuk/dw-zizi/internal/db"
	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

func SettingsListHandler(w http.ResponseWriter, r *http.Request) {
	var settings []SiteSetting
	if err := db.DB.Find(&settings).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	utils.WriteJSON(w, http.StatusOK, settings)
}

// SettingsUpdateHandler bulk-upserts settings by key and returns the
// full resulting list.
func SettingsUpdateHandler(w http.ResponseWriter, r *http.Request) {
	var inputs []settingInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Expected array of settings")
		return
	}

	for _, in := range inputs {
		if err := validateSetting(in); err != nil {
			utils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	for _, in := range inputs {
		setting := SiteSetting{
			ID:    uuid.NewString(),
			Key:   in.Key,
			Value: in.Value,
			Label: in.Label,
		}
		err := db.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "label"}),
		}).Create(&setting).Error
		if err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to update settings")
			return
		}
	}

	var settings []SiteSetting
	if err := db.DB.Find(&settings).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	utils.WriteJSON(w, http.StatusOK, settings)
}
