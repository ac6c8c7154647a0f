package content

import (
	"encoding/json"
	"net/http"

	"github.com/bartek-filipiuk/dw-zizi/internal/db"
	"github.com/bartek-filipiuk/dw-zizi/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ContactHandler is the public inquiry endpoint.
func ContactHandler(w http.ResponseWriter, r *http.Request) {
	var in contactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateContact(in); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	submission := ContactSubmission{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := db.DB.Create(&submission).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "id": submission.ID})
}

func SubmissionListHandler(w http.ResponseWriter, r *http.Request) {
	var submissions []ContactSubmission
	if err := db.DB.Order("created_at DESC").Find(&submissions).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to load submissions")
		return
	}
	utils.WriteJSON(w, http.StatusOK, submissions)
}

// SubmissionGetHandler returns one submission and marks it read.
func SubmissionGetHandler(w http.ResponseWriter, r *http.Request) {
	var submission ContactSubmission
	if err := db.DB.First(&submission, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		utils.WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	if !submission.Read {
		if err := db.DB.Model(&submission).Update("read", true).Error; err != nil {
			utils.WriteError(w, http.StatusInternalServerError, "Failed to update submission")
			return
		}
	}

	submission.Read = true
	utils.WriteJSON(w, http.StatusOK, submission)
}

func SubmissionDeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := db.DB.Delete(&ContactSubmission{}, "id = ?", chi.URLParam(r, "id")).Error; err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to delete submission")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
