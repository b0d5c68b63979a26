package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"snapfeed/app/apperr"
)

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError converts an operation failure into the client-facing envelope.
// Uncoded faults default to 500 with no data payload.
func sendError(w http.ResponseWriter, log *logrus.Logger, err error) {
	e := apperr.From(err)
	if e == nil {
		log.WithError(err).Error("request failed")
		sendJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"message": "An error occured",
		})
		return
	}

	body := map[string]interface{}{"message": e.Message}
	if e.Data != nil {
		body["data"] = e.Data
	}
	sendJSON(w, e.StatusCode(), body)
}
