package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sanixdarker/gql-jddf/internal/app"
	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

// ValidateHandler handles instance validation requests.
type ValidateHandler struct {
	app *app.App
}

// NewValidateHandler creates a new ValidateHandler.
func NewValidateHandler(application *app.App) *ValidateHandler {
	return &ValidateHandler{app: application}
}

type validateRequest struct {
	Schema   *jddf.Schema    `json:"schema"`
	Instance json.RawMessage `json:"instance"`
}

type validateResponse struct {
	Valid  bool                   `json:"valid"`
	Errors []jddf.ValidationError `json:"errors"`
}

// Validate checks a JSON instance against a JDDF schema. The response lists
// every validation error; an empty list means the instance is valid.
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, h.app.Config.MaxBodyBytes)

	var req validateRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}
	if req.Schema == nil {
		writeError(w, http.StatusBadRequest, "schema is required")
		return
	}
	if err := req.Schema.Check(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid schema: "+err.Error())
		return
	}
	if len(req.Instance) == 0 {
		writeError(w, http.StatusBadRequest, "instance is required")
		return
	}

	var instance any
	if err := json.Unmarshal(req.Instance, &instance); err != nil {
		writeError(w, http.StatusBadRequest, "decode instance: "+err.Error())
		return
	}

	errs, err := h.app.Validator.Validate(req.Schema, instance)
	if err != nil {
		h.app.Logger.Debug("validation failed", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs == nil {
		errs = []jddf.ValidationError{}
	}
	writeJSON(w, http.StatusOK, validateResponse{Valid: len(errs) == 0, Errors: errs})
}
