package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sanixdarker/gql-jddf/internal/app"
	"github.com/sanixdarker/gql-jddf/internal/converter"
	"github.com/sanixdarker/gql-jddf/pkg/jddf"
)

// MergeHandler handles requests that combine several schema documents.
type MergeHandler struct {
	app *app.App
}

// NewMergeHandler creates a new MergeHandler.
func NewMergeHandler(application *app.App) *MergeHandler {
	return &MergeHandler{app: application}
}

type mergeRequest struct {
	Inputs []mergeInput `json:"inputs"`
	Root   string       `json:"root"`
}

type mergeInput struct {
	Content  string `json:"content"`
	Format   string `json:"format"`
	Filename string `json:"filename"`
}

// Merge converts each input document and folds the results into a single
// JDDF schema. Later inputs win when definitions collide.
func (h *MergeHandler) Merge(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, h.app.Config.MaxBodyBytes)

	var req mergeRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "decode request: "+err.Error())
		return
	}
	if len(req.Inputs) == 0 {
		writeError(w, http.StatusBadRequest, "no inputs to merge")
		return
	}

	schemas := make([]*jddf.Schema, 0, len(req.Inputs))
	for i, in := range req.Inputs {
		content := []byte(in.Content)
		format := in.Format
		if format == "" || format == "auto" {
			format = h.app.ConverterManager.DetectFormat(in.Filename, content)
		}
		schema, err := h.app.ConverterManager.Convert(format, content, &converter.Options{
			SourcePath: in.Filename,
		})
		if err != nil {
			h.app.Logger.Debug("merge input failed", "index", i, "format", format, "error", err)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("input %d: %v", i, err))
			return
		}
		schemas = append(schemas, schema)
	}

	merged, err := converter.Merge(req.Root, schemas...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, merged)
}
