package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/sanixdarker/gql-jddf/internal/app"
	"github.com/sanixdarker/gql-jddf/internal/converter"
)

// ConvertHandler handles conversion requests.
type ConvertHandler struct {
	app *app.App
}

// NewConvertHandler creates a new ConvertHandler.
func NewConvertHandler(application *app.App) *ConvertHandler {
	return &ConvertHandler{app: application}
}

// Convert turns the schema document in the request body into a JDDF schema.
// The input format comes from the format query parameter; absent or "auto",
// it is sniffed from the filename parameter and the content.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	content, ok := h.readBody(w, r)
	if !ok {
		return
	}
	if len(bytes.TrimSpace(content)) == 0 {
		writeError(w, http.StatusBadRequest, "empty request body")
		return
	}

	filename := r.URL.Query().Get("filename")
	format := r.URL.Query().Get("format")
	if format == "" || format == "auto" {
		format = h.app.ConverterManager.DetectFormat(filename, content)
	}

	schema, err := h.app.ConverterManager.Convert(format, content, &converter.Options{
		SourcePath: filename,
		RootName:   r.URL.Query().Get("root"),
	})
	if err != nil {
		h.app.Logger.Debug("conversion failed", "format", format, "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, schema)
}

// DetectFormat reports which input format the body looks like.
func (h *ConvertHandler) DetectFormat(w http.ResponseWriter, r *http.Request) {
	content, ok := h.readBody(w, r)
	if !ok {
		return
	}
	format := h.app.ConverterManager.DetectFormat(r.URL.Query().Get("filename"), content)
	writeJSON(w, http.StatusOK, map[string]string{"format": format})
}

// Formats lists the supported input formats.
func (h *ConvertHandler) Formats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"formats": h.app.ConverterManager.SupportedFormats(),
	})
}

func (h *ConvertHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.app.Config.MaxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		} else {
			writeError(w, http.StatusBadRequest, "read request body: "+err.Error())
		}
		return nil, false
	}
	return content, true
}
