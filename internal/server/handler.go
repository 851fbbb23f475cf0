package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/alexiusacademia/presize/internal/diagram"
	"github.com/alexiusacademia/presize/internal/project"
	"github.com/alexiusacademia/presize/internal/report"
	"github.com/alexiusacademia/presize/internal/sizing"
	"github.com/alexiusacademia/presize/internal/version"
)

// Handler serves the sizing API. Every request sizes its own parameters.
type Handler struct{}

// MaxBodyBytes bounds a request body.
const MaxBodyBytes = 1 << 20

var imageTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
	"pdf": "application/pdf",
}

// schedule decodes the request parameters over the defaults and sizes
// them. It writes the error response itself and returns nil on failure.
func (h *Handler) schedule(w http.ResponseWriter, r *http.Request) *sizing.Schedule {
	p := project.Default()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return nil
		}
		http.Error(w, "Invalid request payload: "+err.Error(), http.StatusBadRequest)
		return nil
	}

	s, err := sizing.Run(p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	return s
}

func (h *Handler) Size(w http.ResponseWriter, r *http.Request) {
	s := h.schedule(w, r)
	if s == nil {
		return
	}
	writeJSON(w, s)
}

func (h *Handler) Tables(w http.ResponseWriter, r *http.Request) {
	s := h.schedule(w, r)
	if s == nil {
		return
	}
	writeJSON(w, s.Tables())
}

func (h *Handler) Workbook(w http.ResponseWriter, r *http.Request) {
	s := h.schedule(w, r)
	if s == nil {
		return
	}
	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, s.Tables()); err != nil {
		log.Printf("workbook export failed: %v", err)
		http.Error(w, "Workbook generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Disposition", attachment(s.Parameters.Name, "Calc.xlsx"))
	writeBody(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", &buf)
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	s := h.schedule(w, r)
	if s == nil {
		return
	}
	var buf bytes.Buffer
	err := report.WritePDF(&buf, report.ReportInput{
		Project:      s.Parameters.Name,
		BuildingType: s.Parameters.BuildingType,
		Date:         time.Now(),
		Schedule:     s,
	})
	if err != nil {
		log.Printf("report export failed: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Disposition", attachment(s.Parameters.Name, "Report.pdf"))
	writeBody(w, "application/pdf", &buf)
}

// Plan renders the structural plan. ?format=png|svg|pdf, png by default.
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	format, ok := imageFormat(w, r)
	if !ok {
		return
	}
	s := h.schedule(w, r)
	if s == nil {
		return
	}
	p, err := diagram.PlanPlot(diagram.NewPlanData(s))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := diagram.WriteImage(&buf, p, format); err != nil {
		log.Printf("plan render failed: %v", err)
		http.Error(w, "Image rendering error", http.StatusInternalServerError)
		return
	}
	writeBody(w, imageTypes[format], &buf)
}

// Elevation renders the frame elevation. ?floor=N highlights storey N,
// counted from 1.
func (h *Handler) Elevation(w http.ResponseWriter, r *http.Request) {
	format, ok := imageFormat(w, r)
	if !ok {
		return
	}
	floor := 1
	if v := r.URL.Query().Get("floor"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "floor must be an integer", http.StatusBadRequest)
			return
		}
		floor = n
	}
	s := h.schedule(w, r)
	if s == nil {
		return
	}
	p, err := diagram.ElevationPlot(diagram.NewElevationData(s, floor-1))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := diagram.WriteImage(&buf, p, format); err != nil {
		log.Printf("elevation render failed: %v", err)
		http.Error(w, "Image rendering error", http.StatusInternalServerError)
		return
	}
	writeBody(w, imageTypes[format], &buf)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func imageFormat(w http.ResponseWriter, r *http.Request) (string, bool) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	if _, ok := imageTypes[format]; !ok {
		http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
		return "", false
	}
	return format, true
}

func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
		http.Error(w, "Response encoding error", http.StatusInternalServerError)
		return
	}
	writeBody(w, "application/json", &buf)
}

// writeBody sends a fully rendered body.
func writeBody(w http.ResponseWriter, contentType string, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("writing response: %v", err)
	}
}

func attachment(name, suffix string) string {
	if name == "" {
		name = "presize"
	}
	return fmt.Sprintf("attachment; filename=%q", name+"_"+suffix)
}
