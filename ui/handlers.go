package ui

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"residualmap/adapters/render"
	"residualmap/domain/core"
	"residualmap/domain/dataset"
	"residualmap/domain/residual"
	apperrors "residualmap/internal/errors"
)

const maxUploadBytes = 32 << 20

// analyzeRequest is the decoded multipart upload common to all endpoints
type analyzeRequest struct {
	Dataset *dataset.Dataset
	Var1    string
	Var2    string
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	analysis, err := s.service.Run(r.Context(), req.Dataset, req.Var1, req.Var2)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	set, err := s.computeRecords(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts, err := s.heatmapOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.RenderHeatmapSVG(w, set, opts); err != nil {
		s.writeError(w, err)
	}
}

func (s *Server) handleNetwork(w http.ResponseWriter, r *http.Request) {
	set, err := s.computeRecords(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := render.DefaultNetworkOptions(set.Var1, set.Var2)
	opts.MinWidth = s.cfg.Render.MinEdge
	opts.MaxWidth = s.cfg.Render.MaxEdge

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.RenderNetworkSVG(w, set, opts); err != nil {
		s.writeError(w, err)
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	analysis, err := s.service.Run(r.Context(), req.Dataset, req.Var1, req.Var2)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(s.reports.RenderHTML(analysis))
}

// computeRecords runs preprocessing and residual computation for chart
// endpoints, which need the record set rather than the stored artifact.
func (s *Server) computeRecords(r *http.Request) (*residual.RecordSet, error) {
	req, err := s.decodeRequest(r)
	if err != nil {
		return nil, err
	}

	clean, err := s.service.Preprocess(req.Dataset, req.Var1, req.Var2)
	if err != nil {
		return nil, err
	}
	return s.service.ComputeResiduals(clean, req.Var1, req.Var2)
}

func (s *Server) decodeRequest(r *http.Request) (*analyzeRequest, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, apperrors.InvalidInput("request is not a valid multipart form")
	}

	var1 := strings.TrimSpace(r.FormValue("var1"))
	var2 := strings.TrimSpace(r.FormValue("var2"))
	if var1 == "" || var2 == "" {
		return nil, apperrors.InvalidInput("var1 and var2 form fields are required")
	}

	file, _, err := r.FormFile("dataset")
	if err != nil {
		return nil, apperrors.InvalidInput("dataset file field is required")
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, apperrors.InvalidInput("dataset is not valid CSV")
	}
	if len(rows) < 2 {
		return nil, apperrors.InvalidInput("dataset must have a header row and at least one data row")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	ds := dataset.New(headers...)
	for _, raw := range rows[1:] {
		row := make(dataset.Row, len(headers))
		for j, header := range headers {
			if j < len(raw) {
				row[header] = dataset.ParseValue(raw[j])
			} else {
				row[header] = dataset.Value{}
			}
		}
		ds.Append(row)
	}

	return &analyzeRequest{Dataset: ds, Var1: var1, Var2: var2}, nil
}

func (s *Server) heatmapOptions(r *http.Request) (render.HeatmapOptions, error) {
	opts := render.DefaultHeatmapOptions()
	opts.ThemeSize = s.cfg.Render.ThemeSize
	opts.LabelSize = s.cfg.Render.LabelSize
	opts.Title = strings.TrimSpace(r.FormValue("title"))

	var err error
	if opts.ColorLow, err = render.ParseHex(s.cfg.Render.ColorLow); err != nil {
		return opts, apperrors.ConfigInvalid(err.Error())
	}
	if opts.ColorHigh, err = render.ParseHex(s.cfg.Render.ColorHigh); err != nil {
		return opts, apperrors.ConfigInvalid(err.Error())
	}
	if opts.ColorLabels, err = render.ParseHex(s.cfg.Render.ColorLabels); err != nil {
		return opts, apperrors.ConfigInvalid(err.Error())
	}
	return opts, nil
}

// writeError maps domain and application errors onto HTTP status codes
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apperrors.GetCode(err)

	switch {
	case core.IsValidationError(err):
		status = http.StatusBadRequest
		code = apperrors.CodeValidationError
	case core.IsSchemaError(err):
		status = http.StatusUnprocessableEntity
		code = apperrors.CodeSchemaError
	case core.IsAnalysisError(err):
		status = http.StatusUnprocessableEntity
		code = apperrors.CodeAnalysisError
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
		code = apperrors.CodeNotFound
	case code == apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case code == apperrors.CodeConfigInvalid:
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"code":  code,
		"error": err.Error(),
	})
}
