package httpapi

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/datachart/internal/server/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	defaultPage     = 1
	defaultPageSize = 50
	maxUploadMemory = 32 << 20
)

// datasetID extracts and validates the {id} path variable. A malformed id is
// rejected before any lookup so it cannot be mistaken for a missing dataset.
func datasetID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid dataset ID format")
		return "", false
	}
	return id, true
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Error reading file")
		return
	}

	dataset, err := s.ingest.Upload(r.Context(), identity.Email, header.Filename, raw)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "File uploaded successfully",
		"dataset_id": dataset.ID,
		"filename":   dataset.Filename,
		"rows":       dataset.RowCount,
		"columns":    dataset.ColumnCount,
	})
}

type datasetSummary struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	UploadDate  string `json:"upload_date"`
	RowCount    int    `json:"row_count"`
	ColumnCount int    `json:"column_count"`
	FileSize    int64  `json:"file_size"`
}

func toSummary(d *models.Dataset) datasetSummary {
	return datasetSummary{
		ID:          d.ID,
		Filename:    d.Filename,
		UploadDate:  d.UploadedAt.UTC().Format(time.RFC3339),
		RowCount:    d.RowCount,
		ColumnCount: d.ColumnCount,
		FileSize:    d.FileSize,
	}
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	identity := identityFromContext(r.Context())

	list, err := s.query.List(r.Context(), identity.Email)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	summaries := make([]datasetSummary, 0, len(list))
	for _, d := range list {
		summaries = append(summaries, toSummary(d))
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleMetadata(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}
	identity := identityFromContext(r.Context())

	dataset, err := s.query.Metadata(r.Context(), id, identity.Email)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":           dataset.ID,
		"filename":     dataset.Filename,
		"upload_date":  dataset.UploadedAt.UTC().Format(time.RFC3339),
		"row_count":    dataset.RowCount,
		"column_count": dataset.ColumnCount,
		"columns":      dataset.ColumnNames(),
		"file_size":    dataset.FileSize,
	})
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}
	identity := identityFromContext(r.Context())

	page, err := queryInt(r, "page", defaultPage)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid page parameter")
		return
	}
	pageSize, err := queryInt(r, "page_size", defaultPageSize)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid page_size parameter")
		return
	}

	result, err := s.query.Page(r.Context(), id, identity.Email, page, pageSize)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":        result.Rows,
		"total_rows":  result.TotalRows,
		"page":        result.Page,
		"page_size":   result.PageSize,
		"total_pages": result.TotalPages,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}
	identity := identityFromContext(r.Context())

	q := r.URL.Query()
	column := q.Get("column")
	if column == "" {
		writeError(w, http.StatusBadRequest, "Missing required query parameter: column")
		return
	}
	aggregation := q.Get("aggregation")
	if aggregation == "" {
		aggregation = "count"
	}
	valueColumn := q.Get("value_column")

	points, err := s.query.Summarize(r.Context(), id, identity.Email, column, aggregation, valueColumn)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}
	identity := identityFromContext(r.Context())

	url, err := s.query.DownloadURL(r.Context(), id, identity.Email)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := datasetID(w, r)
	if !ok {
		return
	}
	identity := identityFromContext(r.Context())

	if err := s.query.Delete(r.Context(), id, identity.Email); err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Dataset deleted successfully"})
}
