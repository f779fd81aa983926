package web

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
)

// handleListSheets returns all registered sheet definitions.
func (s *Server) handleListSheets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"sheets": s.service.ListSheets()})
}

// handleStartRun accepts a spreadsheet upload and starts an asynchronous
// validation run against the named sheet definition.
func (s *Server) handleStartRun(w http.ResponseWriter, r *http.Request) {
	sheetKey := chi.URLParam(r, "sheetKey")
	if sheetKey == "" {
		respondError(w, r, fmt.Errorf("missing sheet key"), http.StatusBadRequest)
		return
	}

	maxSize := s.cfg.Runs.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		respondError(w, r, fmt.Errorf("file too large or invalid form"), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, fmt.Errorf("no file provided"), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, r, fmt.Errorf("failed to read file"), http.StatusInternalServerError)
		return
	}

	runID, err := s.service.StartRun(r.Context(), sheetKey, header.Filename, data)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusAccepted)
	writeJSON(w, map[string]string{"runId": runID})
}

// handleRunProgress streams run progress via Server-Sent Events.
// Supports resumption via lastEventId query parameter for reconnection.
func (s *Server) handleRunProgress(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		respondError(w, r, fmt.Errorf("missing run ID"), http.StatusBadRequest)
		return
	}

	// The event ID is the progress percentage, allowing clients to skip
	// already-received events after reconnection.
	lastEventIDStr := r.URL.Query().Get("lastEventId")
	var lastEventID int
	if lastEventIDStr != "" {
		lastEventID, _ = strconv.Atoi(lastEventIDStr)
	}

	progressCh, err := s.service.SubscribeProgress(runID)
	if err != nil {
		respondError(w, r, err, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondError(w, r, fmt.Errorf("streaming not supported"), http.StatusInternalServerError)
		return
	}

	for {
		select {
		case progress, ok := <-progressCh:
			if !ok {
				// Channel closed - run finished
				fmt.Fprintf(w, "event: complete\ndata: {}\n\n")
				flusher.Flush()
				return
			}

			// Skip events the client already received before reconnecting
			if lastEventIDStr != "" && progress.Percent <= lastEventID {
				continue
			}

			data, _ := json.Marshal(progress)
			fmt.Fprintf(w, "id: %d\nevent: progress\ndata: %s\n\n", progress.Percent, data)
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}

// handleRunResult returns the final result of a run, blocking until the
// run completes.
func (s *Server) handleRunResult(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		respondError(w, r, fmt.Errorf("missing run ID"), http.StatusBadRequest)
		return
	}

	result, err := s.service.GetResult(runID)
	if err != nil {
		respondError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, result)
}

// handleCancelRun requests cancellation of an in-progress run.
func (s *Server) handleCancelRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "runID")
	if runID == "" {
		respondError(w, r, fmt.Errorf("missing run ID"), http.StatusBadRequest)
		return
	}

	if err := s.service.CancelRun(runID); err != nil {
		respondError(w, r, err, http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]string{"status": "cancelled"})
}

// handleHistory returns recent persisted runs, optionally filtered by
// sheet key.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sheetKey := chi.URLParam(r, "sheetKey")
	limit := parseIntParam(r, "limit", 0)

	records, err := s.service.History(r.Context(), sheetKey, limit)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}

	if records == nil {
		// History store disabled or no rows; render an empty list rather
		// than JSON null.
		writeJSON(w, map[string]any{"runs": []any{}})
		return
	}

	writeJSON(w, map[string]any{"runs": records})
}

// parseIntParam reads an integer query parameter with a fallback default.
func parseIntParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
