package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meltforce/ftracker/internal/ingest"
	"github.com/meltforce/ftracker/internal/training"
)

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var pkg ingest.Package
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	fieldsFromContext(r).code = pkg.Code

	report, err := s.sensor.Compute(r.Context(), pkg)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.log.Error("compute error", "code", pkg.Code, "error", err)
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleComputeBatch(w http.ResponseWriter, r *http.Request) {
	var pkgs []ingest.Package
	if err := json.NewDecoder(r.Body).Decode(&pkgs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	fieldsFromContext(r).packages = len(pkgs)

	result, err := s.sensor.Ingest(r.Context(), pkgs)
	if err != nil {
		var pkgErr *ingest.PackageError
		if !errors.As(err, &pkgErr) {
			s.log.Error("batch error", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, statusFor(pkgErr.Err), map[string]any{
			"error":  pkgErr.Err.Error(),
			"index":  pkgErr.Index,
			"result": result,
		})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleWorkoutTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, training.Catalog())
}

// statusFor maps computation errors to HTTP status codes.
func statusFor(err error) int {
	var unknown *training.UnknownWorkoutTypeError
	var mismatch *training.ArgumentCountError
	switch {
	case errors.As(err, &unknown), errors.As(err, &mismatch), errors.Is(err, training.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, training.ErrDivisionByZero):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
