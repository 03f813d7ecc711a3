package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/seuhd/campus-coffee/internal/core/domain"
)

func (s *Server) handleListPos(w http.ResponseWriter, r *http.Request) {
	all, err := s.service.GetAll(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPosDTOs(all))
}

// handleCreatePos accepts a list of drafts and creates them in order. The
// first failure aborts the request; earlier items stay persisted.
func (s *Server) handleCreatePos(w http.ResponseWriter, r *http.Request) {
	dtos, ok := s.decodePosList(w, r)
	if !ok {
		return
	}

	created := make([]posDTO, 0, len(dtos))
	for _, dto := range dtos {
		pos, err := dto.toDomain()
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		persisted, err := s.service.Create(r.Context(), pos)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.metrics.PosWrites.WithLabelValues("create").Inc()
		created = append(created, toPosDTO(*persisted))
	}
	writeJSON(w, http.StatusCreated, created)
}

// handleUpdatePos accepts a list of records with IDs and updates them in
// order. The first failure aborts the request; earlier items stay updated.
func (s *Server) handleUpdatePos(w http.ResponseWriter, r *http.Request) {
	dtos, ok := s.decodePosList(w, r)
	if !ok {
		return
	}

	updated := make([]posDTO, 0, len(dtos))
	for _, dto := range dtos {
		pos, err := dto.toDomain()
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		persisted, err := s.service.Update(r.Context(), pos)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		s.metrics.PosWrites.WithLabelValues("update").Inc()
		updated = append(updated, toPosDTO(*persisted))
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleGetPos(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("pos id must be an integer: %w", domain.ErrInvalidInput))
		return
	}

	pos, err := s.service.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPosDTO(*pos))
}

func (s *Server) handleClearPos(w http.ResponseWriter, r *http.Request) {
	if err := s.service.Clear(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.metrics.PosWrites.WithLabelValues("clear").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleImportPos(w http.ResponseWriter, r *http.Request) {
	nodeID, err := strconv.ParseInt(r.PathValue("nodeID"), 10, 64)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("osm node id must be an integer: %w", domain.ErrInvalidInput))
		return
	}

	pos, err := s.service.ImportFromOsmNode(r.Context(), nodeID)
	s.metrics.OsmImports.WithLabelValues(importOutcome(err)).Inc()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPosDTO(*pos))
}

// decodePosList reads the request body as a JSON list of posDTO. On failure
// it writes a 400 and reports false.
func (s *Server) decodePosList(w http.ResponseWriter, r *http.Request) ([]posDTO, bool) {
	var dtos []posDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		s.writeError(w, r, fmt.Errorf("malformed json body: %w", domain.ErrInvalidInput))
		return nil, false
	}
	return dtos, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrPosNotFound), errors.Is(err, domain.ErrOsmNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrOsmNodeMissingFields):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDuplicatePosName):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// importOutcome buckets an import result for the osm_imports_total counter.
func importOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrOsmNodeNotFound):
		return "node_not_found"
	case errors.Is(err, domain.ErrOsmNodeMissingFields):
		return "missing_fields"
	case errors.Is(err, domain.ErrDuplicatePosName):
		return "duplicate_name"
	default:
		return "error"
	}
}
