package server

import (
	"net/http"
	"strconv"

	"todo-manager/internal/auth"
	"todo-manager/internal/domain"
	"todo-manager/internal/services"
)

// handleListTasks serves GET /tasks with limit, offset and completed filters
func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filters := services.ListFilters{}
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		filters.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		filters.Offset = offset
	}
	if raw := query.Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "completed must be true or false")
			return
		}
		filters.Completed = &completed
	}

	tasks, err := s.tasks.List(r.Context(), actor, filters)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// handleCreateTask serves POST /tasks
func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var in domain.TaskInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := s.tasks.Create(r.Context(), actor, in)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// handleGetTask serves GET /tasks/{id}
func (s *Server) handleGetTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}

	task, err := s.tasks.Get(r.Context(), actor, id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// handleUpdateTask serves PUT /tasks/{id} with partial-update semantics:
// only fields present in the body are changed.
func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}

	var in domain.TaskUpdateInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := s.tasks.Update(r.Context(), actor, id, in)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// handleDeleteTask serves DELETE /tasks/{id}
func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}

	if err := s.tasks.Delete(r.Context(), actor, id); err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Task deleted successfully"})
}

// handleToggleTask serves PATCH /tasks/{id}/toggle-complete
func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, ok := taskID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}

	task, err := s.tasks.ToggleComplete(r.Context(), actor, id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// taskID extracts and parses the {id} path value. A non-numeric or
// non-positive id behaves exactly like a missing task.
func taskID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
