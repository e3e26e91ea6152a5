package transport

import (
	"net/http"
)

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	list, total, err := s.projects.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteList(w, list, total)
}

func (s *Server) getProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	proj, err := s.projects.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, proj)
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var body createProjectBody
	if err := decodeBody(w, r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	proj, err := s.projects.Create(r.Context(), body.createRequest())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteData(w, http.StatusCreated, proj)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	if _, err := s.projects.Get(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	var body updateProjectBody
	if err := decodeBody(w, r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	proj, err := s.projects.Update(r.Context(), id, body.patch())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, proj)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	if err := s.projects.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteMessage(w, http.StatusOK, "project deleted")
}

func (s *Server) assignEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	if _, err := s.projects.Get(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	var body assignBody
	if err := decodeBody(w, r, &body); err != nil {
		writeBodyError(w, err)
		return
	}
	if body.EmployeeID == nil {
		WriteError(w, http.StatusBadRequest, "employeeId is required")
		return
	}

	proj, err := s.projects.Assign(r.Context(), id, *body.EmployeeID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, proj)
}

func (s *Server) listProjectEmployees(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	list, err := s.projects.ListEmployees(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteList(w, list, len(list))
}
