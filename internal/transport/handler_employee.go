package transport

import (
	"net/http"
)

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	list, total, err := s.employees.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteList(w, list, total)
}

func (s *Server) getEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	emp, err := s.employees.Get(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, emp)
}

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	var body employeeBody
	if err := decodeBody(w, r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	emp, err := s.employees.Create(r.Context(), body.createRequest())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteData(w, http.StatusCreated, emp)
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	// An unknown employee is a 404 whatever the body holds.
	if _, err := s.employees.Get(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	var body employeeBody
	if err := decodeBody(w, r, &body); err != nil {
		writeBodyError(w, err)
		return
	}

	emp, err := s.employees.Update(r.Context(), id, body.patch())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteData(w, http.StatusOK, emp)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.handleNotFound(w, r)
		return
	}

	if err := s.employees.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	WriteMessage(w, http.StatusOK, "employee deleted")
}
