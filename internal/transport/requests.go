package transport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rpggio/workforce/internal/domain/employee"
	"github.com/rpggio/workforce/internal/domain/project"
)

// maxBodyBytes caps request bodies; payloads here are a handful of strings.
const maxBodyBytes = 1 << 20

// Pointer fields distinguish an absent key (nil) from an empty value.

type employeeBody struct {
	Name       *string `json:"name"`
	Title      *string `json:"title"`
	Department *string `json:"department"`
	Email      *string `json:"email"`
}

func (b employeeBody) createRequest() employee.CreateRequest {
	return employee.CreateRequest{Name: b.Name, Title: b.Title, Department: b.Department, Email: b.Email}
}

func (b employeeBody) patch() employee.Patch {
	return employee.Patch{Name: b.Name, Title: b.Title, Department: b.Department, Email: b.Email}
}

type createProjectBody struct {
	Name                *string `json:"name"`
	Client              *string `json:"client"`
	Status              *string `json:"status"`
	AssignedEmployeeIDs []int64 `json:"assignedEmployeeIds"`
}

func (b createProjectBody) createRequest() project.CreateRequest {
	return project.CreateRequest{
		Name:                b.Name,
		Client:              b.Client,
		Status:              b.Status,
		AssignedEmployeeIDs: b.AssignedEmployeeIDs,
	}
}

type updateProjectBody struct {
	Name   *string `json:"name"`
	Client *string `json:"client"`
	Status *string `json:"status"`
}

func (b updateProjectBody) patch() project.Patch {
	return project.Patch{Name: b.Name, Client: b.Client, Status: b.Status}
}

type assignBody struct {
	EmployeeID *int64 `json:"employeeId"`
}

var errEmptyBody = errors.New("request body is empty")

// decodeBody reads the request body, which must hold exactly one JSON object,
// into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errEmptyBody
	}
	if data[0] != '{' {
		return errors.New("decode body: not a JSON object")
	}
	// Unmarshal rejects anything after the object.
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// pathID parses the {id} URL parameter. The route pattern only admits digits,
// so a failure here means the value overflows int64.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func writeBodyError(w http.ResponseWriter, err error) {
	message := msgInvalidBody
	if errors.Is(err, errEmptyBody) {
		message = "request body is required"
	}
	WriteError(w, http.StatusBadRequest, message)
}
