package project

// DefaultStatus is assigned to projects created without a status.
const DefaultStatus = "Planning"

// Project groups employees working for a client.
type Project struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Client              string  `json:"client"`
	Status              string  `json:"status"`
	AssignedEmployeeIDs []int64 `json:"assignedEmployeeIds"`
}

// HasEmployee reports whether employeeID is in the assignment list.
func (p *Project) HasEmployee(employeeID int64) bool {
	for _, id := range p.AssignedEmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with p.
func (p *Project) Clone() *Project {
	cp := *p
	cp.AssignedEmployeeIDs = append([]int64{}, p.AssignedEmployeeIDs...)
	return &cp
}

// Patch holds a partial update. Nil fields are left untouched.
type Patch struct {
	Name   *string
	Client *string
	Status *string
}

// Apply overwrites the fields of proj that are set in the patch.
func (p Patch) Apply(proj *Project) {
	if p.Name != nil {
		proj.Name = *p.Name
	}
	if p.Client != nil {
		proj.Client = *p.Client
	}
	if p.Status != nil {
		proj.Status = *p.Status
	}
}
