package employee

// Employee is a staff member that can be assigned to projects.
type Employee struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Department string `json:"department"`
	Email      string `json:"email"`
}

// Patch holds a partial update. Nil fields are left untouched.
type Patch struct {
	Name       *string
	Title      *string
	Department *string
	Email      *string
}

// Apply overwrites the fields of emp that are set in the patch.
func (p Patch) Apply(emp *Employee) {
	if p.Name != nil {
		emp.Name = *p.Name
	}
	if p.Title != nil {
		emp.Title = *p.Title
	}
	if p.Department != nil {
		emp.Department = *p.Department
	}
	if p.Email != nil {
		emp.Email = *p.Email
	}
}
