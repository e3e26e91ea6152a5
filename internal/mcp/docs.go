package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `workforce manages employees and projects, and which employees are assigned to which project.

- Employees and projects are identified by integer ids. Ids are never reused after a delete.
- create_employee needs name, title, department and email. update_employee changes only the fields you pass.
- create_project needs name and client; status defaults to "Planning".
- assign_employee is idempotent: assigning the same employee twice keeps a single entry.
- Deleting an employee does not remove it from project assignment lists; list_project_employees only returns employees that still exist.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "workforce://overview",
		Name:        "overview",
		Title:       "Workforce overview",
		Description: "Data model and tool usage for the workforce server",
		Content: `# Workforce

## Employee
| field | type | notes |
|---|---|---|
| id | integer | assigned on creation |
| name, title, department, email | string | required on creation |

## Project
| field | type | notes |
|---|---|---|
| id | integer | assigned on creation |
| name, client | string | required on creation |
| status | string | defaults to "Planning" |
| assignedEmployeeIds | integer[] | no duplicates; every id existed when it was added |

## Tools
- Employees: list_employees, get_employee, create_employee, update_employee, delete_employee
- Projects: list_projects, get_project, create_project, update_project, delete_project
- Assignment: assign_employee, list_project_employees

The same operations are available over REST under /api/empleados and /api/proyectos.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
