package salesreps

import (
	"slices"

	"github.com/JaimeStill/assessor/pkg/openapi"
)

var spec = struct {
	List       *openapi.Operation
	Find       *openapi.Operation
	FindBySlug *openapi.Operation
	Create     *openapi.Operation
	Search     *openapi.Operation
	Update     *openapi.Operation
	Deactivate *openapi.Operation
	Schemas    map[string]*openapi.Schema
}{
	List: &openapi.Operation{
		Summary: "List sales reps",
		Parameters: slices.Concat(openapi.PageParams(), []*openapi.Parameter{
			openapi.QueryParam("active", "boolean", "Set false to include inactive reps", false),
			openapi.QueryParam("name", "string", "Name contains", false),
			openapi.QueryParam("email", "string", "Email contains", false),
		}),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of sales reps", "SalesRepPage"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a sales rep",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Sales rep ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Sales rep", "SalesRep"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	FindBySlug: &openapi.Operation{
		Summary:    "Find a sales rep by survey link slug",
		Parameters: []*openapi.Parameter{openapi.StringPathParam("slug", "Survey link slug")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Sales rep", "SalesRep"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Add a sales rep",
		RequestBody: openapi.RequestBodyJSON("CreateSalesRep", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created sales rep", "SalesRep"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search sales reps",
		RequestBody: openapi.RequestBodyJSON("PageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of sales reps", "SalesRepPage"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update a sales rep; a name change regenerates the slug",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Sales rep ID")},
		RequestBody: openapi.RequestBodyJSON("UpdateSalesRep", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated sales rep", "SalesRep"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Deactivate: &openapi.Operation{
		Summary:    "Deactivate a sales rep",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Sales rep ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Deactivated sales rep", "SalesRep"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"SalesRep": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"slug":        {Type: "string"},
				"email":       {Type: "string"},
				"phone":       {Type: "string"},
				"title":       {Type: "string"},
				"is_active":   {Type: "boolean"},
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
				"survey_path": {Type: "string", Example: "/client/jane-doe"},
			},
		},
		"SalesRepPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":   {Type: "array", Items: openapi.SchemaRef("SalesRep")},
				"total":  {Type: "integer"},
				"limit":  {Type: "integer"},
				"offset": {Type: "integer"},
			},
		},
		"CreateSalesRep": {
			Type:     "object",
			Required: []string{"name", "email"},
			Properties: map[string]*openapi.Schema{
				"name":  {Type: "string"},
				"email": {Type: "string"},
				"phone": {Type: "string"},
				"title": {Type: "string"},
			},
		},
		"UpdateSalesRep": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":      {Type: "string"},
				"email":     {Type: "string"},
				"phone":     {Type: "string"},
				"title":     {Type: "string"},
				"is_active": {Type: "boolean"},
			},
		},
	},
}
