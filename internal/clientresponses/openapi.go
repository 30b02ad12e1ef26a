package clientresponses

import (
	"slices"

	"github.com/JaimeStill/assessor/pkg/openapi"
)

var spec = struct {
	Submit    *openapi.Operation
	List      *openapi.Operation
	Find      *openapi.Operation
	Search    *openapi.Operation
	Timelines *openapi.Operation
	Needs     *openapi.Operation
	Schemas   map[string]*openapi.Schema
}{
	Submit: &openapi.Operation{
		Summary:     "Submit a client survey through a sales rep link",
		RequestBody: openapi.RequestBodyJSON("SubmitClientResponse", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Submission receipt with scores", "Receipt"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	List: &openapi.Operation{
		Summary: "List client responses",
		Parameters: slices.Concat(openapi.PageParams(), []*openapi.Parameter{
			openapi.QueryParam("rep", "string", "Sales rep slug", false),
			openapi.QueryParam("client_name", "string", "Client name contains", false),
			openapi.QueryParam("client_email", "string", "Client email contains", false),
		}),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of client responses", "ClientResponsePage"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a client response",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Client response ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Client response", "ClientResponse"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search client responses",
		RequestBody: openapi.RequestBodyJSON("PageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of client responses", "ClientResponsePage"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Timelines: &openapi.Operation{
		Summary: "List timeline choices",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Timeline choices",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}},
				},
			},
		},
	},
	Needs: &openapi.Operation{
		Summary: "List needs assessment options",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Needs assessment options", "NeedOption"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"NeedOption": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"key":   {Type: "string"},
				"label": {Type: "string"},
			},
		},
		"Needs": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title_search":      {Type: "boolean"},
				"escrow_services":   {Type: "boolean"},
				"property_profiles": {Type: "boolean"},
				"farm_lists":        {Type: "boolean"},
				"direct_mail":       {Type: "boolean"},
				"mobile_app":        {Type: "boolean"},
				"training":          {Type: "boolean"},
				"other":             {Type: "string"},
				"timeline":          {Type: "string"},
				"additional_notes":  {Type: "string"},
			},
		},
		"SubmitClientResponse": {
			Type:     "object",
			Required: []string{"sales_rep_slug", "client_name", "client_email"},
			Properties: map[string]*openapi.Schema{
				"sales_rep_slug":     {Type: "string"},
				"client_name":        {Type: "string"},
				"client_email":       {Type: "string"},
				"client_phone":       {Type: "string"},
				"client_company":     {Type: "string"},
				"needs_assessment":   openapi.SchemaRef("Needs"),
				"responses":          {Type: "object"},
				"confidence_ratings": {Type: "object"},
			},
		},
		"ClientResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                   {Type: "string", Format: "uuid"},
				"sales_rep_id":         {Type: "string", Format: "uuid"},
				"sales_rep_slug":       {Type: "string"},
				"sales_rep_name":       {Type: "string"},
				"sales_rep_email":      {Type: "string"},
				"client_name":          {Type: "string"},
				"client_email":         {Type: "string"},
				"client_phone":         {Type: "string"},
				"client_company":       {Type: "string"},
				"needs_assessment":     openapi.SchemaRef("Needs"),
				"submitted_at":         {Type: "string", Format: "date-time"},
				"capability_score":     {Type: "number"},
				"avg_confidence_score": {Type: "number"},
				"responses":            {Type: "object"},
				"confidence_ratings":   {Type: "object"},
			},
		},
		"ClientResponsePage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":   {Type: "array", Items: openapi.SchemaRef("ClientResponse")},
				"total":  {Type: "integer"},
				"limit":  {Type: "integer"},
				"offset": {Type: "integer"},
			},
		},
	},
}
