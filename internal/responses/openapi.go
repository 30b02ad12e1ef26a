package responses

import (
	"slices"

	"github.com/JaimeStill/assessor/pkg/openapi"
)

var spec = struct {
	Submit  *openapi.Operation
	List    *openapi.Operation
	Find    *openapi.Operation
	Search  *openapi.Operation
	Schemas map[string]*openapi.Schema
}{
	Submit: &openapi.Operation{
		Summary:     "Submit a capability survey",
		RequestBody: openapi.RequestBodyJSON("SubmitResponse", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Submission receipt with scores", "Receipt"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	List: &openapi.Operation{
		Summary: "List survey responses",
		Parameters: slices.Concat(openapi.PageParams(), []*openapi.Parameter{
			openapi.QueryParam("respondent_name", "string", "Respondent name contains", false),
			openapi.QueryParam("respondent_email", "string", "Respondent email contains", false),
		}),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of responses", "ResponsePage"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a survey response",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Response ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Survey response", "Response"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search survey responses",
		RequestBody: openapi.RequestBodyJSON("PageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of responses", "ResponsePage"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"SubmitResponse": {
			Type:     "object",
			Required: []string{"respondent_name", "respondent_email"},
			Properties: map[string]*openapi.Schema{
				"respondent_name":    {Type: "string"},
				"respondent_email":   {Type: "string"},
				"responses":          {Type: "object"},
				"confidence_ratings": {Type: "object"},
			},
		},
		"Scores": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"capability":     {Type: "integer", Example: 67},
				"capability_raw": {Type: "string", Example: "22/33"},
				"confidence":     {Type: "string", Example: "3.3"},
			},
		},
		"Receipt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":           {Type: "string", Format: "uuid"},
				"submitted_at": {Type: "string", Format: "date-time"},
				"scores":       openapi.SchemaRef("Scores"),
			},
		},
		"Response": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                   {Type: "string", Format: "uuid"},
				"respondent_name":      {Type: "string"},
				"respondent_email":     {Type: "string"},
				"submitted_at":         {Type: "string", Format: "date-time"},
				"capability_score":     {Type: "number"},
				"avg_confidence_score": {Type: "number"},
				"responses":            {Type: "object"},
				"confidence_ratings":   {Type: "object"},
			},
		},
		"ResponsePage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":   {Type: "array", Items: openapi.SchemaRef("Response")},
				"total":  {Type: "integer"},
				"limit":  {Type: "integer"},
				"offset": {Type: "integer"},
			},
		},
	},
}
