package evaluations

import (
	"slices"

	"github.com/JaimeStill/assessor/pkg/openapi"
)

var scoreMin, scoreMax = 1.0, 5.0

var spec = struct {
	Create   *openapi.Operation
	Score    *openapi.Operation
	List     *openapi.Operation
	Find     *openapi.Operation
	Search   *openapi.Operation
	Sections *openapi.Operation
	Schemas  map[string]*openapi.Schema
}{
	Create: &openapi.Operation{
		Summary:     "Submit a title officer self-evaluation",
		Description: "Every narrative answer must be at least 50 characters after trimming.",
		RequestBody: openapi.RequestBodyJSON("CreateEvaluation", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Stored evaluation", "Evaluation"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Score: &openapi.Operation{
		Summary:     "Score an evaluation",
		Description: "Overwrites all section scores, executive notes, and scorer.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Evaluation ID")},
		RequestBody: openapi.RequestBodyJSON("ScoreEvaluation", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Scored evaluation", "Evaluation"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	List: &openapi.Operation{
		Summary: "List evaluations",
		Parameters: slices.Concat(openapi.PageParams(), []*openapi.Parameter{
			openapi.QueryParam("company", "string", "Company contains", false),
			openapi.QueryParam("title_officer_name", "string", "Officer name contains", false),
			openapi.QueryParam("status", "string", "submitted or scored", false),
		}),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of evaluations", "EvaluationPage"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find an evaluation",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Evaluation ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Evaluation", "Evaluation"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Search: &openapi.Operation{
		Summary:     "Search evaluations",
		RequestBody: openapi.RequestBodyJSON("PageRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of evaluations", "EvaluationPage"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Sections: &openapi.Operation{
		Summary: "List evaluation sections and questions",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Evaluation sections", "EvaluationSection"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"EvaluationSection": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"key":          {Type: "string"},
				"title":        {Type: "string"},
				"description":  {Type: "string"},
				"score_column": {Type: "string"},
				"questions": {
					Type: "array",
					Items: &openapi.Schema{
						Type: "object",
						Properties: map[string]*openapi.Schema{
							"id":           {Type: "string"},
							"label":        {Type: "string"},
							"instructions": {Type: "string"},
						},
					},
				},
			},
		},
		"CreateEvaluation": {
			Type:     "object",
			Required: []string{"company", "title_officer_name", "title_unit_location", "evaluation_period", "date_completed", "responses"},
			Properties: map[string]*openapi.Schema{
				"company":             {Type: "string"},
				"title_officer_name":  {Type: "string"},
				"title_unit_location": {Type: "string"},
				"evaluation_period":   {Type: "string"},
				"date_completed":      {Type: "string", Format: "date"},
				"responses":           {Type: "object", Description: "Question id to narrative answer"},
			},
		},
		"ScoreEvaluation": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"scores": {
					Type:        "object",
					Description: "Section key to score",
					Properties: map[string]*openapi.Schema{
						"technical_competency":    {Type: "integer", Minimum: &scoreMin, Maximum: &scoreMax},
						"operational_performance": {Type: "integer", Minimum: &scoreMin, Maximum: &scoreMax},
						"customer_communication":  {Type: "integer", Minimum: &scoreMin, Maximum: &scoreMax},
						"leadership":              {Type: "integer", Minimum: &scoreMin, Maximum: &scoreMax},
						"compliance":              {Type: "integer", Minimum: &scoreMin, Maximum: &scoreMax},
						"overall":                 {Type: "integer", Minimum: &scoreMin, Maximum: &scoreMax},
					},
				},
				"executive_notes": {Type: "string"},
				"scored_by":       {Type: "string"},
			},
		},
		"Evaluation": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                  {Type: "string", Format: "uuid"},
				"company":             {Type: "string"},
				"title_officer_name":  {Type: "string"},
				"title_unit_location": {Type: "string"},
				"evaluation_period":   {Type: "string"},
				"date_completed":      {Type: "string", Format: "date"},
				"submitted_at":        {Type: "string", Format: "date-time"},
				"responses":           {Type: "object"},
				"scores":              {Type: "object"},
				"executive_notes":     {Type: "string"},
				"scored_by":           {Type: "string"},
				"scored_at":           {Type: "string", Format: "date-time"},
				"status":              {Type: "string", Enum: []any{StatusSubmitted, StatusScored}},
				"average_score":       {Type: "number"},
			},
		},
		"EvaluationPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":   {Type: "array", Items: openapi.SchemaRef("Evaluation")},
				"total":  {Type: "integer"},
				"limit":  {Type: "integer"},
				"offset": {Type: "integer"},
			},
		},
	},
}
