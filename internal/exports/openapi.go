package exports

import "github.com/JaimeStill/assessor/pkg/openapi"

func csvResponse(description string) *openapi.Response {
	return &openapi.Response{
		Description: description,
		Content: map[string]*openapi.MediaType{
			"text/csv": {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
		},
	}
}

func keyParam() *openapi.Parameter {
	return openapi.StringPathParam("key", "Archive blob key, beginning with exports/")
}

func datasetParam() *openapi.Parameter {
	p := openapi.StringPathParam("dataset", "Export dataset")
	p.Schema.Enum = []any{"client-responses", "evaluations", "responses"}
	return p
}

var spec = struct {
	Datasets        *openapi.Operation
	Download        *openapi.Operation
	Archive         *openapi.Operation
	ListArchives    *openapi.Operation
	DownloadArchive *openapi.Operation
	DeleteArchive   *openapi.Operation
	Schemas         map[string]*openapi.Schema
}{
	Datasets: &openapi.Operation{
		Summary: "List exportable datasets",
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Dataset names",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}},
				},
			},
		},
	},
	Download: &openapi.Operation{
		Summary:    "Download a dataset as CSV",
		Parameters: []*openapi.Parameter{datasetParam()},
		Responses: map[int]*openapi.Response{
			200: csvResponse("CSV with one column per stored field"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Archive: &openapi.Operation{
		Summary:    "Write a dataset CSV to blob storage",
		Parameters: []*openapi.Parameter{datasetParam()},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Archived export", "ExportArchive"),
			404: openapi.ResponseRef("NotFound"),
			503: {Description: "Blob storage is not configured"},
		},
	},
	ListArchives: &openapi.Operation{
		Summary: "List archived exports",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("dataset", "string", "Restrict to one dataset", false),
			openapi.QueryParam("marker", "string", "Continuation marker from a previous page", false),
			openapi.QueryParam("max_results", "integer", "Maximum blobs to return", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Archived exports", "BlobList"),
			400: openapi.ResponseRef("BadRequest"),
			503: {Description: "Blob storage is not configured"},
		},
	},
	DownloadArchive: &openapi.Operation{
		Summary:    "Download an archived export",
		Parameters: []*openapi.Parameter{keyParam()},
		Responses: map[int]*openapi.Response{
			200: csvResponse("Archived CSV"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	DeleteArchive: &openapi.Operation{
		Summary:    "Delete an archived export",
		Parameters: []*openapi.Parameter{keyParam()},
		Responses: map[int]*openapi.Response{
			204: {Description: "Archive deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Schemas: map[string]*openapi.Schema{
		"ExportArchive": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"key":        {Type: "string", Example: "exports/responses/20260115T093000Z.csv"},
				"dataset":    {Type: "string"},
				"rows":       {Type: "integer"},
				"size":       {Type: "integer", Description: "CSV size in bytes"},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"BlobMeta": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"key":            {Type: "string"},
				"content_type":   {Type: "string"},
				"content_length": {Type: "integer"},
				"last_modified":  {Type: "string", Format: "date-time"},
			},
		},
		"BlobList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"blobs":       {Type: "array", Items: openapi.SchemaRef("BlobMeta")},
				"next_marker": {Type: "string"},
			},
		},
	},
}
