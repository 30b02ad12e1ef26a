package openapi

import "maps"

// NewComponents returns the components shared by every group: the page request
// shape and the JSON error responses produced by handlers.RespondError.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"limit":  {Type: "integer", Description: "Maximum rows to return", Example: 50},
					"offset": {Type: "integer", Description: "Rows to skip", Example: 0},
					"search": {Type: "string", Description: "Search query"},
					"sort":   {Type: "string", Description: "Comma-separated sort fields. Prefix with - for descending", Example: "name,-submitted_at"},
				},
			},
			"Error": {
				Type:       "object",
				Properties: map[string]*Schema{"error": {Type: "string"}},
				Required:   []string{"error"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":         errorResponse("Invalid request"),
			"NotFound":           errorResponse("Resource not found"),
			"Conflict":           errorResponse("Resource conflict, such as a duplicate sales rep slug"),
			"ServiceUnavailable": errorResponse("A required backing service is not configured"),
		},
	}
}

// AddSchemas merges schemas into the component schemas, replacing same-named entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef("Error")},
		},
	}
}
