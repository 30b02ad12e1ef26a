package openapi

const jsonContent = "application/json"

func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func ResponseRef(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

// RequestBodyJSON documents a JSON body of the named component schema.
func RequestBodyJSON(schemaName string, required bool) *RequestBody {
	return &RequestBody{
		Required: required,
		Content:  map[string]*MediaType{jsonContent: {Schema: SchemaRef(schemaName)}},
	}
}

// ResponseJSON documents a JSON response of the named component schema.
func ResponseJSON(description, schemaName string) *Response {
	return &Response{
		Description: description,
		Content:     map[string]*MediaType{jsonContent: {Schema: SchemaRef(schemaName)}},
	}
}

// ResponseArray documents a JSON array of the named component schema.
func ResponseArray(description, schemaName string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			jsonContent: {Schema: &Schema{Type: "array", Items: SchemaRef(schemaName)}},
		},
	}
}

// PathParam documents a required UUID path segment.
func PathParam(name, description string) *Parameter {
	p := StringPathParam(name, description)
	p.Schema.Format = "uuid"
	return p
}

// StringPathParam documents a required free-form path segment such as a slug or blob key.
func StringPathParam(name, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "path",
		Required:    true,
		Description: description,
		Schema:      &Schema{Type: "string"},
	}
}

func QueryParam(name, typ, description string, required bool) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "query",
		Required:    required,
		Description: description,
		Schema:      &Schema{Type: typ},
	}
}

// PageParams returns the limit, offset, search, and sort parameters every list endpoint accepts.
func PageParams() []*Parameter {
	return []*Parameter{
		QueryParam("limit", "integer", "Maximum rows to return", false),
		QueryParam("offset", "integer", "Rows to skip", false),
		QueryParam("search", "string", "Search query", false),
		QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
	}
}
