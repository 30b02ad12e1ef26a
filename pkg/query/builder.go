package query

import (
	"fmt"
	"reflect"
	"strings"
)

// SortField is one ORDER BY term. Field is a view property name resolved
// through the ProjectionMap.
type SortField struct {
	Field      string
	Descending bool
}

// Builder accumulates WHERE conditions and ordering for a single projection.
// Placeholders are numbered as conditions are added, so every Build variant
// shares one argument list.
type Builder struct {
	projection  *ProjectionMap
	where       []string
	args        []any
	sort        []SortField
	defaultSort []SortField
}

// NewBuilder starts a query over projection. defaultSort applies when no
// requested sort field resolves.
func NewBuilder(projection *ProjectionMap, defaultSort ...SortField) *Builder {
	return &Builder{projection: projection, defaultSort: defaultSort}
}

// ParseSortFields reads "name,-submitted_at" style input. A leading "-" sorts descending.
func ParseSortFields(s string) []SortField {
	var fields []SortField
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, desc := strings.CutPrefix(part, "-")
		fields = append(fields, SortField{Field: name, Descending: desc})
	}
	return fields
}

// Build returns SELECT with conditions and ordering.
func (b *Builder) Build() (string, []any) {
	return fmt.Sprintf("SELECT %s FROM %s%s%s",
		b.projection.Columns(), b.projection.From(), b.whereClause(), b.orderClause()), b.args
}

// BuildCount returns SELECT COUNT(*) with the same conditions.
func (b *Builder) BuildCount() (string, []any) {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", b.projection.From(), b.whereClause()), b.args
}

// BuildPage returns Build with LIMIT and OFFSET appended.
func (b *Builder) BuildPage(limit, offset int) (string, []any) {
	sql, args := b.Build()
	return fmt.Sprintf("%s LIMIT %d OFFSET %d", sql, limit, offset), args
}

// BuildSingle selects one row by idField, ignoring any accumulated conditions.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(), b.projection.From(), b.projection.Column(idField)), []any{id}
}

// OrderByFields replaces the requested sort. Fields the projection cannot resolve are dropped.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.sort = fields
	return b
}

// WhereContains adds a case-insensitive substring match. Nil or empty values
// are skipped. % and _ in value match literally.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	return b.add("%s ILIKE %s", b.projection.Column(field), containsPattern(*value))
}

// WhereEquals adds field = value. Nil values, including typed nil pointers, are skipped.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if isNil(value) {
		return b
	}
	return b.add("%s = %s", b.projection.Column(field), value)
}

// WhereNullable adds field = value, or field IS NULL when value is nil.
func (b *Builder) WhereNullable(field string, value any) *Builder {
	if isNil(value) {
		b.where = append(b.where, b.projection.Column(field)+" IS NULL")
		return b
	}
	return b.WhereEquals(field, value)
}

// WhereNotNull adds field IS NOT NULL.
func (b *Builder) WhereNotNull(field string) *Builder {
	b.where = append(b.where, b.projection.Column(field)+" IS NOT NULL")
	return b
}

// WhereSearch ORs a substring match across fields. Nil or empty search is
// skipped. Wildcards in search match literally, as in WhereContains.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	pattern := containsPattern(*search)
	terms := make([]string, len(fields))
	for i, field := range fields {
		terms[i] = fmt.Sprintf("%s ILIKE %s", b.projection.Column(field), b.bind(pattern))
	}
	b.where = append(b.where, "("+strings.Join(terms, " OR ")+")")
	return b
}

// add appends a two-operand condition, binding value to the next placeholder.
func (b *Builder) add(format, column string, value any) *Builder {
	b.where = append(b.where, fmt.Sprintf(format, column, b.bind(value)))
	return b
}

func (b *Builder) bind(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

// likeEscaper escapes LIKE metacharacters using PostgreSQL's default escape
// character, the backslash.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (b *Builder) whereClause() string {
	if len(b.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.where, " AND ")
}

func (b *Builder) orderClause() string {
	fields := b.resolved()
	if len(fields) == 0 {
		fields = b.defaultSort
	}
	if len(fields) == 0 {
		return ""
	}

	terms := make([]string, len(fields))
	for i, f := range fields {
		dir := "ASC"
		if f.Descending {
			dir = "DESC"
		}
		terms[i] = b.projection.Column(f.Field) + " " + dir
	}
	return " ORDER BY " + strings.Join(terms, ", ")
}

// resolved maps requested sort fields onto projected properties, which keeps
// caller-supplied text out of ORDER BY.
func (b *Builder) resolved() []SortField {
	kept := make([]SortField, 0, len(b.sort))
	for _, f := range b.sort {
		if name, ok := b.projection.Resolve(f.Field); ok {
			kept = append(kept, SortField{Field: name, Descending: f.Descending})
		}
	}
	return kept
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Placeholders returns n comma-separated positional parameters starting at $start.
func Placeholders(start, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(parts, ", ")
}
