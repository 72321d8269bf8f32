package safetystore

import (
	"fmt"
	"strings"

	"github.com/bayviewlabs/safetylens/schema"
)

// Query text is assembled only from the static mapping table, backend
// keywords and strongly-typed integers. User-supplied values are always
// bound as parameters, never interpolated.

// quoteIdent quotes a table or column identifier for the backend. Several
// upstream column names contain spaces (and one a leading digit), so every
// identifier is quoted unconditionally.
func quoteIdent(name string, backend schema.DatabaseBackend) string {
	if backend == schema.MySQLBackend {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// placeholder returns the parameter placeholder at 1-based position n.
func placeholder(n int, backend schema.DatabaseBackend) string {
	if backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// placeholderList returns n comma-separated placeholders starting at 1.
func placeholderList(n int, backend schema.DatabaseBackend) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = placeholder(i+1, backend)
	}
	return strings.Join(parts, ", ")
}

// selectColumn projects one canonical field from a source, emitting a NULL
// literal when the source lacks the column.
func selectColumn(m schema.SourceMapping, field schema.CanonicalField, backend schema.DatabaseBackend) string {
	col := m.Column(field)
	if col == "" {
		return fmt.Sprintf("NULL AS %s", field)
	}
	return fmt.Sprintf("%s AS %s", quoteIdent(col, backend), field)
}

// unifiedProjection builds the UNION ALL of all six sources over the given
// canonical fields. Each arm filters on the per-source conditions produced
// by where (may be empty).
func unifiedProjection(backend schema.DatabaseBackend, fields []schema.CanonicalField, where func(m schema.SourceMapping) []string) string {
	arms := make([]string, 0, len(schema.SourceMappings))
	for _, m := range schema.SourceMappings {
		cols := make([]string, 0, len(fields)+1)
		cols = append(cols, fmt.Sprintf("'%s' AS source_table", m.Table))
		for _, f := range fields {
			cols = append(cols, selectColumn(m, f, backend))
		}

		arm := fmt.Sprintf("SELECT %s FROM %s",
			strings.Join(cols, ", "), quoteIdent(string(m.Table), backend))
		if conds := where(m); len(conds) > 0 {
			arm += " WHERE " + strings.Join(conds, " AND ")
		}
		arms = append(arms, arm)
	}
	return strings.Join(arms, " UNION ALL ")
}

// notNull is a per-source WHERE fragment for a mapped column.
func notNull(m schema.SourceMapping, field schema.CanonicalField, backend schema.DatabaseBackend) string {
	return quoteIdent(m.Column(field), backend) + " IS NOT NULL"
}

// notEmpty also excludes empty strings.
func notEmpty(m schema.SourceMapping, field schema.CanonicalField, backend schema.DatabaseBackend) string {
	col := quoteIdent(m.Column(field), backend)
	return col + " IS NOT NULL AND " + col + " != ''"
}
