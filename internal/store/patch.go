package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// UnknownFieldsError reports payload keys that fall outside a patch allow-list.
// The whole payload is rejected; nothing is partially applied.
type UnknownFieldsError struct {
	Fields []string
}

func (e *UnknownFieldsError) Error() string {
	return "unknown fields: " + strings.Join(e.Fields, ", ")
}

// PatchSpec declares the mutable columns of a resource. Bools lists columns
// stored as booleans whose payload value is coerced to a canonical boolean
// before assignment.
type PatchSpec struct {
	Allowed []string
	Bools   []string
}

// Patch is a parameterized partial-update descriptor: an ordered assignment
// list with positionally matched values. Values are always bound as
// parameters, never interpolated.
type Patch struct {
	columns []string
	values  []any
}

// Build filters a sparse payload against the spec's allow-list. Any key
// outside the list rejects the entire payload, naming the offenders. A key
// present in the payload is applied even when its value is empty or zero;
// only absent keys are skipped.
func (s PatchSpec) Build(payload map[string]any) (Patch, error) {
	var unknown []string
	for key := range payload {
		if !contains(s.Allowed, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Patch{}, &UnknownFieldsError{Fields: unknown}
	}

	var patch Patch
	for _, column := range s.Allowed {
		value, present := payload[column]
		if !present {
			continue
		}
		if contains(s.Bools, column) {
			value = truthy(value)
		}
		patch.columns = append(patch.columns, column)
		patch.values = append(patch.values, value)
	}
	return patch, nil
}

// Empty reports whether the patch carries no assignments. An empty patch is a
// no-op; callers return success without touching storage.
func (p Patch) Empty() bool {
	return len(p.columns) == 0
}

// SQL renders the UPDATE statement and its positional argument list,
// terminated by the row id for the WHERE clause.
func (p Patch) SQL(table, idColumn string, id any) (string, []any) {
	assignments := make([]string, len(p.columns))
	for i, column := range p.columns {
		assignments[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(assignments, ", "), idColumn, len(p.columns)+1,
	)
	args := make([]any, 0, len(p.values)+1)
	args = append(args, p.values...)
	args = append(args, id)
	return query, args
}

// execPatch runs a non-empty patch against the given table and maps a zero
// row count to ErrNotFound.
func execPatch(ctx context.Context, db *sql.DB, table, idColumn string, id any, patch Patch) error {
	if patch.Empty() {
		return nil
	}
	query, args := patch.SQL(table, idColumn, id)
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}

// truthy mirrors the coercion applied to boolean flag columns: any non-zero,
// non-empty value counts as true.
func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s != "" && s != "0" && s != "false"
	case nil:
		return false
	default:
		return true
	}
}
