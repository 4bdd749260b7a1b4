package repository

import "strings"

// setBuilder accumulates SET clauses for partial updates. Only columns
// explicitly added end up in the statement, so absent fields are left
// untouched. updated_at is stamped by the repo that builds the query.
type setBuilder struct {
	cols []string
	args []any
}

func (b *setBuilder) add(col string, v any) {
	b.cols = append(b.cols, col+" = ?")
	b.args = append(b.args, v)
}

func (b *setBuilder) empty() bool { return len(b.cols) == 0 }

func (b *setBuilder) clause() string { return strings.Join(b.cols, ", ") }
