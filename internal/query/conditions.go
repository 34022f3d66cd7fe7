package query

import (
	"fmt"
	"strings"
	"time"
)

// Conditions accumulates WHERE predicate fragments together with their
// positionally aligned arguments. Filter values only ever travel as bound
// parameters; fragment text never contains caller-supplied strings.
//
// The tombstone predicate is always present and always first. The
// ownership predicate is appended when and only when the actor is not
// elevated.
type Conditions struct {
	alias string
	frags []string
	args  []interface{}
}

// NewConditions starts a predicate set for the given table alias, scoped
// to the actor per the access policy.
func NewConditions(alias string, actor Actor) *Conditions {
	c := &Conditions{alias: alias}
	c.frags = append(c.frags, c.col("deleted_at")+" IS NULL")
	if !actor.Elevated() {
		c.append(c.col("employee_id")+" = $%d", actor.ID)
	}
	return c
}

// DateRange appends lower and upper bound predicates on the date column.
// Either bound may be nil; each is applied independently.
func (c *Conditions) DateRange(start, end *time.Time) *Conditions {
	if start != nil {
		c.append(c.col("date")+" >= $%d", *start)
	}
	if end != nil {
		c.append(c.col("date")+" <= $%d", *end)
	}
	return c
}

// Equal appends an equality predicate when value is non-empty. The column
// name is supplied by the repository, never by the client.
func (c *Conditions) Equal(column, value string) *Conditions {
	if value != "" {
		c.append(c.col(column)+" = $%d", value)
	}
	return c
}

// Search appends a case-insensitive substring predicate across the given
// free-text columns. Only columns the entity actually defines may be
// passed. A single bound argument backs every branch.
func (c *Conditions) Search(term string, columns ...string) *Conditions {
	if term == "" || len(columns) == 0 {
		return c
	}
	idx := len(c.args) + 1
	branches := make([]string, len(columns))
	for i, column := range columns {
		branches[i] = fmt.Sprintf("LOWER(%s) LIKE $%d", c.col(column), idx)
	}
	c.frags = append(c.frags, "("+strings.Join(branches, " OR ")+")")
	c.args = append(c.args, "%"+strings.ToLower(term)+"%")
	return c
}

// Where renders the assembled predicates as a WHERE clause. The set is
// never empty because the tombstone filter is unconditional.
func (c *Conditions) Where() string {
	return "WHERE " + strings.Join(c.frags, " AND ")
}

// Args returns the bound parameters in fragment order.
func (c *Conditions) Args() []interface{} {
	return c.args
}

func (c *Conditions) append(format string, value interface{}) {
	c.args = append(c.args, value)
	c.frags = append(c.frags, fmt.Sprintf(format, len(c.args)))
}

func (c *Conditions) col(name string) string {
	if c.alias == "" {
		return name
	}
	return c.alias + "." + name
}
