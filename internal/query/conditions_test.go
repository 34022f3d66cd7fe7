package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/dayflow-go-api/internal/models"
)

func TestConditionsTombstoneAlwaysFirst(t *testing.T) {
	c := NewConditions("wl", Actor{ID: "hr-1", Role: models.RoleHR})

	assert.Equal(t, "WHERE wl.deleted_at IS NULL", c.Where())
	assert.Empty(t, c.Args())
}

func TestConditionsOwnershipForEmployee(t *testing.T) {
	c := NewConditions("wl", Actor{ID: "emp-1", Role: models.RoleEmployee})

	assert.Equal(t, "WHERE wl.deleted_at IS NULL AND wl.employee_id = $1", c.Where())
	assert.Equal(t, []interface{}{"emp-1"}, c.Args())
}

func TestConditionsNoOwnershipForElevated(t *testing.T) {
	for _, role := range []models.Role{models.RoleManager, models.RoleHR} {
		c := NewConditions("m", Actor{ID: "a-1", Role: role})
		assert.NotContains(t, c.Where(), "employee_id", "role %s", role)
	}
}

func TestConditionsDateRangeIndependentBounds(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	c := NewConditions("wl", Actor{ID: "emp-1", Role: models.RoleEmployee}).DateRange(&start, &end)
	assert.Equal(t, "WHERE wl.deleted_at IS NULL AND wl.employee_id = $1 AND wl.date >= $2 AND wl.date <= $3", c.Where())
	assert.Equal(t, []interface{}{"emp-1", start, end}, c.Args())

	onlyEnd := NewConditions("wl", Actor{ID: "hr-1", Role: models.RoleHR}).DateRange(nil, &end)
	assert.Equal(t, "WHERE wl.deleted_at IS NULL AND wl.date <= $1", onlyEnd.Where())
	assert.Equal(t, []interface{}{end}, onlyEnd.Args())
}

func TestConditionsEqualSkipsEmptyValue(t *testing.T) {
	c := NewConditions("wl", Actor{ID: "hr-1", Role: models.RoleHR}).Equal("status", "")
	assert.Equal(t, "WHERE wl.deleted_at IS NULL", c.Where())

	c = NewConditions("wl", Actor{ID: "hr-1", Role: models.RoleHR}).Equal("status", "completed")
	assert.Equal(t, "WHERE wl.deleted_at IS NULL AND wl.status = $1", c.Where())
	assert.Equal(t, []interface{}{"completed"}, c.Args())
}

func TestConditionsSearchSingleArgManyColumns(t *testing.T) {
	c := NewConditions("wl", Actor{ID: "emp-1", Role: models.RoleEmployee}).
		Search("Review", "task_description", "comments")

	assert.Equal(t,
		"WHERE wl.deleted_at IS NULL AND wl.employee_id = $1 AND (LOWER(wl.task_description) LIKE $2 OR LOWER(wl.comments) LIKE $2)",
		c.Where())
	assert.Equal(t, []interface{}{"emp-1", "%review%"}, c.Args())
}

func TestConditionsSearchTermNeverInterpolated(t *testing.T) {
	hostile := "'; DROP TABLE work_logs; --"
	c := NewConditions("wl", Actor{ID: "hr-1", Role: models.RoleHR}).Search(hostile, "task_description")

	assert.NotContains(t, c.Where(), "DROP TABLE")
	assert.Equal(t, []interface{}{"%'; drop table work_logs; --%"}, c.Args())
}

func TestConditionsArgCountMatchesPlaceholders(t *testing.T) {
	start := time.Now()
	c := NewConditions("m", Actor{ID: "emp-1", Role: models.RoleEmployee}).
		DateRange(&start, nil).
		Equal("mood", "happy").
		Search("tired", "feedback")

	where := c.Where()
	for i := 1; i <= len(c.Args()); i++ {
		assert.Contains(t, where, "$"+string(rune('0'+i)))
	}
	assert.Len(t, c.Args(), 4)
}
