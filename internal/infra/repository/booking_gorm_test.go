package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/hammam97-h/barber-booking/internal/models"
)

func TestLockOverlappingIsPlainRowSelect(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	start := time.Date(2026, 9, 14, 10, 0, 0, 0, time.Local)

	var conflicts []models.Appointment
	stmt := lockOverlapping(db, start, start.Add(30*time.Minute), &conflicts).Statement

	sql := strings.ToLower(stmt.SQL.String())

	assert.Contains(t, sql, "for update")

	// Postgres errors out on FOR UPDATE with aggregate functions, so the
	// conflict check must select rows, never count them.
	assert.NotContains(t, sql, "count(")

	assert.Contains(t, sql, "appointment_date <")
	assert.Contains(t, sql, "end_time >")
	assert.Contains(t, sql, "status <>")
}
