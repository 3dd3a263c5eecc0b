package database

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The deletion graph and uniqueness rules live in the migration DDL, not in
// application code, so the schema file itself is the thing to assert against.

func readInitSchema(t *testing.T) string {
	t.Helper()
	path := filepath.Join("..", "..", "..", "db", "migrations", "000001_init_schema.up.sql")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// columnClause returns the single DDL line declaring the column inside the
// table's CREATE TABLE block.
func columnClause(t *testing.T, ddl, table, column string) string {
	t.Helper()
	tablePattern := regexp.MustCompile(`(?s)CREATE TABLE ` + table + ` \((.*?)\n\);`)
	match := tablePattern.FindStringSubmatch(ddl)
	require.NotNil(t, match, "CREATE TABLE %s not found", table)

	for _, line := range strings.Split(match[1], "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), column+" ") {
			return line
		}
	}
	t.Fatalf("column %s not found in table %s", column, table)
	return ""
}

func TestSchemaCascadeRules(t *testing.T) {
	ddl := readInitSchema(t)

	// Deleting a hospital removes its clinics and patients.
	assert.Contains(t, columnClause(t, ddl, "clinics", "hospital_id"),
		"REFERENCES hospitals (id) ON DELETE CASCADE")
	assert.Contains(t, columnClause(t, ddl, "patients", "hospital_id"),
		"REFERENCES hospitals (id) ON DELETE CASCADE")

	// Deleting a patient removes their visit records.
	assert.Contains(t, columnClause(t, ddl, "patient_records", "patient_id"),
		"REFERENCES patients (id) ON DELETE CASCADE")

	// Deleting a user removes the rows that made it a hospital, a doctor or
	// a hospital admin.
	assert.Contains(t, columnClause(t, ddl, "hospitals", "user_id"),
		"REFERENCES users (id) ON DELETE CASCADE")
	assert.Contains(t, columnClause(t, ddl, "doctors", "user_id"),
		"REFERENCES users (id) ON DELETE CASCADE")
	assert.Contains(t, columnClause(t, ddl, "hospital_admins", "user_id"),
		"REFERENCES users (id) ON DELETE CASCADE")
	assert.Contains(t, columnClause(t, ddl, "hospital_admins", "hospital_id"),
		"REFERENCES hospitals (id) ON DELETE CASCADE")
}

func TestSchemaSetNullRules(t *testing.T) {
	ddl := readInitSchema(t)

	// Deleting a clinic releases its doctors instead of deleting them.
	assert.Contains(t, columnClause(t, ddl, "doctors", "clinic_id"),
		"REFERENCES clinics (id) ON DELETE SET NULL")

	// Deleting a doctor keeps the visit history, unattributed.
	assert.Contains(t, columnClause(t, ddl, "patient_records", "doctor_id"),
		"REFERENCES doctors (id) ON DELETE SET NULL")

	// Audit entries outlive the acting user.
	assert.Contains(t, columnClause(t, ddl, "audit_logs", "user_id"),
		"REFERENCES users (id) ON DELETE SET NULL")
}

func TestSchemaUniquenessConstraints(t *testing.T) {
	ddl := readInitSchema(t)

	assert.Contains(t, columnClause(t, ddl, "users", "username"), "UNIQUE")
	assert.Contains(t, columnClause(t, ddl, "patients", "mr_number"), "UNIQUE")
	assert.Contains(t, columnClause(t, ddl, "clinics", "registration_number"), "UNIQUE")

	// One capability row per user, one hospital credential per user.
	assert.Contains(t, columnClause(t, ddl, "doctors", "user_id"), "UNIQUE")
	assert.Contains(t, columnClause(t, ddl, "hospital_admins", "user_id"), "UNIQUE")
	assert.Contains(t, columnClause(t, ddl, "hospitals", "user_id"), "UNIQUE")
}

func TestSchemaValueChecks(t *testing.T) {
	ddl := readInitSchema(t)

	assert.Contains(t, columnClause(t, ddl, "patients", "mr_number"),
		"CHECK (char_length(mr_number) >= 5)")
	assert.Contains(t, columnClause(t, ddl, "patients", "gender"),
		"CHECK (gender IN ('M', 'F', 'O'))")
}

func TestDownMigrationDropsEverything(t *testing.T) {
	path := filepath.Join("..", "..", "..", "db", "migrations", "000001_init_schema.down.sql")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	down := string(data)

	for _, table := range []string{
		"audit_logs", "hospital_admins", "patient_records", "patients",
		"doctors", "clinics", "hospitals", "users",
	} {
		assert.Contains(t, down, "DROP TABLE IF EXISTS "+table)
	}
}
