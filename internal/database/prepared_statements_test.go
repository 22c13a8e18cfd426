package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Sans Scylla les accesseurs doivent rendre nil : les handlers se replient
// alors sur une requête ad hoc au lieu de déréférencer un pointeur mort.
func TestPreparedAccessors_NilSansScylla(t *testing.T) {
	t.Setenv("SCYLLA_KS_USERS_KEYSPACE", "")

	InitPreparedStatements()

	assert.Nil(t, GetPreparedGetUserByEmail())
	assert.Nil(t, GetPreparedGetUserByID())
	assert.Nil(t, GetPreparedInsertUser())
	assert.Nil(t, GetPreparedInsertUserByEmail())
}
