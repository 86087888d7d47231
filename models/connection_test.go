package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairConnectionIDIsSymmetric(t *testing.T) {
	assert.Equal(t, PairConnectionID("alice", "bob"), PairConnectionID("bob", "alice"))
}

func TestPairConnectionIDOrdersIDs(t *testing.T) {
	assert.Equal(t, "alice#bob", PairConnectionID("bob", "alice"))
}
