package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateConnectionOncePerPair(t *testing.T) {
	svc := &ConnectionService{Dynamo: newFakeDynamo()}

	connection, err := svc.CreateConnection(context.Background(), "bob", "alice")
	require.NoError(t, err)
	require.NotNil(t, connection)

	assert.Equal(t, "alice#bob", connection.ConnectionID)
	assert.Equal(t, "alice", connection.UserA)
	assert.Equal(t, "bob", connection.UserB)
}

func TestCreateConnectionNeverDuplicated(t *testing.T) {
	svc := &ConnectionService{Dynamo: newFakeDynamo()}

	first, err := svc.CreateConnection(context.Background(), "alice", "bob")
	require.NoError(t, err)

	// Same pair in the opposite order resolves to the same connection
	second, err := svc.CreateConnection(context.Background(), "bob", "alice")
	assert.ErrorIs(t, err, ErrConnectionExists)
	require.NotNil(t, second)
	assert.Equal(t, first.ConnectionID, second.ConnectionID)
}

func TestCreateConnectionRejectsInvalidPair(t *testing.T) {
	svc := &ConnectionService{Dynamo: newFakeDynamo()}

	_, err := svc.CreateConnection(context.Background(), "alice", "alice")
	assert.Error(t, err)

	_, err = svc.CreateConnection(context.Background(), "", "bob")
	assert.Error(t, err)
}
