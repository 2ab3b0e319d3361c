package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBatchScreenRequest_Valid(t *testing.T) {
	req := &BatchScreenRequest{
		ApplicationIDs: []string{uuid.NewString(), uuid.NewString()},
	}

	assert.NoError(t, req.Validate())
}

func TestBatchScreenRequest_EmptyList(t *testing.T) {
	req := &BatchScreenRequest{ApplicationIDs: []string{}}

	assert.Error(t, req.Validate())
}

func TestBatchScreenRequest_MissingList(t *testing.T) {
	req := &BatchScreenRequest{}

	assert.Error(t, req.Validate())
}

func TestBatchScreenRequest_MalformedID(t *testing.T) {
	req := &BatchScreenRequest{
		ApplicationIDs: []string{uuid.NewString(), "not-a-uuid"},
	}

	assert.Error(t, req.Validate())
}
