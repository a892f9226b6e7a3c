package cargorequest_test

import (
	"testing"
	"time"

	"freightflow/internal/core/domain/model/cargorequest"
	"freightflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRequestInStatus(t *testing.T, status cargorequest.Status) *cargorequest.CargoRequest {
	t.Helper()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	request, err := cargorequest.RestoreCargoRequest(
		kernel.NewUUID(), kernel.NewUUID(), status, now, now)
	require.NoError(t, err)
	return request
}

func TestNewCargoRequest(t *testing.T) {
	t.Run("should create request in Pending status", func(t *testing.T) {
		id := kernel.NewUUID()
		ownerID := kernel.NewUUID()

		request, err := cargorequest.NewCargoRequest(id, ownerID)

		require.NoError(t, err)
		require.NotNil(t, request)
		assert.True(t, request.ID().IsEqual(id))
		assert.True(t, request.OwnerID().IsEqual(ownerID))
		assert.Equal(t, cargorequest.Pending, request.Status())
		assert.False(t, request.CreatedAt().IsZero())
		require.NoError(t, request.Validate())
	})

	t.Run("should reject zero-value identifiers", func(t *testing.T) {
		request, err := cargorequest.NewCargoRequest(kernel.UUID{}, kernel.NewUUID())

		require.Error(t, err)
		assert.Nil(t, request)
	})
}

func TestRestoreCargoRequest(t *testing.T) {
	t.Run("should restore request from persistence", func(t *testing.T) {
		request := createRequestInStatus(t, cargorequest.Accepted)

		assert.Equal(t, cargorequest.Accepted, request.Status())
		require.NoError(t, request.Validate())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		now := time.Now().UTC()

		request, err := cargorequest.RestoreCargoRequest(
			kernel.NewUUID(), kernel.NewUUID(), cargorequest.Unknown, now, now)

		require.Error(t, err)
		assert.Nil(t, request)
	})
}

func TestCargoRequest_Validate(t *testing.T) {
	t.Run("should reject request created without constructor", func(t *testing.T) {
		request := &cargorequest.CargoRequest{}

		err := request.Validate()

		require.Error(t, err)
		assert.Equal(t, cargorequest.ErrCargoRequestIsNotConstructed, err)
	})

	t.Run("should reject nil request", func(t *testing.T) {
		var request *cargorequest.CargoRequest

		err := request.Validate()

		require.Error(t, err)
		assert.Equal(t, cargorequest.ErrCargoRequestIsNotConstructed, err)
	})
}

func TestCargoRequest_Accept(t *testing.T) {
	t.Run("should accept a pending request", func(t *testing.T) {
		request := createRequestInStatus(t, cargorequest.Pending)
		before := request.UpdatedAt()

		err := request.Accept()

		require.NoError(t, err)
		assert.Equal(t, cargorequest.Accepted, request.Status())
		assert.True(t, request.UpdatedAt().After(before))
	})

	t.Run("should reject accepting a completed request", func(t *testing.T) {
		request := createRequestInStatus(t, cargorequest.Completed)

		err := request.Accept()

		require.Error(t, err)
		assert.Equal(t, cargorequest.Completed, request.Status())
	})
}

func TestCargoRequest_Complete(t *testing.T) {
	t.Run("should complete an accepted request", func(t *testing.T) {
		request := createRequestInStatus(t, cargorequest.Accepted)

		err := request.Complete()

		require.NoError(t, err)
		assert.Equal(t, cargorequest.Completed, request.Status())
	})

	t.Run("should reject completing a pending request", func(t *testing.T) {
		request := createRequestInStatus(t, cargorequest.Pending)

		err := request.Complete()

		require.Error(t, err)
		assert.Equal(t, cargorequest.Pending, request.Status())
	})
}

func TestCargoRequest_Cancel(t *testing.T) {
	t.Run("should cancel an accepted request", func(t *testing.T) {
		request := createRequestInStatus(t, cargorequest.Accepted)

		err := request.Cancel()

		require.NoError(t, err)
		assert.Equal(t, cargorequest.Cancelled, request.Status())
	})

	t.Run("should reject cancelling a cancelled request", func(t *testing.T) {
		request := createRequestInStatus(t, cargorequest.Cancelled)

		err := request.Cancel()

		require.Error(t, err)
		assert.Equal(t, cargorequest.Cancelled, request.Status())
	})
}
