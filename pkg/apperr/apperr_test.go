package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/quitute/quitute/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.Validation("bad input"), http.StatusBadRequest},
		{&apperr.InvalidTransitionError{From: "NOVO", To: "FINALIZADO"}, http.StatusBadRequest},
		{apperr.ErrUnavailable, http.StatusBadRequest},
		{apperr.ErrOwnershipMismatch, http.StatusForbidden},
		{apperr.ErrNotFound, http.StatusNotFound},
		{errors.New("database on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, apperr.Status(tc.err), "%v", tc.err)
	}
}

func TestStatusSeesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("dish 7: %w", apperr.ErrUnavailable)
	assert.Equal(t, http.StatusBadRequest, apperr.Status(err))

	err = fmt.Errorf("order 3: %w", apperr.ErrOwnershipMismatch)
	assert.Equal(t, http.StatusForbidden, apperr.Status(err))
}

func TestMessageMasksInternalErrors(t *testing.T) {
	assert.Equal(t, "Internal Server Error", apperr.Message(errors.New("dsn=user:pass@host")))
	assert.Equal(t, "dish unavailable", apperr.Message(apperr.ErrUnavailable))

	terr := &apperr.InvalidTransitionError{From: "NOVO", To: "FINALIZADO"}
	assert.Equal(t, "invalid status transition from NOVO to FINALIZADO", apperr.Message(terr))
}
