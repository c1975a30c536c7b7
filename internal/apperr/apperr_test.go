package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{Validation("passwords must match"), http.StatusBadRequest},
		{Authentication("incorrect username or password"), http.StatusUnauthorized},
		{Authorization("forbidden resource"), http.StatusForbidden},
		{NotFound("no user found with id 3"), http.StatusNotFound},
		{Conflict("email must be unique"), http.StatusConflict},
		{fmt.Errorf("RegisterUser: %w", Conflict("email must be unique")), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.code, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestMessage(t *testing.T) {
	require.Equal(t, "passwords must match", Message(Validation("passwords must match")))
	require.Equal(t, "email must be unique", Message(fmt.Errorf("wrap: %w", Conflict("email must be unique"))))
	require.Equal(t, "Internal Server Error", Message(errors.New("db down")))
	require.Equal(t, "not found", (&Error{Kind: ErrNotFound}).Error())
	require.ErrorIs(t, NotFound("x"), ErrNotFound)
}
