package handler

import (
	"net/http"

	"github.com/jax2600/warpstery/internal/api/apierr"
)

func writeError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

func badRequest(w http.ResponseWriter, message string) {
	apierr.WriteError(w, apierr.NewInvalidRequestError(message))
}
