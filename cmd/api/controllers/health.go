package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	traits "github.com/shadowbane/nautic/pkg/traits/controller-traits"
)

func Health() httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		traits.WriteResponse(w, map[string]bool{"ok": true})
	}
}
