package shared

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-playground/form"
	"github.com/gorilla/mux"
)

// Decoder is the shared form decoder used for query and form binding.
var Decoder = form.NewDecoder()

var ErrNoID = errors.New("id is missing from the route")

// ParseID extracts the {id} route variable. Directory identifiers are opaque
// server-assigned strings, not integers.
func ParseID(r *http.Request) (string, error) {
	id := mux.Vars(r)["id"]
	if id == "" {
		return "", ErrNoID
	}
	return id, nil
}

// IsHxRequest reports whether the request was issued by HTMX.
func IsHxRequest(r *http.Request) bool {
	return len(r.Header.Get("Hx-Request")) > 0
}

// Redirect issues a redirect that works for both regular and HTMX requests.
// HTMX ignores 3xx responses on boosted elements, so it gets HX-Redirect.
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	if IsHxRequest(r) {
		w.Header().Set("Hx-Redirect", path)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, path, http.StatusFound)
}

// SetFlash stores a one-shot value in a cookie, read back by
// composables.UseFlash on the next request.
func SetFlash(w http.ResponseWriter, name string, value []byte) {
	http.SetCookie(w, &http.Cookie{
		Name:  name,
		Value: base64.URLEncoding.EncodeToString(value),
		Path:  "/",
	})
}

func SetFlashMap[K comparable, V any](w http.ResponseWriter, name string, value map[K]V) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	SetFlash(w, name, b)
	return nil
}
