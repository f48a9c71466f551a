package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ostech/hrconsole/modules/employees/presentation/assets"
	"github.com/ostech/hrconsole/pkg/application"
)

// StaticController serves the embedded stylesheet and any future static
// files under /assets.
type StaticController struct {
	basePath string
}

func NewStaticController() application.Controller {
	return &StaticController{basePath: "/assets"}
}

func (c *StaticController) Key() string {
	return c.basePath
}

func (c *StaticController) Register(r *mux.Router) {
	r.PathPrefix(c.basePath + "/").Handler(
		http.StripPrefix(c.basePath+"/", http.FileServer(http.FS(assets.FS))),
	)
}
