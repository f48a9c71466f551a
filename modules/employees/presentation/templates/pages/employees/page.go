package employees

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/go-faster/errors"

	"github.com/ostech/hrconsole/modules/employees/presentation/viewmodels"
)

//go:embed *.gohtml
var files embed.FS

// Page numbers are zero based internally and one based on screen.
var pages = template.Must(template.New("employees").Funcs(template.FuncMap{
	"prevPage":  func(p int) int { return p - 1 },
	"nextPage":  func(p int) int { return p + 1 },
	"humanPage": func(p int) int { return p + 1 },
	"list":      func(items ...string) []string { return items },
	"dict": func(pairs ...any) (map[string]any, error) {
		if len(pairs)%2 != 0 {
			return nil, errors.New("dict requires key value pairs")
		}
		out := make(map[string]any, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			key, ok := pairs[i].(string)
			if !ok {
				return nil, errors.New("dict keys must be strings")
			}
			out[key] = pairs[i+1]
		}
		return out, nil
	},
}).ParseFS(files, "*.gohtml"))

func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pages.ExecuteTemplate(w, name, data)
	})
}

// Index is the full employees page: table, pager and drawer shell.
func Index(props *viewmodels.IndexPageProps) templ.Component {
	return render("index", props)
}

// Table renders just the list fragment for partial swaps.
func Table(props *viewmodels.EmployeesTableProps) templ.Component {
	return render("table", props)
}

// Drawer renders the side-drawer form fragment.
func Drawer(props *viewmodels.DrawerProps) templ.Component {
	return render("drawer", props)
}

// Detail is the full-page employee editor.
func Detail(props *viewmodels.DetailProps) templ.Component {
	return render("detail", props)
}

// NotFound is the shared fallback page.
func NotFound() templ.Component {
	return render("notfound", nil)
}
