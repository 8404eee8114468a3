package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/browser"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"list", "detail", "confirm", "error"}

type pageRenderer struct {
	pages  map[string]*template.Template
	logger logger.Logger
}

func newPageRenderer(logger logger.Logger) (*pageRenderer, error) {
	funcs := template.FuncMap{
		"withQuery": withQuery,
		"rowAction": rowAction,
	}

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		pages[name] = t
	}

	return &pageRenderer{pages: pages, logger: logger}, nil
}

// render пишет страницу целиком или 500, если шаблон упал.
func (p *pageRenderer) render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := p.pages[name]
	if !ok {
		p.logger.Warnf("unknown page %q", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		p.logger.Errorf(err, "failed to render page %s", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (p *pageRenderer) renderError(w http.ResponseWriter, base pageData, err error) {
	code, msg := ToHTTPResponse(err)
	base.Title = http.StatusText(code)
	p.render(w, code, "error", errorPageData{pageData: base, Code: code, Message: msg})
}

type actionData struct {
	Action      browser.RowAction
	ReturnQuery string
}

func rowAction(a browser.RowAction, returnQuery string) actionData {
	return actionData{Action: a, ReturnQuery: returnQuery}
}
