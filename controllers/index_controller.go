package controllers

import (
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Star Wars API</title></head>
<body style="font-family: sans-serif; text-align: center;">
<h1>Star Wars API</h1>
<p>Available endpoints:</p>
<ul style="list-style: none; padding: 0;">
{{- range . }}
<li><a href="{{ . }}">{{ . }}</a></li>
{{- end }}
</ul>
</body>
</html>
`))

// IndexController renders a page linking every parameterless GET route.
type IndexController struct {
	routes func() gin.RoutesInfo
}

func NewIndexController(routes func() gin.RoutesInfo) *IndexController {
	return &IndexController{routes: routes}
}

// GET /
func (ic *IndexController) Index(c *gin.Context) {
	var links []string
	for _, r := range ic.routes() {
		if r.Method != http.MethodGet || r.Path == "/" || strings.Contains(r.Path, ":") || strings.Contains(r.Path, "*") {
			continue
		}
		links = append(links, r.Path)
	}
	sort.Strings(links)

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(c.Writer, links); err != nil {
		_ = c.Error(err)
	}
}
