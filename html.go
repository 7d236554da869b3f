package isotile

import (
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
</head>
<body style="background-color: {{ .Background }}; padding: 0px; border: 0px; margin: 0px;">
{{- range .Tiles }}
<img src="{{ .Filename }}" title="{{ .Title }}" style="position: absolute; top: {{ .Top }}px; left: {{ .Left }}px;">
{{- end }}
{{- if .Grid }}
<div style="background-image: url('{{ .Grid }}'); position: absolute; top: 0; left: 0; width: 100%; height: 100%; pointer-events: none;"></div>
{{- end }}
</body>
</html>
`))

// WriteHTML writes a page that places every tile at its overlay position.
// If grid is not empty it names the debug grid image which is repeated over
// the whole page.
func (l *Layout) WriteHTML(w io.Writer, title, grid string) error {
	return htmlTemplate.Execute(w, struct {
		Title      string
		Background template.CSS
		Tiles      []Placement
		Grid       string
	}{
		Title:      title,
		Background: template.CSS(cssColor(l.Background)),
		Tiles:      l.Placements,
		Grid:       grid,
	})
}
