package ui

import (
	"html/template"
	"strings"

	"github.com/fr4nk3nst1ner/jobads/internal/board"
)

const jobListTemplate = `<div id="job-list">
{{- range .Items}}
  <div class="job" data-deadline="{{.Deadline}}">
    <h3>
      <a href="{{.Link}}" target="_blank" rel="noopener">{{highlight .Title}}</a>
    </h3>
    <p><strong>Location:</strong> {{.Location}}</p>
    <p><strong>Deadline:</strong> {{deadline .Deadline}}</p>
    <p>{{highlight (plain .Description)}}</p>
    <a href="{{.Link}}" target="_blank" rel="noopener" class="btn btn-primary">View Details</a>
    {{- if showOriginalAd .OriginalAd}}
    <a href="{{.OriginalAd}}" target="_blank" rel="noopener" class="btn btn-primary">View Original Ad</a>
    {{- end}}
    <button class="btn btn-success">Share</button>
    <div class="share-menu">
      {{- range $i, $s := share .Link}}{{if $i}} |{{end}}
      <a href="{{$s.URL}}" target="_blank" rel="noopener">{{$s.Name}}</a>
      {{- end}}
    </div>
  </div>
{{- end}}
</div>
<p id="page-info">{{pageInfo .}}</p>
`

// HTML writes the job list fragment with search matches wrapped in <mark>.
// Cell text is escaped and descriptions are reduced to plain text; only
// the highlight markup is emitted raw.
func (r *Renderer) HTML(page board.Page, query string) error {
	funcs := template.FuncMap{
		"highlight": func(text string) template.HTML {
			return highlightHTML(text, query)
		},
		"deadline": func(raw string) string {
			return board.FormatDeadline(raw, r.Location)
		},
		"plain":          PlainText,
		"share":          ShareLinks,
		"showOriginalAd": ShowOriginalAd,
		"pageInfo":       PageInfo,
	}

	tmpl, err := template.New("jobs").Funcs(funcs).Parse(jobListTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(r.Out, page)
}

func highlightHTML(text, query string) template.HTML {
	var b strings.Builder
	for _, seg := range board.HighlightSegments(text, query) {
		escaped := template.HTMLEscapeString(seg.Text)
		if seg.Match {
			b.WriteString("<mark>")
			b.WriteString(escaped)
			b.WriteString("</mark>")
		} else {
			b.WriteString(escaped)
		}
	}
	return template.HTML(b.String())
}
