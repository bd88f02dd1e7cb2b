package services

import (
	"strconv"
	"text/template"
)

// Deck header and footer. Fields come from entities.DeckConfig; a field
// missing from DeckConfig fails at template execution in NewDeck.
var deckTemplates = template.Must(template.New("deck").Funcs(template.FuncMap{
	"num": func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) },
}).Parse(headerTemplate + footerTemplate))

const headerTemplate = `{{define "header"}}<!doctype html>
<html>
    <head>
        <meta charset="utf-8"/>
        <meta name="viewport" content="width=device-width, initial-scale=1.0, maximum-scale=1.0, user-scalable=no">

        <title>{{.ShortTitle}} - {{.Conference}}</title>

        <meta name="description" content="{{.Title}}">
        <meta name="author" content="{{.Author}}">

        <meta name="apple-mobile-web-app-capable" content="yes" >
        <meta name="apple-mobile-web-app-status-bar-style" content="black-translucent">

        <!-- General and theme style sheets -->
        <link rel="stylesheet" href="{{.RevealPath}}dist/reset.css">
        <link rel="stylesheet" href="{{.RevealPath}}dist/reveal.css">
        <link rel="stylesheet" href="{{.RevealPath}}dist/theme/{{.Theme}}.css" id="theme">

        <!-- Theme used for syntax highlighting of code -->
        <link rel="stylesheet" href="{{.RevealPath}}plugin/highlight/zenburn.css">
    </head>

<body>
    <div class="reveal">
        <div class="slides">
        {{end}}`

const footerTemplate = `{{define "footer"}}
        </div>
    </div>

    <script src="{{.RevealPath}}dist/reveal.js"></script>
    <script src="{{.RevealPath}}plugin/zoom/zoom.js"></script>
    <script src="{{.RevealPath}}plugin/notes/notes.js"></script>
    <script src="{{.RevealPath}}plugin/search/search.js"></script>
    <script src="{{.RevealPath}}plugin/markdown/markdown.js"></script>
    <script src="{{.RevealPath}}plugin/highlight/highlight.js"></script>

    <script>
            // Full list of configuration options available at:
            // https://revealjs.com/config/
            Reveal.initialize({
                hash: true,
                // The "normal" size of the presentation, aspect ratio will be preserved
                // when the presentation is scaled to fit different resolutions.
                width: {{.Width}},
                height: {{.Height}},

                // Factor of the display size that should remain empty around the content
                margin: {{num .Margin}},

                // Display a presentation progress bar
                progress: true,
                slideNumber: 'c/t',

                // Vertical centering of slides
                center: true,

                // Enables touch navigation on devices with touch input
                touch: true,

                // Bounds for smallest/largest possible scale to apply to content
                minScale: 0.2,
                maxScale: 2.5,

                // Display controls in the bottom right corner
                controls: false,

                // Enable keyboard shortcuts for navigation
                keyboard: true,

                // Enable the slide overview mode
                overview: true,

                // This slide transition gives best results:
                transition: 'fade', // default/cube/page/concave/zoom/linear/fade/none

                // Transition speed
                transitionSpeed: 'slow', // default/fast/slow

                // Transition style for full page backgrounds
                backgroundTransition: 'none', // default/linear/none

                // Turns fragments on and off globally
                fragments: true,

                // Theme
                theme: '{{.Theme}}', // available themes are in /dist/theme
{{if .Draft}}
                // Share speaker notes with the audience, see https://revealjs.com/speaker-view/
                showNotes: true,
{{end}}
                // Learn about plugins: https://revealjs.com/plugins/
                plugins: [ RevealZoom, RevealNotes, RevealSearch, RevealMarkdown, RevealHighlight ]
            });
    </script>

    </body>
</html>
{{end}}`
