// Package templates holds the components for the demo page. Everything
// renders server side; datastar handles the partial updates.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const datastarCDN = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// Language is one entry in the language selector.
type Language struct {
	Code string
	Name string
}

// PageData carries the localized labels and state for the demo page. All
// strings are already translated for the active locale.
type PageData struct {
	Locale         string
	Title          string
	SelectLanguage string
	YourName       string
	HelloButton    string
	ClearCookie    string
	CookieInfo     string
	Toast          string
	HasCookie      bool
	Languages      []Language
}

// Page renders the full demo page.
func Page(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
`, templ.EscapeString(d.Locale)); err != nil {
			return err
		}
		if err := TitleTag(d).Render(ctx, w); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<script type="module" src="%s"></script>
<style>
body { font-family: sans-serif; max-width: 32rem; margin: 3rem auto; padding: 0 1rem; }
label { display: block; margin-top: 1rem; }
select, input { display: block; margin-top: 0.25rem; padding: 0.4rem; }
button { margin-top: 1rem; padding: 0.4rem 1rem; }
.toast { position: fixed; bottom: 1rem; right: 1rem; background: #333; color: #fff; padding: 0.6rem 1rem; border-radius: 4px; }
.toast:empty { display: none; }
.cookie-info { margin-top: 2rem; color: #666; font-size: 0.9rem; }
</style>
</head>
<body>
`, datastarCDN); err != nil {
			return err
		}

		for _, c := range []templ.Component{
			Main(d),
			Toast(d.Toast),
		} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}

// TitleTag renders the document title. A locale-change patch targets it by
// the "title" selector so the tab caption follows the language.
func TitleTag(d PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<title>%s</title>\n", templ.EscapeString(d.Title))
		return err
	})
}

// Main renders the localized body content as one patchable region. The lang
// attribute rides along, so replacing the region also updates the language
// announced for everything in it.
func Main(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<main id=\"page\" lang=\"%s\">\n<h1>%s</h1>\n",
			templ.EscapeString(d.Locale), templ.EscapeString(d.Title)); err != nil {
			return err
		}

		for _, c := range []templ.Component{
			LanguageSelect(d),
			NameField(d),
			GreetButton(d),
			CookiePanel(d),
		} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</main>\n")
		return err
	})
}

// LanguageSelect renders the language dropdown. Changing the selection posts
// the new locale; without JavaScript the surrounding form still submits.
func LanguageSelect(d PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form id="language-select" method="post" action="/locale">
<label>%s
<select name="locale" data-on-change="@post('/locale', {contentType: 'form'})">
`, templ.EscapeString(d.SelectLanguage)); err != nil {
			return err
		}

		for _, lang := range d.Languages {
			selected := ""
			if lang.Code == d.Locale {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, "<option value=\"%s\"%s>%s</option>\n",
				templ.EscapeString(lang.Code), selected, templ.EscapeString(lang.Name)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</select>\n</label>\n</form>\n")
		return err
	})
}

// NameField renders the name input inside the greet form.
func NameField(d PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<label id="name-field" form="greet-form">%s
<input type="text" name="name" form="greet-form" data-bind-name>
</label>
`, templ.EscapeString(d.YourName))
		return err
	})
}

// GreetButton renders the greet form with its submit button.
func GreetButton(d PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<form id="greet-form" method="post" action="/greet">
<button id="greet-button" type="submit" data-on-click__prevent="@post('/greet', {contentType: 'form'})">%s</button>
</form>
`, templ.EscapeString(d.HelloButton))
		return err
	})
}

// CookiePanel shows whether the language cookie is set, with a clear button
// when it is.
func CookiePanel(d PageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="cookie-panel" class="cookie-info">
<p>%s</p>
`, templ.EscapeString(d.CookieInfo)); err != nil {
			return err
		}

		if d.HasCookie {
			if _, err := fmt.Fprintf(w, `<form method="post" action="/locale/clear">
<button type="submit" data-on-click__prevent="@post('/locale/clear', {contentType: 'form'})">%s</button>
</form>
`, templ.EscapeString(d.ClearCookie)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</div>\n")
		return err
	})
}

// Toast renders the notification area. An empty message hides it.
func Toast(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<div id=\"toast\" class=\"toast\">%s</div>\n",
			templ.EscapeString(message))
		return err
	})
}
