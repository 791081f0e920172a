package layouts

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Redirect is a document that sends the browser on to target. Exported sites
// use it where the server would answer with a redirect.
func Redirect(target string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		to := templ.EscapeString(target)
		_, err := fmt.Fprintf(w,
			`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta http-equiv="refresh" content="0; url=%s"><link rel="canonical" href="%s"><title>%s</title></head><body><a href="%s">%s</a></body></html>`,
			to, to, templ.EscapeString(CalculateTitle("")), to, to)
		return err
	})
}
