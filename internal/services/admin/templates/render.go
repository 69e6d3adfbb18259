package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter streams markup for a component and keeps the first write error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

// component adapts a markup builder into a templ.Component.
func component(build func(out *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := &htmlWriter{ctx: ctx, w: w}
		build(out)
		return out.err
	})
}

// raw writes trusted markup.
func (out *htmlWriter) raw(markup string) {
	if out.err != nil {
		return
	}
	_, out.err = io.WriteString(out.w, markup)
}

// text writes escaped text content.
func (out *htmlWriter) text(value string) {
	out.raw(templ.EscapeString(value))
}

// attr writes a quoted, escaped attribute preceded by a space.
func (out *htmlWriter) attr(name, value string) {
	out.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes a sanitized URL attribute.
func (out *htmlWriter) href(name, value string) {
	out.attr(name, string(templ.URL(value)))
}

// flag writes a boolean attribute when set.
func (out *htmlWriter) flag(name string, set bool) {
	if set {
		out.raw(" " + name)
	}
}

// render writes a nested component.
func (out *htmlWriter) render(child templ.Component) {
	if out.err != nil || child == nil {
		return
	}
	out.err = child.Render(out.ctx, out.w)
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
