// Package el provides one-line factory functions for the standard HTML
// elements, covering the element list from the HTML spec:
// https://html.spec.whatwg.org/multipage/indices.html#elements-3
//
// Each factory is a thin wrapper over dom.New and accepts the same variadic
// arguments:
//
//	el.Div(dom.A("id", "greeting"),
//	    "Hello, ", el.Strong("world"), "!",
//	)
package el
