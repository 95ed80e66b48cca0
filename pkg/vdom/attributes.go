package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining non-empty classes with spaces.
func Class(classes ...string) Attr {
	parts := classes[:0:0]
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// Data creates a data-* attribute.
// Example: Data("location", "/") → data-location="/"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Charset sets the charset attribute.
func Charset(cs string) Attr { return attr("charset", cs) }

// Name sets the name attribute.
func Name(n string) Attr { return attr("name", n) }

// Content sets the content attribute.
func Content(c string) Attr { return attr("content", c) }

// Lang sets the lang attribute.
func Lang(l string) Attr { return attr("lang", l) }

// Key sets the sibling identity of the element.
func Key(k string) Attr { return attr("key", k) }

// Defer sets the boolean defer attribute.
func Defer() Attr { return attr("defer", true) }
