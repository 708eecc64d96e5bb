package svg

// Shorthand constructors for the elements the card renderer uses.

// Root creates the <svg> document element with viewport and viewBox set.
func Root(width, height float64) *Element {
	return New("svg").
		Attr("xmlns", "http://www.w3.org/2000/svg").
		AttrNum("width", width).
		AttrNum("height", height).
		Attrf("viewBox", "0 0 %s %s", Num(width), Num(height)).
		Attr("fill", "none").
		Attr("role", "img")
}

// Group creates a <g> element.
func Group() *Element { return New("g") }

// Translate creates a <g> offset by (x, y).
func Translate(x, y float64) *Element {
	return New("g").Attrf("transform", "translate(%s, %s)", Num(x), Num(y))
}

// Rect creates a <rect> at (x, y) with the given size and fill.
func Rect(x, y, width, height float64, fill string) *Element {
	return New("rect").
		AttrNum("x", x).
		AttrNum("y", y).
		AttrNum("width", width).
		AttrNum("height", height).
		Attr("fill", fill)
}

// Text creates a <text> element at (x, y).
func Text(x, y float64, content string) *Element {
	return New("text").AttrNum("x", x).AttrNum("y", y).SetText(content)
}

// Circle creates a <circle> with the given center, radius, and fill.
func Circle(cx, cy, r float64, fill string) *Element {
	return New("circle").
		AttrNum("cx", cx).
		AttrNum("cy", cy).
		AttrNum("r", r).
		Attr("fill", fill)
}

// Anchor creates an <a> linking to href in a new tab.
func Anchor(href string) *Element {
	return New("a").Attr("href", href).Attr("target", "_blank")
}

// Style creates a <style> element with verbatim CSS content.
func Style(css string) *Element {
	e := New("style")
	e.Raw = css
	return e
}
