// Package page is an HTML-backed page model for the focus graph.
//
// A Page parses an HTML document and exposes its interactive elements as
// focus.Element values. Each element's bounding box comes from markup,
// since no layout engine is involved:
//
//	<button id="ok" data-rect="10,20,80,24">OK</button>
//	<input id="q" style="left: 10px; top: 60px; width: 200px; height: 24px">
//
// Elements without geometry get a zero rectangle.
//
// Page also implements focus.Host and focus.CaretHost, tracking the active
// element and a caret offset per editable element. DOM edits made through
// Append, Remove, SetAttr and RemoveAttr are reported to observers as
// Mutations listing the focusable elements that appeared, disappeared or
// moved.
//
// A Page is owned by the event loop and is not safe for concurrent use.
package page
