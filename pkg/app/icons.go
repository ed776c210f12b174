package app

import "github.com/karooapp/karoo/pkg/art"

// Built-in icon templates. Each is a small two-tone SVG with {COLOR}
// placeholders; the resolver substitutes the effective color at render time.
// The secondary tone uses the same color at reduced opacity.
var iconTemplates = map[string]struct {
	label string
	svg   string
}{
	"file.new": {"New File", svgDoc(
		`<path d="M6 2h8l4 4v16H6z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M6 2h8l4 4v16H6zm8 0v4h4" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M10 12h4M12 10v4" stroke="{COLOR}" stroke-width="2"/>`)},
	"file.new.project": {"New Book", svgDoc(
		`<path d="M4 5a2 2 0 0 1 2-2h12a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H6a2 2 0 0 1-2-2z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M12 3v18M4 5h16" stroke="{COLOR}" stroke-width="2"/>`)},
	"file.open": {"Open Book", svgDoc(
		`<path d="M2 6h8l2 2h10v12H2z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M2 6h8l2 2h10v12H2z" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"file.close": {"Close Book", svgDoc(
		`<path d="M6 6l12 12M18 6L6 18" stroke="{COLOR}" stroke-width="2.5"/>`)},
	"file.save": {"Save", svgDoc(
		`<path d="M4 4h13l3 3v13H4z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M4 4h13l3 3v13H4z" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<rect x="8" y="13" width="8" height="6" fill="{COLOR}"/>`)},
	"file.saveAs": {"Save As", svgDoc(
		`<path d="M4 4h13l3 3v13H4z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M4 4h13l3 3v13H4z" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M8 12l4 4 6-8" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"file.import.archive": {"Import Archive", svgDoc(
		`<rect x="3" y="9" width="18" height="12" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M12 3v10m0 0l-4-4m4 4l4-4" stroke="{COLOR}" stroke-width="2" fill="none"/>` +
			`<path d="M3 9h18v12H3z" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"file.export.archive": {"Export Archive", svgDoc(
		`<rect x="3" y="9" width="18" height="12" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M12 13V3m0 0L8 7m4-4l4 4" stroke="{COLOR}" stroke-width="2" fill="none"/>` +
			`<path d="M3 9h18v12H3z" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"file.exit": {"Exit", svgDoc(
		`<path d="M4 3h10v18H4z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M14 12h7m0 0l-3-3m3 3l-3 3" stroke="{COLOR}" stroke-width="2" fill="none"/>`)},
	"edit.undo": {"Undo", svgDoc(
		`<path d="M7 10L3 6l4-4" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M3 6h11a7 7 0 0 1 0 14H8" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"edit.redo": {"Redo", svgDoc(
		`<path d="M17 10l4-4-4-4" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M21 6H10a7 7 0 0 0 0 14h6" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"edit.cut": {"Cut", svgDoc(
		`<circle cx="6" cy="18" r="3" fill="{COLOR}" opacity=".3"/>` +
			`<circle cx="18" cy="18" r="3" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M6 18L18 4M18 18L6 4" stroke="{COLOR}" stroke-width="2"/>` +
			`<circle cx="6" cy="18" r="3" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<circle cx="18" cy="18" r="3" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"edit.copy": {"Copy", svgDoc(
		`<rect x="8" y="8" width="12" height="13" fill="{COLOR}" opacity=".3"/>` +
			`<rect x="8" y="8" width="12" height="13" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M5 16H4V3h12v1" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"edit.paste": {"Paste", svgDoc(
		`<rect x="5" y="4" width="14" height="17" fill="{COLOR}" opacity=".3"/>` +
			`<rect x="5" y="4" width="14" height="17" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<rect x="9" y="2" width="6" height="4" fill="{COLOR}"/>`)},
	"edit.selectAll": {"Select All", svgDoc(
		`<rect x="4" y="4" width="16" height="16" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M4 4h4M10 4h4M16 4h4M4 20h4M10 20h4M16 20h4M4 4v4M4 10v4M4 16v4M20 4v4M20 10v4M20 16v4" stroke="{COLOR}" stroke-width="2"/>`)},
	"edit.find": {"Find", svgDoc(
		`<circle cx="10" cy="10" r="6" fill="{COLOR}" opacity=".3"/>` +
			`<circle cx="10" cy="10" r="6" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M15 15l6 6" stroke="{COLOR}" stroke-width="2.5"/>`)},
	"edit.preferences": {"Preferences", svgDoc(
		`<circle cx="12" cy="12" r="4" fill="{COLOR}" opacity=".3"/>` +
			`<circle cx="12" cy="12" r="4" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M12 2v4M12 18v4M2 12h4M18 12h4M5 5l3 3M16 16l3 3M19 5l-3 3M8 16l-3 3" stroke="{COLOR}" stroke-width="2"/>`)},
	"book.newChapter": {"New Chapter", svgDoc(
		`<path d="M5 3h14v18H5z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M5 3h14v18H5z" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M9 8h6M9 12h6M12 15v4M10 17h4" stroke="{COLOR}" stroke-width="2"/>`)},
	"book.newCharacter": {"New Character", svgDoc(
		`<circle cx="12" cy="8" r="4" fill="{COLOR}" opacity=".3"/>` +
			`<circle cx="12" cy="8" r="4" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M4 21c0-4 3.5-7 8-7s8 3 8 7" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"book.newLocation": {"New Location", svgDoc(
		`<path d="M12 2a7 7 0 0 1 7 7c0 5-7 13-7 13S5 14 5 9a7 7 0 0 1 7-7z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M12 2a7 7 0 0 1 7 7c0 5-7 13-7 13S5 14 5 9a7 7 0 0 1 7-7z" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<circle cx="12" cy="9" r="2.5" fill="{COLOR}"/>`)},
	"book.properties": {"Book Properties", svgDoc(
		`<path d="M4 5a2 2 0 0 1 2-2h12a2 2 0 0 1 2 2v14a2 2 0 0 1-2 2H6a2 2 0 0 1-2-2z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M8 8h8M8 12h8M8 16h5" stroke="{COLOR}" stroke-width="2"/>`)},
	"tools.stats.wordCount": {"Word Count", svgDoc(
		`<rect x="3" y="12" width="4" height="9" fill="{COLOR}" opacity=".3"/>` +
			`<rect x="10" y="7" width="4" height="14" fill="{COLOR}" opacity=".5"/>` +
			`<rect x="17" y="3" width="4" height="18" fill="{COLOR}"/>`)},
	"tools.spellcheck": {"Spellchecker", svgDoc(
		`<path d="M4 16L9 4l5 12M5.5 12h7" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M13 17l3 3 5-6" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"tools.toolbarManager": {"Customize Toolbars", svgDoc(
		`<rect x="3" y="4" width="18" height="5" fill="{COLOR}" opacity=".3"/>` +
			`<rect x="3" y="4" width="18" height="5" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M6 15h3v3H6zM11 15h3v3h-3zM16 15h3v3h-3z" fill="{COLOR}"/>`)},
	"view.navigator": {"Navigator", svgDoc(
		`<path d="M4 4h6v16H4z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M4 4h16v16H4zM10 4v16" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"view.properties": {"Properties", svgDoc(
		`<path d="M14 4h6v16h-6z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M4 4h16v16H4zM14 4v16" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"view.log": {"Log", svgDoc(
		`<path d="M4 14h16v6H4z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M4 4h16v16H4zM4 14h16" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"view.search": {"Search Panel", svgDoc(
		`<path d="M4 4h6v16H4z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M4 4h16v16H4zM10 4v16" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<circle cx="6.5" cy="8" r="1.5" fill="{COLOR}"/>`)},
	"view.assistant": {"Assistant", svgDoc(
		`<path d="M4 4h16v12H9l-5 5z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M4 4h16v12H9l-5 5z" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M8 8h8M8 11h5" stroke="{COLOR}" stroke-width="2"/>`)},
	"view.darkMode": {"Dark Mode", svgDoc(
		`<path d="M20 14A8 8 0 1 1 10 4a7 7 0 0 0 10 10z" fill="{COLOR}" opacity=".3"/>` +
			`<path d="M20 14A8 8 0 1 1 10 4a7 7 0 0 0 10 10z" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"view.fullScreen": {"Full Screen", svgDoc(
		`<path d="M4 9V4h5M15 4h5v5M20 15v5h-5M9 20H4v-5" fill="none" stroke="{COLOR}" stroke-width="2"/>`)},
	"help.about": {"About", svgDoc(
		`<circle cx="12" cy="12" r="9" fill="{COLOR}" opacity=".3"/>` +
			`<circle cx="12" cy="12" r="9" fill="none" stroke="{COLOR}" stroke-width="2"/>` +
			`<path d="M12 11v6" stroke="{COLOR}" stroke-width="2"/>` +
			`<circle cx="12" cy="7.5" r="1.25" fill="{COLOR}"/>`)},
}

func svgDoc(body string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24">` +
		body + `</svg>`
}

// RegisterIcons loads every built-in template into the provider.
func RegisterIcons(prov *art.Provider) {
	for id, tpl := range iconTemplates {
		prov.RegisterIcon(id, tpl.svg, tpl.label)
	}
}
