package tui

// helpLines is the shortcut reference shown by the '?' overlay. Any key
// dismisses it.
var helpLines = []string{
	"flowboard — keyboard shortcuts",
	"",
	"  ctrl+n        new node (in selected column)",
	"  ctrl+shift+c  new column",
	"  ctrl+z        undo",
	"  ctrl+shift+z  redo (also ctrl+y)",
	"  ctrl+s        export canvas as PNG",
	"  ctrl+e        export diagram as JSON file",
	"  ctrl++ / -    zoom in / out",
	"  ctrl+0        fit diagram to view",
	"  del / bksp    delete selected node",
	"  click / drag  select / move a node",
	"  esc           clear selection",
	"  ?             this help",
	"  q             quit (saves the session)",
	"",
	"press any key to close",
}
