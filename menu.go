package glshell

// MenuAction identifies what a menu entry does when selected.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuQuit
	MenuEnterFullscreen
	MenuLeaveFullscreen
)

// String returns a human-readable name for the action.
func (a MenuAction) String() string {
	switch a {
	case MenuNone:
		return "none"
	case MenuQuit:
		return "quit"
	case MenuEnterFullscreen:
		return "enter-fullscreen"
	case MenuLeaveFullscreen:
		return "leave-fullscreen"
	default:
		return "unknown"
	}
}

// MenuEntry is a single row of a menu. An entry either carries an Action or
// opens a Submenu, never both.
type MenuEntry struct {
	Label   string
	Action  MenuAction
	Submenu *Menu
}

// IsSubmenu returns true if the entry opens a nested menu.
func (e MenuEntry) IsSubmenu() bool {
	return e.Submenu != nil
}

// Menu is an ordered list of entries. Menus are built once and not modified
// afterwards.
type Menu struct {
	Title   string
	Entries []MenuEntry
}

// Labels returns the labels of every entry in this menu and its submenus,
// depth first.
func (m *Menu) Labels() []string {
	if m == nil {
		return nil
	}
	labels := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		labels = append(labels, e.Label)
		if e.Submenu != nil {
			labels = append(labels, e.Submenu.Labels()...)
		}
	}
	return labels
}

// NewContextMenu builds the right-button menu: a "FullScreen" submenu with
// enter/leave entries, followed by "Quit".
func NewContextMenu() *Menu {
	fullscreen := &Menu{
		Title: "FullScreen",
		Entries: []MenuEntry{
			{Label: "Enter FullScreen", Action: MenuEnterFullscreen},
			{Label: "Leave FullScreen", Action: MenuLeaveFullscreen},
		},
	}
	return &Menu{
		Entries: []MenuEntry{
			{Label: "FullScreen", Submenu: fullscreen},
			{Label: "Quit", Action: MenuQuit},
		},
	}
}
