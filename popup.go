package glshell

// SubmenuMarker is drawn at the right edge of rows that open a submenu.
const SubmenuMarker = ">"

// MenuMetrics sizes the popup in window pixels.
type MenuMetrics struct {
	RowHeight float32
	Width     float32
	Padding   float32 // Space above the first and below the last row
}

// DefaultMenuMetrics returns metrics suited to a 13px label face.
func DefaultMenuMetrics() MenuMetrics {
	return MenuMetrics{RowHeight: 22, Width: 160, Padding: 4}
}

// MenuStyle holds the popup colors.
type MenuStyle struct {
	Background uint32
	Border     uint32
	Hover      uint32
	Text       uint32
	HoverText  uint32
}

// DefaultMenuStyle returns a light popup with a dark hover bar.
func DefaultMenuStyle() MenuStyle {
	return MenuStyle{
		Background: ColorLightGray,
		Border:     ColorGray,
		Hover:      RGBA(0x30, 0x50, 0x90, 0xFF),
		Text:       ColorBlack,
		HoverText:  ColorWhite,
	}
}

// LabelAtlas provides pre-rendered label images.
// Backends rasterise every label once into a texture and report where each
// one lives.
type LabelAtlas interface {
	// Label returns the texture, its (u0, v0, u1, v1) region and the pixel
	// size of text. ok is false if text was never rasterised.
	Label(text string) (textureID uint32, uv [4]float32, size Vec2, ok bool)
}

// MenuRow is a laid out menu entry.
type MenuRow struct {
	Rect  Rect
	Entry MenuEntry
	Index int
}

// MenuPopup is the presentation state of an open context menu: where it is,
// which row is hovered and which submenu is expanded. It holds no GL state.
type MenuPopup struct {
	metrics MenuMetrics
	menu    *Menu
	open    bool
	anchor  Vec2
	bounds  Vec2

	hover    int
	subHover int
	expanded int
}

// NewMenuPopup creates a closed popup.
func NewMenuPopup(metrics MenuMetrics) *MenuPopup {
	return &MenuPopup{metrics: metrics, hover: -1, subHover: -1, expanded: -1}
}

// Open shows menu with its top-left corner at (x, y), kept inside a window of
// size bounds.
func (p *MenuPopup) Open(menu *Menu, x, y float32, bounds Vec2) {
	if menu == nil || len(menu.Entries) == 0 {
		return
	}
	p.menu = menu
	p.open = true
	p.anchor = Vec2{X: x, Y: y}
	p.bounds = bounds
	p.hover, p.subHover, p.expanded = -1, -1, -1
}

// Close hides the popup.
func (p *MenuPopup) Close() {
	p.open = false
	p.hover, p.subHover, p.expanded = -1, -1, -1
}

// IsOpen returns true while the popup is shown.
func (p *MenuPopup) IsOpen() bool {
	return p.open
}

// Expanded returns the root row index whose submenu is shown, or -1.
func (p *MenuPopup) Expanded() int {
	return p.expanded
}

// Layout returns the root rows and, if a submenu is expanded, its rows.
func (p *MenuPopup) Layout() (root, sub []MenuRow) {
	if !p.open {
		return nil, nil
	}
	m := p.metrics

	origin := p.place(p.anchor, len(p.menu.Entries))
	root = p.rows(p.menu, origin)

	if p.expanded < 0 || p.expanded >= len(root) {
		return root, nil
	}
	parent := root[p.expanded]
	submenu := parent.Entry.Submenu
	if submenu == nil || len(submenu.Entries) == 0 {
		return root, nil
	}

	subX := origin.X + m.Width
	if p.bounds.X > 0 && subX+m.Width > p.bounds.X {
		subX = origin.X - m.Width
	}
	subOrigin := p.place(Vec2{X: subX, Y: parent.Rect.Y - m.Padding}, len(submenu.Entries))
	sub = p.rows(submenu, subOrigin)
	return root, sub
}

// PanelRect returns the background rectangle enclosing rows.
func (p *MenuPopup) PanelRect(rows []MenuRow) Rect {
	if len(rows) == 0 {
		return Rect{}
	}
	first := rows[0].Rect
	return Rect{
		X: first.X,
		Y: first.Y - p.metrics.Padding,
		W: p.metrics.Width,
		H: float32(len(rows))*p.metrics.RowHeight + 2*p.metrics.Padding,
	}
}

// place clamps a panel of n rows to the window bounds.
func (p *MenuPopup) place(at Vec2, n int) Vec2 {
	m := p.metrics
	h := float32(n)*m.RowHeight + 2*m.Padding
	if p.bounds.X > 0 && at.X+m.Width > p.bounds.X {
		at.X = p.bounds.X - m.Width
	}
	if p.bounds.Y > 0 && at.Y+h > p.bounds.Y {
		at.Y = p.bounds.Y - h
	}
	at.X = max(at.X, 0)
	at.Y = max(at.Y, 0)
	return at
}

func (p *MenuPopup) rows(menu *Menu, origin Vec2) []MenuRow {
	m := p.metrics
	rows := make([]MenuRow, len(menu.Entries))
	for i, e := range menu.Entries {
		rows[i] = MenuRow{
			Rect: Rect{
				X: origin.X,
				Y: origin.Y + m.Padding + float32(i)*m.RowHeight,
				W: m.Width,
				H: m.RowHeight,
			},
			Entry: e,
			Index: i,
		}
	}
	return rows
}

// Hover tracks the pointer. Hovering a submenu row expands it; hovering a
// plain root row collapses any expanded submenu.
func (p *MenuPopup) Hover(x, y float32) {
	if !p.open {
		return
	}
	pt := Vec2{X: x, Y: y}
	root, sub := p.Layout()

	p.subHover = -1
	for _, row := range sub {
		if row.Rect.Contains(pt) {
			p.subHover = row.Index
			p.hover = p.expanded
			return
		}
	}

	p.hover = -1
	for _, row := range root {
		if !row.Rect.Contains(pt) {
			continue
		}
		p.hover = row.Index
		if row.Entry.IsSubmenu() {
			p.expanded = row.Index
		} else {
			p.expanded = -1
		}
		return
	}
}

// Click selects the row under (x, y). Leaf rows return their action and close
// the popup. Submenu rows stay open. Clicking outside closes the popup and
// returns false.
func (p *MenuPopup) Click(x, y float32) (MenuAction, bool) {
	if !p.open {
		return MenuNone, false
	}
	p.Hover(x, y)

	if p.subHover >= 0 && p.expanded >= 0 {
		entry := p.menu.Entries[p.expanded].Submenu.Entries[p.subHover]
		p.Close()
		return entry.Action, true
	}
	if p.hover >= 0 {
		entry := p.menu.Entries[p.hover]
		if entry.IsSubmenu() {
			return MenuNone, false
		}
		p.Close()
		return entry.Action, true
	}

	p.Close()
	return MenuNone, false
}

// Draw appends the popup to dl.
func (p *MenuPopup) Draw(dl *DrawList, atlas LabelAtlas, style MenuStyle) {
	if !p.open {
		return
	}
	root, sub := p.Layout()
	p.drawPanel(dl, atlas, style, root, p.hover)
	if len(sub) > 0 {
		p.drawPanel(dl, atlas, style, sub, p.subHover)
	}
}

func (p *MenuPopup) drawPanel(dl *DrawList, atlas LabelAtlas, style MenuStyle, rows []MenuRow, hovered int) {
	panel := p.PanelRect(rows)
	dl.AddRect(panel, style.Background)
	dl.AddRectOutline(panel, style.Border, 1)

	const textInset = 8
	for _, row := range rows {
		textColor := style.Text
		if row.Index == hovered {
			dl.AddRect(row.Rect, style.Hover)
			textColor = style.HoverText
		}
		drawLabel(dl, atlas, row.Entry.Label, row.Rect.X+textInset, row.Rect, textColor)
		if row.Entry.IsSubmenu() {
			if _, _, size, ok := atlas.Label(SubmenuMarker); ok {
				drawLabel(dl, atlas, SubmenuMarker, row.Rect.X+row.Rect.W-textInset-size.X, row.Rect, textColor)
			}
		}
	}
}

// drawLabel draws text left-aligned at x and vertically centred in row.
func drawLabel(dl *DrawList, atlas LabelAtlas, text string, x float32, row Rect, color uint32) {
	tex, uv, size, ok := atlas.Label(text)
	if !ok {
		return
	}
	y := row.Y + (row.H-size.Y)/2
	dl.AddImage(tex, Rect{X: x, Y: y, W: size.X, H: size.Y}, uv, color)
}
