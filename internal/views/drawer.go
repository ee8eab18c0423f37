package views

// DrawerState is the presentation state of the detail side panel. The server
// keeps no per-tab UI state: detail responses are always rendered "open" and
// the UI walks the Drawer machine itself with these names.
type DrawerState string

const (
	DrawerClosed  DrawerState = "closed"
	DrawerOpening DrawerState = "opening"
	DrawerOpen    DrawerState = "open"
	DrawerClosing DrawerState = "closing"
)

// Drawer walks closed -> opening -> open -> closing -> closed. A transition
// requested from the wrong state is ignored.
type Drawer struct {
	state DrawerState
}

func NewDrawer() *Drawer { return &Drawer{state: DrawerClosed} }

func (d *Drawer) State() DrawerState {
	if d.state == "" {
		return DrawerClosed
	}
	return d.state
}

func (d *Drawer) move(from, to DrawerState) bool {
	if d.State() != from {
		return false
	}
	d.state = to
	return true
}

func (d *Drawer) Open() bool { return d.move(DrawerClosed, DrawerOpening) }
func (d *Drawer) Opened() bool { return d.move(DrawerOpening, DrawerOpen) }
func (d *Drawer) Close() bool { return d.move(DrawerOpen, DrawerClosing) }
func (d *Drawer) Closed() bool { return d.move(DrawerClosing, DrawerClosed) }
func (d *Drawer) IsVisible() bool { return d.State() != DrawerClosed }

// openDrawer is the state a detail response is rendered in.
func openDrawer() DrawerState {
	d := NewDrawer()
	d.Open()
	d.Opened()
	return d.State()
}
