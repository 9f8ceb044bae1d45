package editor

import "github.com/milk9111/mapmaker/mapmeta"

// Signal is a one-way mode request the editor emits toward the host.
type Signal int

const (
	SignalPlay Signal = iota + 1
	SignalMainMenu
)

// Session is the editor-local UI state for one editing session: selection,
// per-layer visibility, dialog flags, and their scratch forms. Created on
// mode enter, dropped on mode exit; distinct from the Map document.
type Session struct {
	ShowGrid          bool
	CurrentLayerIndex int

	ShowMapCreate   bool
	ShowLayerCreate bool
	ShowMapExport   bool

	MapForm   mapmeta.MapCreateForm
	LayerForm mapmeta.LayerCreateForm

	hiddenLayers map[int]struct{}
	signals      []Signal
}

func NewSession() *Session {
	return &Session{
		ShowGrid:     true,
		MapForm:      mapmeta.NewMapCreateForm(),
		LayerForm:    mapmeta.NewLayerCreateForm(),
		hiddenLayers: make(map[int]struct{}),
	}
}

// SelectLayer records the clicked row. The index is deliberately not
// validated against the layer count; readers treat out-of-range as no
// selection.
func (s *Session) SelectLayer(i int) {
	s.CurrentLayerIndex = i
}

// ToggleLayerHidden flips membership of i in the hidden set. Toggling twice
// restores the original state.
func (s *Session) ToggleLayerHidden(i int) {
	if _, ok := s.hiddenLayers[i]; ok {
		delete(s.hiddenLayers, i)
		return
	}
	s.hiddenLayers[i] = struct{}{}
}

// LayerHidden reports whether layer i is hidden from view.
func (s *Session) LayerHidden(i int) bool {
	_, ok := s.hiddenLayers[i]
	return ok
}

// HiddenCount returns the hidden-set size.
func (s *Session) HiddenCount() int {
	return len(s.hiddenLayers)
}

// OpenMapCreate shows the create-map dialog with a fresh form.
func (s *Session) OpenMapCreate() {
	s.MapForm = mapmeta.NewMapCreateForm()
	s.ShowMapCreate = true
}

// CloseMapCreate hides the dialog and resets its form, confirm or cancel.
func (s *Session) CloseMapCreate() {
	s.MapForm = mapmeta.NewMapCreateForm()
	s.ShowMapCreate = false
}

// OpenLayerCreate shows the create-layer dialog with a fresh form.
func (s *Session) OpenLayerCreate() {
	s.LayerForm = mapmeta.NewLayerCreateForm()
	s.ShowLayerCreate = true
}

// CloseLayerCreate hides the dialog and resets its form, confirm or cancel.
func (s *Session) CloseLayerCreate() {
	s.LayerForm = mapmeta.NewLayerCreateForm()
	s.ShowLayerCreate = false
}

// Request queues a host mode signal, once per click.
func (s *Session) Request(sig Signal) {
	s.signals = append(s.signals, sig)
}

// DrainSignals returns queued signals and clears the queue.
func (s *Session) DrainSignals() []Signal {
	if len(s.signals) == 0 {
		return nil
	}
	out := s.signals
	s.signals = nil
	return out
}
