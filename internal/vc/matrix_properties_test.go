package vc

import (
	"image/color"
	"reflect"
	"testing"

	"github.com/lumideck/lumideck/internal/engine"
)

func newTestDoc() *engine.Document {
	doc := engine.NewDocument()
	doc.InputOutputMap().AddUniverse("MIDI Controller", &engine.InputProfile{
		Name: "Generic MIDI",
		Channels: map[uint32]string{
			1: "Fader 1",
			2: "Fader 2",
		},
	})
	return doc
}

func red() color.RGBA   { return color.RGBA{R: 255, A: 255} }
func green() color.RGBA { return color.RGBA{G: 255, A: 255} }

func TestAddControlsAssignsIncreasingIDs(t *testing.T) {
	p := NewMatrixProperties(NewMatrix(1), newTestDoc())

	p.AddStartColor(red())
	p.AddAnimation("Plasma")
	p.AddText("hello")
	p.AddEndColor(green())

	controls := p.Controls()
	if len(controls) != 4 {
		t.Fatalf("expected 4 controls, got %d", len(controls))
	}
	for i, c := range controls {
		if c.ID != uint8(i+1) {
			t.Errorf("control %d: expected id %d, got %d", i, i+1, c.ID)
		}
	}
}

func TestControlsStaySortedByID(t *testing.T) {
	m := NewMatrix(1)
	// Seed the matrix out of order; the editor must sort on open.
	m.AddCustomControl(&MatrixControl{ID: 7, Kind: ControlText, Resource: "b"})
	m.AddCustomControl(&MatrixControl{ID: 2, Kind: ControlText, Resource: "a"})

	p := NewMatrixProperties(m, newTestDoc())
	if got := p.Controls(); got[0].ID != 2 || got[1].ID != 7 {
		t.Fatalf("expected ids [2 7], got [%d %d]", got[0].ID, got[1].ID)
	}

	// New ids continue past the max seen, and the list stays sorted.
	p.AddText("c")
	got := p.Controls()
	if got[2].ID != 8 {
		t.Errorf("expected new id 8 after max 7, got %d", got[2].ID)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Errorf("list not sorted at index %d: %d >= %d", i, got[i-1].ID, got[i].ID)
		}
	}
}

func TestRemovedIDIsNeverReused(t *testing.T) {
	p := NewMatrixProperties(NewMatrix(1), newTestDoc())

	p.AddText("one")
	p.AddText("two")
	p.SelectControl(2)
	p.RemoveSelected()

	if len(p.Controls()) != 1 {
		t.Fatalf("expected 1 control after removal, got %d", len(p.Controls()))
	}

	p.AddText("three")
	controls := p.Controls()
	if controls[len(controls)-1].ID != 3 {
		t.Errorf("expected id 3 for control added after removing id 2, got %d",
			controls[len(controls)-1].ID)
	}
}

func TestAddControlDiscardsEmptyPayloads(t *testing.T) {
	tests := []struct {
		name string
		add  func(p *MatrixProperties)
	}{
		{"transparent start color", func(p *MatrixProperties) { p.AddStartColor(color.RGBA{}) }},
		{"transparent end color", func(p *MatrixProperties) { p.AddEndColor(color.RGBA{}) }},
		{"empty animation preset", func(p *MatrixProperties) { p.AddAnimation("") }},
		{"empty text", func(p *MatrixProperties) { p.AddText("") }},
		{"whitespace text", func(p *MatrixProperties) { p.AddText("   ") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewMatrixProperties(NewMatrix(1), newTestDoc())
			p.AddText("anchor")

			tt.add(p)

			if len(p.Controls()) != 1 {
				t.Fatalf("expected list unchanged, got %d controls", len(p.Controls()))
			}
			// Max id must be unchanged too: the next real add gets id 2.
			p.AddText("next")
			controls := p.Controls()
			if controls[1].ID != 2 {
				t.Errorf("expected next id 2, got %d", controls[1].ID)
			}
		})
	}
}

func TestAutoDetectSliderInputLastWriteWins(t *testing.T) {
	doc := newTestDoc()
	m := NewMatrix(1)
	p := NewMatrixProperties(m, doc)
	defer p.Close()

	p.AutoDetectSliderInput(true)
	doc.InputOutputMap().InjectInputValue(0, 1, 127)
	doc.InputOutputMap().InjectInputValue(0, 2, 64)

	src := p.SliderInput()
	if !src.Valid {
		t.Fatal("expected a valid binding after auto-detect")
	}
	if src.Universe != 0 || src.Channel != 2 {
		t.Errorf("expected binding (0,2) from the second event, got (%d,%d)",
			src.Universe, src.Channel)
	}

	// Toggling off must stop further captures.
	p.AutoDetectSliderInput(false)
	doc.InputOutputMap().InjectInputValue(0, 1, 127)
	if got := p.SliderInput().Channel; got != 2 {
		t.Errorf("binding changed after auto-detect disabled: channel %d", got)
	}
}

func TestAutoDetectFoldsPageIntoChannel(t *testing.T) {
	doc := newTestDoc()
	m := NewMatrix(1)
	m.Page = 3
	p := NewMatrixProperties(m, doc)
	defer p.Close()

	p.AutoDetectSliderInput(true)
	doc.InputOutputMap().InjectInputValue(0, 42, 127)

	if got, want := p.SliderInput().Channel, uint32(3<<16|42); got != want {
		t.Errorf("expected folded channel %#x, got %#x", want, got)
	}

	// The picker path stores the channel unmodified.
	p.SetSliderInput(0, 42)
	if got := p.SliderInput().Channel; got != 42 {
		t.Errorf("expected raw channel 42 from picker, got %#x", got)
	}
}

func TestAutoDetectEnableIsIdempotent(t *testing.T) {
	doc := newTestDoc()
	p := NewMatrixProperties(NewMatrix(1), doc)
	defer p.Close()

	p.AutoDetectSliderInput(true)
	p.AutoDetectSliderInput(true)
	if got := doc.InputOutputMap().SubscriberCount(); got != 1 {
		t.Errorf("expected 1 subscription after double enable, got %d", got)
	}
	p.AutoDetectSliderInput(false)
	if got := doc.InputOutputMap().SubscriberCount(); got != 0 {
		t.Errorf("expected 0 subscriptions after disable, got %d", got)
	}
}

func TestCloseReleasesSubscriptions(t *testing.T) {
	doc := newTestDoc()
	p := NewMatrixProperties(NewMatrix(1), doc)

	p.AddText("x")
	p.SelectControl(1)
	p.AutoDetectSliderInput(true)
	p.AutoDetectControlInput(true)
	if got := doc.InputOutputMap().SubscriberCount(); got != 2 {
		t.Fatalf("expected 2 subscriptions, got %d", got)
	}

	p.Close()
	if got := doc.InputOutputMap().SubscriberCount(); got != 0 {
		t.Errorf("expected 0 subscriptions after close, got %d", got)
	}
	// Closing twice must be harmless.
	p.Close()
}

func TestAcceptReleasesSubscriptions(t *testing.T) {
	doc := newTestDoc()
	p := NewMatrixProperties(NewMatrix(1), doc)

	p.AutoDetectSliderInput(true)
	p.Accept()
	if got := doc.InputOutputMap().SubscriberCount(); got != 0 {
		t.Errorf("expected 0 subscriptions after accept, got %d", got)
	}
}

func TestAttachFunctionAutoNaming(t *testing.T) {
	doc := newTestDoc()
	fn := doc.AddFunction("Rainbow Swirl", engine.FunctionRGBMatrix)

	tests := []struct {
		name        string
		caption     string
		wantCaption string
	}{
		{"placeholder caption renamed", "Matrix 4", "Rainbow Swirl"},
		{"custom caption kept", "Front Wall", "Front Wall"},
		// The substring check is deliberately fragile: any caption
		// containing the widget id matches.
		{"caption containing id renamed", "Stage 4 Left", "Rainbow Swirl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatrix(4)
			m.Caption = tt.caption
			p := NewMatrixProperties(m, doc)

			p.SetFunction(fn.ID)

			if got := p.Caption(); got != tt.wantCaption {
				t.Errorf("caption = %q, want %q", got, tt.wantCaption)
			}
			if got := p.FunctionName(); got != "Rainbow Swirl" {
				t.Errorf("function name = %q, want %q", got, "Rainbow Swirl")
			}
		})
	}
}

func TestDetachFunction(t *testing.T) {
	doc := newTestDoc()
	fn := doc.AddFunction("Rainbow Swirl", engine.FunctionRGBMatrix)

	m := NewMatrix(1)
	m.Caption = "Front Wall"
	m.Function = fn.ID
	p := NewMatrixProperties(m, doc)

	p.DetachFunction()

	if got := p.Function(); got != engine.NoFunction {
		t.Errorf("expected NoFunction sentinel, got %d", got)
	}
	if got := p.FunctionName(); got != NoFunctionText {
		t.Errorf("expected %q placeholder, got %q", NoFunctionText, got)
	}
	if got := p.Caption(); got != "Front Wall" {
		t.Errorf("detach must not touch the caption, got %q", got)
	}
}

func TestCancelLeavesMatrixUntouched(t *testing.T) {
	doc := newTestDoc()
	fn := doc.AddFunction("Rainbow Swirl", engine.FunctionRGBMatrix)

	m := NewMatrix(9)
	m.Caption = "Original"
	m.InstantChanges = true
	m.InputSource = engine.NewInputSource(0, 1)
	m.AddCustomControl(&MatrixControl{ID: 1, Kind: ControlText, Resource: "keep me"})

	wantControls := []*MatrixControl{m.CustomControls()[0].Clone()}

	p := NewMatrixProperties(m, doc)
	p.SetCaption("Scribble")
	p.SetFunction(fn.ID)
	p.SetInstantChanges(false)
	p.SetSliderInput(0, 2)
	p.AddStartColor(red())
	p.AddText("noise")
	p.SelectControl(1)
	p.RemoveSelected()
	p.Close() // cancel path

	if m.Caption != "Original" {
		t.Errorf("caption changed on cancel: %q", m.Caption)
	}
	if m.Function != engine.NoFunction {
		t.Errorf("function changed on cancel: %d", m.Function)
	}
	if !m.InstantChanges {
		t.Error("instant-changes flag changed on cancel")
	}
	if m.InputSource != engine.NewInputSource(0, 1) {
		t.Errorf("input binding changed on cancel: %+v", m.InputSource)
	}
	if !reflect.DeepEqual(m.CustomControls(), wantControls) {
		t.Errorf("control list changed on cancel: %+v", m.CustomControls())
	}
}

func TestAcceptWritesEverythingBack(t *testing.T) {
	doc := newTestDoc()
	fn := doc.AddFunction("Rainbow Swirl", engine.FunctionRGBMatrix)

	m := NewMatrix(9)
	p := NewMatrixProperties(m, doc)
	p.SetCaption("Foo")
	p.SetFunction(fn.ID)
	p.SetInstantChanges(true)
	p.SetSliderInput(0, 2)
	p.AddStartColor(red())
	p.AddText("overlay")
	p.Accept()

	if m.Caption != "Foo" {
		t.Errorf("caption = %q, want %q", m.Caption, "Foo")
	}
	if m.Function != fn.ID {
		t.Errorf("function = %d, want %d", m.Function, fn.ID)
	}
	if !m.InstantChanges {
		t.Error("instant-changes flag not written back")
	}
	if m.InputSource != engine.NewInputSource(0, 2) {
		t.Errorf("input binding = %+v, want (0,2)", m.InputSource)
	}

	controls := m.CustomControls()
	if len(controls) != 2 {
		t.Fatalf("expected 2 controls on the matrix, got %d", len(controls))
	}
	if controls[0].ID != 1 || controls[0].Kind != ControlStartColor {
		t.Errorf("control 0 = %+v, want start color id 1", controls[0])
	}
	if controls[1].ID != 2 || controls[1].Kind != ControlText || controls[1].Resource != "overlay" {
		t.Errorf("control 1 = %+v, want text id 2", controls[1])
	}

	// The committed list must be independent of the working copy.
	p.Controls()[0].Resource = "mutated"
	if m.CustomControls()[0].Resource == "mutated" {
		t.Error("matrix shares control pointers with the working copy")
	}
}

func TestSelectionScopedOpsAreNoOpsWithoutSelection(t *testing.T) {
	doc := newTestDoc()
	p := NewMatrixProperties(NewMatrix(1), doc)
	defer p.Close()

	p.AddText("x")

	p.RemoveSelected()
	if len(p.Controls()) != 1 {
		t.Error("RemoveSelected removed a control without a selection")
	}

	p.SetControlInput(0, 1)
	p.AttachKey("Ctrl+F")
	p.DetachKey()
	if c := p.Controls()[0]; c.InputSource.Valid || c.KeySequence != "" {
		t.Errorf("selection-scoped ops mutated an unselected control: %+v", c)
	}

	p.AutoDetectControlInput(true)
	doc.InputOutputMap().InjectInputValue(0, 1, 127)
	if p.Controls()[0].InputSource.Valid {
		t.Error("auto-detect bound input with no control selected")
	}
	if got := p.KeyText(); got != "" {
		t.Errorf("KeyText = %q without a selection", got)
	}
}

func TestPerControlInputBinding(t *testing.T) {
	doc := newTestDoc()
	m := NewMatrix(1)
	m.Page = 2
	p := NewMatrixProperties(m, doc)
	defer p.Close()

	p.AddText("a")
	p.AddText("b")
	p.SelectControl(2)

	p.AutoDetectControlInput(true)
	doc.InputOutputMap().InjectInputValue(0, 5, 127)

	sel := p.SelectedControl()
	if sel == nil || sel.ID != 2 {
		t.Fatal("expected control 2 selected")
	}
	if got, want := sel.InputSource.Channel, uint32(2<<16|5); got != want {
		t.Errorf("expected folded channel %#x on the selected control, got %#x", want, got)
	}
	if other := p.Controls()[0]; other.InputSource.Valid {
		t.Errorf("auto-detect leaked onto an unselected control: %+v", other)
	}

	// Picker path stores the raw channel.
	p.SetControlInput(0, 1)
	if got := sel.InputSource.Channel; got != 1 {
		t.Errorf("expected raw channel 1 from picker, got %#x", got)
	}

	uni, ch := p.ControlInputNames()
	if uni != "MIDI Controller" || ch != "2: Fader 1" {
		t.Errorf("resolved names = (%q, %q)", uni, ch)
	}
}

func TestKeyBinding(t *testing.T) {
	p := NewMatrixProperties(NewMatrix(1), newTestDoc())
	p.AddAnimation("Plasma")
	p.SelectControl(1)

	p.AttachKey("Ctrl+Shift+P")
	if got := p.KeyText(); got != "Ctrl+Shift+P" {
		t.Errorf("KeyText = %q after attach", got)
	}
	p.DetachKey()
	if got := p.KeyText(); got != "" {
		t.Errorf("KeyText = %q after detach", got)
	}
}

func TestInputNamesFallBackToNone(t *testing.T) {
	doc := newTestDoc()
	p := NewMatrixProperties(NewMatrix(1), doc)

	// No binding at all.
	uni, ch := p.SliderInputNames()
	if uni != InputNone || ch != InputNone {
		t.Errorf("expected None placeholders, got (%q, %q)", uni, ch)
	}

	// Stale binding pointing at a universe the document does not have.
	p.SetSliderInput(7, 1)
	uni, ch = p.SliderInputNames()
	if uni != InputNone || ch != InputNone {
		t.Errorf("expected None placeholders for a stale binding, got (%q, %q)", uni, ch)
	}

	// A resolvable binding renders real names.
	p.SetSliderInput(0, 2)
	uni, ch = p.SliderInputNames()
	if uni != "MIDI Controller" || ch != "3: Fader 2" {
		t.Errorf("resolved names = (%q, %q)", uni, ch)
	}
}

func TestSelectUnknownControlClearsSelection(t *testing.T) {
	p := NewMatrixProperties(NewMatrix(1), newTestDoc())
	p.AddText("x")
	p.SelectControl(1)
	p.SelectControl(99)
	if p.SelectedControl() != nil {
		t.Error("expected nil selection after selecting an unknown id")
	}
}
