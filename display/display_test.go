package display

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"mxchip-go/types"
	"mxchip-go/x/dtoa"
)

type call struct {
	op   string
	x, y uint8
	data string
}

type recordingScreen struct{ calls []call }

func (r *recordingScreen) ClearDisplay() {
	r.calls = append(r.calls, call{op: "clear"})
}

func (r *recordingScreen) SetCursor(x, y uint8) {
	r.calls = append(r.calls, call{op: "cursor", x: x, y: y})
}

func (r *recordingScreen) Print(data []byte) {
	r.calls = append(r.calls, call{op: "print", data: string(data)})
}

func TestPanelShow(t *testing.T) {
	tests := []struct {
		name  string
		env   types.Environment
		line0 string
		line1 string
	}{
		{
			name:  "both readings",
			env:   types.Environment{Temperature: 23.5, Probe: 21.0625, ProbeOK: true},
			line0: "onboard 23.50 °C",
			line1: "mcp9808 21.06 °C",
		},
		{
			name:  "probe missing",
			env:   types.Environment{Temperature: 23},
			line0: "onboard 23.00 °C",
			line1: "mcp9808 ---",
		},
		{
			name:  "unrenderable reading",
			env:   types.Environment{Temperature: math.NaN(), Probe: 5, ProbeOK: true},
			line0: "onboard ---",
			line1: "mcp9808 5.00 °C",
		},
		{
			name:  "clipped to width",
			env:   types.Environment{Temperature: -10.25, Probe: 0, ProbeOK: true},
			line0: "onboard -10.25 °",
			line1: "mcp9808 0.00 °C",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(16, 2)
			NewPanel(g, nil, DefaultDigits, 16).Show(tt.env)
			assert.Equal(t, tt.line0, g.Line(0))
			assert.Equal(t, tt.line1, g.Line(1))
		})
	}
}

func TestPanelCallSequence(t *testing.T) {
	r := &recordingScreen{}
	p := NewPanel(r, dtoa.New(dtoa.Fixed{}), 1, 16)
	p.Show(types.Environment{Temperature: 20.04, Probe: 19.96, ProbeOK: true})
	assert.Equal(t, []call{
		{op: "clear"},
		{op: "cursor", x: 0, y: 0},
		{op: "print", data: "onboard 20.0 \xdfC"},
		{op: "cursor", x: 0, y: 1},
		{op: "print", data: "mcp9808 20.0 \xdfC"},
	}, r.calls)
}

func TestPanelText(t *testing.T) {
	g := NewGrid(8, 2)
	p := NewPanel(g, nil, 2, 8)
	p.Text(0, "Azure IoT")
	p.Text(1, "ok")
	assert.Equal(t, "Azure Io\nok", g.String())
}

func TestGridClipping(t *testing.T) {
	g := NewGrid(4, 1)
	g.SetCursor(2, 0)
	g.Print([]byte("abcdef"))
	g.SetCursor(0, 3)
	g.Print([]byte("zz"))
	assert.Equal(t, "  ab", g.Line(0))
	assert.Equal(t, "", g.Line(5))
	g.ClearDisplay()
	assert.Equal(t, "", g.String())
}
