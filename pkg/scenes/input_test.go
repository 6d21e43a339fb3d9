package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonewx/starlaser/pkg/systems"
)

func TestTouchSignals(t *testing.T) {
	const width = 600.0

	tests := []struct {
		name   string
		held   []float64
		tapped []float64
		want   systems.InputSignals
	}{
		{"无触摸", nil, nil, systems.InputSignals{}},
		{"按住左侧", []float64{50}, nil, systems.InputSignals{MoveLeft: true}},
		{"按住右侧", []float64{550}, nil, systems.InputSignals{MoveRight: true}},
		{"按住中间不移动", []float64{300}, nil, systems.InputSignals{}},
		{"点击中间开火", []float64{300}, []float64{300}, systems.InputSignals{FireEdge: true}},
		{"点击左侧不开火", []float64{10}, []float64{10}, systems.InputSignals{MoveLeft: true}},
		{"双指左移加开火", []float64{10, 300}, []float64{300}, systems.InputSignals{MoveLeft: true, FireEdge: true}},
		{"右区边界", []float64{400}, nil, systems.InputSignals{MoveRight: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, touchSignals(tt.held, tt.tapped, width))
		})
	}
}

func TestMergeSignals(t *testing.T) {
	got := mergeSignals(
		systems.InputSignals{MoveLeft: true},
		systems.InputSignals{FireEdge: true},
	)
	assert.Equal(t, systems.InputSignals{MoveLeft: true, FireEdge: true}, got)
}
