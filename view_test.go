// Copyright 2026 The hittest (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hittest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockView mocks the View interface.
type mockView struct {
	mock.Mock
}

func (m *mockView) PixelToCoordinate(p Pixel) Coord {
	args := m.Called(p)
	return args.Get(0).(Coord)
}

func (m *mockView) Resolution() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func TestDetector_DetectAtPixel(t *testing.T) {
	t.Run("NilView", func(t *testing.T) {
		d, err := New(nil)
		require.NoError(t, err)

		assert.PanicsWithValue(t, "hittest: nil view", func() {
			_, _ = d.DetectAtPixel(nil, Pixel{})
		})
	})

	t.Run("ConvertsPixelAndTolerance", func(t *testing.T) {
		d, err := New([]Feature{pointFeature("p", Coord{X: 100, Y: 108})})
		require.NoError(t, err)
		view := &mockView{}
		view.On("PixelToCoordinate", Pixel{X: 3, Y: 4}).Return(Coord{X: 100, Y: 100}).Once()
		view.On("Resolution").Return(2.0).Once()

		// Default tolerance is 5 pixels; at 2 map units per pixel the
		// map-space tolerance is 10, which admits the point 8 units
		// away.
		ms, err := d.DetectAtPixel(view, Pixel{X: 3, Y: 4})

		require.NoError(t, err)
		require.Equal(t, []string{"p"}, matchNames(ms))
		assert.InDelta(t, 8, ms[0].Distance, 1e-12)
		view.AssertExpectations(t)
	})

	t.Run("WithHitTolerance", func(t *testing.T) {
		d, err := New([]Feature{pointFeature("p", Coord{X: 100, Y: 108})})
		require.NoError(t, err)
		view := &mockView{}
		view.On("PixelToCoordinate", Pixel{X: 3, Y: 4}).Return(Coord{X: 100, Y: 100}).Once()
		view.On("Resolution").Return(2.0).Once()

		// 1 pixel at 2 map units per pixel is a map-space tolerance of
		// 2, which excludes the point 8 units away.
		ms, err := d.DetectAtPixel(view, Pixel{X: 3, Y: 4}, WithHitTolerance(1))

		require.NoError(t, err)
		assert.Len(t, ms, 0)
		view.AssertExpectations(t)
	})

	t.Run("NegativeTolerance", func(t *testing.T) {
		d, err := New(nil)
		require.NoError(t, err)
		view := &mockView{}
		view.On("PixelToCoordinate", mock.Anything).Return(Coord{}).Once()
		view.On("Resolution").Return(1.0).Once()

		ms, err := d.DetectAtPixel(view, Pixel{}, WithHitTolerance(-5))

		assert.Nil(t, ms)
		assert.EqualError(t, err, "hittest: invalid tolerance -5 (must be >= 0)")
	})
}
