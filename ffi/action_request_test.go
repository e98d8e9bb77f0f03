package ffi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/accesskit-go/codec"
	"github.com/wippyai/accesskit-go/errors"
	"github.com/wippyai/accesskit-go/tree"
)

func TestActionRequestLayout(t *testing.T) {
	assert.Equal(t, uintptr(64), ActionRequestSize)
	assert.Equal(t, uintptr(16), TextPositionLayout.Size)
	assert.Equal(t, uintptr(32), TextSelectionLayout.Size)
	assert.Equal(t, uintptr(16), CustomActionLayout.Size)
	assert.Equal(t, uint64(16), uint64(actionRequest.hasData))
	assert.Equal(t, uint64(24), uint64(actionRequest.tag))
	assert.Equal(t, uint64(32), uint64(actionRequest.payload))
}

func TestActionRequestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		req  tree.ActionRequest
	}{
		{"no data", tree.ActionRequest{Action: tree.ActionClick, Target: 1}},
		{"custom action", tree.ActionRequest{Action: tree.ActionCustomAction, Target: 2, Data: tree.CustomActionData{ID: -4}}},
		{"value", tree.ActionRequest{Action: tree.ActionSetValue, Target: 3, Data: tree.ValueData{Value: "héllo"}}},
		{"empty value", tree.ActionRequest{Action: tree.ActionSetValue, Target: 3, Data: tree.ValueData{}}},
		{"numeric value", tree.ActionRequest{Action: tree.ActionSetValue, Target: 4, Data: tree.NumericValueData{Value: 2.5}}},
		{"scroll unit", tree.ActionRequest{Action: tree.ActionScrollDown, Target: 5, Data: tree.ScrollUnitData{Unit: tree.ScrollUnitPage}}},
		{"scroll hint", tree.ActionRequest{Action: tree.ActionScrollIntoView, Target: 6, Data: tree.ScrollHintData{Hint: tree.ScrollHintRightEdge}}},
		{"scroll to point", tree.ActionRequest{Action: tree.ActionScrollToPoint, Target: 7, Data: tree.ScrollToPointData{Point: tree.Point{X: 1, Y: 2}}}},
		{"scroll offset", tree.ActionRequest{Action: tree.ActionSetScrollOffset, Target: 8, Data: tree.SetScrollOffsetData{Offset: tree.Point{X: -3, Y: 4}}}},
		{"text selection", tree.ActionRequest{Action: tree.ActionSetTextSelection, Target: 9, Data: tree.SetTextSelectionData{
			Selection: tree.TextSelection{
				Anchor: tree.TextPosition{Node: 9, CharacterIndex: 0},
				Focus:  tree.TextPosition{Node: 10, CharacterIndex: 12},
			},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, heap := newBoundary(t)

			addr, err := b.EncodeActionRequest(&tt.req)
			require.NoError(t, err)

			got, err := b.DecodeActionRequest(addr)
			require.NoError(t, err)
			assert.Equal(t, tt.req, *got)

			b.ActionRequestFree(addr)
			assert.Equal(t, 0, heap.Live())
		})
	}
}

func TestActionRequestEmbeddedNul(t *testing.T) {
	b, heap := newBoundary(t)
	_, err := b.EncodeActionRequest(&tree.ActionRequest{
		Action: tree.ActionSetValue,
		Data:   tree.ValueData{Value: "a\x00"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsContractViolation(err))
	assert.Equal(t, 0, heap.Live(), "partial record is freed")
}

func TestActionRequestInvalidTag(t *testing.T) {
	b, _ := newBoundary(t)
	addr, err := b.EncodeActionRequest(&tree.ActionRequest{Action: tree.ActionFocus, Data: tree.CustomActionData{ID: 1}})
	require.NoError(t, err)
	require.NoError(t, codec.U32.Store(b.Memory(), addr+actionRequest.tag, 42))

	_, err = b.DecodeActionRequest(addr)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindInvalidDiscriminant, e.Kind)

	b.ActionRequestFree(addr)
}

func TestActionRequestFreeNull(t *testing.T) {
	b, _ := newBoundary(t)
	requireViolation(t, errors.KindNilPointer, func() { b.ActionRequestFree(0) })
}
