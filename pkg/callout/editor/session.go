// Package editor implements the direct-manipulation editing state
// machine: drag-to-position and inline text editing over one live CTA
// configuration. The two interaction modes are mutually exclusive.
package editor

import (
	"github.com/callouthq/callout/pkg/callout/models"
	"github.com/callouthq/callout/pkg/callout/placement"
)

// Field names an inline-editable text field
type Field string

const (
	FieldNone       Field = ""
	FieldMessage    Field = "message"
	FieldButtonText Field = "buttonText"
)

// EndReason says why an inline edit ended. All three currently commit;
// there is no draft buffer to discard.
type EndReason string

const (
	EndBlur    EndReason = "blur"
	EndConfirm EndReason = "confirm"
	EndCancel  EndReason = "cancel"
)

// PointerCapture is the globally-scoped pointer listener resource a
// drag holds. Global scope means a pointer-up outside the CTA surface
// still reaches the session, so a drag can never get stuck.
type PointerCapture interface {
	Acquire()
	Release()
}

// NopCapture is a no-op capture for headless use and tests
type NopCapture struct{}

func (NopCapture) Acquire() {}
func (NopCapture) Release() {}

// Session governs editing of one live CTA configuration. It owns the
// model by reference: every committed change lands directly on the
// model feeding the WYSIWYG preview.
type Session struct {
	data      *models.CtaData
	container placement.Size
	capture   PointerCapture

	editing  Field
	dragging bool
	drag     placement.Drag
}

// NewSession wraps the given live model for editing
func NewSession(data *models.CtaData, container placement.Size, capture PointerCapture) *Session {
	if capture == nil {
		capture = NopCapture{}
	}
	return &Session{data: data, container: container, capture: capture}
}

// Dragging reports whether a drag is in progress
func (s *Session) Dragging() bool {
	return s.dragging
}

// Editing returns the field currently in inline edit, or FieldNone
func (s *Session) Editing() Field {
	return s.editing
}

// StartDrag begins a drag at the given pointer position. Refused while
// a text field is in edit mode or a drag is already running. On entry
// the session records the start pointer and the element's current
// offset, acquires the pointer capture, and atomically switches the
// model to a custom position so the element is freely movable from
// here on, even if it was anchored before.
func (s *Session) StartDrag(pointer placement.Point) bool {
	if s.dragging || s.editing != FieldNone {
		return false
	}

	origin := s.currentOrigin()
	s.capture.Acquire()
	s.data.Position = models.PositionCustom
	s.data.CustomPosition = &models.Offset{X: origin.X, Y: origin.Y}
	s.drag = placement.Drag{Initial: origin, StartPointer: pointer, Pointer: pointer}
	s.dragging = true
	return true
}

// MoveDrag recomputes and commits the custom position for a pointer
// move. Every event commits immediately; the last one wins.
func (s *Session) MoveDrag(pointer placement.Point) {
	if !s.dragging {
		return
	}
	s.drag.Pointer = pointer
	pt := placement.Resolve(s.drag, s.container, placement.EstimateFootprint(s.data.Scale))
	s.data.CustomPosition = &models.Offset{X: pt.X, Y: pt.Y}
}

// EndDrag terminates the drag and releases the pointer capture. Safe
// to call wherever the pointer-up lands, and idempotent: the session
// always returns to idle.
func (s *Session) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.capture.Release()
}

// Close releases any held resources, terminating an in-flight drag
func (s *Session) Close() {
	s.EndDrag()
}

// StartEdit puts one text field into inline edit mode. Refused while a
// drag is in progress or another field is already editing; at most one
// field is editable at any time.
func (s *Session) StartEdit(field Field) bool {
	if s.dragging || s.editing != FieldNone {
		return false
	}
	if field != FieldMessage && field != FieldButtonText {
		return false
	}
	s.editing = field
	return true
}

// Input commits a keystroke's resulting text straight to the model.
// There is no draft buffer.
func (s *Session) Input(text string) {
	switch s.editing {
	case FieldMessage:
		s.data.Message = text
	case FieldButtonText:
		s.data.ButtonText = text
	}
}

// EndEdit leaves inline edit mode. Blur, confirm and cancel all behave
// the same: keystrokes were already committed, so there is nothing to
// roll back.
func (s *Session) EndEdit(reason EndReason) {
	_ = reason
	s.editing = FieldNone
}

// currentOrigin reports where the element sits right now: its custom
// offset if it has one, otherwise the origin of its named anchor.
func (s *Session) currentOrigin() placement.Point {
	if s.data.CustomPosition != nil {
		return placement.Point{X: s.data.CustomPosition.X, Y: s.data.CustomPosition.Y}
	}
	fp := placement.EstimateFootprint(s.data.Scale)
	if pt, ok := placement.AnchorOrigin(s.data.Position, s.container, fp); ok {
		return pt
	}
	return placement.Point{}
}
