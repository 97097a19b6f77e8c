package viz

import "algoviz/pkg/common"

// Recorder is the capability a kernel uses to emit visualization steps.
// Kernels receive it once per run and call it unconditionally; whether
// anything is captured depends on which implementation was injected.
// Presence or absence of a real recorder must never change a kernel's
// answer or its metrics counts.
type Recorder[E common.Element] interface {
	Initial(state []E, msg string)
	Check(state []E, index int, msg string)
	Range(state []E, left, right, mid int, msg string)
	Found(state []E, index int, msg string)
	NotFound(state []E, msg string)
}

// NullRecorder drops every step. Production runs use this so algorithm
// bodies never branch on a nil check.
type NullRecorder[E common.Element] struct{}

func NewNullRecorder[E common.Element]() *NullRecorder[E] { return &NullRecorder[E]{} }

func (*NullRecorder[E]) Initial(state []E, msg string) {}

func (*NullRecorder[E]) Check(state []E, index int, msg string) {}

func (*NullRecorder[E]) Range(state []E, left, right, mid int, msg string) {}

func (*NullRecorder[E]) Found(state []E, index int, msg string) {}

func (*NullRecorder[E]) NotFound(state []E, msg string) {}

// TraceRecorder captures the ordered step sequence for one run.
// Steps are append-only; sequence numbers start at 0.
type TraceRecorder[E common.Element] struct {
	steps []Step[E]
}

func NewTraceRecorder[E common.Element]() *TraceRecorder[E] {
	return &TraceRecorder[E]{}
}

func (t *TraceRecorder[E]) append(kind Kind, state []E, msg string, highlights []int, colors []string, bounds *Bounds) {
	t.steps = append(t.steps, Step[E]{
		Seq:         len(t.steps),
		Kind:        kind,
		State:       snapshot(state),
		Description: msg,
		Highlights:  highlights,
		Colors:      colors,
		Bounds:      bounds,
	})
}

func (t *TraceRecorder[E]) Initial(state []E, msg string) {
	t.append(KindInitial, state, msg, nil, nil, nil)
}

func (t *TraceRecorder[E]) Check(state []E, index int, msg string) {
	if index < 0 {
		t.append(KindCheck, state, msg, nil, nil, nil)
		return
	}
	t.append(KindCheck, state, msg, []int{index}, []string{"yellow"}, nil)
}

func (t *TraceRecorder[E]) Range(state []E, left, right, mid int, msg string) {
	t.append(KindRange, state, msg,
		[]int{left, mid, right},
		[]string{"blue", "yellow", "blue"},
		&Bounds{Left: left, Right: right})
}

func (t *TraceRecorder[E]) Found(state []E, index int, msg string) {
	if index < 0 {
		t.append(KindFound, state, msg, nil, nil, nil)
		return
	}
	t.append(KindFound, state, msg, []int{index}, []string{"green"}, nil)
}

func (t *TraceRecorder[E]) NotFound(state []E, msg string) {
	t.append(KindNotFound, state, msg, nil, nil, nil)
}

// Steps returns the recorded sequence. The returned slice is the
// recorder's own; callers must not mutate it.
func (t *TraceRecorder[E]) Steps() []Step[E] { return t.steps }

func (t *TraceRecorder[E]) Len() int { return len(t.steps) }

// snapshot 复制当前数组状态，后续步骤不会互相影响。
func snapshot[E common.Element](state []E) []E {
	cp := make([]E, len(state))
	copy(cp, state)
	return cp
}
