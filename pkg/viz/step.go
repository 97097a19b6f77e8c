package viz

import "algoviz/pkg/common"

// Kind 标记一条可视化步骤的事件类型。
type Kind string

const (
	KindInitial  Kind = "INITIAL"
	KindCheck    Kind = "CHECK"
	KindRange    Kind = "RANGE"
	KindFound    Kind = "FOUND"
	KindNotFound Kind = "NOT_FOUND"
)

// Bounds marks the active [Left, Right] region for divide-and-conquer display.
type Bounds struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Step is one immutable snapshot of algorithm progress. State is a full
// copy taken at record time, so later steps never alias earlier ones even
// when the underlying array is mutated by a sort.
type Step[E common.Element] struct {
	Seq         int      `json:"seq"`
	Kind        Kind     `json:"kind"`
	State       []E      `json:"state"`
	Description string   `json:"description"`
	Highlights  []int    `json:"highlights,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Bounds      *Bounds  `json:"bounds,omitempty"`
}

// StepRecord is the variant-neutral wire view of a Step, used by the API
// and the TCP channel where the element type is not statically known.
type StepRecord struct {
	Seq         int      `json:"seq"`
	Kind        Kind     `json:"kind"`
	IntState    []int32  `json:"int_state,omitempty"`
	StringState []string `json:"string_state,omitempty"`
	Description string   `json:"description"`
	Highlights  []int    `json:"highlights,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Bounds      *Bounds  `json:"bounds,omitempty"`
}

// Records converts typed steps to their wire view.
func Records[E common.Element](steps []Step[E]) []StepRecord {
	out := make([]StepRecord, 0, len(steps))
	for _, s := range steps {
		rec := StepRecord{
			Seq:         s.Seq,
			Kind:        s.Kind,
			Description: s.Description,
			Highlights:  s.Highlights,
			Colors:      s.Colors,
			Bounds:      s.Bounds,
		}
		switch state := any(s.State).(type) {
		case []int32:
			rec.IntState = state
		case []string:
			rec.StringState = state
		}
		out = append(out, rec)
	}
	return out
}
