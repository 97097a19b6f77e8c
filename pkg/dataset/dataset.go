package dataset

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"algoviz/pkg/common"
)

// Dataset is a fixed-length, typed element sequence. Exactly one of Ints
// or Strings is populated, per Variant. The stored slices are the
// registry's own; consumers get copies via the snapshot methods so that
// sort kernels never mutate stored data.
type Dataset struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Variant   common.Variant `json:"variant"`
	Ints      []int32        `json:"ints,omitempty"`
	Strings   []string       `json:"strings,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewIntDataset(name string, values []int32) *Dataset {
	return &Dataset{
		ID:        uuid.NewString(),
		Name:      name,
		Variant:   common.VariantInt,
		Ints:      values,
		CreatedAt: time.Now(),
	}
}

func NewStringDataset(name string, values []string) *Dataset {
	return &Dataset{
		ID:        uuid.NewString(),
		Name:      name,
		Variant:   common.VariantString,
		Strings:   values,
		CreatedAt: time.Now(),
	}
}

func (d *Dataset) Size() int {
	if d.Variant == common.VariantInt {
		return len(d.Ints)
	}
	return len(d.Strings)
}

// IntSnapshot returns a private copy of the integer values.
func (d *Dataset) IntSnapshot() []int32 {
	cp := make([]int32, len(d.Ints))
	copy(cp, d.Ints)
	return cp
}

// StringSnapshot returns a private copy of the string values.
func (d *Dataset) StringSnapshot() []string {
	cp := make([]string, len(d.Strings))
	copy(cp, d.Strings)
	return cp
}

func (d *Dataset) String() string {
	return fmt.Sprintf("Dataset{ID: %s, Variant: %s, Size: %d}", d.ID, d.Variant, d.Size())
}
