package dataset

import (
	"fmt"
	"math/rand"
)

// GenKind selects a dataset generation policy.
type GenKind string

const (
	GenRandom       GenKind = "random"
	GenSorted       GenKind = "sorted"
	GenReversed     GenKind = "reversed"
	GenNearlySorted GenKind = "nearly_sorted"
	GenWords        GenKind = "words" // string variant
)

// GenerateInts builds an int32 dataset of the given size. A fixed seed
// makes benchmark inputs reproducible across runs.
func GenerateInts(name string, kind GenKind, size int, seed int64) (*Dataset, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative size %d", size)
	}
	rng := rand.New(rand.NewSource(seed))
	values := make([]int32, size)

	switch kind {
	case GenRandom:
		for i := range values {
			values[i] = rng.Int31n(int32(size*10 + 1))
		}
	case GenSorted:
		// 等差加随机步长，保证严格有序
		var cur int32
		for i := range values {
			cur += rng.Int31n(9) + 1
			values[i] = cur
		}
	case GenReversed:
		var cur int32
		for i := size - 1; i >= 0; i-- {
			cur += rng.Int31n(9) + 1
			values[i] = cur
		}
	case GenNearlySorted:
		var cur int32
		for i := range values {
			cur += rng.Int31n(9) + 1
			values[i] = cur
		}
		// 打乱 5% 的相邻对
		swaps := size / 20
		for i := 0; i < swaps; i++ {
			j := rng.Intn(size - 1)
			values[j], values[j+1] = values[j+1], values[j]
		}
	default:
		return nil, fmt.Errorf("unknown int generation kind %q", kind)
	}

	return NewIntDataset(name, values), nil
}

var syllables = []string{
	"ba", "be", "bi", "bo", "bu", "da", "de", "di", "do", "du",
	"ka", "ke", "ki", "ko", "ku", "la", "le", "li", "lo", "lu",
	"ma", "me", "mi", "mo", "mu", "na", "ne", "ni", "no", "nu",
	"ra", "re", "ri", "ro", "ru", "sa", "se", "si", "so", "su",
	"ta", "te", "ti", "to", "tu", "za", "ze", "zi", "zo", "zu",
}

// GenerateWords builds a string dataset of pronounceable pseudo-words.
func GenerateWords(name string, size int, seed int64) (*Dataset, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative size %d", size)
	}
	rng := rand.New(rand.NewSource(seed))
	values := make([]string, size)
	for i := range values {
		parts := rng.Intn(3) + 2
		word := ""
		for p := 0; p < parts; p++ {
			word += syllables[rng.Intn(len(syllables))]
		}
		values[i] = word
	}
	return NewStringDataset(name, values), nil
}
