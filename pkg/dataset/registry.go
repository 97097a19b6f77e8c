package dataset

import (
	"sync"

	"github.com/google/btree"
)

type item struct {
	id string
	ds *Dataset
}

func (i item) Less(than btree.Item) bool {
	return i.id < than.(item).id
}

// Registry is the in-memory dataset store. Datasets are kept ordered by ID
// in a btree so listings are deterministic.
type Registry struct {
	tree *btree.BTree
	lock sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		tree: btree.New(32),
	}
}

func (r *Registry) Put(ds *Dataset) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.tree.ReplaceOrInsert(item{id: ds.ID, ds: ds})
}

func (r *Registry) Get(id string) (*Dataset, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	res := r.tree.Get(item{id: id})
	if res == nil {
		return nil, false
	}
	return res.(item).ds, true
}

func (r *Registry) Delete(id string) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.tree.Delete(item{id: id}) != nil
}

// List returns all datasets in ID order.
func (r *Registry) List() []*Dataset {
	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]*Dataset, 0, r.tree.Len())
	r.tree.Ascend(func(i btree.Item) bool {
		out = append(out, i.(item).ds)
		return true
	})
	return out
}

func (r *Registry) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.tree.Len()
}

func (r *Registry) Clear() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.tree.Clear(false)
}
