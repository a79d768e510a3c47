package dynarray

// noCopy makes go vet's copylocks check flag any by-value copy of a struct
// that contains it. Storage ownership transfers only through Swap, so a
// shallow struct copy would alias one block from two owners.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
