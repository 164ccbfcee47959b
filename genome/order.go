package genome

// Order ranks chromosomes by their position in a chromosome list. Chromosomes that are
// not in the list sort after all listed chromosomes, by name.
type Order struct {
	rank map[string]int
}

// NewOrder returns the ordering given by chroms.
func NewOrder(chroms []string) Order {
	o := Order{rank: make(map[string]int, len(chroms))}
	for i := range chroms {
		if _, ok := o.rank[chroms[i]]; !ok {
			o.rank[chroms[i]] = i
		}
	}
	return o
}

// Has reports whether chrom is in the list.
func (o Order) Has(chrom string) bool {
	_, ok := o.rank[chrom]
	return ok
}

// Rank of chrom in the list, or the list length if it is absent.
func (o Order) Rank(chrom string) int {
	if r, ok := o.rank[chrom]; ok {
		return r
	}
	return len(o.rank)
}

// Less orders two loci by chromosome rank and then position.
func (o Order) Less(chromA string, posA int, chromB string, posB int) bool {
	ra, rb := o.Rank(chromA), o.Rank(chromB)
	switch {
	case ra != rb:
		return ra < rb
	case chromA != chromB:
		return chromA < chromB
	default:
		return posA < posB
	}
}
