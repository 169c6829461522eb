package ir

// Block is a basic block, usable as a successor target.
type Block struct {
	label string
}

// NewBlock creates a block with a label.
func NewBlock(label string) *Block {
	return &Block{label: label}
}

func (b *Block) Label() string { return b.label }

// Region is an ordered list of blocks owned by an operation.
type Region struct {
	blocks []*Block
}

// NewRegion creates an empty region.
func NewRegion() *Region {
	return &Region{}
}

// AppendBlock adds a block at the end of the region.
func (r *Region) AppendBlock(b *Block) {
	r.blocks = append(r.blocks, b)
}

func (r *Region) Blocks() []*Block { return r.blocks }
