package engine

import "sort"

// Document owns the functions and the input/output mapping for one project.
// It is the single source of truth the UI reads names from.
type Document struct {
	functions map[uint32]*Function
	nextID    uint32
	ioMap     *InputOutputMap
}

// NewDocument creates an empty document with a fresh input/output map
func NewDocument() *Document {
	return &Document{
		functions: make(map[uint32]*Function),
		ioMap:     NewInputOutputMap(),
	}
}

// InputOutputMap returns the document's input/output mapping
func (d *Document) InputOutputMap() *InputOutputMap {
	return d.ioMap
}

// AddFunction registers a new function and assigns it the next free id
func (d *Document) AddFunction(name string, ftype FunctionType) *Function {
	f := &Function{ID: d.nextID, Name: name, Type: ftype}
	d.functions[f.ID] = f
	d.nextID++
	return f
}

// RestoreFunction inserts a function keeping its persisted id, bumping the
// id counter past it.
func (d *Document) RestoreFunction(f Function) *Function {
	dup := f
	d.functions[dup.ID] = &dup
	if dup.ID >= d.nextID {
		d.nextID = dup.ID + 1
	}
	return &dup
}

// Function returns the function with the given id, or nil if it does not
// exist (including the NoFunction sentinel).
func (d *Document) Function(id uint32) *Function {
	return d.functions[id]
}

// Functions returns all functions sorted by id
func (d *Document) Functions() []*Function {
	out := make([]*Function, 0, len(d.functions))
	for _, f := range d.functions {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// FunctionsOfType returns the functions matching ftype, sorted by id
func (d *Document) FunctionsOfType(ftype FunctionType) []*Function {
	var out []*Function
	for _, f := range d.Functions() {
		if f.Type == ftype {
			out = append(out, f)
		}
	}
	return out
}
