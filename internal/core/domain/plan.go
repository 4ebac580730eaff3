package domain

// Action tags one dynamic-update operation.
type Action string

const (
	// ActionAdd adds a record value on the server.
	ActionAdd Action = "add"
	// ActionDelete removes a record value from the server.
	ActionDelete Action = "delete"
)

// Operation is one dynamic-update statement: add or delete a single record value.
type Operation struct {
	Action Action
	Name   string
	TTL    uint32
	Type   RecordType
	Value  string
}

// Plan is the ordered list of operations that converges one record to its
// desired state. The ordering is load-bearing: delete operations always precede
// add operations, so a changed record is removed under its previously-live type
// before the new content is written.
type Plan struct {
	Record *Record // the desired record this plan converges
	Ops    []Operation
}

// Empty reports whether the plan contains no operations, i.e. the record is
// already in its desired state.
func (p *Plan) Empty() bool {
	return p == nil || len(p.Ops) == 0
}
