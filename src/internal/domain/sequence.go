package domain

type SequenceKind string

const (
	SequenceCustomer    SequenceKind = "customer"
	SequenceAccount     SequenceKind = "account"
	SequenceTransaction SequenceKind = "transaction"
)

// SequenceRecord persists the last issued sequence number for one entity
// kind. Incrementing and saving it together with the entity it numbers
// keeps identifiers collision-free across restarts.
type SequenceRecord struct {
	Entity SequenceKind `json:"entity"`
	Value  uint64       `json:"value"`
}
