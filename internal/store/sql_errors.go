package store

// ErrorClassification is the result of [ErrorClassificator.Classify]. It tells
// repositories which domain error a failed statement corresponds to.
type ErrorClassification int

const (
	// Unclassified covers every error that has no domain meaning.
	Unclassified ErrorClassification = iota

	// UniqueViolation means a unique or primary key constraint rejected the
	// statement.
	UniqueViolation

	// ForeignKeyViolation means a referenced parent row does not exist.
	ForeignKeyViolation
)

func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	default:
		return "unclassified"
	}
}
