package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, Unclassified},
		{"plain error", errors.New("boom"), Unclassified},
		{"unique violation", pgError(pgerrcode.UniqueViolation), UniqueViolation},
		{"wrapped unique violation", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), UniqueViolation},
		{"foreign key violation", pgError(pgerrcode.ForeignKeyViolation), ForeignKeyViolation},
		{"not null violation", pgError(pgerrcode.NotNullViolation), Unclassified},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	classifier := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, Unclassified},
		{"plain error", errors.New("boom"), Unclassified},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, UniqueViolation},
		{"primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, UniqueViolation},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, ForeignKeyViolation},
		{"not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, Unclassified},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "unique_violation", UniqueViolation.String())
	assert.Equal(t, "foreign_key_violation", ForeignKeyViolation.String())
	assert.Equal(t, "unclassified", Unclassified.String())
}

func TestDBClassify_WithoutClassifier(t *testing.T) {
	db := &DB{}
	assert.Equal(t, Unclassified, db.classify(pgError(pgerrcode.UniqueViolation)))
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=1", sqliteDSN("file::memory:"))
	assert.Equal(t, "file:catalog.db?cache=shared&_foreign_keys=1", sqliteDSN("file:catalog.db?cache=shared"))
	assert.Equal(t, "catalog.db?_fk=1", sqliteDSN("catalog.db?_fk=1"))
}
