package logging

import (
	"testing"
)

func TestConstants(t *testing.T) {
	for name, value := range map[string]string{
		"FieldDocument": FieldDocument,
		"FieldCount":    FieldCount,
		"FieldRow":      FieldRow,
		"FieldReason":   FieldReason,
		"FieldScore":    FieldScore,
	} {
		if value == "" {
			t.Errorf("%s constant should not be empty", name)
		}
	}
}
