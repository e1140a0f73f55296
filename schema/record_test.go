package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatasetEmpty(t *testing.T) {
	assert.True(t, Dataset{}.Empty())
	assert.True(t, Dataset{Dates: []string{"3/1/20"}}.Empty())
	assert.False(t, Dataset{Records: []RawRecord{{Country: "Italy"}}}.Empty())
}

func TestDataTypeValidRecord(t *testing.T) {
	assert.True(t, DataTypeConfirmed.Valid())
	assert.True(t, DataTypeDeaths.Valid())
	assert.False(t, DataType("recovered").Valid())
}
