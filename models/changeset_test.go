package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeSet_Empty(t *testing.T) {
	assert.True(t, ChangeSet{}.Empty())
	assert.False(t, ChangeSet{Insert: []Case{{ID: "1"}}}.Empty())
	assert.False(t, ChangeSet{Update: []Case{{ID: "1"}}}.Empty())
	assert.False(t, ChangeSet{Delete: []string{"1"}}.Empty())
}

func TestChangeSet_Size(t *testing.T) {
	cs := ChangeSet{
		Insert: []Case{{ID: "1", Attributes: json.RawMessage(`{}`)}},
		Update: []Case{{ID: "2"}, {ID: "3"}},
		Delete: []string{"4", "5", "6"},
	}

	assert.Equal(t, 6, cs.Size())
	assert.Equal(t, 0, ChangeSet{}.Size())
}
