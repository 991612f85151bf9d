package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreQueue(t *testing.T) {
	var q ScoreQueue
	assert.Nil(t, q.Drain())

	q.Push(ScoreEvent{Points: 1, Tick: 3})
	q.Push(ScoreEvent{Points: 2, Tick: 4})
	assert.Equal(t, 2, q.Len())

	assert.Equal(t, []ScoreEvent{{Points: 1, Tick: 3}, {Points: 2, Tick: 4}}, q.Drain())
	assert.Equal(t, 0, q.Len())

	q.Push(ScoreEvent{Points: 1, Tick: 5})
	assert.Equal(t, []ScoreEvent{{Points: 1, Tick: 5}}, q.Drain())
}
