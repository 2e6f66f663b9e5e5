package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ═══════════════════════════════════════════════════════════════════════════
// Transcript 测试
// ═══════════════════════════════════════════════════════════════════════════

func TestTranscript_AppendOrder(t *testing.T) {
	tr := NewTranscript()
	assert.Equal(t, 0, tr.Len())

	tr.Append(SpeakerUser, "hi")
	tr.Append(SpeakerAgent, "hello")
	tr.Append(SpeakerUser, "it's slow")

	// 插入顺序即时间顺序
	turns := tr.Snapshot()
	require.Len(t, turns, 3)
	assert.Equal(t, Turn{Speaker: SpeakerUser, Text: "hi"}, turns[0])
	assert.Equal(t, Turn{Speaker: SpeakerAgent, Text: "hello"}, turns[1])
	assert.Equal(t, Turn{Speaker: SpeakerUser, Text: "it's slow"}, turns[2])
}

func TestTranscript_SnapshotIsCopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append(SpeakerUser, "hi")

	snap := tr.Snapshot()
	snap[0].Text = "mutated"
	snap = append(snap, Turn{Speaker: SpeakerAgent, Text: "extra"})
	_ = snap

	// 快照上的改动不影响记录本身
	turns := tr.Snapshot()
	require.Len(t, turns, 1)
	assert.Equal(t, "hi", turns[0].Text)
}

func TestTranscript_Reset(t *testing.T) {
	tr := NewTranscript()
	tr.Append(SpeakerUser, "hi")
	tr.Append(SpeakerAgent, "hello")

	tr.Reset()

	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.Snapshot())
}
