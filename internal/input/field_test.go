package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/molog/internal/input"
)

func TestField_TypingDoesNotCommit(t *testing.T) {
	var commits []string

	f := input.NewField("점심", input.OnCommit(func(s string) { commits = append(commits, s) }))

	f.Type("점심 식")
	f.Type("점심 식사")

	assert.Equal(t, "점심", f.Value())
	assert.Equal(t, "점심 식사", f.Draft())
	assert.True(t, f.Dirty())
	assert.Empty(t, commits)
}

func TestField_CommitEvents(t *testing.T) {
	tests := []struct {
		name   string
		commit func(f *input.Field) bool
	}{
		{name: "Blur", commit: (*input.Field).Blur},
		{name: "Enter", commit: (*input.Field).Enter},
		{name: "Close", commit: (*input.Field).Close},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var commits []string

			f := input.NewField("a", input.OnCommit(func(s string) { commits = append(commits, s) }))
			f.Type("b")

			assert.True(t, tt.commit(f))
			assert.Equal(t, "b", f.Value())
			assert.Equal(t, []string{"b"}, commits)

			// nothing new to commit
			assert.False(t, tt.commit(f))
			assert.Len(t, commits, 1)
		})
	}
}

func TestField_Reset(t *testing.T) {
	f := input.NewField("a")
	f.Type("draft")
	f.Reset("external")

	assert.Equal(t, "external", f.Value())
	assert.Equal(t, "external", f.Draft())
	assert.False(t, f.Dirty())
}

func TestAmountField(t *testing.T) {
	var committed []int64

	f := input.NewAmountField(12000, func(n int64) { committed = append(committed, n) })
	assert.Equal(t, "12,000", f.Draft())

	f.Type("12,0005")
	assert.Equal(t, "120,005", f.Draft())
	assert.Equal(t, int64(12000), f.Amount())
	assert.Empty(t, committed)

	f.Type("1a2b3원")
	assert.Equal(t, "123", f.Draft())

	assert.True(t, f.Blur())
	assert.Equal(t, []int64{123}, committed)
	assert.Equal(t, int64(123), f.Amount())

	f.Type("")
	assert.Equal(t, "", f.Draft())
	assert.True(t, f.Enter())
	assert.Equal(t, []int64{123, 0}, committed)

	f.ResetAmount(4500)
	assert.Equal(t, "4,500", f.Value())
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "", input.GroupDigits(""))
	assert.Equal(t, "", input.GroupDigits("원"))
	assert.Equal(t, "0", input.GroupDigits("0"))
	assert.Equal(t, "3,500,000", input.GroupDigits("3500000"))
}
