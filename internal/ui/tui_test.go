package ui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todofs/internal/testutil"
	"todofs/internal/view"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, svc *testutil.FakeService) *model {
	t.Helper()
	v, err := view.Load(context.Background(), svc, testutil.DefaultList)
	require.NoError(t, err)
	return newModel(context.Background(), v)
}

func TestModel_ToggleWritesThrough(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultList, "Buy milk", false)
	svc.AddTask(testutil.DefaultList, "Call mom", false)
	m := newTestModel(t, svc)

	m.Update(runes("j"))
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	task, _ := svc.Task(testutil.DefaultList, "Call mom")
	assert.True(t, task.Done)
	first, _ := svc.Task(testutil.DefaultList, "Buy milk")
	assert.False(t, first.Done)
	assert.Equal(t, 1, svc.SaveCalls)

	// Rendering does not persist anything.
	_ = m.View()
	_ = m.View()
	assert.Equal(t, 1, svc.SaveCalls)
}

func TestModel_CursorBounds(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultList, "a", false)
	svc.AddTask(testutil.DefaultList, "b", false)
	m := newTestModel(t, svc)

	m.Update(runes("k"))
	assert.Equal(t, 0, m.cursor)
	m.Update(runes("j"))
	m.Update(runes("j"))
	assert.Equal(t, 1, m.cursor)
}

func TestModel_AddFlow(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newTestModel(t, svc)

	m.Update(runes("a"))
	require.Equal(t, modeAdd, m.mode)

	m.Update(runes("Buy milk"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeBrowse, m.mode)
	task, ok := svc.Task(testutil.DefaultList, "Buy milk")
	require.True(t, ok)
	assert.False(t, task.Done)
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "[ ] Buy milk")
}

func TestModel_AddBlankShowsError(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newTestModel(t, svc)

	m.Update(runes("a"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.ErrorIs(t, m.err, view.ErrBlankName)
	assert.Equal(t, 0, svc.SaveCalls)
	assert.Contains(t, m.View(), "task name required")
}

func TestModel_AddCancel(t *testing.T) {
	svc := testutil.NewFakeService()
	m := newTestModel(t, svc)

	m.Update(runes("a"))
	m.Update(runes("draft"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "", m.input.Value())
	assert.Equal(t, 0, svc.SaveCalls)
}

func TestModel_Remove(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultList, "a", false)
	svc.AddTask(testutil.DefaultList, "b", false)
	m := newTestModel(t, svc)

	m.Update(runes("j"))
	m.Update(runes("d"))

	_, ok := svc.Task(testutil.DefaultList, "b")
	assert.False(t, ok)
	assert.Equal(t, 0, m.cursor)

	m.Update(runes("x"))
	m.Update(runes("x"))
	assert.Equal(t, 0, m.view.Len())
	assert.Contains(t, m.View(), "No tasks")
}

func TestModel_StoreErrorIsShown(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultList, "a", false)
	m := newTestModel(t, svc)

	svc.SaveTaskErr = errors.New("disk full")
	m.Update(runes(" "))

	assert.Contains(t, m.View(), "disk full")
	task, _ := m.view.Task(0)
	assert.False(t, task.Done)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, testutil.NewFakeService())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRun_RequiresTTY(t *testing.T) {
	v, err := view.Load(context.Background(), testutil.NewFakeService(), testutil.DefaultList)
	require.NoError(t, err)

	err = Run(context.Background(), v, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrNotTTY)
}
