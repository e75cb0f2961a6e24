package lists

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listdeck/internal/record"
)

var fixedTime = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func TestStudentList_Add(t *testing.T) {
	l := NewStudentList(fixedClock)

	s, err := l.Add("KIM")
	require.NoError(t, err)
	assert.Equal(t, "KIM", s.Name)
	assert.Equal(t, fixedTime, s.AddedDate)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, l.Len())

	other, err := l.Add("LEE")
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, 2, l.Len())
}

func TestStudentList_AddDuplicate(t *testing.T) {
	l := NewStudentList(fixedClock)
	_, err := l.Add("KIM")
	require.NoError(t, err)

	_, err = l.Add("KIM")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Equal(t, "student 'KIM' already exists", err.Error())
	assert.Equal(t, 1, l.Len())
}

func TestStudentList_DuplicateIsCaseSensitive(t *testing.T) {
	l := NewStudentList(fixedClock)
	_, err := l.Add("kim")
	require.NoError(t, err)
	_, err = l.Add("KIM")
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())
}

func TestStudentList_RemoveAt(t *testing.T) {
	l := NewStudentList(fixedClock)
	for _, name := range []string{"KIM", "LEE", "PARK"} {
		_, err := l.Add(name)
		require.NoError(t, err)
	}

	removed, err := l.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, "LEE", removed.Name)

	want := []string{"KIM", "PARK"}
	var got []string
	for _, s := range l.Items() {
		got = append(got, s.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("roster mismatch (-want +got):\n%s", diff)
	}
}

func TestStudentList_RemoveAtOutOfRange(t *testing.T) {
	l := NewStudentList(fixedClock)
	_, err := l.Add("KIM")
	require.NoError(t, err)

	for _, pos := range []int{-1, 1, 5} {
		_, err := l.RemoveAt(pos)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIndex), "pos %d", pos)

		var ie *IndexError
		require.True(t, errors.As(err, &ie))
		assert.Equal(t, pos, ie.Position)
		assert.Equal(t, 1, ie.Length)
	}
	assert.Equal(t, 1, l.Len())
}

func TestStudentList_ItemsIsCopy(t *testing.T) {
	l := NewStudentList(fixedClock)
	_, err := l.Add("KIM")
	require.NoError(t, err)

	items := l.Items()
	items[0].Name = "MUTATED"

	got, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, "KIM", got.Name)
}

func TestStudentList_ClearAndInfo(t *testing.T) {
	l := NewStudentList(fixedClock)
	l.Clear()
	assert.Equal(t, StudentInfo{Count: 0}, l.Info())

	_, _ = l.Add("KIM")
	_, _ = l.Add("LEE")
	assert.Equal(t, StudentInfo{Count: 2}, l.Info())

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Items())

	// the roster is usable after a clear
	s, err := l.Add("KIM")
	require.NoError(t, err)
	if diff := cmp.Diff(record.Student{Name: "KIM", AddedDate: fixedTime}, s, cmpopts.IgnoreFields(record.Student{}, "ID")); diff != "" {
		t.Errorf("student mismatch (-want +got):\n%s", diff)
	}
}
