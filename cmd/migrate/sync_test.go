package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pages.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPages(t *testing.T) {
	testCases := []struct {
		name            string
		content         string
		expectedNumbers []int
		expectedMembers []int
	}{
		{
			name:            "Single page object",
			content:         `{"pageNumber":7,"members":[{"memberid":"m1"}]}`,
			expectedNumbers: []int{7},
			expectedMembers: []int{1},
		},
		{
			name:            "Array numbered by position",
			content:         ` [{"members":[{"memberid":"m1"},{"memberid":"m2"}]},{"members":[]},{"pageNumber":9,"members":[]}]`,
			expectedNumbers: []int{1, 2, 9},
			expectedMembers: []int{2, 0, 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pages, err := loadPages(writeFile(t, tc.content))
			require.NoError(t, err)
			require.Len(t, pages, len(tc.expectedNumbers))
			for i, page := range pages {
				assert.Equal(t, tc.expectedNumbers[i], page.PageNumber)
				assert.Len(t, page.Members, tc.expectedMembers[i])
			}
		})
	}
}

func TestLoadPages_Errors(t *testing.T) {
	_, err := loadPages(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = loadPages(writeFile(t, `{"members": "oops"}`))
	assert.Error(t, err)
}
