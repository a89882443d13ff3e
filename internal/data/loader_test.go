package data

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_DecodesEmbeddedData(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Projects)
	assert.NotEmpty(t, c.Team)
	assert.NotEmpty(t, c.Milestones)

	for _, p := range c.Projects {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title, "project %s has no title", p.ID)
		assert.NotEmpty(t, p.Contributions.Timeline, "project %s has no timeline", p.ID)
	}
}

func TestLoad_EmptyDirUsesEmbedded(t *testing.T) {
	fromLoad, err := Load("")
	require.NoError(t, err)
	fromDefault, err := Default()
	require.NoError(t, err)

	assert.Equal(t, fromDefault, fromLoad)
}

func TestLoad_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ProjectsFile, `[{"id":"p1","title":"One","category":"Web Application","status":"Completed","technologies":["Go"]}]`)
	writeFile(t, dir, TeamFile, `[{"id":"m1","name":"Member","social":{"github":"https://github.com/m1"}}]`)

	c, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, c.Projects, 1)
	assert.Equal(t, "One", c.Projects[0].Title)
	assert.Equal(t, []string{"Go"}, c.Projects[0].Technologies)
	require.Len(t, c.Team, 1)
	assert.Equal(t, "https://github.com/m1", c.Team[0].Social["github"])
	assert.NotNil(t, c.Milestones, "missing milestones file yields an empty list")
	assert.Empty(t, c.Milestones)
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "x")

	_, err := Load(filepath.Join(dir, "file.txt"))
	assert.Error(t, err)
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing projects",
			files:   fstest.MapFS{TeamFile: {Data: []byte(`[]`)}},
			wantErr: fs.ErrNotExist,
		},
		{
			name: "missing team",
			files: fstest.MapFS{
				ProjectsFile: {Data: []byte(`[]`)},
			},
			wantErr: fs.ErrNotExist,
		},
		{
			name: "malformed projects",
			files: fstest.MapFS{
				ProjectsFile: {Data: []byte(`{not json`)},
				TeamFile:     {Data: []byte(`[]`)},
			},
			wantMsg: "decode projects.json",
		},
		{
			name: "malformed milestones",
			files: fstest.MapFS{
				ProjectsFile:   {Data: []byte(`[]`)},
				TeamFile:       {Data: []byte(`[]`)},
				MilestonesFile: {Data: []byte(`[1,2`)},
			},
			wantMsg: "decode milestones.json",
		},
		{
			name: "duplicate project id",
			files: fstest.MapFS{
				ProjectsFile: {Data: []byte(`[{"id":"a"},{"id":"a"}]`)},
				TeamFile:     {Data: []byte(`[]`)},
			},
			wantErr: ErrDuplicateID,
		},
		{
			name: "missing project id",
			files: fstest.MapFS{
				ProjectsFile: {Data: []byte(`[{"title":"untitled"}]`)},
				TeamFile:     {Data: []byte(`[]`)},
			},
			wantErr: ErrMissingID,
		},
		{
			name: "duplicate member id",
			files: fstest.MapFS{
				ProjectsFile: {Data: []byte(`[]`)},
				TeamFile:     {Data: []byte(`[{"id":"x"},{"id":"x"}]`)},
			},
			wantErr: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.files)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}
