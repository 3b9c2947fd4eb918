package junit_test

import (
	"testing"

	"github.com/radiofrance/xmlreport/pkg/junit"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupScreenshots(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/artifacts/screenshots", 0o755))
	for _, file := range files {
		require.NoError(t, afero.WriteFile(fs, "/artifacts/screenshots/"+file, []byte("png"), 0o644))
	}

	return fs
}

func TestLoadScreenshots(t *testing.T) {
	t.Parallel()

	fs := setupScreenshots(t,
		"loginWithInvalidPassword_1.png",
		"loginWithInvalidPassword_2.jpg",
		"signup.png",
		"logcat.txt",
	)
	require.NoError(t, fs.MkdirAll("/artifacts/screenshots/nested.png", 0o755))

	tests := []struct {
		name     string
		patterns []string
		expected []string
	}{
		{
			name:     "default patterns",
			patterns: nil,
			expected: []string{"loginWithInvalidPassword_1.png", "loginWithInvalidPassword_2.jpg", "signup.png"},
		},
		{
			name:     "png only",
			patterns: []string{"*.png"},
			expected: []string{"loginWithInvalidPassword_1.png", "signup.png"},
		},
		{
			name:     "exclusion pattern",
			patterns: []string{"*", "!*.txt", "!signup*"},
			expected: []string{"loginWithInvalidPassword_1.png", "loginWithInvalidPassword_2.jpg"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			screenshots, err := junit.LoadScreenshots(fs, "/artifacts/screenshots", test.patterns)
			require.NoError(t, err)
			assert.Equal(t, "/artifacts/screenshots", screenshots.Dir)
			assert.Equal(t, test.expected, screenshots.Files)
		})
	}
}

func TestLoadScreenshots_MissingDirectory(t *testing.T) {
	t.Parallel()

	screenshots, err := junit.LoadScreenshots(afero.NewMemMapFs(), "/does/not/exist", nil)
	require.NoError(t, err)
	assert.Empty(t, screenshots.Files)
	assert.Empty(t, screenshots.Matching("anything"))
}

func TestLoadScreenshots_NotADirectory(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/artifacts/screenshots", []byte("oops"), 0o644))

	_, err := junit.LoadScreenshots(fs, "/artifacts/screenshots", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestLoadScreenshots_InvalidPattern(t *testing.T) {
	t.Parallel()

	fs := setupScreenshots(t, "a.png")

	_, err := junit.LoadScreenshots(fs, "/artifacts/screenshots", []string{"[invalid"})
	require.Error(t, err)
}

func TestScreenshots_Matching(t *testing.T) {
	t.Parallel()

	screenshots := &junit.Screenshots{
		Dir:   "shots",
		Files: []string{"loginWithInvalidPassword_1.png", "login_2.png", "signup.png"},
	}

	assert.Equal(t, []string{"shots/loginWithInvalidPassword_1.png"}, screenshots.Matching("loginWithInvalidPassword"))
	assert.Equal(t, []string{"shots/login_2.png"}, screenshots.Matching("login_"))
	assert.Empty(t, screenshots.Matching("logout"))
	assert.Empty(t, screenshots.Matching(""))

	var none *junit.Screenshots
	assert.Empty(t, none.Matching("login"))
}
