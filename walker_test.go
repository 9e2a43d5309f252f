package templatize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// buildFixtureTree writes a small project with a token in contents, in a
// file name, in a directory name, plus a binary asset and an untouched file.
func buildFixtureTree(t *testing.T, root string) {
	t.Helper()
	writeTestFile(t, filepath.Join(root, "readme.md"), []byte("an example-name project with example-name refs\n"))
	writeTestFile(t, filepath.Join(root, "example-name", "example-name.txt"), []byte("plain\n"))
	writeTestFile(t, filepath.Join(root, "other.txt"), []byte("nothing here\n"))
	writeTestFile(t, filepath.Join(root, "logo.bin"), []byte{0xff, 0xfe, 0x00, 0x41})
}

func TestProcessSingleFileTarget(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "example-name.txt")
	writeTestFile(t, path, []byte("the example-name file\n"))

	r := NewExactReplacer("example-name", "{{ project-name }}")
	result, err := Process(path, r, Options{Paths: true, Contents: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, Result{FilesProcessed: 1, PathsRenamed: 1, ContentChanges: 1}, result)

	renamed := filepath.Join(dir, "{{ project-name }}.txt")
	assert.Equal(t, "the {{ project-name }} file\n", readTestFile(t, renamed))
	assert.NoFileExists(t, path)
}

func TestProcessTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	buildFixtureTree(t, root)

	r := NewExactReplacer("example-name", "{{ project-name }}")
	result, err := Process(root, r, Options{Paths: true, Contents: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, result.FilesProcessed)
	assert.Equal(t, 1, result.ContentChanges)
	assert.Equal(t, 2, result.PathsRenamed) // the directory and the file inside it

	assert.Equal(t, "an {{ project-name }} project with {{ project-name }} refs\n",
		readTestFile(t, filepath.Join(root, "readme.md")))
	assert.FileExists(t, filepath.Join(root, "{{ project-name }}", "{{ project-name }}.txt"))
	assert.NoDirExists(t, filepath.Join(root, "example-name"))
}

func TestTargetDirectoryRenamedLast(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "example-name")
	writeTestFile(t, filepath.Join(root, "main.go"), []byte("package example\n"))

	r := NewExactReplacer("example-name", "{{ project-name }}")
	result, err := Process(root, r, Options{Paths: true, Contents: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.PathsRenamed)
	assert.FileExists(t, filepath.Join(parent, "{{ project-name }}", "main.go"))
	assert.NoDirExists(t, root)
}

func TestNestedDirectoriesRenamedBottomUp(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	inner := filepath.Join(root, "example-name", "example-name", "deep.txt")
	writeTestFile(t, inner, []byte("an example-name dep\n"))

	r := NewExactReplacer("example-name", "{{ project-name }}")
	result, err := Process(root, r, Options{Paths: true, Contents: true}, nil)
	require.NoError(t, err)

	final := filepath.Join(root, "{{ project-name }}", "{{ project-name }}", "deep.txt")
	assert.Equal(t, "an {{ project-name }} dep\n", readTestFile(t, final))
	assert.Equal(t, 2, result.PathsRenamed)
}

func TestDryRunCountersMatchRealRun(t *testing.T) {
	dryRoot := filepath.Join(t.TempDir(), "proj")
	realRoot := filepath.Join(t.TempDir(), "proj")
	buildFixtureTree(t, dryRoot)
	buildFixtureTree(t, realRoot)

	r := NewExactReplacer("example-name", "{{ project-name }}")
	opts := Options{Paths: true, Contents: true}

	dryResult, err := Process(dryRoot, r, Options{Paths: true, Contents: true, DryRun: true}, nil)
	require.NoError(t, err)
	realResult, err := Process(realRoot, r, opts, nil)
	require.NoError(t, err)

	assert.Equal(t, realResult, dryResult)

	// the dry run left the tree untouched
	assert.FileExists(t, filepath.Join(dryRoot, "example-name", "example-name.txt"))
	assert.Equal(t, "an example-name project with example-name refs\n",
		readTestFile(t, filepath.Join(dryRoot, "readme.md")))
}

func TestBinaryFileSkippedForContent(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeTestFile(t, filepath.Join(root, "example-name.bin"), []byte{0xff, 0xfe, 0x00})

	r := NewExactReplacer("example-name", "{{ project-name }}")
	result, err := Process(root, r, Options{Paths: true, Contents: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesProcessed)
	assert.Equal(t, 0, result.ContentChanges)
	// still eligible for renaming
	assert.FileExists(t, filepath.Join(root, "{{ project-name }}.bin"))
}

func TestMultiSegmentSubtreeMove(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeTestFile(t, filepath.Join(root, "src", "main", "java", "com", "acme", "widgets", "User.java"),
		[]byte("public class User {}\n"))

	r := NewExactReplacer("com/acme/widgets", "{{ package-root }}")
	result, err := Process(root, r, Options{Paths: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.PathsRenamed)
	assert.FileExists(t, filepath.Join(root, "src", "main", "java", "{{ package-root }}", "User.java"))
	assert.NoDirExists(t, filepath.Join(root, "src", "main", "java", "com", "acme", "widgets"))
}

func TestMultiSegmentMoveCreatesParents(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeTestFile(t, filepath.Join(root, "src", "com", "acme", "widgets", "User.java"),
		[]byte("public class User {}\n"))

	r := NewExactReplacer("com/acme/widgets", "pkg/{{ package-root }}")
	_, err := Process(root, r, Options{Paths: true}, nil)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(root, "src", "pkg", "{{ package-root }}", "User.java"))
}

type denyAll struct{}

func (denyAll) Content(ContentChange) (bool, error) { return false, nil }
func (denyAll) Path(PathChange) (bool, error)       { return false, nil }

func TestDeniedChangesAreSkippedAndUncounted(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	buildFixtureTree(t, root)

	r := NewExactReplacer("example-name", "{{ project-name }}")
	result, err := Process(root, r, Options{Paths: true, Contents: true}, denyAll{})
	require.NoError(t, err)

	assert.Equal(t, 4, result.FilesProcessed)
	assert.Equal(t, 0, result.ContentChanges)
	assert.Equal(t, 0, result.PathsRenamed)
	assert.FileExists(t, filepath.Join(root, "example-name", "example-name.txt"))
}

type failingApprover struct{}

func (failingApprover) Content(ContentChange) (bool, error) {
	return false, assert.AnError
}
func (failingApprover) Path(PathChange) (bool, error) { return false, assert.AnError }

func TestApproverErrorAbortsRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	buildFixtureTree(t, root)

	r := NewExactReplacer("example-name", "{{ project-name }}")
	_, err := Process(root, r, Options{Paths: true, Contents: true}, failingApprover{})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMissingTarget(t *testing.T) {
	r := NewExactReplacer("a-b", "c-d")
	_, err := Process(filepath.Join(t.TempDir(), "nope"), r, Options{Contents: true}, nil)
	assert.Error(t, err)
}

func TestEscapeTreeRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeTestFile(t, filepath.Join(root, "greeting.html"), []byte("Hi {{ name }}!\n"))
	writeTestFile(t, filepath.Join(root, "plain.txt"), []byte("no syntax\n"))

	r, err := NewEscapeReplacer()
	require.NoError(t, err)

	result, err := Process(root, r, Options{Contents: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesProcessed)
	assert.Equal(t, 1, result.ContentChanges)
	assert.Equal(t, "Hi {{'{'}}{ name }}!\n", readTestFile(t, filepath.Join(root, "greeting.html")))
}

func TestShapeTreeRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "proj")
	writeTestFile(t, filepath.Join(root, "ExampleName.java"),
		[]byte("final ExampleName exampleName = new ExampleName();\n"))

	r, err := NewShapeReplacer("example-name", "{{ project-name }}")
	require.NoError(t, err)

	result, err := Process(root, r, Options{Paths: true, Contents: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ContentChanges)
	assert.Equal(t, 1, result.PathsRenamed)
	assert.Equal(t, "final {{ ProjectName }} {{ projectName }} = new {{ ProjectName }}();\n",
		readTestFile(t, filepath.Join(root, "{{ ProjectName }}.java")))
}
