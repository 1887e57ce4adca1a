package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

const (
	readmeFileName       = "README.md"
	gitDirectoryName     = ".git"
	sourceDirectoryName  = "src"
	nestedDirectoryName  = "deep"
	mainFileName         = "main.py"
	notesFileName        = "notes.txt"
	configurationContent = "depth: 1\nsize: false\n"
)

type recordingCopier struct {
	copied []string
	err    error
}

func (copier *recordingCopier) Copy(text string) error {
	copier.copied = append(copier.copied, text)
	return copier.err
}

func utf8Environment(name string) (string, bool) {
	if name == "LANG" {
		return "en_US.UTF-8", true
	}
	return "", false
}

func asciiEnvironment(string) (string, bool) {
	return "", false
}

// createFixture lays out:
//
//	root/
//	  .git/config
//	  src/main.py
//	  src/deep/notes.txt
//	  README.md
func createFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		filepath.Join(gitDirectoryName, "config"):                              "[core]",
		filepath.Join(sourceDirectoryName, mainFileName):                        "print('hi')\n",
		filepath.Join(sourceDirectoryName, nestedDirectoryName, notesFileName): "notes",
		readmeFileName: "hello",
	}
	for relativePath, content := range files {
		absolutePath := filepath.Join(root, relativePath)
		if err := os.MkdirAll(filepath.Dir(absolutePath), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", relativePath, err)
		}
		if err := os.WriteFile(absolutePath, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", relativePath, err)
		}
	}
	return root
}

func isolateHome(t *testing.T) {
	t.Helper()
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)
}

func runCommand(t *testing.T, workingDirectory string, lookupEnv func(string) (string, bool), copier *recordingCopier, arguments ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	dependencies := Dependencies{
		Stdout:           &stdout,
		LookupEnv:        lookupEnv,
		WorkingDirectory: workingDirectory,
	}
	if copier != nil {
		dependencies.Copier = copier
	}
	command := NewRootCommand(dependencies)
	command.SetArgs(normalizeBooleanFlagArguments(command, arguments))
	executionError := command.Execute()
	return stdout.String(), executionError
}

func TestRootCommandRendersTree(t *testing.T) {
	isolateHome(t)
	root := createFixture(t)

	testCases := []struct {
		name              string
		arguments         []string
		expectedFragments []string
		absentFragments   []string
	}{
		{
			name:      "defaults",
			arguments: []string{root},
			expectedFragments: []string{
				"Directory Tree",
				"Path: " + root,
				"Depth: 5 levels",
				"📁 src (",
				"🐍 main.py (12.0 B)",
				"📄 notes.txt (5.0 B)",
				"📄 README.md (5.0 B)",
				"Directories: 2",
				"Files: 3",
				"Total size: 22.0 B",
			},
			absentFragments: []string{gitDirectoryName},
		},
		{
			name:              "hidden_included",
			arguments:         []string{"--hidden", root},
			expectedFragments: []string{"📁 .git (", "config (6.0 B)", "Files: 4"},
		},
		{
			name:              "depth_limited",
			arguments:         []string{"-d", "1", root},
			expectedFragments: []string{"Depth: 1 levels", "📁 src (", "Directories: 1", "Files: 1"},
			absentFragments:   []string{mainFileName, nestedDirectoryName},
		},
		{
			name:              "sizes_disabled",
			arguments:         []string{"--no-size", root},
			expectedFragments: []string{"📁 src", "🐍 main.py", "Files: 3"},
			absentFragments:   []string{"Total size:", " B)"},
		},
		{
			name:              "depth_zero_lists_root_only",
			arguments:         []string{"--depth=0", root},
			expectedFragments: []string{"Directories: 0", "Files: 0"},
			absentFragments:   []string{readmeFileName},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			output, err := runCommand(t, root, utf8Environment, &recordingCopier{}, testCase.arguments...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, fragment := range testCase.expectedFragments {
				if !strings.Contains(output, fragment) {
					t.Fatalf("expected output to contain %q\n%s", fragment, output)
				}
			}
			for _, fragment := range testCase.absentFragments {
				if strings.Contains(output, fragment) {
					t.Fatalf("expected output to omit %q\n%s", fragment, output)
				}
			}
		})
	}
}

func TestRootCommandDefaultsToWorkingDirectory(t *testing.T) {
	isolateHome(t)
	root := createFixture(t)

	output, err := runCommand(t, root, asciiEnvironment, nil, "--no-size")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "Path: "+root) {
		t.Fatalf("expected working directory in header\n%s", output)
	}
	if !strings.Contains(output, "[DIR] src") || !strings.Contains(output, "`-- [FILE] README.md") {
		t.Fatalf("expected ascii glyphs and guides\n%s", output)
	}
}

func TestRootCommandRejectsInvalidTargets(t *testing.T) {
	isolateHome(t)
	root := createFixture(t)

	testCases := []struct {
		name            string
		target          string
		expectedError   error
		expectedMessage string
	}{
		{
			name:            "missing_path",
			target:          "does-not-exist",
			expectedError:   ErrPathNotFound,
			expectedMessage: "❌ path does not exist: does-not-exist\n",
		},
		{
			name:            "regular_file",
			target:          readmeFileName,
			expectedError:   ErrNotADirectory,
			expectedMessage: "❌ not a directory: README.md\n",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			output, err := runCommand(t, root, utf8Environment, nil, testCase.target)
			if !errors.Is(err, testCase.expectedError) {
				t.Fatalf("expected %v, got %v", testCase.expectedError, err)
			}
			if !IsReported(err) {
				t.Fatalf("expected error to be marked as reported: %v", err)
			}
			if output != testCase.expectedMessage {
				t.Fatalf("expected only the error line, got %q", output)
			}
		})
	}
}

func TestRootCommandRejectsNegativeDepth(t *testing.T) {
	isolateHome(t)
	root := createFixture(t)

	output, err := runCommand(t, root, utf8Environment, nil, "--depth", "-1", root)
	if err == nil {
		t.Fatalf("expected an error for negative depth")
	}
	if IsReported(err) {
		t.Fatalf("negative depth should not be reported as a target error")
	}
	if output != "" {
		t.Fatalf("expected no output, got %q", output)
	}
}

func TestRootCommandAppliesConfigurationDefaults(t *testing.T) {
	isolateHome(t)
	root := createFixture(t)
	if err := os.WriteFile(filepath.Join(root, ".rich-tree.yaml"), []byte(configurationContent), 0o644); err != nil {
		t.Fatalf("write configuration: %v", err)
	}

	output, err := runCommand(t, root, utf8Environment, nil, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "Depth: 1 levels") || strings.Contains(output, "Total size:") {
		t.Fatalf("expected configured depth and size defaults\n%s", output)
	}

	output, err = runCommand(t, root, utf8Environment, nil, "--depth", "3", "--no-size=false", root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(output, "Depth: 3 levels") || !strings.Contains(output, "Total size:") {
		t.Fatalf("expected flags to override configuration\n%s", output)
	}
}

func TestRootCommandCopiesPlainOutput(t *testing.T) {
	isolateHome(t)
	root := createFixture(t)

	copier := &recordingCopier{}
	output, err := runCommand(t, root, utf8Environment, copier, "--copy", root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(copier.copied) != 1 {
		t.Fatalf("expected one clipboard write, got %d", len(copier.copied))
	}
	if copier.copied[0] != output {
		t.Fatalf("expected clipboard text to match uncoloured output\nclipboard:\n%s\noutput:\n%s", copier.copied[0], output)
	}
	if strings.Contains(copier.copied[0], "\x1b[") {
		t.Fatalf("expected clipboard text without escape sequences")
	}
}

func TestRootCommandIgnoresClipboardFailures(t *testing.T) {
	isolateHome(t)
	root := createFixture(t)

	copier := &recordingCopier{err: errors.New("no clipboard")}
	if _, err := runCommand(t, root, utf8Environment, copier, "--copy", root); err != nil {
		t.Fatalf("clipboard failure should not fail the run: %v", err)
	}
	if len(copier.copied) != 1 {
		t.Fatalf("expected a clipboard attempt")
	}
}

func TestResolveAndValidatePathNamesUninspectableTargetOnce(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows reports a missing path below a regular file")
	}
	root := createFixture(t)
	target := filepath.Join(readmeFileName, "child")

	_, err := resolveAndValidatePath(root, target)
	if err == nil {
		t.Fatalf("expected an error for a path below a regular file")
	}
	if errors.Is(err, ErrPathNotFound) || errors.Is(err, ErrNotADirectory) {
		t.Fatalf("expected an inspection error, got %v", err)
	}
	message := err.Error()
	if !strings.HasPrefix(message, "inspecting '"+target+"'") || strings.Count(message, "stat ") != 1 {
		t.Fatalf("unexpected error message %q", message)
	}
}
