package adapter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "golcov.dev/pkg/golcov/internal/model"
)

const calcSource = `package pkg

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
`

const calcProfile = `mode: set
example.com/demo/pkg/calc.go:3.21,4.12 1 1
example.com/demo/pkg/calc.go:4.12,6.3 1 0
example.com/demo/pkg/calc.go:7.2,7.10 1 1
`

type demoProject struct {
	root     string
	dataFile string
	calc     string
}

func newDemoProject(t *testing.T) demoProject {
	t.Helper()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "go.mod"), "module example.com/demo\n\ngo 1.22\n")
	mustMkdir(t, filepath.Join(root, "pkg"))

	calc := filepath.Join(root, "pkg", "calc.go")
	writeTestFile(t, calc, calcSource)

	dataFile := filepath.Join(root, "cover.out")
	writeTestFile(t, dataFile, calcProfile)

	return demoProject{root: root, dataFile: dataFile, calc: calc}
}

func loadDemo(t *testing.T, project demoProject, warnings *bytes.Buffer, cfg m.ReportConfig) CoverageData {
	t.Helper()

	cfg.Root = m.Path(project.root)
	loader := NewGoCoverageLoader(NewLocalSourceFSAdapter(), NewLocalGoFileAdapter(), warnings)

	data, err := loader.Load(m.Path(project.dataFile), cfg)
	require.NoError(t, err)

	return data
}

func TestGoCoverageLoader_Load(t *testing.T) {
	project := newDemoProject(t)
	data := loadDemo(t, project, &bytes.Buffer{}, m.ReportConfig{})

	assert.Equal(t, m.Path(project.root), data.ProjectRoot())

	pairs := data.FileReporters()
	require.Len(t, pairs, 1)
	assert.Equal(t, "example.com/demo/pkg/calc.go", pairs[0].Reference())
	assert.Equal(t, m.Path(project.calc), pairs[0].Reporter().Filename)
	assert.Equal(t, m.Path("pkg/calc.go"), pairs[0].Reporter().RelativeFilename())
}

func TestGoCoverageLoader_Load_Errors(t *testing.T) {
	loader := NewGoCoverageLoader(NewLocalSourceFSAdapter(), NewLocalGoFileAdapter(), &bytes.Buffer{})

	t.Run("missing data file", func(t *testing.T) {
		_, err := loader.Load(m.Path(filepath.Join(t.TempDir(), "cover.out")), m.ReportConfig{})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("corrupt data file", func(t *testing.T) {
		dataFile := filepath.Join(t.TempDir(), "cover.out")
		writeTestFile(t, dataFile, "this is not a coverage profile\n")

		_, err := loader.Load(m.Path(dataFile), m.ReportConfig{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse coverage data")
	})
}

func TestGoCoverageData_Analyze(t *testing.T) {
	project := newDemoProject(t)
	data := loadDemo(t, project, &bytes.Buffer{}, m.ReportConfig{})

	analysis, err := data.Analyze("example.com/demo/pkg/calc.go")
	require.NoError(t, err)

	assert.Equal(t, []int{3, 4, 5, 6, 7}, analysis.Statements)
	assert.Equal(t, []int{5, 6}, analysis.Missing)

	lines, err := data.SourceTokenLines(m.FileReporter{Filename: m.Path(project.calc)})
	require.NoError(t, err)
	assert.Len(t, lines, 8)
}

func TestGoCoverageData_Analyze_UnknownReference(t *testing.T) {
	project := newDemoProject(t)
	data := loadDemo(t, project, &bytes.Buffer{}, m.ReportConfig{})

	_, err := data.Analyze("example.com/demo/other.go")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSource)
	assert.NotErrorIs(t, err, ErrNotGoSource)
}

func TestGoCoverageData_Analyze_MissingSource(t *testing.T) {
	project := newDemoProject(t)
	data := loadDemo(t, project, &bytes.Buffer{}, m.ReportConfig{})

	require.NoError(t, os.Remove(project.calc))

	_, err := data.Analyze("example.com/demo/pkg/calc.go")
	require.ErrorIs(t, err, ErrNoSource)
	assert.Contains(t, err.Error(), project.calc)
}

func TestGoCoverageData_Analyze_NotGoSource(t *testing.T) {
	project := newDemoProject(t)
	writeTestFile(t, project.calc, "package pkg\n\nfunc Abs(x int int {\n")
	data := loadDemo(t, project, &bytes.Buffer{}, m.ReportConfig{})

	_, err := data.Analyze("example.com/demo/pkg/calc.go")
	require.ErrorIs(t, err, ErrNotGoSource)
	assert.Contains(t, err.Error(), project.calc)
}

func TestGoCoverageData_Warn(t *testing.T) {
	project := newDemoProject(t)

	t.Run("emits each message once", func(t *testing.T) {
		warnings := &bytes.Buffer{}
		data := loadDemo(t, project, warnings, m.ReportConfig{})

		data.Warn("Couldn't parse Go file 'a.go'", "couldnt-parse")
		data.Warn("Couldn't parse Go file 'a.go'", "couldnt-parse")
		data.Warn("Couldn't parse Go file 'b.go'", "couldnt-parse")

		assert.Equal(t,
			"golcov warning: Couldn't parse Go file 'a.go' (couldnt-parse)\n"+
				"golcov warning: Couldn't parse Go file 'b.go' (couldnt-parse)\n",
			warnings.String())
	})

	t.Run("disabled slugs are silent", func(t *testing.T) {
		warnings := &bytes.Buffer{}
		data := loadDemo(t, project, warnings, m.ReportConfig{DisableWarnings: []string{"couldnt-parse"}})

		data.Warn("Couldn't parse Go file 'a.go'", "couldnt-parse")

		assert.Empty(t, warnings.String())
	})
}

func TestAnalyzeProfile_OverlappingBlocks(t *testing.T) {
	project := newDemoProject(t)
	writeTestFile(t, project.dataFile, `mode: count
example.com/demo/pkg/calc.go:3.21,4.12 1 2
example.com/demo/pkg/calc.go:4.12,6.3 1 0
example.com/demo/pkg/calc.go:6.3,7.10 0 0
example.com/demo/pkg/calc.go:7.2,7.10 1 0
`)

	data := loadDemo(t, project, &bytes.Buffer{}, m.ReportConfig{})

	analysis, err := data.Analyze("example.com/demo/pkg/calc.go")
	require.NoError(t, err)

	// line 4 is shared by a hit and a missed block; blocks without statements add no lines
	assert.Equal(t, []int{3, 4, 5, 6, 7}, analysis.Statements)
	assert.Equal(t, []int{5, 6, 7}, analysis.Missing)
}

func TestResolveProfileName(t *testing.T) {
	root := m.Path(filepath.FromSlash("/work/demo"))

	tests := []struct {
		name       string
		profile    string
		modulePath string
		want       m.Path
	}{
		{"module path", "example.com/demo/pkg/calc.go", "example.com/demo", m.Path(filepath.FromSlash("/work/demo/pkg/calc.go"))},
		{"module root file", "example.com/demo/main.go", "example.com/demo", m.Path(filepath.FromSlash("/work/demo/main.go"))},
		{"no module", "pkg/calc.go", "", m.Path(filepath.FromSlash("/work/demo/pkg/calc.go"))},
		{"foreign import path", "other.org/x/y.go", "example.com/demo", m.Path(filepath.FromSlash("/work/demo/other.org/x/y.go"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveProfileName(tt.profile, root, tt.modulePath))
		})
	}

	t.Run("absolute", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "calc.go")
		assert.Equal(t, m.Path(abs), resolveProfileName(abs, root, "example.com/demo"))
	})

	t.Run("underscore prefixed absolute", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "calc.go")
		assert.Equal(t, m.Path(abs), resolveProfileName("_"+filepath.ToSlash(abs), root, ""))
	})
}
