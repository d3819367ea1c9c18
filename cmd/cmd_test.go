package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/seatcard-sorter/internal/converter"
	"github.com/ginjaninja78/seatcard-sorter/internal/csvparser"
	"github.com/ginjaninja78/seatcard-sorter/internal/location"
)

const export = "performance_name,performance_dt,customer_no,location,section,fname,lname,lsal,num_years_sub,aisle,list1,list2,list3,list4,list5\r\n" +
	"Tosca,10/5/2019,17,ORCH 5:A-12,Orchestra - Section 5,Ann,Lee,Ms. Lee,4,,Y,,,,\r\n" +
	"Tosca,10/5/2019,18,ORCH 5:A-12,Orchestra - Section 5,Bo,Ray,Mr. Ray,,,,,,,\r\n"

// run executes the CLI in an empty working directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), err
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitOther, exitCode(errors.New("disk full")))
	assert.Equal(t, exitUsage, exitCode(withCode(exitUsage, errors.New("bad flag"))))
	assert.Equal(t, exitFormat, exitCode(errors.Wrap(&csvparser.ParseError{Row: 2, Err: csvparser.ErrBareLF}, "unable to parse source CSV")))
	assert.Equal(t, exitDomain, exitCode(errors.Wrap(converter.ErrMultipleLists, "customer_no 1")))
	assert.Equal(t, exitDomain, exitCode(errors.Wrap(location.ErrSection, "customer_no 1")))
	assert.Nil(t, withCode(exitUsage, nil))
}

func TestConvertResortDupes(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "oct.csv")
	require.NoError(t, os.WriteFile(source, []byte(export), 0o644))

	out, err := run(t, "convert", "--source", source)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 seat cards (0 unresolved) from 2 rows")
	sorted := filepath.Join(dir, "oct.sorted.csv")
	assert.FileExists(t, sorted)

	_, err = run(t, "convert", "--source", source)
	assert.Equal(t, exitUsage, exitCode(err))
	assert.ErrorContains(t, err, "already exists")

	resorted := filepath.Join(dir, "oct.resorted.csv")
	out, err = run(t, "resort", "--source", sorted, "--target", resorted)
	require.NoError(t, err)
	assert.Contains(t, out, "Resorted 2 seat cards")

	dupes := filepath.Join(dir, "oct.dupes.csv")
	out, err = run(t, "dupes", "-s", resorted, "-t", dupes)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 duplicate seat cards among 2")
}

func TestUsageErrors(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "oct.csv")
	require.NoError(t, os.WriteFile(source, []byte(export), 0o644))

	tests := [][]string{
		{"convert"},
		{"convert", "--source", filepath.Join(dir, "missing.csv")},
		{"convert", "--source", source, "--versions", filepath.Join(dir, "missing.txt")},
		{"convert", "--source", source, "--mapping", filepath.Join(dir, "missing.csv")},
		{"resort", "--source", source},
		{"dupes", "--target", filepath.Join(dir, "x.csv")},
		{"convert", "--no-such-flag"},
		{"--config", filepath.Join(dir, "missing.yaml"), "convert", "--source", source},
	}
	for _, args := range tests {
		_, err := run(t, args...)
		assert.Equal(t, exitUsage, exitCode(err), "args %v: %v", args, err)
	}
}

func TestFormatAndDomainErrors(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(malformed, []byte("a,b\nc,d\n"), 0o644))
	_, err := run(t, "convert", "--source", malformed, "--target", filepath.Join(dir, "out1.csv"))
	assert.Equal(t, exitFormat, exitCode(err))

	conflicting := filepath.Join(dir, "lists.csv")
	require.NoError(t, os.WriteFile(conflicting, []byte(
		"performance_name,performance_dt,customer_no,location,section,fname,lname,lsal,num_years_sub,aisle,list1,list2,list3,list4,list5\r\n"+
			"Tosca,10/5/2019,17,ORCH 5:A-12,Orchestra - Section 5,Ann,Lee,Ms. Lee,4,,Y,Y,,,\r\n"), 0o644))
	_, err = run(t, "convert", "--source", conflicting, "--target", filepath.Join(dir, "out2.csv"))
	assert.Equal(t, exitDomain, exitCode(err))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--config", "does-not-exist.yaml", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Seatcard Sorter")
	assert.Contains(t, out, "Version:    "+Version)
}
