package cli

import "grader/internal/config"

// Flags holds command-line flags
type Flags struct {
	DataDir      string
	TestsFile    string
	StudentsFile string
	Verbose      bool
	Filter       string
	Plain        bool
	Summary      bool
	Sheet        string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		DataDir:      f.DataDir,
		TestsFile:    f.TestsFile,
		StudentsFile: f.StudentsFile,
		Verbose:      f.Verbose,
		Filter:       f.Filter,
		Plain:        f.Plain,
		Summary:      f.Summary,
		Sheet:        f.Sheet,
	}
}
