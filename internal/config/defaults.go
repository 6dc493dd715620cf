package config

const (
	// DefaultDataDir is where the JSON files live when nothing else is configured
	DefaultDataDir = "."
	// DefaultTestsFile is the file holding test papers
	DefaultTestsFile = "tests.json"
	// DefaultStudentsFile is the file holding students and their results
	DefaultStudentsFile = "students.json"
	// DefaultLogLevel is the logrus level used without --verbose
	DefaultLogLevel = "warn"
	// DefaultEnvFile is read from the working directory if present
	DefaultEnvFile = ".env"
	// DefaultRosterSheet is the sheet read by the import command; empty means the first sheet
	DefaultRosterSheet = ""
)

// Environment variables that override the defaults
const (
	EnvDataDir      = "GRADER_DATA_DIR"
	EnvTestsFile    = "GRADER_TESTS_FILE"
	EnvStudentsFile = "GRADER_STUDENTS_FILE"
	EnvLogLevel     = "GRADER_LOG_LEVEL"
)
