package config

// NewPolicyForTest creates a Policy pointed at a file for testing purposes
func NewPolicyForTest(path string) *Policy {
	return &Policy{path: path}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

// NewStorageForTest creates a Storage config for testing purposes
func NewStorageForTest(backend, sqlitePath string) *Storage {
	return &Storage{backend: backend, sqlitePath: sqlitePath}
}
