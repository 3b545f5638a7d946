package env

var (
	// Logger writes diagnostics for the current environment
	// (stdout on the backend, the browser console under wasm).
	Logger = SetupDefaultLogger()
	// FileWriter stores rendered chart output,
	// eg: FileWriter("sales.png", data)
	FileWriter = SetupDefaultFileWriter()
)
