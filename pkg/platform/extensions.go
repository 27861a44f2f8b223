// pkg/platform/extensions.go
package platform

// SharedLibraryExtensions returns the shared-library filename extensions
// searched on the given OS, in preference order
func SharedLibraryExtensions(os string) []string {
	switch os {
	case "windows":
		return []string{".dll"}
	case "darwin":
		return []string{".dylib", ".so"}
	default:
		return []string{".so"}
	}
}

// ModuleSuffixes returns the filename suffixes a compiled extension module
// may carry on the given OS, in preference order. Interpreters tag modules
// with ABI suffixes (e.g. .cpython-312-x86_64-linux-gnu.so), so discovery
// matches on prefix plus any of these terminal extensions.
func ModuleSuffixes(os string) []string {
	switch os {
	case "windows":
		return []string{".pyd", ".dll"}
	case "darwin":
		return []string{".so", ".dylib"}
	default:
		return []string{".so"}
	}
}
