// Package file provides a file-based DataFetcher implementation for the config package.
//
// A Fetcher is bound to a single path and returns the raw bytes of that file,
// leaving decoding to a parser. The file is read on every call to Fetch, so
// each load of a configuration observes the file as it is at that moment.
//
// Usage:
//
//	data, err := file.New("/path/to/config.yaml").Fetch()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//
// Error Handling:
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, fs.ErrNotExist) to check for a missing file
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
